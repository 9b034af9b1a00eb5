package images

import (
	"errors"
	"net/http"

	"github.com/eladmalka/gal-fridman-malka-website/db"
	"github.com/eladmalka/gal-fridman-malka-website/models"
	"github.com/eladmalka/gal-fridman-malka-website/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// uploadImage is swapped out in tests to avoid hitting Cloudinary
var uploadImage = utils.UploadImage

// defaultSlots backs any slot the admin never wrote: the renderer always
// gets a usable image, alt text and aspect hint.
var defaultSlots = map[string]models.ImageSlotView{
	models.SlotHeroBackground: {
		URL:              "/assets/images/hero.jpg",
		Alt:              "רקע קליניקה נומרולוגיה",
		AspectRatioLabel: "16:9 (מומלץ 1920x1080)",
		PositionX:        50,
		PositionY:        50,
	},
	models.SlotBenefitsImage: {
		URL:              "/assets/images/gallery-1.jpg",
		Alt:              "קליניקה ואווירה",
		AspectRatioLabel: "3:4 אופקי (מומלץ 800x1000)",
		PositionX:        50,
		PositionY:        50,
	},
	models.SlotAboutImage: {
		URL:              "/assets/images/about_profile.jpg",
		Alt:              "גל פרידמן מלכה",
		AspectRatioLabel: "1:1 עגול (מומלץ 400x400)",
		PositionX:        50,
		PositionY:        25,
	},
}

// @Summary Get the image slots
// @Description Return every image slot merged with its defaults. A slot without an uploaded file falls back to the default asset.
// @Tags images
// @Produce json
// @Success 200 {object} map[string]models.ImageSlotView
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /image-slots [get]
func GetImageSlots(c *gin.Context) {
	var slots []models.ImageSlot
	if err := db.DB.Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving image slots",
		})
		return
	}

	merged := make(map[string]models.ImageSlotView, len(defaultSlots))
	for key, view := range defaultSlots {
		merged[key] = view
	}
	for _, slot := range slots {
		merged[slot.SlotKey] = mergeSlot(slot)
	}

	c.JSON(http.StatusOK, merged)
}

func mergeSlot(slot models.ImageSlot) models.ImageSlotView {
	fallback := defaultSlots[slot.SlotKey]

	view := models.ImageSlotView{
		URL:              fallback.URL,
		Alt:              slot.Alt,
		AspectRatioLabel: slot.AspectRatioLabel,
		PositionX:        slot.PositionX,
		PositionY:        slot.PositionY,
	}
	if slot.FilePath != nil && *slot.FilePath != "" {
		view.URL = *slot.FilePath
	}
	if view.Alt == "" {
		view.Alt = fallback.Alt
	}
	if view.AspectRatioLabel == "" {
		view.AspectRatioLabel = fallback.AspectRatioLabel
	}
	return view
}

// @Summary Update an image slot
// @Description Update a slot's alt text and aspect hint, creating the slot on first write
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slotKey path string true "Slot key"
// @Param slot body models.ImageSlotUpdate true "Slot attributes"
// @Success 200 {object} models.ImageSlot
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /image-slots/{slotKey} [put]
func UpsertImageSlot(c *gin.Context) {
	slotKey := c.Param("slotKey")

	var input models.ImageSlotUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var slot models.ImageSlot
	err := db.DB.Where("slot_key = ?", slotKey).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		slot = models.ImageSlot{SlotKey: slotKey, PositionX: 50, PositionY: 50}
		if input.Alt != nil {
			slot.Alt = *input.Alt
		}
		if input.AspectRatioLabel != nil {
			slot.AspectRatioLabel = *input.AspectRatioLabel
		}
		if err := db.DB.Create(&slot).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error creating image slot",
			})
			return
		}
		c.JSON(http.StatusOK, slot)
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving image slot",
		})
		return
	}

	changes := map[string]interface{}{}
	if input.Alt != nil {
		changes["alt"] = *input.Alt
	}
	if input.AspectRatioLabel != nil {
		changes["aspect_ratio_label"] = *input.AspectRatioLabel
	}
	if len(changes) > 0 {
		if err := db.DB.Model(&slot).Updates(changes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error updating image slot",
			})
			return
		}
	}

	c.JSON(http.StatusOK, slot)
}

// @Summary Move an image slot's focal point
// @Description Update the crop anchor of a slot; coordinates are clamped to [0,100]
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slotKey path string true "Slot key"
// @Param position body models.ImageSlotPosition true "Focal point in percent"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 404 {object} map[string]interface{} "error: Image slot not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /image-slots/{slotKey}/position [put]
func UpdateImageSlotPosition(c *gin.Context) {
	slotKey := c.Param("slotKey")

	var input models.ImageSlotPosition
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	// Clients clamp before sending, clamp again anyway
	x := utils.ClampPercent(input.PositionX)
	y := utils.ClampPercent(input.PositionY)

	result := db.DB.Model(&models.ImageSlot{}).
		Where("slot_key = ?", slotKey).
		Updates(map[string]interface{}{"position_x": x, "position_y": y})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error updating the focal point",
		})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Image slot not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Upload an image into a slot
// @Description Replace the slot's file with a validated upload, creating the slot on first write
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param slotKey path string true "Slot key"
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]interface{} "filePath: stored file URL"
// @Failure 400 {object} map[string]interface{} "error: Invalid or missing file"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /image-slots/{slotKey}/upload [post]
func UploadImageSlotFile(c *gin.Context) {
	slotKey := c.Param("slotKey")

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}

	filePath, err := uploadImage(file, "image_slots", "slot")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Error uploading image: " + err.Error(),
		})
		return
	}

	result := db.DB.Model(&models.ImageSlot{}).
		Where("slot_key = ?", slotKey).
		Update("file_path", filePath)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error saving the image slot",
		})
		return
	}

	if result.RowsAffected == 0 {
		slot := models.ImageSlot{SlotKey: slotKey, FilePath: &filePath, PositionX: 50, PositionY: 50}
		if err := db.DB.Create(&slot).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error creating the image slot",
			})
			return
		}
	}

	utils.LogSuccess("Image slot file updated")
	c.JSON(http.StatusOK, gin.H{
		"filePath": filePath,
	})
}
