package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eladmalka/gal-fridman-malka-website/config"
	"github.com/eladmalka/gal-fridman-malka-website/db"
	"github.com/eladmalka/gal-fridman-malka-website/models"
	"github.com/eladmalka/gal-fridman-malka-website/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// uploadImage is swapped out in tests to avoid hitting Cloudinary
var uploadImage = utils.UploadImage

// @Summary List the gallery
// @Description Retrieve all gallery images in display order
// @Tags gallery
// @Produce json
// @Success 200 {array} models.GalleryImage
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /gallery [get]
func GetGallery(c *gin.Context) {
	var galleryImages []models.GalleryImage
	result := db.DB.Order("sort_order ASC").Find(&galleryImages)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving the gallery",
		})
		return
	}

	c.JSON(http.StatusOK, galleryImages)
}

// @Summary Add a gallery image
// @Description Upload a new image into the gallery. Fails once the gallery is at capacity: replace an existing image instead.
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Param alt formData string false "Alt text"
// @Success 201 {object} models.GalleryImage
// @Failure 400 {object} map[string]interface{} "error: Invalid or missing file"
// @Failure 409 {object} map[string]interface{} "error: Gallery is full"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /gallery/upload [post]
func AddGalleryImage(c *gin.Context) {
	// Capacity first: a full gallery rejects before any upload work
	var count int64
	if err := db.DB.Model(&models.GalleryImage{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error checking the gallery capacity",
		})
		return
	}

	maxImages := config.GetGalleryMaxImages()
	if count >= int64(maxImages) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "The gallery is full, replace an existing image instead",
			"maxImages": maxImages,
		})
		return
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}

	filePath, err := uploadImage(file, "gallery", "gallery")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Error uploading image: " + err.Error(),
		})
		return
	}

	var nextOrder int
	if err := db.DB.Model(&models.GalleryImage{}).
		Select("COALESCE(MAX(sort_order) + 1, 0)").
		Scan(&nextOrder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error computing the display order",
		})
		return
	}

	image := models.GalleryImage{
		FilePath:  filePath,
		Alt:       c.PostForm("alt"),
		SortOrder: nextOrder,
		PositionX: 50,
		PositionY: 50,
	}

	if err := db.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error saving the gallery image",
		})
		return
	}

	utils.LogSuccess("Gallery image added")
	c.JSON(http.StatusCreated, image)
}

// @Summary Replace a gallery image
// @Description Swap the file of an existing gallery image. The new image keeps the old one's position in the display order.
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery image ID"
// @Param image formData file true "Image file"
// @Param alt formData string false "Alt text"
// @Success 200 {object} models.GalleryImage
// @Failure 400 {object} map[string]interface{} "error: Invalid or missing file"
// @Failure 404 {object} map[string]interface{} "error: Gallery image not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /gallery/{id}/replace [post]
func ReplaceGalleryImage(c *gin.Context) {
	id, ok := parseGalleryID(c)
	if !ok {
		return
	}

	var oldImage models.GalleryImage
	err := db.DB.Where("id = ?", id).First(&oldImage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Gallery image not found",
		})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving the gallery image",
		})
		return
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}

	filePath, err := uploadImage(file, "gallery", "gallery")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Error uploading image: " + err.Error(),
		})
		return
	}

	// Delete plus insert, keeping the old sort order so the image stays
	// in the same position on the public page
	newImage := models.GalleryImage{
		FilePath:  filePath,
		Alt:       c.PostForm("alt"),
		SortOrder: oldImage.SortOrder,
		PositionX: 50,
		PositionY: 50,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", oldImage.ID).Delete(&models.GalleryImage{}).Error; err != nil {
			return err
		}
		return tx.Create(&newImage).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error replacing the gallery image",
		})
		return
	}

	utils.LogSuccess("Gallery image replaced")
	c.JSON(http.StatusOK, newImage)
}

// @Summary Edit a gallery image
// @Description Update the alt text and/or focal point of a gallery image in place
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery image ID"
// @Param image body models.GalleryImageUpdate true "Fields to update"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 404 {object} map[string]interface{} "error: Gallery image not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /gallery/{id} [put]
func UpdateGalleryImage(c *gin.Context) {
	id, ok := parseGalleryID(c)
	if !ok {
		return
	}

	var input models.GalleryImageUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	changes := map[string]interface{}{}
	if input.Alt != nil {
		changes["alt"] = *input.Alt
	}
	if input.PositionX != nil {
		changes["position_x"] = utils.ClampPercent(*input.PositionX)
	}
	if input.PositionY != nil {
		changes["position_y"] = utils.ClampPercent(*input.PositionY)
	}

	if len(changes) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	result := db.DB.Model(&models.GalleryImage{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error updating the gallery image",
		})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Gallery image not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Delete a gallery image
// @Description Remove a gallery image permanently. The gallery has no trash: deletion is immediate.
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery image ID"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 404 {object} map[string]interface{} "error: Gallery image not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /gallery/{id} [delete]
func DeleteGalleryImage(c *gin.Context) {
	id, ok := parseGalleryID(c)
	if !ok {
		return
	}

	result := db.DB.Where("id = ?", id).Delete(&models.GalleryImage{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error deleting the gallery image",
		})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Gallery image not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Reorder the gallery
// @Description Apply a full permutation of the current gallery ids as the new display order. Rejected if any id is missing, unknown or duplicated; nothing is written on rejection.
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.GalleryReorder true "Gallery ids in display order"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 400 {object} map[string]interface{} "error: Invalid permutation"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /gallery/reorder [post]
func ReorderGallery(c *gin.Context) {
	var input models.GalleryReorder

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var currentIDs []uint
	if err := db.DB.Model(&models.GalleryImage{}).Pluck("id", &currentIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving the gallery",
		})
		return
	}

	if !isPermutation(input.IDs, currentIDs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The ids must be exactly the current gallery images, each one once",
		})
		return
	}

	// One transaction: readers never observe a half-applied order
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for index, id := range input.IDs {
			if err := tx.Model(&models.GalleryImage{}).
				Where("id = ?", id).
				Update("sort_order", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error reordering the gallery",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// isPermutation reports whether proposed contains exactly the ids in current
func isPermutation(proposed, current []uint) bool {
	if len(proposed) != len(current) {
		return false
	}
	seen := make(map[uint]bool, len(current))
	for _, id := range current {
		seen[id] = true
	}
	used := make(map[uint]bool, len(proposed))
	for _, id := range proposed {
		if !seen[id] || used[id] {
			return false
		}
		used[id] = true
	}
	return true
}

func parseGalleryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid gallery image id",
		})
		return 0, false
	}
	return uint(id), true
}
