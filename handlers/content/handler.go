package content

import (
	"net/http"

	"github.com/eladmalka/gal-fridman-malka-website/db"
	"github.com/eladmalka/gal-fridman-malka-website/models"

	"github.com/gin-gonic/gin"
)

// @Summary Get the merged site content
// @Description Return every content key with its override when one exists, otherwise the built-in default. Overrides for keys the defaults don't know are carried through.
// @Tags content
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /content [get]
func GetContent(c *gin.Context) {
	var overrides []models.SiteContent
	if err := db.DB.Find(&overrides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving site content",
		})
		return
	}

	merged := make(map[string]string, len(DefaultContent)+len(overrides))
	for key, value := range DefaultContent {
		merged[key] = value
	}
	for _, override := range overrides {
		merged[override.Key] = override.Value
	}

	c.JSON(http.StatusOK, merged)
}

// @Summary Update site content
// @Description Upsert the supplied content keys. The map may be any subset: keys that are not sent stay untouched.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /content [put]
func SetContent(c *gin.Context) {
	var entries map[string]string

	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	for key, value := range entries {
		if err := upsertContent(key, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error saving site content",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// upsertContent updates one key, inserting the row on first write.
// Last write wins, no history is kept.
func upsertContent(key, value string) error {
	result := db.DB.Model(&models.SiteContent{}).Where("key = ?", key).Update("value", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return db.DB.Create(&models.SiteContent{Key: key, Value: value}).Error
	}
	return nil
}
