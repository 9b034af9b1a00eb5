package auth

import (
	"net/http"

	"github.com/eladmalka/gal-fridman-malka-website/db"
	"github.com/eladmalka/gal-fridman-malka-website/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Initialize default data
// @Description Seed the admin password and default image slots when missing. Idempotent: existing rows are never touched.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "initialized: true"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /admin/init [post]
func InitDefaults(c *gin.Context) {
	if err := db.SeedDefaults(db.DB); err != nil {
		utils.LogError(err, "Error seeding default data")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to initialize",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"initialized": true})
}
