package routes

import (
	"github.com/eladmalka/gal-fridman-malka-website/handlers/images"
	"github.com/eladmalka/gal-fridman-malka-website/middleware"

	"github.com/gin-gonic/gin"
)

func ImagesRoutes(r *gin.Engine) {
	r.GET("/api/image-slots", images.GetImageSlots)

	admin := r.Group("/api/image-slots", middleware.AdminAuth())
	admin.PUT("/:slotKey", images.UpsertImageSlot)
	admin.PUT("/:slotKey/position", images.UpdateImageSlotPosition)
	admin.POST("/:slotKey/upload", images.UploadImageSlotFile)
}
