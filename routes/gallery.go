package routes

import (
	"github.com/eladmalka/gal-fridman-malka-website/handlers/gallery"
	"github.com/eladmalka/gal-fridman-malka-website/middleware"

	"github.com/gin-gonic/gin"
)

func GalleryRoutes(r *gin.Engine) {
	r.GET("/api/gallery", gallery.GetGallery)

	admin := r.Group("/api/gallery", middleware.AdminAuth())
	admin.POST("/upload", gallery.AddGalleryImage)
	admin.POST("/reorder", gallery.ReorderGallery)
	admin.POST("/:id/replace", gallery.ReplaceGalleryImage)
	admin.PUT("/:id", gallery.UpdateGalleryImage)
	admin.DELETE("/:id", gallery.DeleteGalleryImage)
}
