package routes

import (
	"github.com/eladmalka/gal-fridman-malka-website/handlers/content"
	"github.com/eladmalka/gal-fridman-malka-website/middleware"

	"github.com/gin-gonic/gin"
)

func ContentRoutes(r *gin.Engine) {
	r.GET("/api/content", content.GetContent)
	r.PUT("/api/content", middleware.AdminAuth(), content.SetContent)
}
