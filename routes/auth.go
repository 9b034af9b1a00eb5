package routes

import (
	"github.com/eladmalka/gal-fridman-malka-website/handlers/auth"
	"github.com/eladmalka/gal-fridman-malka-website/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/api/admin/login", auth.Login)
	r.POST("/api/admin/init", auth.InitDefaults)
	r.POST("/api/admin/change-password", middleware.AdminAuth(), auth.ChangePassword)
}
