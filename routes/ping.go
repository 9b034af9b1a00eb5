package routes

import (
	"github.com/eladmalka/gal-fridman-malka-website/handlers/ping"

	"github.com/gin-gonic/gin"
)

func PingRoutes(r *gin.Engine) {
	handler := ping.New()
	r.GET("/api/ping", handler.HandlePing)
}
