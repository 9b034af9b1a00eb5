package routes

import (
	"time"

	"github.com/eladmalka/gal-fridman-malka-website/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {

	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	PingRoutes(r)
	AuthRoutes(r)
	LeadsRoutes(r)
	ContentRoutes(r)
	ImagesRoutes(r)
	GalleryRoutes(r)

	return r
}
