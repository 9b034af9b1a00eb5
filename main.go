package main

import (
	"time"

	"github.com/eladmalka/gal-fridman-malka-website/db"
	"github.com/eladmalka/gal-fridman-malka-website/handlers/leads"
	"github.com/eladmalka/gal-fridman-malka-website/routes"
	"github.com/eladmalka/gal-fridman-malka-website/utils"

	"github.com/gin-gonic/gin"
)

// @title Gal Fridman Malka website API
// @version 1.0
// @description Backend for the public marketing site and its admin panel
// @host localhost:8080
// @BasePath /api
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		utils.LogError(err, "Cloudinary initialization failed, image uploads will not work")
	}

	// Keep the lead tables tidy even when nobody opens the admin panel
	leads.StartRetentionTicker(time.Hour)

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		utils.LogError(err, "Error starting the server")
		panic(err)
	}
}
