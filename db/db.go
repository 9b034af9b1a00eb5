package db

import (
	"errors"
	"os"

	"github.com/eladmalka/gal-fridman-malka-website/config"
	"github.com/eladmalka/gal-fridman-malka-website/models"
	"github.com/eladmalka/gal-fridman-malka-website/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogError(err, "Warning: Impossible to load the .env file")
		utils.LogInfo("The environment variable DB_URL must be defined in the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "DB_URL is not set")
		panic("Database URL is not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.SiteContent{},
		&models.ImageSlot{},
		&models.GalleryImage{},
		&models.Lead{},
		&models.AdminSetting{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	if err := SeedDefaults(DB); err != nil {
		utils.LogError(err, "Error seeding default data")
		panic("Could not seed default data")
	}

	utils.LogSuccess("Database connection successful")
}

// SeedDefaults provisions the singleton rows the site expects: the hashed
// admin password and the three well-known image slots. Safe to run on every
// boot; existing rows are left untouched.
func SeedDefaults(gdb *gorm.DB) error {
	var setting models.AdminSetting
	err := gdb.Where("key = ?", models.SettingAdminPassword).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(config.GetAdminInitialPassword()), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		if err := gdb.Create(&models.AdminSetting{
			Key:   models.SettingAdminPassword,
			Value: string(hashed),
		}).Error; err != nil {
			return err
		}
		utils.LogInfo("Seeded initial admin password")
	} else if err != nil {
		return err
	}

	defaultSlots := []models.ImageSlot{
		{SlotKey: models.SlotHeroBackground, Alt: "רקע קליניקה נומרולוגיה", AspectRatioLabel: "16:9 (מומלץ 1920x1080)", PositionX: 50, PositionY: 50},
		{SlotKey: models.SlotBenefitsImage, Alt: "קליניקה ואווירה", AspectRatioLabel: "3:4 אופקי (מומלץ 800x1000)", PositionX: 50, PositionY: 50},
		{SlotKey: models.SlotAboutImage, Alt: "גל פרידמן מלכה", AspectRatioLabel: "1:1 עגול (מומלץ 400x400)", PositionX: 50, PositionY: 25},
	}
	for _, slot := range defaultSlots {
		var existing models.ImageSlot
		err := gdb.Where("slot_key = ?", slot.SlotKey).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := gdb.Create(&slot).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	return nil
}
