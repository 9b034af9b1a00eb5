package config

import (
	"os"
	"strconv"
)

// Retention holds the time-driven lead lifecycle policy.
// Auto-trash by age shipped behind a toggle because the product decision
// is still pending; auto-purge of old trash is always on.
type Retention struct {
	AutoTrashEnabled bool
	AutoTrashDays    int
	TrashRetainDays  int
}

// Lockout holds the admin login brute-force policy
type Lockout struct {
	MaxAttempts     int
	CooldownSeconds int
}

// GetRetention reads the retention policy from the environment
func GetRetention() Retention {
	return Retention{
		AutoTrashEnabled: getEnvBool("AUTO_TRASH_ENABLED", true),
		AutoTrashDays:    getEnvInt("AUTO_TRASH_DAYS", 14),
		TrashRetainDays:  getEnvInt("TRASH_RETENTION_DAYS", 30),
	}
}

// GetLockout reads the login lockout policy from the environment
func GetLockout() Lockout {
	return Lockout{
		MaxAttempts:     getEnvInt("LOGIN_MAX_ATTEMPTS", 3),
		CooldownSeconds: getEnvInt("LOGIN_LOCKOUT_SECONDS", 300),
	}
}

// GetGalleryMaxImages reads the gallery capacity.
// The cap has moved before (3, then 5, then 6) so it stays configurable.
func GetGalleryMaxImages() int {
	return getEnvInt("GALLERY_MAX_IMAGES", 6)
}

// GetAdminInitialPassword is the password seeded on first boot
func GetAdminInitialPassword() string {
	return getEnv("ADMIN_INITIAL_PASSWORD", "admin123")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
