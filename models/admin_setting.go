package models

// Admin settings keys
const (
	SettingAdminPassword = "admin_password"
)

// AdminSetting is a key/value row in the admin settings table.
// The site has a single global admin credential, stored hashed under
// the admin_password key; there is no user table.
type AdminSetting struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"not null"`
}

func (AdminSetting) TableName() string {
	return "admin_settings"
}

// AdminLogin is the login payload
type AdminLogin struct {
	Password string `json:"password" binding:"required"`
}

// PasswordChange is the change-password payload
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
