package models

// SiteContent is a single text override for the public page.
// Keys are dotted paths (hero.badge, services.card0.bullet1, ...);
// a key that is absent falls back to the compiled-in default.
type SiteContent struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:text;not null"`
}

func (SiteContent) TableName() string {
	return "site_content"
}
