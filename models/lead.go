package models

import (
	"time"
)

// Relationship status values accepted on the contact form
const (
	StatusMarried      = "married"
	StatusRelationship = "relationship"
	StatusSingle       = "single"
	StatusOther        = "other"
)

// Preferred contact method values
const (
	ContactByPhone    = "phone"
	ContactByWhatsapp = "whatsapp"
)

// Lead represents a contact form submission.
// A lead is Active while DeletedAt is null, Trashed once it is set,
// and gone entirely after a permanent delete.
type Lead struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	Name          string     `json:"name" binding:"required,min=2"`
	Phone         string     `json:"phone" binding:"required,len=10,numeric"`
	Email         string     `json:"email" binding:"required,email"`
	Status        string     `json:"status" binding:"required,oneof=married relationship single other"`
	Goals         string     `json:"goals" gorm:"type:text" binding:"required,min=5"`
	ContactMethod string     `json:"contactMethod" gorm:"column:contact_method;default:phone" binding:"required,oneof=phone whatsapp"`
	Seen          bool       `json:"seen" gorm:"default:false"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty" gorm:"index"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (Lead) TableName() string {
	return "leads"
}

// LeadCreate is the payload accepted by the public contact form
type LeadCreate struct {
	Name          string `json:"name" binding:"required,min=2" example:"Dana Levi"`
	Phone         string `json:"phone" binding:"required,len=10,numeric" example:"0521234567"`
	Email         string `json:"email" binding:"required,email" example:"dana@example.com"`
	Status        string `json:"status" binding:"required,oneof=married relationship single other" example:"married"`
	Goals         string `json:"goals" binding:"required,min=5" example:"Improve communication at home"`
	ContactMethod string `json:"contactMethod" binding:"required,oneof=phone whatsapp" example:"whatsapp"`
}

// TrashedLead is a lead in the trash together with the derived
// number of days left before the retention sweep removes it for good.
type TrashedLead struct {
	Lead
	DaysUntilPurge int `json:"daysUntilPurge"`
}
