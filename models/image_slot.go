package models

import (
	"time"
)

// Well-known image slot keys used by the public page
const (
	SlotHeroBackground = "HERO_BACKGROUND"
	SlotBenefitsImage  = "BENEFITS_IMAGE"
	SlotAboutImage     = "ABOUT_IMAGE"
)

// ImageSlot is a named singleton image placeholder (hero background,
// benefits photo, about portrait). FilePath is nullable: a slot without a
// file falls back to the default asset. PositionX/PositionY are the focal
// point in percent, used as CSS object-position by the renderer.
type ImageSlot struct {
	ID               uint       `json:"id" gorm:"primarykey"`
	SlotKey          string     `json:"slotKey" gorm:"column:slot_key;uniqueIndex;not null"`
	FilePath         *string    `json:"filePath"`
	Alt              string     `json:"alt" gorm:"default:''"`
	AspectRatioLabel string     `json:"aspectRatioLabel" gorm:"column:aspect_ratio_label;default:''"`
	PositionX        int        `json:"positionX" gorm:"column:position_x;default:50"`
	PositionY        int        `json:"positionY" gorm:"column:position_y;default:50"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (ImageSlot) TableName() string {
	return "image_slots"
}

// ImageSlotView is the merged default+override shape returned to renderers
type ImageSlotView struct {
	URL              string `json:"url"`
	Alt              string `json:"alt"`
	AspectRatioLabel string `json:"aspectRatioLabel"`
	PositionX        int    `json:"positionX"`
	PositionY        int    `json:"positionY"`
}

// ImageSlotUpdate is the payload for editing a slot's text attributes
type ImageSlotUpdate struct {
	Alt              *string `json:"alt"`
	AspectRatioLabel *string `json:"aspectRatioLabel"`
}

// ImageSlotPosition is the payload for moving a slot's focal point
type ImageSlotPosition struct {
	PositionX int `json:"positionX"`
	PositionY int `json:"positionY"`
}
