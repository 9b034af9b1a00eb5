package models

import (
	"time"
)

// GalleryImage is one member of the ordered, capacity-bounded gallery.
// SortOrder drives display order; it is not required to be contiguous.
type GalleryImage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	FilePath  string    `json:"filePath" gorm:"not null"`
	Alt       string    `json:"alt" gorm:"default:''"`
	SortOrder int       `json:"sortOrder" gorm:"column:sort_order;default:0"`
	PositionX int       `json:"positionX" gorm:"column:position_x;default:50"`
	PositionY int       `json:"positionY" gorm:"column:position_y;default:50"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}

// GalleryImageUpdate is the payload for editing alt text or the focal point
type GalleryImageUpdate struct {
	Alt       *string `json:"alt"`
	PositionX *int    `json:"positionX"`
	PositionY *int    `json:"positionY"`
}

// GalleryReorder carries the full permutation of gallery ids in display order
type GalleryReorder struct {
	IDs []uint `json:"ids" binding:"required"`
}
