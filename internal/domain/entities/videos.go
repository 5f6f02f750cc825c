package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video is written once by the upload workflow and never updated.
type Video struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text;not null"`
	PublicID       string    `gorm:"type:varchar(500);not null;uniqueIndex"`
	OriginalSize   string    `gorm:"type:varchar(32);not null"`
	CompressedSize string    `gorm:"type:varchar(32);not null"`
	Duration       int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

func (Video) TableName() string {
	return "videos"
}

func (v *Video) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
