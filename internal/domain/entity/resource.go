package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Resource struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UserID      string `gorm:"type:uuid;not null;index"`
	Title       string `gorm:"not null"`
	Description string
	URL         string `gorm:"not null"`
	Category    string         `gorm:"index"`
	Tags        pq.StringArray `gorm:"type:text[]"`
}

func (r *Resource) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
