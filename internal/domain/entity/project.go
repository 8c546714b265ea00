package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Project struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      string `gorm:"type:uuid;not null;index"`
	Title       string `gorm:"not null"`
	Description string
	RepoURL     string
	DemoURL     string
	TechTags    pq.StringArray `gorm:"type:text[]"`
	// LikesCount is maintained in the same transaction as ProjectLike writes.
	LikesCount int `gorm:"default:0"`
}

func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ProjectLike struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	ProjectID string `gorm:"type:uuid;not null;uniqueIndex:idx_project_user"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_project_user"`
}

func (l *ProjectLike) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
