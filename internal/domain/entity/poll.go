package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Poll struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	Question  string         `gorm:"not null"`
	Options   pq.StringArray `gorm:"type:text[]"`
}

func (p *Poll) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type PollVote struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	PollID    string `gorm:"type:uuid;not null;uniqueIndex:idx_poll_user"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_poll_user"`
	OptionID  string `gorm:"not null"`
}

func (v *PollVote) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
