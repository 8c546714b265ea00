package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/entity"
)

type PollRepository struct {
	db *gorm.DB
}

func NewPollRepository(db *gorm.DB) *PollRepository {
	return &PollRepository{
		db: db,
	}
}

func (s *PollRepository) Get(ctx context.Context, id string) (*entity.Poll, error) {
	var poll entity.Poll
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&poll).Error
	return &poll, err
}

func (s *PollRepository) CreateVote(ctx context.Context, v *entity.PollVote) error {
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *PollRepository) Results(ctx context.Context, pollID string) (map[string]int64, error) {
	type rawCount struct {
		OptionID string `gorm:"column:option_id"`
		Votes    int64  `gorm:"column:votes"`
	}

	var rawResult []rawCount
	err := s.db.WithContext(ctx).
		Table("poll_votes").
		Select("option_id, COUNT(*) AS votes").
		Where("poll_id = ?", pollID).
		Group("option_id").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rawResult))
	for _, raw := range rawResult {
		result[raw.OptionID] = raw.Votes
	}
	return result, nil
}
