package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/ports/secondary"
)

type PollService struct {
	pollRepo secondary.PollRepository
}

func NewPollService(pollRepo secondary.PollRepository) *PollService {
	return &PollService{
		pollRepo: pollRepo,
	}
}

func (s *PollService) Vote(ctx context.Context, pollID, userID, optionID string) error {
	poll, err := s.pollRepo.Get(ctx, pollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrNotFound
		}
		return err
	}

	valid := false
	for _, option := range poll.Options {
		if option == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: unknown option %q", errorz.ErrValidation, optionID)
	}

	err = s.pollRepo.CreateVote(ctx, &entity.PollVote{
		PollID:   pollID,
		UserID:   userID,
		OptionID: optionID,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorz.ErrAlreadyVoted
	}
	return err
}

func (s *PollService) Results(ctx context.Context, pollID string) (map[string]int64, error) {
	return s.pollRepo.Results(ctx, pollID)
}
