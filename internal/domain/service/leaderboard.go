package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/ports/secondary"
)

type LeaderboardService struct {
	profileRepo secondary.ProfileRepository
	teamRepo    secondary.TeamRepository
	// cache is nil when redis is not configured; reads then always hit the
	// database.
	cache secondary.LeaderboardCache

	logger *zap.SugaredLogger
	size   int
}

func NewLeaderboardService(
	logger *zap.SugaredLogger,
	profileRepo secondary.ProfileRepository,
	teamRepo secondary.TeamRepository,
	cache secondary.LeaderboardCache,
	size int,
) *LeaderboardService {
	return &LeaderboardService{
		profileRepo: profileRepo,
		teamRepo:    teamRepo,
		cache:       cache,
		logger:      logger,
		size:        size,
	}
}

func (s *LeaderboardService) Global(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, "global"); err != nil {
			s.logger.Errorf("leaderboard cache read failed: %v", err)
		} else if ok {
			var entries []dto.LeaderboardEntry
			if errUnmarshal := json.Unmarshal(cached, &entries); errUnmarshal == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.profileRepo.Top(ctx, s.size)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, errMarshal := json.Marshal(entries); errMarshal == nil {
			if errSet := s.cache.Set(ctx, "global", payload); errSet != nil {
				s.logger.Errorf("leaderboard cache write failed: %v", errSet)
			}
		}
	}

	return entries, nil
}

func (s *LeaderboardService) Event(ctx context.Context, eventID string) ([]dto.TeamScore, error) {
	return s.teamRepo.TopByEvent(ctx, eventID, s.size)
}
