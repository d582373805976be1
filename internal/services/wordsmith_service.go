package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/testmanship/exercise-service/internal/repositories"
)

type wordsmithService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewWordsmithService(repo repositories.Repository, logger *slog.Logger) WordsmithService {
	return &wordsmithService{
		repo:   repo,
		logger: logger,
	}
}

func (s *wordsmithService) List(ctx context.Context, filters repositories.WordsmithFilters) ([]*repositories.WordsmithEntry, int64, error) {
	entries, total, err := s.repo.Progress().GetWordsmiths(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load wordsmith directory: %w", err)
	}
	return entries, total, nil
}

func (s *wordsmithService) GetProfile(ctx context.Context, userID string) (*repositories.WordsmithEntry, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	stats, err := s.repo.Challenge().GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load challenge stats: %w", err)
	}

	return &repositories.WordsmithEntry{
		User:                *user,
		ChallengesCompleted: stats.CompletedChallenges,
		TotalWordsWritten:   stats.TotalWordsWritten,
		AveragePerformance:  stats.AveragePerformance,
		LastActiveAt:        user.LastLoginAt,
	}, nil
}
