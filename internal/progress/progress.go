package progress

import (
	"context"
	"fmt"

	"github.com/keepsake-care/keepsake/internal/store"
)

// Service tracks the unlock level that quiz completion advances. The quiz
// session never reads it; it only reports completion.
type Service struct {
	repo store.ProgressRepo
}

// NewService creates a progress service over the progress repo.
func NewService(repo store.ProgressRepo) *Service {
	return &Service{repo: repo}
}

// CurrentLevel returns the highest unlocked level.
func (s *Service) CurrentLevel(ctx context.Context) (int, error) {
	level, err := s.repo.CurrentLevel(ctx)
	if err != nil {
		return 0, fmt.Errorf("current level: %w", err)
	}
	return level, nil
}

// UnlockNextLevel advances the level after a completed quiz and returns the
// new value.
func (s *Service) UnlockNextLevel(ctx context.Context) (int, error) {
	level, err := s.repo.UnlockNext(ctx)
	if err != nil {
		return 0, fmt.Errorf("unlock next level: %w", err)
	}
	return level, nil
}
