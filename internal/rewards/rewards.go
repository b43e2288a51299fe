package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/keepsake-care/keepsake/internal/store"
)

// Reason labels why hearts were granted.
type Reason string

const (
	// ReasonCorrect is the per-correct-answer grant, one heart each.
	ReasonCorrect Reason = "correct"

	// ReasonPerfect is the bonus for finishing a quiz with no mistakes.
	ReasonPerfect Reason = "perfect"
)

// PerfectBonus is the extra hearts for a flawless quiz.
const PerfectBonus = 3

// DisplayName returns a human-readable label for the reason.
func (r Reason) DisplayName() string {
	switch r {
	case ReasonCorrect:
		return "Correct answers"
	case ReasonPerfect:
		return "Perfect quizzes"
	default:
		return string(r)
	}
}

// Award represents hearts granted at one moment.
type Award struct {
	Amount    int
	Reason    Reason
	SessionID string
	AwardedAt time.Time
}

// Service grants hearts and tracks totals. Grants are fire-and-forget from
// the session's perspective; persistence failures never interrupt a quiz.
type Service struct {
	eventRepo store.EventRepo

	// SessionHearts accumulates awards granted during the current quiz.
	SessionHearts []Award
}

// NewService creates a heart service over the event repo.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo}
}

// AwardCorrect grants one heart per correct answer for a finished quiz.
// Returns nil when count is zero.
func (s *Service) AwardCorrect(ctx context.Context, sessionID string, count int) *Award {
	if count <= 0 {
		return nil
	}
	return s.grant(ctx, &Award{
		Amount:    count,
		Reason:    ReasonCorrect,
		SessionID: sessionID,
		AwardedAt: time.Now(),
	})
}

// AwardPerfect grants the flawless-quiz bonus.
func (s *Service) AwardPerfect(ctx context.Context, sessionID string) *Award {
	return s.grant(ctx, &Award{
		Amount:    PerfectBonus,
		Reason:    ReasonPerfect,
		SessionID: sessionID,
		AwardedAt: time.Now(),
	})
}

// Totals returns per-reason heart counts and the overall total.
func (s *Service) Totals(ctx context.Context) (map[string]int, int, error) {
	byReason, total, err := s.eventRepo.HeartTotals(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("heart totals: %w", err)
	}
	return byReason, total, nil
}

// ResetSession clears the session accumulator. Called at quiz start.
func (s *Service) ResetSession() {
	s.SessionHearts = nil
}

func (s *Service) grant(ctx context.Context, award *Award) *Award {
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendHeartEvent(ctx, store.HeartEventData{
			SessionID: award.SessionID,
			Amount:    award.Amount,
			Reason:    string(award.Reason),
		})
	}
	s.SessionHearts = append(s.SessionHearts, *award)
	return award
}
