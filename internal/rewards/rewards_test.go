package rewards

import (
	"context"
	"testing"

	"github.com/keepsake-care/keepsake/internal/store"
)

// fakeEventRepo records heart grants in memory.
type fakeEventRepo struct {
	store.EventRepo
	hearts []store.HeartEventData
}

func (f *fakeEventRepo) AppendHeartEvent(_ context.Context, data store.HeartEventData) error {
	f.hearts = append(f.hearts, data)
	return nil
}

func (f *fakeEventRepo) HeartTotals(context.Context) (map[string]int, int, error) {
	byReason := make(map[string]int)
	total := 0
	for _, h := range f.hearts {
		byReason[h.Reason] += h.Amount
		total += h.Amount
	}
	return byReason, total, nil
}

func TestAwardCorrect(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	award := svc.AwardCorrect(ctx, "s1", 7)

	if award == nil || award.Amount != 7 {
		t.Fatalf("award = %+v, want amount 7", award)
	}
	if award.Reason != ReasonCorrect {
		t.Errorf("reason = %q, want %q", award.Reason, ReasonCorrect)
	}
	if len(repo.hearts) != 1 || repo.hearts[0].Amount != 7 {
		t.Errorf("persisted grants = %+v, want one of amount 7", repo.hearts)
	}
	if len(svc.SessionHearts) != 1 {
		t.Errorf("session accumulator = %d, want 1", len(svc.SessionHearts))
	}
}

func TestAwardCorrect_ZeroIsNoGrant(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)

	if award := svc.AwardCorrect(context.Background(), "s1", 0); award != nil {
		t.Errorf("award = %+v, want nil for zero correct answers", award)
	}
	if len(repo.hearts) != 0 {
		t.Errorf("persisted grants = %d, want 0", len(repo.hearts))
	}
}

func TestAwardPerfect(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)

	award := svc.AwardPerfect(context.Background(), "s1")

	if award.Amount != PerfectBonus {
		t.Errorf("amount = %d, want %d", award.Amount, PerfectBonus)
	}
	if award.Reason != ReasonPerfect {
		t.Errorf("reason = %q, want %q", award.Reason, ReasonPerfect)
	}
}

func TestTotals(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	svc.AwardCorrect(ctx, "s1", 4)
	svc.AwardPerfect(ctx, "s1")
	svc.AwardCorrect(ctx, "s2", 2)

	byReason, total, err := svc.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if total != 4+PerfectBonus+2 {
		t.Errorf("total = %d, want %d", total, 4+PerfectBonus+2)
	}
	if byReason[string(ReasonCorrect)] != 6 {
		t.Errorf("correct = %d, want 6", byReason[string(ReasonCorrect)])
	}
}

func TestResetSession(t *testing.T) {
	svc := NewService(&fakeEventRepo{})
	svc.AwardPerfect(context.Background(), "s1")

	svc.ResetSession()

	if len(svc.SessionHearts) != 0 {
		t.Errorf("session accumulator = %d after reset, want 0", len(svc.SessionHearts))
	}
}

func TestGrant_NilRepoStillAccumulates(t *testing.T) {
	svc := NewService(nil)

	award := svc.AwardCorrect(context.Background(), "s1", 3)

	if award == nil || len(svc.SessionHearts) != 1 {
		t.Error("grant without a repo should still accumulate in-session")
	}
}
