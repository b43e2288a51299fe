package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/keepsake-care/keepsake/internal/memorylog"
	"github.com/keepsake-care/keepsake/internal/profile"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProfileRepo_RoundTrip(t *testing.T) {
	s := testStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := profile.Person{
		ID:           "p1",
		Name:         "Alice",
		Relationship: "Daughter",
		Location:     "Wellington",
		FunFact:      "Loves gardening",
		PhotoRef:     "alice.jpg",
	}
	if err := repo.Add(ctx, p); err != nil {
		t.Fatalf("add: %v", err)
	}

	people, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(people) != 1 {
		t.Fatalf("people = %d, want 1", len(people))
	}
	if people[0] != p {
		t.Errorf("round trip mismatch: got %+v, want %+v", people[0], p)
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	people, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(people) != 0 {
		t.Errorf("people = %d after delete, want 0", len(people))
	}
}

func TestProfileRepo_AddRequiresID(t *testing.T) {
	s := testStore(t)
	if err := s.ProfileRepo().Add(context.Background(), profile.Person{Name: "Alice"}); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestMemoryRepo_RoundTrip(t *testing.T) {
	s := testStore(t)
	repo := s.MemoryRepo()
	ctx := context.Background()

	created := time.Date(2026, time.March, 12, 10, 0, 0, 0, time.UTC)
	e := memorylog.Entry{
		ID:         "m1",
		PersonName: "Alice",
		Text:       "Fish and chips at the beach",
		Kind:       memorylog.KindPhoto,
		MediaRef:   "beach.jpg",
		CreatedAt:  created,
	}
	if err := repo.Add(ctx, e); err != nil {
		t.Fatalf("add: %v", err)
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	got := entries[0]
	if got.ID != e.ID || got.PersonName != e.PersonName || got.Text != e.Text ||
		got.Kind != e.Kind || got.MediaRef != e.MediaRef {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, e)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestMemoryRepo_NewestFirst(t *testing.T) {
	s := testStore(t)
	repo := s.MemoryRepo()
	ctx := context.Background()

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"m1", "m2", "m3"} {
		e := memorylog.Entry{ID: id, PersonName: "Alice", Kind: memorylog.KindPhoto, CreatedAt: base.AddDate(0, 0, i)}
		if err := repo.Add(ctx, e); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if entries[0].ID != "m3" || entries[2].ID != "m1" {
		t.Errorf("order = [%s %s %s], want newest first", entries[0].ID, entries[1].ID, entries[2].ID)
	}
}

func TestEventRepo_HeartTotals(t *testing.T) {
	s := testStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	grants := []HeartEventData{
		{SessionID: "s1", Amount: 4, Reason: "correct"},
		{SessionID: "s1", Amount: 3, Reason: "perfect"},
		{SessionID: "s2", Amount: 2, Reason: "correct"},
	}
	for _, g := range grants {
		if err := repo.AppendHeartEvent(ctx, g); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byReason, total, err := repo.HeartTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if total != 9 {
		t.Errorf("total = %d, want 9", total)
	}
	if byReason["correct"] != 6 {
		t.Errorf("correct = %d, want 6", byReason["correct"])
	}
	if byReason["perfect"] != 3 {
		t.Errorf("perfect = %d, want 3", byReason["perfect"])
	}
}

func TestEventRepo_QuizSummaries(t *testing.T) {
	s := testStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, data := range []QuizEventData{
		{SessionID: "s1", Action: "start"},
		{SessionID: "s1", Action: "end", QuestionsTotal: 10, Score: 7, DurationSecs: 90},
		{SessionID: "s2", Action: "start"},
		{SessionID: "s2", Action: "end", QuestionsTotal: 10, Score: 10, DurationSecs: 75},
	} {
		if err := repo.AppendQuizEvent(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendHeartEvent(ctx, HeartEventData{SessionID: "s2", Amount: 10, Reason: "correct"}); err != nil {
		t.Fatalf("append heart: %v", err)
	}

	records, err := repo.QueryQuizSummaries(ctx, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (end events only)", len(records))
	}
	if records[0].SessionID != "s2" {
		t.Errorf("first record = %s, want s2 (newest first)", records[0].SessionID)
	}
	if records[0].HeartsEarned != 10 {
		t.Errorf("s2 hearts = %d, want 10", records[0].HeartsEarned)
	}
	if records[1].HeartsEarned != 0 {
		t.Errorf("s1 hearts = %d, want 0", records[1].HeartsEarned)
	}

	limited, err := repo.QueryQuizSummaries(ctx, 1)
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited records = %d, want 1", len(limited))
	}
}

func TestProgressRepo_UnlockNext(t *testing.T) {
	s := testStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	level, err := repo.CurrentLevel(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if level != 1 {
		t.Errorf("initial level = %d, want 1", level)
	}

	next, err := repo.UnlockNext(ctx)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if next != 2 {
		t.Errorf("level = %d after unlock, want 2", next)
	}
}

func TestStore_Reset(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.ProfileRepo().Add(ctx, profile.Person{ID: "p1", Name: "Alice"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.ProgressRepo().UnlockNext(ctx); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	people, err := s.ProfileRepo().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(people) != 0 {
		t.Errorf("people = %d after reset, want 0", len(people))
	}
	level, err := s.ProgressRepo().CurrentLevel(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if level != 1 {
		t.Errorf("level = %d after reset, want 1", level)
	}
}
