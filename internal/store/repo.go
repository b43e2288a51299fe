package store

import (
	"context"
	"time"

	"github.com/keepsake-care/keepsake/internal/memorylog"
	"github.com/keepsake-care/keepsake/internal/profile"
)

// ProfileRepo manages the caregiver-entered roster of people.
type ProfileRepo interface {
	// List returns all people, oldest first.
	List(ctx context.Context) ([]profile.Person, error)

	// Add stores a new person. The ID must be set by the caller.
	Add(ctx context.Context, p profile.Person) error

	// Delete removes a person by id. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// MemoryRepo manages the memory board entries.
type MemoryRepo interface {
	// List returns all entries, newest first.
	List(ctx context.Context) ([]memorylog.Entry, error)

	// Add stores a new entry. The ID must be set by the caller.
	Add(ctx context.Context, e memorylog.Entry) error

	// Delete removes an entry by id. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// HeartEventData captures one reward grant.
type HeartEventData struct {
	SessionID string
	Amount    int
	Reason    string
}

// HeartEventRecord is a stored reward grant.
type HeartEventRecord struct {
	SessionID string
	Amount    int
	Reason    string
	Sequence  int64
	Timestamp time.Time
}

// QuizEventData captures a session lifecycle event.
type QuizEventData struct {
	SessionID      string
	Action         string // "start" or "end"
	QuestionsTotal int
	Score          int
	DurationSecs   int
}

// QuizSummaryRecord is one finished quiz, for the history screen.
type QuizSummaryRecord struct {
	SessionID      string
	Timestamp      time.Time
	QuestionsTotal int
	Score          int
	DurationSecs   int
	HeartsEarned   int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendHeartEvent records a reward grant.
	AppendHeartEvent(ctx context.Context, data HeartEventData) error

	// AppendQuizEvent records a session start or end.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// HeartTotals returns per-reason heart counts and the overall total.
	HeartTotals(ctx context.Context) (map[string]int, int, error)

	// QueryQuizSummaries returns finished quizzes, newest first, at most
	// limit rows (0 = unlimited).
	QueryQuizSummaries(ctx context.Context, limit int) ([]QuizSummaryRecord, error)
}

// ProgressRepo tracks the single unlock level.
type ProgressRepo interface {
	// CurrentLevel returns the highest unlocked level (starts at 1).
	CurrentLevel(ctx context.Context) (int, error)

	// UnlockNext bumps the level by one and returns the new value.
	UnlockNext(ctx context.Context) (int, error)
}
