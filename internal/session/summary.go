package session

import (
	"time"

	"github.com/keepsake-care/keepsake/internal/quizgen"
)

// Summary is the final report handed to the host on completion. The host
// persists the hearts and level unlock; the session only supplies values.
type Summary struct {
	SessionID     string
	Total         int
	Score         int
	HeartsEarned  int
	AnsweredWrong []quizgen.Question
	Duration      time.Duration
}

// Accuracy returns the fraction of questions answered correctly.
func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total)
}

// Perfect reports whether every question was answered correctly.
func (s Summary) Perfect() bool {
	return s.Total > 0 && s.Score == s.Total
}

// BuildSummary snapshots the session's final numbers.
func BuildSummary(s *State) *Summary {
	return &Summary{
		SessionID:     s.SessionID,
		Total:         len(s.Questions),
		Score:         s.Score,
		HeartsEarned:  s.HeartsEarned,
		AnsweredWrong: s.AnsweredWrong,
		Duration:      time.Since(s.StartTime),
	}
}
