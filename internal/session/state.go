package session

import (
	"time"

	"github.com/keepsake-care/keepsake/internal/quizgen"
)

// Phase represents where the session is in its lifecycle.
type Phase int

const (
	// PhaseEmpty is the terminal state of a session created with no
	// questions. The caller shows an "add more people" affordance.
	PhaseEmpty Phase = iota

	// PhasePresenting means a question is on screen.
	PhasePresenting

	// PhaseCompleted means the last question has been advanced past.
	PhaseCompleted
)

// State tracks one run-through of a composed question sequence. It is owned
// by exactly one presentation context; transitions happen only through
// SelectAnswer and Advance.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Questions is the fixed ordered sequence, set once at start.
	Questions []quizgen.Question

	// Index is the current question position.
	Index int

	// Phase is the current lifecycle phase.
	Phase Phase

	// PendingSelection is the answer chosen for the current question.
	// Empty until SelectAnswer; cleared on Advance.
	PendingSelection string

	// Answered is true once a selection has been made on the current
	// question. Guards exactly-once selection.
	Answered bool

	// Score is the count of correct answers so far.
	Score int

	// HeartsEarned is the reward currency earned, one per correct answer.
	HeartsEarned int

	// AnsweredWrong collects questions answered incorrectly, in
	// presentation order, for the post-quiz capture follow-up.
	AnsweredWrong []quizgen.Question

	// StartTime is when the session began.
	StartTime time.Time
}

// NewState creates a session over the composed questions. An empty question
// set yields a session already in PhaseEmpty.
func NewState(questions []quizgen.Question, sessionID string) *State {
	phase := PhasePresenting
	if len(questions) == 0 {
		phase = PhaseEmpty
	}
	return &State{
		SessionID: sessionID,
		Questions: questions,
		Phase:     phase,
		StartTime: time.Now(),
	}
}

// Current returns the question on screen, or nil outside PhasePresenting.
func (s *State) Current() *quizgen.Question {
	if s.Phase != PhasePresenting {
		return nil
	}
	return &s.Questions[s.Index]
}

// Completed reports whether the session has ended.
func (s *State) Completed() bool {
	return s.Phase == PhaseCompleted
}
