package quiz

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/keepsake-care/keepsake/internal/media"
	"github.com/keepsake-care/keepsake/internal/progress"
	"github.com/keepsake-care/keepsake/internal/quizgen"
	"github.com/keepsake-care/keepsake/internal/rewards"
	"github.com/keepsake-care/keepsake/internal/router"
	"github.com/keepsake-care/keepsake/internal/screen"
	"github.com/keepsake-care/keepsake/internal/screens/people"
	"github.com/keepsake-care/keepsake/internal/screens/summary"
	sess "github.com/keepsake-care/keepsake/internal/session"
	"github.com/keepsake-care/keepsake/internal/store"
	"github.com/keepsake-care/keepsake/internal/ui/components"
	"github.com/keepsake-care/keepsake/internal/ui/layout"

	"github.com/google/uuid"
)

// AutoAdvanceDelay is how long the answer feedback stays up before the
// session moves to the next question on its own.
const AutoAdvanceDelay = 1200 * time.Millisecond

// QuizScreen implements screen.Screen for an active quiz run.
type QuizScreen struct {
	profileRepo store.ProfileRepo
	memoryRepo  store.MemoryRepo
	eventRepo   store.EventRepo
	hearts      *rewards.Service
	progress    *progress.Service
	media       *media.Resolver

	state   *sess.State
	answers components.AnswerList

	// advanceGen invalidates in-flight auto-advance ticks. Bumped on
	// every selection and every advance, so a tick scheduled for an
	// earlier question lands with a stale generation and does nothing.
	advanceGen int

	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen with injected dependencies.
func New(profileRepo store.ProfileRepo, memoryRepo store.MemoryRepo, eventRepo store.EventRepo, hearts *rewards.Service, progressSvc *progress.Service, resolver *media.Resolver) *QuizScreen {
	return &QuizScreen{
		profileRepo: profileRepo,
		memoryRepo:  memoryRepo,
		eventRepo:   eventRepo,
		hearts:      hearts,
		progress:    progressSvc,
		media:       resolver,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.composeQuiz()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	switch {
	case s.state.Phase == sess.PhaseEmpty:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add people"},
			{Key: "Esc", Description: "Back"},
		}
	case s.state.Answered:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓ 1-4", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleReady(msg)

	case autoAdvanceMsg:
		if msg.Gen != s.advanceGen {
			return s, nil
		}
		return s.advance()

	case quizEndMsg:
		return s.handleQuizEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// composeQuiz loads the roster and memory board and composes the question
// sequence off the UI loop.
func (s *QuizScreen) composeQuiz() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		persons, err := s.profileRepo.List(ctx)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		entries, err := s.memoryRepo.List(ctx)
		if err != nil {
			return quizReadyMsg{Err: err}
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		questions := quizgen.Compose(rng, persons, entries, quizgen.DefaultTargetCount)

		state := sess.NewState(questions, uuid.New().String())

		if state.Phase != sess.PhaseEmpty {
			_ = s.eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
				SessionID:      state.SessionID,
				Action:         "start",
				QuestionsTotal: len(questions),
			})
		}

		return quizReadyMsg{State: state}
	}
}

func (s *QuizScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.hearts.ResetSession()
	s.mountCurrent()
	return s, nil
}

// mountCurrent rebuilds the answer list for the question on screen.
func (s *QuizScreen) mountCurrent() {
	q := s.state.Current()
	if q == nil {
		return
	}
	s.answers = components.NewAnswerList(q.AllAnswers, correctIndex(q))
}

func correctIndex(q *quizgen.Question) int {
	for i, opt := range q.AllAnswers {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state. Any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		return s, nil
	}

	if s.state.Phase == sess.PhaseEmpty {
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: people.New(s.profileRepo),
				}
			}
		}
		return s, nil
	}

	if s.state.Phase != sess.PhasePresenting {
		return s, nil
	}

	// Feedback is showing. Any key advances early; the pending tick is
	// invalidated by the generation bump inside advance.
	if s.state.Answered {
		return s.advance()
	}

	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.answers, cmd = s.answers.Update(msg)
	if s.answers.Locked {
		return s.recordSelection()
	}
	return s, cmd
}

// recordSelection commits the locked-in choice and schedules the delayed
// advance.
func (s *QuizScreen) recordSelection() (screen.Screen, tea.Cmd) {
	sess.SelectAnswer(s.state, s.answers.Chosen())

	s.advanceGen++
	gen := s.advanceGen
	return s, tea.Tick(AutoAdvanceDelay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Gen: gen}
	})
}

// advance moves past the current question. Called by the auto-advance tick
// or by an early keypress during feedback.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.advanceGen++

	if sess.Advance(s.state) {
		s.mountCurrent()
		return s, nil
	}
	return s, func() tea.Msg { return quizEndMsg{} }
}

// handleQuizEnd persists the run, grants rewards, and swaps in the summary
// so Esc from there lands on home rather than back in a finished quiz.
func (s *QuizScreen) handleQuizEnd() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	sum := sess.BuildSummary(s.state)

	_ = s.eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
		SessionID:      s.state.SessionID,
		Action:         "end",
		QuestionsTotal: sum.Total,
		Score:          sum.Score,
		DurationSecs:   int(sum.Duration.Seconds()),
	})

	s.hearts.AwardCorrect(ctx, s.state.SessionID, sum.HeartsEarned)
	if sum.Perfect() {
		s.hearts.AwardPerfect(ctx, s.state.SessionID)
	}

	// Finishing unlocks the next level regardless of score; only the
	// bonus hearts are gated on a perfect run.
	newLevel := 0
	if lvl, err := s.progress.UnlockNextLevel(ctx); err == nil {
		newLevel = lvl
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(sum, newLevel),
		}
	}
}
