package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keepsake-care/keepsake/internal/router"
	"github.com/keepsake-care/keepsake/internal/screen"
	"github.com/keepsake-care/keepsake/internal/store"
	"github.com/keepsake-care/keepsake/internal/ui/layout"
	"github.com/keepsake-care/keepsake/internal/ui/theme"
)

// historyLimit caps how many past quizzes are fetched.
const historyLimit = 50

// visibleRows caps the rendered window; up/down scrolls through the rest.
const visibleRows = 14

type historyLoadedMsg struct {
	Records []store.QuizSummaryRecord
	Err     error
}

// HistoryScreen lists past quizzes, newest first.
type HistoryScreen struct {
	eventRepo    store.EventRepo
	records      []store.QuizSummaryRecord
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.QueryQuizSummaries(context.Background(), historyLimit)
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.records)-visibleRows {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  No quizzes yet. The first one is waiting on the home screen.")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("  %-18s %-12s %-10s %s", "When", "Score", "Hearts", "Time")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).
		Render("  " + strings.Repeat("─", min(width-6, 54))))
	b.WriteString("\n")

	end := min(s.scrollOffset+visibleRows, len(s.records))
	for _, rec := range s.records[s.scrollOffset:end] {
		when := rec.Timestamp.Format("Jan 2 3:04pm")
		score := fmt.Sprintf("%d/%d", rec.Score, rec.QuestionsTotal)
		hearts := fmt.Sprintf("♥ %d", rec.HeartsEarned)
		dur := fmt.Sprintf("%d:%02d", rec.DurationSecs/60, rec.DurationSecs%60)

		line := fmt.Sprintf("  %-18s %-12s %-10s %s", when, score, hearts, dur)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if rec.QuestionsTotal > 0 && rec.Score == rec.QuestionsTotal {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if len(s.records) > visibleRows {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  showing %d–%d of %d", s.scrollOffset+1, end, len(s.records))))
	}

	return b.String()
}
