package hearts

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keepsake-care/keepsake/internal/rewards"
	"github.com/keepsake-care/keepsake/internal/router"
	"github.com/keepsake-care/keepsake/internal/screen"
	"github.com/keepsake-care/keepsake/internal/ui/layout"
	"github.com/keepsake-care/keepsake/internal/ui/theme"
)

type totalsLoadedMsg struct {
	ByReason map[string]int
	Total    int
	Err      error
}

// HeartsScreen shows the lifetime heart collection, broken down by how
// each batch was earned.
type HeartsScreen struct {
	service  *rewards.Service
	byReason map[string]int
	total    int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HeartsScreen)(nil)
var _ screen.KeyHintProvider = (*HeartsScreen)(nil)

// New creates a HeartsScreen.
func New(service *rewards.Service) *HeartsScreen {
	return &HeartsScreen{service: service}
}

func (s *HeartsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		byReason, total, err := s.service.Totals(context.Background())
		return totalsLoadedMsg{ByReason: byReason, Total: total, Err: err}
	}
}

func (s *HeartsScreen) Title() string {
	return "Hearts"
}

func (s *HeartsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HeartsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case totalsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.byReason = msg.ByReason
			s.total = msg.Total
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *HeartsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Counting hearts...")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("♥ %d hearts collected", s.total)))
	b.WriteString("\n\n")

	if s.total == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Finish a quiz to earn your first hearts."))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Stable presentation order.
	for _, reason := range []rewards.Reason{rewards.ReasonCorrect, rewards.ReasonPerfect} {
		count := s.byReason[string(reason)]
		if count == 0 {
			continue
		}
		line := fmt.Sprintf("%-22s ♥ %d", reason.DisplayName(), count)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
