package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/keepsake-care/keepsake/internal/session"
	"github.com/keepsake-care/keepsake/internal/ui/components"
	"github.com/keepsake-care/keepsake/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	if s.state.Phase == sess.PhaseEmpty {
		return renderEmpty(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion shows the prompt, any media note, and the four options.
// After a selection the option list reveals correctness and a feedback
// line appears until the auto-advance fires.
func (s *QuizScreen) renderQuestion(width int) string {
	q := s.state.Current()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d of %d", s.state.Index+1, len(s.state.Questions)))
	hearts := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("♥ %d this quiz", s.state.HeartsEarned))

	infoLine := counter
	rightPad := width - lipgloss.Width(counter) - lipgloss.Width(hearts) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + hearts
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(s.state.Index)/float64(len(s.state.Questions)), false, min(width-8, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(q.PromptText))
	b.WriteString("\n")

	if q.MediaRef != "" {
		label := "Photo"
		if q.Category.VoiceSourced() {
			label = "Recording"
		}
		note := label + ": " + q.MediaRef
		if s.media != nil && !s.media.Exists(q.MediaRef) {
			note = label + " unavailable"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(note))
		b.WriteString("\n")
	}
	if q.AuxDateText != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("From " + q.AuxDateText))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.answers.View()))

	if s.state.Answered {
		b.WriteString("\n")
		if s.answers.IsCorrect() {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("That's right! ♥"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Good try"))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("It was: " + q.CorrectAnswer))
		}
	}

	return b.String()
}

// renderEmpty is shown when the roster is too small to compose a quiz.
func renderEmpty(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Not enough to quiz on yet"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Add at least two people to the family circle first."))
	b.WriteString("\n\n")

	btn := components.NewButton("Add people", true, nil)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, btn.View()))
	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Putting your quiz together...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
