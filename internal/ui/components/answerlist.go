package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keepsake-care/keepsake/internal/ui/theme"
)

// AnswerList presents the four answer options of a quiz question. After a
// choice is locked in it reveals the correct option and refuses further
// input, mirroring the session's exactly-once selection rule.
type AnswerList struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Locked       bool
	ChosenIndex  int
}

// NewAnswerList creates an answer list over the question's shuffled options.
func NewAnswerList(options []string, correctIndex int) AnswerList {
	return AnswerList{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (a AnswerList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Enter locks the highlighted option;
// number keys 1-4 lock an option directly.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	if a.Locked {
		return a, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if a.Selected > 0 {
			a.Selected--
		}
	case "down", "j":
		if a.Selected < len(a.Options)-1 {
			a.Selected++
		}
	case "enter":
		a.Locked = true
		a.ChosenIndex = a.Selected
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(a.Options) {
			a.Selected = idx
			a.Locked = true
			a.ChosenIndex = idx
		}
	}

	return a, nil
}

// View renders the options, revealing correctness once locked.
func (a AnswerList) View() string {
	var s string
	for i, opt := range a.Options {
		prefix := "  "
		if i == a.Selected && !a.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if a.Locked {
			switch {
			case i == a.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == a.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		if i == a.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// Chosen returns the locked-in option text, or "" before locking.
func (a AnswerList) Chosen() string {
	if !a.Locked || a.ChosenIndex < 0 || a.ChosenIndex >= len(a.Options) {
		return ""
	}
	return a.Options[a.ChosenIndex]
}

// IsCorrect returns true if the user chose the correct answer.
func (a AnswerList) IsCorrect() bool {
	return a.Locked && a.ChosenIndex == a.CorrectIndex
}
