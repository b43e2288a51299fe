package memoryboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keepsake-care/keepsake/internal/media"
	"github.com/keepsake-care/keepsake/internal/memorylog"
	"github.com/keepsake-care/keepsake/internal/router"
	"github.com/keepsake-care/keepsake/internal/screen"
	"github.com/keepsake-care/keepsake/internal/store"
	"github.com/keepsake-care/keepsake/internal/ui/components"
	"github.com/keepsake-care/keepsake/internal/ui/layout"
	"github.com/keepsake-care/keepsake/internal/ui/theme"

	"github.com/google/uuid"
)

type entriesLoadedMsg struct {
	Entries []memorylog.Entry
	Err     error
}

type entrySavedMsg struct {
	Err error
}

type mode int

const (
	modeList mode = iota
	modeAdd
)

const (
	fieldPerson = iota
	fieldText
	fieldMediaRef
	fieldCount
)

// visibleEntries caps the list rendering; older entries scroll off.
const visibleEntries = 12

// BoardScreen shows and edits the memory board: the running log of photos
// and voice notes the quiz draws memory questions from.
type BoardScreen struct {
	repo  store.MemoryRepo
	media *media.Resolver

	entries      []memorylog.Entry
	selected     int
	scrollOffset int
	loaded       bool
	mode         mode
	errMsg       string

	inputs   [fieldCount]components.TextInput
	focused  int
	addVoice bool // false = photo entry
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)

// New creates a BoardScreen.
func New(repo store.MemoryRepo, resolver *media.Resolver) *BoardScreen {
	s := &BoardScreen{repo: repo, media: resolver}
	s.inputs[fieldPerson] = components.NewTextInput("Who is it about", "e.g. Sarah", 60)
	s.inputs[fieldText] = components.NewTextInput("Caption", "what was happening", 400)
	s.inputs[fieldMediaRef] = components.NewTextInput("Media file", "photo or recording", 120)
	return s
}

func (s *BoardScreen) Init() tea.Cmd {
	return s.load()
}

func (s *BoardScreen) load() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.repo.List(context.Background())
		return entriesLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *BoardScreen) Title() string {
	return "Memory Board"
}

func (s *BoardScreen) KeyHints() []layout.KeyHint {
	if s.mode == modeAdd {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+V", Description: "Photo/voice"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add memory"},
		{Key: "D", Description: "Remove"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
			if s.selected >= len(s.entries) {
				s.selected = max(len(s.entries)-1, 0)
			}
		}
		s.loaded = true
		return s, nil

	case entrySavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.mode = modeList
		return s, s.load()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeAdd {
		var cmd tea.Cmd
		s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *BoardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.mode == modeAdd {
		return s.handleAddKey(msg)
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "a", "A":
		s.enterAddMode()
		return s, s.inputs[fieldPerson].Focus()
	case "d", "D":
		return s, s.deleteSelected()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			if s.selected < s.scrollOffset {
				s.scrollOffset = s.selected
			}
		}
	case "down", "j":
		if s.selected < len(s.entries)-1 {
			s.selected++
			if s.selected >= s.scrollOffset+visibleEntries {
				s.scrollOffset = s.selected - visibleEntries + 1
			}
		}
	}
	return s, nil
}

func (s *BoardScreen) enterAddMode() {
	s.mode = modeAdd
	s.focused = fieldPerson
	s.addVoice = false
	for i := range s.inputs {
		s.inputs[i].Reset()
		s.inputs[i].Blur()
	}
}

func (s *BoardScreen) handleAddKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeList
		return s, nil
	case "ctrl+v":
		s.addVoice = !s.addVoice
		return s, nil
	case "tab", "shift+tab":
		s.inputs[s.focused].Blur()
		if msg.String() == "tab" {
			s.focused = (s.focused + 1) % fieldCount
		} else {
			s.focused = (s.focused - 1 + fieldCount) % fieldCount
		}
		return s, s.inputs[s.focused].Focus()
	case "enter":
		return s, s.save()
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *BoardScreen) save() tea.Cmd {
	kind := memorylog.KindPhoto
	if s.addVoice {
		kind = memorylog.KindVoice
	}
	e := memorylog.Entry{
		ID:         uuid.New().String(),
		PersonName: strings.TrimSpace(s.inputs[fieldPerson].Value()),
		Text:       strings.TrimSpace(s.inputs[fieldText].Value()),
		Kind:       kind,
		MediaRef:   strings.TrimSpace(s.inputs[fieldMediaRef].Value()),
		CreatedAt:  time.Now(),
	}
	if e.Text == "" && e.MediaRef == "" {
		s.errMsg = "a caption or a media file is needed"
		return nil
	}
	s.errMsg = ""
	return func() tea.Msg {
		return entrySavedMsg{Err: s.repo.Add(context.Background(), e)}
	}
}

func (s *BoardScreen) deleteSelected() tea.Cmd {
	if s.selected >= len(s.entries) {
		return nil
	}
	id := s.entries[s.selected].ID
	return func() tea.Msg {
		if err := s.repo.Delete(context.Background(), id); err != nil {
			return entrySavedMsg{Err: err}
		}
		return entrySavedMsg{}
	}
}

func (s *BoardScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}
	if s.mode == modeAdd {
		return s.renderForm(width)
	}
	return s.renderList(width)
}

func (s *BoardScreen) renderList(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
		b.WriteString("\n\n")
	}

	if len(s.entries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\nThe board is empty. Press A to pin the first memory."))
		return b.String()
	}

	end := min(s.scrollOffset+visibleEntries, len(s.entries))
	for i := s.scrollOffset; i < end; i++ {
		e := s.entries[i]

		marker := "  "
		if i == s.selected {
			marker = "▸ "
		}

		icon := "📷"
		if e.Kind == memorylog.KindVoice {
			icon = "🎙"
		}

		who := e.PersonName
		if who == "" {
			who = "(untagged)"
		}

		line := fmt.Sprintf("  %s%s %s  %s", marker, icon, who,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.MonthYear()))
		if e.MediaRef != "" && s.media != nil && !s.media.Exists(e.MediaRef) {
			line += lipgloss.NewStyle().Foreground(theme.Error).Render("  (file missing)")
		}

		if i == s.selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")

		if i == s.selected && e.Text != "" {
			caption := e.RecallPrefix()
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("       " + caption))
			b.WriteString("\n")
		}
	}

	if len(s.entries) > visibleEntries {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d of %d", s.selected+1, len(s.entries))))
	}

	return b.String()
}

func (s *BoardScreen) renderForm(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render("  Pin a memory"))
	b.WriteString("\n\n")

	kind := "Photo"
	if s.addVoice {
		kind = "Voice note"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
		Render("  Kind: " + kind + "  (Ctrl+V to switch)"))
	b.WriteString("\n\n")

	for i := range s.inputs {
		b.WriteString("  " + s.inputs[i].View())
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
	}

	return b.String()
}
