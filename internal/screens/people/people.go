package people

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keepsake-care/keepsake/internal/profile"
	"github.com/keepsake-care/keepsake/internal/router"
	"github.com/keepsake-care/keepsake/internal/screen"
	"github.com/keepsake-care/keepsake/internal/store"
	"github.com/keepsake-care/keepsake/internal/ui/components"
	"github.com/keepsake-care/keepsake/internal/ui/layout"
	"github.com/keepsake-care/keepsake/internal/ui/theme"

	"github.com/google/uuid"
)

type peopleLoadedMsg struct {
	Persons []profile.Person
	Err     error
}

type personSavedMsg struct {
	Err error
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmDelete
)

// Field order in the add form.
const (
	fieldName = iota
	fieldRelationship
	fieldLocation
	fieldFunFact
	fieldPhotoRef
	fieldCount
)

// PeopleScreen manages the family circle roster: the caregiver-maintained
// list of people the quiz draws on.
type PeopleScreen struct {
	repo store.ProfileRepo

	persons  []profile.Person
	selected int
	loaded   bool
	mode     mode
	errMsg   string

	inputs  [fieldCount]components.TextInput
	focused int
}

var _ screen.Screen = (*PeopleScreen)(nil)
var _ screen.KeyHintProvider = (*PeopleScreen)(nil)

// New creates a PeopleScreen.
func New(repo store.ProfileRepo) *PeopleScreen {
	s := &PeopleScreen{repo: repo}
	s.inputs[fieldName] = components.NewTextInput("Name", "e.g. Sarah", 60)
	s.inputs[fieldRelationship] = components.NewTextInput("Relationship", "e.g. Daughter", 40)
	s.inputs[fieldLocation] = components.NewTextInput("Lives in", "e.g. Wellington", 60)
	s.inputs[fieldFunFact] = components.NewTextInput("Fun fact", "e.g. Loves gardening", 120)
	s.inputs[fieldPhotoRef] = components.NewTextInput("Photo file", "optional", 120)
	return s
}

func (s *PeopleScreen) Init() tea.Cmd {
	return s.load()
}

func (s *PeopleScreen) load() tea.Cmd {
	return func() tea.Msg {
		persons, err := s.repo.List(context.Background())
		return peopleLoadedMsg{Persons: persons, Err: err}
	}
}

func (s *PeopleScreen) Title() string {
	return "Family Circle"
}

func (s *PeopleScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeAdd:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmDelete:
		return []layout.KeyHint{
			{Key: "Y", Description: "Remove"},
			{Key: "N", Description: "Keep"},
		}
	default:
		return []layout.KeyHint{
			{Key: "A", Description: "Add person"},
			{Key: "D", Description: "Remove"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *PeopleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case peopleLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.persons = msg.Persons
			if s.selected >= len(s.persons) {
				s.selected = max(len(s.persons)-1, 0)
			}
		}
		s.loaded = true
		return s, nil

	case personSavedMsg:
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

func (s *PeopleScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.mode {
	case modeAdd:
		return s.handleAddKey(msg)

	case modeConfirmDelete:
		switch key {
		case "y", "Y":
			s.mode = modeList
			return s, s.deleteSelected()
		case "n", "N", "esc":
			s.mode = modeList
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "a", "A":
		s.enterAddMode()
		return s, s.inputs[fieldName].Focus()
	case "d", "D":
		if len(s.persons) > 0 {
			s.mode = modeConfirmDelete
		}
		return s, nil
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.persons)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *PeopleScreen) enterAddMode() {
	s.mode = modeAdd
	s.focused = fieldName
	for i := range s.inputs {
		s.inputs[i].Reset()
		s.inputs[i].Blur()
	}
}

func (s *PeopleScreen) handleAddKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeList
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

func (s *PeopleScreen) save() tea.Cmd {
	p := profile.Person{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(s.inputs[fieldName].Value()),
		Relationship: strings.TrimSpace(s.inputs[fieldRelationship].Value()),
		Location:     strings.TrimSpace(s.inputs[fieldLocation].Value()),
		FunFact:      strings.TrimSpace(s.inputs[fieldFunFact].Value()),
		PhotoRef:     strings.TrimSpace(s.inputs[fieldPhotoRef].Value()),
	}
	if p.Name == "" {
		s.errMsg = "a name is needed"
		return nil
	}
	s.errMsg = ""
	return func() tea.Msg {
		return personSavedMsg{Err: s.repo.Add(context.Background(), p)}
	}
}

func (s *PeopleScreen) deleteSelected() tea.Cmd {
	if s.selected >= len(s.persons) {
		return nil
	}
	id := s.persons[s.selected].ID
	return func() tea.Msg {
		if err := s.repo.Delete(context.Background(), id); err != nil {
			return personSavedMsg{Err: err}
		}
		return personSavedMsg{}
	}
}

func (s *PeopleScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	switch s.mode {
	case modeAdd:
		return s.renderForm(width)
	case modeConfirmDelete:
		return s.renderConfirmDelete(width)
	}
	return s.renderList(width, height)
}

func (s *PeopleScreen) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
		b.WriteString("\n\n")
	}

	if len(s.persons) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\nNo one here yet. Press A to add the first person."))
		return b.String()
	}

	for i, p := range s.persons {
		marker := "  "
		if i == s.selected {
			marker = "▸ "
		}

		var details []string
		if p.Relationship != "" {
			details = append(details, p.Relationship)
		}
		if p.Location != "" {
			details = append(details, p.Location)
		}
		if p.PhotoRef != "" {
			details = append(details, "photo")
		}

		line := fmt.Sprintf("  %s%s", marker, p.Name)
		if len(details) > 0 {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("  (" + strings.Join(details, ", ") + ")")
		}

		if i == s.selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")

		if i == s.selected && p.FunFact != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("      " + p.FunFact))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *PeopleScreen) renderForm(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render("  Add a person"))
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

func (s *PeopleScreen) renderConfirmDelete(width int) string {
	name := ""
	if s.selected < len(s.persons) {
		name = s.persons[s.selected].Name
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Remove %s from the family circle?", name)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Their memories stay on the board."))
	return b.String()
}
