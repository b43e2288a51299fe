package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keepsake-care/keepsake/internal/media"
	"github.com/keepsake-care/keepsake/internal/progress"
	"github.com/keepsake-care/keepsake/internal/rewards"
	"github.com/keepsake-care/keepsake/internal/router"
	"github.com/keepsake-care/keepsake/internal/screen"
	"github.com/keepsake-care/keepsake/internal/screens/home"
	"github.com/keepsake-care/keepsake/internal/screens/welcome"
	"github.com/keepsake-care/keepsake/internal/store"
	"github.com/keepsake-care/keepsake/internal/ui/layout"
)

// Options carries the wired services into the TUI.
type Options struct {
	Store    *store.Store
	Hearts   *rewards.Service
	Progress *progress.Service
	Media    *media.Resolver
}

// statsMsg refreshes the header numbers.
type statsMsg struct {
	hearts int
	level  int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
	hearts int
	level  int
}

// newAppModel creates an AppModel that opens on the welcome splash.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(
			opts.Store.ProfileRepo(),
			opts.Store.MemoryRepo(),
			opts.Store.EventRepo(),
			opts.Hearts,
			opts.Progress,
			opts.Media,
		)
	}
	return AppModel{
		opts:   opts,
		router: router.New(welcome.New(homeFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.refreshStats())
}

// refreshStats re-reads the header's heart and level counts.
func (m AppModel) refreshStats() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		_, hearts, _ := m.opts.Hearts.Totals(ctx)
		level, _ := m.opts.Progress.CurrentLevel(ctx)
		return statsMsg{hearts: hearts, level: level}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statsMsg:
		m.hearts = msg.hearts
		m.level = msg.level
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Navigation is a good moment to re-read the header numbers; rewards
	// are only granted between screen swaps.
	var refresh tea.Cmd
	switch msg.(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		refresh = m.refreshStats()
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(cmd, refresh)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders bare.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.hearts, m.level, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
