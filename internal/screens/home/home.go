package home

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/keepsake-care/keepsake/internal/media"
	"github.com/keepsake-care/keepsake/internal/progress"
	"github.com/keepsake-care/keepsake/internal/rewards"
	"github.com/keepsake-care/keepsake/internal/router"
	"github.com/keepsake-care/keepsake/internal/screen"
	"github.com/keepsake-care/keepsake/internal/screens/hearts"
	"github.com/keepsake-care/keepsake/internal/screens/history"
	"github.com/keepsake-care/keepsake/internal/screens/memoryboard"
	"github.com/keepsake-care/keepsake/internal/screens/people"
	"github.com/keepsake-care/keepsake/internal/screens/quiz"
	"github.com/keepsake-care/keepsake/internal/store"
	"github.com/keepsake-care/keepsake/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu        components.Menu
	heartCount  int
	level       int
	peopleCount int
	memoryCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Counts are read once here; the screen is
// recreated on every return to home so they stay current enough.
func New(profileRepo store.ProfileRepo, memoryRepo store.MemoryRepo, eventRepo store.EventRepo, heartSvc *rewards.Service, progressSvc *progress.Service, resolver *media.Resolver) *HomeScreen {
	ctx := context.Background()

	var heartCount, level, peopleCount, memoryCount int
	if heartSvc != nil {
		_, heartCount, _ = heartSvc.Totals(ctx)
	}
	if progressSvc != nil {
		level, _ = progressSvc.CurrentLevel(ctx)
	}
	if profileRepo != nil {
		if persons, err := profileRepo.List(ctx); err == nil {
			peopleCount = len(persons)
		}
	}
	if memoryRepo != nil {
		if entries, err := memoryRepo.List(ctx); err == nil {
			memoryCount = len(entries)
		}
	}

	items := []components.MenuItem{
		{Label: "Start Quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quiz.New(profileRepo, memoryRepo, eventRepo, heartSvc, progressSvc, resolver),
				}
			}
		}},
		{Label: "Family Circle", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: people.New(profileRepo)}
			}
		}},
		{Label: "Memory Board", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: memoryboard.New(memoryRepo, resolver)}
			}
		}},
		{Label: "Hearts", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: hearts.New(heartSvc)}
			}
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		heartCount:  heartCount,
		level:       level,
		peopleCount: peopleCount,
		memoryCount: memoryCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}
