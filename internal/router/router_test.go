package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/keepsake-care/keepsake/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	quiz := &stubScreen{title: "quiz"}
	r.Push(quiz)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if !quiz.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPushScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	quiz := &stubScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})

	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})

	summary := &stubScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("active = %q, want summary", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}
