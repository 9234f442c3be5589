package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dojo/internal/screen"
)

type fakeScreen struct {
	name    string
	inited  bool
	lastMsg tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inited = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestPushActivatesAndInits(t *testing.T) {
	menu := &fakeScreen{name: "menu"}
	r := New(menu)

	battle := &fakeScreen{name: "battle"}
	r.Push(battle)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != screen.Screen(battle) {
		t.Fatalf("active = %q, want battle", r.Active().Title())
	}
	if !battle.inited {
		t.Fatal("pushed screen was not initialized")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	menu := &fakeScreen{name: "menu"}
	r := New(menu)
	r.Push(&fakeScreen{name: "debate"})

	r.Pop()

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "menu" {
		t.Fatalf("active = %q, want menu", r.Active().Title())
	}
}

func TestPopKeepsRootScreen(t *testing.T) {
	r := New(&fakeScreen{name: "menu"})

	r.Pop()
	r.Pop()

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
}

func TestUpdateRoutesNavigationMessages(t *testing.T) {
	menu := &fakeScreen{name: "menu"}
	r := New(menu)

	battle := &fakeScreen{name: "battle"}
	r.Update(PushScreenMsg{Screen: battle})
	if r.Active().Title() != "battle" {
		t.Fatalf("active after push = %q, want battle", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "menu" {
		t.Fatalf("active after pop = %q, want menu", r.Active().Title())
	}
}

func TestUpdateForwardsToActiveScreenOnly(t *testing.T) {
	menu := &fakeScreen{name: "menu"}
	r := New(menu)
	debate := &fakeScreen{name: "debate"}
	r.Push(debate)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	r.Update(msg)

	if debate.lastMsg != tea.Msg(msg) {
		t.Fatalf("active screen did not receive the message, got %v", debate.lastMsg)
	}
	if menu.lastMsg != nil {
		t.Fatal("covered screen received a message")
	}
}

func TestViewRendersTopOfStack(t *testing.T) {
	r := New(&fakeScreen{name: "menu"})
	r.Push(&fakeScreen{name: "battle"})

	if got := r.View(80, 24); got != "battle" {
		t.Fatalf("View() = %q, want battle", got)
	}
}
