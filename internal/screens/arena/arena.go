// Package arena hosts the debate arena screen: a chat panel where the
// student argues with the Teacher and Critic personas.
package arena

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dojo/internal/debate"
	"github.com/abhisek/dojo/internal/llm"
	"github.com/abhisek/dojo/internal/screen"
	"github.com/abhisek/dojo/internal/store"
	"github.com/abhisek/dojo/internal/ui/components"
	"github.com/abhisek/dojo/internal/ui/layout"
)

// stateChangedMsg carries a fresh orchestrator snapshot into the TUI loop.
type stateChangedMsg debate.Snapshot

// ArenaScreen drives one debate session.
type ArenaScreen struct {
	orch    *debate.Orchestrator
	changes chan debate.Snapshot
	snap    debate.Snapshot
	input   components.TextInput
	scroll  int // lines scrolled up from the bottom of the transcript
}

var _ screen.Screen = (*ArenaScreen)(nil)
var _ screen.KeyHintProvider = (*ArenaScreen)(nil)

// New creates a debate arena screen. contextFn supplies the challenge
// snapshot the personas argue about; eventRepo may be nil.
func New(provider llm.Provider, mode debate.Mode, contextFn debate.ContextFunc, eventRepo store.EventRepo) *ArenaScreen {
	orch := debate.New(provider, mode, contextFn, debate.DefaultConfig())
	if eventRepo != nil {
		orch.SetEvents(eventRepo)
	}

	s := &ArenaScreen{
		orch:    orch,
		changes: make(chan debate.Snapshot, 8),
		snap:    orch.State(),
		input:   components.NewTextInput("Make your case...", false, 240),
	}

	// Orchestrator callbacks fire on its goroutines; hand snapshots to the
	// TUI loop through the channel. Dropping under pressure is safe because
	// every snapshot carries complete state.
	orch.OnChange(func(snap debate.Snapshot) {
		select {
		case s.changes <- snap:
		default:
		}
	})

	return s
}

func (s *ArenaScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.waitForChange(), s.input.Init()}
	if s.orch.Mode() == debate.ModeReview {
		cmds = append(cmds, func() tea.Msg {
			s.orch.OpenReview(context.Background())
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (s *ArenaScreen) Title() string {
	if s.orch.Mode() == debate.ModeReview {
		return "Code Review"
	}
	return "Debate Arena"
}

func (s *ArenaScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ArenaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		s.snap = debate.Snapshot(msg)
		return s, s.waitForChange()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s.send()
		case "ctrl+r":
			s.scroll = 0
			s.orch.Reset()
			return s, nil
		case "pgup":
			s.scroll += 4
			return s, nil
		case "pgdown":
			s.scroll -= 4
			if s.scroll < 0 {
				s.scroll = 0
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send hands the composed message to the orchestrator off the TUI loop.
// The orchestrator rejects empty text and concurrent turns itself.
func (s *ArenaScreen) send() (screen.Screen, tea.Cmd) {
	text := s.input.Value()
	if text == "" || s.snap.Loading {
		return s, nil
	}
	s.input = components.NewTextInput("Make your case...", false, 240)
	s.scroll = 0
	return s, tea.Batch(s.input.Init(), func() tea.Msg {
		s.orch.Send(context.Background(), text)
		return nil
	})
}

// waitForChange blocks on the next snapshot from the orchestrator.
func (s *ArenaScreen) waitForChange() tea.Cmd {
	return func() tea.Msg {
		return stateChangedMsg(<-s.changes)
	}
}
