package battle

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/dojo/internal/bigo"
	"github.com/abhisek/dojo/internal/router"
	"github.com/abhisek/dojo/internal/screen"
	"github.com/abhisek/dojo/internal/store"
	"github.com/abhisek/dojo/internal/ui/components"
	"github.com/abhisek/dojo/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseSummary
)

// BattleScreen runs one Big O battle: timed rounds of guessing the
// complexity of a code snippet.
type BattleScreen struct {
	battle    *bigo.Battle
	eventRepo store.EventRepo
	sessionID string

	mc            components.MultiChoice
	phase         phase
	remaining     int
	lastResult    bigo.RoundResult
	feedbackRound bigo.Round // the round just answered, kept for feedback
	startedAt     time.Time
}

var _ screen.Screen = (*BattleScreen)(nil)
var _ screen.KeyHintProvider = (*BattleScreen)(nil)
var _ screen.StatsProvider = (*BattleScreen)(nil)

// New creates a battle screen over the given bank and language.
func New(bank *bigo.Bank, language string, eventRepo store.EventRepo) *BattleScreen {
	return &BattleScreen{
		battle:    bigo.NewBattle(bank, language, bigo.DefaultRounds),
		eventRepo: eventRepo,
		sessionID: uuid.New().String(),
		startedAt: time.Now(),
	}
}

func (s *BattleScreen) Init() tea.Cmd {
	s.startRound()
	return tea.Batch(s.recordSessionStart(), tickCmd())
}

func (s *BattleScreen) Title() string {
	return "Big O Battle"
}

func (s *BattleScreen) HeaderStats() (int, int) {
	return s.battle.Score(), s.battle.Streak()
}

func (s *BattleScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *BattleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case answerRecordedMsg:
		// Persistence failures never interrupt play.
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *BattleScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.phase != phaseAnswering {
		return s, nil
	}
	s.remaining--
	if s.remaining > 0 {
		return s, tickCmd()
	}

	// Round expired.
	s.feedbackRound = *s.battle.Current()
	res := s.battle.Timeout()
	s.lastResult = res
	s.phase = phaseFeedback
	return s, s.recordAnswer(res)
}

func (s *BattleScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseSummary:
		if key == "enter" {
			return s, tea.Batch(
				s.recordSessionEnd(),
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		}
		return s, nil

	case phaseFeedback:
		return s.advance()

	case phaseAnswering:
		round := s.battle.Current()
		if round == nil {
			return s, nil
		}
		switch key {
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(round.Options) {
				s.mc.Selected = idx
				return s.submit()
			}
			return s, nil
		case "enter":
			return s.submit()
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *BattleScreen) submit() (screen.Screen, tea.Cmd) {
	round := s.battle.Current()
	if round == nil || s.mc.Selected < 0 || s.mc.Selected >= len(round.Options) {
		return s, nil
	}

	s.mc.Submitted = true
	s.mc.ChosenIndex = s.mc.Selected

	s.feedbackRound = *round
	res := s.battle.Answer(round.Options[s.mc.Selected])
	s.lastResult = res
	s.phase = phaseFeedback
	return s, s.recordAnswer(res)
}

// advance moves past feedback to the next round or the summary.
func (s *BattleScreen) advance() (screen.Screen, tea.Cmd) {
	if s.battle.Done() {
		s.phase = phaseSummary
		return s, nil
	}
	s.startRound()
	return s, tickCmd()
}

func (s *BattleScreen) startRound() {
	round := s.battle.NextRound()
	if round == nil {
		s.phase = phaseSummary
		return
	}
	s.mc = components.NewMultiChoice("", round.Options, round.CorrectIndex)
	s.phase = phaseAnswering
	s.remaining = int(bigo.RoundTime.Seconds())
}

func (s *BattleScreen) recordSessionStart() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	return func() tea.Msg {
		_ = s.eventRepo.AppendSession(context.Background(), store.SessionEventData{
			SessionID: s.sessionID,
			Mode:      "battle",
			Action:    "start",
		})
		return nil
	}
}

func (s *BattleScreen) recordSessionEnd() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	rounds := len(s.battle.Results())
	score := s.battle.Score()
	duration := int(time.Since(s.startedAt).Seconds())
	return func() tea.Msg {
		_ = s.eventRepo.AppendSession(context.Background(), store.SessionEventData{
			SessionID:      s.sessionID,
			Mode:           "battle",
			Action:         "end",
			RoundsPlayed:   rounds,
			CorrectAnswers: score,
			DurationSecs:   duration,
		})
		return nil
	}
}

func (s *BattleScreen) recordAnswer(res bigo.RoundResult) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	data := store.BattleAnswerEventData{
		SessionID:          s.sessionID,
		Language:           s.battle.Language,
		Round:              res.Round,
		CorrectComplexity:  string(s.feedbackRound.Example.Complexity),
		SelectedComplexity: res.Selected,
		Correct:            res.Correct,
		TimedOut:           res.TimedOut,
		TimeMs:             int(res.Elapsed.Milliseconds()),
	}
	return func() tea.Msg {
		err := s.eventRepo.AppendBattleAnswer(context.Background(), data)
		return answerRecordedMsg{Err: err}
	}
}

// tickCmd returns a 1-second countdown tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
