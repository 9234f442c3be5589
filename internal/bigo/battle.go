package bigo

import (
	"time"
)

// DefaultRounds is the number of rounds in a battle.
const DefaultRounds = 10

// RoundTime is how long the player has to answer each round.
const RoundTime = 30 * time.Second

// Round is one question in a battle: an example plus its shuffled options.
type Round struct {
	Example      Example
	Options      []string
	CorrectIndex int
}

// RoundResult records the outcome of an answered round.
type RoundResult struct {
	Round    int
	Correct  bool
	Selected string
	Elapsed  time.Duration
	TimedOut bool
}

// Battle is the state of one Big O Battle: a fixed number of rounds in a
// single language, with score and streak tracking. Battle holds no
// rendering concerns; the battle screen drives it.
type Battle struct {
	Language   string
	TotalRound int

	bank    *Bank
	current *Round
	round   int
	score   int
	streak  int
	best    int
	results []RoundResult
	started time.Time
}

// NewBattle creates a battle over the given bank. An unknown language key
// falls back to the bank's default language.
func NewBattle(bank *Bank, language string, rounds int) *Battle {
	if bank.Count(language) == 0 {
		language = DefaultLanguage
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	return &Battle{
		Language:   language,
		TotalRound: rounds,
		bank:       bank,
	}
}

// NextRound advances to the next question. Returns nil when the battle is
// over.
func (b *Battle) NextRound() *Round {
	if b.round >= b.TotalRound {
		b.current = nil
		return nil
	}
	b.round++

	ex := b.bank.PickRandom(b.Language)
	opts := b.bank.Options(ex)

	correct := 0
	for i, o := range opts {
		if Evaluate(o, ex.Complexity.Display()) {
			correct = i
			break
		}
	}

	b.current = &Round{Example: ex, Options: opts, CorrectIndex: correct}
	b.started = time.Now()
	return b.current
}

// Answer scores the player's selection for the current round. Calling it
// with no active round is a no-op returning a zero result.
func (b *Battle) Answer(selected string) RoundResult {
	if b.current == nil {
		return RoundResult{}
	}

	correct := Evaluate(selected, b.current.Example.Complexity.Display())
	res := RoundResult{
		Round:    b.round,
		Correct:  correct,
		Selected: selected,
		Elapsed:  time.Since(b.started),
	}

	b.record(res)
	return res
}

// Timeout records the current round as expired without an answer.
func (b *Battle) Timeout() RoundResult {
	if b.current == nil {
		return RoundResult{}
	}
	res := RoundResult{
		Round:    b.round,
		Elapsed:  time.Since(b.started),
		TimedOut: true,
	}
	b.record(res)
	return res
}

func (b *Battle) record(res RoundResult) {
	if res.Correct {
		b.score++
		b.streak++
		if b.streak > b.best {
			b.best = b.streak
		}
	} else {
		b.streak = 0
	}
	b.results = append(b.results, res)
	b.current = nil
}

// Current returns the active round, or nil between rounds.
func (b *Battle) Current() *Round { return b.current }

// RoundNumber returns the 1-based number of the most recently served round.
func (b *Battle) RoundNumber() int { return b.round }

// Score returns the number of correct answers so far.
func (b *Battle) Score() int { return b.score }

// Streak returns the current run of consecutive correct answers.
func (b *Battle) Streak() int { return b.streak }

// BestStreak returns the longest run of consecutive correct answers.
func (b *Battle) BestStreak() int { return b.best }

// Results returns the per-round outcomes recorded so far.
func (b *Battle) Results() []RoundResult { return b.results }

// Done reports whether all rounds have been answered.
func (b *Battle) Done() bool {
	return b.current == nil && b.round >= b.TotalRound
}

// Accuracy returns the fraction of answered rounds that were correct,
// or 0 when nothing has been answered.
func (b *Battle) Accuracy() float64 {
	if len(b.results) == 0 {
		return 0
	}
	return float64(b.score) / float64(len(b.results))
}
