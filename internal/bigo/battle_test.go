package bigo

import (
	"math/rand/v2"
	"testing"
)

func testBattle(rounds int) *Battle {
	bank := NewBankWithRand(rand.New(rand.NewPCG(1, 1)))
	return NewBattle(bank, "python", rounds)
}

func TestBattle_FullRun(t *testing.T) {
	b := testBattle(5)

	for i := 0; i < 5; i++ {
		r := b.NextRound()
		if r == nil {
			t.Fatalf("round %d: expected a round", i+1)
		}
		// Always answer correctly.
		b.Answer(r.Options[r.CorrectIndex])
	}

	if !b.Done() {
		t.Error("battle should be done after all rounds")
	}
	if b.NextRound() != nil {
		t.Error("NextRound after completion should return nil")
	}
	if b.Score() != 5 {
		t.Errorf("score = %d, want 5", b.Score())
	}
	if b.BestStreak() != 5 {
		t.Errorf("best streak = %d, want 5", b.BestStreak())
	}
	if b.Accuracy() != 1.0 {
		t.Errorf("accuracy = %f, want 1.0", b.Accuracy())
	}
}

func TestBattle_StreakResetsOnWrong(t *testing.T) {
	b := testBattle(3)

	r := b.NextRound()
	b.Answer(r.Options[r.CorrectIndex])

	r = b.NextRound()
	wrong := (r.CorrectIndex + 1) % len(r.Options)
	b.Answer(r.Options[wrong])

	if b.Streak() != 0 {
		t.Errorf("streak = %d after wrong answer, want 0", b.Streak())
	}
	if b.BestStreak() != 1 {
		t.Errorf("best streak = %d, want 1", b.BestStreak())
	}
	if b.Score() != 1 {
		t.Errorf("score = %d, want 1", b.Score())
	}
}

func TestBattle_Timeout(t *testing.T) {
	b := testBattle(2)

	b.NextRound()
	res := b.Timeout()
	if !res.TimedOut {
		t.Error("expected TimedOut result")
	}
	if res.Correct {
		t.Error("timed out round must not count as correct")
	}
	if b.Current() != nil {
		t.Error("timeout should close the current round")
	}
}

func TestBattle_AnswerWithoutRound(t *testing.T) {
	b := testBattle(2)
	res := b.Answer("O(n)")
	if res.Round != 0 || res.Correct {
		t.Errorf("answer without active round should be a no-op, got %+v", res)
	}
	if len(b.Results()) != 0 {
		t.Error("no result should be recorded without an active round")
	}
}

func TestBattle_CorrectIndexMatchesExample(t *testing.T) {
	b := testBattle(10)
	for r := b.NextRound(); r != nil; r = b.NextRound() {
		if !Evaluate(r.Options[r.CorrectIndex], r.Example.Complexity.Display()) {
			t.Fatalf("CorrectIndex %d does not match %q in %v",
				r.CorrectIndex, r.Example.Complexity.Display(), r.Options)
		}
		b.Answer(r.Options[0])
	}
}

func TestNewBattle_UnknownLanguage(t *testing.T) {
	bank := NewBankWithRand(rand.New(rand.NewPCG(1, 1)))
	b := NewBattle(bank, "brainfuck", 0)
	if b.Language != DefaultLanguage {
		t.Errorf("language = %q, want %q", b.Language, DefaultLanguage)
	}
	if b.TotalRound != DefaultRounds {
		t.Errorf("rounds = %d, want %d", b.TotalRound, DefaultRounds)
	}
}
