package bigo

import (
	"math/rand/v2"
	"testing"
)

func testBank() *Bank {
	return NewBankWithRand(rand.New(rand.NewPCG(42, 0)))
}

func TestPickRandom_KnownLanguage(t *testing.T) {
	b := testBank()
	for i := 0; i < 50; i++ {
		ex := b.PickRandom("python")
		if ex.Language != "python" {
			t.Fatalf("PickRandom(python) returned %q example", ex.Language)
		}
	}
}

func TestPickRandom_UnknownLanguageFallsBack(t *testing.T) {
	b := testBank()
	ex := b.PickRandom("cobol")
	if ex.Language != DefaultLanguage {
		t.Errorf("unknown key should fall back to %q, got %q", DefaultLanguage, ex.Language)
	}
}

func TestOptions_Invariants(t *testing.T) {
	b := testBank()

	for _, lang := range b.Languages() {
		for i := 0; i < 25; i++ {
			ex := b.PickRandom(lang)
			opts := b.Options(ex)

			if len(opts) != OptionCount {
				t.Fatalf("%s: got %d options, want %d", lang, len(opts), OptionCount)
			}

			// The correct label appears exactly once.
			matches := 0
			for _, o := range opts {
				if Evaluate(o, ex.Complexity.Display()) {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("%s: correct label appears %d times in %v", lang, matches, opts)
			}

			// No duplicate labels.
			seen := make(map[string]bool, len(opts))
			for _, o := range opts {
				if seen[o] {
					t.Errorf("%s: duplicate option %q in %v", lang, o, opts)
				}
				seen[o] = true
			}
		}
	}
}

func TestOptions_Deterministic(t *testing.T) {
	a := NewBankWithRand(rand.New(rand.NewPCG(7, 7)))
	b := NewBankWithRand(rand.New(rand.NewPCG(7, 7)))

	exA := a.PickRandom("go")
	exB := b.PickRandom("go")
	if exA.Code != exB.Code {
		t.Fatal("same seed should pick the same example")
	}

	optsA := a.Options(exA)
	optsB := b.Options(exB)
	for i := range optsA {
		if optsA[i] != optsB[i] {
			t.Fatalf("same seed should produce same options: %v vs %v", optsA, optsB)
		}
	}
}

func TestBankValidate(t *testing.T) {
	if err := testBank().Validate(); err != nil {
		t.Errorf("built-in bank failed validation: %v", err)
	}
}

func TestLanguages(t *testing.T) {
	langs := testBank().Languages()
	if len(langs) != 4 {
		t.Fatalf("expected 4 languages, got %v", langs)
	}
	if langs[0] != "python" {
		t.Errorf("expected python first, got %v", langs)
	}
}
