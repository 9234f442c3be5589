package bigo

import (
	"fmt"
	"math/rand/v2"
)

// DefaultLanguage is the bank key used when a requested language has no
// entries.
const DefaultLanguage = "python"

// OptionCount is the number of answer options presented per round.
const OptionCount = 4

// Example is one quiz record: a code snippet, its time complexity, and a
// short explanation shown after answering. Examples are static data; they
// are selected, never created or mutated at runtime.
type Example struct {
	Language    string
	Code        string
	Complexity  Complexity
	Explanation string
}

// Bank selects quiz examples and builds option sets.
// The random source is injected so tests can fix the seed; NewBank wires
// the package-level default used by the app.
type Bank struct {
	examples map[string][]Example
	rng      *rand.Rand
}

// NewBank returns a Bank over the built-in example table with an unseeded
// random source.
func NewBank() *Bank {
	return NewBankWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewBankWithRand returns a Bank using the given random source.
func NewBankWithRand(rng *rand.Rand) *Bank {
	return &Bank{examples: builtinExamples, rng: rng}
}

// Languages returns the bank keys that have at least one example.
func (b *Bank) Languages() []string {
	langs := make([]string, 0, len(b.examples))
	for _, l := range bankLanguageOrder {
		if len(b.examples[l]) > 0 {
			langs = append(langs, l)
		}
	}
	return langs
}

// Count returns the number of examples for a language key (0 for unknown keys).
func (b *Bank) Count(language string) int {
	return len(b.examples[language])
}

// PickRandom returns a uniformly random example for the language. A key
// with no entries falls back to DefaultLanguage.
func (b *Bank) PickRandom(language string) Example {
	list := b.examples[language]
	if len(list) == 0 {
		list = b.examples[DefaultLanguage]
	}
	return list[b.rng.IntN(len(list))]
}

// Options builds the answer labels for an example: the correct display
// string plus three distractors drawn from the other canonical classes,
// shuffled. The result always contains the correct label exactly once and
// no duplicates.
func (b *Bank) Options(ex Example) []string {
	opts := []string{ex.Complexity.Display()}

	pool := make([]Complexity, 0, 7)
	for _, c := range AllComplexities() {
		if c != ex.Complexity {
			pool = append(pool, c)
		}
	}
	b.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for _, c := range pool[:OptionCount-1] {
		opts = append(opts, c.Display())
	}

	b.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}

// Validate checks the bank invariants: every example has a known
// complexity class and a non-empty snippet and explanation. Used by the
// bank command to sanity-check the data table.
func (b *Bank) Validate() error {
	for lang, list := range b.examples {
		for i, ex := range list {
			if Normalize(ex.Complexity.Display()) == ComplexityUnknown {
				return fmt.Errorf("%s[%d]: unknown complexity %q", lang, i, ex.Complexity)
			}
			if ex.Code == "" {
				return fmt.Errorf("%s[%d]: empty code snippet", lang, i)
			}
			if ex.Explanation == "" {
				return fmt.Errorf("%s[%d]: empty explanation", lang, i)
			}
		}
	}
	return nil
}
