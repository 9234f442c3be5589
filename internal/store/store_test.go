package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	purposes := []string{"debate-dispatch", "debate-teacher", "debate-critic"}
	for i, p := range purposes {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku-4-5-20251001",
			Purpose:      p,
			InputTokens:  100 * (i + 1),
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
			RequestBody:  "[user]\nhello",
			ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append %s: %v", p, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Purpose != "debate-critic" {
		t.Errorf("first event purpose = %q, want debate-critic", events[0].Purpose)
	}
	if events[0].RequestBody == "" || events[0].ResponseBody == "" {
		t.Error("expected request and response bodies to round-trip")
	}

	// Limit.
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events, want 1", len(events))
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	e, err := repo.GetLLMEvent(context.Background(), 9999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku-4-5-20251001",
			Purpose:      "debate-teacher",
			InputTokens:  100,
			OutputTokens: 40,
			LatencyMs:    300,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d purposes, want 1", len(stats))
	}
	st := stats[0]
	if st.Calls != 3 {
		t.Errorf("calls = %d, want 3", st.Calls)
	}
	if st.InputTokens != 300 {
		t.Errorf("input tokens = %d, want 300", st.InputTokens)
	}
	if st.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", st.AvgLatencyMs)
	}
}

func TestBattleStatsByLanguage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []BattleAnswerEventData{
		{SessionID: "s1", Language: "python", Round: 1, CorrectComplexity: "linear", SelectedComplexity: "linear", Correct: true, TimeMs: 4000},
		{SessionID: "s1", Language: "python", Round: 2, CorrectComplexity: "quadratic", SelectedComplexity: "linear", Correct: false, TimeMs: 9000},
		{SessionID: "s1", Language: "python", Round: 3, CorrectComplexity: "constant", Correct: false, TimedOut: true},
		{SessionID: "s2", Language: "go", Round: 1, CorrectComplexity: "linearithmic", SelectedComplexity: "linearithmic", Correct: true, TimeMs: 7000},
	}
	for i, a := range answers {
		if err := repo.AppendBattleAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.BattleStatsByLanguage(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d languages, want 2", len(stats))
	}

	// Sorted by language: go first.
	if stats[0].Language != "go" || stats[0].Answers != 1 || stats[0].Correct != 1 {
		t.Errorf("go stats = %+v", stats[0])
	}
	py := stats[1]
	if py.Answers != 3 || py.Correct != 1 || py.Timeouts != 1 {
		t.Errorf("python stats = %+v", py)
	}
	if acc := py.Accuracy(); acc < 0.33 || acc > 0.34 {
		t.Errorf("python accuracy = %f", acc)
	}
}

func TestDebateTurnsAppendOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	turns := []DebateTurnEventData{
		{SessionID: "d1", Role: "student", Phase: "exploring", Content: "Why is this O(n log n)?"},
		{SessionID: "d1", Role: "teacher", Phase: "exploring", Content: "What does the outer loop do?"},
		{SessionID: "d1", Role: "critic", Phase: "exploring", Content: "Your claim ignores the inner scan."},
		{SessionID: "other", Role: "student", Phase: "proposing", Content: "unrelated"},
	}
	for i, tr := range turns {
		if err := repo.AppendDebateTurn(ctx, tr); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.DebateTurns(ctx, "d1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d turns, want 3", len(got))
	}
	wantRoles := []string{"student", "teacher", "critic"}
	for i, r := range wantRoles {
		if got[i].Role != r {
			t.Errorf("turn %d role = %q, want %q", i, got[i].Role, r)
		}
	}

	stats, err := repo.DebateStats(ctx)
	if err != nil {
		t.Fatalf("debate stats: %v", err)
	}
	if stats.Sessions != 2 {
		t.Errorf("sessions = %d, want 2", stats.Sessions)
	}
	if stats.Turns != 4 {
		t.Errorf("turns = %d, want 4", stats.Turns)
	}
}

func TestAppendSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "s1",
		Mode:      "battle",
		Action:    "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSession(ctx, SessionEventData{
		SessionID:      "s1",
		Mode:           "battle",
		Action:         "end",
		RoundsPlayed:   10,
		CorrectAnswers: 7,
		DurationSecs:   180,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	count, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("session events = %d, want 2", count)
	}
}
