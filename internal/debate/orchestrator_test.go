package debate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/dojo/internal/llm"
)

// scriptedProvider routes canned replies by the purpose label on the
// request context, so both-routed turns get deterministic persona replies
// regardless of goroutine scheduling. An optional per-purpose delay
// simulates slow backends.
type scriptedProvider struct {
	mu      sync.Mutex
	replies map[string]string
	errs    map[string]error
	delays  map[string]time.Duration
	calls   []string
}

func newScripted() *scriptedProvider {
	return &scriptedProvider{
		replies: map[string]string{},
		errs:    map[string]error{},
		delays:  map[string]time.Duration{},
	}
}

func (s *scriptedProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	purpose := llm.PurposeFrom(ctx)

	s.mu.Lock()
	s.calls = append(s.calls, purpose)
	delay := s.delays[purpose]
	err := s.errs[purpose]
	reply := s.replies[purpose]
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	return &llm.Response{Content: json.RawMessage(reply), Model: "scripted", StopReason: "end"}, nil
}

func (s *scriptedProvider) ModelID() string { return "scripted" }

func (s *scriptedProvider) callCount(purpose string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == purpose {
			n++
		}
	}
	return n
}

func newTestOrchestrator(p llm.Provider) *Orchestrator {
	return New(p, ModeChallenge, func() ChallengeContext {
		return ChallengeContext{Topic: "big o", Language: "go"}
	}, DefaultConfig())
}

func dispatchReply(phase Phase, route Route) string {
	return fmt.Sprintf(`{"nextPhase":%q,"routeTo":%q}`, phase, route)
}

func TestSend_TeacherRoute(t *testing.T) {
	p := newScripted()
	p.replies["debate-dispatch"] = dispatchReply(PhaseProposing, RouteTeacher)
	p.replies["debate-teacher"] = "What does your loop do on an empty slice?"

	o := newTestOrchestrator(p)
	if !o.Send(context.Background(), "I think it's O(n)") {
		t.Fatal("Send should accept a non-empty message")
	}

	st := o.State()
	if len(st.Messages) != 2 {
		t.Fatalf("expected 2 messages (student + teacher), got %d", len(st.Messages))
	}
	if st.Messages[0].Role != RoleStudent || st.Messages[1].Role != RoleTeacher {
		t.Errorf("unexpected roles: %v, %v", st.Messages[0].Role, st.Messages[1].Role)
	}
	if st.Phase != PhaseProposing {
		t.Errorf("phase = %q, want proposing", st.Phase)
	}
	if st.Loading {
		t.Error("loading should clear after the turn")
	}
	if st.Err != "" {
		t.Errorf("unexpected error: %q", st.Err)
	}
}

func TestSend_EmptyInputIsNoOp(t *testing.T) {
	p := newScripted()
	o := newTestOrchestrator(p)

	for _, input := range []string{"", "   ", "\n\t"} {
		if o.Send(context.Background(), input) {
			t.Errorf("Send(%q) should be rejected", input)
		}
	}

	st := o.State()
	if len(st.Messages) != 0 {
		t.Errorf("log should be unchanged, got %d messages", len(st.Messages))
	}
	if st.Phase != PhaseExploring {
		t.Errorf("phase should be unchanged, got %q", st.Phase)
	}
	if len(p.calls) != 0 {
		t.Errorf("no LLM call should be made, got %v", p.calls)
	}
}

func TestSend_RejectedWhileLoading(t *testing.T) {
	p := newScripted()
	p.replies["debate-dispatch"] = dispatchReply(PhaseExploring, RouteTeacher)
	p.replies["debate-teacher"] = "Why that bound?"
	p.delays["debate-teacher"] = 50 * time.Millisecond

	o := newTestOrchestrator(p)

	done := make(chan struct{})
	go func() {
		o.Send(context.Background(), "first")
		close(done)
	}()

	// Wait until the first turn is visibly in flight.
	deadline := time.Now().Add(time.Second)
	for !o.State().Loading {
		if time.Now().After(deadline) {
			t.Fatal("first turn never started loading")
		}
		time.Sleep(time.Millisecond)
	}

	if o.Send(context.Background(), "second") {
		t.Error("Send while loading should be a no-op")
	}
	<-done

	st := o.State()
	if len(st.Messages) != 2 {
		t.Errorf("only the first turn should land, got %d messages", len(st.Messages))
	}
}

func TestSend_BothRoute_OrderIndependentOfLatency(t *testing.T) {
	p := newScripted()
	p.replies["debate-dispatch"] = dispatchReply(PhaseDefending, RouteBoth)
	p.replies["debate-teacher"] = "What happens at the boundaries?"
	p.replies["debate-critic"] = "Your approach re-sorts on every query."
	// Teacher is the slow one; critic resolves first.
	p.delays["debate-teacher"] = 40 * time.Millisecond

	o := newTestOrchestrator(p)
	o.Send(context.Background(), "here is my plan")

	st := o.State()
	if len(st.Messages) != 3 {
		t.Fatalf("expected student + teacher + critic, got %d messages", len(st.Messages))
	}
	if st.Messages[1].Role != RoleTeacher {
		t.Errorf("teacher must be appended first, got %q", st.Messages[1].Role)
	}
	if st.Messages[2].Role != RoleCritic {
		t.Errorf("critic must be appended second, got %q", st.Messages[2].Role)
	}
	if st.Err != "" {
		t.Errorf("unexpected error: %q", st.Err)
	}
}

func TestSend_BothRoute_PartialFailure(t *testing.T) {
	p := newScripted()
	p.replies["debate-dispatch"] = dispatchReply(PhaseDefending, RouteBoth)
	p.errs["debate-teacher"] = &llm.ErrProviderUnavailable{}
	p.replies["debate-critic"] = "Your recursion never memoizes."

	o := newTestOrchestrator(p)
	o.Send(context.Background(), "defend this")

	st := o.State()
	// The succeeding reply is kept; the failure is surfaced by name.
	if len(st.Messages) != 2 {
		t.Fatalf("expected student + critic, got %d messages", len(st.Messages))
	}
	if st.Messages[1].Role != RoleCritic {
		t.Errorf("surviving message should be the critic's, got %q", st.Messages[1].Role)
	}
	if !strings.Contains(st.Err, "teacher") {
		t.Errorf("error should name the failed persona, got %q", st.Err)
	}
	if st.Loading {
		t.Error("loading should clear after a partial failure")
	}
}

func TestSend_DispatcherTransportFailure(t *testing.T) {
	p := newScripted()
	p.errs["debate-dispatch"] = &llm.ErrProviderUnavailable{}

	o := newTestOrchestrator(p)
	o.Send(context.Background(), "hello?")

	st := o.State()
	if len(st.Messages) != 1 {
		t.Fatalf("only the student message should land, got %d", len(st.Messages))
	}
	if st.Err == "" {
		t.Error("transport failure should surface an error")
	}
	if p.callCount("debate-teacher")+p.callCount("debate-critic") != 0 {
		t.Error("no persona may be called before routing is known")
	}
}

func TestSend_MalformedDispatchFallsBack(t *testing.T) {
	p := newScripted()
	p.replies["debate-dispatch"] = "I think the student is doing great!"
	p.replies["debate-teacher"] = "What would you try first?"

	o := newTestOrchestrator(p)
	o.Send(context.Background(), "where do I start?")

	st := o.State()
	if st.Phase != PhaseExploring {
		t.Errorf("malformed dispatch should keep the prior phase, got %q", st.Phase)
	}
	if len(st.Messages) != 2 || st.Messages[1].Role != RoleTeacher {
		t.Errorf("malformed dispatch should route to teacher, got %+v", st.Messages)
	}
	if st.Err != "" {
		t.Errorf("malformed dispatch is recovered locally, got error %q", st.Err)
	}
}

func TestReset(t *testing.T) {
	p := newScripted()
	p.replies["debate-dispatch"] = dispatchReply(PhaseResolved, RouteTeacher)
	p.replies["debate-teacher"] = "Well reasoned."

	o := newTestOrchestrator(p)
	o.Send(context.Background(), "final answer")
	o.Reset()

	st := o.State()
	if len(st.Messages) != 0 {
		t.Errorf("log should be empty after reset, got %d", len(st.Messages))
	}
	if st.Phase != PhaseExploring {
		t.Errorf("phase = %q after reset, want exploring", st.Phase)
	}
	if st.Err != "" || st.Loading {
		t.Errorf("reset should clear error and loading, got %+v", st)
	}
}

func TestReset_AbandonsInFlightTurn(t *testing.T) {
	p := newScripted()
	p.replies["debate-dispatch"] = dispatchReply(PhaseProposing, RouteTeacher)
	p.replies["debate-teacher"] = "late reply"
	p.delays["debate-teacher"] = 60 * time.Millisecond

	o := newTestOrchestrator(p)

	done := make(chan struct{})
	go func() {
		o.Send(context.Background(), "slow turn")
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for !o.State().Loading {
		if time.Now().After(deadline) {
			t.Fatal("turn never started loading")
		}
		time.Sleep(time.Millisecond)
	}

	o.Reset()
	<-done

	st := o.State()
	if len(st.Messages) != 0 {
		t.Errorf("late reply must be discarded after reset, got %d messages", len(st.Messages))
	}
	if st.Loading {
		t.Error("reset session must not be loading")
	}
}

func TestOpenReview(t *testing.T) {
	p := newScripted()
	p.replies["debate-review"] = "You nailed the invariant; revisit amortized analysis next."

	o := New(p, ModeReview, func() ChallengeContext {
		return ChallengeContext{Topic: "heaps", Score: "8/10"}
	}, DefaultConfig())

	if !o.OpenReview(context.Background()) {
		t.Fatal("OpenReview should run in review mode with an empty log")
	}

	st := o.State()
	if len(st.Messages) != 1 {
		t.Fatalf("expected one synthesized message, got %d", len(st.Messages))
	}
	if st.Messages[0].Role != RoleTeacher {
		t.Errorf("review reply should be teacher-labeled, got %q", st.Messages[0].Role)
	}

	// A second call is a no-op: the log is no longer empty.
	if o.OpenReview(context.Background()) {
		t.Error("OpenReview with a non-empty log should be rejected")
	}
}

func TestOpenReview_WrongMode(t *testing.T) {
	p := newScripted()
	o := newTestOrchestrator(p)
	if o.OpenReview(context.Background()) {
		t.Error("OpenReview outside review mode should be rejected")
	}
	if len(p.calls) != 0 {
		t.Error("no LLM call should be made")
	}
}

func TestOnChange_FiresOnMutation(t *testing.T) {
	p := newScripted()
	p.replies["debate-dispatch"] = dispatchReply(PhaseProposing, RouteTeacher)
	p.replies["debate-teacher"] = "Why?"

	o := newTestOrchestrator(p)

	var mu sync.Mutex
	var snaps []Snapshot
	o.OnChange(func(s Snapshot) {
		mu.Lock()
		snaps = append(snaps, s)
		mu.Unlock()
	})

	o.Send(context.Background(), "notify me")

	mu.Lock()
	defer mu.Unlock()
	if len(snaps) == 0 {
		t.Fatal("expected change notifications")
	}
	last := snaps[len(snaps)-1]
	if last.Loading {
		t.Error("final notification should not be loading")
	}
	if len(last.Messages) != 2 {
		t.Errorf("final notification should carry the full log, got %d", len(last.Messages))
	}
}

func TestContextReadFreshPerTurn(t *testing.T) {
	p := newScripted()
	p.replies["debate-dispatch"] = dispatchReply(PhaseExploring, RouteTeacher)
	p.replies["debate-teacher"] = "ok"

	reads := 0
	o := New(p, ModeChallenge, func() ChallengeContext {
		reads++
		return ChallengeContext{Topic: "fresh"}
	}, DefaultConfig())

	o.Send(context.Background(), "one")
	o.Send(context.Background(), "two")

	if reads != 2 {
		t.Errorf("context should be re-read every turn, got %d reads", reads)
	}
}
