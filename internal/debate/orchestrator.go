package debate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/dojo/internal/llm"
	"github.com/abhisek/dojo/internal/store"
)

// Mode selects how a debate session opens.
type Mode string

const (
	// ModeChallenge is the normal Socratic exchange driven by Send.
	ModeChallenge Mode = "challenge"
	// ModeReview opens with a system-initiated retrospective (OpenReview).
	ModeReview Mode = "review"
)

// Config holds the per-call tuning profiles for the debate personas.
type Config struct {
	// PersonaMaxTokens / PersonaTemperature tune teacher, critic, and
	// review calls.
	PersonaMaxTokens   int
	PersonaTemperature float64

	// DispatchMaxTokens / DispatchTemperature tune the routing call.
	// The dispatcher only emits a tiny JSON envelope, so it runs cold
	// and short.
	DispatchMaxTokens   int
	DispatchTemperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PersonaMaxTokens:    512,
		PersonaTemperature:  0.7,
		DispatchMaxTokens:   128,
		DispatchTemperature: 0,
	}
}

// ContextFunc supplies the current challenge snapshot. It is called fresh
// on every agent call so a turn never sees stale context.
type ContextFunc func() ChallengeContext

// Orchestrator owns one debate session: the append-only message log, the
// current phase, and the loading/error flags. All mutation goes through
// Send, OpenReview, and Reset; at most one turn is in flight at a time,
// enforced by the loading flag.
type Orchestrator struct {
	provider  llm.Provider
	cfg       Config
	mode      Mode
	contextFn ContextFunc
	events    store.EventRepo // optional, nil-safe
	notify    func(Snapshot)  // optional change subscriber
	sessionID string

	mu         sync.Mutex
	messages   []Message
	phase      Phase
	loading    bool
	errMsg     string
	generation int
}

// New creates an orchestrator with an empty log in phase exploring.
func New(provider llm.Provider, mode Mode, contextFn ContextFunc, cfg Config) *Orchestrator {
	if contextFn == nil {
		contextFn = func() ChallengeContext { return ChallengeContext{} }
	}
	return &Orchestrator{
		provider:  provider,
		cfg:       cfg,
		mode:      mode,
		contextFn: contextFn,
		sessionID: uuid.New().String(),
		phase:     PhaseExploring,
	}
}

// OnChange registers a callback invoked with a state snapshot after every
// mutation. Pass nil to unsubscribe.
func (o *Orchestrator) OnChange(fn func(Snapshot)) {
	o.mu.Lock()
	o.notify = fn
	o.mu.Unlock()
}

// SetEvents wires an event repo for the debate turn audit trail.
func (o *Orchestrator) SetEvents(repo store.EventRepo) {
	o.mu.Lock()
	o.events = repo
	o.mu.Unlock()
}

// SessionID returns the UUID for this debate session.
func (o *Orchestrator) SessionID() string { return o.sessionID }

// Mode returns the mode this session was opened in.
func (o *Orchestrator) Mode() Mode { return o.mode }

// State returns an immutable snapshot of the session.
func (o *Orchestrator) State() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	msgs := make([]Message, len(o.messages))
	copy(msgs, o.messages)
	return Snapshot{
		Messages: msgs,
		Phase:    o.phase,
		Loading:  o.loading,
		Err:      o.errMsg,
	}
}

func (o *Orchestrator) notifyChange() {
	o.mu.Lock()
	fn := o.notify
	snap := o.snapshotLocked()
	o.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// Send runs one debate turn: append the student message, ask the
// dispatcher for a phase and a routing target, then invoke the routed
// persona(s) and append their replies. Returns false — with no state
// change — when the trimmed text is empty or another turn is in flight.
//
// The turn runs synchronously; callers that must not block (the TUI) wrap
// Send in their own goroutine and observe completion via OnChange or a
// follow-up State call.
func (o *Orchestrator) Send(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	o.mu.Lock()
	if o.loading {
		o.mu.Unlock()
		return false
	}
	gen := o.generation
	o.appendLocked(newMessage(RoleStudent, text))
	o.loading = true
	o.errMsg = ""
	history := o.historyLocked()
	phase := o.phase
	o.mu.Unlock()
	o.notifyChange()

	o.recordTurn(ctx, RoleStudent, phase, text)

	snap := o.contextFn()

	// Routing strictly precedes persona invocation.
	dispatch, err := o.dispatch(ctx, snap, history, phase, text)
	if err != nil {
		o.failTurn(gen, fmt.Sprintf("dispatcher call failed: %v", err))
		return true
	}

	if !o.setPhase(gen, dispatch.NextPhase) {
		return true // session was reset mid-flight
	}
	o.recordTurn(ctx, RoleDispatcher, dispatch.NextPhase, string(dispatch.RouteTo))

	o.invokePersonas(ctx, gen, snap, history, dispatch)
	return true
}

// OpenReview synthesizes the opening retrospective for a review-mode
// session. It is a no-op unless the mode is review and the log is empty.
func (o *Orchestrator) OpenReview(ctx context.Context) bool {
	if o.mode != ModeReview {
		return false
	}

	o.mu.Lock()
	if o.loading || len(o.messages) > 0 {
		o.mu.Unlock()
		return false
	}
	gen := o.generation
	o.loading = true
	o.errMsg = ""
	o.mu.Unlock()
	o.notifyChange()

	snap := o.contextFn()
	content, err := o.callPersona(ctx, "debate-review", BuildReviewPrompt(snap), []llm.Message{
		{Role: llm.RoleUser, Content: "The challenge is complete. Open the retrospective."},
	})

	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		return true
	}
	o.loading = false
	appended := false
	if err != nil {
		o.errMsg = fmt.Sprintf("review call failed: %v", err)
	} else {
		o.appendLocked(newMessage(RoleTeacher, content))
		appended = true
	}
	phase := o.phase
	o.mu.Unlock()
	o.notifyChange()

	if appended {
		o.recordTurn(ctx, RoleTeacher, phase, content)
	}
	return true
}

// Reset clears the session unconditionally: empty log, phase exploring,
// no error, not loading. Any in-flight turn is abandoned; its results are
// discarded when they eventually arrive.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.generation++
	o.messages = nil
	o.phase = PhaseExploring
	o.loading = false
	o.errMsg = ""
	o.mu.Unlock()
	o.notifyChange()
}

// dispatch asks the routing step for the next phase and target. Transport
// errors propagate; malformed output is absorbed by ParseDispatch.
func (o *Orchestrator) dispatch(ctx context.Context, snap ChallengeContext, history []Message, phase Phase, latest string) (Dispatch, error) {
	ctx = llm.WithPurpose(ctx, "debate-dispatch")

	// History excludes the student message just appended; the dispatch
	// user message carries it alongside the current phase.
	msgs := mapHistory(history[:len(history)-1])
	msgs = append(msgs, llm.Message{
		Role:    llm.RoleUser,
		Content: buildDispatchUserMessage(phase, latest),
	})

	resp, err := o.provider.Generate(ctx, llm.Request{
		System:      BuildDispatcherPrompt(snap),
		Messages:    msgs,
		Schema:      DispatchSchema,
		MaxTokens:   o.cfg.DispatchMaxTokens,
		Temperature: o.cfg.DispatchTemperature,
	})
	if err != nil {
		// A schema violation is not a transport failure: degrade to the
		// parser default instead of surfacing an error.
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			return ParseDispatch(string(invalid.Content), phase), nil
		}
		return Dispatch{}, err
	}

	return ParseDispatch(string(resp.Content), phase), nil
}

// invokePersonas runs the routed persona call(s) and appends results.
// Under both-routing the two calls run concurrently against the same
// history snapshot and append in convention order: teacher first, critic
// second, regardless of which reply lands first. A partial failure still
// appends the reply that succeeded and surfaces an error naming the
// persona that failed.
func (o *Orchestrator) invokePersonas(ctx context.Context, gen int, snap ChallengeContext, history []Message, dispatch Dispatch) {
	msgs := mapHistory(history)

	type result struct {
		content string
		err     error
	}
	var teacher, critic *result

	switch dispatch.RouteTo {
	case RouteBoth:
		teacher, critic = &result{}, &result{}
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			teacher.content, teacher.err = o.callPersona(ctx, "debate-teacher", BuildTeacherPrompt(snap), msgs)
		}()
		go func() {
			defer wg.Done()
			critic.content, critic.err = o.callPersona(ctx, "debate-critic", BuildCriticPrompt(snap), msgs)
		}()
		wg.Wait()
	case RouteCritic:
		critic = &result{}
		critic.content, critic.err = o.callPersona(ctx, "debate-critic", BuildCriticPrompt(snap), msgs)
	default:
		teacher = &result{}
		teacher.content, teacher.err = o.callPersona(ctx, "debate-teacher", BuildTeacherPrompt(snap), msgs)
	}

	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		return // session reset while the calls were in flight
	}
	o.loading = false

	type appended struct {
		role    Role
		content string
	}
	var turns []appended
	var failures []string
	appendResult := func(role Role, r *result) {
		if r == nil {
			return
		}
		if r.err != nil {
			failures = append(failures, fmt.Sprintf("%s call failed: %v", role, r.err))
			return
		}
		o.appendLocked(newMessage(role, r.content))
		turns = append(turns, appended{role, r.content})
	}
	appendResult(RoleTeacher, teacher)
	appendResult(RoleCritic, critic)

	if len(failures) > 0 {
		o.errMsg = strings.Join(failures, "; ")
	}
	phase := o.phase
	o.mu.Unlock()
	o.notifyChange()

	for _, t := range turns {
		o.recordTurn(ctx, t.role, phase, t.content)
	}
}

// callPersona issues one persona call and returns the reply text.
func (o *Orchestrator) callPersona(ctx context.Context, purpose, system string, msgs []llm.Message) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := o.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    msgs,
		MaxTokens:   o.cfg.PersonaMaxTokens,
		Temperature: o.cfg.PersonaTemperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

// setPhase updates the phase unless the session was reset, and notifies.
func (o *Orchestrator) setPhase(gen int, p Phase) bool {
	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		return false
	}
	o.phase = p
	o.mu.Unlock()
	o.notifyChange()
	return true
}

// failTurn surfaces a turn-level failure: no agent message is appended,
// the error becomes visible, and loading clears.
func (o *Orchestrator) failTurn(gen int, msg string) {
	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		return
	}
	o.loading = false
	o.errMsg = msg
	o.mu.Unlock()
	o.notifyChange()
}

func (o *Orchestrator) appendLocked(m Message) {
	o.messages = append(o.messages, m)
}

func (o *Orchestrator) historyLocked() []Message {
	msgs := make([]Message, len(o.messages))
	copy(msgs, o.messages)
	return msgs
}

// recordTurn appends a debate turn event. Persistence failures never
// affect the session.
func (o *Orchestrator) recordTurn(ctx context.Context, role Role, phase Phase, content string) {
	o.mu.Lock()
	repo := o.events
	o.mu.Unlock()
	if repo == nil {
		return
	}
	_ = repo.AppendDebateTurn(ctx, store.DebateTurnEventData{
		SessionID: o.sessionID,
		Role:      string(role),
		Phase:     string(phase),
		Content:   content,
	})
}

// mapHistory converts the debate log into LLM conversation messages.
// Student turns become user messages; agent turns become assistant
// messages tagged with their persona so both personas can follow the
// whole exchange.
func mapHistory(history []Message) []llm.Message {
	out := make([]llm.Message, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case RoleStudent:
			out = append(out, llm.Message{Role: llm.RoleUser, Content: m.Content})
		case RoleTeacher:
			out = append(out, llm.Message{Role: llm.RoleAssistant, Content: "Teacher: " + m.Content})
		case RoleCritic:
			out = append(out, llm.Message{Role: llm.RoleAssistant, Content: "Critic: " + m.Content})
		}
	}
	return out
}

func newMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
