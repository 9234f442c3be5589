package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event as read back.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates token usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// BattleAnswerEventData captures one answered (or timed out) battle round.
type BattleAnswerEventData struct {
	SessionID          string
	Language           string
	Round              int
	CorrectComplexity  string
	SelectedComplexity string
	Correct            bool
	TimedOut           bool
	TimeMs             int
}

// BattleStats aggregates battle answers for one language.
type BattleStats struct {
	Language string
	Answers  int
	Correct  int
	Timeouts int
}

// Accuracy returns the fraction of answers that were correct, or 0 when
// no answers have been recorded.
func (s BattleStats) Accuracy() float64 {
	if s.Answers == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answers)
}

// DebateTurnEventData captures one message appended to a debate transcript.
type DebateTurnEventData struct {
	SessionID string
	Role      string
	Phase     string
	Content   string
}

// DebateTurnRecord is a stored debate turn as read back.
type DebateTurnRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Role      string
	Phase     string
	Content   string
}

// DebateStatsData summarizes debate activity across all sessions.
type DebateStatsData struct {
	Sessions int
	Turns    int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Mode           string // battle or debate
	Action         string // start or end
	RoundsPlayed   int
	CorrectAnswers int
	DurationSecs   int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendBattleAnswer records one battle round result.
	AppendBattleAnswer(ctx context.Context, data BattleAnswerEventData) error

	// AppendDebateTurn records one debate transcript message.
	AppendDebateTurn(ctx context.Context, data DebateTurnEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates successful-and-failed call counts and
	// token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// BattleStatsByLanguage aggregates battle answers per language.
	BattleStatsByLanguage(ctx context.Context) ([]BattleStats, error)

	// DebateTurns returns all turns of one debate session in append order.
	DebateTurns(ctx context.Context, sessionID string) ([]DebateTurnRecord, error)

	// DebateStats counts debate sessions and turns across the whole log.
	DebateStats(ctx context.Context) (DebateStatsData, error)
}
