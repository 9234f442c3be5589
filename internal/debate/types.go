package debate

import "time"

// Role identifies who produced a debate message.
type Role string

const (
	RoleStudent    Role = "student"
	RoleTeacher    Role = "teacher"
	RoleCritic     Role = "critic"
	RoleDispatcher Role = "dispatcher"
)

// Phase is the conversational stage of a debate. The dispatcher chooses
// the next phase each turn; any phase may follow any phase.
type Phase string

const (
	PhaseExploring Phase = "exploring"
	PhaseProposing Phase = "proposing"
	PhaseDefending Phase = "defending"
	PhaseResolved  Phase = "resolved"
)

// ValidPhase reports whether p is one of the four debate phases.
func ValidPhase(p Phase) bool {
	switch p {
	case PhaseExploring, PhaseProposing, PhaseDefending, PhaseResolved:
		return true
	}
	return false
}

// Route is the dispatcher's choice of which persona answers a turn.
// It is computed per turn and never persisted.
type Route string

const (
	RouteTeacher Route = "teacher"
	RouteCritic  Route = "critic"
	RouteBoth    Route = "both"
)

// ValidRoute reports whether r is one of the three routing targets.
func ValidRoute(r Route) bool {
	switch r {
	case RouteTeacher, RouteCritic, RouteBoth:
		return true
	}
	return false
}

// Dispatch is the routing decision parsed from the dispatcher's reply.
type Dispatch struct {
	NextPhase Phase `json:"nextPhase"`
	RouteTo   Route `json:"routeTo"`
}

// Message is one entry in the debate log. Messages are immutable once
// appended and are only removed by a full session reset.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// ChallengeContext is the read-only snapshot of the surrounding challenge
// supplied to every agent call. Optional fields are omitted from prompts
// when empty.
type ChallengeContext struct {
	ChallengeType string
	Topic         string
	Language      string
	Code          string
	UserAnswer    string
	Score         string
	State         string
}

// Snapshot is an immutable copy of the session state handed to Notify
// subscribers after each mutation.
type Snapshot struct {
	Messages []Message
	Phase    Phase
	Loading  bool
	Err      string
}
