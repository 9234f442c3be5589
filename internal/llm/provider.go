package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between the dojo and any LLM backend.
// The dispatcher, both debate personas, and the review step all speak
// through it. Implementations must tolerate concurrent calls: routing
// a turn to both personas fires two Generates at once.
type Provider interface {
	// Generate runs one completion. If req.Schema is set the provider
	// asks the model for structured output and returns validated JSON;
	// otherwise Content is the raw text wrapped as a JSON string.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports which model this provider targets.
	ModelID() string
}

// Request is everything one completion needs.
type Request struct {
	// System sets the persona: dispatcher, teacher, critic, or reviewer.
	System string

	// Messages is the transcript so far, oldest first. The debate engine
	// always ends it with a user-role message.
	Messages []Message

	// Schema, when non-nil, constrains the output. Dispatch and review
	// set it; free-text persona turns leave it nil.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero (the default) keeps dispatch
	// decisions reproducible.
	Temperature float64
}

// Message is one turn of conversation as the model sees it.
type Message struct {
	Role    Role
	Content string
}

// Role is the speaker of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and describes a JSON shape the model must produce.
type Schema struct {
	// Name is kebab-case, e.g. "debate-dispatch". Anthropic uses it as
	// the tool name, OpenAI as the schema name.
	Name string

	// Description tells the model what the shape is for.
	Description string

	// Definition is the JSON Schema body as a plain map.
	Definition map[string]any
}

// Response is what came back.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the text reply encoded as a JSON string.
	Content json.RawMessage

	// Usage is the token count the backend reported.
	Usage Usage

	// Model is the concrete model that answered, which may be more
	// specific than the alias the provider was built with.
	Model string

	// StopReason is normalized across backends to "end", "max_tokens",
	// or "error".
	StopReason string
}

// Usage is per-request token accounting, persisted to the event log.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
