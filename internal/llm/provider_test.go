package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReplaysScriptInOrder(t *testing.T) {
	// A scripted debate turn: dispatch decision, then the critic reply.
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"nextPhase":"defending","routeTo":"critic"}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
		MockResponse{Content: json.RawMessage(`"Binary search halves the space; why call it linear?"`)},
	)

	dispatch, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "It scans every element, so O(n)."}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(dispatch.Content) != `{"nextPhase":"defending","routeTo":"critic"}` {
		t.Fatalf("unexpected dispatch content: %s", dispatch.Content)
	}
	if dispatch.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", dispatch.Usage.InputTokens)
	}
	if dispatch.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", dispatch.StopReason)
	}

	persona, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "It scans every element, so O(n)."}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(persona.Content) != `"Binary search halves the space; why call it linear?"` {
		t.Fatalf("unexpected persona content: %s", persona.Content)
	}
}

func TestMockProvider_ExhaustedScriptErrors(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "You are the Teacher in a coding debate.",
		Messages: []Message{{Role: RoleUser, Content: "Why is the nested loop quadratic?"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "You are the Teacher in a coding debate." {
		t.Fatalf("unexpected recorded system prompt %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ScriptedError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "debate-dispatch")
	if p := PurposeFrom(ctx); p != "debate-dispatch" {
		t.Fatalf("expected 'debate-dispatch', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
