package llm

import (
	"testing"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // exact IDs pass through
	}
	for _, tt := range tests {
		if got := canonicalModel(tt.in, geminiAliases); got != tt.want {
			t.Errorf("canonicalModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	// The dispatch schema shape: enums, required fields, plus an array
	// property to cover items translation.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"nextPhase": map[string]any{
				"type": "string",
				"enum": []any{"exploring", "proposing", "defending", "resolved"},
			},
			"routeTo": map[string]any{
				"type": "string",
				"enum": []any{"teacher", "critic", "both"},
			},
			"confidence": map[string]any{"type": "integer"},
			"signals": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"nextPhase", "routeTo"},
	}

	s := geminiSchema(def)

	if s.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(s.Properties))
	}
	if len(s.Properties["nextPhase"].Enum) != 4 {
		t.Fatalf("expected 4 phase values, got %d", len(s.Properties["nextPhase"].Enum))
	}
	if len(s.Properties["routeTo"].Enum) != 3 {
		t.Fatalf("expected 3 route values, got %d", len(s.Properties["routeTo"].Enum))
	}
	if s.Properties["confidence"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for confidence, got %s", s.Properties["confidence"].Type)
	}
	if s.Properties["signals"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for signals, got %s", s.Properties["signals"].Type)
	}
	if s.Properties["signals"].Items.Type != "STRING" {
		t.Fatalf("expected STRING items, got %s", s.Properties["signals"].Items.Type)
	}
	if len(s.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(s.Required))
	}
}
