package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// dispatchTestSchema mirrors the routing decision shape: two required
// enum fields, nothing else.
func dispatchTestSchema() *Schema {
	return &Schema{
		Name:        "dispatch-decision",
		Description: "Routing decision for one debate turn",
		Definition: map[string]any{
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
			},
			"required": []any{"nextPhase", "routeTo"},
		},
	}
}

func TestValidateResponse_ValidDispatch(t *testing.T) {
	raw := json.RawMessage(`{"nextPhase":"proposing","routeTo":"both"}`)
	if err := validateResponse(dispatchTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"nextPhase":"proposing"}`)
	err := validateResponse(dispatchTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponse_UnknownEnumValue(t *testing.T) {
	raw := json.RawMessage(`{"nextPhase":"concluding","routeTo":"teacher"}`)
	err := validateResponse(dispatchTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"nextPhase":2,"routeTo":"teacher"}`)
	err := validateResponse(dispatchTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponse_ProseInsteadOfJSON(t *testing.T) {
	raw := json.RawMessage(`The critic should take this one.`)
	err := validateResponse(dispatchTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestValidateResponse_EmptyPayload(t *testing.T) {
	if err := validateResponse(dispatchTestSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	// Persona turns are free text; no schema, no validation.
	raw := json.RawMessage(`Think about what the inner loop costs.`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedSchema(t *testing.T) {
	schema := &Schema{
		Name:        "review-summary",
		Description: "Structured retrospective",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"verdict": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"complexity": map[string]any{"type": "string"},
					},
					"required": []any{"complexity"},
				},
				"strengths": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"verdict", "strengths"},
		},
	}

	valid := json.RawMessage(`{"verdict":{"complexity":"O(n log n)"},"strengths":["spotted the merge step","clear invariant"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"verdict":{"complexity":"O(n log n)"},"strengths":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
