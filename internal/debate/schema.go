package debate

import "github.com/abhisek/dojo/internal/llm"

// DispatchSchema asks providers with native structured output for a clean
// routing envelope. The reply still goes through ParseDispatch — not every
// provider honors the schema, and the parser must survive raw prose anyway.
var DispatchSchema = &llm.Schema{
	Name:        "debate-dispatch",
	Description: "Routing decision for the next debate turn",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"nextPhase": map[string]any{
				"type":        "string",
				"enum":        []any{"exploring", "proposing", "defending", "resolved"},
				"description": "The conversational phase the debate is in now",
			},
			"routeTo": map[string]any{
				"type":        "string",
				"enum":        []any{"teacher", "critic", "both"},
				"description": "Which persona should answer this turn",
			},
		},
		"required":             []any{"nextPhase", "routeTo"},
		"additionalProperties": false,
	},
}
