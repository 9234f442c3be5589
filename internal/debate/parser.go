package debate

import (
	"encoding/json"
	"strings"
)

// ParseDispatch extracts the dispatcher's routing decision from raw LLM
// output. The reply is untrusted free text: models wrap the JSON in prose
// or code fences, truncate it, or return none at all. The parser takes the
// greedy first-'{'-to-last-'}' substring, decodes it, and validates both
// fields against their closed domains.
//
// Any failure degrades to a safe default — the fallback phase and teacher
// routing — so a malformed reply can never stall the conversation.
// ParseDispatch never returns an error.
func ParseDispatch(raw string, fallback Phase) Dispatch {
	out := Dispatch{NextPhase: fallback, RouteTo: RouteTeacher}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return out
	}

	var decoded struct {
		NextPhase string `json:"nextPhase"`
		RouteTo   string `json:"routeTo"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &decoded); err != nil {
		return out
	}

	if p := Phase(decoded.NextPhase); ValidPhase(p) {
		out.NextPhase = p
	}
	if r := Route(decoded.RouteTo); ValidRoute(r) {
		out.RouteTo = r
	}
	return out
}
