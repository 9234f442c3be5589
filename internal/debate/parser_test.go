package debate

import "testing"

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback Phase
		want     Dispatch
	}{
		{
			name:     "clean envelope",
			raw:      `{"nextPhase":"proposing","routeTo":"critic"}`,
			fallback: PhaseExploring,
			want:     Dispatch{NextPhase: PhaseProposing, RouteTo: RouteCritic},
		},
		{
			name:     "prose around the object",
			raw:      "Sure! Here is my decision:\n```json\n{\"nextPhase\":\"defending\",\"routeTo\":\"both\"}\n```\nHope that helps.",
			fallback: PhaseExploring,
			want:     Dispatch{NextPhase: PhaseDefending, RouteTo: RouteBoth},
		},
		{
			name:     "no json at all",
			raw:      "not json at all",
			fallback: PhaseDefending,
			want:     Dispatch{NextPhase: PhaseDefending, RouteTo: RouteTeacher},
		},
		{
			name:     "empty input",
			raw:      "",
			fallback: PhaseExploring,
			want:     Dispatch{NextPhase: PhaseExploring, RouteTo: RouteTeacher},
		},
		{
			name:     "truncated json",
			raw:      `{"nextPhase":"proposing","routeTo":`,
			fallback: PhaseResolved,
			want:     Dispatch{NextPhase: PhaseResolved, RouteTo: RouteTeacher},
		},
		{
			name:     "invalid phase keeps valid route",
			raw:      `{"nextPhase":"bogus","routeTo":"both"}`,
			fallback: PhaseExploring,
			want:     Dispatch{NextPhase: PhaseExploring, RouteTo: RouteBoth},
		},
		{
			name:     "invalid route keeps valid phase",
			raw:      `{"nextPhase":"resolved","routeTo":"moderator"}`,
			fallback: PhaseExploring,
			want:     Dispatch{NextPhase: PhaseResolved, RouteTo: RouteTeacher},
		},
		{
			name:     "missing fields",
			raw:      `{}`,
			fallback: PhaseProposing,
			want:     Dispatch{NextPhase: PhaseProposing, RouteTo: RouteTeacher},
		},
		{
			name:     "braces but not an object",
			raw:      "set {a, b, c}",
			fallback: PhaseExploring,
			want:     Dispatch{NextPhase: PhaseExploring, RouteTo: RouteTeacher},
		},
		{
			name:     "lone open brace",
			raw:      "{",
			fallback: PhaseExploring,
			want:     Dispatch{NextPhase: PhaseExploring, RouteTo: RouteTeacher},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDispatch(tt.raw, tt.fallback)
			if got != tt.want {
				t.Errorf("ParseDispatch(%q, %q) = %+v, want %+v", tt.raw, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestParseDispatch_AlwaysValidDomain(t *testing.T) {
	inputs := []string{
		"", "{", "}", "{}", "null", "[1,2,3]",
		`{"nextPhase":42,"routeTo":true}`,
		"{\"nextPhase\":\"exploring\"} trailing {broken",
		"prose with a stray } before { reversed braces",
	}
	for _, raw := range inputs {
		got := ParseDispatch(raw, PhaseExploring)
		if !ValidPhase(got.NextPhase) {
			t.Errorf("ParseDispatch(%q) produced invalid phase %q", raw, got.NextPhase)
		}
		if !ValidRoute(got.RouteTo) {
			t.Errorf("ParseDispatch(%q) produced invalid route %q", raw, got.RouteTo)
		}
	}
}
