package debate

import (
	"strings"
	"testing"
)

func TestRenderContext_OmitsAbsentFields(t *testing.T) {
	got := renderContext(ChallengeContext{Topic: "binary search", Language: "go"})

	if !strings.Contains(got, "Topic: binary search") {
		t.Error("topic should be rendered")
	}
	if !strings.Contains(got, "Language: go") {
		t.Error("language should be rendered")
	}
	for _, absent := range []string{"Type:", "Code:", "Student's answer:", "Score:", "Challenge state:"} {
		if strings.Contains(got, absent) {
			t.Errorf("absent field %q should not be rendered:\n%s", absent, got)
		}
	}
}

func TestRenderContext_AllFields(t *testing.T) {
	got := renderContext(ChallengeContext{
		ChallengeType: "algorithm",
		Topic:         "two pointers",
		Language:      "python",
		Code:          "def solve(): pass",
		UserAnswer:    "O(n)",
		Score:         "7/10",
		State:         "completed",
	})

	for _, want := range []string{
		"Type: algorithm", "Topic: two pointers", "Language: python",
		"def solve(): pass", "Student's answer: O(n)", "Score: 7/10",
		"Challenge state: completed",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestBuilders_Deterministic(t *testing.T) {
	c := ChallengeContext{Topic: "recursion", Code: "f(n-1)+f(n-2)"}

	builders := map[string]func(ChallengeContext) string{
		"teacher":    BuildTeacherPrompt,
		"critic":     BuildCriticPrompt,
		"review":     BuildReviewPrompt,
		"dispatcher": BuildDispatcherPrompt,
	}
	for name, build := range builders {
		if build(c) != build(c) {
			t.Errorf("%s builder is not deterministic", name)
		}
		if !strings.Contains(build(c), "recursion") {
			t.Errorf("%s builder should embed the context block", name)
		}
	}
}

func TestTeacherPrompt_ForbidsSolutions(t *testing.T) {
	p := BuildTeacherPrompt(ChallengeContext{})
	if !strings.Contains(p, "NEVER reveal a direct solution") {
		t.Error("teacher prompt must forbid revealing solutions")
	}
}

func TestCriticPrompt_OneWeakness(t *testing.T) {
	p := BuildCriticPrompt(ChallengeContext{})
	if !strings.Contains(p, "exactly ONE weakness") {
		t.Error("critic prompt must demand exactly one weakness per turn")
	}
}

func TestDispatcherPrompt_JSONOnly(t *testing.T) {
	p := BuildDispatcherPrompt(ChallengeContext{})
	if !strings.Contains(p, "NOTHING else") {
		t.Error("dispatcher prompt must demand JSON only")
	}
	for _, v := range []string{"exploring", "proposing", "defending", "resolved", "teacher", "critic", "both"} {
		if !strings.Contains(p, v) {
			t.Errorf("dispatcher prompt should enumerate %q", v)
		}
	}
}

func TestDispatchUserMessage(t *testing.T) {
	got := buildDispatchUserMessage(PhaseProposing, "is a hashmap faster here?")
	if !strings.Contains(got, "Current phase: proposing") {
		t.Error("phase missing from dispatch message")
	}
	if !strings.Contains(got, "is a hashmap faster here?") {
		t.Error("latest student message missing from dispatch message")
	}
}
