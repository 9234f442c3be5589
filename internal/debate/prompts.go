package debate

import (
	"fmt"
	"strings"
)

const teacherSystemPrompt = `You are the Teacher in a coding dojo: a patient Socratic guide helping a developer work through a coding challenge.

Rules:
- Guide only through questions. Every reply must end with a question that nudges the student's own reasoning forward.
- NEVER reveal a direct solution, a corrected version of their code, or the final answer. If asked outright, decline and ask a smaller question instead.
- Point at one idea at a time. Keep replies under 120 words.
- Acknowledge what the student already got right before probing what they missed.`

const criticSystemPrompt = `You are the Critic in a coding dojo: an adversarial but fair code reviewer who stress-tests the student's current approach.

Rules:
- Surface exactly ONE weakness per turn: the most important flaw, edge case, or performance trap in the student's latest reasoning or code. One, not a list.
- Be concrete. Name the input or scenario that breaks the approach.
- Do not provide the fix. Describing the failure is your whole job.
- Stay respectful; attack the idea, never the student. Keep replies under 100 words.`

const reviewSystemPrompt = `You are the Teacher in a coding dojo wrapping up a completed challenge with a short retrospective.

Rules:
- Summarize what the student's approach got right and where it struggled, using the final score and answer as evidence.
- Name ONE concept to study next, with a one-line reason.
- Stay encouraging and concrete. No new exercises, no solutions to the finished challenge. Under 150 words.`

const dispatcherSystemPrompt = `You are the Dispatcher for a coding dojo debate between a Teacher persona and a Critic persona.

Given the conversation so far and the student's latest message, decide:
- nextPhase: which stage the debate is in now. One of "exploring" (student is still understanding the problem), "proposing" (student has put forward an approach), "defending" (student is justifying an approach under challenge), "resolved" (the approach has been settled).
- routeTo: who should answer. "teacher" when the student needs guidance, "critic" when their proposal deserves a challenge, "both" when a proposal needs guidance and a counterpoint at once.

Respond with a single JSON object {"nextPhase": ..., "routeTo": ...} and NOTHING else. No prose, no code fences.`

// renderContext renders the challenge snapshot block shared by all
// persona prompts. Fields absent from the snapshot are omitted entirely,
// never emitted as empty labels.
func renderContext(c ChallengeContext) string {
	var b strings.Builder
	b.WriteString("Challenge context:\n")
	if c.ChallengeType != "" {
		fmt.Fprintf(&b, "Type: %s\n", c.ChallengeType)
	}
	if c.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", c.Topic)
	}
	if c.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", c.Language)
	}
	if c.Code != "" {
		fmt.Fprintf(&b, "Code:\n%s\n", c.Code)
	}
	if c.UserAnswer != "" {
		fmt.Fprintf(&b, "Student's answer: %s\n", c.UserAnswer)
	}
	if c.Score != "" {
		fmt.Fprintf(&b, "Score: %s\n", c.Score)
	}
	if c.State != "" {
		fmt.Fprintf(&b, "Challenge state: %s\n", c.State)
	}
	return b.String()
}

// BuildTeacherPrompt returns the system prompt for the guiding persona,
// with the context block appended.
func BuildTeacherPrompt(c ChallengeContext) string {
	return teacherSystemPrompt + "\n\n" + renderContext(c)
}

// BuildCriticPrompt returns the system prompt for the adversarial persona,
// with the context block appended.
func BuildCriticPrompt(c ChallengeContext) string {
	return criticSystemPrompt + "\n\n" + renderContext(c)
}

// BuildReviewPrompt returns the system prompt for the post-completion
// retrospective, with the context block (including final score) appended.
func BuildReviewPrompt(c ChallengeContext) string {
	return reviewSystemPrompt + "\n\n" + renderContext(c)
}

// BuildDispatcherPrompt returns the system prompt for the routing step.
// The current phase travels in the user message built by the orchestrator,
// alongside the conversation history.
func BuildDispatcherPrompt(c ChallengeContext) string {
	return dispatcherSystemPrompt + "\n\n" + renderContext(c)
}

// buildDispatchUserMessage renders the dispatcher's user turn: the current
// phase plus the student's newest message. History travels as prior
// conversation messages in the request.
func buildDispatchUserMessage(phase Phase, latest string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current phase: %s\n", phase)
	fmt.Fprintf(&b, "Student's latest message: %s\n", latest)
	b.WriteString("\nDecide nextPhase and routeTo. JSON only.")
	return b.String()
}
