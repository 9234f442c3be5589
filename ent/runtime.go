// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/dojo/ent/battleanswerevent"
	"github.com/abhisek/dojo/ent/debateturnevent"
	"github.com/abhisek/dojo/ent/llmrequestevent"
	"github.com/abhisek/dojo/ent/schema"
	"github.com/abhisek/dojo/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	battleanswereventMixin := schema.BattleAnswerEvent{}.Mixin()
	battleanswereventMixinFields0 := battleanswereventMixin[0].Fields()
	_ = battleanswereventMixinFields0
	battleanswereventFields := schema.BattleAnswerEvent{}.Fields()
	_ = battleanswereventFields
	// battleanswereventDescTimestamp is the schema descriptor for timestamp field.
	battleanswereventDescTimestamp := battleanswereventMixinFields0[1].Descriptor()
	// battleanswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	battleanswerevent.DefaultTimestamp = battleanswereventDescTimestamp.Default.(func() time.Time)
	// battleanswereventDescSessionID is the schema descriptor for session_id field.
	battleanswereventDescSessionID := battleanswereventFields[0].Descriptor()
	// battleanswerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	battleanswerevent.SessionIDValidator = battleanswereventDescSessionID.Validators[0].(func(string) error)
	// battleanswereventDescLanguage is the schema descriptor for language field.
	battleanswereventDescLanguage := battleanswereventFields[1].Descriptor()
	// battleanswerevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	battleanswerevent.LanguageValidator = battleanswereventDescLanguage.Validators[0].(func(string) error)
	// battleanswereventDescCorrectComplexity is the schema descriptor for correct_complexity field.
	battleanswereventDescCorrectComplexity := battleanswereventFields[3].Descriptor()
	// battleanswerevent.CorrectComplexityValidator is a validator for the "correct_complexity" field. It is called by the builders before save.
	battleanswerevent.CorrectComplexityValidator = battleanswereventDescCorrectComplexity.Validators[0].(func(string) error)
	// battleanswereventDescSelectedComplexity is the schema descriptor for selected_complexity field.
	battleanswereventDescSelectedComplexity := battleanswereventFields[4].Descriptor()
	// battleanswerevent.DefaultSelectedComplexity holds the default value on creation for the selected_complexity field.
	battleanswerevent.DefaultSelectedComplexity = battleanswereventDescSelectedComplexity.Default.(string)
	// battleanswereventDescTimedOut is the schema descriptor for timed_out field.
	battleanswereventDescTimedOut := battleanswereventFields[6].Descriptor()
	// battleanswerevent.DefaultTimedOut holds the default value on creation for the timed_out field.
	battleanswerevent.DefaultTimedOut = battleanswereventDescTimedOut.Default.(bool)
	// battleanswereventDescTimeMs is the schema descriptor for time_ms field.
	battleanswereventDescTimeMs := battleanswereventFields[7].Descriptor()
	// battleanswerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	battleanswerevent.DefaultTimeMs = battleanswereventDescTimeMs.Default.(int)
	debateturneventMixin := schema.DebateTurnEvent{}.Mixin()
	debateturneventMixinFields0 := debateturneventMixin[0].Fields()
	_ = debateturneventMixinFields0
	debateturneventFields := schema.DebateTurnEvent{}.Fields()
	_ = debateturneventFields
	// debateturneventDescTimestamp is the schema descriptor for timestamp field.
	debateturneventDescTimestamp := debateturneventMixinFields0[1].Descriptor()
	// debateturnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	debateturnevent.DefaultTimestamp = debateturneventDescTimestamp.Default.(func() time.Time)
	// debateturneventDescSessionID is the schema descriptor for session_id field.
	debateturneventDescSessionID := debateturneventFields[0].Descriptor()
	// debateturnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	debateturnevent.SessionIDValidator = debateturneventDescSessionID.Validators[0].(func(string) error)
	// debateturneventDescRole is the schema descriptor for role field.
	debateturneventDescRole := debateturneventFields[1].Descriptor()
	// debateturnevent.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	debateturnevent.RoleValidator = debateturneventDescRole.Validators[0].(func(string) error)
	// debateturneventDescPhase is the schema descriptor for phase field.
	debateturneventDescPhase := debateturneventFields[2].Descriptor()
	// debateturnevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	debateturnevent.PhaseValidator = debateturneventDescPhase.Validators[0].(func(string) error)
	// debateturneventDescContent is the schema descriptor for content field.
	debateturneventDescContent := debateturneventFields[3].Descriptor()
	// debateturnevent.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	debateturnevent.ContentValidator = debateturneventDescContent.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[1].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescRoundsPlayed is the schema descriptor for rounds_played field.
	sessioneventDescRoundsPlayed := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultRoundsPlayed holds the default value on creation for the rounds_played field.
	sessionevent.DefaultRoundsPlayed = sessioneventDescRoundsPlayed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
