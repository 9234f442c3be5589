package battle

import "time"

// timerTickMsg fires once per second while a round is active.
type timerTickMsg time.Time

// answerRecordedMsg signals that the round event was persisted.
type answerRecordedMsg struct{ Err error }
