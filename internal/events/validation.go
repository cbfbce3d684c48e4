package events

import "time"

// ValidationStart is emitted before a validation pass begins.
type ValidationStart struct {
	InputType string
}

// ValidationFinish is emitted after a validation pass completes.
type ValidationFinish struct {
	InputType    string
	FieldTasks   int
	SubtreeTasks int
	Violations   int
	Duration     time.Duration
}
