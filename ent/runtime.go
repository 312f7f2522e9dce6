// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adityab/healthpredict/ent/historyrecord"
	"github.com/adityab/healthpredict/ent/predictevent"
	"github.com/adityab/healthpredict/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	historyrecordFields := schema.HistoryRecord{}.Fields()
	_ = historyrecordFields
	// historyrecordDescUserID is the schema descriptor for user_id field.
	historyrecordDescUserID := historyrecordFields[0].Descriptor()
	// historyrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	historyrecord.UserIDValidator = historyrecordDescUserID.Validators[0].(func(string) error)
	// historyrecordDescPredictionLevel is the schema descriptor for prediction_level field.
	historyrecordDescPredictionLevel := historyrecordFields[1].Descriptor()
	// historyrecord.PredictionLevelValidator is a validator for the "prediction_level" field. It is called by the builders before save.
	historyrecord.PredictionLevelValidator = historyrecordDescPredictionLevel.Validators[0].(func(string) error)
	// historyrecordDescCreatedAt is the schema descriptor for created_at field.
	historyrecordDescCreatedAt := historyrecordFields[4].Descriptor()
	// historyrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	historyrecord.DefaultCreatedAt = historyrecordDescCreatedAt.Default.(func() time.Time)
	predicteventFields := schema.PredictEvent{}.Fields()
	_ = predicteventFields
	// predicteventDescRequestID is the schema descriptor for request_id field.
	predicteventDescRequestID := predicteventFields[0].Descriptor()
	// predictevent.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	predictevent.RequestIDValidator = predicteventDescRequestID.Validators[0].(func(string) error)
	// predicteventDescLatencyMs is the schema descriptor for latency_ms field.
	predicteventDescLatencyMs := predicteventFields[2].Descriptor()
	// predictevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	predictevent.DefaultLatencyMs = predicteventDescLatencyMs.Default.(int64)
	// predicteventDescSuccess is the schema descriptor for success field.
	predicteventDescSuccess := predicteventFields[3].Descriptor()
	// predictevent.DefaultSuccess holds the default value on creation for the success field.
	predictevent.DefaultSuccess = predicteventDescSuccess.Default.(bool)
	// predicteventDescOutcome is the schema descriptor for outcome field.
	predicteventDescOutcome := predicteventFields[4].Descriptor()
	// predictevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	predictevent.OutcomeValidator = predicteventDescOutcome.Validators[0].(func(string) error)
	// predicteventDescTimestamp is the schema descriptor for timestamp field.
	predicteventDescTimestamp := predicteventFields[6].Descriptor()
	// predictevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	predictevent.DefaultTimestamp = predicteventDescTimestamp.Default.(func() time.Time)
}
