package store

import (
	"context"
	"time"
)

// RecordMetadata carries the assessment context stored alongside a
// history record.
type RecordMetadata struct {
	Symptoms       []string `json:"symptoms"`
	SuggestedSteps []string `json:"suggested_steps"`
}

// HistoryRecord is one persisted assessment outcome.
type HistoryRecord struct {
	ID              int
	UserID          string
	PredictionLevel string
	RiskScore       float64
	Metadata        RecordMetadata
	CreatedAt       time.Time
}

// HistoryRepo provides durable storage for assessment outcomes.
// Records are append-only; there is no update or delete path.
type HistoryRepo interface {
	// Insert stores a new record. CreatedAt is assigned by the store
	// when zero.
	Insert(ctx context.Context, rec *HistoryRecord) error

	// ListByUser returns all records for the identity, ordered
	// ascending by creation time. An unknown identity yields an empty
	// slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]HistoryRecord, error)
}

// PredictEventData captures the data for a single prediction call
// audit event.
type PredictEventData struct {
	RequestID    string
	UserID       string
	LatencyMs    int64
	Success      bool
	Outcome      string
	ErrorMessage string
}

// EventRepo provides append access to audit events.
type EventRepo interface {
	// AppendPredictEvent records one prediction service call.
	AppendPredictEvent(ctx context.Context, data PredictEventData) error
}
