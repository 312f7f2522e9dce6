package predict

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/adityab/healthpredict/internal/auth"
	"github.com/adityab/healthpredict/internal/store"
)

// outcome distinguishes the internal paths of one submission. The two
// failure causes stay separate here even though they collapse into the
// same fallback result at the public boundary.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeRemoteFailed
	outcomePersistFailed
)

func (o outcome) String() string {
	switch o {
	case outcomeOK:
		return "ok"
	case outcomeRemoteFailed:
		return "remote_failed"
	case outcomePersistFailed:
		return "persist_failed"
	default:
		return "unknown"
	}
}

// Workflow orchestrates one prediction request: remote call, fallback
// synthesis, conditional persistence, and audit logging.
type Workflow struct {
	client  Client
	records store.HistoryRepo
	events  store.EventRepo
}

// NewWorkflow creates a Workflow. records and events may be nil; no
// history is written and no audit trail is kept for the nil ones.
func NewWorkflow(client Client, records store.HistoryRepo, events store.EventRepo) *Workflow {
	return &Workflow{client: client, records: records, events: events}
}

// Submit runs the full submission sequence and always yields a result,
// never an error. A signed-in user's successful prediction is persisted
// as a history record; failure of either the remote call or the
// persistence attempt yields the fallback result, and no record exists
// for a fallback. The caller cannot tell which path produced the
// result.
func (w *Workflow) Submit(ctx context.Context, q Questionnaire, ident *auth.Identity) *Result {
	start := time.Now()
	result, out, err := w.submit(ctx, q, ident)
	w.audit(ctx, ident, time.Since(start), out, err)
	return result
}

func (w *Workflow) submit(ctx context.Context, q Questionnaire, ident *auth.Identity) (*Result, outcome, error) {
	result, err := w.client.Predict(ctx, q)
	if err != nil {
		return Fallback(), outcomeRemoteFailed, err
	}

	if ident != nil && w.records != nil {
		rec := &store.HistoryRecord{
			UserID:          ident.ID,
			PredictionLevel: string(result.Prediction),
			RiskScore:       result.RiskScore,
			Metadata: store.RecordMetadata{
				Symptoms:       q.Symptoms,
				SuggestedSteps: result.SuggestedSteps,
			},
		}
		if err := w.records.Insert(ctx, rec); err != nil {
			// Observed behavior: a persistence fault discards the real
			// result and falls through to the fallback.
			return Fallback(), outcomePersistFailed, err
		}
	}

	return result, outcomeOK, nil
}

// audit appends one event row per submission. A failed audit write
// never affects the result.
func (w *Workflow) audit(ctx context.Context, ident *auth.Identity, elapsed time.Duration, out outcome, err error) {
	if w.events == nil {
		return
	}

	data := store.PredictEventData{
		RequestID: uuid.New().String(),
		LatencyMs: elapsed.Milliseconds(),
		Success:   out == outcomeOK,
		Outcome:   out.String(),
	}
	if ident != nil {
		data.UserID = ident.ID
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if logErr := w.events.AppendPredictEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log predict event: %v\n", logErr)
	}
}
