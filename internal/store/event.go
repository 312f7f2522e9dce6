package store

import (
	"context"
	"fmt"

	"github.com/adityab/healthpredict/ent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendPredictEvent(ctx context.Context, data PredictEventData) error {
	create := r.client.PredictEvent.Create().
		SetRequestID(data.RequestID).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetOutcome(data.Outcome)
	if data.UserID != "" {
		create = create.SetUserID(data.UserID)
	}
	if data.ErrorMessage != "" {
		create = create.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append predict event: %w", err)
	}
	return nil
}
