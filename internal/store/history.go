package store

import (
	"context"
	"fmt"

	"github.com/adityab/healthpredict/ent"
	"github.com/adityab/healthpredict/ent/historyrecord"
	"github.com/adityab/healthpredict/ent/schema"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Insert(ctx context.Context, rec *HistoryRecord) error {
	create := r.client.HistoryRecord.Create().
		SetUserID(rec.UserID).
		SetPredictionLevel(rec.PredictionLevel).
		SetRiskScore(rec.RiskScore).
		SetMetadata(schema.RecordMetadata{
			Symptoms:       rec.Metadata.Symptoms,
			SuggestedSteps: rec.Metadata.SuggestedSteps,
		})
	if !rec.CreatedAt.IsZero() {
		create = create.SetCreatedAt(rec.CreatedAt)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}

	rec.ID = saved.ID
	rec.CreatedAt = saved.CreatedAt
	return nil
}

func (r *historyRepo) ListByUser(ctx context.Context, userID string) ([]HistoryRecord, error) {
	rows, err := r.client.HistoryRecord.Query().
		Where(historyrecord.UserID(userID)).
		Order(ent.Asc(historyrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history records: %w", err)
	}

	records := make([]HistoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, HistoryRecord{
			ID:              row.ID,
			UserID:          row.UserID,
			PredictionLevel: row.PredictionLevel,
			RiskScore:       row.RiskScore,
			Metadata: RecordMetadata{
				Symptoms:       row.Metadata.Symptoms,
				SuggestedSteps: row.Metadata.SuggestedSteps,
			},
			CreatedAt: row.CreatedAt,
		})
	}
	return records, nil
}
