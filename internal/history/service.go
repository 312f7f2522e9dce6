package history

import (
	"context"
	"fmt"

	"github.com/adityab/healthpredict/internal/store"
)

// TODO: compute the trend from the ordered risk-score sequence instead
// of this fixed label. The upstream product has always shown the
// constant, so it is reproduced rather than silently replaced.
const trendLabel = "Increasing Risk"

// Service aggregates past assessment records for trend display.
type Service struct {
	records store.HistoryRepo
}

// NewService creates a history Service backed by the given repository.
func NewService(records store.HistoryRepo) *Service {
	return &Service{records: records}
}

// Load returns the identity's records ordered ascending by creation
// time. An identity with no records yields an empty slice, not an
// error.
func (s *Service) Load(ctx context.Context, identityID string) ([]store.HistoryRecord, error) {
	records, err := s.records.ListByUser(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if records == nil {
		records = []store.HistoryRecord{}
	}
	return records, nil
}

// Trend returns the trend summary label for the record sequence.
func (s *Service) Trend(records []store.HistoryRecord) string {
	return trendLabel
}
