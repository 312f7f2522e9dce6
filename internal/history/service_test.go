package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityab/healthpredict/internal/store"
)

type fakeRepo struct {
	records []store.HistoryRecord
	err     error
}

func (f *fakeRepo) Insert(_ context.Context, rec *store.HistoryRecord) error {
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string) ([]store.HistoryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []store.HistoryRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestLoad_EmptyHistoryIsNotAnError(t *testing.T) {
	svc := NewService(&fakeRepo{})

	records, err := svc.Load(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLoad_ReturnsRecordsInStoredOrder(t *testing.T) {
	base := time.Now().UTC()
	repo := &fakeRepo{records: []store.HistoryRecord{
		{UserID: "u1", PredictionLevel: "Low", RiskScore: 20, CreatedAt: base},
		{UserID: "u1", PredictionLevel: "Medium", RiskScore: 45, CreatedAt: base.Add(time.Hour)},
		{UserID: "u2", PredictionLevel: "High", RiskScore: 80, CreatedAt: base.Add(2 * time.Hour)},
	}}
	svc := NewService(repo)

	records, err := svc.Load(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Low", records[0].PredictionLevel)
	assert.Equal(t, "Medium", records[1].PredictionLevel)
}

func TestLoad_PropagatesStoreError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("db closed")})
	_, err := svc.Load(context.Background(), "u1")
	require.Error(t, err)
}

func TestTrend_IsFixedLabel(t *testing.T) {
	svc := NewService(&fakeRepo{})
	assert.Equal(t, "Increasing Risk", svc.Trend(nil))
}
