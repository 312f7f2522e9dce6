package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestHistoryInsertAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	rec := &HistoryRecord{
		UserID:          "user-1",
		PredictionLevel: "High",
		RiskScore:       78.5,
		Metadata: RecordMetadata{
			Symptoms:       []string{"fever", "chest_pain"},
			SuggestedSteps: []string{"Consult a specialist immediately"},
		},
	}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if rec.ID == 0 {
		t.Error("expected assigned record ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected assigned creation time")
	}

	records, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	got := records[0]
	if got.PredictionLevel != "High" || got.RiskScore != 78.5 {
		t.Errorf("record = %+v", got)
	}
	if len(got.Metadata.Symptoms) != 2 || got.Metadata.Symptoms[0] != "fever" {
		t.Errorf("metadata symptoms = %v", got.Metadata.Symptoms)
	}
}

func TestHistoryListOrderedAscending(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	// Insert newest first to prove the ordering comes from the query.
	for i := 2; i >= 0; i-- {
		err := repo.Insert(ctx, &HistoryRecord{
			UserID:          "user-1",
			PredictionLevel: "Low",
			RiskScore:       float64(10 * (i + 1)),
			CreatedAt:       base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	records, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.Before(records[i-1].CreatedAt) {
			t.Fatalf("records out of order at %d: %v before %v", i, records[i].CreatedAt, records[i-1].CreatedAt)
		}
	}
}

func TestHistoryListUnknownUserIsEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	records, err := s.HistoryRepo().ListByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
}

func TestHistoryScopedByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	for _, user := range []string{"user-a", "user-a", "user-b"} {
		err := repo.Insert(ctx, &HistoryRecord{
			UserID:          user,
			PredictionLevel: "Medium",
			RiskScore:       42.8,
		})
		if err != nil {
			t.Fatalf("insert for %s: %v", user, err)
		}
	}

	records, err := repo.ListByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records for user-a = %d, want 2", len(records))
	}
}

func TestAppendPredictEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendPredictEvent(ctx, PredictEventData{
		RequestID:    "req-1",
		UserID:       "user-1",
		LatencyMs:    120,
		Success:      false,
		Outcome:      "remote_failed",
		ErrorMessage: "connection refused",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().PredictEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("events = %d, want 1", count)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"history_records", "predict_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
