package predict

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/adityab/healthpredict/internal/auth"
	"github.com/adityab/healthpredict/internal/store"
)

// fakeHistoryRepo is an in-memory store.HistoryRepo.
type fakeHistoryRepo struct {
	records   []store.HistoryRecord
	insertErr error
}

func (f *fakeHistoryRepo) Insert(_ context.Context, rec *store.HistoryRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	rec.ID = len(f.records) + 1
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeHistoryRepo) ListByUser(_ context.Context, userID string) ([]store.HistoryRecord, error) {
	var out []store.HistoryRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeEventRepo collects audit events.
type fakeEventRepo struct {
	events []store.PredictEventData
}

func (f *fakeEventRepo) AppendPredictEvent(_ context.Context, data store.PredictEventData) error {
	f.events = append(f.events, data)
	return nil
}

func realResult() *Result {
	return &Result{
		Prediction: RiskHigh,
		RiskScore:  81.2,
		Probabilities: map[string]float64{
			"Low": 0.05, "Medium": 0.14, "High": 0.81,
		},
		SuggestedSteps: []string{"Consult a specialist immediately"},
		DoctorConsult:  "Urgent: Visit an Emergency Room or General Physician today.",
	}
}

func testIdentity() *auth.Identity {
	return &auth.Identity{ID: "user-1", Email: "a@b.com"}
}

func TestSubmit_RemoteFailureYieldsExactFallback(t *testing.T) {
	client := NewMockClient(MockResponse{Err: &ErrServiceUnavailable{Err: errors.New("connection refused")}})
	repo := &fakeHistoryRepo{}
	w := NewWorkflow(client, repo, nil)

	got := w.Submit(context.Background(), Questionnaire{Age: 30}, testIdentity())

	if got.Prediction != RiskMedium {
		t.Errorf("prediction = %q, want Medium", got.Prediction)
	}
	if got.RiskScore != 42.8 {
		t.Errorf("risk score = %v, want 42.8", got.RiskScore)
	}
	wantProbs := map[string]float64{"Low": 0.35, "Medium": 0.43, "High": 0.22}
	if !reflect.DeepEqual(got.Probabilities, wantProbs) {
		t.Errorf("probabilities = %v, want %v", got.Probabilities, wantProbs)
	}
	wantSteps := []string{"Scheduled a check-up", "Monitor blood pressure", "Increase fiber intake"}
	if !reflect.DeepEqual(got.SuggestedSteps, wantSteps) {
		t.Errorf("steps = %v, want %v", got.SuggestedSteps, wantSteps)
	}
	if got.DoctorConsult != "Recommended: Consult a General Practitioner within 2-3 days." {
		t.Errorf("doctor consult = %q", got.DoctorConsult)
	}
	if len(repo.records) != 0 {
		t.Errorf("records = %d, want 0 on the fallback path", len(repo.records))
	}
}

func TestSubmit_SuccessWithoutIdentityPersistsNothing(t *testing.T) {
	client := NewMockClient(MockResponse{Result: realResult()})
	repo := &fakeHistoryRepo{}
	w := NewWorkflow(client, repo, nil)

	got := w.Submit(context.Background(), Questionnaire{Age: 30}, nil)

	if got.Prediction != RiskHigh || got.RiskScore != 81.2 {
		t.Errorf("expected the real result back, got %+v", got)
	}
	if len(repo.records) != 0 {
		t.Errorf("records = %d, want 0 without an identity", len(repo.records))
	}
}

func TestSubmit_SuccessWithIdentityPersistsOneRecord(t *testing.T) {
	client := NewMockClient(MockResponse{Result: realResult()})
	repo := &fakeHistoryRepo{}
	w := NewWorkflow(client, repo, nil)

	q := Questionnaire{
		Age:      52,
		Gender:   GenderFemale,
		Symptoms: []string{"chest_pain", "dizziness"},
		Smoking:  true,
	}
	got := w.Submit(context.Background(), q, testIdentity())

	if got.Prediction != RiskHigh {
		t.Fatalf("expected the real result back, got %+v", got)
	}
	if len(repo.records) != 1 {
		t.Fatalf("records = %d, want exactly 1", len(repo.records))
	}
	rec := repo.records[0]
	if rec.UserID != "user-1" {
		t.Errorf("record user = %q", rec.UserID)
	}
	if rec.PredictionLevel != "High" || rec.RiskScore != 81.2 {
		t.Errorf("record level/score = %q/%v", rec.PredictionLevel, rec.RiskScore)
	}
	if !reflect.DeepEqual(rec.Metadata.Symptoms, q.Symptoms) {
		t.Errorf("record symptoms = %v, want %v", rec.Metadata.Symptoms, q.Symptoms)
	}
	if !reflect.DeepEqual(rec.Metadata.SuggestedSteps, got.SuggestedSteps) {
		t.Errorf("record steps = %v, want %v", rec.Metadata.SuggestedSteps, got.SuggestedSteps)
	}
}

// A persistence fault after a successful prediction discards the real
// result and substitutes the fallback. Regression guard for the
// observed (and deliberate) behavior.
func TestSubmit_PersistFailureDiscardsRealResult(t *testing.T) {
	client := NewMockClient(MockResponse{Result: realResult()})
	repo := &fakeHistoryRepo{insertErr: errors.New("disk full")}
	w := NewWorkflow(client, repo, nil)

	got := w.Submit(context.Background(), Questionnaire{Age: 30}, testIdentity())

	if got.Prediction != RiskMedium || got.RiskScore != 42.8 {
		t.Errorf("expected the fallback, got %+v", got)
	}
	if len(repo.records) != 0 {
		t.Errorf("records = %d, want 0 after persist failure", len(repo.records))
	}
}

func TestSubmit_CallsPredictorExactlyOnce(t *testing.T) {
	client := NewMockClient() // empty queue: every call fails
	w := NewWorkflow(client, nil, nil)

	w.Submit(context.Background(), Questionnaire{}, nil)

	if client.CallCount() != 1 {
		t.Errorf("predictor calls = %d, want exactly 1 (no retries)", client.CallCount())
	}
}

func TestSubmit_AuditRecordsDistinctOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		client      *MockClient
		insertErr   error
		ident       *auth.Identity
		wantOutcome string
		wantSuccess bool
	}{
		{"ok", NewMockClient(MockResponse{Result: realResult()}), nil, testIdentity(), "ok", true},
		{"remote failed", NewMockClient(), nil, testIdentity(), "remote_failed", false},
		{"persist failed", NewMockClient(MockResponse{Result: realResult()}), errors.New("disk full"), testIdentity(), "persist_failed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeHistoryRepo{insertErr: tt.insertErr}
			events := &fakeEventRepo{}
			w := NewWorkflow(tt.client, repo, events)

			w.Submit(context.Background(), Questionnaire{}, tt.ident)

			if len(events.events) != 1 {
				t.Fatalf("events = %d, want 1", len(events.events))
			}
			ev := events.events[0]
			if ev.Outcome != tt.wantOutcome {
				t.Errorf("outcome = %q, want %q", ev.Outcome, tt.wantOutcome)
			}
			if ev.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", ev.Success, tt.wantSuccess)
			}
			if ev.UserID != "user-1" {
				t.Errorf("event user = %q", ev.UserID)
			}
			if ev.RequestID == "" {
				t.Error("event request id is empty")
			}
		})
	}
}
