package predict

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(Config{URL: srv.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestHTTPClient_Predict(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"prediction": "High",
			"risk_score": 77.0,
			"probabilities": map[string]float64{
				"Low": 0.1, "Medium": 0.2, "High": 0.7,
			},
			"suggested_steps": []string{"Consult a specialist immediately"},
			"doctor_consult":  "Urgent: Visit an Emergency Room or General Physician today.",
		})
	})

	result, err := client.Predict(context.Background(), Questionnaire{
		Age:      60,
		Gender:   GenderMale,
		Symptoms: []string{"chest_pain"},
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if gotPath != "/predict" {
		t.Errorf("path = %q, want /predict", gotPath)
	}
	if gotBody["age"] != float64(60) {
		t.Errorf("request age = %v", gotBody["age"])
	}
	if result.Prediction != RiskHigh || result.RiskScore != 77.0 {
		t.Errorf("result = %+v", result)
	}
}

func TestHTTPClient_ServerErrorIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Predict(context.Background(), Questionnaire{})
	var unavail *ErrServiceUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v, want *ErrServiceUnavailable", err)
	}
}

func TestHTTPClient_ConnectionRefusedIsUnavailable(t *testing.T) {
	client, err := NewHTTPClient(Config{URL: "http://127.0.0.1:1", Timeout: time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Predict(context.Background(), Questionnaire{})
	var unavail *ErrServiceUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v, want *ErrServiceUnavailable", err)
	}
}

func TestHTTPClient_SchemaViolationIsInvalidResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"prediction": "High"})
	})

	_, err := client.Predict(context.Background(), Questionnaire{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *ErrInvalidResponse", err)
	}
}
