package predict

import (
	"encoding/json"
	"errors"
	"testing"
)

func validBody() map[string]any {
	return map[string]any{
		"prediction": "Low",
		"risk_score": 12.5,
		"probabilities": map[string]any{
			"Low": 0.8, "Medium": 0.15, "High": 0.05,
		},
		"suggested_steps": []any{"Maintain a healthy diet"},
		"doctor_consult":  "Routine: Standard annual check-up is sufficient.",
	}
}

func marshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestValidateResponse_Valid(t *testing.T) {
	result, err := validateResponse(marshal(t, validBody()))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if result.Prediction != RiskLow {
		t.Errorf("prediction = %q", result.Prediction)
	}
	if result.Probabilities["High"] != 0.05 {
		t.Errorf("probabilities = %v", result.Probabilities)
	}
}

func TestValidateResponse_RejectsMalformedJSON(t *testing.T) {
	_, err := validateResponse(json.RawMessage(`{"prediction":`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *ErrInvalidResponse", err)
	}
}

func TestValidateResponse_RejectsUnknownLabel(t *testing.T) {
	body := validBody()
	body["prediction"] = "Critical"
	_, err := validateResponse(marshal(t, body))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *ErrInvalidResponse", err)
	}
}

func TestValidateResponse_RejectsMissingField(t *testing.T) {
	body := validBody()
	delete(body, "doctor_consult")
	_, err := validateResponse(marshal(t, body))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *ErrInvalidResponse", err)
	}
}

// The classification label must be present in the probability map; a
// response violating that would cause a downstream lookup miss, so it
// is rejected at the boundary.
func TestValidateResponse_RejectsLabelMissingFromProbabilities(t *testing.T) {
	body := validBody()
	body["probabilities"] = map[string]any{"Medium": 0.6, "High": 0.4}
	_, err := validateResponse(marshal(t, body))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *ErrInvalidResponse", err)
	}
}

func TestValidateResponse_ProbabilitySumNotEnforced(t *testing.T) {
	body := validBody()
	body["probabilities"] = map[string]any{"Low": 0.9, "Medium": 0.9, "High": 0.9}
	if _, err := validateResponse(marshal(t, body)); err != nil {
		t.Errorf("probability sum must not be enforced, got %v", err)
	}
}
