package predict

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseAge(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"34", 34},
		{"", DefaultAge},
		{"abc", DefaultAge},
		{"-5", DefaultAge},
		{"0", DefaultAge},
		{"101", 101},
	}
	for _, tt := range tests {
		if got := ParseAge(tt.in); got != tt.want {
			t.Errorf("ParseAge(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBuildRequest_WirePayload(t *testing.T) {
	q := Questionnaire{
		Age:           41,
		Gender:        GenderOther,
		Symptoms:      []string{"cough", "fever"},
		Smoking:       true,
		Exercise:      false,
		BloodPressure: "120/80",
	}

	raw, err := json.Marshal(buildRequest(q))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	for _, want := range []string{
		`"age":41`,
		`"gender":"other"`,
		`"symptoms":["cough","fever"]`,
		`"lifestyle_smoking":true`,
		`"lifestyle_exercise":false`,
		`"blood_pressure":"120/80"`,
		`"sugar_level":""`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("payload missing %s: %s", want, body)
		}
	}
}

func TestBuildRequest_NilSymptomsEncodeAsEmptyList(t *testing.T) {
	raw, err := json.Marshal(buildRequest(Questionnaire{Age: 25}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"symptoms":[]`) {
		t.Errorf("nil symptoms must encode as [], got %s", raw)
	}
}

func TestRiskLevelValid(t *testing.T) {
	for _, l := range RiskLevels {
		if !l.Valid() {
			t.Errorf("%q should be valid", l)
		}
	}
	if RiskLevel("Critical").Valid() {
		t.Error("unknown label should be invalid")
	}
}

func TestSymptomVocabularyIsFixed(t *testing.T) {
	if len(Symptoms) != 10 {
		t.Errorf("vocabulary size = %d, want 10", len(Symptoms))
	}
}
