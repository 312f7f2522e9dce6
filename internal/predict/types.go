package predict

import "strconv"

// Gender is the questionnaire gender selection.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the selectable values in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// DefaultAge is substituted when the age input is blank or unparsable.
const DefaultAge = 25

// Symptoms is the fixed vocabulary the predictor understands.
var Symptoms = []string{
	"fever", "cough", "fatigue", "shortness_of_breath",
	"headache", "body_ache", "sore_throat", "loss_of_taste",
	"chest_pain", "dizziness",
}

// ParseAge coerces free-text age input to an integer, falling back to
// DefaultAge for blank or unparsable values.
func ParseAge(s string) int {
	age, err := strconv.Atoi(s)
	if err != nil || age <= 0 {
		return DefaultAge
	}
	return age
}

// Questionnaire is one assessment submission. It is created fresh each
// time the form screen is entered and discarded after submission.
type Questionnaire struct {
	Age           int
	Gender        Gender
	Symptoms      []string
	Smoking       bool
	Exercise      bool
	BloodPressure string // optional free text, e.g. "120/80"
	SugarLevel    string // optional free text, e.g. "95 mg/dL"
}

// RiskLevel is the closed set of classification labels.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskLevels lists the labels in ascending severity.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

// Valid reports whether the label is one of the closed set.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Result is the predictor's classification for one questionnaire, or
// the synthesized fallback when the pipeline fails.
type Result struct {
	Prediction     RiskLevel          `json:"prediction"`
	RiskScore      float64            `json:"risk_score"`
	Probabilities  map[string]float64 `json:"probabilities"`
	SuggestedSteps []string           `json:"suggested_steps"`
	DoctorConsult  string             `json:"doctor_consult"`
}

// request is the wire payload for the prediction service.
type request struct {
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	Symptoms          []string `json:"symptoms"`
	LifestyleSmoking  bool     `json:"lifestyle_smoking"`
	LifestyleExercise bool     `json:"lifestyle_exercise"`
	BloodPressure     string   `json:"blood_pressure"`
	SugarLevel        string   `json:"sugar_level"`
}

// buildRequest maps a questionnaire onto the wire payload, preserving
// symptom insertion order.
func buildRequest(q Questionnaire) request {
	symptoms := q.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return request{
		Age:               q.Age,
		Gender:            string(q.Gender),
		Symptoms:          symptoms,
		LifestyleSmoking:  q.Smoking,
		LifestyleExercise: q.Exercise,
		BloodPressure:     q.BloodPressure,
		SugarLevel:        q.SugarLevel,
	}
}
