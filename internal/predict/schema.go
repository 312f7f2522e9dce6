package predict

// responseSchema is the JSON Schema every prediction service response
// must satisfy before it is decoded.
var responseSchema = &schemaDef{
	Name: "prediction-result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prediction": map[string]any{
				"type": "string",
				"enum": []any{"Low", "Medium", "High"},
			},
			"risk_score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
			"probabilities": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 1,
				},
			},
			"suggested_steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"doctor_consult": map[string]any{
				"type": "string",
			},
		},
		"required": []any{
			"prediction", "risk_score", "probabilities",
			"suggested_steps", "doctor_consult",
		},
	},
}

// schemaDef names a JSON Schema definition for compilation and caching.
type schemaDef struct {
	Name       string
	Definition map[string]any
}
