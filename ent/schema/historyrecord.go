package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryRecord is one persisted assessment outcome. Rows are written
// once, after a successful remote prediction for a signed-in user, and
// never updated or deleted.
type HistoryRecord struct {
	ent.Schema
}

// RecordMetadata is the serialized context of one assessment.
type RecordMetadata struct {
	Symptoms       []string `json:"symptoms"`
	SuggestedSteps []string `json:"suggested_steps"`
}

func (HistoryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Identity id issued by the auth provider"),
		field.String("prediction_level").
			NotEmpty().
			Immutable().
			Comment("Low, Medium or High"),
		field.Float("risk_score").
			Immutable().
			Comment("Risk score on the 0-100 scale"),
		field.JSON("metadata", RecordMetadata{}).
			Comment("Submitted symptoms and suggested steps"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (HistoryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "created_at"),
	}
}
