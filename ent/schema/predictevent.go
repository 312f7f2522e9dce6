package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PredictEvent is an audit row for one prediction service call.
type PredictEvent struct {
	ent.Schema
}

func (PredictEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			NotEmpty().
			Immutable().
			Comment("UUID assigned to the call"),
		field.String("user_id").
			Optional().
			Immutable().
			Comment("Identity id when signed in, empty otherwise"),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(false),
		field.String("outcome").
			NotEmpty().
			Comment("ok, remote_failed or persist_failed"),
		field.String("error_message").
			Optional(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (PredictEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("outcome"),
	}
}
