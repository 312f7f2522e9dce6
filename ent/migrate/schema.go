// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HistoryRecordsColumns holds the columns for the "history_records" table.
	HistoryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "prediction_level", Type: field.TypeString},
		{Name: "risk_score", Type: field.TypeFloat64},
		{Name: "metadata", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// HistoryRecordsTable holds the schema information for the "history_records" table.
	HistoryRecordsTable = &schema.Table{
		Name:       "history_records",
		Columns:    HistoryRecordsColumns,
		PrimaryKey: []*schema.Column{HistoryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "historyrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{HistoryRecordsColumns[1]},
			},
			{
				Name:    "historyrecord_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryRecordsColumns[1], HistoryRecordsColumns[5]},
			},
		},
	}
	// PredictEventsColumns holds the columns for the "predict_events" table.
	PredictEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "outcome", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// PredictEventsTable holds the schema information for the "predict_events" table.
	PredictEventsTable = &schema.Table{
		Name:       "predict_events",
		Columns:    PredictEventsColumns,
		PrimaryKey: []*schema.Column{PredictEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "predictevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PredictEventsColumns[7]},
			},
			{
				Name:    "predictevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{PredictEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HistoryRecordsTable,
		PredictEventsTable,
	}
)

func init() {
}
