// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adityab/healthpredict/ent/historyrecord"
	"github.com/adityab/healthpredict/ent/schema"
)

// HistoryRecord is the model entity for the HistoryRecord schema.
type HistoryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Identity id issued by the auth provider
	UserID string `json:"user_id,omitempty"`
	// Low, Medium or High
	PredictionLevel string `json:"prediction_level,omitempty"`
	// Risk score on the 0-100 scale
	RiskScore float64 `json:"risk_score,omitempty"`
	// Submitted symptoms and suggested steps
	Metadata schema.RecordMetadata `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HistoryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case historyrecord.FieldMetadata:
			values[i] = new([]byte)
		case historyrecord.FieldRiskScore:
			values[i] = new(sql.NullFloat64)
		case historyrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case historyrecord.FieldUserID, historyrecord.FieldPredictionLevel:
			values[i] = new(sql.NullString)
		case historyrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HistoryRecord fields.
func (_m *HistoryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case historyrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case historyrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case historyrecord.FieldPredictionLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prediction_level", values[i])
			} else if value.Valid {
				_m.PredictionLevel = value.String
			}
		case historyrecord.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case historyrecord.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case historyrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HistoryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *HistoryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HistoryRecord.
// Note that you need to call HistoryRecord.Unwrap() before calling this method if this HistoryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HistoryRecord) Update() *HistoryRecordUpdateOne {
	return NewHistoryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HistoryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HistoryRecord) Unwrap() *HistoryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HistoryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HistoryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("HistoryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("prediction_level=")
	builder.WriteString(_m.PredictionLevel)
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HistoryRecords is a parsable slice of HistoryRecord.
type HistoryRecords []*HistoryRecord
