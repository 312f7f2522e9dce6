// Code generated by ent, DO NOT EDIT.

package historyrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the historyrecord type in the database.
	Label = "history_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPredictionLevel holds the string denoting the prediction_level field in the database.
	FieldPredictionLevel = "prediction_level"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the historyrecord in the database.
	Table = "history_records"
)

// Columns holds all SQL columns for historyrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPredictionLevel,
	FieldRiskScore,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// PredictionLevelValidator is a validator for the "prediction_level" field. It is called by the builders before save.
	PredictionLevelValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the HistoryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPredictionLevel orders the results by the prediction_level field.
func ByPredictionLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictionLevel, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
