// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// HistoryRecord is the predicate function for historyrecord builders.
type HistoryRecord func(*sql.Selector)

// PredictEvent is the predicate function for predictevent builders.
type PredictEvent func(*sql.Selector)
