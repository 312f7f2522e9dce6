// Code generated by ent, DO NOT EDIT.

package historyrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adityab/healthpredict/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldUserID, v))
}

// PredictionLevel applies equality check predicate on the "prediction_level" field. It's identical to PredictionLevelEQ.
func PredictionLevel(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldPredictionLevel, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldRiskScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldContainsFold(FieldUserID, v))
}

// PredictionLevelEQ applies the EQ predicate on the "prediction_level" field.
func PredictionLevelEQ(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldPredictionLevel, v))
}

// PredictionLevelNEQ applies the NEQ predicate on the "prediction_level" field.
func PredictionLevelNEQ(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNEQ(FieldPredictionLevel, v))
}

// PredictionLevelIn applies the In predicate on the "prediction_level" field.
func PredictionLevelIn(vs ...string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldIn(FieldPredictionLevel, vs...))
}

// PredictionLevelNotIn applies the NotIn predicate on the "prediction_level" field.
func PredictionLevelNotIn(vs ...string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNotIn(FieldPredictionLevel, vs...))
}

// PredictionLevelGT applies the GT predicate on the "prediction_level" field.
func PredictionLevelGT(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGT(FieldPredictionLevel, v))
}

// PredictionLevelGTE applies the GTE predicate on the "prediction_level" field.
func PredictionLevelGTE(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGTE(FieldPredictionLevel, v))
}

// PredictionLevelLT applies the LT predicate on the "prediction_level" field.
func PredictionLevelLT(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLT(FieldPredictionLevel, v))
}

// PredictionLevelLTE applies the LTE predicate on the "prediction_level" field.
func PredictionLevelLTE(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLTE(FieldPredictionLevel, v))
}

// PredictionLevelContains applies the Contains predicate on the "prediction_level" field.
func PredictionLevelContains(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldContains(FieldPredictionLevel, v))
}

// PredictionLevelHasPrefix applies the HasPrefix predicate on the "prediction_level" field.
func PredictionLevelHasPrefix(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldHasPrefix(FieldPredictionLevel, v))
}

// PredictionLevelHasSuffix applies the HasSuffix predicate on the "prediction_level" field.
func PredictionLevelHasSuffix(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldHasSuffix(FieldPredictionLevel, v))
}

// PredictionLevelEqualFold applies the EqualFold predicate on the "prediction_level" field.
func PredictionLevelEqualFold(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEqualFold(FieldPredictionLevel, v))
}

// PredictionLevelContainsFold applies the ContainsFold predicate on the "prediction_level" field.
func PredictionLevelContainsFold(v string) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldContainsFold(FieldPredictionLevel, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLTE(FieldRiskScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HistoryRecord) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HistoryRecord) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HistoryRecord) predicate.HistoryRecord {
	return predicate.HistoryRecord(sql.NotPredicates(p))
}
