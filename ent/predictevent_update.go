// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adityab/healthpredict/ent/predicate"
	"github.com/adityab/healthpredict/ent/predictevent"
)

// PredictEventUpdate is the builder for updating PredictEvent entities.
type PredictEventUpdate struct {
	config
	hooks    []Hook
	mutation *PredictEventMutation
}

// Where appends a list predicates to the PredictEventUpdate builder.
func (_u *PredictEventUpdate) Where(ps ...predicate.PredictEvent) *PredictEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *PredictEventUpdate) SetLatencyMs(v int64) *PredictEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *PredictEventUpdate) SetNillableLatencyMs(v *int64) *PredictEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *PredictEventUpdate) AddLatencyMs(v int64) *PredictEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PredictEventUpdate) SetSuccess(v bool) *PredictEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PredictEventUpdate) SetNillableSuccess(v *bool) *PredictEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *PredictEventUpdate) SetOutcome(v string) *PredictEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *PredictEventUpdate) SetNillableOutcome(v *string) *PredictEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PredictEventUpdate) SetErrorMessage(v string) *PredictEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PredictEventUpdate) SetNillableErrorMessage(v *string) *PredictEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PredictEventUpdate) ClearErrorMessage() *PredictEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PredictEventMutation object of the builder.
func (_u *PredictEventUpdate) Mutation() *PredictEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PredictEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PredictEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredictEventUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := predictevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "PredictEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *PredictEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(predictevent.Table, predictevent.Columns, sqlgraph.NewFieldSpec(predictevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(predictevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(predictevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(predictevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(predictevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(predictevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(predictevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(predictevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PredictEventUpdateOne is the builder for updating a single PredictEvent entity.
type PredictEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PredictEventMutation
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *PredictEventUpdateOne) SetLatencyMs(v int64) *PredictEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *PredictEventUpdateOne) SetNillableLatencyMs(v *int64) *PredictEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *PredictEventUpdateOne) AddLatencyMs(v int64) *PredictEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PredictEventUpdateOne) SetSuccess(v bool) *PredictEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PredictEventUpdateOne) SetNillableSuccess(v *bool) *PredictEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *PredictEventUpdateOne) SetOutcome(v string) *PredictEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *PredictEventUpdateOne) SetNillableOutcome(v *string) *PredictEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PredictEventUpdateOne) SetErrorMessage(v string) *PredictEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PredictEventUpdateOne) SetNillableErrorMessage(v *string) *PredictEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PredictEventUpdateOne) ClearErrorMessage() *PredictEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PredictEventMutation object of the builder.
func (_u *PredictEventUpdateOne) Mutation() *PredictEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PredictEventUpdate builder.
func (_u *PredictEventUpdateOne) Where(ps ...predicate.PredictEvent) *PredictEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PredictEventUpdateOne) Select(field string, fields ...string) *PredictEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PredictEvent entity.
func (_u *PredictEventUpdateOne) Save(ctx context.Context) (*PredictEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictEventUpdateOne) SaveX(ctx context.Context) *PredictEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PredictEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredictEventUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := predictevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "PredictEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *PredictEventUpdateOne) sqlSave(ctx context.Context) (_node *PredictEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(predictevent.Table, predictevent.Columns, sqlgraph.NewFieldSpec(predictevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PredictEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, predictevent.FieldID)
		for _, f := range fields {
			if !predictevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != predictevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(predictevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(predictevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(predictevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(predictevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(predictevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(predictevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(predictevent.FieldErrorMessage, field.TypeString)
	}
	_node = &PredictEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
