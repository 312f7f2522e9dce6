// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adityab/healthpredict/ent/historyrecord"
	"github.com/adityab/healthpredict/ent/predicate"
	"github.com/adityab/healthpredict/ent/schema"
)

// HistoryRecordUpdate is the builder for updating HistoryRecord entities.
type HistoryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryRecordMutation
}

// Where appends a list predicates to the HistoryRecordUpdate builder.
func (_u *HistoryRecordUpdate) Where(ps ...predicate.HistoryRecord) *HistoryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *HistoryRecordUpdate) SetMetadata(v schema.RecordMetadata) *HistoryRecordUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *HistoryRecordUpdate) SetNillableMetadata(v *schema.RecordMetadata) *HistoryRecordUpdate {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// Mutation returns the HistoryRecordMutation object of the builder.
func (_u *HistoryRecordUpdate) Mutation() *HistoryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(historyrecord.Table, historyrecord.Columns, sqlgraph.NewFieldSpec(historyrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(historyrecord.FieldMetadata, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryRecordUpdateOne is the builder for updating a single HistoryRecord entity.
type HistoryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryRecordMutation
}

// SetMetadata sets the "metadata" field.
func (_u *HistoryRecordUpdateOne) SetMetadata(v schema.RecordMetadata) *HistoryRecordUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *HistoryRecordUpdateOne) SetNillableMetadata(v *schema.RecordMetadata) *HistoryRecordUpdateOne {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// Mutation returns the HistoryRecordMutation object of the builder.
func (_u *HistoryRecordUpdateOne) Mutation() *HistoryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the HistoryRecordUpdate builder.
func (_u *HistoryRecordUpdateOne) Where(ps ...predicate.HistoryRecord) *HistoryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryRecordUpdateOne) Select(field string, fields ...string) *HistoryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HistoryRecord entity.
func (_u *HistoryRecordUpdateOne) Save(ctx context.Context) (*HistoryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryRecordUpdateOne) SaveX(ctx context.Context) *HistoryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryRecordUpdateOne) sqlSave(ctx context.Context) (_node *HistoryRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(historyrecord.Table, historyrecord.Columns, sqlgraph.NewFieldSpec(historyrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HistoryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, historyrecord.FieldID)
		for _, f := range fields {
			if !historyrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != historyrecord.FieldID {
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
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(historyrecord.FieldMetadata, field.TypeJSON, value)
	}
	_node = &HistoryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
