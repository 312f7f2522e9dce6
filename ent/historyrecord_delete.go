// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adityab/healthpredict/ent/historyrecord"
	"github.com/adityab/healthpredict/ent/predicate"
)

// HistoryRecordDelete is the builder for deleting a HistoryRecord entity.
type HistoryRecordDelete struct {
	config
	hooks    []Hook
	mutation *HistoryRecordMutation
}

// Where appends a list predicates to the HistoryRecordDelete builder.
func (_d *HistoryRecordDelete) Where(ps ...predicate.HistoryRecord) *HistoryRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HistoryRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HistoryRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HistoryRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(historyrecord.Table, sqlgraph.NewFieldSpec(historyrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// HistoryRecordDeleteOne is the builder for deleting a single HistoryRecord entity.
type HistoryRecordDeleteOne struct {
	_d *HistoryRecordDelete
}

// Where appends a list predicates to the HistoryRecordDelete builder.
func (_d *HistoryRecordDeleteOne) Where(ps ...predicate.HistoryRecord) *HistoryRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HistoryRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{historyrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HistoryRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
