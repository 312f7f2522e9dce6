// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adityab/healthpredict/ent/predictevent"
)

// PredictEventCreate is the builder for creating a PredictEvent entity.
type PredictEventCreate struct {
	config
	mutation *PredictEventMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *PredictEventCreate) SetRequestID(v string) *PredictEventCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PredictEventCreate) SetUserID(v string) *PredictEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *PredictEventCreate) SetNillableUserID(v *string) *PredictEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *PredictEventCreate) SetLatencyMs(v int64) *PredictEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *PredictEventCreate) SetNillableLatencyMs(v *int64) *PredictEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *PredictEventCreate) SetSuccess(v bool) *PredictEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *PredictEventCreate) SetNillableSuccess(v *bool) *PredictEventCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *PredictEventCreate) SetOutcome(v string) *PredictEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PredictEventCreate) SetErrorMessage(v string) *PredictEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PredictEventCreate) SetNillableErrorMessage(v *string) *PredictEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PredictEventCreate) SetTimestamp(v time.Time) *PredictEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PredictEventCreate) SetNillableTimestamp(v *time.Time) *PredictEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the PredictEventMutation object of the builder.
func (_c *PredictEventCreate) Mutation() *PredictEventMutation {
	return _c.mutation
}

// Save creates the PredictEvent in the database.
func (_c *PredictEventCreate) Save(ctx context.Context) (*PredictEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PredictEventCreate) SaveX(ctx context.Context) *PredictEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PredictEventCreate) defaults() {
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := predictevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := predictevent.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := predictevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PredictEventCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "PredictEvent.request_id"`)}
	}
	if v, ok := _c.mutation.RequestID(); ok {
		if err := predictevent.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "PredictEvent.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "PredictEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "PredictEvent.success"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "PredictEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := predictevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "PredictEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PredictEvent.timestamp"`)}
	}
	return nil
}

func (_c *PredictEventCreate) sqlSave(ctx context.Context) (*PredictEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PredictEventCreate) createSpec() (*PredictEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PredictEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(predictevent.Table, sqlgraph.NewFieldSpec(predictevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(predictevent.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(predictevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(predictevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(predictevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(predictevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(predictevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(predictevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// PredictEventCreateBulk is the builder for creating many PredictEvent entities in bulk.
type PredictEventCreateBulk struct {
	config
	err      error
	builders []*PredictEventCreate
}

// Save creates the PredictEvent entities in the database.
func (_c *PredictEventCreateBulk) Save(ctx context.Context) ([]*PredictEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PredictEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PredictEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PredictEventCreateBulk) SaveX(ctx context.Context) []*PredictEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
