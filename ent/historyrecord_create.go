// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adityab/healthpredict/ent/historyrecord"
	"github.com/adityab/healthpredict/ent/schema"
)

// HistoryRecordCreate is the builder for creating a HistoryRecord entity.
type HistoryRecordCreate struct {
	config
	mutation *HistoryRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *HistoryRecordCreate) SetUserID(v string) *HistoryRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPredictionLevel sets the "prediction_level" field.
func (_c *HistoryRecordCreate) SetPredictionLevel(v string) *HistoryRecordCreate {
	_c.mutation.SetPredictionLevel(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *HistoryRecordCreate) SetRiskScore(v float64) *HistoryRecordCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *HistoryRecordCreate) SetMetadata(v schema.RecordMetadata) *HistoryRecordCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HistoryRecordCreate) SetCreatedAt(v time.Time) *HistoryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HistoryRecordCreate) SetNillableCreatedAt(v *time.Time) *HistoryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the HistoryRecordMutation object of the builder.
func (_c *HistoryRecordCreate) Mutation() *HistoryRecordMutation {
	return _c.mutation
}

// Save creates the HistoryRecord in the database.
func (_c *HistoryRecordCreate) Save(ctx context.Context) (*HistoryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HistoryRecordCreate) SaveX(ctx context.Context) *HistoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HistoryRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := historyrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HistoryRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "HistoryRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := historyrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "HistoryRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PredictionLevel(); !ok {
		return &ValidationError{Name: "prediction_level", err: errors.New(`ent: missing required field "HistoryRecord.prediction_level"`)}
	}
	if v, ok := _c.mutation.PredictionLevel(); ok {
		if err := historyrecord.PredictionLevelValidator(v); err != nil {
			return &ValidationError{Name: "prediction_level", err: fmt.Errorf(`ent: validator failed for field "HistoryRecord.prediction_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "HistoryRecord.risk_score"`)}
	}
	if _, ok := _c.mutation.Metadata(); !ok {
		return &ValidationError{Name: "metadata", err: errors.New(`ent: missing required field "HistoryRecord.metadata"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HistoryRecord.created_at"`)}
	}
	return nil
}

func (_c *HistoryRecordCreate) sqlSave(ctx context.Context) (*HistoryRecord, error) {
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

func (_c *HistoryRecordCreate) createSpec() (*HistoryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &HistoryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(historyrecord.Table, sqlgraph.NewFieldSpec(historyrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(historyrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PredictionLevel(); ok {
		_spec.SetField(historyrecord.FieldPredictionLevel, field.TypeString, value)
		_node.PredictionLevel = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(historyrecord.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(historyrecord.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(historyrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// HistoryRecordCreateBulk is the builder for creating many HistoryRecord entities in bulk.
type HistoryRecordCreateBulk struct {
	config
	err      error
	builders []*HistoryRecordCreate
}

// Save creates the HistoryRecord entities in the database.
func (_c *HistoryRecordCreateBulk) Save(ctx context.Context) ([]*HistoryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HistoryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HistoryRecordMutation)
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
func (_c *HistoryRecordCreateBulk) SaveX(ctx context.Context) []*HistoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
