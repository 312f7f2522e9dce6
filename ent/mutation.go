// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adityab/healthpredict/ent/historyrecord"
	"github.com/adityab/healthpredict/ent/predicate"
	"github.com/adityab/healthpredict/ent/predictevent"
	"github.com/adityab/healthpredict/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeHistoryRecord = "HistoryRecord"
	TypePredictEvent  = "PredictEvent"
)

// HistoryRecordMutation represents an operation that mutates the HistoryRecord nodes in the graph.
type HistoryRecordMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *string
	prediction_level *string
	risk_score       *float64
	addrisk_score    *float64
	metadata         *schema.RecordMetadata
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*HistoryRecord, error)
	predicates       []predicate.HistoryRecord
}

var _ ent.Mutation = (*HistoryRecordMutation)(nil)

// historyrecordOption allows management of the mutation configuration using functional options.
type historyrecordOption func(*HistoryRecordMutation)

// newHistoryRecordMutation creates new mutation for the HistoryRecord entity.
func newHistoryRecordMutation(c config, op Op, opts ...historyrecordOption) *HistoryRecordMutation {
	m := &HistoryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeHistoryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHistoryRecordID sets the ID field of the mutation.
func withHistoryRecordID(id int) historyrecordOption {
	return func(m *HistoryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *HistoryRecord
		)
		m.oldValue = func(ctx context.Context) (*HistoryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HistoryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHistoryRecord sets the old HistoryRecord of the mutation.
func withHistoryRecord(node *HistoryRecord) historyrecordOption {
	return func(m *HistoryRecordMutation) {
		m.oldValue = func(context.Context) (*HistoryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HistoryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HistoryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HistoryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HistoryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HistoryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *HistoryRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *HistoryRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the HistoryRecord entity.
// If the HistoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *HistoryRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetPredictionLevel sets the "prediction_level" field.
func (m *HistoryRecordMutation) SetPredictionLevel(s string) {
	m.prediction_level = &s
}

// PredictionLevel returns the value of the "prediction_level" field in the mutation.
func (m *HistoryRecordMutation) PredictionLevel() (r string, exists bool) {
	v := m.prediction_level
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictionLevel returns the old "prediction_level" field's value of the HistoryRecord entity.
// If the HistoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryRecordMutation) OldPredictionLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictionLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictionLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictionLevel: %w", err)
	}
	return oldValue.PredictionLevel, nil
}

// ResetPredictionLevel resets all changes to the "prediction_level" field.
func (m *HistoryRecordMutation) ResetPredictionLevel() {
	m.prediction_level = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *HistoryRecordMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *HistoryRecordMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the HistoryRecord entity.
// If the HistoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryRecordMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *HistoryRecordMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *HistoryRecordMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *HistoryRecordMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetMetadata sets the "metadata" field.
func (m *HistoryRecordMutation) SetMetadata(sm schema.RecordMetadata) {
	m.metadata = &sm
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *HistoryRecordMutation) Metadata() (r schema.RecordMetadata, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the HistoryRecord entity.
// If the HistoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryRecordMutation) OldMetadata(ctx context.Context) (v schema.RecordMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *HistoryRecordMutation) ResetMetadata() {
	m.metadata = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HistoryRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HistoryRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HistoryRecord entity.
// If the HistoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HistoryRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HistoryRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the HistoryRecordMutation builder.
func (m *HistoryRecordMutation) Where(ps ...predicate.HistoryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HistoryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HistoryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HistoryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HistoryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HistoryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HistoryRecord).
func (m *HistoryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HistoryRecordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, historyrecord.FieldUserID)
	}
	if m.prediction_level != nil {
		fields = append(fields, historyrecord.FieldPredictionLevel)
	}
	if m.risk_score != nil {
		fields = append(fields, historyrecord.FieldRiskScore)
	}
	if m.metadata != nil {
		fields = append(fields, historyrecord.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, historyrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HistoryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case historyrecord.FieldUserID:
		return m.UserID()
	case historyrecord.FieldPredictionLevel:
		return m.PredictionLevel()
	case historyrecord.FieldRiskScore:
		return m.RiskScore()
	case historyrecord.FieldMetadata:
		return m.Metadata()
	case historyrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HistoryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case historyrecord.FieldUserID:
		return m.OldUserID(ctx)
	case historyrecord.FieldPredictionLevel:
		return m.OldPredictionLevel(ctx)
	case historyrecord.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case historyrecord.FieldMetadata:
		return m.OldMetadata(ctx)
	case historyrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HistoryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HistoryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case historyrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case historyrecord.FieldPredictionLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictionLevel(v)
		return nil
	case historyrecord.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case historyrecord.FieldMetadata:
		v, ok := value.(schema.RecordMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case historyrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HistoryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HistoryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addrisk_score != nil {
		fields = append(fields, historyrecord.FieldRiskScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HistoryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case historyrecord.FieldRiskScore:
		return m.AddedRiskScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HistoryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case historyrecord.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	}
	return fmt.Errorf("unknown HistoryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HistoryRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HistoryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HistoryRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HistoryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HistoryRecordMutation) ResetField(name string) error {
	switch name {
	case historyrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case historyrecord.FieldPredictionLevel:
		m.ResetPredictionLevel()
		return nil
	case historyrecord.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case historyrecord.FieldMetadata:
		m.ResetMetadata()
		return nil
	case historyrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown HistoryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HistoryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HistoryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HistoryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HistoryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HistoryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HistoryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HistoryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HistoryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HistoryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HistoryRecord edge %s", name)
}

// PredictEventMutation represents an operation that mutates the PredictEvent nodes in the graph.
type PredictEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	request_id    *string
	user_id       *string
	latency_ms    *int64
	addlatency_ms *int64
	success       *bool
	outcome       *string
	error_message *string
	timestamp     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PredictEvent, error)
	predicates    []predicate.PredictEvent
}

var _ ent.Mutation = (*PredictEventMutation)(nil)

// predicteventOption allows management of the mutation configuration using functional options.
type predicteventOption func(*PredictEventMutation)

// newPredictEventMutation creates new mutation for the PredictEvent entity.
func newPredictEventMutation(c config, op Op, opts ...predicteventOption) *PredictEventMutation {
	m := &PredictEventMutation{
		config:        c,
		op:            op,
		typ:           TypePredictEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPredictEventID sets the ID field of the mutation.
func withPredictEventID(id int) predicteventOption {
	return func(m *PredictEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PredictEvent
		)
		m.oldValue = func(ctx context.Context) (*PredictEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PredictEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPredictEvent sets the old PredictEvent of the mutation.
func withPredictEvent(node *PredictEvent) predicteventOption {
	return func(m *PredictEventMutation) {
		m.oldValue = func(context.Context) (*PredictEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PredictEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PredictEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PredictEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PredictEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PredictEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *PredictEventMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *PredictEventMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the PredictEvent entity.
// If the PredictEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictEventMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *PredictEventMutation) ResetRequestID() {
	m.request_id = nil
}

// SetUserID sets the "user_id" field.
func (m *PredictEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PredictEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PredictEvent entity.
// If the PredictEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *PredictEventMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[predictevent.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *PredictEventMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[predictevent.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PredictEventMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, predictevent.FieldUserID)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *PredictEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *PredictEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the PredictEvent entity.
// If the PredictEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *PredictEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *PredictEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *PredictEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *PredictEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *PredictEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the PredictEvent entity.
// If the PredictEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *PredictEventMutation) ResetSuccess() {
	m.success = nil
}

// SetOutcome sets the "outcome" field.
func (m *PredictEventMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *PredictEventMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the PredictEvent entity.
// If the PredictEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictEventMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *PredictEventMutation) ResetOutcome() {
	m.outcome = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *PredictEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PredictEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PredictEvent entity.
// If the PredictEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PredictEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[predictevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PredictEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[predictevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PredictEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, predictevent.FieldErrorMessage)
}

// SetTimestamp sets the "timestamp" field.
func (m *PredictEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PredictEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PredictEvent entity.
// If the PredictEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PredictEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the PredictEventMutation builder.
func (m *PredictEventMutation) Where(ps ...predicate.PredictEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PredictEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PredictEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PredictEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PredictEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PredictEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PredictEvent).
func (m *PredictEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PredictEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.request_id != nil {
		fields = append(fields, predictevent.FieldRequestID)
	}
	if m.user_id != nil {
		fields = append(fields, predictevent.FieldUserID)
	}
	if m.latency_ms != nil {
		fields = append(fields, predictevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, predictevent.FieldSuccess)
	}
	if m.outcome != nil {
		fields = append(fields, predictevent.FieldOutcome)
	}
	if m.error_message != nil {
		fields = append(fields, predictevent.FieldErrorMessage)
	}
	if m.timestamp != nil {
		fields = append(fields, predictevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PredictEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case predictevent.FieldRequestID:
		return m.RequestID()
	case predictevent.FieldUserID:
		return m.UserID()
	case predictevent.FieldLatencyMs:
		return m.LatencyMs()
	case predictevent.FieldSuccess:
		return m.Success()
	case predictevent.FieldOutcome:
		return m.Outcome()
	case predictevent.FieldErrorMessage:
		return m.ErrorMessage()
	case predictevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PredictEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case predictevent.FieldRequestID:
		return m.OldRequestID(ctx)
	case predictevent.FieldUserID:
		return m.OldUserID(ctx)
	case predictevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case predictevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case predictevent.FieldOutcome:
		return m.OldOutcome(ctx)
	case predictevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case predictevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown PredictEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case predictevent.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case predictevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case predictevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case predictevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case predictevent.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case predictevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case predictevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown PredictEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PredictEventMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, predictevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PredictEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case predictevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case predictevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown PredictEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PredictEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(predictevent.FieldUserID) {
		fields = append(fields, predictevent.FieldUserID)
	}
	if m.FieldCleared(predictevent.FieldErrorMessage) {
		fields = append(fields, predictevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PredictEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PredictEventMutation) ClearField(name string) error {
	switch name {
	case predictevent.FieldUserID:
		m.ClearUserID()
		return nil
	case predictevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PredictEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PredictEventMutation) ResetField(name string) error {
	switch name {
	case predictevent.FieldRequestID:
		m.ResetRequestID()
		return nil
	case predictevent.FieldUserID:
		m.ResetUserID()
		return nil
	case predictevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case predictevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case predictevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	case predictevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case predictevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown PredictEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PredictEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PredictEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PredictEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PredictEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PredictEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PredictEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PredictEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PredictEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PredictEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PredictEvent edge %s", name)
}
