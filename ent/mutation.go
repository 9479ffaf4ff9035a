// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"visitor-iq/ent/buyer"
	"visitor-iq/ent/company"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/identitylink"
	"visitor-iq/ent/merchant"
	"visitor-iq/ent/predicate"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBuyer        = "Buyer"
	TypeCompany      = "Company"
	TypeFingerprint  = "Fingerprint"
	TypeIdentityLink = "IdentityLink"
	TypeMerchant     = "Merchant"
)

// BuyerMutation represents an operation that mutates the Buyer nodes in the graph.
type BuyerMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	email                   *string
	platform_customer_id    *int64
	addplatform_customer_id *int64
	name                    *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	merchant                *uuid.UUID
	clearedmerchant         bool
	company                 *uuid.UUID
	clearedcompany          bool
	done                    bool
	oldValue                func(context.Context) (*Buyer, error)
	predicates              []predicate.Buyer
}

var _ ent.Mutation = (*BuyerMutation)(nil)

// buyerOption allows management of the mutation configuration using functional options.
type buyerOption func(*BuyerMutation)

// newBuyerMutation creates new mutation for the Buyer entity.
func newBuyerMutation(c config, op Op, opts ...buyerOption) *BuyerMutation {
	m := &BuyerMutation{
		config:        c,
		op:            op,
		typ:           TypeBuyer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuyerID sets the ID field of the mutation.
func withBuyerID(id uuid.UUID) buyerOption {
	return func(m *BuyerMutation) {
		var (
			err   error
			once  sync.Once
			value *Buyer
		)
		m.oldValue = func(ctx context.Context) (*Buyer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Buyer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuyer sets the old Buyer of the mutation.
func withBuyer(node *Buyer) buyerOption {
	return func(m *BuyerMutation) {
		m.oldValue = func(context.Context) (*Buyer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuyerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuyerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Buyer entities.
func (m *BuyerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuyerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuyerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Buyer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMerchantID sets the "merchant_id" field.
func (m *BuyerMutation) SetMerchantID(u uuid.UUID) {
	m.merchant = &u
}

// MerchantID returns the value of the "merchant_id" field in the mutation.
func (m *BuyerMutation) MerchantID() (r uuid.UUID, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantID returns the old "merchant_id" field's value of the Buyer entity.
// If the Buyer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerMutation) OldMerchantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantID: %w", err)
	}
	return oldValue.MerchantID, nil
}

// ResetMerchantID resets all changes to the "merchant_id" field.
func (m *BuyerMutation) ResetMerchantID() {
	m.merchant = nil
}

// SetEmail sets the "email" field.
func (m *BuyerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *BuyerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Buyer entity.
// If the Buyer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *BuyerMutation) ResetEmail() {
	m.email = nil
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (m *BuyerMutation) SetPlatformCustomerID(i int64) {
	m.platform_customer_id = &i
	m.addplatform_customer_id = nil
}

// PlatformCustomerID returns the value of the "platform_customer_id" field in the mutation.
func (m *BuyerMutation) PlatformCustomerID() (r int64, exists bool) {
	v := m.platform_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformCustomerID returns the old "platform_customer_id" field's value of the Buyer entity.
// If the Buyer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerMutation) OldPlatformCustomerID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformCustomerID: %w", err)
	}
	return oldValue.PlatformCustomerID, nil
}

// AddPlatformCustomerID adds i to the "platform_customer_id" field.
func (m *BuyerMutation) AddPlatformCustomerID(i int64) {
	if m.addplatform_customer_id != nil {
		*m.addplatform_customer_id += i
	} else {
		m.addplatform_customer_id = &i
	}
}

// AddedPlatformCustomerID returns the value that was added to the "platform_customer_id" field in this mutation.
func (m *BuyerMutation) AddedPlatformCustomerID() (r int64, exists bool) {
	v := m.addplatform_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (m *BuyerMutation) ClearPlatformCustomerID() {
	m.platform_customer_id = nil
	m.addplatform_customer_id = nil
	m.clearedFields[buyer.FieldPlatformCustomerID] = struct{}{}
}

// PlatformCustomerIDCleared returns if the "platform_customer_id" field was cleared in this mutation.
func (m *BuyerMutation) PlatformCustomerIDCleared() bool {
	_, ok := m.clearedFields[buyer.FieldPlatformCustomerID]
	return ok
}

// ResetPlatformCustomerID resets all changes to the "platform_customer_id" field.
func (m *BuyerMutation) ResetPlatformCustomerID() {
	m.platform_customer_id = nil
	m.addplatform_customer_id = nil
	delete(m.clearedFields, buyer.FieldPlatformCustomerID)
}

// SetCompanyID sets the "company_id" field.
func (m *BuyerMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *BuyerMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Buyer entity.
// If the Buyer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerMutation) OldCompanyID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *BuyerMutation) ClearCompanyID() {
	m.company = nil
	m.clearedFields[buyer.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *BuyerMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[buyer.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *BuyerMutation) ResetCompanyID() {
	m.company = nil
	delete(m.clearedFields, buyer.FieldCompanyID)
}

// SetName sets the "name" field.
func (m *BuyerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BuyerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Buyer entity.
// If the Buyer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *BuyerMutation) ClearName() {
	m.name = nil
	m.clearedFields[buyer.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *BuyerMutation) NameCleared() bool {
	_, ok := m.clearedFields[buyer.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *BuyerMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, buyer.FieldName)
}

// SetCreatedAt sets the "created_at" field.
func (m *BuyerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BuyerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Buyer entity.
// If the Buyer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BuyerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (m *BuyerMutation) ClearMerchant() {
	m.clearedmerchant = true
	m.clearedFields[buyer.FieldMerchantID] = struct{}{}
}

// MerchantCleared reports if the "merchant" edge to the Merchant entity was cleared.
func (m *BuyerMutation) MerchantCleared() bool {
	return m.clearedmerchant
}

// MerchantIDs returns the "merchant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MerchantID instead. It exists only for internal usage by the builders.
func (m *BuyerMutation) MerchantIDs() (ids []uuid.UUID) {
	if id := m.merchant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMerchant resets all changes to the "merchant" edge.
func (m *BuyerMutation) ResetMerchant() {
	m.merchant = nil
	m.clearedmerchant = false
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *BuyerMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[buyer.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *BuyerMutation) CompanyCleared() bool {
	return m.CompanyIDCleared() || m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *BuyerMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *BuyerMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the BuyerMutation builder.
func (m *BuyerMutation) Where(ps ...predicate.Buyer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuyerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuyerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Buyer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuyerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuyerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Buyer).
func (m *BuyerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuyerMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.merchant != nil {
		fields = append(fields, buyer.FieldMerchantID)
	}
	if m.email != nil {
		fields = append(fields, buyer.FieldEmail)
	}
	if m.platform_customer_id != nil {
		fields = append(fields, buyer.FieldPlatformCustomerID)
	}
	if m.company != nil {
		fields = append(fields, buyer.FieldCompanyID)
	}
	if m.name != nil {
		fields = append(fields, buyer.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, buyer.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuyerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case buyer.FieldMerchantID:
		return m.MerchantID()
	case buyer.FieldEmail:
		return m.Email()
	case buyer.FieldPlatformCustomerID:
		return m.PlatformCustomerID()
	case buyer.FieldCompanyID:
		return m.CompanyID()
	case buyer.FieldName:
		return m.Name()
	case buyer.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuyerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case buyer.FieldMerchantID:
		return m.OldMerchantID(ctx)
	case buyer.FieldEmail:
		return m.OldEmail(ctx)
	case buyer.FieldPlatformCustomerID:
		return m.OldPlatformCustomerID(ctx)
	case buyer.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case buyer.FieldName:
		return m.OldName(ctx)
	case buyer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Buyer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuyerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case buyer.FieldMerchantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantID(v)
		return nil
	case buyer.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case buyer.FieldPlatformCustomerID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformCustomerID(v)
		return nil
	case buyer.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case buyer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case buyer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Buyer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuyerMutation) AddedFields() []string {
	var fields []string
	if m.addplatform_customer_id != nil {
		fields = append(fields, buyer.FieldPlatformCustomerID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuyerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case buyer.FieldPlatformCustomerID:
		return m.AddedPlatformCustomerID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuyerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case buyer.FieldPlatformCustomerID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlatformCustomerID(v)
		return nil
	}
	return fmt.Errorf("unknown Buyer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuyerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(buyer.FieldPlatformCustomerID) {
		fields = append(fields, buyer.FieldPlatformCustomerID)
	}
	if m.FieldCleared(buyer.FieldCompanyID) {
		fields = append(fields, buyer.FieldCompanyID)
	}
	if m.FieldCleared(buyer.FieldName) {
		fields = append(fields, buyer.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuyerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuyerMutation) ClearField(name string) error {
	switch name {
	case buyer.FieldPlatformCustomerID:
		m.ClearPlatformCustomerID()
		return nil
	case buyer.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case buyer.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown Buyer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuyerMutation) ResetField(name string) error {
	switch name {
	case buyer.FieldMerchantID:
		m.ResetMerchantID()
		return nil
	case buyer.FieldEmail:
		m.ResetEmail()
		return nil
	case buyer.FieldPlatformCustomerID:
		m.ResetPlatformCustomerID()
		return nil
	case buyer.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case buyer.FieldName:
		m.ResetName()
		return nil
	case buyer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Buyer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuyerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.merchant != nil {
		edges = append(edges, buyer.EdgeMerchant)
	}
	if m.company != nil {
		edges = append(edges, buyer.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuyerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case buyer.EdgeMerchant:
		if id := m.merchant; id != nil {
			return []ent.Value{*id}
		}
	case buyer.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuyerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuyerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuyerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmerchant {
		edges = append(edges, buyer.EdgeMerchant)
	}
	if m.clearedcompany {
		edges = append(edges, buyer.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuyerMutation) EdgeCleared(name string) bool {
	switch name {
	case buyer.EdgeMerchant:
		return m.clearedmerchant
	case buyer.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuyerMutation) ClearEdge(name string) error {
	switch name {
	case buyer.EdgeMerchant:
		m.ClearMerchant()
		return nil
	case buyer.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Buyer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuyerMutation) ResetEdge(name string) error {
	switch name {
	case buyer.EdgeMerchant:
		m.ResetMerchant()
		return nil
	case buyer.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown Buyer edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	domain        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	buyers        map[uuid.UUID]struct{}
	removedbuyers map[uuid.UUID]struct{}
	clearedbuyers bool
	done          bool
	oldValue      func(context.Context) (*Company, error)
	predicates    []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetDomain sets the "domain" field.
func (m *CompanyMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *CompanyMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *CompanyMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[company.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *CompanyMutation) DomainCleared() bool {
	_, ok := m.clearedFields[company.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *CompanyMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, company.FieldDomain)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddBuyerIDs adds the "buyers" edge to the Buyer entity by ids.
func (m *CompanyMutation) AddBuyerIDs(ids ...uuid.UUID) {
	if m.buyers == nil {
		m.buyers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.buyers[ids[i]] = struct{}{}
	}
}

// ClearBuyers clears the "buyers" edge to the Buyer entity.
func (m *CompanyMutation) ClearBuyers() {
	m.clearedbuyers = true
}

// BuyersCleared reports if the "buyers" edge to the Buyer entity was cleared.
func (m *CompanyMutation) BuyersCleared() bool {
	return m.clearedbuyers
}

// RemoveBuyerIDs removes the "buyers" edge to the Buyer entity by IDs.
func (m *CompanyMutation) RemoveBuyerIDs(ids ...uuid.UUID) {
	if m.removedbuyers == nil {
		m.removedbuyers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.buyers, ids[i])
		m.removedbuyers[ids[i]] = struct{}{}
	}
}

// RemovedBuyers returns the removed IDs of the "buyers" edge to the Buyer entity.
func (m *CompanyMutation) RemovedBuyersIDs() (ids []uuid.UUID) {
	for id := range m.removedbuyers {
		ids = append(ids, id)
	}
	return
}

// BuyersIDs returns the "buyers" edge IDs in the mutation.
func (m *CompanyMutation) BuyersIDs() (ids []uuid.UUID) {
	for id := range m.buyers {
		ids = append(ids, id)
	}
	return
}

// ResetBuyers resets all changes to the "buyers" edge.
func (m *CompanyMutation) ResetBuyers() {
	m.buyers = nil
	m.clearedbuyers = false
	m.removedbuyers = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.domain != nil {
		fields = append(fields, company.FieldDomain)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldDomain:
		return m.Domain()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldDomain:
		return m.OldDomain(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldDomain) {
		fields = append(fields, company.FieldDomain)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldDomain:
		m.ClearDomain()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldDomain:
		m.ResetDomain()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.buyers != nil {
		edges = append(edges, company.EdgeBuyers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeBuyers:
		ids := make([]ent.Value, 0, len(m.buyers))
		for id := range m.buyers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedbuyers != nil {
		edges = append(edges, company.EdgeBuyers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeBuyers:
		ids := make([]ent.Value, 0, len(m.removedbuyers))
		for id := range m.removedbuyers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbuyers {
		edges = append(edges, company.EdgeBuyers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeBuyers:
		return m.clearedbuyers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeBuyers:
		m.ResetBuyers()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// FingerprintMutation represents an operation that mutates the Fingerprint nodes in the graph.
type FingerprintMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	fp_hash                 *string
	canvas_hash             *string
	webgl_hash              *string
	audio_hash              *string
	user_agent              *string
	platform                *string
	language                *string
	timezone                *string
	screen_width            *int
	addscreen_width         *int
	screen_height           *int
	addscreen_height        *int
	pixel_ratio             *float64
	addpixel_ratio          *float64
	touch_support           *bool
	hardware_concurrency    *int
	addhardware_concurrency *int
	device_memory           *float64
	adddevice_memory        *float64
	gpu_vendor              *string
	gpu_renderer            *string
	connection_type         *string
	cookies_enabled         *bool
	do_not_track            *bool
	ad_block                *bool
	is_bot                  *bool
	bot_score               *float64
	addbot_score            *float64
	confidence              *float64
	addconfidence           *float64
	signal_count            *int
	addsignal_count         *int
	visit_count             *int
	addvisit_count          *int
	ip_address              *string
	first_seen_at           *time.Time
	last_seen_at            *time.Time
	clearedFields           map[string]struct{}
	merchant                *uuid.UUID
	clearedmerchant         bool
	identity_links          map[uuid.UUID]struct{}
	removedidentity_links   map[uuid.UUID]struct{}
	clearedidentity_links   bool
	done                    bool
	oldValue                func(context.Context) (*Fingerprint, error)
	predicates              []predicate.Fingerprint
}

var _ ent.Mutation = (*FingerprintMutation)(nil)

// fingerprintOption allows management of the mutation configuration using functional options.
type fingerprintOption func(*FingerprintMutation)

// newFingerprintMutation creates new mutation for the Fingerprint entity.
func newFingerprintMutation(c config, op Op, opts ...fingerprintOption) *FingerprintMutation {
	m := &FingerprintMutation{
		config:        c,
		op:            op,
		typ:           TypeFingerprint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFingerprintID sets the ID field of the mutation.
func withFingerprintID(id uuid.UUID) fingerprintOption {
	return func(m *FingerprintMutation) {
		var (
			err   error
			once  sync.Once
			value *Fingerprint
		)
		m.oldValue = func(ctx context.Context) (*Fingerprint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Fingerprint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFingerprint sets the old Fingerprint of the mutation.
func withFingerprint(node *Fingerprint) fingerprintOption {
	return func(m *FingerprintMutation) {
		m.oldValue = func(context.Context) (*Fingerprint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FingerprintMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FingerprintMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Fingerprint entities.
func (m *FingerprintMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FingerprintMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FingerprintMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Fingerprint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMerchantID sets the "merchant_id" field.
func (m *FingerprintMutation) SetMerchantID(u uuid.UUID) {
	m.merchant = &u
}

// MerchantID returns the value of the "merchant_id" field in the mutation.
func (m *FingerprintMutation) MerchantID() (r uuid.UUID, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantID returns the old "merchant_id" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldMerchantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantID: %w", err)
	}
	return oldValue.MerchantID, nil
}

// ResetMerchantID resets all changes to the "merchant_id" field.
func (m *FingerprintMutation) ResetMerchantID() {
	m.merchant = nil
}

// SetFpHash sets the "fp_hash" field.
func (m *FingerprintMutation) SetFpHash(s string) {
	m.fp_hash = &s
}

// FpHash returns the value of the "fp_hash" field in the mutation.
func (m *FingerprintMutation) FpHash() (r string, exists bool) {
	v := m.fp_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldFpHash returns the old "fp_hash" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldFpHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFpHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFpHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFpHash: %w", err)
	}
	return oldValue.FpHash, nil
}

// ResetFpHash resets all changes to the "fp_hash" field.
func (m *FingerprintMutation) ResetFpHash() {
	m.fp_hash = nil
}

// SetCanvasHash sets the "canvas_hash" field.
func (m *FingerprintMutation) SetCanvasHash(s string) {
	m.canvas_hash = &s
}

// CanvasHash returns the value of the "canvas_hash" field in the mutation.
func (m *FingerprintMutation) CanvasHash() (r string, exists bool) {
	v := m.canvas_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldCanvasHash returns the old "canvas_hash" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldCanvasHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanvasHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanvasHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanvasHash: %w", err)
	}
	return oldValue.CanvasHash, nil
}

// ClearCanvasHash clears the value of the "canvas_hash" field.
func (m *FingerprintMutation) ClearCanvasHash() {
	m.canvas_hash = nil
	m.clearedFields[fingerprint.FieldCanvasHash] = struct{}{}
}

// CanvasHashCleared returns if the "canvas_hash" field was cleared in this mutation.
func (m *FingerprintMutation) CanvasHashCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldCanvasHash]
	return ok
}

// ResetCanvasHash resets all changes to the "canvas_hash" field.
func (m *FingerprintMutation) ResetCanvasHash() {
	m.canvas_hash = nil
	delete(m.clearedFields, fingerprint.FieldCanvasHash)
}

// SetWebglHash sets the "webgl_hash" field.
func (m *FingerprintMutation) SetWebglHash(s string) {
	m.webgl_hash = &s
}

// WebglHash returns the value of the "webgl_hash" field in the mutation.
func (m *FingerprintMutation) WebglHash() (r string, exists bool) {
	v := m.webgl_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldWebglHash returns the old "webgl_hash" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldWebglHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebglHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebglHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebglHash: %w", err)
	}
	return oldValue.WebglHash, nil
}

// ClearWebglHash clears the value of the "webgl_hash" field.
func (m *FingerprintMutation) ClearWebglHash() {
	m.webgl_hash = nil
	m.clearedFields[fingerprint.FieldWebglHash] = struct{}{}
}

// WebglHashCleared returns if the "webgl_hash" field was cleared in this mutation.
func (m *FingerprintMutation) WebglHashCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldWebglHash]
	return ok
}

// ResetWebglHash resets all changes to the "webgl_hash" field.
func (m *FingerprintMutation) ResetWebglHash() {
	m.webgl_hash = nil
	delete(m.clearedFields, fingerprint.FieldWebglHash)
}

// SetAudioHash sets the "audio_hash" field.
func (m *FingerprintMutation) SetAudioHash(s string) {
	m.audio_hash = &s
}

// AudioHash returns the value of the "audio_hash" field in the mutation.
func (m *FingerprintMutation) AudioHash() (r string, exists bool) {
	v := m.audio_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioHash returns the old "audio_hash" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldAudioHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioHash: %w", err)
	}
	return oldValue.AudioHash, nil
}

// ClearAudioHash clears the value of the "audio_hash" field.
func (m *FingerprintMutation) ClearAudioHash() {
	m.audio_hash = nil
	m.clearedFields[fingerprint.FieldAudioHash] = struct{}{}
}

// AudioHashCleared returns if the "audio_hash" field was cleared in this mutation.
func (m *FingerprintMutation) AudioHashCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldAudioHash]
	return ok
}

// ResetAudioHash resets all changes to the "audio_hash" field.
func (m *FingerprintMutation) ResetAudioHash() {
	m.audio_hash = nil
	delete(m.clearedFields, fingerprint.FieldAudioHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *FingerprintMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *FingerprintMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *FingerprintMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[fingerprint.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *FingerprintMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *FingerprintMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, fingerprint.FieldUserAgent)
}

// SetPlatform sets the "platform" field.
func (m *FingerprintMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *FingerprintMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ClearPlatform clears the value of the "platform" field.
func (m *FingerprintMutation) ClearPlatform() {
	m.platform = nil
	m.clearedFields[fingerprint.FieldPlatform] = struct{}{}
}

// PlatformCleared returns if the "platform" field was cleared in this mutation.
func (m *FingerprintMutation) PlatformCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldPlatform]
	return ok
}

// ResetPlatform resets all changes to the "platform" field.
func (m *FingerprintMutation) ResetPlatform() {
	m.platform = nil
	delete(m.clearedFields, fingerprint.FieldPlatform)
}

// SetLanguage sets the "language" field.
func (m *FingerprintMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *FingerprintMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *FingerprintMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[fingerprint.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *FingerprintMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *FingerprintMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, fingerprint.FieldLanguage)
}

// SetTimezone sets the "timezone" field.
func (m *FingerprintMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *FingerprintMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ClearTimezone clears the value of the "timezone" field.
func (m *FingerprintMutation) ClearTimezone() {
	m.timezone = nil
	m.clearedFields[fingerprint.FieldTimezone] = struct{}{}
}

// TimezoneCleared returns if the "timezone" field was cleared in this mutation.
func (m *FingerprintMutation) TimezoneCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldTimezone]
	return ok
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *FingerprintMutation) ResetTimezone() {
	m.timezone = nil
	delete(m.clearedFields, fingerprint.FieldTimezone)
}

// SetScreenWidth sets the "screen_width" field.
func (m *FingerprintMutation) SetScreenWidth(i int) {
	m.screen_width = &i
	m.addscreen_width = nil
}

// ScreenWidth returns the value of the "screen_width" field in the mutation.
func (m *FingerprintMutation) ScreenWidth() (r int, exists bool) {
	v := m.screen_width
	if v == nil {
		return
	}
	return *v, true
}

// OldScreenWidth returns the old "screen_width" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldScreenWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreenWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreenWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreenWidth: %w", err)
	}
	return oldValue.ScreenWidth, nil
}

// AddScreenWidth adds i to the "screen_width" field.
func (m *FingerprintMutation) AddScreenWidth(i int) {
	if m.addscreen_width != nil {
		*m.addscreen_width += i
	} else {
		m.addscreen_width = &i
	}
}

// AddedScreenWidth returns the value that was added to the "screen_width" field in this mutation.
func (m *FingerprintMutation) AddedScreenWidth() (r int, exists bool) {
	v := m.addscreen_width
	if v == nil {
		return
	}
	return *v, true
}

// ResetScreenWidth resets all changes to the "screen_width" field.
func (m *FingerprintMutation) ResetScreenWidth() {
	m.screen_width = nil
	m.addscreen_width = nil
}

// SetScreenHeight sets the "screen_height" field.
func (m *FingerprintMutation) SetScreenHeight(i int) {
	m.screen_height = &i
	m.addscreen_height = nil
}

// ScreenHeight returns the value of the "screen_height" field in the mutation.
func (m *FingerprintMutation) ScreenHeight() (r int, exists bool) {
	v := m.screen_height
	if v == nil {
		return
	}
	return *v, true
}

// OldScreenHeight returns the old "screen_height" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldScreenHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreenHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreenHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreenHeight: %w", err)
	}
	return oldValue.ScreenHeight, nil
}

// AddScreenHeight adds i to the "screen_height" field.
func (m *FingerprintMutation) AddScreenHeight(i int) {
	if m.addscreen_height != nil {
		*m.addscreen_height += i
	} else {
		m.addscreen_height = &i
	}
}

// AddedScreenHeight returns the value that was added to the "screen_height" field in this mutation.
func (m *FingerprintMutation) AddedScreenHeight() (r int, exists bool) {
	v := m.addscreen_height
	if v == nil {
		return
	}
	return *v, true
}

// ResetScreenHeight resets all changes to the "screen_height" field.
func (m *FingerprintMutation) ResetScreenHeight() {
	m.screen_height = nil
	m.addscreen_height = nil
}

// SetPixelRatio sets the "pixel_ratio" field.
func (m *FingerprintMutation) SetPixelRatio(f float64) {
	m.pixel_ratio = &f
	m.addpixel_ratio = nil
}

// PixelRatio returns the value of the "pixel_ratio" field in the mutation.
func (m *FingerprintMutation) PixelRatio() (r float64, exists bool) {
	v := m.pixel_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldPixelRatio returns the old "pixel_ratio" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldPixelRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPixelRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPixelRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPixelRatio: %w", err)
	}
	return oldValue.PixelRatio, nil
}

// AddPixelRatio adds f to the "pixel_ratio" field.
func (m *FingerprintMutation) AddPixelRatio(f float64) {
	if m.addpixel_ratio != nil {
		*m.addpixel_ratio += f
	} else {
		m.addpixel_ratio = &f
	}
}

// AddedPixelRatio returns the value that was added to the "pixel_ratio" field in this mutation.
func (m *FingerprintMutation) AddedPixelRatio() (r float64, exists bool) {
	v := m.addpixel_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetPixelRatio resets all changes to the "pixel_ratio" field.
func (m *FingerprintMutation) ResetPixelRatio() {
	m.pixel_ratio = nil
	m.addpixel_ratio = nil
}

// SetTouchSupport sets the "touch_support" field.
func (m *FingerprintMutation) SetTouchSupport(b bool) {
	m.touch_support = &b
}

// TouchSupport returns the value of the "touch_support" field in the mutation.
func (m *FingerprintMutation) TouchSupport() (r bool, exists bool) {
	v := m.touch_support
	if v == nil {
		return
	}
	return *v, true
}

// OldTouchSupport returns the old "touch_support" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldTouchSupport(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTouchSupport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTouchSupport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTouchSupport: %w", err)
	}
	return oldValue.TouchSupport, nil
}

// ResetTouchSupport resets all changes to the "touch_support" field.
func (m *FingerprintMutation) ResetTouchSupport() {
	m.touch_support = nil
}

// SetHardwareConcurrency sets the "hardware_concurrency" field.
func (m *FingerprintMutation) SetHardwareConcurrency(i int) {
	m.hardware_concurrency = &i
	m.addhardware_concurrency = nil
}

// HardwareConcurrency returns the value of the "hardware_concurrency" field in the mutation.
func (m *FingerprintMutation) HardwareConcurrency() (r int, exists bool) {
	v := m.hardware_concurrency
	if v == nil {
		return
	}
	return *v, true
}

// OldHardwareConcurrency returns the old "hardware_concurrency" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldHardwareConcurrency(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHardwareConcurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHardwareConcurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHardwareConcurrency: %w", err)
	}
	return oldValue.HardwareConcurrency, nil
}

// AddHardwareConcurrency adds i to the "hardware_concurrency" field.
func (m *FingerprintMutation) AddHardwareConcurrency(i int) {
	if m.addhardware_concurrency != nil {
		*m.addhardware_concurrency += i
	} else {
		m.addhardware_concurrency = &i
	}
}

// AddedHardwareConcurrency returns the value that was added to the "hardware_concurrency" field in this mutation.
func (m *FingerprintMutation) AddedHardwareConcurrency() (r int, exists bool) {
	v := m.addhardware_concurrency
	if v == nil {
		return
	}
	return *v, true
}

// ResetHardwareConcurrency resets all changes to the "hardware_concurrency" field.
func (m *FingerprintMutation) ResetHardwareConcurrency() {
	m.hardware_concurrency = nil
	m.addhardware_concurrency = nil
}

// SetDeviceMemory sets the "device_memory" field.
func (m *FingerprintMutation) SetDeviceMemory(f float64) {
	m.device_memory = &f
	m.adddevice_memory = nil
}

// DeviceMemory returns the value of the "device_memory" field in the mutation.
func (m *FingerprintMutation) DeviceMemory() (r float64, exists bool) {
	v := m.device_memory
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceMemory returns the old "device_memory" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldDeviceMemory(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceMemory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceMemory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceMemory: %w", err)
	}
	return oldValue.DeviceMemory, nil
}

// AddDeviceMemory adds f to the "device_memory" field.
func (m *FingerprintMutation) AddDeviceMemory(f float64) {
	if m.adddevice_memory != nil {
		*m.adddevice_memory += f
	} else {
		m.adddevice_memory = &f
	}
}

// AddedDeviceMemory returns the value that was added to the "device_memory" field in this mutation.
func (m *FingerprintMutation) AddedDeviceMemory() (r float64, exists bool) {
	v := m.adddevice_memory
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeviceMemory resets all changes to the "device_memory" field.
func (m *FingerprintMutation) ResetDeviceMemory() {
	m.device_memory = nil
	m.adddevice_memory = nil
}

// SetGpuVendor sets the "gpu_vendor" field.
func (m *FingerprintMutation) SetGpuVendor(s string) {
	m.gpu_vendor = &s
}

// GpuVendor returns the value of the "gpu_vendor" field in the mutation.
func (m *FingerprintMutation) GpuVendor() (r string, exists bool) {
	v := m.gpu_vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldGpuVendor returns the old "gpu_vendor" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldGpuVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpuVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpuVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpuVendor: %w", err)
	}
	return oldValue.GpuVendor, nil
}

// ClearGpuVendor clears the value of the "gpu_vendor" field.
func (m *FingerprintMutation) ClearGpuVendor() {
	m.gpu_vendor = nil
	m.clearedFields[fingerprint.FieldGpuVendor] = struct{}{}
}

// GpuVendorCleared returns if the "gpu_vendor" field was cleared in this mutation.
func (m *FingerprintMutation) GpuVendorCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldGpuVendor]
	return ok
}

// ResetGpuVendor resets all changes to the "gpu_vendor" field.
func (m *FingerprintMutation) ResetGpuVendor() {
	m.gpu_vendor = nil
	delete(m.clearedFields, fingerprint.FieldGpuVendor)
}

// SetGpuRenderer sets the "gpu_renderer" field.
func (m *FingerprintMutation) SetGpuRenderer(s string) {
	m.gpu_renderer = &s
}

// GpuRenderer returns the value of the "gpu_renderer" field in the mutation.
func (m *FingerprintMutation) GpuRenderer() (r string, exists bool) {
	v := m.gpu_renderer
	if v == nil {
		return
	}
	return *v, true
}

// OldGpuRenderer returns the old "gpu_renderer" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldGpuRenderer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpuRenderer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpuRenderer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpuRenderer: %w", err)
	}
	return oldValue.GpuRenderer, nil
}

// ClearGpuRenderer clears the value of the "gpu_renderer" field.
func (m *FingerprintMutation) ClearGpuRenderer() {
	m.gpu_renderer = nil
	m.clearedFields[fingerprint.FieldGpuRenderer] = struct{}{}
}

// GpuRendererCleared returns if the "gpu_renderer" field was cleared in this mutation.
func (m *FingerprintMutation) GpuRendererCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldGpuRenderer]
	return ok
}

// ResetGpuRenderer resets all changes to the "gpu_renderer" field.
func (m *FingerprintMutation) ResetGpuRenderer() {
	m.gpu_renderer = nil
	delete(m.clearedFields, fingerprint.FieldGpuRenderer)
}

// SetConnectionType sets the "connection_type" field.
func (m *FingerprintMutation) SetConnectionType(s string) {
	m.connection_type = &s
}

// ConnectionType returns the value of the "connection_type" field in the mutation.
func (m *FingerprintMutation) ConnectionType() (r string, exists bool) {
	v := m.connection_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectionType returns the old "connection_type" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldConnectionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectionType: %w", err)
	}
	return oldValue.ConnectionType, nil
}

// ClearConnectionType clears the value of the "connection_type" field.
func (m *FingerprintMutation) ClearConnectionType() {
	m.connection_type = nil
	m.clearedFields[fingerprint.FieldConnectionType] = struct{}{}
}

// ConnectionTypeCleared returns if the "connection_type" field was cleared in this mutation.
func (m *FingerprintMutation) ConnectionTypeCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldConnectionType]
	return ok
}

// ResetConnectionType resets all changes to the "connection_type" field.
func (m *FingerprintMutation) ResetConnectionType() {
	m.connection_type = nil
	delete(m.clearedFields, fingerprint.FieldConnectionType)
}

// SetCookiesEnabled sets the "cookies_enabled" field.
func (m *FingerprintMutation) SetCookiesEnabled(b bool) {
	m.cookies_enabled = &b
}

// CookiesEnabled returns the value of the "cookies_enabled" field in the mutation.
func (m *FingerprintMutation) CookiesEnabled() (r bool, exists bool) {
	v := m.cookies_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldCookiesEnabled returns the old "cookies_enabled" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldCookiesEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCookiesEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCookiesEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCookiesEnabled: %w", err)
	}
	return oldValue.CookiesEnabled, nil
}

// ResetCookiesEnabled resets all changes to the "cookies_enabled" field.
func (m *FingerprintMutation) ResetCookiesEnabled() {
	m.cookies_enabled = nil
}

// SetDoNotTrack sets the "do_not_track" field.
func (m *FingerprintMutation) SetDoNotTrack(b bool) {
	m.do_not_track = &b
}

// DoNotTrack returns the value of the "do_not_track" field in the mutation.
func (m *FingerprintMutation) DoNotTrack() (r bool, exists bool) {
	v := m.do_not_track
	if v == nil {
		return
	}
	return *v, true
}

// OldDoNotTrack returns the old "do_not_track" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldDoNotTrack(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoNotTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoNotTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoNotTrack: %w", err)
	}
	return oldValue.DoNotTrack, nil
}

// ResetDoNotTrack resets all changes to the "do_not_track" field.
func (m *FingerprintMutation) ResetDoNotTrack() {
	m.do_not_track = nil
}

// SetAdBlock sets the "ad_block" field.
func (m *FingerprintMutation) SetAdBlock(b bool) {
	m.ad_block = &b
}

// AdBlock returns the value of the "ad_block" field in the mutation.
func (m *FingerprintMutation) AdBlock() (r bool, exists bool) {
	v := m.ad_block
	if v == nil {
		return
	}
	return *v, true
}

// OldAdBlock returns the old "ad_block" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldAdBlock(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdBlock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdBlock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdBlock: %w", err)
	}
	return oldValue.AdBlock, nil
}

// ResetAdBlock resets all changes to the "ad_block" field.
func (m *FingerprintMutation) ResetAdBlock() {
	m.ad_block = nil
}

// SetIsBot sets the "is_bot" field.
func (m *FingerprintMutation) SetIsBot(b bool) {
	m.is_bot = &b
}

// IsBot returns the value of the "is_bot" field in the mutation.
func (m *FingerprintMutation) IsBot() (r bool, exists bool) {
	v := m.is_bot
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBot returns the old "is_bot" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldIsBot(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBot: %w", err)
	}
	return oldValue.IsBot, nil
}

// ResetIsBot resets all changes to the "is_bot" field.
func (m *FingerprintMutation) ResetIsBot() {
	m.is_bot = nil
}

// SetBotScore sets the "bot_score" field.
func (m *FingerprintMutation) SetBotScore(f float64) {
	m.bot_score = &f
	m.addbot_score = nil
}

// BotScore returns the value of the "bot_score" field in the mutation.
func (m *FingerprintMutation) BotScore() (r float64, exists bool) {
	v := m.bot_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBotScore returns the old "bot_score" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldBotScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotScore: %w", err)
	}
	return oldValue.BotScore, nil
}

// AddBotScore adds f to the "bot_score" field.
func (m *FingerprintMutation) AddBotScore(f float64) {
	if m.addbot_score != nil {
		*m.addbot_score += f
	} else {
		m.addbot_score = &f
	}
}

// AddedBotScore returns the value that was added to the "bot_score" field in this mutation.
func (m *FingerprintMutation) AddedBotScore() (r float64, exists bool) {
	v := m.addbot_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBotScore resets all changes to the "bot_score" field.
func (m *FingerprintMutation) ResetBotScore() {
	m.bot_score = nil
	m.addbot_score = nil
}

// SetConfidence sets the "confidence" field.
func (m *FingerprintMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *FingerprintMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *FingerprintMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *FingerprintMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *FingerprintMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSignalCount sets the "signal_count" field.
func (m *FingerprintMutation) SetSignalCount(i int) {
	m.signal_count = &i
	m.addsignal_count = nil
}

// SignalCount returns the value of the "signal_count" field in the mutation.
func (m *FingerprintMutation) SignalCount() (r int, exists bool) {
	v := m.signal_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalCount returns the old "signal_count" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldSignalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalCount: %w", err)
	}
	return oldValue.SignalCount, nil
}

// AddSignalCount adds i to the "signal_count" field.
func (m *FingerprintMutation) AddSignalCount(i int) {
	if m.addsignal_count != nil {
		*m.addsignal_count += i
	} else {
		m.addsignal_count = &i
	}
}

// AddedSignalCount returns the value that was added to the "signal_count" field in this mutation.
func (m *FingerprintMutation) AddedSignalCount() (r int, exists bool) {
	v := m.addsignal_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSignalCount resets all changes to the "signal_count" field.
func (m *FingerprintMutation) ResetSignalCount() {
	m.signal_count = nil
	m.addsignal_count = nil
}

// SetVisitCount sets the "visit_count" field.
func (m *FingerprintMutation) SetVisitCount(i int) {
	m.visit_count = &i
	m.addvisit_count = nil
}

// VisitCount returns the value of the "visit_count" field in the mutation.
func (m *FingerprintMutation) VisitCount() (r int, exists bool) {
	v := m.visit_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitCount returns the old "visit_count" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldVisitCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitCount: %w", err)
	}
	return oldValue.VisitCount, nil
}

// AddVisitCount adds i to the "visit_count" field.
func (m *FingerprintMutation) AddVisitCount(i int) {
	if m.addvisit_count != nil {
		*m.addvisit_count += i
	} else {
		m.addvisit_count = &i
	}
}

// AddedVisitCount returns the value that was added to the "visit_count" field in this mutation.
func (m *FingerprintMutation) AddedVisitCount() (r int, exists bool) {
	v := m.addvisit_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetVisitCount resets all changes to the "visit_count" field.
func (m *FingerprintMutation) ResetVisitCount() {
	m.visit_count = nil
	m.addvisit_count = nil
}

// SetIPAddress sets the "ip_address" field.
func (m *FingerprintMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *FingerprintMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *FingerprintMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[fingerprint.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *FingerprintMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *FingerprintMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, fingerprint.FieldIPAddress)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *FingerprintMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *FingerprintMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *FingerprintMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *FingerprintMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *FingerprintMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *FingerprintMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (m *FingerprintMutation) ClearMerchant() {
	m.clearedmerchant = true
	m.clearedFields[fingerprint.FieldMerchantID] = struct{}{}
}

// MerchantCleared reports if the "merchant" edge to the Merchant entity was cleared.
func (m *FingerprintMutation) MerchantCleared() bool {
	return m.clearedmerchant
}

// MerchantIDs returns the "merchant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MerchantID instead. It exists only for internal usage by the builders.
func (m *FingerprintMutation) MerchantIDs() (ids []uuid.UUID) {
	if id := m.merchant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMerchant resets all changes to the "merchant" edge.
func (m *FingerprintMutation) ResetMerchant() {
	m.merchant = nil
	m.clearedmerchant = false
}

// AddIdentityLinkIDs adds the "identity_links" edge to the IdentityLink entity by ids.
func (m *FingerprintMutation) AddIdentityLinkIDs(ids ...uuid.UUID) {
	if m.identity_links == nil {
		m.identity_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.identity_links[ids[i]] = struct{}{}
	}
}

// ClearIdentityLinks clears the "identity_links" edge to the IdentityLink entity.
func (m *FingerprintMutation) ClearIdentityLinks() {
	m.clearedidentity_links = true
}

// IdentityLinksCleared reports if the "identity_links" edge to the IdentityLink entity was cleared.
func (m *FingerprintMutation) IdentityLinksCleared() bool {
	return m.clearedidentity_links
}

// RemoveIdentityLinkIDs removes the "identity_links" edge to the IdentityLink entity by IDs.
func (m *FingerprintMutation) RemoveIdentityLinkIDs(ids ...uuid.UUID) {
	if m.removedidentity_links == nil {
		m.removedidentity_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.identity_links, ids[i])
		m.removedidentity_links[ids[i]] = struct{}{}
	}
}

// RemovedIdentityLinks returns the removed IDs of the "identity_links" edge to the IdentityLink entity.
func (m *FingerprintMutation) RemovedIdentityLinksIDs() (ids []uuid.UUID) {
	for id := range m.removedidentity_links {
		ids = append(ids, id)
	}
	return
}

// IdentityLinksIDs returns the "identity_links" edge IDs in the mutation.
func (m *FingerprintMutation) IdentityLinksIDs() (ids []uuid.UUID) {
	for id := range m.identity_links {
		ids = append(ids, id)
	}
	return
}

// ResetIdentityLinks resets all changes to the "identity_links" edge.
func (m *FingerprintMutation) ResetIdentityLinks() {
	m.identity_links = nil
	m.clearedidentity_links = false
	m.removedidentity_links = nil
}

// Where appends a list predicates to the FingerprintMutation builder.
func (m *FingerprintMutation) Where(ps ...predicate.Fingerprint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FingerprintMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FingerprintMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Fingerprint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FingerprintMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FingerprintMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Fingerprint).
func (m *FingerprintMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FingerprintMutation) Fields() []string {
	fields := make([]string, 0, 29)
	if m.merchant != nil {
		fields = append(fields, fingerprint.FieldMerchantID)
	}
	if m.fp_hash != nil {
		fields = append(fields, fingerprint.FieldFpHash)
	}
	if m.canvas_hash != nil {
		fields = append(fields, fingerprint.FieldCanvasHash)
	}
	if m.webgl_hash != nil {
		fields = append(fields, fingerprint.FieldWebglHash)
	}
	if m.audio_hash != nil {
		fields = append(fields, fingerprint.FieldAudioHash)
	}
	if m.user_agent != nil {
		fields = append(fields, fingerprint.FieldUserAgent)
	}
	if m.platform != nil {
		fields = append(fields, fingerprint.FieldPlatform)
	}
	if m.language != nil {
		fields = append(fields, fingerprint.FieldLanguage)
	}
	if m.timezone != nil {
		fields = append(fields, fingerprint.FieldTimezone)
	}
	if m.screen_width != nil {
		fields = append(fields, fingerprint.FieldScreenWidth)
	}
	if m.screen_height != nil {
		fields = append(fields, fingerprint.FieldScreenHeight)
	}
	if m.pixel_ratio != nil {
		fields = append(fields, fingerprint.FieldPixelRatio)
	}
	if m.touch_support != nil {
		fields = append(fields, fingerprint.FieldTouchSupport)
	}
	if m.hardware_concurrency != nil {
		fields = append(fields, fingerprint.FieldHardwareConcurrency)
	}
	if m.device_memory != nil {
		fields = append(fields, fingerprint.FieldDeviceMemory)
	}
	if m.gpu_vendor != nil {
		fields = append(fields, fingerprint.FieldGpuVendor)
	}
	if m.gpu_renderer != nil {
		fields = append(fields, fingerprint.FieldGpuRenderer)
	}
	if m.connection_type != nil {
		fields = append(fields, fingerprint.FieldConnectionType)
	}
	if m.cookies_enabled != nil {
		fields = append(fields, fingerprint.FieldCookiesEnabled)
	}
	if m.do_not_track != nil {
		fields = append(fields, fingerprint.FieldDoNotTrack)
	}
	if m.ad_block != nil {
		fields = append(fields, fingerprint.FieldAdBlock)
	}
	if m.is_bot != nil {
		fields = append(fields, fingerprint.FieldIsBot)
	}
	if m.bot_score != nil {
		fields = append(fields, fingerprint.FieldBotScore)
	}
	if m.confidence != nil {
		fields = append(fields, fingerprint.FieldConfidence)
	}
	if m.signal_count != nil {
		fields = append(fields, fingerprint.FieldSignalCount)
	}
	if m.visit_count != nil {
		fields = append(fields, fingerprint.FieldVisitCount)
	}
	if m.ip_address != nil {
		fields = append(fields, fingerprint.FieldIPAddress)
	}
	if m.first_seen_at != nil {
		fields = append(fields, fingerprint.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, fingerprint.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FingerprintMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fingerprint.FieldMerchantID:
		return m.MerchantID()
	case fingerprint.FieldFpHash:
		return m.FpHash()
	case fingerprint.FieldCanvasHash:
		return m.CanvasHash()
	case fingerprint.FieldWebglHash:
		return m.WebglHash()
	case fingerprint.FieldAudioHash:
		return m.AudioHash()
	case fingerprint.FieldUserAgent:
		return m.UserAgent()
	case fingerprint.FieldPlatform:
		return m.Platform()
	case fingerprint.FieldLanguage:
		return m.Language()
	case fingerprint.FieldTimezone:
		return m.Timezone()
	case fingerprint.FieldScreenWidth:
		return m.ScreenWidth()
	case fingerprint.FieldScreenHeight:
		return m.ScreenHeight()
	case fingerprint.FieldPixelRatio:
		return m.PixelRatio()
	case fingerprint.FieldTouchSupport:
		return m.TouchSupport()
	case fingerprint.FieldHardwareConcurrency:
		return m.HardwareConcurrency()
	case fingerprint.FieldDeviceMemory:
		return m.DeviceMemory()
	case fingerprint.FieldGpuVendor:
		return m.GpuVendor()
	case fingerprint.FieldGpuRenderer:
		return m.GpuRenderer()
	case fingerprint.FieldConnectionType:
		return m.ConnectionType()
	case fingerprint.FieldCookiesEnabled:
		return m.CookiesEnabled()
	case fingerprint.FieldDoNotTrack:
		return m.DoNotTrack()
	case fingerprint.FieldAdBlock:
		return m.AdBlock()
	case fingerprint.FieldIsBot:
		return m.IsBot()
	case fingerprint.FieldBotScore:
		return m.BotScore()
	case fingerprint.FieldConfidence:
		return m.Confidence()
	case fingerprint.FieldSignalCount:
		return m.SignalCount()
	case fingerprint.FieldVisitCount:
		return m.VisitCount()
	case fingerprint.FieldIPAddress:
		return m.IPAddress()
	case fingerprint.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case fingerprint.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FingerprintMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fingerprint.FieldMerchantID:
		return m.OldMerchantID(ctx)
	case fingerprint.FieldFpHash:
		return m.OldFpHash(ctx)
	case fingerprint.FieldCanvasHash:
		return m.OldCanvasHash(ctx)
	case fingerprint.FieldWebglHash:
		return m.OldWebglHash(ctx)
	case fingerprint.FieldAudioHash:
		return m.OldAudioHash(ctx)
	case fingerprint.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case fingerprint.FieldPlatform:
		return m.OldPlatform(ctx)
	case fingerprint.FieldLanguage:
		return m.OldLanguage(ctx)
	case fingerprint.FieldTimezone:
		return m.OldTimezone(ctx)
	case fingerprint.FieldScreenWidth:
		return m.OldScreenWidth(ctx)
	case fingerprint.FieldScreenHeight:
		return m.OldScreenHeight(ctx)
	case fingerprint.FieldPixelRatio:
		return m.OldPixelRatio(ctx)
	case fingerprint.FieldTouchSupport:
		return m.OldTouchSupport(ctx)
	case fingerprint.FieldHardwareConcurrency:
		return m.OldHardwareConcurrency(ctx)
	case fingerprint.FieldDeviceMemory:
		return m.OldDeviceMemory(ctx)
	case fingerprint.FieldGpuVendor:
		return m.OldGpuVendor(ctx)
	case fingerprint.FieldGpuRenderer:
		return m.OldGpuRenderer(ctx)
	case fingerprint.FieldConnectionType:
		return m.OldConnectionType(ctx)
	case fingerprint.FieldCookiesEnabled:
		return m.OldCookiesEnabled(ctx)
	case fingerprint.FieldDoNotTrack:
		return m.OldDoNotTrack(ctx)
	case fingerprint.FieldAdBlock:
		return m.OldAdBlock(ctx)
	case fingerprint.FieldIsBot:
		return m.OldIsBot(ctx)
	case fingerprint.FieldBotScore:
		return m.OldBotScore(ctx)
	case fingerprint.FieldConfidence:
		return m.OldConfidence(ctx)
	case fingerprint.FieldSignalCount:
		return m.OldSignalCount(ctx)
	case fingerprint.FieldVisitCount:
		return m.OldVisitCount(ctx)
	case fingerprint.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case fingerprint.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case fingerprint.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown Fingerprint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FingerprintMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fingerprint.FieldMerchantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantID(v)
		return nil
	case fingerprint.FieldFpHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFpHash(v)
		return nil
	case fingerprint.FieldCanvasHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanvasHash(v)
		return nil
	case fingerprint.FieldWebglHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebglHash(v)
		return nil
	case fingerprint.FieldAudioHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioHash(v)
		return nil
	case fingerprint.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case fingerprint.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case fingerprint.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case fingerprint.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case fingerprint.FieldScreenWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreenWidth(v)
		return nil
	case fingerprint.FieldScreenHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreenHeight(v)
		return nil
	case fingerprint.FieldPixelRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPixelRatio(v)
		return nil
	case fingerprint.FieldTouchSupport:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTouchSupport(v)
		return nil
	case fingerprint.FieldHardwareConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHardwareConcurrency(v)
		return nil
	case fingerprint.FieldDeviceMemory:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceMemory(v)
		return nil
	case fingerprint.FieldGpuVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpuVendor(v)
		return nil
	case fingerprint.FieldGpuRenderer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpuRenderer(v)
		return nil
	case fingerprint.FieldConnectionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectionType(v)
		return nil
	case fingerprint.FieldCookiesEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCookiesEnabled(v)
		return nil
	case fingerprint.FieldDoNotTrack:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoNotTrack(v)
		return nil
	case fingerprint.FieldAdBlock:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdBlock(v)
		return nil
	case fingerprint.FieldIsBot:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBot(v)
		return nil
	case fingerprint.FieldBotScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotScore(v)
		return nil
	case fingerprint.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case fingerprint.FieldSignalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalCount(v)
		return nil
	case fingerprint.FieldVisitCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitCount(v)
		return nil
	case fingerprint.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case fingerprint.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case fingerprint.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown Fingerprint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FingerprintMutation) AddedFields() []string {
	var fields []string
	if m.addscreen_width != nil {
		fields = append(fields, fingerprint.FieldScreenWidth)
	}
	if m.addscreen_height != nil {
		fields = append(fields, fingerprint.FieldScreenHeight)
	}
	if m.addpixel_ratio != nil {
		fields = append(fields, fingerprint.FieldPixelRatio)
	}
	if m.addhardware_concurrency != nil {
		fields = append(fields, fingerprint.FieldHardwareConcurrency)
	}
	if m.adddevice_memory != nil {
		fields = append(fields, fingerprint.FieldDeviceMemory)
	}
	if m.addbot_score != nil {
		fields = append(fields, fingerprint.FieldBotScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, fingerprint.FieldConfidence)
	}
	if m.addsignal_count != nil {
		fields = append(fields, fingerprint.FieldSignalCount)
	}
	if m.addvisit_count != nil {
		fields = append(fields, fingerprint.FieldVisitCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FingerprintMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fingerprint.FieldScreenWidth:
		return m.AddedScreenWidth()
	case fingerprint.FieldScreenHeight:
		return m.AddedScreenHeight()
	case fingerprint.FieldPixelRatio:
		return m.AddedPixelRatio()
	case fingerprint.FieldHardwareConcurrency:
		return m.AddedHardwareConcurrency()
	case fingerprint.FieldDeviceMemory:
		return m.AddedDeviceMemory()
	case fingerprint.FieldBotScore:
		return m.AddedBotScore()
	case fingerprint.FieldConfidence:
		return m.AddedConfidence()
	case fingerprint.FieldSignalCount:
		return m.AddedSignalCount()
	case fingerprint.FieldVisitCount:
		return m.AddedVisitCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FingerprintMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fingerprint.FieldScreenWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScreenWidth(v)
		return nil
	case fingerprint.FieldScreenHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScreenHeight(v)
		return nil
	case fingerprint.FieldPixelRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPixelRatio(v)
		return nil
	case fingerprint.FieldHardwareConcurrency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHardwareConcurrency(v)
		return nil
	case fingerprint.FieldDeviceMemory:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeviceMemory(v)
		return nil
	case fingerprint.FieldBotScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBotScore(v)
		return nil
	case fingerprint.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case fingerprint.FieldSignalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSignalCount(v)
		return nil
	case fingerprint.FieldVisitCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVisitCount(v)
		return nil
	}
	return fmt.Errorf("unknown Fingerprint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FingerprintMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fingerprint.FieldCanvasHash) {
		fields = append(fields, fingerprint.FieldCanvasHash)
	}
	if m.FieldCleared(fingerprint.FieldWebglHash) {
		fields = append(fields, fingerprint.FieldWebglHash)
	}
	if m.FieldCleared(fingerprint.FieldAudioHash) {
		fields = append(fields, fingerprint.FieldAudioHash)
	}
	if m.FieldCleared(fingerprint.FieldUserAgent) {
		fields = append(fields, fingerprint.FieldUserAgent)
	}
	if m.FieldCleared(fingerprint.FieldPlatform) {
		fields = append(fields, fingerprint.FieldPlatform)
	}
	if m.FieldCleared(fingerprint.FieldLanguage) {
		fields = append(fields, fingerprint.FieldLanguage)
	}
	if m.FieldCleared(fingerprint.FieldTimezone) {
		fields = append(fields, fingerprint.FieldTimezone)
	}
	if m.FieldCleared(fingerprint.FieldGpuVendor) {
		fields = append(fields, fingerprint.FieldGpuVendor)
	}
	if m.FieldCleared(fingerprint.FieldGpuRenderer) {
		fields = append(fields, fingerprint.FieldGpuRenderer)
	}
	if m.FieldCleared(fingerprint.FieldConnectionType) {
		fields = append(fields, fingerprint.FieldConnectionType)
	}
	if m.FieldCleared(fingerprint.FieldIPAddress) {
		fields = append(fields, fingerprint.FieldIPAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FingerprintMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FingerprintMutation) ClearField(name string) error {
	switch name {
	case fingerprint.FieldCanvasHash:
		m.ClearCanvasHash()
		return nil
	case fingerprint.FieldWebglHash:
		m.ClearWebglHash()
		return nil
	case fingerprint.FieldAudioHash:
		m.ClearAudioHash()
		return nil
	case fingerprint.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case fingerprint.FieldPlatform:
		m.ClearPlatform()
		return nil
	case fingerprint.FieldLanguage:
		m.ClearLanguage()
		return nil
	case fingerprint.FieldTimezone:
		m.ClearTimezone()
		return nil
	case fingerprint.FieldGpuVendor:
		m.ClearGpuVendor()
		return nil
	case fingerprint.FieldGpuRenderer:
		m.ClearGpuRenderer()
		return nil
	case fingerprint.FieldConnectionType:
		m.ClearConnectionType()
		return nil
	case fingerprint.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FingerprintMutation) ResetField(name string) error {
	switch name {
	case fingerprint.FieldMerchantID:
		m.ResetMerchantID()
		return nil
	case fingerprint.FieldFpHash:
		m.ResetFpHash()
		return nil
	case fingerprint.FieldCanvasHash:
		m.ResetCanvasHash()
		return nil
	case fingerprint.FieldWebglHash:
		m.ResetWebglHash()
		return nil
	case fingerprint.FieldAudioHash:
		m.ResetAudioHash()
		return nil
	case fingerprint.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case fingerprint.FieldPlatform:
		m.ResetPlatform()
		return nil
	case fingerprint.FieldLanguage:
		m.ResetLanguage()
		return nil
	case fingerprint.FieldTimezone:
		m.ResetTimezone()
		return nil
	case fingerprint.FieldScreenWidth:
		m.ResetScreenWidth()
		return nil
	case fingerprint.FieldScreenHeight:
		m.ResetScreenHeight()
		return nil
	case fingerprint.FieldPixelRatio:
		m.ResetPixelRatio()
		return nil
	case fingerprint.FieldTouchSupport:
		m.ResetTouchSupport()
		return nil
	case fingerprint.FieldHardwareConcurrency:
		m.ResetHardwareConcurrency()
		return nil
	case fingerprint.FieldDeviceMemory:
		m.ResetDeviceMemory()
		return nil
	case fingerprint.FieldGpuVendor:
		m.ResetGpuVendor()
		return nil
	case fingerprint.FieldGpuRenderer:
		m.ResetGpuRenderer()
		return nil
	case fingerprint.FieldConnectionType:
		m.ResetConnectionType()
		return nil
	case fingerprint.FieldCookiesEnabled:
		m.ResetCookiesEnabled()
		return nil
	case fingerprint.FieldDoNotTrack:
		m.ResetDoNotTrack()
		return nil
	case fingerprint.FieldAdBlock:
		m.ResetAdBlock()
		return nil
	case fingerprint.FieldIsBot:
		m.ResetIsBot()
		return nil
	case fingerprint.FieldBotScore:
		m.ResetBotScore()
		return nil
	case fingerprint.FieldConfidence:
		m.ResetConfidence()
		return nil
	case fingerprint.FieldSignalCount:
		m.ResetSignalCount()
		return nil
	case fingerprint.FieldVisitCount:
		m.ResetVisitCount()
		return nil
	case fingerprint.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case fingerprint.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case fingerprint.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FingerprintMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.merchant != nil {
		edges = append(edges, fingerprint.EdgeMerchant)
	}
	if m.identity_links != nil {
		edges = append(edges, fingerprint.EdgeIdentityLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FingerprintMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fingerprint.EdgeMerchant:
		if id := m.merchant; id != nil {
			return []ent.Value{*id}
		}
	case fingerprint.EdgeIdentityLinks:
		ids := make([]ent.Value, 0, len(m.identity_links))
		for id := range m.identity_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FingerprintMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedidentity_links != nil {
		edges = append(edges, fingerprint.EdgeIdentityLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FingerprintMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fingerprint.EdgeIdentityLinks:
		ids := make([]ent.Value, 0, len(m.removedidentity_links))
		for id := range m.removedidentity_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FingerprintMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmerchant {
		edges = append(edges, fingerprint.EdgeMerchant)
	}
	if m.clearedidentity_links {
		edges = append(edges, fingerprint.EdgeIdentityLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FingerprintMutation) EdgeCleared(name string) bool {
	switch name {
	case fingerprint.EdgeMerchant:
		return m.clearedmerchant
	case fingerprint.EdgeIdentityLinks:
		return m.clearedidentity_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FingerprintMutation) ClearEdge(name string) error {
	switch name {
	case fingerprint.EdgeMerchant:
		m.ClearMerchant()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FingerprintMutation) ResetEdge(name string) error {
	switch name {
	case fingerprint.EdgeMerchant:
		m.ResetMerchant()
		return nil
	case fingerprint.EdgeIdentityLinks:
		m.ResetIdentityLinks()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint edge %s", name)
}

// IdentityLinkMutation represents an operation that mutates the IdentityLink nodes in the graph.
type IdentityLinkMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	company_id              *uuid.UUID
	platform_customer_id    *int64
	addplatform_customer_id *int64
	email                   *string
	session_id              *string
	auth_token              *string
	match_type              *identitylink.MatchType
	match_confidence        *float64
	addmatch_confidence     *float64
	page_views              *int
	addpage_views           *int
	product_views           *int
	addproduct_views        *int
	add_to_carts            *int
	addadd_to_carts         *int
	total_orders            *int
	addtotal_orders         *int
	total_revenue           *float64
	addtotal_revenue        *float64
	last_page_url           *string
	last_product_viewed     *string
	engagement_score        *int
	addengagement_score     *int
	buyer_intent            *identitylink.BuyerIntent
	segment                 *identitylink.Segment
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	merchant                *uuid.UUID
	clearedmerchant         bool
	fingerprint             *uuid.UUID
	clearedfingerprint      bool
	buyer                   *uuid.UUID
	clearedbuyer            bool
	done                    bool
	oldValue                func(context.Context) (*IdentityLink, error)
	predicates              []predicate.IdentityLink
}

var _ ent.Mutation = (*IdentityLinkMutation)(nil)

// identitylinkOption allows management of the mutation configuration using functional options.
type identitylinkOption func(*IdentityLinkMutation)

// newIdentityLinkMutation creates new mutation for the IdentityLink entity.
func newIdentityLinkMutation(c config, op Op, opts ...identitylinkOption) *IdentityLinkMutation {
	m := &IdentityLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeIdentityLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdentityLinkID sets the ID field of the mutation.
func withIdentityLinkID(id uuid.UUID) identitylinkOption {
	return func(m *IdentityLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *IdentityLink
		)
		m.oldValue = func(ctx context.Context) (*IdentityLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IdentityLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdentityLink sets the old IdentityLink of the mutation.
func withIdentityLink(node *IdentityLink) identitylinkOption {
	return func(m *IdentityLinkMutation) {
		m.oldValue = func(context.Context) (*IdentityLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdentityLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdentityLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IdentityLink entities.
func (m *IdentityLinkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdentityLinkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdentityLinkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IdentityLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMerchantID sets the "merchant_id" field.
func (m *IdentityLinkMutation) SetMerchantID(u uuid.UUID) {
	m.merchant = &u
}

// MerchantID returns the value of the "merchant_id" field in the mutation.
func (m *IdentityLinkMutation) MerchantID() (r uuid.UUID, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantID returns the old "merchant_id" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldMerchantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantID: %w", err)
	}
	return oldValue.MerchantID, nil
}

// ResetMerchantID resets all changes to the "merchant_id" field.
func (m *IdentityLinkMutation) ResetMerchantID() {
	m.merchant = nil
}

// SetFingerprintID sets the "fingerprint_id" field.
func (m *IdentityLinkMutation) SetFingerprintID(u uuid.UUID) {
	m.fingerprint = &u
}

// FingerprintID returns the value of the "fingerprint_id" field in the mutation.
func (m *IdentityLinkMutation) FingerprintID() (r uuid.UUID, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprintID returns the old "fingerprint_id" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldFingerprintID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprintID: %w", err)
	}
	return oldValue.FingerprintID, nil
}

// ResetFingerprintID resets all changes to the "fingerprint_id" field.
func (m *IdentityLinkMutation) ResetFingerprintID() {
	m.fingerprint = nil
}

// SetBuyerID sets the "buyer_id" field.
func (m *IdentityLinkMutation) SetBuyerID(u uuid.UUID) {
	m.buyer = &u
}

// BuyerID returns the value of the "buyer_id" field in the mutation.
func (m *IdentityLinkMutation) BuyerID() (r uuid.UUID, exists bool) {
	v := m.buyer
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerID returns the old "buyer_id" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldBuyerID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerID: %w", err)
	}
	return oldValue.BuyerID, nil
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (m *IdentityLinkMutation) ClearBuyerID() {
	m.buyer = nil
	m.clearedFields[identitylink.FieldBuyerID] = struct{}{}
}

// BuyerIDCleared returns if the "buyer_id" field was cleared in this mutation.
func (m *IdentityLinkMutation) BuyerIDCleared() bool {
	_, ok := m.clearedFields[identitylink.FieldBuyerID]
	return ok
}

// ResetBuyerID resets all changes to the "buyer_id" field.
func (m *IdentityLinkMutation) ResetBuyerID() {
	m.buyer = nil
	delete(m.clearedFields, identitylink.FieldBuyerID)
}

// SetCompanyID sets the "company_id" field.
func (m *IdentityLinkMutation) SetCompanyID(u uuid.UUID) {
	m.company_id = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *IdentityLinkMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldCompanyID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *IdentityLinkMutation) ClearCompanyID() {
	m.company_id = nil
	m.clearedFields[identitylink.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *IdentityLinkMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[identitylink.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *IdentityLinkMutation) ResetCompanyID() {
	m.company_id = nil
	delete(m.clearedFields, identitylink.FieldCompanyID)
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (m *IdentityLinkMutation) SetPlatformCustomerID(i int64) {
	m.platform_customer_id = &i
	m.addplatform_customer_id = nil
}

// PlatformCustomerID returns the value of the "platform_customer_id" field in the mutation.
func (m *IdentityLinkMutation) PlatformCustomerID() (r int64, exists bool) {
	v := m.platform_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformCustomerID returns the old "platform_customer_id" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldPlatformCustomerID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformCustomerID: %w", err)
	}
	return oldValue.PlatformCustomerID, nil
}

// AddPlatformCustomerID adds i to the "platform_customer_id" field.
func (m *IdentityLinkMutation) AddPlatformCustomerID(i int64) {
	if m.addplatform_customer_id != nil {
		*m.addplatform_customer_id += i
	} else {
		m.addplatform_customer_id = &i
	}
}

// AddedPlatformCustomerID returns the value that was added to the "platform_customer_id" field in this mutation.
func (m *IdentityLinkMutation) AddedPlatformCustomerID() (r int64, exists bool) {
	v := m.addplatform_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (m *IdentityLinkMutation) ClearPlatformCustomerID() {
	m.platform_customer_id = nil
	m.addplatform_customer_id = nil
	m.clearedFields[identitylink.FieldPlatformCustomerID] = struct{}{}
}

// PlatformCustomerIDCleared returns if the "platform_customer_id" field was cleared in this mutation.
func (m *IdentityLinkMutation) PlatformCustomerIDCleared() bool {
	_, ok := m.clearedFields[identitylink.FieldPlatformCustomerID]
	return ok
}

// ResetPlatformCustomerID resets all changes to the "platform_customer_id" field.
func (m *IdentityLinkMutation) ResetPlatformCustomerID() {
	m.platform_customer_id = nil
	m.addplatform_customer_id = nil
	delete(m.clearedFields, identitylink.FieldPlatformCustomerID)
}

// SetEmail sets the "email" field.
func (m *IdentityLinkMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *IdentityLinkMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *IdentityLinkMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[identitylink.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *IdentityLinkMutation) EmailCleared() bool {
	_, ok := m.clearedFields[identitylink.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *IdentityLinkMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, identitylink.FieldEmail)
}

// SetSessionID sets the "session_id" field.
func (m *IdentityLinkMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *IdentityLinkMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *IdentityLinkMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[identitylink.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *IdentityLinkMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[identitylink.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *IdentityLinkMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, identitylink.FieldSessionID)
}

// SetAuthToken sets the "auth_token" field.
func (m *IdentityLinkMutation) SetAuthToken(s string) {
	m.auth_token = &s
}

// AuthToken returns the value of the "auth_token" field in the mutation.
func (m *IdentityLinkMutation) AuthToken() (r string, exists bool) {
	v := m.auth_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthToken returns the old "auth_token" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldAuthToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthToken: %w", err)
	}
	return oldValue.AuthToken, nil
}

// ClearAuthToken clears the value of the "auth_token" field.
func (m *IdentityLinkMutation) ClearAuthToken() {
	m.auth_token = nil
	m.clearedFields[identitylink.FieldAuthToken] = struct{}{}
}

// AuthTokenCleared returns if the "auth_token" field was cleared in this mutation.
func (m *IdentityLinkMutation) AuthTokenCleared() bool {
	_, ok := m.clearedFields[identitylink.FieldAuthToken]
	return ok
}

// ResetAuthToken resets all changes to the "auth_token" field.
func (m *IdentityLinkMutation) ResetAuthToken() {
	m.auth_token = nil
	delete(m.clearedFields, identitylink.FieldAuthToken)
}

// SetMatchType sets the "match_type" field.
func (m *IdentityLinkMutation) SetMatchType(it identitylink.MatchType) {
	m.match_type = &it
}

// MatchType returns the value of the "match_type" field in the mutation.
func (m *IdentityLinkMutation) MatchType() (r identitylink.MatchType, exists bool) {
	v := m.match_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchType returns the old "match_type" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldMatchType(ctx context.Context) (v identitylink.MatchType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchType: %w", err)
	}
	return oldValue.MatchType, nil
}

// ResetMatchType resets all changes to the "match_type" field.
func (m *IdentityLinkMutation) ResetMatchType() {
	m.match_type = nil
}

// SetMatchConfidence sets the "match_confidence" field.
func (m *IdentityLinkMutation) SetMatchConfidence(f float64) {
	m.match_confidence = &f
	m.addmatch_confidence = nil
}

// MatchConfidence returns the value of the "match_confidence" field in the mutation.
func (m *IdentityLinkMutation) MatchConfidence() (r float64, exists bool) {
	v := m.match_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchConfidence returns the old "match_confidence" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldMatchConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchConfidence: %w", err)
	}
	return oldValue.MatchConfidence, nil
}

// AddMatchConfidence adds f to the "match_confidence" field.
func (m *IdentityLinkMutation) AddMatchConfidence(f float64) {
	if m.addmatch_confidence != nil {
		*m.addmatch_confidence += f
	} else {
		m.addmatch_confidence = &f
	}
}

// AddedMatchConfidence returns the value that was added to the "match_confidence" field in this mutation.
func (m *IdentityLinkMutation) AddedMatchConfidence() (r float64, exists bool) {
	v := m.addmatch_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchConfidence resets all changes to the "match_confidence" field.
func (m *IdentityLinkMutation) ResetMatchConfidence() {
	m.match_confidence = nil
	m.addmatch_confidence = nil
}

// SetPageViews sets the "page_views" field.
func (m *IdentityLinkMutation) SetPageViews(i int) {
	m.page_views = &i
	m.addpage_views = nil
}

// PageViews returns the value of the "page_views" field in the mutation.
func (m *IdentityLinkMutation) PageViews() (r int, exists bool) {
	v := m.page_views
	if v == nil {
		return
	}
	return *v, true
}

// OldPageViews returns the old "page_views" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldPageViews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageViews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageViews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageViews: %w", err)
	}
	return oldValue.PageViews, nil
}

// AddPageViews adds i to the "page_views" field.
func (m *IdentityLinkMutation) AddPageViews(i int) {
	if m.addpage_views != nil {
		*m.addpage_views += i
	} else {
		m.addpage_views = &i
	}
}

// AddedPageViews returns the value that was added to the "page_views" field in this mutation.
func (m *IdentityLinkMutation) AddedPageViews() (r int, exists bool) {
	v := m.addpage_views
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageViews resets all changes to the "page_views" field.
func (m *IdentityLinkMutation) ResetPageViews() {
	m.page_views = nil
	m.addpage_views = nil
}

// SetProductViews sets the "product_views" field.
func (m *IdentityLinkMutation) SetProductViews(i int) {
	m.product_views = &i
	m.addproduct_views = nil
}

// ProductViews returns the value of the "product_views" field in the mutation.
func (m *IdentityLinkMutation) ProductViews() (r int, exists bool) {
	v := m.product_views
	if v == nil {
		return
	}
	return *v, true
}

// OldProductViews returns the old "product_views" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldProductViews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductViews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductViews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductViews: %w", err)
	}
	return oldValue.ProductViews, nil
}

// AddProductViews adds i to the "product_views" field.
func (m *IdentityLinkMutation) AddProductViews(i int) {
	if m.addproduct_views != nil {
		*m.addproduct_views += i
	} else {
		m.addproduct_views = &i
	}
}

// AddedProductViews returns the value that was added to the "product_views" field in this mutation.
func (m *IdentityLinkMutation) AddedProductViews() (r int, exists bool) {
	v := m.addproduct_views
	if v == nil {
		return
	}
	return *v, true
}

// ResetProductViews resets all changes to the "product_views" field.
func (m *IdentityLinkMutation) ResetProductViews() {
	m.product_views = nil
	m.addproduct_views = nil
}

// SetAddToCarts sets the "add_to_carts" field.
func (m *IdentityLinkMutation) SetAddToCarts(i int) {
	m.add_to_carts = &i
	m.addadd_to_carts = nil
}

// AddToCarts returns the value of the "add_to_carts" field in the mutation.
func (m *IdentityLinkMutation) AddToCarts() (r int, exists bool) {
	v := m.add_to_carts
	if v == nil {
		return
	}
	return *v, true
}

// OldAddToCarts returns the old "add_to_carts" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldAddToCarts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddToCarts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddToCarts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddToCarts: %w", err)
	}
	return oldValue.AddToCarts, nil
}

// AddAddToCarts adds i to the "add_to_carts" field.
func (m *IdentityLinkMutation) AddAddToCarts(i int) {
	if m.addadd_to_carts != nil {
		*m.addadd_to_carts += i
	} else {
		m.addadd_to_carts = &i
	}
}

// AddedAddToCarts returns the value that was added to the "add_to_carts" field in this mutation.
func (m *IdentityLinkMutation) AddedAddToCarts() (r int, exists bool) {
	v := m.addadd_to_carts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAddToCarts resets all changes to the "add_to_carts" field.
func (m *IdentityLinkMutation) ResetAddToCarts() {
	m.add_to_carts = nil
	m.addadd_to_carts = nil
}

// SetTotalOrders sets the "total_orders" field.
func (m *IdentityLinkMutation) SetTotalOrders(i int) {
	m.total_orders = &i
	m.addtotal_orders = nil
}

// TotalOrders returns the value of the "total_orders" field in the mutation.
func (m *IdentityLinkMutation) TotalOrders() (r int, exists bool) {
	v := m.total_orders
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOrders returns the old "total_orders" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldTotalOrders(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOrders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOrders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOrders: %w", err)
	}
	return oldValue.TotalOrders, nil
}

// AddTotalOrders adds i to the "total_orders" field.
func (m *IdentityLinkMutation) AddTotalOrders(i int) {
	if m.addtotal_orders != nil {
		*m.addtotal_orders += i
	} else {
		m.addtotal_orders = &i
	}
}

// AddedTotalOrders returns the value that was added to the "total_orders" field in this mutation.
func (m *IdentityLinkMutation) AddedTotalOrders() (r int, exists bool) {
	v := m.addtotal_orders
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalOrders resets all changes to the "total_orders" field.
func (m *IdentityLinkMutation) ResetTotalOrders() {
	m.total_orders = nil
	m.addtotal_orders = nil
}

// SetTotalRevenue sets the "total_revenue" field.
func (m *IdentityLinkMutation) SetTotalRevenue(f float64) {
	m.total_revenue = &f
	m.addtotal_revenue = nil
}

// TotalRevenue returns the value of the "total_revenue" field in the mutation.
func (m *IdentityLinkMutation) TotalRevenue() (r float64, exists bool) {
	v := m.total_revenue
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRevenue returns the old "total_revenue" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldTotalRevenue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRevenue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRevenue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRevenue: %w", err)
	}
	return oldValue.TotalRevenue, nil
}

// AddTotalRevenue adds f to the "total_revenue" field.
func (m *IdentityLinkMutation) AddTotalRevenue(f float64) {
	if m.addtotal_revenue != nil {
		*m.addtotal_revenue += f
	} else {
		m.addtotal_revenue = &f
	}
}

// AddedTotalRevenue returns the value that was added to the "total_revenue" field in this mutation.
func (m *IdentityLinkMutation) AddedTotalRevenue() (r float64, exists bool) {
	v := m.addtotal_revenue
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRevenue resets all changes to the "total_revenue" field.
func (m *IdentityLinkMutation) ResetTotalRevenue() {
	m.total_revenue = nil
	m.addtotal_revenue = nil
}

// SetLastPageURL sets the "last_page_url" field.
func (m *IdentityLinkMutation) SetLastPageURL(s string) {
	m.last_page_url = &s
}

// LastPageURL returns the value of the "last_page_url" field in the mutation.
func (m *IdentityLinkMutation) LastPageURL() (r string, exists bool) {
	v := m.last_page_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPageURL returns the old "last_page_url" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldLastPageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPageURL: %w", err)
	}
	return oldValue.LastPageURL, nil
}

// ClearLastPageURL clears the value of the "last_page_url" field.
func (m *IdentityLinkMutation) ClearLastPageURL() {
	m.last_page_url = nil
	m.clearedFields[identitylink.FieldLastPageURL] = struct{}{}
}

// LastPageURLCleared returns if the "last_page_url" field was cleared in this mutation.
func (m *IdentityLinkMutation) LastPageURLCleared() bool {
	_, ok := m.clearedFields[identitylink.FieldLastPageURL]
	return ok
}

// ResetLastPageURL resets all changes to the "last_page_url" field.
func (m *IdentityLinkMutation) ResetLastPageURL() {
	m.last_page_url = nil
	delete(m.clearedFields, identitylink.FieldLastPageURL)
}

// SetLastProductViewed sets the "last_product_viewed" field.
func (m *IdentityLinkMutation) SetLastProductViewed(s string) {
	m.last_product_viewed = &s
}

// LastProductViewed returns the value of the "last_product_viewed" field in the mutation.
func (m *IdentityLinkMutation) LastProductViewed() (r string, exists bool) {
	v := m.last_product_viewed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProductViewed returns the old "last_product_viewed" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldLastProductViewed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProductViewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProductViewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProductViewed: %w", err)
	}
	return oldValue.LastProductViewed, nil
}

// ClearLastProductViewed clears the value of the "last_product_viewed" field.
func (m *IdentityLinkMutation) ClearLastProductViewed() {
	m.last_product_viewed = nil
	m.clearedFields[identitylink.FieldLastProductViewed] = struct{}{}
}

// LastProductViewedCleared returns if the "last_product_viewed" field was cleared in this mutation.
func (m *IdentityLinkMutation) LastProductViewedCleared() bool {
	_, ok := m.clearedFields[identitylink.FieldLastProductViewed]
	return ok
}

// ResetLastProductViewed resets all changes to the "last_product_viewed" field.
func (m *IdentityLinkMutation) ResetLastProductViewed() {
	m.last_product_viewed = nil
	delete(m.clearedFields, identitylink.FieldLastProductViewed)
}

// SetEngagementScore sets the "engagement_score" field.
func (m *IdentityLinkMutation) SetEngagementScore(i int) {
	m.engagement_score = &i
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *IdentityLinkMutation) EngagementScore() (r int, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldEngagementScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds i to the "engagement_score" field.
func (m *IdentityLinkMutation) AddEngagementScore(i int) {
	if m.addengagement_score != nil {
		*m.addengagement_score += i
	} else {
		m.addengagement_score = &i
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *IdentityLinkMutation) AddedEngagementScore() (r int, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *IdentityLinkMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
}

// SetBuyerIntent sets the "buyer_intent" field.
func (m *IdentityLinkMutation) SetBuyerIntent(ii identitylink.BuyerIntent) {
	m.buyer_intent = &ii
}

// BuyerIntent returns the value of the "buyer_intent" field in the mutation.
func (m *IdentityLinkMutation) BuyerIntent() (r identitylink.BuyerIntent, exists bool) {
	v := m.buyer_intent
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerIntent returns the old "buyer_intent" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldBuyerIntent(ctx context.Context) (v identitylink.BuyerIntent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerIntent: %w", err)
	}
	return oldValue.BuyerIntent, nil
}

// ResetBuyerIntent resets all changes to the "buyer_intent" field.
func (m *IdentityLinkMutation) ResetBuyerIntent() {
	m.buyer_intent = nil
}

// SetSegment sets the "segment" field.
func (m *IdentityLinkMutation) SetSegment(i identitylink.Segment) {
	m.segment = &i
}

// Segment returns the value of the "segment" field in the mutation.
func (m *IdentityLinkMutation) Segment() (r identitylink.Segment, exists bool) {
	v := m.segment
	if v == nil {
		return
	}
	return *v, true
}

// OldSegment returns the old "segment" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldSegment(ctx context.Context) (v identitylink.Segment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegment: %w", err)
	}
	return oldValue.Segment, nil
}

// ResetSegment resets all changes to the "segment" field.
func (m *IdentityLinkMutation) ResetSegment() {
	m.segment = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IdentityLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdentityLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *IdentityLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IdentityLinkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IdentityLinkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IdentityLink entity.
// If the IdentityLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityLinkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IdentityLinkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (m *IdentityLinkMutation) ClearMerchant() {
	m.clearedmerchant = true
	m.clearedFields[identitylink.FieldMerchantID] = struct{}{}
}

// MerchantCleared reports if the "merchant" edge to the Merchant entity was cleared.
func (m *IdentityLinkMutation) MerchantCleared() bool {
	return m.clearedmerchant
}

// MerchantIDs returns the "merchant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MerchantID instead. It exists only for internal usage by the builders.
func (m *IdentityLinkMutation) MerchantIDs() (ids []uuid.UUID) {
	if id := m.merchant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMerchant resets all changes to the "merchant" edge.
func (m *IdentityLinkMutation) ResetMerchant() {
	m.merchant = nil
	m.clearedmerchant = false
}

// ClearFingerprint clears the "fingerprint" edge to the Fingerprint entity.
func (m *IdentityLinkMutation) ClearFingerprint() {
	m.clearedfingerprint = true
	m.clearedFields[identitylink.FieldFingerprintID] = struct{}{}
}

// FingerprintCleared reports if the "fingerprint" edge to the Fingerprint entity was cleared.
func (m *IdentityLinkMutation) FingerprintCleared() bool {
	return m.clearedfingerprint
}

// FingerprintIDs returns the "fingerprint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FingerprintID instead. It exists only for internal usage by the builders.
func (m *IdentityLinkMutation) FingerprintIDs() (ids []uuid.UUID) {
	if id := m.fingerprint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFingerprint resets all changes to the "fingerprint" edge.
func (m *IdentityLinkMutation) ResetFingerprint() {
	m.fingerprint = nil
	m.clearedfingerprint = false
}

// ClearBuyer clears the "buyer" edge to the Buyer entity.
func (m *IdentityLinkMutation) ClearBuyer() {
	m.clearedbuyer = true
	m.clearedFields[identitylink.FieldBuyerID] = struct{}{}
}

// BuyerCleared reports if the "buyer" edge to the Buyer entity was cleared.
func (m *IdentityLinkMutation) BuyerCleared() bool {
	return m.BuyerIDCleared() || m.clearedbuyer
}

// BuyerIDs returns the "buyer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuyerID instead. It exists only for internal usage by the builders.
func (m *IdentityLinkMutation) BuyerIDs() (ids []uuid.UUID) {
	if id := m.buyer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuyer resets all changes to the "buyer" edge.
func (m *IdentityLinkMutation) ResetBuyer() {
	m.buyer = nil
	m.clearedbuyer = false
}

// Where appends a list predicates to the IdentityLinkMutation builder.
func (m *IdentityLinkMutation) Where(ps ...predicate.IdentityLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdentityLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdentityLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IdentityLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdentityLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdentityLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IdentityLink).
func (m *IdentityLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdentityLinkMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.merchant != nil {
		fields = append(fields, identitylink.FieldMerchantID)
	}
	if m.fingerprint != nil {
		fields = append(fields, identitylink.FieldFingerprintID)
	}
	if m.buyer != nil {
		fields = append(fields, identitylink.FieldBuyerID)
	}
	if m.company_id != nil {
		fields = append(fields, identitylink.FieldCompanyID)
	}
	if m.platform_customer_id != nil {
		fields = append(fields, identitylink.FieldPlatformCustomerID)
	}
	if m.email != nil {
		fields = append(fields, identitylink.FieldEmail)
	}
	if m.session_id != nil {
		fields = append(fields, identitylink.FieldSessionID)
	}
	if m.auth_token != nil {
		fields = append(fields, identitylink.FieldAuthToken)
	}
	if m.match_type != nil {
		fields = append(fields, identitylink.FieldMatchType)
	}
	if m.match_confidence != nil {
		fields = append(fields, identitylink.FieldMatchConfidence)
	}
	if m.page_views != nil {
		fields = append(fields, identitylink.FieldPageViews)
	}
	if m.product_views != nil {
		fields = append(fields, identitylink.FieldProductViews)
	}
	if m.add_to_carts != nil {
		fields = append(fields, identitylink.FieldAddToCarts)
	}
	if m.total_orders != nil {
		fields = append(fields, identitylink.FieldTotalOrders)
	}
	if m.total_revenue != nil {
		fields = append(fields, identitylink.FieldTotalRevenue)
	}
	if m.last_page_url != nil {
		fields = append(fields, identitylink.FieldLastPageURL)
	}
	if m.last_product_viewed != nil {
		fields = append(fields, identitylink.FieldLastProductViewed)
	}
	if m.engagement_score != nil {
		fields = append(fields, identitylink.FieldEngagementScore)
	}
	if m.buyer_intent != nil {
		fields = append(fields, identitylink.FieldBuyerIntent)
	}
	if m.segment != nil {
		fields = append(fields, identitylink.FieldSegment)
	}
	if m.created_at != nil {
		fields = append(fields, identitylink.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, identitylink.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdentityLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case identitylink.FieldMerchantID:
		return m.MerchantID()
	case identitylink.FieldFingerprintID:
		return m.FingerprintID()
	case identitylink.FieldBuyerID:
		return m.BuyerID()
	case identitylink.FieldCompanyID:
		return m.CompanyID()
	case identitylink.FieldPlatformCustomerID:
		return m.PlatformCustomerID()
	case identitylink.FieldEmail:
		return m.Email()
	case identitylink.FieldSessionID:
		return m.SessionID()
	case identitylink.FieldAuthToken:
		return m.AuthToken()
	case identitylink.FieldMatchType:
		return m.MatchType()
	case identitylink.FieldMatchConfidence:
		return m.MatchConfidence()
	case identitylink.FieldPageViews:
		return m.PageViews()
	case identitylink.FieldProductViews:
		return m.ProductViews()
	case identitylink.FieldAddToCarts:
		return m.AddToCarts()
	case identitylink.FieldTotalOrders:
		return m.TotalOrders()
	case identitylink.FieldTotalRevenue:
		return m.TotalRevenue()
	case identitylink.FieldLastPageURL:
		return m.LastPageURL()
	case identitylink.FieldLastProductViewed:
		return m.LastProductViewed()
	case identitylink.FieldEngagementScore:
		return m.EngagementScore()
	case identitylink.FieldBuyerIntent:
		return m.BuyerIntent()
	case identitylink.FieldSegment:
		return m.Segment()
	case identitylink.FieldCreatedAt:
		return m.CreatedAt()
	case identitylink.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdentityLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case identitylink.FieldMerchantID:
		return m.OldMerchantID(ctx)
	case identitylink.FieldFingerprintID:
		return m.OldFingerprintID(ctx)
	case identitylink.FieldBuyerID:
		return m.OldBuyerID(ctx)
	case identitylink.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case identitylink.FieldPlatformCustomerID:
		return m.OldPlatformCustomerID(ctx)
	case identitylink.FieldEmail:
		return m.OldEmail(ctx)
	case identitylink.FieldSessionID:
		return m.OldSessionID(ctx)
	case identitylink.FieldAuthToken:
		return m.OldAuthToken(ctx)
	case identitylink.FieldMatchType:
		return m.OldMatchType(ctx)
	case identitylink.FieldMatchConfidence:
		return m.OldMatchConfidence(ctx)
	case identitylink.FieldPageViews:
		return m.OldPageViews(ctx)
	case identitylink.FieldProductViews:
		return m.OldProductViews(ctx)
	case identitylink.FieldAddToCarts:
		return m.OldAddToCarts(ctx)
	case identitylink.FieldTotalOrders:
		return m.OldTotalOrders(ctx)
	case identitylink.FieldTotalRevenue:
		return m.OldTotalRevenue(ctx)
	case identitylink.FieldLastPageURL:
		return m.OldLastPageURL(ctx)
	case identitylink.FieldLastProductViewed:
		return m.OldLastProductViewed(ctx)
	case identitylink.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case identitylink.FieldBuyerIntent:
		return m.OldBuyerIntent(ctx)
	case identitylink.FieldSegment:
		return m.OldSegment(ctx)
	case identitylink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case identitylink.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IdentityLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdentityLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case identitylink.FieldMerchantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantID(v)
		return nil
	case identitylink.FieldFingerprintID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprintID(v)
		return nil
	case identitylink.FieldBuyerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerID(v)
		return nil
	case identitylink.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case identitylink.FieldPlatformCustomerID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformCustomerID(v)
		return nil
	case identitylink.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case identitylink.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case identitylink.FieldAuthToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthToken(v)
		return nil
	case identitylink.FieldMatchType:
		v, ok := value.(identitylink.MatchType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchType(v)
		return nil
	case identitylink.FieldMatchConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchConfidence(v)
		return nil
	case identitylink.FieldPageViews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageViews(v)
		return nil
	case identitylink.FieldProductViews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductViews(v)
		return nil
	case identitylink.FieldAddToCarts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddToCarts(v)
		return nil
	case identitylink.FieldTotalOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOrders(v)
		return nil
	case identitylink.FieldTotalRevenue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRevenue(v)
		return nil
	case identitylink.FieldLastPageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPageURL(v)
		return nil
	case identitylink.FieldLastProductViewed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProductViewed(v)
		return nil
	case identitylink.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case identitylink.FieldBuyerIntent:
		v, ok := value.(identitylink.BuyerIntent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerIntent(v)
		return nil
	case identitylink.FieldSegment:
		v, ok := value.(identitylink.Segment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegment(v)
		return nil
	case identitylink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case identitylink.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IdentityLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdentityLinkMutation) AddedFields() []string {
	var fields []string
	if m.addplatform_customer_id != nil {
		fields = append(fields, identitylink.FieldPlatformCustomerID)
	}
	if m.addmatch_confidence != nil {
		fields = append(fields, identitylink.FieldMatchConfidence)
	}
	if m.addpage_views != nil {
		fields = append(fields, identitylink.FieldPageViews)
	}
	if m.addproduct_views != nil {
		fields = append(fields, identitylink.FieldProductViews)
	}
	if m.addadd_to_carts != nil {
		fields = append(fields, identitylink.FieldAddToCarts)
	}
	if m.addtotal_orders != nil {
		fields = append(fields, identitylink.FieldTotalOrders)
	}
	if m.addtotal_revenue != nil {
		fields = append(fields, identitylink.FieldTotalRevenue)
	}
	if m.addengagement_score != nil {
		fields = append(fields, identitylink.FieldEngagementScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdentityLinkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case identitylink.FieldPlatformCustomerID:
		return m.AddedPlatformCustomerID()
	case identitylink.FieldMatchConfidence:
		return m.AddedMatchConfidence()
	case identitylink.FieldPageViews:
		return m.AddedPageViews()
	case identitylink.FieldProductViews:
		return m.AddedProductViews()
	case identitylink.FieldAddToCarts:
		return m.AddedAddToCarts()
	case identitylink.FieldTotalOrders:
		return m.AddedTotalOrders()
	case identitylink.FieldTotalRevenue:
		return m.AddedTotalRevenue()
	case identitylink.FieldEngagementScore:
		return m.AddedEngagementScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdentityLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case identitylink.FieldPlatformCustomerID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlatformCustomerID(v)
		return nil
	case identitylink.FieldMatchConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchConfidence(v)
		return nil
	case identitylink.FieldPageViews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageViews(v)
		return nil
	case identitylink.FieldProductViews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProductViews(v)
		return nil
	case identitylink.FieldAddToCarts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAddToCarts(v)
		return nil
	case identitylink.FieldTotalOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOrders(v)
		return nil
	case identitylink.FieldTotalRevenue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRevenue(v)
		return nil
	case identitylink.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	}
	return fmt.Errorf("unknown IdentityLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdentityLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(identitylink.FieldBuyerID) {
		fields = append(fields, identitylink.FieldBuyerID)
	}
	if m.FieldCleared(identitylink.FieldCompanyID) {
		fields = append(fields, identitylink.FieldCompanyID)
	}
	if m.FieldCleared(identitylink.FieldPlatformCustomerID) {
		fields = append(fields, identitylink.FieldPlatformCustomerID)
	}
	if m.FieldCleared(identitylink.FieldEmail) {
		fields = append(fields, identitylink.FieldEmail)
	}
	if m.FieldCleared(identitylink.FieldSessionID) {
		fields = append(fields, identitylink.FieldSessionID)
	}
	if m.FieldCleared(identitylink.FieldAuthToken) {
		fields = append(fields, identitylink.FieldAuthToken)
	}
	if m.FieldCleared(identitylink.FieldLastPageURL) {
		fields = append(fields, identitylink.FieldLastPageURL)
	}
	if m.FieldCleared(identitylink.FieldLastProductViewed) {
		fields = append(fields, identitylink.FieldLastProductViewed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdentityLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdentityLinkMutation) ClearField(name string) error {
	switch name {
	case identitylink.FieldBuyerID:
		m.ClearBuyerID()
		return nil
	case identitylink.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case identitylink.FieldPlatformCustomerID:
		m.ClearPlatformCustomerID()
		return nil
	case identitylink.FieldEmail:
		m.ClearEmail()
		return nil
	case identitylink.FieldSessionID:
		m.ClearSessionID()
		return nil
	case identitylink.FieldAuthToken:
		m.ClearAuthToken()
		return nil
	case identitylink.FieldLastPageURL:
		m.ClearLastPageURL()
		return nil
	case identitylink.FieldLastProductViewed:
		m.ClearLastProductViewed()
		return nil
	}
	return fmt.Errorf("unknown IdentityLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdentityLinkMutation) ResetField(name string) error {
	switch name {
	case identitylink.FieldMerchantID:
		m.ResetMerchantID()
		return nil
	case identitylink.FieldFingerprintID:
		m.ResetFingerprintID()
		return nil
	case identitylink.FieldBuyerID:
		m.ResetBuyerID()
		return nil
	case identitylink.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case identitylink.FieldPlatformCustomerID:
		m.ResetPlatformCustomerID()
		return nil
	case identitylink.FieldEmail:
		m.ResetEmail()
		return nil
	case identitylink.FieldSessionID:
		m.ResetSessionID()
		return nil
	case identitylink.FieldAuthToken:
		m.ResetAuthToken()
		return nil
	case identitylink.FieldMatchType:
		m.ResetMatchType()
		return nil
	case identitylink.FieldMatchConfidence:
		m.ResetMatchConfidence()
		return nil
	case identitylink.FieldPageViews:
		m.ResetPageViews()
		return nil
	case identitylink.FieldProductViews:
		m.ResetProductViews()
		return nil
	case identitylink.FieldAddToCarts:
		m.ResetAddToCarts()
		return nil
	case identitylink.FieldTotalOrders:
		m.ResetTotalOrders()
		return nil
	case identitylink.FieldTotalRevenue:
		m.ResetTotalRevenue()
		return nil
	case identitylink.FieldLastPageURL:
		m.ResetLastPageURL()
		return nil
	case identitylink.FieldLastProductViewed:
		m.ResetLastProductViewed()
		return nil
	case identitylink.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case identitylink.FieldBuyerIntent:
		m.ResetBuyerIntent()
		return nil
	case identitylink.FieldSegment:
		m.ResetSegment()
		return nil
	case identitylink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case identitylink.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown IdentityLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdentityLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.merchant != nil {
		edges = append(edges, identitylink.EdgeMerchant)
	}
	if m.fingerprint != nil {
		edges = append(edges, identitylink.EdgeFingerprint)
	}
	if m.buyer != nil {
		edges = append(edges, identitylink.EdgeBuyer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdentityLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case identitylink.EdgeMerchant:
		if id := m.merchant; id != nil {
			return []ent.Value{*id}
		}
	case identitylink.EdgeFingerprint:
		if id := m.fingerprint; id != nil {
			return []ent.Value{*id}
		}
	case identitylink.EdgeBuyer:
		if id := m.buyer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdentityLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdentityLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdentityLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmerchant {
		edges = append(edges, identitylink.EdgeMerchant)
	}
	if m.clearedfingerprint {
		edges = append(edges, identitylink.EdgeFingerprint)
	}
	if m.clearedbuyer {
		edges = append(edges, identitylink.EdgeBuyer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdentityLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case identitylink.EdgeMerchant:
		return m.clearedmerchant
	case identitylink.EdgeFingerprint:
		return m.clearedfingerprint
	case identitylink.EdgeBuyer:
		return m.clearedbuyer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdentityLinkMutation) ClearEdge(name string) error {
	switch name {
	case identitylink.EdgeMerchant:
		m.ClearMerchant()
		return nil
	case identitylink.EdgeFingerprint:
		m.ClearFingerprint()
		return nil
	case identitylink.EdgeBuyer:
		m.ClearBuyer()
		return nil
	}
	return fmt.Errorf("unknown IdentityLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdentityLinkMutation) ResetEdge(name string) error {
	switch name {
	case identitylink.EdgeMerchant:
		m.ResetMerchant()
		return nil
	case identitylink.EdgeFingerprint:
		m.ResetFingerprint()
		return nil
	case identitylink.EdgeBuyer:
		m.ResetBuyer()
		return nil
	}
	return fmt.Errorf("unknown IdentityLink edge %s", name)
}

// MerchantMutation represents an operation that mutates the Merchant nodes in the graph.
type MerchantMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	shop_domain           *string
	name                  *string
	password_hash         *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	fingerprints          map[uuid.UUID]struct{}
	removedfingerprints   map[uuid.UUID]struct{}
	clearedfingerprints   bool
	identity_links        map[uuid.UUID]struct{}
	removedidentity_links map[uuid.UUID]struct{}
	clearedidentity_links bool
	buyers                map[uuid.UUID]struct{}
	removedbuyers         map[uuid.UUID]struct{}
	clearedbuyers         bool
	done                  bool
	oldValue              func(context.Context) (*Merchant, error)
	predicates            []predicate.Merchant
}

var _ ent.Mutation = (*MerchantMutation)(nil)

// merchantOption allows management of the mutation configuration using functional options.
type merchantOption func(*MerchantMutation)

// newMerchantMutation creates new mutation for the Merchant entity.
func newMerchantMutation(c config, op Op, opts ...merchantOption) *MerchantMutation {
	m := &MerchantMutation{
		config:        c,
		op:            op,
		typ:           TypeMerchant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMerchantID sets the ID field of the mutation.
func withMerchantID(id uuid.UUID) merchantOption {
	return func(m *MerchantMutation) {
		var (
			err   error
			once  sync.Once
			value *Merchant
		)
		m.oldValue = func(ctx context.Context) (*Merchant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Merchant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMerchant sets the old Merchant of the mutation.
func withMerchant(node *Merchant) merchantOption {
	return func(m *MerchantMutation) {
		m.oldValue = func(context.Context) (*Merchant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MerchantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MerchantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Merchant entities.
func (m *MerchantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MerchantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MerchantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Merchant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetShopDomain sets the "shop_domain" field.
func (m *MerchantMutation) SetShopDomain(s string) {
	m.shop_domain = &s
}

// ShopDomain returns the value of the "shop_domain" field in the mutation.
func (m *MerchantMutation) ShopDomain() (r string, exists bool) {
	v := m.shop_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldShopDomain returns the old "shop_domain" field's value of the Merchant entity.
// If the Merchant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMutation) OldShopDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShopDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShopDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShopDomain: %w", err)
	}
	return oldValue.ShopDomain, nil
}

// ResetShopDomain resets all changes to the "shop_domain" field.
func (m *MerchantMutation) ResetShopDomain() {
	m.shop_domain = nil
}

// SetName sets the "name" field.
func (m *MerchantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MerchantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Merchant entity.
// If the Merchant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *MerchantMutation) ClearName() {
	m.name = nil
	m.clearedFields[merchant.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *MerchantMutation) NameCleared() bool {
	_, ok := m.clearedFields[merchant.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *MerchantMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, merchant.FieldName)
}

// SetPasswordHash sets the "password_hash" field.
func (m *MerchantMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *MerchantMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Merchant entity.
// If the Merchant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMutation) OldPasswordHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *MerchantMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[merchant.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *MerchantMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[merchant.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *MerchantMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, merchant.FieldPasswordHash)
}

// SetCreatedAt sets the "created_at" field.
func (m *MerchantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MerchantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Merchant entity.
// If the Merchant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MerchantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MerchantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddFingerprintIDs adds the "fingerprints" edge to the Fingerprint entity by ids.
func (m *MerchantMutation) AddFingerprintIDs(ids ...uuid.UUID) {
	if m.fingerprints == nil {
		m.fingerprints = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fingerprints[ids[i]] = struct{}{}
	}
}

// ClearFingerprints clears the "fingerprints" edge to the Fingerprint entity.
func (m *MerchantMutation) ClearFingerprints() {
	m.clearedfingerprints = true
}

// FingerprintsCleared reports if the "fingerprints" edge to the Fingerprint entity was cleared.
func (m *MerchantMutation) FingerprintsCleared() bool {
	return m.clearedfingerprints
}

// RemoveFingerprintIDs removes the "fingerprints" edge to the Fingerprint entity by IDs.
func (m *MerchantMutation) RemoveFingerprintIDs(ids ...uuid.UUID) {
	if m.removedfingerprints == nil {
		m.removedfingerprints = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fingerprints, ids[i])
		m.removedfingerprints[ids[i]] = struct{}{}
	}
}

// RemovedFingerprints returns the removed IDs of the "fingerprints" edge to the Fingerprint entity.
func (m *MerchantMutation) RemovedFingerprintsIDs() (ids []uuid.UUID) {
	for id := range m.removedfingerprints {
		ids = append(ids, id)
	}
	return
}

// FingerprintsIDs returns the "fingerprints" edge IDs in the mutation.
func (m *MerchantMutation) FingerprintsIDs() (ids []uuid.UUID) {
	for id := range m.fingerprints {
		ids = append(ids, id)
	}
	return
}

// ResetFingerprints resets all changes to the "fingerprints" edge.
func (m *MerchantMutation) ResetFingerprints() {
	m.fingerprints = nil
	m.clearedfingerprints = false
	m.removedfingerprints = nil
}

// AddIdentityLinkIDs adds the "identity_links" edge to the IdentityLink entity by ids.
func (m *MerchantMutation) AddIdentityLinkIDs(ids ...uuid.UUID) {
	if m.identity_links == nil {
		m.identity_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.identity_links[ids[i]] = struct{}{}
	}
}

// ClearIdentityLinks clears the "identity_links" edge to the IdentityLink entity.
func (m *MerchantMutation) ClearIdentityLinks() {
	m.clearedidentity_links = true
}

// IdentityLinksCleared reports if the "identity_links" edge to the IdentityLink entity was cleared.
func (m *MerchantMutation) IdentityLinksCleared() bool {
	return m.clearedidentity_links
}

// RemoveIdentityLinkIDs removes the "identity_links" edge to the IdentityLink entity by IDs.
func (m *MerchantMutation) RemoveIdentityLinkIDs(ids ...uuid.UUID) {
	if m.removedidentity_links == nil {
		m.removedidentity_links = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.identity_links, ids[i])
		m.removedidentity_links[ids[i]] = struct{}{}
	}
}

// RemovedIdentityLinks returns the removed IDs of the "identity_links" edge to the IdentityLink entity.
func (m *MerchantMutation) RemovedIdentityLinksIDs() (ids []uuid.UUID) {
	for id := range m.removedidentity_links {
		ids = append(ids, id)
	}
	return
}

// IdentityLinksIDs returns the "identity_links" edge IDs in the mutation.
func (m *MerchantMutation) IdentityLinksIDs() (ids []uuid.UUID) {
	for id := range m.identity_links {
		ids = append(ids, id)
	}
	return
}

// ResetIdentityLinks resets all changes to the "identity_links" edge.
func (m *MerchantMutation) ResetIdentityLinks() {
	m.identity_links = nil
	m.clearedidentity_links = false
	m.removedidentity_links = nil
}

// AddBuyerIDs adds the "buyers" edge to the Buyer entity by ids.
func (m *MerchantMutation) AddBuyerIDs(ids ...uuid.UUID) {
	if m.buyers == nil {
		m.buyers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.buyers[ids[i]] = struct{}{}
	}
}

// ClearBuyers clears the "buyers" edge to the Buyer entity.
func (m *MerchantMutation) ClearBuyers() {
	m.clearedbuyers = true
}

// BuyersCleared reports if the "buyers" edge to the Buyer entity was cleared.
func (m *MerchantMutation) BuyersCleared() bool {
	return m.clearedbuyers
}

// RemoveBuyerIDs removes the "buyers" edge to the Buyer entity by IDs.
func (m *MerchantMutation) RemoveBuyerIDs(ids ...uuid.UUID) {
	if m.removedbuyers == nil {
		m.removedbuyers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.buyers, ids[i])
		m.removedbuyers[ids[i]] = struct{}{}
	}
}

// RemovedBuyers returns the removed IDs of the "buyers" edge to the Buyer entity.
func (m *MerchantMutation) RemovedBuyersIDs() (ids []uuid.UUID) {
	for id := range m.removedbuyers {
		ids = append(ids, id)
	}
	return
}

// BuyersIDs returns the "buyers" edge IDs in the mutation.
func (m *MerchantMutation) BuyersIDs() (ids []uuid.UUID) {
	for id := range m.buyers {
		ids = append(ids, id)
	}
	return
}

// ResetBuyers resets all changes to the "buyers" edge.
func (m *MerchantMutation) ResetBuyers() {
	m.buyers = nil
	m.clearedbuyers = false
	m.removedbuyers = nil
}

// Where appends a list predicates to the MerchantMutation builder.
func (m *MerchantMutation) Where(ps ...predicate.Merchant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MerchantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MerchantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Merchant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MerchantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MerchantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Merchant).
func (m *MerchantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MerchantMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.shop_domain != nil {
		fields = append(fields, merchant.FieldShopDomain)
	}
	if m.name != nil {
		fields = append(fields, merchant.FieldName)
	}
	if m.password_hash != nil {
		fields = append(fields, merchant.FieldPasswordHash)
	}
	if m.created_at != nil {
		fields = append(fields, merchant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MerchantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case merchant.FieldShopDomain:
		return m.ShopDomain()
	case merchant.FieldName:
		return m.Name()
	case merchant.FieldPasswordHash:
		return m.PasswordHash()
	case merchant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MerchantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case merchant.FieldShopDomain:
		return m.OldShopDomain(ctx)
	case merchant.FieldName:
		return m.OldName(ctx)
	case merchant.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case merchant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Merchant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MerchantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case merchant.FieldShopDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShopDomain(v)
		return nil
	case merchant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case merchant.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case merchant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Merchant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MerchantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MerchantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MerchantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Merchant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MerchantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(merchant.FieldName) {
		fields = append(fields, merchant.FieldName)
	}
	if m.FieldCleared(merchant.FieldPasswordHash) {
		fields = append(fields, merchant.FieldPasswordHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MerchantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MerchantMutation) ClearField(name string) error {
	switch name {
	case merchant.FieldName:
		m.ClearName()
		return nil
	case merchant.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	}
	return fmt.Errorf("unknown Merchant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MerchantMutation) ResetField(name string) error {
	switch name {
	case merchant.FieldShopDomain:
		m.ResetShopDomain()
		return nil
	case merchant.FieldName:
		m.ResetName()
		return nil
	case merchant.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case merchant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Merchant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MerchantMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.fingerprints != nil {
		edges = append(edges, merchant.EdgeFingerprints)
	}
	if m.identity_links != nil {
		edges = append(edges, merchant.EdgeIdentityLinks)
	}
	if m.buyers != nil {
		edges = append(edges, merchant.EdgeBuyers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MerchantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case merchant.EdgeFingerprints:
		ids := make([]ent.Value, 0, len(m.fingerprints))
		for id := range m.fingerprints {
			ids = append(ids, id)
		}
		return ids
	case merchant.EdgeIdentityLinks:
		ids := make([]ent.Value, 0, len(m.identity_links))
		for id := range m.identity_links {
			ids = append(ids, id)
		}
		return ids
	case merchant.EdgeBuyers:
		ids := make([]ent.Value, 0, len(m.buyers))
		for id := range m.buyers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MerchantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfingerprints != nil {
		edges = append(edges, merchant.EdgeFingerprints)
	}
	if m.removedidentity_links != nil {
		edges = append(edges, merchant.EdgeIdentityLinks)
	}
	if m.removedbuyers != nil {
		edges = append(edges, merchant.EdgeBuyers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MerchantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case merchant.EdgeFingerprints:
		ids := make([]ent.Value, 0, len(m.removedfingerprints))
		for id := range m.removedfingerprints {
			ids = append(ids, id)
		}
		return ids
	case merchant.EdgeIdentityLinks:
		ids := make([]ent.Value, 0, len(m.removedidentity_links))
		for id := range m.removedidentity_links {
			ids = append(ids, id)
		}
		return ids
	case merchant.EdgeBuyers:
		ids := make([]ent.Value, 0, len(m.removedbuyers))
		for id := range m.removedbuyers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MerchantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfingerprints {
		edges = append(edges, merchant.EdgeFingerprints)
	}
	if m.clearedidentity_links {
		edges = append(edges, merchant.EdgeIdentityLinks)
	}
	if m.clearedbuyers {
		edges = append(edges, merchant.EdgeBuyers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MerchantMutation) EdgeCleared(name string) bool {
	switch name {
	case merchant.EdgeFingerprints:
		return m.clearedfingerprints
	case merchant.EdgeIdentityLinks:
		return m.clearedidentity_links
	case merchant.EdgeBuyers:
		return m.clearedbuyers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MerchantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Merchant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MerchantMutation) ResetEdge(name string) error {
	switch name {
	case merchant.EdgeFingerprints:
		m.ResetFingerprints()
		return nil
	case merchant.EdgeIdentityLinks:
		m.ResetIdentityLinks()
		return nil
	case merchant.EdgeBuyers:
		m.ResetBuyers()
		return nil
	}
	return fmt.Errorf("unknown Merchant edge %s", name)
}
