// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-iq/ent/buyer"
	"visitor-iq/ent/company"
	"visitor-iq/ent/merchant"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BuyerCreate is the builder for creating a Buyer entity.
type BuyerCreate struct {
	config
	mutation *BuyerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMerchantID sets the "merchant_id" field.
func (_c *BuyerCreate) SetMerchantID(v uuid.UUID) *BuyerCreate {
	_c.mutation.SetMerchantID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *BuyerCreate) SetEmail(v string) *BuyerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (_c *BuyerCreate) SetPlatformCustomerID(v int64) *BuyerCreate {
	_c.mutation.SetPlatformCustomerID(v)
	return _c
}

// SetNillablePlatformCustomerID sets the "platform_customer_id" field if the given value is not nil.
func (_c *BuyerCreate) SetNillablePlatformCustomerID(v *int64) *BuyerCreate {
	if v != nil {
		_c.SetPlatformCustomerID(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *BuyerCreate) SetCompanyID(v uuid.UUID) *BuyerCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *BuyerCreate) SetNillableCompanyID(v *uuid.UUID) *BuyerCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *BuyerCreate) SetName(v string) *BuyerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *BuyerCreate) SetNillableName(v *string) *BuyerCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BuyerCreate) SetCreatedAt(v time.Time) *BuyerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BuyerCreate) SetNillableCreatedAt(v *time.Time) *BuyerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BuyerCreate) SetID(v uuid.UUID) *BuyerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BuyerCreate) SetNillableID(v *uuid.UUID) *BuyerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_c *BuyerCreate) SetMerchant(v *Merchant) *BuyerCreate {
	return _c.SetMerchantID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *BuyerCreate) SetCompany(v *Company) *BuyerCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the BuyerMutation object of the builder.
func (_c *BuyerCreate) Mutation() *BuyerMutation {
	return _c.mutation
}

// Save creates the Buyer in the database.
func (_c *BuyerCreate) Save(ctx context.Context) (*Buyer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BuyerCreate) SaveX(ctx context.Context) *Buyer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuyerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuyerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BuyerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := buyer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := buyer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BuyerCreate) check() error {
	if _, ok := _c.mutation.MerchantID(); !ok {
		return &ValidationError{Name: "merchant_id", err: errors.New(`ent: missing required field "Buyer.merchant_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Buyer.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := buyer.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Buyer.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := buyer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Buyer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Buyer.created_at"`)}
	}
	if len(_c.mutation.MerchantIDs()) == 0 {
		return &ValidationError{Name: "merchant", err: errors.New(`ent: missing required edge "Buyer.merchant"`)}
	}
	return nil
}

func (_c *BuyerCreate) sqlSave(ctx context.Context) (*Buyer, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BuyerCreate) createSpec() (*Buyer, *sqlgraph.CreateSpec) {
	var (
		_node = &Buyer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(buyer.Table, sqlgraph.NewFieldSpec(buyer.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(buyer.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PlatformCustomerID(); ok {
		_spec.SetField(buyer.FieldPlatformCustomerID, field.TypeInt64, value)
		_node.PlatformCustomerID = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(buyer.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(buyer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MerchantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   buyer.MerchantTable,
			Columns: []string{buyer.MerchantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MerchantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   buyer.CompanyTable,
			Columns: []string{buyer.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Buyer.Create().
//		SetMerchantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuyerUpsert) {
//			SetMerchantID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuyerCreate) OnConflict(opts ...sql.ConflictOption) *BuyerUpsertOne {
	_c.conflict = opts
	return &BuyerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Buyer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuyerCreate) OnConflictColumns(columns ...string) *BuyerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuyerUpsertOne{
		create: _c,
	}
}

type (
	// BuyerUpsertOne is the builder for "upsert"-ing
	//  one Buyer node.
	BuyerUpsertOne struct {
		create *BuyerCreate
	}

	// BuyerUpsert is the "OnConflict" setter.
	BuyerUpsert struct {
		*sql.UpdateSet
	}
)

// SetMerchantID sets the "merchant_id" field.
func (u *BuyerUpsert) SetMerchantID(v uuid.UUID) *BuyerUpsert {
	u.Set(buyer.FieldMerchantID, v)
	return u
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *BuyerUpsert) UpdateMerchantID() *BuyerUpsert {
	u.SetExcluded(buyer.FieldMerchantID)
	return u
}

// SetEmail sets the "email" field.
func (u *BuyerUpsert) SetEmail(v string) *BuyerUpsert {
	u.Set(buyer.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *BuyerUpsert) UpdateEmail() *BuyerUpsert {
	u.SetExcluded(buyer.FieldEmail)
	return u
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (u *BuyerUpsert) SetPlatformCustomerID(v int64) *BuyerUpsert {
	u.Set(buyer.FieldPlatformCustomerID, v)
	return u
}

// UpdatePlatformCustomerID sets the "platform_customer_id" field to the value that was provided on create.
func (u *BuyerUpsert) UpdatePlatformCustomerID() *BuyerUpsert {
	u.SetExcluded(buyer.FieldPlatformCustomerID)
	return u
}

// AddPlatformCustomerID adds v to the "platform_customer_id" field.
func (u *BuyerUpsert) AddPlatformCustomerID(v int64) *BuyerUpsert {
	u.Add(buyer.FieldPlatformCustomerID, v)
	return u
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (u *BuyerUpsert) ClearPlatformCustomerID() *BuyerUpsert {
	u.SetNull(buyer.FieldPlatformCustomerID)
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *BuyerUpsert) SetCompanyID(v uuid.UUID) *BuyerUpsert {
	u.Set(buyer.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *BuyerUpsert) UpdateCompanyID() *BuyerUpsert {
	u.SetExcluded(buyer.FieldCompanyID)
	return u
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *BuyerUpsert) ClearCompanyID() *BuyerUpsert {
	u.SetNull(buyer.FieldCompanyID)
	return u
}

// SetName sets the "name" field.
func (u *BuyerUpsert) SetName(v string) *BuyerUpsert {
	u.Set(buyer.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BuyerUpsert) UpdateName() *BuyerUpsert {
	u.SetExcluded(buyer.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *BuyerUpsert) ClearName() *BuyerUpsert {
	u.SetNull(buyer.FieldName)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Buyer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(buyer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuyerUpsertOne) UpdateNewValues() *BuyerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(buyer.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(buyer.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Buyer.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BuyerUpsertOne) Ignore() *BuyerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuyerUpsertOne) DoNothing() *BuyerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuyerCreate.OnConflict
// documentation for more info.
func (u *BuyerUpsertOne) Update(set func(*BuyerUpsert)) *BuyerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuyerUpsert{UpdateSet: update})
	}))
	return u
}

// SetMerchantID sets the "merchant_id" field.
func (u *BuyerUpsertOne) SetMerchantID(v uuid.UUID) *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.SetMerchantID(v)
	})
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *BuyerUpsertOne) UpdateMerchantID() *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdateMerchantID()
	})
}

// SetEmail sets the "email" field.
func (u *BuyerUpsertOne) SetEmail(v string) *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *BuyerUpsertOne) UpdateEmail() *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdateEmail()
	})
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (u *BuyerUpsertOne) SetPlatformCustomerID(v int64) *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.SetPlatformCustomerID(v)
	})
}

// AddPlatformCustomerID adds v to the "platform_customer_id" field.
func (u *BuyerUpsertOne) AddPlatformCustomerID(v int64) *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.AddPlatformCustomerID(v)
	})
}

// UpdatePlatformCustomerID sets the "platform_customer_id" field to the value that was provided on create.
func (u *BuyerUpsertOne) UpdatePlatformCustomerID() *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdatePlatformCustomerID()
	})
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (u *BuyerUpsertOne) ClearPlatformCustomerID() *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.ClearPlatformCustomerID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *BuyerUpsertOne) SetCompanyID(v uuid.UUID) *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *BuyerUpsertOne) UpdateCompanyID() *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdateCompanyID()
	})
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *BuyerUpsertOne) ClearCompanyID() *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.ClearCompanyID()
	})
}

// SetName sets the "name" field.
func (u *BuyerUpsertOne) SetName(v string) *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BuyerUpsertOne) UpdateName() *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *BuyerUpsertOne) ClearName() *BuyerUpsertOne {
	return u.Update(func(s *BuyerUpsert) {
		s.ClearName()
	})
}

// Exec executes the query.
func (u *BuyerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuyerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuyerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BuyerUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BuyerUpsertOne.ID is not supported by MySQL driver. Use BuyerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BuyerUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BuyerCreateBulk is the builder for creating many Buyer entities in bulk.
type BuyerCreateBulk struct {
	config
	err      error
	builders []*BuyerCreate
	conflict []sql.ConflictOption
}

// Save creates the Buyer entities in the database.
func (_c *BuyerCreateBulk) Save(ctx context.Context) ([]*Buyer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Buyer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuyerMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *BuyerCreateBulk) SaveX(ctx context.Context) []*Buyer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuyerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuyerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Buyer.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuyerUpsert) {
//			SetMerchantID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuyerCreateBulk) OnConflict(opts ...sql.ConflictOption) *BuyerUpsertBulk {
	_c.conflict = opts
	return &BuyerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Buyer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuyerCreateBulk) OnConflictColumns(columns ...string) *BuyerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuyerUpsertBulk{
		create: _c,
	}
}

// BuyerUpsertBulk is the builder for "upsert"-ing
// a bulk of Buyer nodes.
type BuyerUpsertBulk struct {
	create *BuyerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Buyer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(buyer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuyerUpsertBulk) UpdateNewValues() *BuyerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(buyer.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(buyer.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Buyer.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BuyerUpsertBulk) Ignore() *BuyerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuyerUpsertBulk) DoNothing() *BuyerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuyerCreateBulk.OnConflict
// documentation for more info.
func (u *BuyerUpsertBulk) Update(set func(*BuyerUpsert)) *BuyerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuyerUpsert{UpdateSet: update})
	}))
	return u
}

// SetMerchantID sets the "merchant_id" field.
func (u *BuyerUpsertBulk) SetMerchantID(v uuid.UUID) *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.SetMerchantID(v)
	})
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *BuyerUpsertBulk) UpdateMerchantID() *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdateMerchantID()
	})
}

// SetEmail sets the "email" field.
func (u *BuyerUpsertBulk) SetEmail(v string) *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *BuyerUpsertBulk) UpdateEmail() *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdateEmail()
	})
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (u *BuyerUpsertBulk) SetPlatformCustomerID(v int64) *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.SetPlatformCustomerID(v)
	})
}

// AddPlatformCustomerID adds v to the "platform_customer_id" field.
func (u *BuyerUpsertBulk) AddPlatformCustomerID(v int64) *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.AddPlatformCustomerID(v)
	})
}

// UpdatePlatformCustomerID sets the "platform_customer_id" field to the value that was provided on create.
func (u *BuyerUpsertBulk) UpdatePlatformCustomerID() *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdatePlatformCustomerID()
	})
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (u *BuyerUpsertBulk) ClearPlatformCustomerID() *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.ClearPlatformCustomerID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *BuyerUpsertBulk) SetCompanyID(v uuid.UUID) *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *BuyerUpsertBulk) UpdateCompanyID() *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdateCompanyID()
	})
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *BuyerUpsertBulk) ClearCompanyID() *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.ClearCompanyID()
	})
}

// SetName sets the "name" field.
func (u *BuyerUpsertBulk) SetName(v string) *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BuyerUpsertBulk) UpdateName() *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *BuyerUpsertBulk) ClearName() *BuyerUpsertBulk {
	return u.Update(func(s *BuyerUpsert) {
		s.ClearName()
	})
}

// Exec executes the query.
func (u *BuyerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BuyerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuyerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuyerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
