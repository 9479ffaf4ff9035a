// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-iq/ent/buyer"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/identitylink"
	"visitor-iq/ent/merchant"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// MerchantCreate is the builder for creating a Merchant entity.
type MerchantCreate struct {
	config
	mutation *MerchantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetShopDomain sets the "shop_domain" field.
func (_c *MerchantCreate) SetShopDomain(v string) *MerchantCreate {
	_c.mutation.SetShopDomain(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MerchantCreate) SetName(v string) *MerchantCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *MerchantCreate) SetNillableName(v *string) *MerchantCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *MerchantCreate) SetPasswordHash(v string) *MerchantCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_c *MerchantCreate) SetNillablePasswordHash(v *string) *MerchantCreate {
	if v != nil {
		_c.SetPasswordHash(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MerchantCreate) SetCreatedAt(v time.Time) *MerchantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MerchantCreate) SetNillableCreatedAt(v *time.Time) *MerchantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MerchantCreate) SetID(v uuid.UUID) *MerchantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MerchantCreate) SetNillableID(v *uuid.UUID) *MerchantCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFingerprintIDs adds the "fingerprints" edge to the Fingerprint entity by IDs.
func (_c *MerchantCreate) AddFingerprintIDs(ids ...uuid.UUID) *MerchantCreate {
	_c.mutation.AddFingerprintIDs(ids...)
	return _c
}

// AddFingerprints adds the "fingerprints" edges to the Fingerprint entity.
func (_c *MerchantCreate) AddFingerprints(v ...*Fingerprint) *MerchantCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFingerprintIDs(ids...)
}

// AddIdentityLinkIDs adds the "identity_links" edge to the IdentityLink entity by IDs.
func (_c *MerchantCreate) AddIdentityLinkIDs(ids ...uuid.UUID) *MerchantCreate {
	_c.mutation.AddIdentityLinkIDs(ids...)
	return _c
}

// AddIdentityLinks adds the "identity_links" edges to the IdentityLink entity.
func (_c *MerchantCreate) AddIdentityLinks(v ...*IdentityLink) *MerchantCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIdentityLinkIDs(ids...)
}

// AddBuyerIDs adds the "buyers" edge to the Buyer entity by IDs.
func (_c *MerchantCreate) AddBuyerIDs(ids ...uuid.UUID) *MerchantCreate {
	_c.mutation.AddBuyerIDs(ids...)
	return _c
}

// AddBuyers adds the "buyers" edges to the Buyer entity.
func (_c *MerchantCreate) AddBuyers(v ...*Buyer) *MerchantCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBuyerIDs(ids...)
}

// Mutation returns the MerchantMutation object of the builder.
func (_c *MerchantCreate) Mutation() *MerchantMutation {
	return _c.mutation
}

// Save creates the Merchant in the database.
func (_c *MerchantCreate) Save(ctx context.Context) (*Merchant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MerchantCreate) SaveX(ctx context.Context) *Merchant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MerchantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MerchantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MerchantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := merchant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := merchant.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MerchantCreate) check() error {
	if _, ok := _c.mutation.ShopDomain(); !ok {
		return &ValidationError{Name: "shop_domain", err: errors.New(`ent: missing required field "Merchant.shop_domain"`)}
	}
	if v, ok := _c.mutation.ShopDomain(); ok {
		if err := merchant.ShopDomainValidator(v); err != nil {
			return &ValidationError{Name: "shop_domain", err: fmt.Errorf(`ent: validator failed for field "Merchant.shop_domain": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := merchant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Merchant.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PasswordHash(); ok {
		if err := merchant.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "Merchant.password_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Merchant.created_at"`)}
	}
	return nil
}

func (_c *MerchantCreate) sqlSave(ctx context.Context) (*Merchant, error) {
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

func (_c *MerchantCreate) createSpec() (*Merchant, *sqlgraph.CreateSpec) {
	var (
		_node = &Merchant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(merchant.Table, sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ShopDomain(); ok {
		_spec.SetField(merchant.FieldShopDomain, field.TypeString, value)
		_node.ShopDomain = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(merchant.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(merchant.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(merchant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FingerprintsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.FingerprintsTable,
			Columns: []string{merchant.FingerprintsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IdentityLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.IdentityLinksTable,
			Columns: []string{merchant.IdentityLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identitylink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BuyersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   merchant.BuyersTable,
			Columns: []string{merchant.BuyersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(buyer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Merchant.Create().
//		SetShopDomain(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MerchantUpsert) {
//			SetShopDomain(v+v).
//		}).
//		Exec(ctx)
func (_c *MerchantCreate) OnConflict(opts ...sql.ConflictOption) *MerchantUpsertOne {
	_c.conflict = opts
	return &MerchantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Merchant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MerchantCreate) OnConflictColumns(columns ...string) *MerchantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MerchantUpsertOne{
		create: _c,
	}
}

type (
	// MerchantUpsertOne is the builder for "upsert"-ing
	//  one Merchant node.
	MerchantUpsertOne struct {
		create *MerchantCreate
	}

	// MerchantUpsert is the "OnConflict" setter.
	MerchantUpsert struct {
		*sql.UpdateSet
	}
)

// SetShopDomain sets the "shop_domain" field.
func (u *MerchantUpsert) SetShopDomain(v string) *MerchantUpsert {
	u.Set(merchant.FieldShopDomain, v)
	return u
}

// UpdateShopDomain sets the "shop_domain" field to the value that was provided on create.
func (u *MerchantUpsert) UpdateShopDomain() *MerchantUpsert {
	u.SetExcluded(merchant.FieldShopDomain)
	return u
}

// SetName sets the "name" field.
func (u *MerchantUpsert) SetName(v string) *MerchantUpsert {
	u.Set(merchant.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MerchantUpsert) UpdateName() *MerchantUpsert {
	u.SetExcluded(merchant.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *MerchantUpsert) ClearName() *MerchantUpsert {
	u.SetNull(merchant.FieldName)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *MerchantUpsert) SetPasswordHash(v string) *MerchantUpsert {
	u.Set(merchant.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *MerchantUpsert) UpdatePasswordHash() *MerchantUpsert {
	u.SetExcluded(merchant.FieldPasswordHash)
	return u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *MerchantUpsert) ClearPasswordHash() *MerchantUpsert {
	u.SetNull(merchant.FieldPasswordHash)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Merchant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(merchant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MerchantUpsertOne) UpdateNewValues() *MerchantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(merchant.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(merchant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Merchant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MerchantUpsertOne) Ignore() *MerchantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MerchantUpsertOne) DoNothing() *MerchantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MerchantCreate.OnConflict
// documentation for more info.
func (u *MerchantUpsertOne) Update(set func(*MerchantUpsert)) *MerchantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MerchantUpsert{UpdateSet: update})
	}))
	return u
}

// SetShopDomain sets the "shop_domain" field.
func (u *MerchantUpsertOne) SetShopDomain(v string) *MerchantUpsertOne {
	return u.Update(func(s *MerchantUpsert) {
		s.SetShopDomain(v)
	})
}

// UpdateShopDomain sets the "shop_domain" field to the value that was provided on create.
func (u *MerchantUpsertOne) UpdateShopDomain() *MerchantUpsertOne {
	return u.Update(func(s *MerchantUpsert) {
		s.UpdateShopDomain()
	})
}

// SetName sets the "name" field.
func (u *MerchantUpsertOne) SetName(v string) *MerchantUpsertOne {
	return u.Update(func(s *MerchantUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MerchantUpsertOne) UpdateName() *MerchantUpsertOne {
	return u.Update(func(s *MerchantUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *MerchantUpsertOne) ClearName() *MerchantUpsertOne {
	return u.Update(func(s *MerchantUpsert) {
		s.ClearName()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *MerchantUpsertOne) SetPasswordHash(v string) *MerchantUpsertOne {
	return u.Update(func(s *MerchantUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *MerchantUpsertOne) UpdatePasswordHash() *MerchantUpsertOne {
	return u.Update(func(s *MerchantUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *MerchantUpsertOne) ClearPasswordHash() *MerchantUpsertOne {
	return u.Update(func(s *MerchantUpsert) {
		s.ClearPasswordHash()
	})
}

// Exec executes the query.
func (u *MerchantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MerchantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MerchantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MerchantUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MerchantUpsertOne.ID is not supported by MySQL driver. Use MerchantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MerchantUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MerchantCreateBulk is the builder for creating many Merchant entities in bulk.
type MerchantCreateBulk struct {
	config
	err      error
	builders []*MerchantCreate
	conflict []sql.ConflictOption
}

// Save creates the Merchant entities in the database.
func (_c *MerchantCreateBulk) Save(ctx context.Context) ([]*Merchant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Merchant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MerchantMutation)
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
func (_c *MerchantCreateBulk) SaveX(ctx context.Context) []*Merchant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MerchantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MerchantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Merchant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MerchantUpsert) {
//			SetShopDomain(v+v).
//		}).
//		Exec(ctx)
func (_c *MerchantCreateBulk) OnConflict(opts ...sql.ConflictOption) *MerchantUpsertBulk {
	_c.conflict = opts
	return &MerchantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Merchant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MerchantCreateBulk) OnConflictColumns(columns ...string) *MerchantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MerchantUpsertBulk{
		create: _c,
	}
}

// MerchantUpsertBulk is the builder for "upsert"-ing
// a bulk of Merchant nodes.
type MerchantUpsertBulk struct {
	create *MerchantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Merchant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(merchant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MerchantUpsertBulk) UpdateNewValues() *MerchantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(merchant.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(merchant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Merchant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MerchantUpsertBulk) Ignore() *MerchantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MerchantUpsertBulk) DoNothing() *MerchantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MerchantCreateBulk.OnConflict
// documentation for more info.
func (u *MerchantUpsertBulk) Update(set func(*MerchantUpsert)) *MerchantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MerchantUpsert{UpdateSet: update})
	}))
	return u
}

// SetShopDomain sets the "shop_domain" field.
func (u *MerchantUpsertBulk) SetShopDomain(v string) *MerchantUpsertBulk {
	return u.Update(func(s *MerchantUpsert) {
		s.SetShopDomain(v)
	})
}

// UpdateShopDomain sets the "shop_domain" field to the value that was provided on create.
func (u *MerchantUpsertBulk) UpdateShopDomain() *MerchantUpsertBulk {
	return u.Update(func(s *MerchantUpsert) {
		s.UpdateShopDomain()
	})
}

// SetName sets the "name" field.
func (u *MerchantUpsertBulk) SetName(v string) *MerchantUpsertBulk {
	return u.Update(func(s *MerchantUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MerchantUpsertBulk) UpdateName() *MerchantUpsertBulk {
	return u.Update(func(s *MerchantUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *MerchantUpsertBulk) ClearName() *MerchantUpsertBulk {
	return u.Update(func(s *MerchantUpsert) {
		s.ClearName()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *MerchantUpsertBulk) SetPasswordHash(v string) *MerchantUpsertBulk {
	return u.Update(func(s *MerchantUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *MerchantUpsertBulk) UpdatePasswordHash() *MerchantUpsertBulk {
	return u.Update(func(s *MerchantUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *MerchantUpsertBulk) ClearPasswordHash() *MerchantUpsertBulk {
	return u.Update(func(s *MerchantUpsert) {
		s.ClearPasswordHash()
	})
}

// Exec executes the query.
func (u *MerchantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MerchantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MerchantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MerchantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
