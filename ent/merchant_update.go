// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"visitor-iq/ent/buyer"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/identitylink"
	"visitor-iq/ent/merchant"
	"visitor-iq/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// MerchantUpdate is the builder for updating Merchant entities.
type MerchantUpdate struct {
	config
	hooks    []Hook
	mutation *MerchantMutation
}

// Where appends a list predicates to the MerchantUpdate builder.
func (_u *MerchantUpdate) Where(ps ...predicate.Merchant) *MerchantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShopDomain sets the "shop_domain" field.
func (_u *MerchantUpdate) SetShopDomain(v string) *MerchantUpdate {
	_u.mutation.SetShopDomain(v)
	return _u
}

// SetNillableShopDomain sets the "shop_domain" field if the given value is not nil.
func (_u *MerchantUpdate) SetNillableShopDomain(v *string) *MerchantUpdate {
	if v != nil {
		_u.SetShopDomain(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MerchantUpdate) SetName(v string) *MerchantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MerchantUpdate) SetNillableName(v *string) *MerchantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *MerchantUpdate) ClearName() *MerchantUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *MerchantUpdate) SetPasswordHash(v string) *MerchantUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *MerchantUpdate) SetNillablePasswordHash(v *string) *MerchantUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *MerchantUpdate) ClearPasswordHash() *MerchantUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// AddFingerprintIDs adds the "fingerprints" edge to the Fingerprint entity by IDs.
func (_u *MerchantUpdate) AddFingerprintIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.AddFingerprintIDs(ids...)
	return _u
}

// AddFingerprints adds the "fingerprints" edges to the Fingerprint entity.
func (_u *MerchantUpdate) AddFingerprints(v ...*Fingerprint) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFingerprintIDs(ids...)
}

// AddIdentityLinkIDs adds the "identity_links" edge to the IdentityLink entity by IDs.
func (_u *MerchantUpdate) AddIdentityLinkIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.AddIdentityLinkIDs(ids...)
	return _u
}

// AddIdentityLinks adds the "identity_links" edges to the IdentityLink entity.
func (_u *MerchantUpdate) AddIdentityLinks(v ...*IdentityLink) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIdentityLinkIDs(ids...)
}

// AddBuyerIDs adds the "buyers" edge to the Buyer entity by IDs.
func (_u *MerchantUpdate) AddBuyerIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.AddBuyerIDs(ids...)
	return _u
}

// AddBuyers adds the "buyers" edges to the Buyer entity.
func (_u *MerchantUpdate) AddBuyers(v ...*Buyer) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBuyerIDs(ids...)
}

// Mutation returns the MerchantMutation object of the builder.
func (_u *MerchantUpdate) Mutation() *MerchantMutation {
	return _u.mutation
}

// ClearFingerprints clears all "fingerprints" edges to the Fingerprint entity.
func (_u *MerchantUpdate) ClearFingerprints() *MerchantUpdate {
	_u.mutation.ClearFingerprints()
	return _u
}

// RemoveFingerprintIDs removes the "fingerprints" edge to Fingerprint entities by IDs.
func (_u *MerchantUpdate) RemoveFingerprintIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.RemoveFingerprintIDs(ids...)
	return _u
}

// RemoveFingerprints removes "fingerprints" edges to Fingerprint entities.
func (_u *MerchantUpdate) RemoveFingerprints(v ...*Fingerprint) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFingerprintIDs(ids...)
}

// ClearIdentityLinks clears all "identity_links" edges to the IdentityLink entity.
func (_u *MerchantUpdate) ClearIdentityLinks() *MerchantUpdate {
	_u.mutation.ClearIdentityLinks()
	return _u
}

// RemoveIdentityLinkIDs removes the "identity_links" edge to IdentityLink entities by IDs.
func (_u *MerchantUpdate) RemoveIdentityLinkIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.RemoveIdentityLinkIDs(ids...)
	return _u
}

// RemoveIdentityLinks removes "identity_links" edges to IdentityLink entities.
func (_u *MerchantUpdate) RemoveIdentityLinks(v ...*IdentityLink) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIdentityLinkIDs(ids...)
}

// ClearBuyers clears all "buyers" edges to the Buyer entity.
func (_u *MerchantUpdate) ClearBuyers() *MerchantUpdate {
	_u.mutation.ClearBuyers()
	return _u
}

// RemoveBuyerIDs removes the "buyers" edge to Buyer entities by IDs.
func (_u *MerchantUpdate) RemoveBuyerIDs(ids ...uuid.UUID) *MerchantUpdate {
	_u.mutation.RemoveBuyerIDs(ids...)
	return _u
}

// RemoveBuyers removes "buyers" edges to Buyer entities.
func (_u *MerchantUpdate) RemoveBuyers(v ...*Buyer) *MerchantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBuyerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MerchantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MerchantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MerchantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MerchantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MerchantUpdate) check() error {
	if v, ok := _u.mutation.ShopDomain(); ok {
		if err := merchant.ShopDomainValidator(v); err != nil {
			return &ValidationError{Name: "shop_domain", err: fmt.Errorf(`ent: validator failed for field "Merchant.shop_domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := merchant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Merchant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := merchant.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "Merchant.password_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *MerchantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(merchant.Table, merchant.Columns, sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ShopDomain(); ok {
		_spec.SetField(merchant.FieldShopDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(merchant.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(merchant.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(merchant.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(merchant.FieldPasswordHash, field.TypeString)
	}
	if _u.mutation.FingerprintsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFingerprintsIDs(); len(nodes) > 0 && !_u.mutation.FingerprintsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FingerprintsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IdentityLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIdentityLinksIDs(); len(nodes) > 0 && !_u.mutation.IdentityLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentityLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBuyersIDs(); len(nodes) > 0 && !_u.mutation.BuyersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{merchant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MerchantUpdateOne is the builder for updating a single Merchant entity.
type MerchantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MerchantMutation
}

// SetShopDomain sets the "shop_domain" field.
func (_u *MerchantUpdateOne) SetShopDomain(v string) *MerchantUpdateOne {
	_u.mutation.SetShopDomain(v)
	return _u
}

// SetNillableShopDomain sets the "shop_domain" field if the given value is not nil.
func (_u *MerchantUpdateOne) SetNillableShopDomain(v *string) *MerchantUpdateOne {
	if v != nil {
		_u.SetShopDomain(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MerchantUpdateOne) SetName(v string) *MerchantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MerchantUpdateOne) SetNillableName(v *string) *MerchantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *MerchantUpdateOne) ClearName() *MerchantUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *MerchantUpdateOne) SetPasswordHash(v string) *MerchantUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *MerchantUpdateOne) SetNillablePasswordHash(v *string) *MerchantUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *MerchantUpdateOne) ClearPasswordHash() *MerchantUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// AddFingerprintIDs adds the "fingerprints" edge to the Fingerprint entity by IDs.
func (_u *MerchantUpdateOne) AddFingerprintIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.AddFingerprintIDs(ids...)
	return _u
}

// AddFingerprints adds the "fingerprints" edges to the Fingerprint entity.
func (_u *MerchantUpdateOne) AddFingerprints(v ...*Fingerprint) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFingerprintIDs(ids...)
}

// AddIdentityLinkIDs adds the "identity_links" edge to the IdentityLink entity by IDs.
func (_u *MerchantUpdateOne) AddIdentityLinkIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.AddIdentityLinkIDs(ids...)
	return _u
}

// AddIdentityLinks adds the "identity_links" edges to the IdentityLink entity.
func (_u *MerchantUpdateOne) AddIdentityLinks(v ...*IdentityLink) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIdentityLinkIDs(ids...)
}

// AddBuyerIDs adds the "buyers" edge to the Buyer entity by IDs.
func (_u *MerchantUpdateOne) AddBuyerIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.AddBuyerIDs(ids...)
	return _u
}

// AddBuyers adds the "buyers" edges to the Buyer entity.
func (_u *MerchantUpdateOne) AddBuyers(v ...*Buyer) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBuyerIDs(ids...)
}

// Mutation returns the MerchantMutation object of the builder.
func (_u *MerchantUpdateOne) Mutation() *MerchantMutation {
	return _u.mutation
}

// ClearFingerprints clears all "fingerprints" edges to the Fingerprint entity.
func (_u *MerchantUpdateOne) ClearFingerprints() *MerchantUpdateOne {
	_u.mutation.ClearFingerprints()
	return _u
}

// RemoveFingerprintIDs removes the "fingerprints" edge to Fingerprint entities by IDs.
func (_u *MerchantUpdateOne) RemoveFingerprintIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.RemoveFingerprintIDs(ids...)
	return _u
}

// RemoveFingerprints removes "fingerprints" edges to Fingerprint entities.
func (_u *MerchantUpdateOne) RemoveFingerprints(v ...*Fingerprint) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFingerprintIDs(ids...)
}

// ClearIdentityLinks clears all "identity_links" edges to the IdentityLink entity.
func (_u *MerchantUpdateOne) ClearIdentityLinks() *MerchantUpdateOne {
	_u.mutation.ClearIdentityLinks()
	return _u
}

// RemoveIdentityLinkIDs removes the "identity_links" edge to IdentityLink entities by IDs.
func (_u *MerchantUpdateOne) RemoveIdentityLinkIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.RemoveIdentityLinkIDs(ids...)
	return _u
}

// RemoveIdentityLinks removes "identity_links" edges to IdentityLink entities.
func (_u *MerchantUpdateOne) RemoveIdentityLinks(v ...*IdentityLink) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIdentityLinkIDs(ids...)
}

// ClearBuyers clears all "buyers" edges to the Buyer entity.
func (_u *MerchantUpdateOne) ClearBuyers() *MerchantUpdateOne {
	_u.mutation.ClearBuyers()
	return _u
}

// RemoveBuyerIDs removes the "buyers" edge to Buyer entities by IDs.
func (_u *MerchantUpdateOne) RemoveBuyerIDs(ids ...uuid.UUID) *MerchantUpdateOne {
	_u.mutation.RemoveBuyerIDs(ids...)
	return _u
}

// RemoveBuyers removes "buyers" edges to Buyer entities.
func (_u *MerchantUpdateOne) RemoveBuyers(v ...*Buyer) *MerchantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBuyerIDs(ids...)
}

// Where appends a list predicates to the MerchantUpdate builder.
func (_u *MerchantUpdateOne) Where(ps ...predicate.Merchant) *MerchantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MerchantUpdateOne) Select(field string, fields ...string) *MerchantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Merchant entity.
func (_u *MerchantUpdateOne) Save(ctx context.Context) (*Merchant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MerchantUpdateOne) SaveX(ctx context.Context) *Merchant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MerchantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MerchantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MerchantUpdateOne) check() error {
	if v, ok := _u.mutation.ShopDomain(); ok {
		if err := merchant.ShopDomainValidator(v); err != nil {
			return &ValidationError{Name: "shop_domain", err: fmt.Errorf(`ent: validator failed for field "Merchant.shop_domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := merchant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Merchant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := merchant.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "Merchant.password_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *MerchantUpdateOne) sqlSave(ctx context.Context) (_node *Merchant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(merchant.Table, merchant.Columns, sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Merchant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, merchant.FieldID)
		for _, f := range fields {
			if !merchant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != merchant.FieldID {
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
	if value, ok := _u.mutation.ShopDomain(); ok {
		_spec.SetField(merchant.FieldShopDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(merchant.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(merchant.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(merchant.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(merchant.FieldPasswordHash, field.TypeString)
	}
	if _u.mutation.FingerprintsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFingerprintsIDs(); len(nodes) > 0 && !_u.mutation.FingerprintsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FingerprintsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IdentityLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIdentityLinksIDs(); len(nodes) > 0 && !_u.mutation.IdentityLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentityLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBuyersIDs(); len(nodes) > 0 && !_u.mutation.BuyersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Merchant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{merchant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
