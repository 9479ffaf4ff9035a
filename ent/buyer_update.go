// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"visitor-iq/ent/buyer"
	"visitor-iq/ent/company"
	"visitor-iq/ent/merchant"
	"visitor-iq/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BuyerUpdate is the builder for updating Buyer entities.
type BuyerUpdate struct {
	config
	hooks    []Hook
	mutation *BuyerMutation
}

// Where appends a list predicates to the BuyerUpdate builder.
func (_u *BuyerUpdate) Where(ps ...predicate.Buyer) *BuyerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMerchantID sets the "merchant_id" field.
func (_u *BuyerUpdate) SetMerchantID(v uuid.UUID) *BuyerUpdate {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *BuyerUpdate) SetNillableMerchantID(v *uuid.UUID) *BuyerUpdate {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BuyerUpdate) SetEmail(v string) *BuyerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BuyerUpdate) SetNillableEmail(v *string) *BuyerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (_u *BuyerUpdate) SetPlatformCustomerID(v int64) *BuyerUpdate {
	_u.mutation.ResetPlatformCustomerID()
	_u.mutation.SetPlatformCustomerID(v)
	return _u
}

// SetNillablePlatformCustomerID sets the "platform_customer_id" field if the given value is not nil.
func (_u *BuyerUpdate) SetNillablePlatformCustomerID(v *int64) *BuyerUpdate {
	if v != nil {
		_u.SetPlatformCustomerID(*v)
	}
	return _u
}

// AddPlatformCustomerID adds value to the "platform_customer_id" field.
func (_u *BuyerUpdate) AddPlatformCustomerID(v int64) *BuyerUpdate {
	_u.mutation.AddPlatformCustomerID(v)
	return _u
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (_u *BuyerUpdate) ClearPlatformCustomerID() *BuyerUpdate {
	_u.mutation.ClearPlatformCustomerID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *BuyerUpdate) SetCompanyID(v uuid.UUID) *BuyerUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *BuyerUpdate) SetNillableCompanyID(v *uuid.UUID) *BuyerUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *BuyerUpdate) ClearCompanyID() *BuyerUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetName sets the "name" field.
func (_u *BuyerUpdate) SetName(v string) *BuyerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BuyerUpdate) SetNillableName(v *string) *BuyerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *BuyerUpdate) ClearName() *BuyerUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *BuyerUpdate) SetMerchant(v *Merchant) *BuyerUpdate {
	return _u.SetMerchantID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *BuyerUpdate) SetCompany(v *Company) *BuyerUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the BuyerMutation object of the builder.
func (_u *BuyerUpdate) Mutation() *BuyerMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *BuyerUpdate) ClearMerchant() *BuyerUpdate {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *BuyerUpdate) ClearCompany() *BuyerUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BuyerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuyerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BuyerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuyerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuyerUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := buyer.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Buyer.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := buyer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Buyer.name": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Buyer.merchant"`)
	}
	return nil
}

func (_u *BuyerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(buyer.Table, buyer.Columns, sqlgraph.NewFieldSpec(buyer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(buyer.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformCustomerID(); ok {
		_spec.SetField(buyer.FieldPlatformCustomerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlatformCustomerID(); ok {
		_spec.AddField(buyer.FieldPlatformCustomerID, field.TypeInt64, value)
	}
	if _u.mutation.PlatformCustomerIDCleared() {
		_spec.ClearField(buyer.FieldPlatformCustomerID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(buyer.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(buyer.FieldName, field.TypeString)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{buyer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BuyerUpdateOne is the builder for updating a single Buyer entity.
type BuyerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BuyerMutation
}

// SetMerchantID sets the "merchant_id" field.
func (_u *BuyerUpdateOne) SetMerchantID(v uuid.UUID) *BuyerUpdateOne {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *BuyerUpdateOne) SetNillableMerchantID(v *uuid.UUID) *BuyerUpdateOne {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BuyerUpdateOne) SetEmail(v string) *BuyerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BuyerUpdateOne) SetNillableEmail(v *string) *BuyerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (_u *BuyerUpdateOne) SetPlatformCustomerID(v int64) *BuyerUpdateOne {
	_u.mutation.ResetPlatformCustomerID()
	_u.mutation.SetPlatformCustomerID(v)
	return _u
}

// SetNillablePlatformCustomerID sets the "platform_customer_id" field if the given value is not nil.
func (_u *BuyerUpdateOne) SetNillablePlatformCustomerID(v *int64) *BuyerUpdateOne {
	if v != nil {
		_u.SetPlatformCustomerID(*v)
	}
	return _u
}

// AddPlatformCustomerID adds value to the "platform_customer_id" field.
func (_u *BuyerUpdateOne) AddPlatformCustomerID(v int64) *BuyerUpdateOne {
	_u.mutation.AddPlatformCustomerID(v)
	return _u
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (_u *BuyerUpdateOne) ClearPlatformCustomerID() *BuyerUpdateOne {
	_u.mutation.ClearPlatformCustomerID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *BuyerUpdateOne) SetCompanyID(v uuid.UUID) *BuyerUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *BuyerUpdateOne) SetNillableCompanyID(v *uuid.UUID) *BuyerUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *BuyerUpdateOne) ClearCompanyID() *BuyerUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetName sets the "name" field.
func (_u *BuyerUpdateOne) SetName(v string) *BuyerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BuyerUpdateOne) SetNillableName(v *string) *BuyerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *BuyerUpdateOne) ClearName() *BuyerUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *BuyerUpdateOne) SetMerchant(v *Merchant) *BuyerUpdateOne {
	return _u.SetMerchantID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *BuyerUpdateOne) SetCompany(v *Company) *BuyerUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the BuyerMutation object of the builder.
func (_u *BuyerUpdateOne) Mutation() *BuyerMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *BuyerUpdateOne) ClearMerchant() *BuyerUpdateOne {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *BuyerUpdateOne) ClearCompany() *BuyerUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the BuyerUpdate builder.
func (_u *BuyerUpdateOne) Where(ps ...predicate.Buyer) *BuyerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BuyerUpdateOne) Select(field string, fields ...string) *BuyerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Buyer entity.
func (_u *BuyerUpdateOne) Save(ctx context.Context) (*Buyer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuyerUpdateOne) SaveX(ctx context.Context) *Buyer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BuyerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuyerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuyerUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := buyer.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Buyer.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := buyer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Buyer.name": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Buyer.merchant"`)
	}
	return nil
}

func (_u *BuyerUpdateOne) sqlSave(ctx context.Context) (_node *Buyer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(buyer.Table, buyer.Columns, sqlgraph.NewFieldSpec(buyer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Buyer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, buyer.FieldID)
		for _, f := range fields {
			if !buyer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != buyer.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(buyer.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformCustomerID(); ok {
		_spec.SetField(buyer.FieldPlatformCustomerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlatformCustomerID(); ok {
		_spec.AddField(buyer.FieldPlatformCustomerID, field.TypeInt64, value)
	}
	if _u.mutation.PlatformCustomerIDCleared() {
		_spec.ClearField(buyer.FieldPlatformCustomerID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(buyer.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(buyer.FieldName, field.TypeString)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Buyer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{buyer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
