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

// IdentityLinkCreate is the builder for creating a IdentityLink entity.
type IdentityLinkCreate struct {
	config
	mutation *IdentityLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMerchantID sets the "merchant_id" field.
func (_c *IdentityLinkCreate) SetMerchantID(v uuid.UUID) *IdentityLinkCreate {
	_c.mutation.SetMerchantID(v)
	return _c
}

// SetFingerprintID sets the "fingerprint_id" field.
func (_c *IdentityLinkCreate) SetFingerprintID(v uuid.UUID) *IdentityLinkCreate {
	_c.mutation.SetFingerprintID(v)
	return _c
}

// SetBuyerID sets the "buyer_id" field.
func (_c *IdentityLinkCreate) SetBuyerID(v uuid.UUID) *IdentityLinkCreate {
	_c.mutation.SetBuyerID(v)
	return _c
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableBuyerID(v *uuid.UUID) *IdentityLinkCreate {
	if v != nil {
		_c.SetBuyerID(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *IdentityLinkCreate) SetCompanyID(v uuid.UUID) *IdentityLinkCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableCompanyID(v *uuid.UUID) *IdentityLinkCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (_c *IdentityLinkCreate) SetPlatformCustomerID(v int64) *IdentityLinkCreate {
	_c.mutation.SetPlatformCustomerID(v)
	return _c
}

// SetNillablePlatformCustomerID sets the "platform_customer_id" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillablePlatformCustomerID(v *int64) *IdentityLinkCreate {
	if v != nil {
		_c.SetPlatformCustomerID(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *IdentityLinkCreate) SetEmail(v string) *IdentityLinkCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableEmail(v *string) *IdentityLinkCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *IdentityLinkCreate) SetSessionID(v string) *IdentityLinkCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableSessionID(v *string) *IdentityLinkCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetAuthToken sets the "auth_token" field.
func (_c *IdentityLinkCreate) SetAuthToken(v string) *IdentityLinkCreate {
	_c.mutation.SetAuthToken(v)
	return _c
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableAuthToken(v *string) *IdentityLinkCreate {
	if v != nil {
		_c.SetAuthToken(*v)
	}
	return _c
}

// SetMatchType sets the "match_type" field.
func (_c *IdentityLinkCreate) SetMatchType(v identitylink.MatchType) *IdentityLinkCreate {
	_c.mutation.SetMatchType(v)
	return _c
}

// SetMatchConfidence sets the "match_confidence" field.
func (_c *IdentityLinkCreate) SetMatchConfidence(v float64) *IdentityLinkCreate {
	_c.mutation.SetMatchConfidence(v)
	return _c
}

// SetNillableMatchConfidence sets the "match_confidence" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableMatchConfidence(v *float64) *IdentityLinkCreate {
	if v != nil {
		_c.SetMatchConfidence(*v)
	}
	return _c
}

// SetPageViews sets the "page_views" field.
func (_c *IdentityLinkCreate) SetPageViews(v int) *IdentityLinkCreate {
	_c.mutation.SetPageViews(v)
	return _c
}

// SetNillablePageViews sets the "page_views" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillablePageViews(v *int) *IdentityLinkCreate {
	if v != nil {
		_c.SetPageViews(*v)
	}
	return _c
}

// SetProductViews sets the "product_views" field.
func (_c *IdentityLinkCreate) SetProductViews(v int) *IdentityLinkCreate {
	_c.mutation.SetProductViews(v)
	return _c
}

// SetNillableProductViews sets the "product_views" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableProductViews(v *int) *IdentityLinkCreate {
	if v != nil {
		_c.SetProductViews(*v)
	}
	return _c
}

// SetAddToCarts sets the "add_to_carts" field.
func (_c *IdentityLinkCreate) SetAddToCarts(v int) *IdentityLinkCreate {
	_c.mutation.SetAddToCarts(v)
	return _c
}

// SetNillableAddToCarts sets the "add_to_carts" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableAddToCarts(v *int) *IdentityLinkCreate {
	if v != nil {
		_c.SetAddToCarts(*v)
	}
	return _c
}

// SetTotalOrders sets the "total_orders" field.
func (_c *IdentityLinkCreate) SetTotalOrders(v int) *IdentityLinkCreate {
	_c.mutation.SetTotalOrders(v)
	return _c
}

// SetNillableTotalOrders sets the "total_orders" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableTotalOrders(v *int) *IdentityLinkCreate {
	if v != nil {
		_c.SetTotalOrders(*v)
	}
	return _c
}

// SetTotalRevenue sets the "total_revenue" field.
func (_c *IdentityLinkCreate) SetTotalRevenue(v float64) *IdentityLinkCreate {
	_c.mutation.SetTotalRevenue(v)
	return _c
}

// SetNillableTotalRevenue sets the "total_revenue" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableTotalRevenue(v *float64) *IdentityLinkCreate {
	if v != nil {
		_c.SetTotalRevenue(*v)
	}
	return _c
}

// SetLastPageURL sets the "last_page_url" field.
func (_c *IdentityLinkCreate) SetLastPageURL(v string) *IdentityLinkCreate {
	_c.mutation.SetLastPageURL(v)
	return _c
}

// SetNillableLastPageURL sets the "last_page_url" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableLastPageURL(v *string) *IdentityLinkCreate {
	if v != nil {
		_c.SetLastPageURL(*v)
	}
	return _c
}

// SetLastProductViewed sets the "last_product_viewed" field.
func (_c *IdentityLinkCreate) SetLastProductViewed(v string) *IdentityLinkCreate {
	_c.mutation.SetLastProductViewed(v)
	return _c
}

// SetNillableLastProductViewed sets the "last_product_viewed" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableLastProductViewed(v *string) *IdentityLinkCreate {
	if v != nil {
		_c.SetLastProductViewed(*v)
	}
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *IdentityLinkCreate) SetEngagementScore(v int) *IdentityLinkCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableEngagementScore(v *int) *IdentityLinkCreate {
	if v != nil {
		_c.SetEngagementScore(*v)
	}
	return _c
}

// SetBuyerIntent sets the "buyer_intent" field.
func (_c *IdentityLinkCreate) SetBuyerIntent(v identitylink.BuyerIntent) *IdentityLinkCreate {
	_c.mutation.SetBuyerIntent(v)
	return _c
}

// SetNillableBuyerIntent sets the "buyer_intent" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableBuyerIntent(v *identitylink.BuyerIntent) *IdentityLinkCreate {
	if v != nil {
		_c.SetBuyerIntent(*v)
	}
	return _c
}

// SetSegment sets the "segment" field.
func (_c *IdentityLinkCreate) SetSegment(v identitylink.Segment) *IdentityLinkCreate {
	_c.mutation.SetSegment(v)
	return _c
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableSegment(v *identitylink.Segment) *IdentityLinkCreate {
	if v != nil {
		_c.SetSegment(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IdentityLinkCreate) SetCreatedAt(v time.Time) *IdentityLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableCreatedAt(v *time.Time) *IdentityLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IdentityLinkCreate) SetUpdatedAt(v time.Time) *IdentityLinkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableUpdatedAt(v *time.Time) *IdentityLinkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IdentityLinkCreate) SetID(v uuid.UUID) *IdentityLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IdentityLinkCreate) SetNillableID(v *uuid.UUID) *IdentityLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_c *IdentityLinkCreate) SetMerchant(v *Merchant) *IdentityLinkCreate {
	return _c.SetMerchantID(v.ID)
}

// SetFingerprint sets the "fingerprint" edge to the Fingerprint entity.
func (_c *IdentityLinkCreate) SetFingerprint(v *Fingerprint) *IdentityLinkCreate {
	return _c.SetFingerprintID(v.ID)
}

// SetBuyer sets the "buyer" edge to the Buyer entity.
func (_c *IdentityLinkCreate) SetBuyer(v *Buyer) *IdentityLinkCreate {
	return _c.SetBuyerID(v.ID)
}

// Mutation returns the IdentityLinkMutation object of the builder.
func (_c *IdentityLinkCreate) Mutation() *IdentityLinkMutation {
	return _c.mutation
}

// Save creates the IdentityLink in the database.
func (_c *IdentityLinkCreate) Save(ctx context.Context) (*IdentityLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IdentityLinkCreate) SaveX(ctx context.Context) *IdentityLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdentityLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdentityLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IdentityLinkCreate) defaults() {
	if _, ok := _c.mutation.MatchConfidence(); !ok {
		v := identitylink.DefaultMatchConfidence
		_c.mutation.SetMatchConfidence(v)
	}
	if _, ok := _c.mutation.PageViews(); !ok {
		v := identitylink.DefaultPageViews
		_c.mutation.SetPageViews(v)
	}
	if _, ok := _c.mutation.ProductViews(); !ok {
		v := identitylink.DefaultProductViews
		_c.mutation.SetProductViews(v)
	}
	if _, ok := _c.mutation.AddToCarts(); !ok {
		v := identitylink.DefaultAddToCarts
		_c.mutation.SetAddToCarts(v)
	}
	if _, ok := _c.mutation.TotalOrders(); !ok {
		v := identitylink.DefaultTotalOrders
		_c.mutation.SetTotalOrders(v)
	}
	if _, ok := _c.mutation.TotalRevenue(); !ok {
		v := identitylink.DefaultTotalRevenue
		_c.mutation.SetTotalRevenue(v)
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		v := identitylink.DefaultEngagementScore
		_c.mutation.SetEngagementScore(v)
	}
	if _, ok := _c.mutation.BuyerIntent(); !ok {
		v := identitylink.DefaultBuyerIntent
		_c.mutation.SetBuyerIntent(v)
	}
	if _, ok := _c.mutation.Segment(); !ok {
		v := identitylink.DefaultSegment
		_c.mutation.SetSegment(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := identitylink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := identitylink.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := identitylink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IdentityLinkCreate) check() error {
	if _, ok := _c.mutation.MerchantID(); !ok {
		return &ValidationError{Name: "merchant_id", err: errors.New(`ent: missing required field "IdentityLink.merchant_id"`)}
	}
	if _, ok := _c.mutation.FingerprintID(); !ok {
		return &ValidationError{Name: "fingerprint_id", err: errors.New(`ent: missing required field "IdentityLink.fingerprint_id"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := identitylink.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := identitylink.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.session_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AuthToken(); ok {
		if err := identitylink.AuthTokenValidator(v); err != nil {
			return &ValidationError{Name: "auth_token", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.auth_token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchType(); !ok {
		return &ValidationError{Name: "match_type", err: errors.New(`ent: missing required field "IdentityLink.match_type"`)}
	}
	if v, ok := _c.mutation.MatchType(); ok {
		if err := identitylink.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.match_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchConfidence(); !ok {
		return &ValidationError{Name: "match_confidence", err: errors.New(`ent: missing required field "IdentityLink.match_confidence"`)}
	}
	if v, ok := _c.mutation.MatchConfidence(); ok {
		if err := identitylink.MatchConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "match_confidence", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.match_confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageViews(); !ok {
		return &ValidationError{Name: "page_views", err: errors.New(`ent: missing required field "IdentityLink.page_views"`)}
	}
	if _, ok := _c.mutation.ProductViews(); !ok {
		return &ValidationError{Name: "product_views", err: errors.New(`ent: missing required field "IdentityLink.product_views"`)}
	}
	if _, ok := _c.mutation.AddToCarts(); !ok {
		return &ValidationError{Name: "add_to_carts", err: errors.New(`ent: missing required field "IdentityLink.add_to_carts"`)}
	}
	if _, ok := _c.mutation.TotalOrders(); !ok {
		return &ValidationError{Name: "total_orders", err: errors.New(`ent: missing required field "IdentityLink.total_orders"`)}
	}
	if _, ok := _c.mutation.TotalRevenue(); !ok {
		return &ValidationError{Name: "total_revenue", err: errors.New(`ent: missing required field "IdentityLink.total_revenue"`)}
	}
	if v, ok := _c.mutation.LastPageURL(); ok {
		if err := identitylink.LastPageURLValidator(v); err != nil {
			return &ValidationError{Name: "last_page_url", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.last_page_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastProductViewed(); ok {
		if err := identitylink.LastProductViewedValidator(v); err != nil {
			return &ValidationError{Name: "last_product_viewed", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.last_product_viewed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "IdentityLink.engagement_score"`)}
	}
	if _, ok := _c.mutation.BuyerIntent(); !ok {
		return &ValidationError{Name: "buyer_intent", err: errors.New(`ent: missing required field "IdentityLink.buyer_intent"`)}
	}
	if v, ok := _c.mutation.BuyerIntent(); ok {
		if err := identitylink.BuyerIntentValidator(v); err != nil {
			return &ValidationError{Name: "buyer_intent", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.buyer_intent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Segment(); !ok {
		return &ValidationError{Name: "segment", err: errors.New(`ent: missing required field "IdentityLink.segment"`)}
	}
	if v, ok := _c.mutation.Segment(); ok {
		if err := identitylink.SegmentValidator(v); err != nil {
			return &ValidationError{Name: "segment", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.segment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IdentityLink.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IdentityLink.updated_at"`)}
	}
	if len(_c.mutation.MerchantIDs()) == 0 {
		return &ValidationError{Name: "merchant", err: errors.New(`ent: missing required edge "IdentityLink.merchant"`)}
	}
	if len(_c.mutation.FingerprintIDs()) == 0 {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required edge "IdentityLink.fingerprint"`)}
	}
	return nil
}

func (_c *IdentityLinkCreate) sqlSave(ctx context.Context) (*IdentityLink, error) {
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

func (_c *IdentityLinkCreate) createSpec() (*IdentityLink, *sqlgraph.CreateSpec) {
	var (
		_node = &IdentityLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(identitylink.Table, sqlgraph.NewFieldSpec(identitylink.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(identitylink.FieldCompanyID, field.TypeUUID, value)
		_node.CompanyID = &value
	}
	if value, ok := _c.mutation.PlatformCustomerID(); ok {
		_spec.SetField(identitylink.FieldPlatformCustomerID, field.TypeInt64, value)
		_node.PlatformCustomerID = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(identitylink.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(identitylink.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.AuthToken(); ok {
		_spec.SetField(identitylink.FieldAuthToken, field.TypeString, value)
		_node.AuthToken = &value
	}
	if value, ok := _c.mutation.MatchType(); ok {
		_spec.SetField(identitylink.FieldMatchType, field.TypeEnum, value)
		_node.MatchType = value
	}
	if value, ok := _c.mutation.MatchConfidence(); ok {
		_spec.SetField(identitylink.FieldMatchConfidence, field.TypeFloat64, value)
		_node.MatchConfidence = value
	}
	if value, ok := _c.mutation.PageViews(); ok {
		_spec.SetField(identitylink.FieldPageViews, field.TypeInt, value)
		_node.PageViews = value
	}
	if value, ok := _c.mutation.ProductViews(); ok {
		_spec.SetField(identitylink.FieldProductViews, field.TypeInt, value)
		_node.ProductViews = value
	}
	if value, ok := _c.mutation.AddToCarts(); ok {
		_spec.SetField(identitylink.FieldAddToCarts, field.TypeInt, value)
		_node.AddToCarts = value
	}
	if value, ok := _c.mutation.TotalOrders(); ok {
		_spec.SetField(identitylink.FieldTotalOrders, field.TypeInt, value)
		_node.TotalOrders = value
	}
	if value, ok := _c.mutation.TotalRevenue(); ok {
		_spec.SetField(identitylink.FieldTotalRevenue, field.TypeFloat64, value)
		_node.TotalRevenue = value
	}
	if value, ok := _c.mutation.LastPageURL(); ok {
		_spec.SetField(identitylink.FieldLastPageURL, field.TypeString, value)
		_node.LastPageURL = value
	}
	if value, ok := _c.mutation.LastProductViewed(); ok {
		_spec.SetField(identitylink.FieldLastProductViewed, field.TypeString, value)
		_node.LastProductViewed = value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(identitylink.FieldEngagementScore, field.TypeInt, value)
		_node.EngagementScore = value
	}
	if value, ok := _c.mutation.BuyerIntent(); ok {
		_spec.SetField(identitylink.FieldBuyerIntent, field.TypeEnum, value)
		_node.BuyerIntent = value
	}
	if value, ok := _c.mutation.Segment(); ok {
		_spec.SetField(identitylink.FieldSegment, field.TypeEnum, value)
		_node.Segment = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(identitylink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(identitylink.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MerchantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   identitylink.MerchantTable,
			Columns: []string{identitylink.MerchantColumn},
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
	if nodes := _c.mutation.FingerprintIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   identitylink.FingerprintTable,
			Columns: []string{identitylink.FingerprintColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FingerprintID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BuyerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   identitylink.BuyerTable,
			Columns: []string{identitylink.BuyerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(buyer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BuyerID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IdentityLink.Create().
//		SetMerchantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IdentityLinkUpsert) {
//			SetMerchantID(v+v).
//		}).
//		Exec(ctx)
func (_c *IdentityLinkCreate) OnConflict(opts ...sql.ConflictOption) *IdentityLinkUpsertOne {
	_c.conflict = opts
	return &IdentityLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IdentityLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IdentityLinkCreate) OnConflictColumns(columns ...string) *IdentityLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IdentityLinkUpsertOne{
		create: _c,
	}
}

type (
	// IdentityLinkUpsertOne is the builder for "upsert"-ing
	//  one IdentityLink node.
	IdentityLinkUpsertOne struct {
		create *IdentityLinkCreate
	}

	// IdentityLinkUpsert is the "OnConflict" setter.
	IdentityLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetMerchantID sets the "merchant_id" field.
func (u *IdentityLinkUpsert) SetMerchantID(v uuid.UUID) *IdentityLinkUpsert {
	u.Set(identitylink.FieldMerchantID, v)
	return u
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateMerchantID() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldMerchantID)
	return u
}

// SetFingerprintID sets the "fingerprint_id" field.
func (u *IdentityLinkUpsert) SetFingerprintID(v uuid.UUID) *IdentityLinkUpsert {
	u.Set(identitylink.FieldFingerprintID, v)
	return u
}

// UpdateFingerprintID sets the "fingerprint_id" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateFingerprintID() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldFingerprintID)
	return u
}

// SetBuyerID sets the "buyer_id" field.
func (u *IdentityLinkUpsert) SetBuyerID(v uuid.UUID) *IdentityLinkUpsert {
	u.Set(identitylink.FieldBuyerID, v)
	return u
}

// UpdateBuyerID sets the "buyer_id" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateBuyerID() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldBuyerID)
	return u
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (u *IdentityLinkUpsert) ClearBuyerID() *IdentityLinkUpsert {
	u.SetNull(identitylink.FieldBuyerID)
	return u
}

// SetCompanyID sets the "company_id" field.
func (u *IdentityLinkUpsert) SetCompanyID(v uuid.UUID) *IdentityLinkUpsert {
	u.Set(identitylink.FieldCompanyID, v)
	return u
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateCompanyID() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldCompanyID)
	return u
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *IdentityLinkUpsert) ClearCompanyID() *IdentityLinkUpsert {
	u.SetNull(identitylink.FieldCompanyID)
	return u
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (u *IdentityLinkUpsert) SetPlatformCustomerID(v int64) *IdentityLinkUpsert {
	u.Set(identitylink.FieldPlatformCustomerID, v)
	return u
}

// UpdatePlatformCustomerID sets the "platform_customer_id" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdatePlatformCustomerID() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldPlatformCustomerID)
	return u
}

// AddPlatformCustomerID adds v to the "platform_customer_id" field.
func (u *IdentityLinkUpsert) AddPlatformCustomerID(v int64) *IdentityLinkUpsert {
	u.Add(identitylink.FieldPlatformCustomerID, v)
	return u
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (u *IdentityLinkUpsert) ClearPlatformCustomerID() *IdentityLinkUpsert {
	u.SetNull(identitylink.FieldPlatformCustomerID)
	return u
}

// SetEmail sets the "email" field.
func (u *IdentityLinkUpsert) SetEmail(v string) *IdentityLinkUpsert {
	u.Set(identitylink.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateEmail() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *IdentityLinkUpsert) ClearEmail() *IdentityLinkUpsert {
	u.SetNull(identitylink.FieldEmail)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *IdentityLinkUpsert) SetSessionID(v string) *IdentityLinkUpsert {
	u.Set(identitylink.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateSessionID() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *IdentityLinkUpsert) ClearSessionID() *IdentityLinkUpsert {
	u.SetNull(identitylink.FieldSessionID)
	return u
}

// SetAuthToken sets the "auth_token" field.
func (u *IdentityLinkUpsert) SetAuthToken(v string) *IdentityLinkUpsert {
	u.Set(identitylink.FieldAuthToken, v)
	return u
}

// UpdateAuthToken sets the "auth_token" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateAuthToken() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldAuthToken)
	return u
}

// ClearAuthToken clears the value of the "auth_token" field.
func (u *IdentityLinkUpsert) ClearAuthToken() *IdentityLinkUpsert {
	u.SetNull(identitylink.FieldAuthToken)
	return u
}

// SetMatchType sets the "match_type" field.
func (u *IdentityLinkUpsert) SetMatchType(v identitylink.MatchType) *IdentityLinkUpsert {
	u.Set(identitylink.FieldMatchType, v)
	return u
}

// UpdateMatchType sets the "match_type" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateMatchType() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldMatchType)
	return u
}

// SetMatchConfidence sets the "match_confidence" field.
func (u *IdentityLinkUpsert) SetMatchConfidence(v float64) *IdentityLinkUpsert {
	u.Set(identitylink.FieldMatchConfidence, v)
	return u
}

// UpdateMatchConfidence sets the "match_confidence" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateMatchConfidence() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldMatchConfidence)
	return u
}

// AddMatchConfidence adds v to the "match_confidence" field.
func (u *IdentityLinkUpsert) AddMatchConfidence(v float64) *IdentityLinkUpsert {
	u.Add(identitylink.FieldMatchConfidence, v)
	return u
}

// SetPageViews sets the "page_views" field.
func (u *IdentityLinkUpsert) SetPageViews(v int) *IdentityLinkUpsert {
	u.Set(identitylink.FieldPageViews, v)
	return u
}

// UpdatePageViews sets the "page_views" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdatePageViews() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldPageViews)
	return u
}

// AddPageViews adds v to the "page_views" field.
func (u *IdentityLinkUpsert) AddPageViews(v int) *IdentityLinkUpsert {
	u.Add(identitylink.FieldPageViews, v)
	return u
}

// SetProductViews sets the "product_views" field.
func (u *IdentityLinkUpsert) SetProductViews(v int) *IdentityLinkUpsert {
	u.Set(identitylink.FieldProductViews, v)
	return u
}

// UpdateProductViews sets the "product_views" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateProductViews() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldProductViews)
	return u
}

// AddProductViews adds v to the "product_views" field.
func (u *IdentityLinkUpsert) AddProductViews(v int) *IdentityLinkUpsert {
	u.Add(identitylink.FieldProductViews, v)
	return u
}

// SetAddToCarts sets the "add_to_carts" field.
func (u *IdentityLinkUpsert) SetAddToCarts(v int) *IdentityLinkUpsert {
	u.Set(identitylink.FieldAddToCarts, v)
	return u
}

// UpdateAddToCarts sets the "add_to_carts" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateAddToCarts() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldAddToCarts)
	return u
}

// AddAddToCarts adds v to the "add_to_carts" field.
func (u *IdentityLinkUpsert) AddAddToCarts(v int) *IdentityLinkUpsert {
	u.Add(identitylink.FieldAddToCarts, v)
	return u
}

// SetTotalOrders sets the "total_orders" field.
func (u *IdentityLinkUpsert) SetTotalOrders(v int) *IdentityLinkUpsert {
	u.Set(identitylink.FieldTotalOrders, v)
	return u
}

// UpdateTotalOrders sets the "total_orders" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateTotalOrders() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldTotalOrders)
	return u
}

// AddTotalOrders adds v to the "total_orders" field.
func (u *IdentityLinkUpsert) AddTotalOrders(v int) *IdentityLinkUpsert {
	u.Add(identitylink.FieldTotalOrders, v)
	return u
}

// SetTotalRevenue sets the "total_revenue" field.
func (u *IdentityLinkUpsert) SetTotalRevenue(v float64) *IdentityLinkUpsert {
	u.Set(identitylink.FieldTotalRevenue, v)
	return u
}

// UpdateTotalRevenue sets the "total_revenue" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateTotalRevenue() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldTotalRevenue)
	return u
}

// AddTotalRevenue adds v to the "total_revenue" field.
func (u *IdentityLinkUpsert) AddTotalRevenue(v float64) *IdentityLinkUpsert {
	u.Add(identitylink.FieldTotalRevenue, v)
	return u
}

// SetLastPageURL sets the "last_page_url" field.
func (u *IdentityLinkUpsert) SetLastPageURL(v string) *IdentityLinkUpsert {
	u.Set(identitylink.FieldLastPageURL, v)
	return u
}

// UpdateLastPageURL sets the "last_page_url" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateLastPageURL() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldLastPageURL)
	return u
}

// ClearLastPageURL clears the value of the "last_page_url" field.
func (u *IdentityLinkUpsert) ClearLastPageURL() *IdentityLinkUpsert {
	u.SetNull(identitylink.FieldLastPageURL)
	return u
}

// SetLastProductViewed sets the "last_product_viewed" field.
func (u *IdentityLinkUpsert) SetLastProductViewed(v string) *IdentityLinkUpsert {
	u.Set(identitylink.FieldLastProductViewed, v)
	return u
}

// UpdateLastProductViewed sets the "last_product_viewed" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateLastProductViewed() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldLastProductViewed)
	return u
}

// ClearLastProductViewed clears the value of the "last_product_viewed" field.
func (u *IdentityLinkUpsert) ClearLastProductViewed() *IdentityLinkUpsert {
	u.SetNull(identitylink.FieldLastProductViewed)
	return u
}

// SetEngagementScore sets the "engagement_score" field.
func (u *IdentityLinkUpsert) SetEngagementScore(v int) *IdentityLinkUpsert {
	u.Set(identitylink.FieldEngagementScore, v)
	return u
}

// UpdateEngagementScore sets the "engagement_score" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateEngagementScore() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldEngagementScore)
	return u
}

// AddEngagementScore adds v to the "engagement_score" field.
func (u *IdentityLinkUpsert) AddEngagementScore(v int) *IdentityLinkUpsert {
	u.Add(identitylink.FieldEngagementScore, v)
	return u
}

// SetBuyerIntent sets the "buyer_intent" field.
func (u *IdentityLinkUpsert) SetBuyerIntent(v identitylink.BuyerIntent) *IdentityLinkUpsert {
	u.Set(identitylink.FieldBuyerIntent, v)
	return u
}

// UpdateBuyerIntent sets the "buyer_intent" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateBuyerIntent() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldBuyerIntent)
	return u
}

// SetSegment sets the "segment" field.
func (u *IdentityLinkUpsert) SetSegment(v identitylink.Segment) *IdentityLinkUpsert {
	u.Set(identitylink.FieldSegment, v)
	return u
}

// UpdateSegment sets the "segment" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateSegment() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldSegment)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IdentityLinkUpsert) SetUpdatedAt(v time.Time) *IdentityLinkUpsert {
	u.Set(identitylink.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IdentityLinkUpsert) UpdateUpdatedAt() *IdentityLinkUpsert {
	u.SetExcluded(identitylink.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.IdentityLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(identitylink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IdentityLinkUpsertOne) UpdateNewValues() *IdentityLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(identitylink.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(identitylink.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IdentityLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IdentityLinkUpsertOne) Ignore() *IdentityLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IdentityLinkUpsertOne) DoNothing() *IdentityLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IdentityLinkCreate.OnConflict
// documentation for more info.
func (u *IdentityLinkUpsertOne) Update(set func(*IdentityLinkUpsert)) *IdentityLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IdentityLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetMerchantID sets the "merchant_id" field.
func (u *IdentityLinkUpsertOne) SetMerchantID(v uuid.UUID) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetMerchantID(v)
	})
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateMerchantID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateMerchantID()
	})
}

// SetFingerprintID sets the "fingerprint_id" field.
func (u *IdentityLinkUpsertOne) SetFingerprintID(v uuid.UUID) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetFingerprintID(v)
	})
}

// UpdateFingerprintID sets the "fingerprint_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateFingerprintID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateFingerprintID()
	})
}

// SetBuyerID sets the "buyer_id" field.
func (u *IdentityLinkUpsertOne) SetBuyerID(v uuid.UUID) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetBuyerID(v)
	})
}

// UpdateBuyerID sets the "buyer_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateBuyerID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateBuyerID()
	})
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (u *IdentityLinkUpsertOne) ClearBuyerID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearBuyerID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *IdentityLinkUpsertOne) SetCompanyID(v uuid.UUID) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateCompanyID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateCompanyID()
	})
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *IdentityLinkUpsertOne) ClearCompanyID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearCompanyID()
	})
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (u *IdentityLinkUpsertOne) SetPlatformCustomerID(v int64) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetPlatformCustomerID(v)
	})
}

// AddPlatformCustomerID adds v to the "platform_customer_id" field.
func (u *IdentityLinkUpsertOne) AddPlatformCustomerID(v int64) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddPlatformCustomerID(v)
	})
}

// UpdatePlatformCustomerID sets the "platform_customer_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdatePlatformCustomerID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdatePlatformCustomerID()
	})
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (u *IdentityLinkUpsertOne) ClearPlatformCustomerID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearPlatformCustomerID()
	})
}

// SetEmail sets the "email" field.
func (u *IdentityLinkUpsertOne) SetEmail(v string) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateEmail() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *IdentityLinkUpsertOne) ClearEmail() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearEmail()
	})
}

// SetSessionID sets the "session_id" field.
func (u *IdentityLinkUpsertOne) SetSessionID(v string) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateSessionID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *IdentityLinkUpsertOne) ClearSessionID() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearSessionID()
	})
}

// SetAuthToken sets the "auth_token" field.
func (u *IdentityLinkUpsertOne) SetAuthToken(v string) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetAuthToken(v)
	})
}

// UpdateAuthToken sets the "auth_token" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateAuthToken() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateAuthToken()
	})
}

// ClearAuthToken clears the value of the "auth_token" field.
func (u *IdentityLinkUpsertOne) ClearAuthToken() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearAuthToken()
	})
}

// SetMatchType sets the "match_type" field.
func (u *IdentityLinkUpsertOne) SetMatchType(v identitylink.MatchType) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetMatchType(v)
	})
}

// UpdateMatchType sets the "match_type" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateMatchType() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateMatchType()
	})
}

// SetMatchConfidence sets the "match_confidence" field.
func (u *IdentityLinkUpsertOne) SetMatchConfidence(v float64) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetMatchConfidence(v)
	})
}

// AddMatchConfidence adds v to the "match_confidence" field.
func (u *IdentityLinkUpsertOne) AddMatchConfidence(v float64) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddMatchConfidence(v)
	})
}

// UpdateMatchConfidence sets the "match_confidence" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateMatchConfidence() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateMatchConfidence()
	})
}

// SetPageViews sets the "page_views" field.
func (u *IdentityLinkUpsertOne) SetPageViews(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetPageViews(v)
	})
}

// AddPageViews adds v to the "page_views" field.
func (u *IdentityLinkUpsertOne) AddPageViews(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddPageViews(v)
	})
}

// UpdatePageViews sets the "page_views" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdatePageViews() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdatePageViews()
	})
}

// SetProductViews sets the "product_views" field.
func (u *IdentityLinkUpsertOne) SetProductViews(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetProductViews(v)
	})
}

// AddProductViews adds v to the "product_views" field.
func (u *IdentityLinkUpsertOne) AddProductViews(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddProductViews(v)
	})
}

// UpdateProductViews sets the "product_views" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateProductViews() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateProductViews()
	})
}

// SetAddToCarts sets the "add_to_carts" field.
func (u *IdentityLinkUpsertOne) SetAddToCarts(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetAddToCarts(v)
	})
}

// AddAddToCarts adds v to the "add_to_carts" field.
func (u *IdentityLinkUpsertOne) AddAddToCarts(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddAddToCarts(v)
	})
}

// UpdateAddToCarts sets the "add_to_carts" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateAddToCarts() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateAddToCarts()
	})
}

// SetTotalOrders sets the "total_orders" field.
func (u *IdentityLinkUpsertOne) SetTotalOrders(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetTotalOrders(v)
	})
}

// AddTotalOrders adds v to the "total_orders" field.
func (u *IdentityLinkUpsertOne) AddTotalOrders(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddTotalOrders(v)
	})
}

// UpdateTotalOrders sets the "total_orders" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateTotalOrders() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateTotalOrders()
	})
}

// SetTotalRevenue sets the "total_revenue" field.
func (u *IdentityLinkUpsertOne) SetTotalRevenue(v float64) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetTotalRevenue(v)
	})
}

// AddTotalRevenue adds v to the "total_revenue" field.
func (u *IdentityLinkUpsertOne) AddTotalRevenue(v float64) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddTotalRevenue(v)
	})
}

// UpdateTotalRevenue sets the "total_revenue" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateTotalRevenue() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateTotalRevenue()
	})
}

// SetLastPageURL sets the "last_page_url" field.
func (u *IdentityLinkUpsertOne) SetLastPageURL(v string) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetLastPageURL(v)
	})
}

// UpdateLastPageURL sets the "last_page_url" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateLastPageURL() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateLastPageURL()
	})
}

// ClearLastPageURL clears the value of the "last_page_url" field.
func (u *IdentityLinkUpsertOne) ClearLastPageURL() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearLastPageURL()
	})
}

// SetLastProductViewed sets the "last_product_viewed" field.
func (u *IdentityLinkUpsertOne) SetLastProductViewed(v string) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetLastProductViewed(v)
	})
}

// UpdateLastProductViewed sets the "last_product_viewed" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateLastProductViewed() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateLastProductViewed()
	})
}

// ClearLastProductViewed clears the value of the "last_product_viewed" field.
func (u *IdentityLinkUpsertOne) ClearLastProductViewed() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearLastProductViewed()
	})
}

// SetEngagementScore sets the "engagement_score" field.
func (u *IdentityLinkUpsertOne) SetEngagementScore(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetEngagementScore(v)
	})
}

// AddEngagementScore adds v to the "engagement_score" field.
func (u *IdentityLinkUpsertOne) AddEngagementScore(v int) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddEngagementScore(v)
	})
}

// UpdateEngagementScore sets the "engagement_score" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateEngagementScore() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateEngagementScore()
	})
}

// SetBuyerIntent sets the "buyer_intent" field.
func (u *IdentityLinkUpsertOne) SetBuyerIntent(v identitylink.BuyerIntent) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetBuyerIntent(v)
	})
}

// UpdateBuyerIntent sets the "buyer_intent" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateBuyerIntent() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateBuyerIntent()
	})
}

// SetSegment sets the "segment" field.
func (u *IdentityLinkUpsertOne) SetSegment(v identitylink.Segment) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetSegment(v)
	})
}

// UpdateSegment sets the "segment" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateSegment() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateSegment()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IdentityLinkUpsertOne) SetUpdatedAt(v time.Time) *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IdentityLinkUpsertOne) UpdateUpdatedAt() *IdentityLinkUpsertOne {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IdentityLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IdentityLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IdentityLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IdentityLinkUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IdentityLinkUpsertOne.ID is not supported by MySQL driver. Use IdentityLinkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IdentityLinkUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IdentityLinkCreateBulk is the builder for creating many IdentityLink entities in bulk.
type IdentityLinkCreateBulk struct {
	config
	err      error
	builders []*IdentityLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the IdentityLink entities in the database.
func (_c *IdentityLinkCreateBulk) Save(ctx context.Context) ([]*IdentityLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IdentityLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IdentityLinkMutation)
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
func (_c *IdentityLinkCreateBulk) SaveX(ctx context.Context) []*IdentityLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IdentityLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IdentityLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IdentityLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IdentityLinkUpsert) {
//			SetMerchantID(v+v).
//		}).
//		Exec(ctx)
func (_c *IdentityLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *IdentityLinkUpsertBulk {
	_c.conflict = opts
	return &IdentityLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IdentityLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IdentityLinkCreateBulk) OnConflictColumns(columns ...string) *IdentityLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IdentityLinkUpsertBulk{
		create: _c,
	}
}

// IdentityLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of IdentityLink nodes.
type IdentityLinkUpsertBulk struct {
	create *IdentityLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IdentityLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(identitylink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IdentityLinkUpsertBulk) UpdateNewValues() *IdentityLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(identitylink.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(identitylink.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IdentityLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IdentityLinkUpsertBulk) Ignore() *IdentityLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IdentityLinkUpsertBulk) DoNothing() *IdentityLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IdentityLinkCreateBulk.OnConflict
// documentation for more info.
func (u *IdentityLinkUpsertBulk) Update(set func(*IdentityLinkUpsert)) *IdentityLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IdentityLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetMerchantID sets the "merchant_id" field.
func (u *IdentityLinkUpsertBulk) SetMerchantID(v uuid.UUID) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetMerchantID(v)
	})
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateMerchantID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateMerchantID()
	})
}

// SetFingerprintID sets the "fingerprint_id" field.
func (u *IdentityLinkUpsertBulk) SetFingerprintID(v uuid.UUID) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetFingerprintID(v)
	})
}

// UpdateFingerprintID sets the "fingerprint_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateFingerprintID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateFingerprintID()
	})
}

// SetBuyerID sets the "buyer_id" field.
func (u *IdentityLinkUpsertBulk) SetBuyerID(v uuid.UUID) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetBuyerID(v)
	})
}

// UpdateBuyerID sets the "buyer_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateBuyerID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateBuyerID()
	})
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (u *IdentityLinkUpsertBulk) ClearBuyerID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearBuyerID()
	})
}

// SetCompanyID sets the "company_id" field.
func (u *IdentityLinkUpsertBulk) SetCompanyID(v uuid.UUID) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetCompanyID(v)
	})
}

// UpdateCompanyID sets the "company_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateCompanyID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateCompanyID()
	})
}

// ClearCompanyID clears the value of the "company_id" field.
func (u *IdentityLinkUpsertBulk) ClearCompanyID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearCompanyID()
	})
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (u *IdentityLinkUpsertBulk) SetPlatformCustomerID(v int64) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetPlatformCustomerID(v)
	})
}

// AddPlatformCustomerID adds v to the "platform_customer_id" field.
func (u *IdentityLinkUpsertBulk) AddPlatformCustomerID(v int64) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddPlatformCustomerID(v)
	})
}

// UpdatePlatformCustomerID sets the "platform_customer_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdatePlatformCustomerID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdatePlatformCustomerID()
	})
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (u *IdentityLinkUpsertBulk) ClearPlatformCustomerID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearPlatformCustomerID()
	})
}

// SetEmail sets the "email" field.
func (u *IdentityLinkUpsertBulk) SetEmail(v string) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateEmail() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *IdentityLinkUpsertBulk) ClearEmail() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearEmail()
	})
}

// SetSessionID sets the "session_id" field.
func (u *IdentityLinkUpsertBulk) SetSessionID(v string) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateSessionID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *IdentityLinkUpsertBulk) ClearSessionID() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearSessionID()
	})
}

// SetAuthToken sets the "auth_token" field.
func (u *IdentityLinkUpsertBulk) SetAuthToken(v string) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetAuthToken(v)
	})
}

// UpdateAuthToken sets the "auth_token" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateAuthToken() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateAuthToken()
	})
}

// ClearAuthToken clears the value of the "auth_token" field.
func (u *IdentityLinkUpsertBulk) ClearAuthToken() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearAuthToken()
	})
}

// SetMatchType sets the "match_type" field.
func (u *IdentityLinkUpsertBulk) SetMatchType(v identitylink.MatchType) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetMatchType(v)
	})
}

// UpdateMatchType sets the "match_type" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateMatchType() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateMatchType()
	})
}

// SetMatchConfidence sets the "match_confidence" field.
func (u *IdentityLinkUpsertBulk) SetMatchConfidence(v float64) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetMatchConfidence(v)
	})
}

// AddMatchConfidence adds v to the "match_confidence" field.
func (u *IdentityLinkUpsertBulk) AddMatchConfidence(v float64) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddMatchConfidence(v)
	})
}

// UpdateMatchConfidence sets the "match_confidence" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateMatchConfidence() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateMatchConfidence()
	})
}

// SetPageViews sets the "page_views" field.
func (u *IdentityLinkUpsertBulk) SetPageViews(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetPageViews(v)
	})
}

// AddPageViews adds v to the "page_views" field.
func (u *IdentityLinkUpsertBulk) AddPageViews(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddPageViews(v)
	})
}

// UpdatePageViews sets the "page_views" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdatePageViews() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdatePageViews()
	})
}

// SetProductViews sets the "product_views" field.
func (u *IdentityLinkUpsertBulk) SetProductViews(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetProductViews(v)
	})
}

// AddProductViews adds v to the "product_views" field.
func (u *IdentityLinkUpsertBulk) AddProductViews(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddProductViews(v)
	})
}

// UpdateProductViews sets the "product_views" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateProductViews() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateProductViews()
	})
}

// SetAddToCarts sets the "add_to_carts" field.
func (u *IdentityLinkUpsertBulk) SetAddToCarts(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetAddToCarts(v)
	})
}

// AddAddToCarts adds v to the "add_to_carts" field.
func (u *IdentityLinkUpsertBulk) AddAddToCarts(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddAddToCarts(v)
	})
}

// UpdateAddToCarts sets the "add_to_carts" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateAddToCarts() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateAddToCarts()
	})
}

// SetTotalOrders sets the "total_orders" field.
func (u *IdentityLinkUpsertBulk) SetTotalOrders(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetTotalOrders(v)
	})
}

// AddTotalOrders adds v to the "total_orders" field.
func (u *IdentityLinkUpsertBulk) AddTotalOrders(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddTotalOrders(v)
	})
}

// UpdateTotalOrders sets the "total_orders" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateTotalOrders() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateTotalOrders()
	})
}

// SetTotalRevenue sets the "total_revenue" field.
func (u *IdentityLinkUpsertBulk) SetTotalRevenue(v float64) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetTotalRevenue(v)
	})
}

// AddTotalRevenue adds v to the "total_revenue" field.
func (u *IdentityLinkUpsertBulk) AddTotalRevenue(v float64) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddTotalRevenue(v)
	})
}

// UpdateTotalRevenue sets the "total_revenue" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateTotalRevenue() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateTotalRevenue()
	})
}

// SetLastPageURL sets the "last_page_url" field.
func (u *IdentityLinkUpsertBulk) SetLastPageURL(v string) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetLastPageURL(v)
	})
}

// UpdateLastPageURL sets the "last_page_url" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateLastPageURL() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateLastPageURL()
	})
}

// ClearLastPageURL clears the value of the "last_page_url" field.
func (u *IdentityLinkUpsertBulk) ClearLastPageURL() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearLastPageURL()
	})
}

// SetLastProductViewed sets the "last_product_viewed" field.
func (u *IdentityLinkUpsertBulk) SetLastProductViewed(v string) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetLastProductViewed(v)
	})
}

// UpdateLastProductViewed sets the "last_product_viewed" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateLastProductViewed() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateLastProductViewed()
	})
}

// ClearLastProductViewed clears the value of the "last_product_viewed" field.
func (u *IdentityLinkUpsertBulk) ClearLastProductViewed() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.ClearLastProductViewed()
	})
}

// SetEngagementScore sets the "engagement_score" field.
func (u *IdentityLinkUpsertBulk) SetEngagementScore(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetEngagementScore(v)
	})
}

// AddEngagementScore adds v to the "engagement_score" field.
func (u *IdentityLinkUpsertBulk) AddEngagementScore(v int) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.AddEngagementScore(v)
	})
}

// UpdateEngagementScore sets the "engagement_score" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateEngagementScore() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateEngagementScore()
	})
}

// SetBuyerIntent sets the "buyer_intent" field.
func (u *IdentityLinkUpsertBulk) SetBuyerIntent(v identitylink.BuyerIntent) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetBuyerIntent(v)
	})
}

// UpdateBuyerIntent sets the "buyer_intent" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateBuyerIntent() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateBuyerIntent()
	})
}

// SetSegment sets the "segment" field.
func (u *IdentityLinkUpsertBulk) SetSegment(v identitylink.Segment) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetSegment(v)
	})
}

// UpdateSegment sets the "segment" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateSegment() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateSegment()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IdentityLinkUpsertBulk) SetUpdatedAt(v time.Time) *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IdentityLinkUpsertBulk) UpdateUpdatedAt() *IdentityLinkUpsertBulk {
	return u.Update(func(s *IdentityLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IdentityLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IdentityLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IdentityLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IdentityLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
