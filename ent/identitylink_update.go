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
	"visitor-iq/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// IdentityLinkUpdate is the builder for updating IdentityLink entities.
type IdentityLinkUpdate struct {
	config
	hooks    []Hook
	mutation *IdentityLinkMutation
}

// Where appends a list predicates to the IdentityLinkUpdate builder.
func (_u *IdentityLinkUpdate) Where(ps ...predicate.IdentityLink) *IdentityLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMerchantID sets the "merchant_id" field.
func (_u *IdentityLinkUpdate) SetMerchantID(v uuid.UUID) *IdentityLinkUpdate {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableMerchantID(v *uuid.UUID) *IdentityLinkUpdate {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetFingerprintID sets the "fingerprint_id" field.
func (_u *IdentityLinkUpdate) SetFingerprintID(v uuid.UUID) *IdentityLinkUpdate {
	_u.mutation.SetFingerprintID(v)
	return _u
}

// SetNillableFingerprintID sets the "fingerprint_id" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableFingerprintID(v *uuid.UUID) *IdentityLinkUpdate {
	if v != nil {
		_u.SetFingerprintID(*v)
	}
	return _u
}

// SetBuyerID sets the "buyer_id" field.
func (_u *IdentityLinkUpdate) SetBuyerID(v uuid.UUID) *IdentityLinkUpdate {
	_u.mutation.SetBuyerID(v)
	return _u
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableBuyerID(v *uuid.UUID) *IdentityLinkUpdate {
	if v != nil {
		_u.SetBuyerID(*v)
	}
	return _u
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (_u *IdentityLinkUpdate) ClearBuyerID() *IdentityLinkUpdate {
	_u.mutation.ClearBuyerID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *IdentityLinkUpdate) SetCompanyID(v uuid.UUID) *IdentityLinkUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableCompanyID(v *uuid.UUID) *IdentityLinkUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *IdentityLinkUpdate) ClearCompanyID() *IdentityLinkUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (_u *IdentityLinkUpdate) SetPlatformCustomerID(v int64) *IdentityLinkUpdate {
	_u.mutation.ResetPlatformCustomerID()
	_u.mutation.SetPlatformCustomerID(v)
	return _u
}

// SetNillablePlatformCustomerID sets the "platform_customer_id" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillablePlatformCustomerID(v *int64) *IdentityLinkUpdate {
	if v != nil {
		_u.SetPlatformCustomerID(*v)
	}
	return _u
}

// AddPlatformCustomerID adds value to the "platform_customer_id" field.
func (_u *IdentityLinkUpdate) AddPlatformCustomerID(v int64) *IdentityLinkUpdate {
	_u.mutation.AddPlatformCustomerID(v)
	return _u
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (_u *IdentityLinkUpdate) ClearPlatformCustomerID() *IdentityLinkUpdate {
	_u.mutation.ClearPlatformCustomerID()
	return _u
}

// SetEmail sets the "email" field.
func (_u *IdentityLinkUpdate) SetEmail(v string) *IdentityLinkUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableEmail(v *string) *IdentityLinkUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *IdentityLinkUpdate) ClearEmail() *IdentityLinkUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *IdentityLinkUpdate) SetSessionID(v string) *IdentityLinkUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableSessionID(v *string) *IdentityLinkUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *IdentityLinkUpdate) ClearSessionID() *IdentityLinkUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetAuthToken sets the "auth_token" field.
func (_u *IdentityLinkUpdate) SetAuthToken(v string) *IdentityLinkUpdate {
	_u.mutation.SetAuthToken(v)
	return _u
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableAuthToken(v *string) *IdentityLinkUpdate {
	if v != nil {
		_u.SetAuthToken(*v)
	}
	return _u
}

// ClearAuthToken clears the value of the "auth_token" field.
func (_u *IdentityLinkUpdate) ClearAuthToken() *IdentityLinkUpdate {
	_u.mutation.ClearAuthToken()
	return _u
}

// SetMatchType sets the "match_type" field.
func (_u *IdentityLinkUpdate) SetMatchType(v identitylink.MatchType) *IdentityLinkUpdate {
	_u.mutation.SetMatchType(v)
	return _u
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableMatchType(v *identitylink.MatchType) *IdentityLinkUpdate {
	if v != nil {
		_u.SetMatchType(*v)
	}
	return _u
}

// SetMatchConfidence sets the "match_confidence" field.
func (_u *IdentityLinkUpdate) SetMatchConfidence(v float64) *IdentityLinkUpdate {
	_u.mutation.ResetMatchConfidence()
	_u.mutation.SetMatchConfidence(v)
	return _u
}

// SetNillableMatchConfidence sets the "match_confidence" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableMatchConfidence(v *float64) *IdentityLinkUpdate {
	if v != nil {
		_u.SetMatchConfidence(*v)
	}
	return _u
}

// AddMatchConfidence adds value to the "match_confidence" field.
func (_u *IdentityLinkUpdate) AddMatchConfidence(v float64) *IdentityLinkUpdate {
	_u.mutation.AddMatchConfidence(v)
	return _u
}

// SetPageViews sets the "page_views" field.
func (_u *IdentityLinkUpdate) SetPageViews(v int) *IdentityLinkUpdate {
	_u.mutation.ResetPageViews()
	_u.mutation.SetPageViews(v)
	return _u
}

// SetNillablePageViews sets the "page_views" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillablePageViews(v *int) *IdentityLinkUpdate {
	if v != nil {
		_u.SetPageViews(*v)
	}
	return _u
}

// AddPageViews adds value to the "page_views" field.
func (_u *IdentityLinkUpdate) AddPageViews(v int) *IdentityLinkUpdate {
	_u.mutation.AddPageViews(v)
	return _u
}

// SetProductViews sets the "product_views" field.
func (_u *IdentityLinkUpdate) SetProductViews(v int) *IdentityLinkUpdate {
	_u.mutation.ResetProductViews()
	_u.mutation.SetProductViews(v)
	return _u
}

// SetNillableProductViews sets the "product_views" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableProductViews(v *int) *IdentityLinkUpdate {
	if v != nil {
		_u.SetProductViews(*v)
	}
	return _u
}

// AddProductViews adds value to the "product_views" field.
func (_u *IdentityLinkUpdate) AddProductViews(v int) *IdentityLinkUpdate {
	_u.mutation.AddProductViews(v)
	return _u
}

// SetAddToCarts sets the "add_to_carts" field.
func (_u *IdentityLinkUpdate) SetAddToCarts(v int) *IdentityLinkUpdate {
	_u.mutation.ResetAddToCarts()
	_u.mutation.SetAddToCarts(v)
	return _u
}

// SetNillableAddToCarts sets the "add_to_carts" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableAddToCarts(v *int) *IdentityLinkUpdate {
	if v != nil {
		_u.SetAddToCarts(*v)
	}
	return _u
}

// AddAddToCarts adds value to the "add_to_carts" field.
func (_u *IdentityLinkUpdate) AddAddToCarts(v int) *IdentityLinkUpdate {
	_u.mutation.AddAddToCarts(v)
	return _u
}

// SetTotalOrders sets the "total_orders" field.
func (_u *IdentityLinkUpdate) SetTotalOrders(v int) *IdentityLinkUpdate {
	_u.mutation.ResetTotalOrders()
	_u.mutation.SetTotalOrders(v)
	return _u
}

// SetNillableTotalOrders sets the "total_orders" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableTotalOrders(v *int) *IdentityLinkUpdate {
	if v != nil {
		_u.SetTotalOrders(*v)
	}
	return _u
}

// AddTotalOrders adds value to the "total_orders" field.
func (_u *IdentityLinkUpdate) AddTotalOrders(v int) *IdentityLinkUpdate {
	_u.mutation.AddTotalOrders(v)
	return _u
}

// SetTotalRevenue sets the "total_revenue" field.
func (_u *IdentityLinkUpdate) SetTotalRevenue(v float64) *IdentityLinkUpdate {
	_u.mutation.ResetTotalRevenue()
	_u.mutation.SetTotalRevenue(v)
	return _u
}

// SetNillableTotalRevenue sets the "total_revenue" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableTotalRevenue(v *float64) *IdentityLinkUpdate {
	if v != nil {
		_u.SetTotalRevenue(*v)
	}
	return _u
}

// AddTotalRevenue adds value to the "total_revenue" field.
func (_u *IdentityLinkUpdate) AddTotalRevenue(v float64) *IdentityLinkUpdate {
	_u.mutation.AddTotalRevenue(v)
	return _u
}

// SetLastPageURL sets the "last_page_url" field.
func (_u *IdentityLinkUpdate) SetLastPageURL(v string) *IdentityLinkUpdate {
	_u.mutation.SetLastPageURL(v)
	return _u
}

// SetNillableLastPageURL sets the "last_page_url" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableLastPageURL(v *string) *IdentityLinkUpdate {
	if v != nil {
		_u.SetLastPageURL(*v)
	}
	return _u
}

// ClearLastPageURL clears the value of the "last_page_url" field.
func (_u *IdentityLinkUpdate) ClearLastPageURL() *IdentityLinkUpdate {
	_u.mutation.ClearLastPageURL()
	return _u
}

// SetLastProductViewed sets the "last_product_viewed" field.
func (_u *IdentityLinkUpdate) SetLastProductViewed(v string) *IdentityLinkUpdate {
	_u.mutation.SetLastProductViewed(v)
	return _u
}

// SetNillableLastProductViewed sets the "last_product_viewed" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableLastProductViewed(v *string) *IdentityLinkUpdate {
	if v != nil {
		_u.SetLastProductViewed(*v)
	}
	return _u
}

// ClearLastProductViewed clears the value of the "last_product_viewed" field.
func (_u *IdentityLinkUpdate) ClearLastProductViewed() *IdentityLinkUpdate {
	_u.mutation.ClearLastProductViewed()
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *IdentityLinkUpdate) SetEngagementScore(v int) *IdentityLinkUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableEngagementScore(v *int) *IdentityLinkUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *IdentityLinkUpdate) AddEngagementScore(v int) *IdentityLinkUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetBuyerIntent sets the "buyer_intent" field.
func (_u *IdentityLinkUpdate) SetBuyerIntent(v identitylink.BuyerIntent) *IdentityLinkUpdate {
	_u.mutation.SetBuyerIntent(v)
	return _u
}

// SetNillableBuyerIntent sets the "buyer_intent" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableBuyerIntent(v *identitylink.BuyerIntent) *IdentityLinkUpdate {
	if v != nil {
		_u.SetBuyerIntent(*v)
	}
	return _u
}

// SetSegment sets the "segment" field.
func (_u *IdentityLinkUpdate) SetSegment(v identitylink.Segment) *IdentityLinkUpdate {
	_u.mutation.SetSegment(v)
	return _u
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_u *IdentityLinkUpdate) SetNillableSegment(v *identitylink.Segment) *IdentityLinkUpdate {
	if v != nil {
		_u.SetSegment(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IdentityLinkUpdate) SetUpdatedAt(v time.Time) *IdentityLinkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *IdentityLinkUpdate) SetMerchant(v *Merchant) *IdentityLinkUpdate {
	return _u.SetMerchantID(v.ID)
}

// SetFingerprint sets the "fingerprint" edge to the Fingerprint entity.
func (_u *IdentityLinkUpdate) SetFingerprint(v *Fingerprint) *IdentityLinkUpdate {
	return _u.SetFingerprintID(v.ID)
}

// SetBuyer sets the "buyer" edge to the Buyer entity.
func (_u *IdentityLinkUpdate) SetBuyer(v *Buyer) *IdentityLinkUpdate {
	return _u.SetBuyerID(v.ID)
}

// Mutation returns the IdentityLinkMutation object of the builder.
func (_u *IdentityLinkUpdate) Mutation() *IdentityLinkMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *IdentityLinkUpdate) ClearMerchant() *IdentityLinkUpdate {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearFingerprint clears the "fingerprint" edge to the Fingerprint entity.
func (_u *IdentityLinkUpdate) ClearFingerprint() *IdentityLinkUpdate {
	_u.mutation.ClearFingerprint()
	return _u
}

// ClearBuyer clears the "buyer" edge to the Buyer entity.
func (_u *IdentityLinkUpdate) ClearBuyer() *IdentityLinkUpdate {
	_u.mutation.ClearBuyer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IdentityLinkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdentityLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IdentityLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdentityLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IdentityLinkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := identitylink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdentityLinkUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := identitylink.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := identitylink.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthToken(); ok {
		if err := identitylink.AuthTokenValidator(v); err != nil {
			return &ValidationError{Name: "auth_token", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.auth_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchType(); ok {
		if err := identitylink.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.match_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchConfidence(); ok {
		if err := identitylink.MatchConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "match_confidence", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.match_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastPageURL(); ok {
		if err := identitylink.LastPageURLValidator(v); err != nil {
			return &ValidationError{Name: "last_page_url", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.last_page_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastProductViewed(); ok {
		if err := identitylink.LastProductViewedValidator(v); err != nil {
			return &ValidationError{Name: "last_product_viewed", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.last_product_viewed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BuyerIntent(); ok {
		if err := identitylink.BuyerIntentValidator(v); err != nil {
			return &ValidationError{Name: "buyer_intent", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.buyer_intent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Segment(); ok {
		if err := identitylink.SegmentValidator(v); err != nil {
			return &ValidationError{Name: "segment", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.segment": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IdentityLink.merchant"`)
	}
	if _u.mutation.FingerprintCleared() && len(_u.mutation.FingerprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IdentityLink.fingerprint"`)
	}
	return nil
}

func (_u *IdentityLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(identitylink.Table, identitylink.Columns, sqlgraph.NewFieldSpec(identitylink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(identitylink.FieldCompanyID, field.TypeUUID, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(identitylink.FieldCompanyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PlatformCustomerID(); ok {
		_spec.SetField(identitylink.FieldPlatformCustomerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlatformCustomerID(); ok {
		_spec.AddField(identitylink.FieldPlatformCustomerID, field.TypeInt64, value)
	}
	if _u.mutation.PlatformCustomerIDCleared() {
		_spec.ClearField(identitylink.FieldPlatformCustomerID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(identitylink.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(identitylink.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(identitylink.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(identitylink.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.AuthToken(); ok {
		_spec.SetField(identitylink.FieldAuthToken, field.TypeString, value)
	}
	if _u.mutation.AuthTokenCleared() {
		_spec.ClearField(identitylink.FieldAuthToken, field.TypeString)
	}
	if value, ok := _u.mutation.MatchType(); ok {
		_spec.SetField(identitylink.FieldMatchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchConfidence(); ok {
		_spec.SetField(identitylink.FieldMatchConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchConfidence(); ok {
		_spec.AddField(identitylink.FieldMatchConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PageViews(); ok {
		_spec.SetField(identitylink.FieldPageViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageViews(); ok {
		_spec.AddField(identitylink.FieldPageViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProductViews(); ok {
		_spec.SetField(identitylink.FieldProductViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProductViews(); ok {
		_spec.AddField(identitylink.FieldProductViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddToCarts(); ok {
		_spec.SetField(identitylink.FieldAddToCarts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAddToCarts(); ok {
		_spec.AddField(identitylink.FieldAddToCarts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOrders(); ok {
		_spec.SetField(identitylink.FieldTotalOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOrders(); ok {
		_spec.AddField(identitylink.FieldTotalOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalRevenue(); ok {
		_spec.SetField(identitylink.FieldTotalRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalRevenue(); ok {
		_spec.AddField(identitylink.FieldTotalRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastPageURL(); ok {
		_spec.SetField(identitylink.FieldLastPageURL, field.TypeString, value)
	}
	if _u.mutation.LastPageURLCleared() {
		_spec.ClearField(identitylink.FieldLastPageURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastProductViewed(); ok {
		_spec.SetField(identitylink.FieldLastProductViewed, field.TypeString, value)
	}
	if _u.mutation.LastProductViewedCleared() {
		_spec.ClearField(identitylink.FieldLastProductViewed, field.TypeString)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(identitylink.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(identitylink.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BuyerIntent(); ok {
		_spec.SetField(identitylink.FieldBuyerIntent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Segment(); ok {
		_spec.SetField(identitylink.FieldSegment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(identitylink.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FingerprintCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FingerprintIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{identitylink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IdentityLinkUpdateOne is the builder for updating a single IdentityLink entity.
type IdentityLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IdentityLinkMutation
}

// SetMerchantID sets the "merchant_id" field.
func (_u *IdentityLinkUpdateOne) SetMerchantID(v uuid.UUID) *IdentityLinkUpdateOne {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableMerchantID(v *uuid.UUID) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetFingerprintID sets the "fingerprint_id" field.
func (_u *IdentityLinkUpdateOne) SetFingerprintID(v uuid.UUID) *IdentityLinkUpdateOne {
	_u.mutation.SetFingerprintID(v)
	return _u
}

// SetNillableFingerprintID sets the "fingerprint_id" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableFingerprintID(v *uuid.UUID) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetFingerprintID(*v)
	}
	return _u
}

// SetBuyerID sets the "buyer_id" field.
func (_u *IdentityLinkUpdateOne) SetBuyerID(v uuid.UUID) *IdentityLinkUpdateOne {
	_u.mutation.SetBuyerID(v)
	return _u
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableBuyerID(v *uuid.UUID) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetBuyerID(*v)
	}
	return _u
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (_u *IdentityLinkUpdateOne) ClearBuyerID() *IdentityLinkUpdateOne {
	_u.mutation.ClearBuyerID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *IdentityLinkUpdateOne) SetCompanyID(v uuid.UUID) *IdentityLinkUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableCompanyID(v *uuid.UUID) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *IdentityLinkUpdateOne) ClearCompanyID() *IdentityLinkUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetPlatformCustomerID sets the "platform_customer_id" field.
func (_u *IdentityLinkUpdateOne) SetPlatformCustomerID(v int64) *IdentityLinkUpdateOne {
	_u.mutation.ResetPlatformCustomerID()
	_u.mutation.SetPlatformCustomerID(v)
	return _u
}

// SetNillablePlatformCustomerID sets the "platform_customer_id" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillablePlatformCustomerID(v *int64) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetPlatformCustomerID(*v)
	}
	return _u
}

// AddPlatformCustomerID adds value to the "platform_customer_id" field.
func (_u *IdentityLinkUpdateOne) AddPlatformCustomerID(v int64) *IdentityLinkUpdateOne {
	_u.mutation.AddPlatformCustomerID(v)
	return _u
}

// ClearPlatformCustomerID clears the value of the "platform_customer_id" field.
func (_u *IdentityLinkUpdateOne) ClearPlatformCustomerID() *IdentityLinkUpdateOne {
	_u.mutation.ClearPlatformCustomerID()
	return _u
}

// SetEmail sets the "email" field.
func (_u *IdentityLinkUpdateOne) SetEmail(v string) *IdentityLinkUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableEmail(v *string) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *IdentityLinkUpdateOne) ClearEmail() *IdentityLinkUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *IdentityLinkUpdateOne) SetSessionID(v string) *IdentityLinkUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableSessionID(v *string) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *IdentityLinkUpdateOne) ClearSessionID() *IdentityLinkUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetAuthToken sets the "auth_token" field.
func (_u *IdentityLinkUpdateOne) SetAuthToken(v string) *IdentityLinkUpdateOne {
	_u.mutation.SetAuthToken(v)
	return _u
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableAuthToken(v *string) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetAuthToken(*v)
	}
	return _u
}

// ClearAuthToken clears the value of the "auth_token" field.
func (_u *IdentityLinkUpdateOne) ClearAuthToken() *IdentityLinkUpdateOne {
	_u.mutation.ClearAuthToken()
	return _u
}

// SetMatchType sets the "match_type" field.
func (_u *IdentityLinkUpdateOne) SetMatchType(v identitylink.MatchType) *IdentityLinkUpdateOne {
	_u.mutation.SetMatchType(v)
	return _u
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableMatchType(v *identitylink.MatchType) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetMatchType(*v)
	}
	return _u
}

// SetMatchConfidence sets the "match_confidence" field.
func (_u *IdentityLinkUpdateOne) SetMatchConfidence(v float64) *IdentityLinkUpdateOne {
	_u.mutation.ResetMatchConfidence()
	_u.mutation.SetMatchConfidence(v)
	return _u
}

// SetNillableMatchConfidence sets the "match_confidence" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableMatchConfidence(v *float64) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetMatchConfidence(*v)
	}
	return _u
}

// AddMatchConfidence adds value to the "match_confidence" field.
func (_u *IdentityLinkUpdateOne) AddMatchConfidence(v float64) *IdentityLinkUpdateOne {
	_u.mutation.AddMatchConfidence(v)
	return _u
}

// SetPageViews sets the "page_views" field.
func (_u *IdentityLinkUpdateOne) SetPageViews(v int) *IdentityLinkUpdateOne {
	_u.mutation.ResetPageViews()
	_u.mutation.SetPageViews(v)
	return _u
}

// SetNillablePageViews sets the "page_views" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillablePageViews(v *int) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetPageViews(*v)
	}
	return _u
}

// AddPageViews adds value to the "page_views" field.
func (_u *IdentityLinkUpdateOne) AddPageViews(v int) *IdentityLinkUpdateOne {
	_u.mutation.AddPageViews(v)
	return _u
}

// SetProductViews sets the "product_views" field.
func (_u *IdentityLinkUpdateOne) SetProductViews(v int) *IdentityLinkUpdateOne {
	_u.mutation.ResetProductViews()
	_u.mutation.SetProductViews(v)
	return _u
}

// SetNillableProductViews sets the "product_views" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableProductViews(v *int) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetProductViews(*v)
	}
	return _u
}

// AddProductViews adds value to the "product_views" field.
func (_u *IdentityLinkUpdateOne) AddProductViews(v int) *IdentityLinkUpdateOne {
	_u.mutation.AddProductViews(v)
	return _u
}

// SetAddToCarts sets the "add_to_carts" field.
func (_u *IdentityLinkUpdateOne) SetAddToCarts(v int) *IdentityLinkUpdateOne {
	_u.mutation.ResetAddToCarts()
	_u.mutation.SetAddToCarts(v)
	return _u
}

// SetNillableAddToCarts sets the "add_to_carts" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableAddToCarts(v *int) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetAddToCarts(*v)
	}
	return _u
}

// AddAddToCarts adds value to the "add_to_carts" field.
func (_u *IdentityLinkUpdateOne) AddAddToCarts(v int) *IdentityLinkUpdateOne {
	_u.mutation.AddAddToCarts(v)
	return _u
}

// SetTotalOrders sets the "total_orders" field.
func (_u *IdentityLinkUpdateOne) SetTotalOrders(v int) *IdentityLinkUpdateOne {
	_u.mutation.ResetTotalOrders()
	_u.mutation.SetTotalOrders(v)
	return _u
}

// SetNillableTotalOrders sets the "total_orders" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableTotalOrders(v *int) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetTotalOrders(*v)
	}
	return _u
}

// AddTotalOrders adds value to the "total_orders" field.
func (_u *IdentityLinkUpdateOne) AddTotalOrders(v int) *IdentityLinkUpdateOne {
	_u.mutation.AddTotalOrders(v)
	return _u
}

// SetTotalRevenue sets the "total_revenue" field.
func (_u *IdentityLinkUpdateOne) SetTotalRevenue(v float64) *IdentityLinkUpdateOne {
	_u.mutation.ResetTotalRevenue()
	_u.mutation.SetTotalRevenue(v)
	return _u
}

// SetNillableTotalRevenue sets the "total_revenue" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableTotalRevenue(v *float64) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetTotalRevenue(*v)
	}
	return _u
}

// AddTotalRevenue adds value to the "total_revenue" field.
func (_u *IdentityLinkUpdateOne) AddTotalRevenue(v float64) *IdentityLinkUpdateOne {
	_u.mutation.AddTotalRevenue(v)
	return _u
}

// SetLastPageURL sets the "last_page_url" field.
func (_u *IdentityLinkUpdateOne) SetLastPageURL(v string) *IdentityLinkUpdateOne {
	_u.mutation.SetLastPageURL(v)
	return _u
}

// SetNillableLastPageURL sets the "last_page_url" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableLastPageURL(v *string) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetLastPageURL(*v)
	}
	return _u
}

// ClearLastPageURL clears the value of the "last_page_url" field.
func (_u *IdentityLinkUpdateOne) ClearLastPageURL() *IdentityLinkUpdateOne {
	_u.mutation.ClearLastPageURL()
	return _u
}

// SetLastProductViewed sets the "last_product_viewed" field.
func (_u *IdentityLinkUpdateOne) SetLastProductViewed(v string) *IdentityLinkUpdateOne {
	_u.mutation.SetLastProductViewed(v)
	return _u
}

// SetNillableLastProductViewed sets the "last_product_viewed" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableLastProductViewed(v *string) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetLastProductViewed(*v)
	}
	return _u
}

// ClearLastProductViewed clears the value of the "last_product_viewed" field.
func (_u *IdentityLinkUpdateOne) ClearLastProductViewed() *IdentityLinkUpdateOne {
	_u.mutation.ClearLastProductViewed()
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *IdentityLinkUpdateOne) SetEngagementScore(v int) *IdentityLinkUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableEngagementScore(v *int) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *IdentityLinkUpdateOne) AddEngagementScore(v int) *IdentityLinkUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetBuyerIntent sets the "buyer_intent" field.
func (_u *IdentityLinkUpdateOne) SetBuyerIntent(v identitylink.BuyerIntent) *IdentityLinkUpdateOne {
	_u.mutation.SetBuyerIntent(v)
	return _u
}

// SetNillableBuyerIntent sets the "buyer_intent" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableBuyerIntent(v *identitylink.BuyerIntent) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetBuyerIntent(*v)
	}
	return _u
}

// SetSegment sets the "segment" field.
func (_u *IdentityLinkUpdateOne) SetSegment(v identitylink.Segment) *IdentityLinkUpdateOne {
	_u.mutation.SetSegment(v)
	return _u
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_u *IdentityLinkUpdateOne) SetNillableSegment(v *identitylink.Segment) *IdentityLinkUpdateOne {
	if v != nil {
		_u.SetSegment(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IdentityLinkUpdateOne) SetUpdatedAt(v time.Time) *IdentityLinkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *IdentityLinkUpdateOne) SetMerchant(v *Merchant) *IdentityLinkUpdateOne {
	return _u.SetMerchantID(v.ID)
}

// SetFingerprint sets the "fingerprint" edge to the Fingerprint entity.
func (_u *IdentityLinkUpdateOne) SetFingerprint(v *Fingerprint) *IdentityLinkUpdateOne {
	return _u.SetFingerprintID(v.ID)
}

// SetBuyer sets the "buyer" edge to the Buyer entity.
func (_u *IdentityLinkUpdateOne) SetBuyer(v *Buyer) *IdentityLinkUpdateOne {
	return _u.SetBuyerID(v.ID)
}

// Mutation returns the IdentityLinkMutation object of the builder.
func (_u *IdentityLinkUpdateOne) Mutation() *IdentityLinkMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *IdentityLinkUpdateOne) ClearMerchant() *IdentityLinkUpdateOne {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearFingerprint clears the "fingerprint" edge to the Fingerprint entity.
func (_u *IdentityLinkUpdateOne) ClearFingerprint() *IdentityLinkUpdateOne {
	_u.mutation.ClearFingerprint()
	return _u
}

// ClearBuyer clears the "buyer" edge to the Buyer entity.
func (_u *IdentityLinkUpdateOne) ClearBuyer() *IdentityLinkUpdateOne {
	_u.mutation.ClearBuyer()
	return _u
}

// Where appends a list predicates to the IdentityLinkUpdate builder.
func (_u *IdentityLinkUpdateOne) Where(ps ...predicate.IdentityLink) *IdentityLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IdentityLinkUpdateOne) Select(field string, fields ...string) *IdentityLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IdentityLink entity.
func (_u *IdentityLinkUpdateOne) Save(ctx context.Context) (*IdentityLink, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IdentityLinkUpdateOne) SaveX(ctx context.Context) *IdentityLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IdentityLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IdentityLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IdentityLinkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := identitylink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IdentityLinkUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := identitylink.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := identitylink.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthToken(); ok {
		if err := identitylink.AuthTokenValidator(v); err != nil {
			return &ValidationError{Name: "auth_token", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.auth_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchType(); ok {
		if err := identitylink.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.match_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchConfidence(); ok {
		if err := identitylink.MatchConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "match_confidence", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.match_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastPageURL(); ok {
		if err := identitylink.LastPageURLValidator(v); err != nil {
			return &ValidationError{Name: "last_page_url", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.last_page_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastProductViewed(); ok {
		if err := identitylink.LastProductViewedValidator(v); err != nil {
			return &ValidationError{Name: "last_product_viewed", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.last_product_viewed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BuyerIntent(); ok {
		if err := identitylink.BuyerIntentValidator(v); err != nil {
			return &ValidationError{Name: "buyer_intent", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.buyer_intent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Segment(); ok {
		if err := identitylink.SegmentValidator(v); err != nil {
			return &ValidationError{Name: "segment", err: fmt.Errorf(`ent: validator failed for field "IdentityLink.segment": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IdentityLink.merchant"`)
	}
	if _u.mutation.FingerprintCleared() && len(_u.mutation.FingerprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IdentityLink.fingerprint"`)
	}
	return nil
}

func (_u *IdentityLinkUpdateOne) sqlSave(ctx context.Context) (_node *IdentityLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(identitylink.Table, identitylink.Columns, sqlgraph.NewFieldSpec(identitylink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IdentityLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, identitylink.FieldID)
		for _, f := range fields {
			if !identitylink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != identitylink.FieldID {
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
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(identitylink.FieldCompanyID, field.TypeUUID, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(identitylink.FieldCompanyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PlatformCustomerID(); ok {
		_spec.SetField(identitylink.FieldPlatformCustomerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPlatformCustomerID(); ok {
		_spec.AddField(identitylink.FieldPlatformCustomerID, field.TypeInt64, value)
	}
	if _u.mutation.PlatformCustomerIDCleared() {
		_spec.ClearField(identitylink.FieldPlatformCustomerID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(identitylink.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(identitylink.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(identitylink.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(identitylink.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.AuthToken(); ok {
		_spec.SetField(identitylink.FieldAuthToken, field.TypeString, value)
	}
	if _u.mutation.AuthTokenCleared() {
		_spec.ClearField(identitylink.FieldAuthToken, field.TypeString)
	}
	if value, ok := _u.mutation.MatchType(); ok {
		_spec.SetField(identitylink.FieldMatchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MatchConfidence(); ok {
		_spec.SetField(identitylink.FieldMatchConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchConfidence(); ok {
		_spec.AddField(identitylink.FieldMatchConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PageViews(); ok {
		_spec.SetField(identitylink.FieldPageViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageViews(); ok {
		_spec.AddField(identitylink.FieldPageViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProductViews(); ok {
		_spec.SetField(identitylink.FieldProductViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProductViews(); ok {
		_spec.AddField(identitylink.FieldProductViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddToCarts(); ok {
		_spec.SetField(identitylink.FieldAddToCarts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAddToCarts(); ok {
		_spec.AddField(identitylink.FieldAddToCarts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOrders(); ok {
		_spec.SetField(identitylink.FieldTotalOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOrders(); ok {
		_spec.AddField(identitylink.FieldTotalOrders, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalRevenue(); ok {
		_spec.SetField(identitylink.FieldTotalRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalRevenue(); ok {
		_spec.AddField(identitylink.FieldTotalRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastPageURL(); ok {
		_spec.SetField(identitylink.FieldLastPageURL, field.TypeString, value)
	}
	if _u.mutation.LastPageURLCleared() {
		_spec.ClearField(identitylink.FieldLastPageURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastProductViewed(); ok {
		_spec.SetField(identitylink.FieldLastProductViewed, field.TypeString, value)
	}
	if _u.mutation.LastProductViewedCleared() {
		_spec.ClearField(identitylink.FieldLastProductViewed, field.TypeString)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(identitylink.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(identitylink.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BuyerIntent(); ok {
		_spec.SetField(identitylink.FieldBuyerIntent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Segment(); ok {
		_spec.SetField(identitylink.FieldSegment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(identitylink.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FingerprintCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FingerprintIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IdentityLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{identitylink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
