// Code generated by ent, DO NOT EDIT.

package identitylink

import (
	"time"
	"visitor-iq/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldID, id))
}

// MerchantID applies equality check predicate on the "merchant_id" field. It's identical to MerchantIDEQ.
func MerchantID(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldMerchantID, v))
}

// FingerprintID applies equality check predicate on the "fingerprint_id" field. It's identical to FingerprintIDEQ.
func FingerprintID(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldFingerprintID, v))
}

// BuyerID applies equality check predicate on the "buyer_id" field. It's identical to BuyerIDEQ.
func BuyerID(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldBuyerID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldCompanyID, v))
}

// PlatformCustomerID applies equality check predicate on the "platform_customer_id" field. It's identical to PlatformCustomerIDEQ.
func PlatformCustomerID(v int64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldPlatformCustomerID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldEmail, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldSessionID, v))
}

// AuthToken applies equality check predicate on the "auth_token" field. It's identical to AuthTokenEQ.
func AuthToken(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldAuthToken, v))
}

// MatchConfidence applies equality check predicate on the "match_confidence" field. It's identical to MatchConfidenceEQ.
func MatchConfidence(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldMatchConfidence, v))
}

// PageViews applies equality check predicate on the "page_views" field. It's identical to PageViewsEQ.
func PageViews(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldPageViews, v))
}

// ProductViews applies equality check predicate on the "product_views" field. It's identical to ProductViewsEQ.
func ProductViews(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldProductViews, v))
}

// AddToCarts applies equality check predicate on the "add_to_carts" field. It's identical to AddToCartsEQ.
func AddToCarts(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldAddToCarts, v))
}

// TotalOrders applies equality check predicate on the "total_orders" field. It's identical to TotalOrdersEQ.
func TotalOrders(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldTotalOrders, v))
}

// TotalRevenue applies equality check predicate on the "total_revenue" field. It's identical to TotalRevenueEQ.
func TotalRevenue(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldTotalRevenue, v))
}

// LastPageURL applies equality check predicate on the "last_page_url" field. It's identical to LastPageURLEQ.
func LastPageURL(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldLastPageURL, v))
}

// LastProductViewed applies equality check predicate on the "last_product_viewed" field. It's identical to LastProductViewedEQ.
func LastProductViewed(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldLastProductViewed, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldEngagementScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// MerchantIDEQ applies the EQ predicate on the "merchant_id" field.
func MerchantIDEQ(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldMerchantID, v))
}

// MerchantIDNEQ applies the NEQ predicate on the "merchant_id" field.
func MerchantIDNEQ(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldMerchantID, v))
}

// MerchantIDIn applies the In predicate on the "merchant_id" field.
func MerchantIDIn(vs ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldMerchantID, vs...))
}

// MerchantIDNotIn applies the NotIn predicate on the "merchant_id" field.
func MerchantIDNotIn(vs ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldMerchantID, vs...))
}

// FingerprintIDEQ applies the EQ predicate on the "fingerprint_id" field.
func FingerprintIDEQ(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldFingerprintID, v))
}

// FingerprintIDNEQ applies the NEQ predicate on the "fingerprint_id" field.
func FingerprintIDNEQ(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldFingerprintID, v))
}

// FingerprintIDIn applies the In predicate on the "fingerprint_id" field.
func FingerprintIDIn(vs ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldFingerprintID, vs...))
}

// FingerprintIDNotIn applies the NotIn predicate on the "fingerprint_id" field.
func FingerprintIDNotIn(vs ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldFingerprintID, vs...))
}

// BuyerIDEQ applies the EQ predicate on the "buyer_id" field.
func BuyerIDEQ(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldBuyerID, v))
}

// BuyerIDNEQ applies the NEQ predicate on the "buyer_id" field.
func BuyerIDNEQ(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldBuyerID, v))
}

// BuyerIDIn applies the In predicate on the "buyer_id" field.
func BuyerIDIn(vs ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldBuyerID, vs...))
}

// BuyerIDNotIn applies the NotIn predicate on the "buyer_id" field.
func BuyerIDNotIn(vs ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldBuyerID, vs...))
}

// BuyerIDIsNil applies the IsNil predicate on the "buyer_id" field.
func BuyerIDIsNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIsNull(FieldBuyerID))
}

// BuyerIDNotNil applies the NotNil predicate on the "buyer_id" field.
func BuyerIDNotNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotNull(FieldBuyerID))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v uuid.UUID) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotNull(FieldCompanyID))
}

// PlatformCustomerIDEQ applies the EQ predicate on the "platform_customer_id" field.
func PlatformCustomerIDEQ(v int64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDNEQ applies the NEQ predicate on the "platform_customer_id" field.
func PlatformCustomerIDNEQ(v int64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDIn applies the In predicate on the "platform_customer_id" field.
func PlatformCustomerIDIn(vs ...int64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldPlatformCustomerID, vs...))
}

// PlatformCustomerIDNotIn applies the NotIn predicate on the "platform_customer_id" field.
func PlatformCustomerIDNotIn(vs ...int64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldPlatformCustomerID, vs...))
}

// PlatformCustomerIDGT applies the GT predicate on the "platform_customer_id" field.
func PlatformCustomerIDGT(v int64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDGTE applies the GTE predicate on the "platform_customer_id" field.
func PlatformCustomerIDGTE(v int64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDLT applies the LT predicate on the "platform_customer_id" field.
func PlatformCustomerIDLT(v int64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDLTE applies the LTE predicate on the "platform_customer_id" field.
func PlatformCustomerIDLTE(v int64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDIsNil applies the IsNil predicate on the "platform_customer_id" field.
func PlatformCustomerIDIsNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIsNull(FieldPlatformCustomerID))
}

// PlatformCustomerIDNotNil applies the NotNil predicate on the "platform_customer_id" field.
func PlatformCustomerIDNotNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotNull(FieldPlatformCustomerID))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContainsFold(FieldEmail, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContainsFold(FieldSessionID, v))
}

// AuthTokenEQ applies the EQ predicate on the "auth_token" field.
func AuthTokenEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldAuthToken, v))
}

// AuthTokenNEQ applies the NEQ predicate on the "auth_token" field.
func AuthTokenNEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldAuthToken, v))
}

// AuthTokenIn applies the In predicate on the "auth_token" field.
func AuthTokenIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldAuthToken, vs...))
}

// AuthTokenNotIn applies the NotIn predicate on the "auth_token" field.
func AuthTokenNotIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldAuthToken, vs...))
}

// AuthTokenGT applies the GT predicate on the "auth_token" field.
func AuthTokenGT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldAuthToken, v))
}

// AuthTokenGTE applies the GTE predicate on the "auth_token" field.
func AuthTokenGTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldAuthToken, v))
}

// AuthTokenLT applies the LT predicate on the "auth_token" field.
func AuthTokenLT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldAuthToken, v))
}

// AuthTokenLTE applies the LTE predicate on the "auth_token" field.
func AuthTokenLTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldAuthToken, v))
}

// AuthTokenContains applies the Contains predicate on the "auth_token" field.
func AuthTokenContains(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContains(FieldAuthToken, v))
}

// AuthTokenHasPrefix applies the HasPrefix predicate on the "auth_token" field.
func AuthTokenHasPrefix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasPrefix(FieldAuthToken, v))
}

// AuthTokenHasSuffix applies the HasSuffix predicate on the "auth_token" field.
func AuthTokenHasSuffix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasSuffix(FieldAuthToken, v))
}

// AuthTokenIsNil applies the IsNil predicate on the "auth_token" field.
func AuthTokenIsNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIsNull(FieldAuthToken))
}

// AuthTokenNotNil applies the NotNil predicate on the "auth_token" field.
func AuthTokenNotNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotNull(FieldAuthToken))
}

// AuthTokenEqualFold applies the EqualFold predicate on the "auth_token" field.
func AuthTokenEqualFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEqualFold(FieldAuthToken, v))
}

// AuthTokenContainsFold applies the ContainsFold predicate on the "auth_token" field.
func AuthTokenContainsFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContainsFold(FieldAuthToken, v))
}

// MatchTypeEQ applies the EQ predicate on the "match_type" field.
func MatchTypeEQ(v MatchType) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldMatchType, v))
}

// MatchTypeNEQ applies the NEQ predicate on the "match_type" field.
func MatchTypeNEQ(v MatchType) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldMatchType, v))
}

// MatchTypeIn applies the In predicate on the "match_type" field.
func MatchTypeIn(vs ...MatchType) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldMatchType, vs...))
}

// MatchTypeNotIn applies the NotIn predicate on the "match_type" field.
func MatchTypeNotIn(vs ...MatchType) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldMatchType, vs...))
}

// MatchConfidenceEQ applies the EQ predicate on the "match_confidence" field.
func MatchConfidenceEQ(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldMatchConfidence, v))
}

// MatchConfidenceNEQ applies the NEQ predicate on the "match_confidence" field.
func MatchConfidenceNEQ(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldMatchConfidence, v))
}

// MatchConfidenceIn applies the In predicate on the "match_confidence" field.
func MatchConfidenceIn(vs ...float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldMatchConfidence, vs...))
}

// MatchConfidenceNotIn applies the NotIn predicate on the "match_confidence" field.
func MatchConfidenceNotIn(vs ...float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldMatchConfidence, vs...))
}

// MatchConfidenceGT applies the GT predicate on the "match_confidence" field.
func MatchConfidenceGT(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldMatchConfidence, v))
}

// MatchConfidenceGTE applies the GTE predicate on the "match_confidence" field.
func MatchConfidenceGTE(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldMatchConfidence, v))
}

// MatchConfidenceLT applies the LT predicate on the "match_confidence" field.
func MatchConfidenceLT(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldMatchConfidence, v))
}

// MatchConfidenceLTE applies the LTE predicate on the "match_confidence" field.
func MatchConfidenceLTE(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldMatchConfidence, v))
}

// PageViewsEQ applies the EQ predicate on the "page_views" field.
func PageViewsEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldPageViews, v))
}

// PageViewsNEQ applies the NEQ predicate on the "page_views" field.
func PageViewsNEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldPageViews, v))
}

// PageViewsIn applies the In predicate on the "page_views" field.
func PageViewsIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldPageViews, vs...))
}

// PageViewsNotIn applies the NotIn predicate on the "page_views" field.
func PageViewsNotIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldPageViews, vs...))
}

// PageViewsGT applies the GT predicate on the "page_views" field.
func PageViewsGT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldPageViews, v))
}

// PageViewsGTE applies the GTE predicate on the "page_views" field.
func PageViewsGTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldPageViews, v))
}

// PageViewsLT applies the LT predicate on the "page_views" field.
func PageViewsLT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldPageViews, v))
}

// PageViewsLTE applies the LTE predicate on the "page_views" field.
func PageViewsLTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldPageViews, v))
}

// ProductViewsEQ applies the EQ predicate on the "product_views" field.
func ProductViewsEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldProductViews, v))
}

// ProductViewsNEQ applies the NEQ predicate on the "product_views" field.
func ProductViewsNEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldProductViews, v))
}

// ProductViewsIn applies the In predicate on the "product_views" field.
func ProductViewsIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldProductViews, vs...))
}

// ProductViewsNotIn applies the NotIn predicate on the "product_views" field.
func ProductViewsNotIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldProductViews, vs...))
}

// ProductViewsGT applies the GT predicate on the "product_views" field.
func ProductViewsGT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldProductViews, v))
}

// ProductViewsGTE applies the GTE predicate on the "product_views" field.
func ProductViewsGTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldProductViews, v))
}

// ProductViewsLT applies the LT predicate on the "product_views" field.
func ProductViewsLT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldProductViews, v))
}

// ProductViewsLTE applies the LTE predicate on the "product_views" field.
func ProductViewsLTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldProductViews, v))
}

// AddToCartsEQ applies the EQ predicate on the "add_to_carts" field.
func AddToCartsEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldAddToCarts, v))
}

// AddToCartsNEQ applies the NEQ predicate on the "add_to_carts" field.
func AddToCartsNEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldAddToCarts, v))
}

// AddToCartsIn applies the In predicate on the "add_to_carts" field.
func AddToCartsIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldAddToCarts, vs...))
}

// AddToCartsNotIn applies the NotIn predicate on the "add_to_carts" field.
func AddToCartsNotIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldAddToCarts, vs...))
}

// AddToCartsGT applies the GT predicate on the "add_to_carts" field.
func AddToCartsGT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldAddToCarts, v))
}

// AddToCartsGTE applies the GTE predicate on the "add_to_carts" field.
func AddToCartsGTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldAddToCarts, v))
}

// AddToCartsLT applies the LT predicate on the "add_to_carts" field.
func AddToCartsLT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldAddToCarts, v))
}

// AddToCartsLTE applies the LTE predicate on the "add_to_carts" field.
func AddToCartsLTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldAddToCarts, v))
}

// TotalOrdersEQ applies the EQ predicate on the "total_orders" field.
func TotalOrdersEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldTotalOrders, v))
}

// TotalOrdersNEQ applies the NEQ predicate on the "total_orders" field.
func TotalOrdersNEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldTotalOrders, v))
}

// TotalOrdersIn applies the In predicate on the "total_orders" field.
func TotalOrdersIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldTotalOrders, vs...))
}

// TotalOrdersNotIn applies the NotIn predicate on the "total_orders" field.
func TotalOrdersNotIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldTotalOrders, vs...))
}

// TotalOrdersGT applies the GT predicate on the "total_orders" field.
func TotalOrdersGT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldTotalOrders, v))
}

// TotalOrdersGTE applies the GTE predicate on the "total_orders" field.
func TotalOrdersGTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldTotalOrders, v))
}

// TotalOrdersLT applies the LT predicate on the "total_orders" field.
func TotalOrdersLT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldTotalOrders, v))
}

// TotalOrdersLTE applies the LTE predicate on the "total_orders" field.
func TotalOrdersLTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldTotalOrders, v))
}

// TotalRevenueEQ applies the EQ predicate on the "total_revenue" field.
func TotalRevenueEQ(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldTotalRevenue, v))
}

// TotalRevenueNEQ applies the NEQ predicate on the "total_revenue" field.
func TotalRevenueNEQ(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldTotalRevenue, v))
}

// TotalRevenueIn applies the In predicate on the "total_revenue" field.
func TotalRevenueIn(vs ...float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldTotalRevenue, vs...))
}

// TotalRevenueNotIn applies the NotIn predicate on the "total_revenue" field.
func TotalRevenueNotIn(vs ...float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldTotalRevenue, vs...))
}

// TotalRevenueGT applies the GT predicate on the "total_revenue" field.
func TotalRevenueGT(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldTotalRevenue, v))
}

// TotalRevenueGTE applies the GTE predicate on the "total_revenue" field.
func TotalRevenueGTE(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldTotalRevenue, v))
}

// TotalRevenueLT applies the LT predicate on the "total_revenue" field.
func TotalRevenueLT(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldTotalRevenue, v))
}

// TotalRevenueLTE applies the LTE predicate on the "total_revenue" field.
func TotalRevenueLTE(v float64) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldTotalRevenue, v))
}

// LastPageURLEQ applies the EQ predicate on the "last_page_url" field.
func LastPageURLEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldLastPageURL, v))
}

// LastPageURLNEQ applies the NEQ predicate on the "last_page_url" field.
func LastPageURLNEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldLastPageURL, v))
}

// LastPageURLIn applies the In predicate on the "last_page_url" field.
func LastPageURLIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldLastPageURL, vs...))
}

// LastPageURLNotIn applies the NotIn predicate on the "last_page_url" field.
func LastPageURLNotIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldLastPageURL, vs...))
}

// LastPageURLGT applies the GT predicate on the "last_page_url" field.
func LastPageURLGT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldLastPageURL, v))
}

// LastPageURLGTE applies the GTE predicate on the "last_page_url" field.
func LastPageURLGTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldLastPageURL, v))
}

// LastPageURLLT applies the LT predicate on the "last_page_url" field.
func LastPageURLLT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldLastPageURL, v))
}

// LastPageURLLTE applies the LTE predicate on the "last_page_url" field.
func LastPageURLLTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldLastPageURL, v))
}

// LastPageURLContains applies the Contains predicate on the "last_page_url" field.
func LastPageURLContains(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContains(FieldLastPageURL, v))
}

// LastPageURLHasPrefix applies the HasPrefix predicate on the "last_page_url" field.
func LastPageURLHasPrefix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasPrefix(FieldLastPageURL, v))
}

// LastPageURLHasSuffix applies the HasSuffix predicate on the "last_page_url" field.
func LastPageURLHasSuffix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasSuffix(FieldLastPageURL, v))
}

// LastPageURLIsNil applies the IsNil predicate on the "last_page_url" field.
func LastPageURLIsNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIsNull(FieldLastPageURL))
}

// LastPageURLNotNil applies the NotNil predicate on the "last_page_url" field.
func LastPageURLNotNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotNull(FieldLastPageURL))
}

// LastPageURLEqualFold applies the EqualFold predicate on the "last_page_url" field.
func LastPageURLEqualFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEqualFold(FieldLastPageURL, v))
}

// LastPageURLContainsFold applies the ContainsFold predicate on the "last_page_url" field.
func LastPageURLContainsFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContainsFold(FieldLastPageURL, v))
}

// LastProductViewedEQ applies the EQ predicate on the "last_product_viewed" field.
func LastProductViewedEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldLastProductViewed, v))
}

// LastProductViewedNEQ applies the NEQ predicate on the "last_product_viewed" field.
func LastProductViewedNEQ(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldLastProductViewed, v))
}

// LastProductViewedIn applies the In predicate on the "last_product_viewed" field.
func LastProductViewedIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldLastProductViewed, vs...))
}

// LastProductViewedNotIn applies the NotIn predicate on the "last_product_viewed" field.
func LastProductViewedNotIn(vs ...string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldLastProductViewed, vs...))
}

// LastProductViewedGT applies the GT predicate on the "last_product_viewed" field.
func LastProductViewedGT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldLastProductViewed, v))
}

// LastProductViewedGTE applies the GTE predicate on the "last_product_viewed" field.
func LastProductViewedGTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldLastProductViewed, v))
}

// LastProductViewedLT applies the LT predicate on the "last_product_viewed" field.
func LastProductViewedLT(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldLastProductViewed, v))
}

// LastProductViewedLTE applies the LTE predicate on the "last_product_viewed" field.
func LastProductViewedLTE(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldLastProductViewed, v))
}

// LastProductViewedContains applies the Contains predicate on the "last_product_viewed" field.
func LastProductViewedContains(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContains(FieldLastProductViewed, v))
}

// LastProductViewedHasPrefix applies the HasPrefix predicate on the "last_product_viewed" field.
func LastProductViewedHasPrefix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasPrefix(FieldLastProductViewed, v))
}

// LastProductViewedHasSuffix applies the HasSuffix predicate on the "last_product_viewed" field.
func LastProductViewedHasSuffix(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldHasSuffix(FieldLastProductViewed, v))
}

// LastProductViewedIsNil applies the IsNil predicate on the "last_product_viewed" field.
func LastProductViewedIsNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIsNull(FieldLastProductViewed))
}

// LastProductViewedNotNil applies the NotNil predicate on the "last_product_viewed" field.
func LastProductViewedNotNil() predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotNull(FieldLastProductViewed))
}

// LastProductViewedEqualFold applies the EqualFold predicate on the "last_product_viewed" field.
func LastProductViewedEqualFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEqualFold(FieldLastProductViewed, v))
}

// LastProductViewedContainsFold applies the ContainsFold predicate on the "last_product_viewed" field.
func LastProductViewedContainsFold(v string) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldContainsFold(FieldLastProductViewed, v))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v int) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldEngagementScore, v))
}

// BuyerIntentEQ applies the EQ predicate on the "buyer_intent" field.
func BuyerIntentEQ(v BuyerIntent) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldBuyerIntent, v))
}

// BuyerIntentNEQ applies the NEQ predicate on the "buyer_intent" field.
func BuyerIntentNEQ(v BuyerIntent) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldBuyerIntent, v))
}

// BuyerIntentIn applies the In predicate on the "buyer_intent" field.
func BuyerIntentIn(vs ...BuyerIntent) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldBuyerIntent, vs...))
}

// BuyerIntentNotIn applies the NotIn predicate on the "buyer_intent" field.
func BuyerIntentNotIn(vs ...BuyerIntent) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldBuyerIntent, vs...))
}

// SegmentEQ applies the EQ predicate on the "segment" field.
func SegmentEQ(v Segment) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldSegment, v))
}

// SegmentNEQ applies the NEQ predicate on the "segment" field.
func SegmentNEQ(v Segment) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldSegment, v))
}

// SegmentIn applies the In predicate on the "segment" field.
func SegmentIn(vs ...Segment) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldSegment, vs...))
}

// SegmentNotIn applies the NotIn predicate on the "segment" field.
func SegmentNotIn(vs ...Segment) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldSegment, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.IdentityLink {
	return predicate.IdentityLink(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMerchant applies the HasEdge predicate on the "merchant" edge.
func HasMerchant() predicate.IdentityLink {
	return predicate.IdentityLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MerchantTable, MerchantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMerchantWith applies the HasEdge predicate on the "merchant" edge with a given conditions (other predicates).
func HasMerchantWith(preds ...predicate.Merchant) predicate.IdentityLink {
	return predicate.IdentityLink(func(s *sql.Selector) {
		step := newMerchantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFingerprint applies the HasEdge predicate on the "fingerprint" edge.
func HasFingerprint() predicate.IdentityLink {
	return predicate.IdentityLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FingerprintTable, FingerprintColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFingerprintWith applies the HasEdge predicate on the "fingerprint" edge with a given conditions (other predicates).
func HasFingerprintWith(preds ...predicate.Fingerprint) predicate.IdentityLink {
	return predicate.IdentityLink(func(s *sql.Selector) {
		step := newFingerprintStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBuyer applies the HasEdge predicate on the "buyer" edge.
func HasBuyer() predicate.IdentityLink {
	return predicate.IdentityLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, BuyerTable, BuyerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuyerWith applies the HasEdge predicate on the "buyer" edge with a given conditions (other predicates).
func HasBuyerWith(preds ...predicate.Buyer) predicate.IdentityLink {
	return predicate.IdentityLink(func(s *sql.Selector) {
		step := newBuyerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IdentityLink) predicate.IdentityLink {
	return predicate.IdentityLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IdentityLink) predicate.IdentityLink {
	return predicate.IdentityLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IdentityLink) predicate.IdentityLink {
	return predicate.IdentityLink(sql.NotPredicates(p))
}
