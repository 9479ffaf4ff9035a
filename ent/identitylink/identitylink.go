// Code generated by ent, DO NOT EDIT.

package identitylink

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the identitylink type in the database.
	Label = "identity_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMerchantID holds the string denoting the merchant_id field in the database.
	FieldMerchantID = "merchant_id"
	// FieldFingerprintID holds the string denoting the fingerprint_id field in the database.
	FieldFingerprintID = "fingerprint_id"
	// FieldBuyerID holds the string denoting the buyer_id field in the database.
	FieldBuyerID = "buyer_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldPlatformCustomerID holds the string denoting the platform_customer_id field in the database.
	FieldPlatformCustomerID = "platform_customer_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAuthToken holds the string denoting the auth_token field in the database.
	FieldAuthToken = "auth_token"
	// FieldMatchType holds the string denoting the match_type field in the database.
	FieldMatchType = "match_type"
	// FieldMatchConfidence holds the string denoting the match_confidence field in the database.
	FieldMatchConfidence = "match_confidence"
	// FieldPageViews holds the string denoting the page_views field in the database.
	FieldPageViews = "page_views"
	// FieldProductViews holds the string denoting the product_views field in the database.
	FieldProductViews = "product_views"
	// FieldAddToCarts holds the string denoting the add_to_carts field in the database.
	FieldAddToCarts = "add_to_carts"
	// FieldTotalOrders holds the string denoting the total_orders field in the database.
	FieldTotalOrders = "total_orders"
	// FieldTotalRevenue holds the string denoting the total_revenue field in the database.
	FieldTotalRevenue = "total_revenue"
	// FieldLastPageURL holds the string denoting the last_page_url field in the database.
	FieldLastPageURL = "last_page_url"
	// FieldLastProductViewed holds the string denoting the last_product_viewed field in the database.
	FieldLastProductViewed = "last_product_viewed"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldBuyerIntent holds the string denoting the buyer_intent field in the database.
	FieldBuyerIntent = "buyer_intent"
	// FieldSegment holds the string denoting the segment field in the database.
	FieldSegment = "segment"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMerchant holds the string denoting the merchant edge name in mutations.
	EdgeMerchant = "merchant"
	// EdgeFingerprint holds the string denoting the fingerprint edge name in mutations.
	EdgeFingerprint = "fingerprint"
	// EdgeBuyer holds the string denoting the buyer edge name in mutations.
	EdgeBuyer = "buyer"
	// Table holds the table name of the identitylink in the database.
	Table = "identity_links"
	// MerchantTable is the table that holds the merchant relation/edge.
	MerchantTable = "identity_links"
	// MerchantInverseTable is the table name for the Merchant entity.
	// It exists in this package in order to avoid circular dependency with the "merchant" package.
	MerchantInverseTable = "merchants"
	// MerchantColumn is the table column denoting the merchant relation/edge.
	MerchantColumn = "merchant_id"
	// FingerprintTable is the table that holds the fingerprint relation/edge.
	FingerprintTable = "identity_links"
	// FingerprintInverseTable is the table name for the Fingerprint entity.
	// It exists in this package in order to avoid circular dependency with the "fingerprint" package.
	FingerprintInverseTable = "fingerprints"
	// FingerprintColumn is the table column denoting the fingerprint relation/edge.
	FingerprintColumn = "fingerprint_id"
	// BuyerTable is the table that holds the buyer relation/edge.
	BuyerTable = "identity_links"
	// BuyerInverseTable is the table name for the Buyer entity.
	// It exists in this package in order to avoid circular dependency with the "buyer" package.
	BuyerInverseTable = "buyers"
	// BuyerColumn is the table column denoting the buyer relation/edge.
	BuyerColumn = "buyer_id"
)

// Columns holds all SQL columns for identitylink fields.
var Columns = []string{
	FieldID,
	FieldMerchantID,
	FieldFingerprintID,
	FieldBuyerID,
	FieldCompanyID,
	FieldPlatformCustomerID,
	FieldEmail,
	FieldSessionID,
	FieldAuthToken,
	FieldMatchType,
	FieldMatchConfidence,
	FieldPageViews,
	FieldProductViews,
	FieldAddToCarts,
	FieldTotalOrders,
	FieldTotalRevenue,
	FieldLastPageURL,
	FieldLastProductViewed,
	FieldEngagementScore,
	FieldBuyerIntent,
	FieldSegment,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// AuthTokenValidator is a validator for the "auth_token" field. It is called by the builders before save.
	AuthTokenValidator func(string) error
	// DefaultMatchConfidence holds the default value on creation for the "match_confidence" field.
	DefaultMatchConfidence float64
	// MatchConfidenceValidator is a validator for the "match_confidence" field. It is called by the builders before save.
	MatchConfidenceValidator func(float64) error
	// DefaultPageViews holds the default value on creation for the "page_views" field.
	DefaultPageViews int
	// DefaultProductViews holds the default value on creation for the "product_views" field.
	DefaultProductViews int
	// DefaultAddToCarts holds the default value on creation for the "add_to_carts" field.
	DefaultAddToCarts int
	// DefaultTotalOrders holds the default value on creation for the "total_orders" field.
	DefaultTotalOrders int
	// DefaultTotalRevenue holds the default value on creation for the "total_revenue" field.
	DefaultTotalRevenue float64
	// LastPageURLValidator is a validator for the "last_page_url" field. It is called by the builders before save.
	LastPageURLValidator func(string) error
	// LastProductViewedValidator is a validator for the "last_product_viewed" field. It is called by the builders before save.
	LastProductViewedValidator func(string) error
	// DefaultEngagementScore holds the default value on creation for the "engagement_score" field.
	DefaultEngagementScore int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// MatchType defines the type for the "match_type" enum field.
type MatchType string

// MatchType values.
const (
	MatchTypeAuthenticatedSession  MatchType = "authenticated_session"
	MatchTypeEmail                 MatchType = "email"
	MatchTypePlatformSession       MatchType = "platform_session"
	MatchTypeFingerprintRecurrence MatchType = "fingerprint_recurrence"
)

func (mt MatchType) String() string {
	return string(mt)
}

// MatchTypeValidator is a validator for the "match_type" field enum values. It is called by the builders before save.
func MatchTypeValidator(mt MatchType) error {
	switch mt {
	case MatchTypeAuthenticatedSession, MatchTypeEmail, MatchTypePlatformSession, MatchTypeFingerprintRecurrence:
		return nil
	default:
		return fmt.Errorf("identitylink: invalid enum value for match_type field: %q", mt)
	}
}

// BuyerIntent defines the type for the "buyer_intent" enum field.
type BuyerIntent string

// BuyerIntentCold is the default value of the BuyerIntent enum.
const DefaultBuyerIntent = BuyerIntentCold

// BuyerIntent values.
const (
	BuyerIntentCold       BuyerIntent = "cold"
	BuyerIntentWarm       BuyerIntent = "warm"
	BuyerIntentHot        BuyerIntent = "hot"
	BuyerIntentConverting BuyerIntent = "converting"
)

func (bi BuyerIntent) String() string {
	return string(bi)
}

// BuyerIntentValidator is a validator for the "buyer_intent" field enum values. It is called by the builders before save.
func BuyerIntentValidator(bi BuyerIntent) error {
	switch bi {
	case BuyerIntentCold, BuyerIntentWarm, BuyerIntentHot, BuyerIntentConverting:
		return nil
	default:
		return fmt.Errorf("identitylink: invalid enum value for buyer_intent field: %q", bi)
	}
}

// Segment defines the type for the "segment" enum field.
type Segment string

// SegmentNewVisitor is the default value of the Segment enum.
const DefaultSegment = SegmentNewVisitor

// Segment values.
const (
	SegmentNewVisitor    Segment = "new_visitor"
	SegmentBrowser       Segment = "browser"
	SegmentAbandonedCart Segment = "abandoned_cart"
	SegmentCustomer      Segment = "customer"
	SegmentVip           Segment = "vip"
)

func (s Segment) String() string {
	return string(s)
}

// SegmentValidator is a validator for the "segment" field enum values. It is called by the builders before save.
func SegmentValidator(s Segment) error {
	switch s {
	case SegmentNewVisitor, SegmentBrowser, SegmentAbandonedCart, SegmentCustomer, SegmentVip:
		return nil
	default:
		return fmt.Errorf("identitylink: invalid enum value for segment field: %q", s)
	}
}

// OrderOption defines the ordering options for the IdentityLink queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMerchantID orders the results by the merchant_id field.
func ByMerchantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMerchantID, opts...).ToFunc()
}

// ByFingerprintID orders the results by the fingerprint_id field.
func ByFingerprintID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprintID, opts...).ToFunc()
}

// ByBuyerID orders the results by the buyer_id field.
func ByBuyerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByPlatformCustomerID orders the results by the platform_customer_id field.
func ByPlatformCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformCustomerID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAuthToken orders the results by the auth_token field.
func ByAuthToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthToken, opts...).ToFunc()
}

// ByMatchType orders the results by the match_type field.
func ByMatchType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchType, opts...).ToFunc()
}

// ByMatchConfidence orders the results by the match_confidence field.
func ByMatchConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchConfidence, opts...).ToFunc()
}

// ByPageViews orders the results by the page_views field.
func ByPageViews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageViews, opts...).ToFunc()
}

// ByProductViews orders the results by the product_views field.
func ByProductViews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductViews, opts...).ToFunc()
}

// ByAddToCarts orders the results by the add_to_carts field.
func ByAddToCarts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddToCarts, opts...).ToFunc()
}

// ByTotalOrders orders the results by the total_orders field.
func ByTotalOrders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalOrders, opts...).ToFunc()
}

// ByTotalRevenue orders the results by the total_revenue field.
func ByTotalRevenue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRevenue, opts...).ToFunc()
}

// ByLastPageURL orders the results by the last_page_url field.
func ByLastPageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPageURL, opts...).ToFunc()
}

// ByLastProductViewed orders the results by the last_product_viewed field.
func ByLastProductViewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProductViewed, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByBuyerIntent orders the results by the buyer_intent field.
func ByBuyerIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerIntent, opts...).ToFunc()
}

// BySegment orders the results by the segment field.
func BySegment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegment, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMerchantField orders the results by merchant field.
func ByMerchantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMerchantStep(), sql.OrderByField(field, opts...))
	}
}

// ByFingerprintField orders the results by fingerprint field.
func ByFingerprintField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFingerprintStep(), sql.OrderByField(field, opts...))
	}
}

// ByBuyerField orders the results by buyer field.
func ByBuyerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuyerStep(), sql.OrderByField(field, opts...))
	}
}
func newMerchantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MerchantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MerchantTable, MerchantColumn),
	)
}
func newFingerprintStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FingerprintInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FingerprintTable, FingerprintColumn),
	)
}
func newBuyerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuyerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, BuyerTable, BuyerColumn),
	)
}
