// Code generated by ent, DO NOT EDIT.

package merchant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the merchant type in the database.
	Label = "merchant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldShopDomain holds the string denoting the shop_domain field in the database.
	FieldShopDomain = "shop_domain"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFingerprints holds the string denoting the fingerprints edge name in mutations.
	EdgeFingerprints = "fingerprints"
	// EdgeIdentityLinks holds the string denoting the identity_links edge name in mutations.
	EdgeIdentityLinks = "identity_links"
	// EdgeBuyers holds the string denoting the buyers edge name in mutations.
	EdgeBuyers = "buyers"
	// Table holds the table name of the merchant in the database.
	Table = "merchants"
	// FingerprintsTable is the table that holds the fingerprints relation/edge.
	FingerprintsTable = "fingerprints"
	// FingerprintsInverseTable is the table name for the Fingerprint entity.
	// It exists in this package in order to avoid circular dependency with the "fingerprint" package.
	FingerprintsInverseTable = "fingerprints"
	// FingerprintsColumn is the table column denoting the fingerprints relation/edge.
	FingerprintsColumn = "merchant_id"
	// IdentityLinksTable is the table that holds the identity_links relation/edge.
	IdentityLinksTable = "identity_links"
	// IdentityLinksInverseTable is the table name for the IdentityLink entity.
	// It exists in this package in order to avoid circular dependency with the "identitylink" package.
	IdentityLinksInverseTable = "identity_links"
	// IdentityLinksColumn is the table column denoting the identity_links relation/edge.
	IdentityLinksColumn = "merchant_id"
	// BuyersTable is the table that holds the buyers relation/edge.
	BuyersTable = "buyers"
	// BuyersInverseTable is the table name for the Buyer entity.
	// It exists in this package in order to avoid circular dependency with the "buyer" package.
	BuyersInverseTable = "buyers"
	// BuyersColumn is the table column denoting the buyers relation/edge.
	BuyersColumn = "merchant_id"
)

// Columns holds all SQL columns for merchant fields.
var Columns = []string{
	FieldID,
	FieldShopDomain,
	FieldName,
	FieldPasswordHash,
	FieldCreatedAt,
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
	// ShopDomainValidator is a validator for the "shop_domain" field. It is called by the builders before save.
	ShopDomainValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	PasswordHashValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Merchant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByShopDomain orders the results by the shop_domain field.
func ByShopDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShopDomain, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFingerprintsCount orders the results by fingerprints count.
func ByFingerprintsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFingerprintsStep(), opts...)
	}
}

// ByFingerprints orders the results by fingerprints terms.
func ByFingerprints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFingerprintsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByIdentityLinksCount orders the results by identity_links count.
func ByIdentityLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIdentityLinksStep(), opts...)
	}
}

// ByIdentityLinks orders the results by identity_links terms.
func ByIdentityLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIdentityLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBuyersCount orders the results by buyers count.
func ByBuyersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBuyersStep(), opts...)
	}
}

// ByBuyers orders the results by buyers terms.
func ByBuyers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuyersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFingerprintsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FingerprintsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FingerprintsTable, FingerprintsColumn),
	)
}
func newIdentityLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IdentityLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IdentityLinksTable, IdentityLinksColumn),
	)
}
func newBuyersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuyersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BuyersTable, BuyersColumn),
	)
}
