// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Buyer is the predicate function for buyer builders.
type Buyer func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Fingerprint is the predicate function for fingerprint builders.
type Fingerprint func(*sql.Selector)

// IdentityLink is the predicate function for identitylink builders.
type IdentityLink func(*sql.Selector)

// Merchant is the predicate function for merchant builders.
type Merchant func(*sql.Selector)
