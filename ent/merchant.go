// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"visitor-iq/ent/merchant"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Merchant is the model entity for the Merchant schema.
type Merchant struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ShopDomain holds the value of the "shop_domain" field.
	ShopDomain string `json:"shop_domain,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// PasswordHash holds the value of the "password_hash" field.
	PasswordHash *string `json:"password_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MerchantQuery when eager-loading is set.
	Edges        MerchantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MerchantEdges holds the relations/edges for other nodes in the graph.
type MerchantEdges struct {
	// Fingerprints holds the value of the fingerprints edge.
	Fingerprints []*Fingerprint `json:"fingerprints,omitempty"`
	// IdentityLinks holds the value of the identity_links edge.
	IdentityLinks []*IdentityLink `json:"identity_links,omitempty"`
	// Buyers holds the value of the buyers edge.
	Buyers []*Buyer `json:"buyers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// FingerprintsOrErr returns the Fingerprints value or an error if the edge
// was not loaded in eager-loading.
func (e MerchantEdges) FingerprintsOrErr() ([]*Fingerprint, error) {
	if e.loadedTypes[0] {
		return e.Fingerprints, nil
	}
	return nil, &NotLoadedError{edge: "fingerprints"}
}

// IdentityLinksOrErr returns the IdentityLinks value or an error if the edge
// was not loaded in eager-loading.
func (e MerchantEdges) IdentityLinksOrErr() ([]*IdentityLink, error) {
	if e.loadedTypes[1] {
		return e.IdentityLinks, nil
	}
	return nil, &NotLoadedError{edge: "identity_links"}
}

// BuyersOrErr returns the Buyers value or an error if the edge
// was not loaded in eager-loading.
func (e MerchantEdges) BuyersOrErr() ([]*Buyer, error) {
	if e.loadedTypes[2] {
		return e.Buyers, nil
	}
	return nil, &NotLoadedError{edge: "buyers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Merchant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case merchant.FieldShopDomain, merchant.FieldName, merchant.FieldPasswordHash:
			values[i] = new(sql.NullString)
		case merchant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case merchant.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Merchant fields.
func (_m *Merchant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case merchant.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case merchant.FieldShopDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shop_domain", values[i])
			} else if value.Valid {
				_m.ShopDomain = value.String
			}
		case merchant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case merchant.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = new(string)
				*_m.PasswordHash = value.String
			}
		case merchant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Merchant.
// This includes values selected through modifiers, order, etc.
func (_m *Merchant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFingerprints queries the "fingerprints" edge of the Merchant entity.
func (_m *Merchant) QueryFingerprints() *FingerprintQuery {
	return NewMerchantClient(_m.config).QueryFingerprints(_m)
}

// QueryIdentityLinks queries the "identity_links" edge of the Merchant entity.
func (_m *Merchant) QueryIdentityLinks() *IdentityLinkQuery {
	return NewMerchantClient(_m.config).QueryIdentityLinks(_m)
}

// QueryBuyers queries the "buyers" edge of the Merchant entity.
func (_m *Merchant) QueryBuyers() *BuyerQuery {
	return NewMerchantClient(_m.config).QueryBuyers(_m)
}

// Update returns a builder for updating this Merchant.
// Note that you need to call Merchant.Unwrap() before calling this method if this Merchant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Merchant) Update() *MerchantUpdateOne {
	return NewMerchantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Merchant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Merchant) Unwrap() *Merchant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Merchant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Merchant) String() string {
	var builder strings.Builder
	builder.WriteString("Merchant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("shop_domain=")
	builder.WriteString(_m.ShopDomain)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.PasswordHash; v != nil {
		builder.WriteString("password_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Merchants is a parsable slice of Merchant.
type Merchants []*Merchant
