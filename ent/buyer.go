// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"visitor-iq/ent/buyer"
	"visitor-iq/ent/company"
	"visitor-iq/ent/merchant"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Buyer is the model entity for the Buyer schema.
type Buyer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MerchantID holds the value of the "merchant_id" field.
	MerchantID uuid.UUID `json:"merchant_id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// PlatformCustomerID holds the value of the "platform_customer_id" field.
	PlatformCustomerID *int64 `json:"platform_customer_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BuyerQuery when eager-loading is set.
	Edges        BuyerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BuyerEdges holds the relations/edges for other nodes in the graph.
type BuyerEdges struct {
	// Merchant holds the value of the merchant edge.
	Merchant *Merchant `json:"merchant,omitempty"`
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MerchantOrErr returns the Merchant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BuyerEdges) MerchantOrErr() (*Merchant, error) {
	if e.Merchant != nil {
		return e.Merchant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: merchant.Label}
	}
	return nil, &NotLoadedError{edge: "merchant"}
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BuyerEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Buyer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case buyer.FieldCompanyID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case buyer.FieldPlatformCustomerID:
			values[i] = new(sql.NullInt64)
		case buyer.FieldEmail, buyer.FieldName:
			values[i] = new(sql.NullString)
		case buyer.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case buyer.FieldID, buyer.FieldMerchantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Buyer fields.
func (_m *Buyer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case buyer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case buyer.FieldMerchantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field merchant_id", values[i])
			} else if value != nil {
				_m.MerchantID = *value
			}
		case buyer.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case buyer.FieldPlatformCustomerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field platform_customer_id", values[i])
			} else if value.Valid {
				_m.PlatformCustomerID = new(int64)
				*_m.PlatformCustomerID = value.Int64
			}
		case buyer.FieldCompanyID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = new(uuid.UUID)
				*_m.CompanyID = *value.S.(*uuid.UUID)
			}
		case buyer.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case buyer.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Buyer.
// This includes values selected through modifiers, order, etc.
func (_m *Buyer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMerchant queries the "merchant" edge of the Buyer entity.
func (_m *Buyer) QueryMerchant() *MerchantQuery {
	return NewBuyerClient(_m.config).QueryMerchant(_m)
}

// QueryCompany queries the "company" edge of the Buyer entity.
func (_m *Buyer) QueryCompany() *CompanyQuery {
	return NewBuyerClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this Buyer.
// Note that you need to call Buyer.Unwrap() before calling this method if this Buyer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Buyer) Update() *BuyerUpdateOne {
	return NewBuyerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Buyer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Buyer) Unwrap() *Buyer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Buyer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Buyer) String() string {
	var builder strings.Builder
	builder.WriteString("Buyer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("merchant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MerchantID))
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	if v := _m.PlatformCustomerID; v != nil {
		builder.WriteString("platform_customer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompanyID; v != nil {
		builder.WriteString("company_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Buyers is a parsable slice of Buyer.
type Buyers []*Buyer
