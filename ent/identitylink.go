// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"visitor-iq/ent/buyer"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/identitylink"
	"visitor-iq/ent/merchant"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// IdentityLink is the model entity for the IdentityLink schema.
type IdentityLink struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MerchantID holds the value of the "merchant_id" field.
	MerchantID uuid.UUID `json:"merchant_id,omitempty"`
	// FingerprintID holds the value of the "fingerprint_id" field.
	FingerprintID uuid.UUID `json:"fingerprint_id,omitempty"`
	// BuyerID holds the value of the "buyer_id" field.
	BuyerID *uuid.UUID `json:"buyer_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	// PlatformCustomerID holds the value of the "platform_customer_id" field.
	PlatformCustomerID *int64 `json:"platform_customer_id,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID *string `json:"session_id,omitempty"`
	// AuthToken holds the value of the "auth_token" field.
	AuthToken *string `json:"auth_token,omitempty"`
	// MatchType holds the value of the "match_type" field.
	MatchType identitylink.MatchType `json:"match_type,omitempty"`
	// MatchConfidence holds the value of the "match_confidence" field.
	MatchConfidence float64 `json:"match_confidence,omitempty"`
	// PageViews holds the value of the "page_views" field.
	PageViews int `json:"page_views,omitempty"`
	// ProductViews holds the value of the "product_views" field.
	ProductViews int `json:"product_views,omitempty"`
	// AddToCarts holds the value of the "add_to_carts" field.
	AddToCarts int `json:"add_to_carts,omitempty"`
	// TotalOrders holds the value of the "total_orders" field.
	TotalOrders int `json:"total_orders,omitempty"`
	// TotalRevenue holds the value of the "total_revenue" field.
	TotalRevenue float64 `json:"total_revenue,omitempty"`
	// LastPageURL holds the value of the "last_page_url" field.
	LastPageURL string `json:"last_page_url,omitempty"`
	// LastProductViewed holds the value of the "last_product_viewed" field.
	LastProductViewed string `json:"last_product_viewed,omitempty"`
	// EngagementScore holds the value of the "engagement_score" field.
	EngagementScore int `json:"engagement_score,omitempty"`
	// BuyerIntent holds the value of the "buyer_intent" field.
	BuyerIntent identitylink.BuyerIntent `json:"buyer_intent,omitempty"`
	// Segment holds the value of the "segment" field.
	Segment identitylink.Segment `json:"segment,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IdentityLinkQuery when eager-loading is set.
	Edges        IdentityLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IdentityLinkEdges holds the relations/edges for other nodes in the graph.
type IdentityLinkEdges struct {
	// Merchant holds the value of the merchant edge.
	Merchant *Merchant `json:"merchant,omitempty"`
	// Fingerprint holds the value of the fingerprint edge.
	Fingerprint *Fingerprint `json:"fingerprint,omitempty"`
	// Buyer holds the value of the buyer edge.
	Buyer *Buyer `json:"buyer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MerchantOrErr returns the Merchant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IdentityLinkEdges) MerchantOrErr() (*Merchant, error) {
	if e.Merchant != nil {
		return e.Merchant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: merchant.Label}
	}
	return nil, &NotLoadedError{edge: "merchant"}
}

// FingerprintOrErr returns the Fingerprint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IdentityLinkEdges) FingerprintOrErr() (*Fingerprint, error) {
	if e.Fingerprint != nil {
		return e.Fingerprint, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: fingerprint.Label}
	}
	return nil, &NotLoadedError{edge: "fingerprint"}
}

// BuyerOrErr returns the Buyer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IdentityLinkEdges) BuyerOrErr() (*Buyer, error) {
	if e.Buyer != nil {
		return e.Buyer, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: buyer.Label}
	}
	return nil, &NotLoadedError{edge: "buyer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IdentityLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case identitylink.FieldBuyerID, identitylink.FieldCompanyID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case identitylink.FieldMatchConfidence, identitylink.FieldTotalRevenue:
			values[i] = new(sql.NullFloat64)
		case identitylink.FieldPlatformCustomerID, identitylink.FieldPageViews, identitylink.FieldProductViews, identitylink.FieldAddToCarts, identitylink.FieldTotalOrders, identitylink.FieldEngagementScore:
			values[i] = new(sql.NullInt64)
		case identitylink.FieldEmail, identitylink.FieldSessionID, identitylink.FieldAuthToken, identitylink.FieldMatchType, identitylink.FieldLastPageURL, identitylink.FieldLastProductViewed, identitylink.FieldBuyerIntent, identitylink.FieldSegment:
			values[i] = new(sql.NullString)
		case identitylink.FieldCreatedAt, identitylink.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case identitylink.FieldID, identitylink.FieldMerchantID, identitylink.FieldFingerprintID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IdentityLink fields.
func (_m *IdentityLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case identitylink.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case identitylink.FieldMerchantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field merchant_id", values[i])
			} else if value != nil {
				_m.MerchantID = *value
			}
		case identitylink.FieldFingerprintID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint_id", values[i])
			} else if value != nil {
				_m.FingerprintID = *value
			}
		case identitylink.FieldBuyerID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_id", values[i])
			} else if value.Valid {
				_m.BuyerID = new(uuid.UUID)
				*_m.BuyerID = *value.S.(*uuid.UUID)
			}
		case identitylink.FieldCompanyID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = new(uuid.UUID)
				*_m.CompanyID = *value.S.(*uuid.UUID)
			}
		case identitylink.FieldPlatformCustomerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field platform_customer_id", values[i])
			} else if value.Valid {
				_m.PlatformCustomerID = new(int64)
				*_m.PlatformCustomerID = value.Int64
			}
		case identitylink.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case identitylink.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case identitylink.FieldAuthToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_token", values[i])
			} else if value.Valid {
				_m.AuthToken = new(string)
				*_m.AuthToken = value.String
			}
		case identitylink.FieldMatchType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_type", values[i])
			} else if value.Valid {
				_m.MatchType = identitylink.MatchType(value.String)
			}
		case identitylink.FieldMatchConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field match_confidence", values[i])
			} else if value.Valid {
				_m.MatchConfidence = value.Float64
			}
		case identitylink.FieldPageViews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_views", values[i])
			} else if value.Valid {
				_m.PageViews = int(value.Int64)
			}
		case identitylink.FieldProductViews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field product_views", values[i])
			} else if value.Valid {
				_m.ProductViews = int(value.Int64)
			}
		case identitylink.FieldAddToCarts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field add_to_carts", values[i])
			} else if value.Valid {
				_m.AddToCarts = int(value.Int64)
			}
		case identitylink.FieldTotalOrders:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_orders", values[i])
			} else if value.Valid {
				_m.TotalOrders = int(value.Int64)
			}
		case identitylink.FieldTotalRevenue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_revenue", values[i])
			} else if value.Valid {
				_m.TotalRevenue = value.Float64
			}
		case identitylink.FieldLastPageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_page_url", values[i])
			} else if value.Valid {
				_m.LastPageURL = value.String
			}
		case identitylink.FieldLastProductViewed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_product_viewed", values[i])
			} else if value.Valid {
				_m.LastProductViewed = value.String
			}
		case identitylink.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = int(value.Int64)
			}
		case identitylink.FieldBuyerIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_intent", values[i])
			} else if value.Valid {
				_m.BuyerIntent = identitylink.BuyerIntent(value.String)
			}
		case identitylink.FieldSegment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field segment", values[i])
			} else if value.Valid {
				_m.Segment = identitylink.Segment(value.String)
			}
		case identitylink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case identitylink.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IdentityLink.
// This includes values selected through modifiers, order, etc.
func (_m *IdentityLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMerchant queries the "merchant" edge of the IdentityLink entity.
func (_m *IdentityLink) QueryMerchant() *MerchantQuery {
	return NewIdentityLinkClient(_m.config).QueryMerchant(_m)
}

// QueryFingerprint queries the "fingerprint" edge of the IdentityLink entity.
func (_m *IdentityLink) QueryFingerprint() *FingerprintQuery {
	return NewIdentityLinkClient(_m.config).QueryFingerprint(_m)
}

// QueryBuyer queries the "buyer" edge of the IdentityLink entity.
func (_m *IdentityLink) QueryBuyer() *BuyerQuery {
	return NewIdentityLinkClient(_m.config).QueryBuyer(_m)
}

// Update returns a builder for updating this IdentityLink.
// Note that you need to call IdentityLink.Unwrap() before calling this method if this IdentityLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IdentityLink) Update() *IdentityLinkUpdateOne {
	return NewIdentityLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IdentityLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IdentityLink) Unwrap() *IdentityLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IdentityLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IdentityLink) String() string {
	var builder strings.Builder
	builder.WriteString("IdentityLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("merchant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MerchantID))
	builder.WriteString(", ")
	builder.WriteString("fingerprint_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FingerprintID))
	builder.WriteString(", ")
	if v := _m.BuyerID; v != nil {
		builder.WriteString("buyer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompanyID; v != nil {
		builder.WriteString("company_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PlatformCustomerID; v != nil {
		builder.WriteString("platform_customer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AuthToken; v != nil {
		builder.WriteString("auth_token=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("match_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchType))
	builder.WriteString(", ")
	builder.WriteString("match_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchConfidence))
	builder.WriteString(", ")
	builder.WriteString("page_views=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageViews))
	builder.WriteString(", ")
	builder.WriteString("product_views=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductViews))
	builder.WriteString(", ")
	builder.WriteString("add_to_carts=")
	builder.WriteString(fmt.Sprintf("%v", _m.AddToCarts))
	builder.WriteString(", ")
	builder.WriteString("total_orders=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalOrders))
	builder.WriteString(", ")
	builder.WriteString("total_revenue=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRevenue))
	builder.WriteString(", ")
	builder.WriteString("last_page_url=")
	builder.WriteString(_m.LastPageURL)
	builder.WriteString(", ")
	builder.WriteString("last_product_viewed=")
	builder.WriteString(_m.LastProductViewed)
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("buyer_intent=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuyerIntent))
	builder.WriteString(", ")
	builder.WriteString("segment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Segment))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IdentityLinks is a parsable slice of IdentityLink.
type IdentityLinks []*IdentityLink
