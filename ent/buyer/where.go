// Code generated by ent, DO NOT EDIT.

package buyer

import (
	"time"
	"visitor-iq/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldLTE(FieldID, id))
}

// MerchantID applies equality check predicate on the "merchant_id" field. It's identical to MerchantIDEQ.
func MerchantID(v uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldMerchantID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldEmail, v))
}

// PlatformCustomerID applies equality check predicate on the "platform_customer_id" field. It's identical to PlatformCustomerIDEQ.
func PlatformCustomerID(v int64) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldPlatformCustomerID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldCompanyID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldCreatedAt, v))
}

// MerchantIDEQ applies the EQ predicate on the "merchant_id" field.
func MerchantIDEQ(v uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldMerchantID, v))
}

// MerchantIDNEQ applies the NEQ predicate on the "merchant_id" field.
func MerchantIDNEQ(v uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldNEQ(FieldMerchantID, v))
}

// MerchantIDIn applies the In predicate on the "merchant_id" field.
func MerchantIDIn(vs ...uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldIn(FieldMerchantID, vs...))
}

// MerchantIDNotIn applies the NotIn predicate on the "merchant_id" field.
func MerchantIDNotIn(vs ...uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldNotIn(FieldMerchantID, vs...))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Buyer {
	return predicate.Buyer(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Buyer {
	return predicate.Buyer(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldContainsFold(FieldEmail, v))
}

// PlatformCustomerIDEQ applies the EQ predicate on the "platform_customer_id" field.
func PlatformCustomerIDEQ(v int64) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDNEQ applies the NEQ predicate on the "platform_customer_id" field.
func PlatformCustomerIDNEQ(v int64) predicate.Buyer {
	return predicate.Buyer(sql.FieldNEQ(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDIn applies the In predicate on the "platform_customer_id" field.
func PlatformCustomerIDIn(vs ...int64) predicate.Buyer {
	return predicate.Buyer(sql.FieldIn(FieldPlatformCustomerID, vs...))
}

// PlatformCustomerIDNotIn applies the NotIn predicate on the "platform_customer_id" field.
func PlatformCustomerIDNotIn(vs ...int64) predicate.Buyer {
	return predicate.Buyer(sql.FieldNotIn(FieldPlatformCustomerID, vs...))
}

// PlatformCustomerIDGT applies the GT predicate on the "platform_customer_id" field.
func PlatformCustomerIDGT(v int64) predicate.Buyer {
	return predicate.Buyer(sql.FieldGT(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDGTE applies the GTE predicate on the "platform_customer_id" field.
func PlatformCustomerIDGTE(v int64) predicate.Buyer {
	return predicate.Buyer(sql.FieldGTE(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDLT applies the LT predicate on the "platform_customer_id" field.
func PlatformCustomerIDLT(v int64) predicate.Buyer {
	return predicate.Buyer(sql.FieldLT(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDLTE applies the LTE predicate on the "platform_customer_id" field.
func PlatformCustomerIDLTE(v int64) predicate.Buyer {
	return predicate.Buyer(sql.FieldLTE(FieldPlatformCustomerID, v))
}

// PlatformCustomerIDIsNil applies the IsNil predicate on the "platform_customer_id" field.
func PlatformCustomerIDIsNil() predicate.Buyer {
	return predicate.Buyer(sql.FieldIsNull(FieldPlatformCustomerID))
}

// PlatformCustomerIDNotNil applies the NotNil predicate on the "platform_customer_id" field.
func PlatformCustomerIDNotNil() predicate.Buyer {
	return predicate.Buyer(sql.FieldNotNull(FieldPlatformCustomerID))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.Buyer {
	return predicate.Buyer(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.Buyer {
	return predicate.Buyer(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.Buyer {
	return predicate.Buyer(sql.FieldNotNull(FieldCompanyID))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Buyer {
	return predicate.Buyer(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Buyer {
	return predicate.Buyer(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Buyer {
	return predicate.Buyer(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Buyer {
	return predicate.Buyer(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Buyer {
	return predicate.Buyer(sql.FieldContainsFold(FieldName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Buyer {
	return predicate.Buyer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Buyer {
	return predicate.Buyer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Buyer {
	return predicate.Buyer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Buyer {
	return predicate.Buyer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Buyer {
	return predicate.Buyer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Buyer {
	return predicate.Buyer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Buyer {
	return predicate.Buyer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Buyer {
	return predicate.Buyer(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMerchant applies the HasEdge predicate on the "merchant" edge.
func HasMerchant() predicate.Buyer {
	return predicate.Buyer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MerchantTable, MerchantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMerchantWith applies the HasEdge predicate on the "merchant" edge with a given conditions (other predicates).
func HasMerchantWith(preds ...predicate.Merchant) predicate.Buyer {
	return predicate.Buyer(func(s *sql.Selector) {
		step := newMerchantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Buyer {
	return predicate.Buyer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Buyer {
	return predicate.Buyer(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Buyer) predicate.Buyer {
	return predicate.Buyer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Buyer) predicate.Buyer {
	return predicate.Buyer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Buyer) predicate.Buyer {
	return predicate.Buyer(sql.NotPredicates(p))
}
