// Package schema defines Ent ORM schema types for the visitor identity engine.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Merchant represents a storefront tenant. Every fingerprint, identity link
// and buyer row is scoped to exactly one merchant.
type Merchant struct{ ent.Schema }

// Fields of the Merchant.
func (Merchant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("shop_domain").NotEmpty().Unique().MaxLen(255),
		field.String("name").Optional().MaxLen(255),
		field.String("password_hash").Optional().Nillable().MaxLen(200),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Merchant.
func (Merchant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("fingerprints", Fingerprint.Type),
		edge.To("identity_links", IdentityLink.Type),
		edge.To("buyers", Buyer.Type),
	}
}
