package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Buyer is a known customer record. Owned by the account subsystem; the
// identity resolver reads it but never mutates it.
type Buyer struct{ ent.Schema }

// Fields of the Buyer.
func (Buyer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("merchant_id", uuid.UUID{}),
		field.String("email").NotEmpty().MaxLen(320),
		field.Int64("platform_customer_id").Optional().Nillable(),
		field.UUID("company_id", uuid.UUID{}).Optional().Nillable(),
		field.String("name").Optional().MaxLen(255),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Buyer.
func (Buyer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("merchant", Merchant.Type).Ref("buyers").Field("merchant_id").Unique().Required(),
		edge.To("company", Company.Type).Field("company_id").Unique(),
	}
}

// Indexes of the Buyer.
func (Buyer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("merchant_id", "email").Unique(),
		index.Fields("merchant_id", "platform_customer_id"),
	}
}
