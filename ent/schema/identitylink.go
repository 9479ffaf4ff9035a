package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// IdentityLink associates a fingerprint with a (possibly unresolved) buyer
// via one match strategy. A fingerprint may carry one row per match type;
// rows are append-mostly and never deleted, so weaker later evidence can
// never destroy stronger historical evidence of another type.
type IdentityLink struct{ ent.Schema }

// Fields of the IdentityLink.
func (IdentityLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("merchant_id", uuid.UUID{}),
		field.UUID("fingerprint_id", uuid.UUID{}),

		// buyer-identifying fields: only ever added, never cleared
		field.UUID("buyer_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("company_id", uuid.UUID{}).Optional().Nillable(),
		field.Int64("platform_customer_id").Optional().Nillable(),
		field.String("email").Optional().Nillable().MaxLen(320),
		field.String("session_id").Optional().Nillable().MaxLen(128),
		field.String("auth_token").Optional().Nillable().MaxLen(512),

		field.Enum("match_type").Values(
			"authenticated_session",
			"email",
			"platform_session",
			"fingerprint_recurrence",
		),
		field.Float("match_confidence").Default(0).Min(0).Max(1),

		// behavioral counters
		field.Int("page_views").Default(0),
		field.Int("product_views").Default(0),
		field.Int("add_to_carts").Default(0),
		field.Int("total_orders").Default(0),
		field.Float("total_revenue").Default(0),
		field.String("last_page_url").Optional().MaxLen(2048),
		field.String("last_product_viewed").Optional().MaxLen(128),

		// derived state, recomputed together on every behavioral update
		field.Int("engagement_score").Default(0),
		field.Enum("buyer_intent").Values("cold", "warm", "hot", "converting").Default("cold"),
		field.Enum("segment").Values("new_visitor", "browser", "abandoned_cart", "customer", "vip").Default("new_visitor"),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the IdentityLink.
func (IdentityLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("merchant", Merchant.Type).Ref("identity_links").Field("merchant_id").Unique().Required(),
		edge.From("fingerprint", Fingerprint.Type).Ref("identity_links").Field("fingerprint_id").Unique().Required(),
		edge.To("buyer", Buyer.Type).Field("buyer_id").Unique(),
	}
}

// Indexes of the IdentityLink.
func (IdentityLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("merchant_id", "fingerprint_id", "match_type").Unique(),
		index.Fields("merchant_id", "engagement_score"),
		index.Fields("merchant_id", "buyer_intent"),
		index.Fields("merchant_id", "segment"),
		index.Fields("auth_token"),
	}
}
