package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Fingerprint is one observed browser/device fingerprint per merchant.
// visit_count only grows and last_seen_at never moves backward; rows are
// never deleted by this subsystem.
type Fingerprint struct{ ent.Schema }

// Fields of the Fingerprint.
func (Fingerprint) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("merchant_id", uuid.UUID{}),
		field.String("fp_hash").NotEmpty().MaxLen(128),

		// sub-signal rendering hashes
		field.String("canvas_hash").Optional().Nillable().MaxLen(128),
		field.String("webgl_hash").Optional().Nillable().MaxLen(128),
		field.String("audio_hash").Optional().Nillable().MaxLen(128),

		// device/browser descriptors
		field.String("user_agent").Optional().MaxLen(1024),
		field.String("platform").Optional().MaxLen(64),
		field.String("language").Optional().MaxLen(64),
		field.String("timezone").Optional().MaxLen(64),
		field.Int("screen_width").Default(0),
		field.Int("screen_height").Default(0),
		field.Float("pixel_ratio").Default(0),
		field.Bool("touch_support").Default(false),
		field.Int("hardware_concurrency").Default(0),
		field.Float("device_memory").Default(0),
		field.String("gpu_vendor").Optional().MaxLen(255),
		field.String("gpu_renderer").Optional().MaxLen(255),
		field.String("connection_type").Optional().MaxLen(32),

		// privacy flags
		field.Bool("cookies_enabled").Default(true),
		field.Bool("do_not_track").Default(false),
		field.Bool("ad_block").Default(false),

		// classifier output, frozen at first full collection
		field.Bool("is_bot").Default(false),
		field.Float("bot_score").Default(0),
		field.Float("confidence").Default(0),
		field.Int("signal_count").Default(0),

		field.Int("visit_count").Default(1).Min(1),
		field.String("ip_address").Optional().MaxLen(64),
		field.Time("first_seen_at").Default(time.Now).Immutable(),
		field.Time("last_seen_at").Default(time.Now),
	}
}

// Edges of the Fingerprint.
func (Fingerprint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("merchant", Merchant.Type).Ref("fingerprints").Field("merchant_id").Unique().Required(),
		edge.To("identity_links", IdentityLink.Type),
	}
}

// Indexes of the Fingerprint.
func (Fingerprint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("merchant_id", "fp_hash").Unique(),
		index.Fields("merchant_id", "last_seen_at"),
		index.Fields("merchant_id", "is_bot"),
	}
}
