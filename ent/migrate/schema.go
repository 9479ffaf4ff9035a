// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BuyersColumns holds the columns for the "buyers" table.
	BuyersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Size: 320},
		{Name: "platform_customer_id", Type: field.TypeInt64, Nullable: true},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID, Nullable: true},
		{Name: "merchant_id", Type: field.TypeUUID},
	}
	// BuyersTable holds the schema information for the "buyers" table.
	BuyersTable = &schema.Table{
		Name:       "buyers",
		Columns:    BuyersColumns,
		PrimaryKey: []*schema.Column{BuyersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "buyers_companies_company",
				Columns:    []*schema.Column{BuyersColumns[5]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "buyers_merchants_buyers",
				Columns:    []*schema.Column{BuyersColumns[6]},
				RefColumns: []*schema.Column{MerchantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "buyer_merchant_id_email",
				Unique:  true,
				Columns: []*schema.Column{BuyersColumns[6], BuyersColumns[1]},
			},
			{
				Name:    "buyer_merchant_id_platform_customer_id",
				Unique:  false,
				Columns: []*schema.Column{BuyersColumns[6], BuyersColumns[2]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "domain", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// FingerprintsColumns holds the columns for the "fingerprints" table.
	FingerprintsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "fp_hash", Type: field.TypeString, Size: 128},
		{Name: "canvas_hash", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "webgl_hash", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "audio_hash", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "user_agent", Type: field.TypeString, Nullable: true, Size: 1024},
		{Name: "platform", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "language", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "timezone", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "screen_width", Type: field.TypeInt, Default: 0},
		{Name: "screen_height", Type: field.TypeInt, Default: 0},
		{Name: "pixel_ratio", Type: field.TypeFloat64, Default: 0},
		{Name: "touch_support", Type: field.TypeBool, Default: false},
		{Name: "hardware_concurrency", Type: field.TypeInt, Default: 0},
		{Name: "device_memory", Type: field.TypeFloat64, Default: 0},
		{Name: "gpu_vendor", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "gpu_renderer", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "connection_type", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "cookies_enabled", Type: field.TypeBool, Default: true},
		{Name: "do_not_track", Type: field.TypeBool, Default: false},
		{Name: "ad_block", Type: field.TypeBool, Default: false},
		{Name: "is_bot", Type: field.TypeBool, Default: false},
		{Name: "bot_score", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "signal_count", Type: field.TypeInt, Default: 0},
		{Name: "visit_count", Type: field.TypeInt, Default: 1},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "merchant_id", Type: field.TypeUUID},
	}
	// FingerprintsTable holds the schema information for the "fingerprints" table.
	FingerprintsTable = &schema.Table{
		Name:       "fingerprints",
		Columns:    FingerprintsColumns,
		PrimaryKey: []*schema.Column{FingerprintsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fingerprints_merchants_fingerprints",
				Columns:    []*schema.Column{FingerprintsColumns[29]},
				RefColumns: []*schema.Column{MerchantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fingerprint_merchant_id_fp_hash",
				Unique:  true,
				Columns: []*schema.Column{FingerprintsColumns[29], FingerprintsColumns[1]},
			},
			{
				Name:    "fingerprint_merchant_id_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{FingerprintsColumns[29], FingerprintsColumns[28]},
			},
			{
				Name:    "fingerprint_merchant_id_is_bot",
				Unique:  false,
				Columns: []*schema.Column{FingerprintsColumns[29], FingerprintsColumns[21]},
			},
		},
	}
	// IdentityLinksColumns holds the columns for the "identity_links" table.
	IdentityLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_id", Type: field.TypeUUID, Nullable: true},
		{Name: "platform_customer_id", Type: field.TypeInt64, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 320},
		{Name: "session_id", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "auth_token", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "match_type", Type: field.TypeEnum, Enums: []string{"authenticated_session", "email", "platform_session", "fingerprint_recurrence"}},
		{Name: "match_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "page_views", Type: field.TypeInt, Default: 0},
		{Name: "product_views", Type: field.TypeInt, Default: 0},
		{Name: "add_to_carts", Type: field.TypeInt, Default: 0},
		{Name: "total_orders", Type: field.TypeInt, Default: 0},
		{Name: "total_revenue", Type: field.TypeFloat64, Default: 0},
		{Name: "last_page_url", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "last_product_viewed", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "engagement_score", Type: field.TypeInt, Default: 0},
		{Name: "buyer_intent", Type: field.TypeEnum, Enums: []string{"cold", "warm", "hot", "converting"}, Default: "cold"},
		{Name: "segment", Type: field.TypeEnum, Enums: []string{"new_visitor", "browser", "abandoned_cart", "customer", "vip"}, Default: "new_visitor"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "fingerprint_id", Type: field.TypeUUID},
		{Name: "buyer_id", Type: field.TypeUUID, Nullable: true},
		{Name: "merchant_id", Type: field.TypeUUID},
	}
	// IdentityLinksTable holds the schema information for the "identity_links" table.
	IdentityLinksTable = &schema.Table{
		Name:       "identity_links",
		Columns:    IdentityLinksColumns,
		PrimaryKey: []*schema.Column{IdentityLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "identity_links_fingerprints_identity_links",
				Columns:    []*schema.Column{IdentityLinksColumns[20]},
				RefColumns: []*schema.Column{FingerprintsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "identity_links_buyers_buyer",
				Columns:    []*schema.Column{IdentityLinksColumns[21]},
				RefColumns: []*schema.Column{BuyersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "identity_links_merchants_identity_links",
				Columns:    []*schema.Column{IdentityLinksColumns[22]},
				RefColumns: []*schema.Column{MerchantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "identitylink_merchant_id_fingerprint_id_match_type",
				Unique:  true,
				Columns: []*schema.Column{IdentityLinksColumns[22], IdentityLinksColumns[20], IdentityLinksColumns[6]},
			},
			{
				Name:    "identitylink_merchant_id_engagement_score",
				Unique:  false,
				Columns: []*schema.Column{IdentityLinksColumns[22], IdentityLinksColumns[15]},
			},
			{
				Name:    "identitylink_merchant_id_buyer_intent",
				Unique:  false,
				Columns: []*schema.Column{IdentityLinksColumns[22], IdentityLinksColumns[16]},
			},
			{
				Name:    "identitylink_merchant_id_segment",
				Unique:  false,
				Columns: []*schema.Column{IdentityLinksColumns[22], IdentityLinksColumns[17]},
			},
			{
				Name:    "identitylink_auth_token",
				Unique:  false,
				Columns: []*schema.Column{IdentityLinksColumns[5]},
			},
		},
	}
	// MerchantsColumns holds the columns for the "merchants" table.
	MerchantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "shop_domain", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MerchantsTable holds the schema information for the "merchants" table.
	MerchantsTable = &schema.Table{
		Name:       "merchants",
		Columns:    MerchantsColumns,
		PrimaryKey: []*schema.Column{MerchantsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BuyersTable,
		CompaniesTable,
		FingerprintsTable,
		IdentityLinksTable,
		MerchantsTable,
	}
)

func init() {
	BuyersTable.ForeignKeys[0].RefTable = CompaniesTable
	BuyersTable.ForeignKeys[1].RefTable = MerchantsTable
	FingerprintsTable.ForeignKeys[0].RefTable = MerchantsTable
	IdentityLinksTable.ForeignKeys[0].RefTable = FingerprintsTable
	IdentityLinksTable.ForeignKeys[1].RefTable = BuyersTable
	IdentityLinksTable.ForeignKeys[2].RefTable = MerchantsTable
}
