// Code generated by ent, DO NOT EDIT.

package fingerprint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fingerprint type in the database.
	Label = "fingerprint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMerchantID holds the string denoting the merchant_id field in the database.
	FieldMerchantID = "merchant_id"
	// FieldFpHash holds the string denoting the fp_hash field in the database.
	FieldFpHash = "fp_hash"
	// FieldCanvasHash holds the string denoting the canvas_hash field in the database.
	FieldCanvasHash = "canvas_hash"
	// FieldWebglHash holds the string denoting the webgl_hash field in the database.
	FieldWebglHash = "webgl_hash"
	// FieldAudioHash holds the string denoting the audio_hash field in the database.
	FieldAudioHash = "audio_hash"
	// FieldUserAgent holds the string denoting the user_agent field in the database.
	FieldUserAgent = "user_agent"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldScreenWidth holds the string denoting the screen_width field in the database.
	FieldScreenWidth = "screen_width"
	// FieldScreenHeight holds the string denoting the screen_height field in the database.
	FieldScreenHeight = "screen_height"
	// FieldPixelRatio holds the string denoting the pixel_ratio field in the database.
	FieldPixelRatio = "pixel_ratio"
	// FieldTouchSupport holds the string denoting the touch_support field in the database.
	FieldTouchSupport = "touch_support"
	// FieldHardwareConcurrency holds the string denoting the hardware_concurrency field in the database.
	FieldHardwareConcurrency = "hardware_concurrency"
	// FieldDeviceMemory holds the string denoting the device_memory field in the database.
	FieldDeviceMemory = "device_memory"
	// FieldGpuVendor holds the string denoting the gpu_vendor field in the database.
	FieldGpuVendor = "gpu_vendor"
	// FieldGpuRenderer holds the string denoting the gpu_renderer field in the database.
	FieldGpuRenderer = "gpu_renderer"
	// FieldConnectionType holds the string denoting the connection_type field in the database.
	FieldConnectionType = "connection_type"
	// FieldCookiesEnabled holds the string denoting the cookies_enabled field in the database.
	FieldCookiesEnabled = "cookies_enabled"
	// FieldDoNotTrack holds the string denoting the do_not_track field in the database.
	FieldDoNotTrack = "do_not_track"
	// FieldAdBlock holds the string denoting the ad_block field in the database.
	FieldAdBlock = "ad_block"
	// FieldIsBot holds the string denoting the is_bot field in the database.
	FieldIsBot = "is_bot"
	// FieldBotScore holds the string denoting the bot_score field in the database.
	FieldBotScore = "bot_score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSignalCount holds the string denoting the signal_count field in the database.
	FieldSignalCount = "signal_count"
	// FieldVisitCount holds the string denoting the visit_count field in the database.
	FieldVisitCount = "visit_count"
	// FieldIPAddress holds the string denoting the ip_address field in the database.
	FieldIPAddress = "ip_address"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// EdgeMerchant holds the string denoting the merchant edge name in mutations.
	EdgeMerchant = "merchant"
	// EdgeIdentityLinks holds the string denoting the identity_links edge name in mutations.
	EdgeIdentityLinks = "identity_links"
	// Table holds the table name of the fingerprint in the database.
	Table = "fingerprints"
	// MerchantTable is the table that holds the merchant relation/edge.
	MerchantTable = "fingerprints"
	// MerchantInverseTable is the table name for the Merchant entity.
	// It exists in this package in order to avoid circular dependency with the "merchant" package.
	MerchantInverseTable = "merchants"
	// MerchantColumn is the table column denoting the merchant relation/edge.
	MerchantColumn = "merchant_id"
	// IdentityLinksTable is the table that holds the identity_links relation/edge.
	IdentityLinksTable = "identity_links"
	// IdentityLinksInverseTable is the table name for the IdentityLink entity.
	// It exists in this package in order to avoid circular dependency with the "identitylink" package.
	IdentityLinksInverseTable = "identity_links"
	// IdentityLinksColumn is the table column denoting the identity_links relation/edge.
	IdentityLinksColumn = "fingerprint_id"
)

// Columns holds all SQL columns for fingerprint fields.
var Columns = []string{
	FieldID,
	FieldMerchantID,
	FieldFpHash,
	FieldCanvasHash,
	FieldWebglHash,
	FieldAudioHash,
	FieldUserAgent,
	FieldPlatform,
	FieldLanguage,
	FieldTimezone,
	FieldScreenWidth,
	FieldScreenHeight,
	FieldPixelRatio,
	FieldTouchSupport,
	FieldHardwareConcurrency,
	FieldDeviceMemory,
	FieldGpuVendor,
	FieldGpuRenderer,
	FieldConnectionType,
	FieldCookiesEnabled,
	FieldDoNotTrack,
	FieldAdBlock,
	FieldIsBot,
	FieldBotScore,
	FieldConfidence,
	FieldSignalCount,
	FieldVisitCount,
	FieldIPAddress,
	FieldFirstSeenAt,
	FieldLastSeenAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FpHashValidator is a validator for the "fp_hash" field. It is called by the builders before save.
	FpHashValidator func(string) error
	// CanvasHashValidator is a validator for the "canvas_hash" field. It is called by the builders before save.
	CanvasHashValidator func(string) error
	// WebglHashValidator is a validator for the "webgl_hash" field. It is called by the builders before save.
	WebglHashValidator func(string) error
	// AudioHashValidator is a validator for the "audio_hash" field. It is called by the builders before save.
	AudioHashValidator func(string) error
	// UserAgentValidator is a validator for the "user_agent" field. It is called by the builders before save.
	UserAgentValidator func(string) error
	// PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	PlatformValidator func(string) error
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	TimezoneValidator func(string) error
	// DefaultScreenWidth holds the default value on creation for the "screen_width" field.
	DefaultScreenWidth int
	// DefaultScreenHeight holds the default value on creation for the "screen_height" field.
	DefaultScreenHeight int
	// DefaultPixelRatio holds the default value on creation for the "pixel_ratio" field.
	DefaultPixelRatio float64
	// DefaultTouchSupport holds the default value on creation for the "touch_support" field.
	DefaultTouchSupport bool
	// DefaultHardwareConcurrency holds the default value on creation for the "hardware_concurrency" field.
	DefaultHardwareConcurrency int
	// DefaultDeviceMemory holds the default value on creation for the "device_memory" field.
	DefaultDeviceMemory float64
	// GpuVendorValidator is a validator for the "gpu_vendor" field. It is called by the builders before save.
	GpuVendorValidator func(string) error
	// GpuRendererValidator is a validator for the "gpu_renderer" field. It is called by the builders before save.
	GpuRendererValidator func(string) error
	// ConnectionTypeValidator is a validator for the "connection_type" field. It is called by the builders before save.
	ConnectionTypeValidator func(string) error
	// DefaultCookiesEnabled holds the default value on creation for the "cookies_enabled" field.
	DefaultCookiesEnabled bool
	// DefaultDoNotTrack holds the default value on creation for the "do_not_track" field.
	DefaultDoNotTrack bool
	// DefaultAdBlock holds the default value on creation for the "ad_block" field.
	DefaultAdBlock bool
	// DefaultIsBot holds the default value on creation for the "is_bot" field.
	DefaultIsBot bool
	// DefaultBotScore holds the default value on creation for the "bot_score" field.
	DefaultBotScore float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultSignalCount holds the default value on creation for the "signal_count" field.
	DefaultSignalCount int
	// DefaultVisitCount holds the default value on creation for the "visit_count" field.
	DefaultVisitCount int
	// VisitCountValidator is a validator for the "visit_count" field. It is called by the builders before save.
	VisitCountValidator func(int) error
	// IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	IPAddressValidator func(string) error
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Fingerprint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMerchantID orders the results by the merchant_id field.
func ByMerchantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMerchantID, opts...).ToFunc()
}

// ByFpHash orders the results by the fp_hash field.
func ByFpHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFpHash, opts...).ToFunc()
}

// ByCanvasHash orders the results by the canvas_hash field.
func ByCanvasHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanvasHash, opts...).ToFunc()
}

// ByWebglHash orders the results by the webgl_hash field.
func ByWebglHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebglHash, opts...).ToFunc()
}

// ByAudioHash orders the results by the audio_hash field.
func ByAudioHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioHash, opts...).ToFunc()
}

// ByUserAgent orders the results by the user_agent field.
func ByUserAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAgent, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByScreenWidth orders the results by the screen_width field.
func ByScreenWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScreenWidth, opts...).ToFunc()
}

// ByScreenHeight orders the results by the screen_height field.
func ByScreenHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScreenHeight, opts...).ToFunc()
}

// ByPixelRatio orders the results by the pixel_ratio field.
func ByPixelRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPixelRatio, opts...).ToFunc()
}

// ByTouchSupport orders the results by the touch_support field.
func ByTouchSupport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTouchSupport, opts...).ToFunc()
}

// ByHardwareConcurrency orders the results by the hardware_concurrency field.
func ByHardwareConcurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHardwareConcurrency, opts...).ToFunc()
}

// ByDeviceMemory orders the results by the device_memory field.
func ByDeviceMemory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceMemory, opts...).ToFunc()
}

// ByGpuVendor orders the results by the gpu_vendor field.
func ByGpuVendor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpuVendor, opts...).ToFunc()
}

// ByGpuRenderer orders the results by the gpu_renderer field.
func ByGpuRenderer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpuRenderer, opts...).ToFunc()
}

// ByConnectionType orders the results by the connection_type field.
func ByConnectionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectionType, opts...).ToFunc()
}

// ByCookiesEnabled orders the results by the cookies_enabled field.
func ByCookiesEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCookiesEnabled, opts...).ToFunc()
}

// ByDoNotTrack orders the results by the do_not_track field.
func ByDoNotTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoNotTrack, opts...).ToFunc()
}

// ByAdBlock orders the results by the ad_block field.
func ByAdBlock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdBlock, opts...).ToFunc()
}

// ByIsBot orders the results by the is_bot field.
func ByIsBot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBot, opts...).ToFunc()
}

// ByBotScore orders the results by the bot_score field.
func ByBotScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySignalCount orders the results by the signal_count field.
func BySignalCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignalCount, opts...).ToFunc()
}

// ByVisitCount orders the results by the visit_count field.
func ByVisitCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitCount, opts...).ToFunc()
}

// ByIPAddress orders the results by the ip_address field.
func ByIPAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPAddress, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByMerchantField orders the results by merchant field.
func ByMerchantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMerchantStep(), sql.OrderByField(field, opts...))
	}
}

// ByIdentityLinksCount orders the results by identity_links count.
func ByIdentityLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIdentityLinksStep(), opts...)
	}
}

// ByIdentityLinks orders the results by identity_links terms.
func ByIdentityLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIdentityLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMerchantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MerchantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MerchantTable, MerchantColumn),
	)
}
func newIdentityLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IdentityLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IdentityLinksTable, IdentityLinksColumn),
	)
}
