// Code generated by ent, DO NOT EDIT.

package fingerprint

import (
	"time"
	"visitor-iq/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldID, id))
}

// MerchantID applies equality check predicate on the "merchant_id" field. It's identical to MerchantIDEQ.
func MerchantID(v uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldMerchantID, v))
}

// FpHash applies equality check predicate on the "fp_hash" field. It's identical to FpHashEQ.
func FpHash(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldFpHash, v))
}

// CanvasHash applies equality check predicate on the "canvas_hash" field. It's identical to CanvasHashEQ.
func CanvasHash(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldCanvasHash, v))
}

// WebglHash applies equality check predicate on the "webgl_hash" field. It's identical to WebglHashEQ.
func WebglHash(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldWebglHash, v))
}

// AudioHash applies equality check predicate on the "audio_hash" field. It's identical to AudioHashEQ.
func AudioHash(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldAudioHash, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldUserAgent, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldPlatform, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldLanguage, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldTimezone, v))
}

// ScreenWidth applies equality check predicate on the "screen_width" field. It's identical to ScreenWidthEQ.
func ScreenWidth(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldScreenWidth, v))
}

// ScreenHeight applies equality check predicate on the "screen_height" field. It's identical to ScreenHeightEQ.
func ScreenHeight(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldScreenHeight, v))
}

// PixelRatio applies equality check predicate on the "pixel_ratio" field. It's identical to PixelRatioEQ.
func PixelRatio(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldPixelRatio, v))
}

// TouchSupport applies equality check predicate on the "touch_support" field. It's identical to TouchSupportEQ.
func TouchSupport(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldTouchSupport, v))
}

// HardwareConcurrency applies equality check predicate on the "hardware_concurrency" field. It's identical to HardwareConcurrencyEQ.
func HardwareConcurrency(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldHardwareConcurrency, v))
}

// DeviceMemory applies equality check predicate on the "device_memory" field. It's identical to DeviceMemoryEQ.
func DeviceMemory(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldDeviceMemory, v))
}

// GpuVendor applies equality check predicate on the "gpu_vendor" field. It's identical to GpuVendorEQ.
func GpuVendor(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldGpuVendor, v))
}

// GpuRenderer applies equality check predicate on the "gpu_renderer" field. It's identical to GpuRendererEQ.
func GpuRenderer(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldGpuRenderer, v))
}

// ConnectionType applies equality check predicate on the "connection_type" field. It's identical to ConnectionTypeEQ.
func ConnectionType(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldConnectionType, v))
}

// CookiesEnabled applies equality check predicate on the "cookies_enabled" field. It's identical to CookiesEnabledEQ.
func CookiesEnabled(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldCookiesEnabled, v))
}

// DoNotTrack applies equality check predicate on the "do_not_track" field. It's identical to DoNotTrackEQ.
func DoNotTrack(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldDoNotTrack, v))
}

// AdBlock applies equality check predicate on the "ad_block" field. It's identical to AdBlockEQ.
func AdBlock(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldAdBlock, v))
}

// IsBot applies equality check predicate on the "is_bot" field. It's identical to IsBotEQ.
func IsBot(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldIsBot, v))
}

// BotScore applies equality check predicate on the "bot_score" field. It's identical to BotScoreEQ.
func BotScore(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldBotScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldConfidence, v))
}

// SignalCount applies equality check predicate on the "signal_count" field. It's identical to SignalCountEQ.
func SignalCount(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldSignalCount, v))
}

// VisitCount applies equality check predicate on the "visit_count" field. It's identical to VisitCountEQ.
func VisitCount(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldVisitCount, v))
}

// IPAddress applies equality check predicate on the "ip_address" field. It's identical to IPAddressEQ.
func IPAddress(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldIPAddress, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldLastSeenAt, v))
}

// MerchantIDEQ applies the EQ predicate on the "merchant_id" field.
func MerchantIDEQ(v uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldMerchantID, v))
}

// MerchantIDNEQ applies the NEQ predicate on the "merchant_id" field.
func MerchantIDNEQ(v uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldMerchantID, v))
}

// MerchantIDIn applies the In predicate on the "merchant_id" field.
func MerchantIDIn(vs ...uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldMerchantID, vs...))
}

// MerchantIDNotIn applies the NotIn predicate on the "merchant_id" field.
func MerchantIDNotIn(vs ...uuid.UUID) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldMerchantID, vs...))
}

// FpHashEQ applies the EQ predicate on the "fp_hash" field.
func FpHashEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldFpHash, v))
}

// FpHashNEQ applies the NEQ predicate on the "fp_hash" field.
func FpHashNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldFpHash, v))
}

// FpHashIn applies the In predicate on the "fp_hash" field.
func FpHashIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldFpHash, vs...))
}

// FpHashNotIn applies the NotIn predicate on the "fp_hash" field.
func FpHashNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldFpHash, vs...))
}

// FpHashGT applies the GT predicate on the "fp_hash" field.
func FpHashGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldFpHash, v))
}

// FpHashGTE applies the GTE predicate on the "fp_hash" field.
func FpHashGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldFpHash, v))
}

// FpHashLT applies the LT predicate on the "fp_hash" field.
func FpHashLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldFpHash, v))
}

// FpHashLTE applies the LTE predicate on the "fp_hash" field.
func FpHashLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldFpHash, v))
}

// FpHashContains applies the Contains predicate on the "fp_hash" field.
func FpHashContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldFpHash, v))
}

// FpHashHasPrefix applies the HasPrefix predicate on the "fp_hash" field.
func FpHashHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldFpHash, v))
}

// FpHashHasSuffix applies the HasSuffix predicate on the "fp_hash" field.
func FpHashHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldFpHash, v))
}

// FpHashEqualFold applies the EqualFold predicate on the "fp_hash" field.
func FpHashEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldFpHash, v))
}

// FpHashContainsFold applies the ContainsFold predicate on the "fp_hash" field.
func FpHashContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldFpHash, v))
}

// CanvasHashEQ applies the EQ predicate on the "canvas_hash" field.
func CanvasHashEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldCanvasHash, v))
}

// CanvasHashNEQ applies the NEQ predicate on the "canvas_hash" field.
func CanvasHashNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldCanvasHash, v))
}

// CanvasHashIn applies the In predicate on the "canvas_hash" field.
func CanvasHashIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldCanvasHash, vs...))
}

// CanvasHashNotIn applies the NotIn predicate on the "canvas_hash" field.
func CanvasHashNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldCanvasHash, vs...))
}

// CanvasHashGT applies the GT predicate on the "canvas_hash" field.
func CanvasHashGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldCanvasHash, v))
}

// CanvasHashGTE applies the GTE predicate on the "canvas_hash" field.
func CanvasHashGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldCanvasHash, v))
}

// CanvasHashLT applies the LT predicate on the "canvas_hash" field.
func CanvasHashLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldCanvasHash, v))
}

// CanvasHashLTE applies the LTE predicate on the "canvas_hash" field.
func CanvasHashLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldCanvasHash, v))
}

// CanvasHashContains applies the Contains predicate on the "canvas_hash" field.
func CanvasHashContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldCanvasHash, v))
}

// CanvasHashHasPrefix applies the HasPrefix predicate on the "canvas_hash" field.
func CanvasHashHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldCanvasHash, v))
}

// CanvasHashHasSuffix applies the HasSuffix predicate on the "canvas_hash" field.
func CanvasHashHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldCanvasHash, v))
}

// CanvasHashIsNil applies the IsNil predicate on the "canvas_hash" field.
func CanvasHashIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldCanvasHash))
}

// CanvasHashNotNil applies the NotNil predicate on the "canvas_hash" field.
func CanvasHashNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldCanvasHash))
}

// CanvasHashEqualFold applies the EqualFold predicate on the "canvas_hash" field.
func CanvasHashEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldCanvasHash, v))
}

// CanvasHashContainsFold applies the ContainsFold predicate on the "canvas_hash" field.
func CanvasHashContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldCanvasHash, v))
}

// WebglHashEQ applies the EQ predicate on the "webgl_hash" field.
func WebglHashEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldWebglHash, v))
}

// WebglHashNEQ applies the NEQ predicate on the "webgl_hash" field.
func WebglHashNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldWebglHash, v))
}

// WebglHashIn applies the In predicate on the "webgl_hash" field.
func WebglHashIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldWebglHash, vs...))
}

// WebglHashNotIn applies the NotIn predicate on the "webgl_hash" field.
func WebglHashNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldWebglHash, vs...))
}

// WebglHashGT applies the GT predicate on the "webgl_hash" field.
func WebglHashGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldWebglHash, v))
}

// WebglHashGTE applies the GTE predicate on the "webgl_hash" field.
func WebglHashGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldWebglHash, v))
}

// WebglHashLT applies the LT predicate on the "webgl_hash" field.
func WebglHashLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldWebglHash, v))
}

// WebglHashLTE applies the LTE predicate on the "webgl_hash" field.
func WebglHashLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldWebglHash, v))
}

// WebglHashContains applies the Contains predicate on the "webgl_hash" field.
func WebglHashContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldWebglHash, v))
}

// WebglHashHasPrefix applies the HasPrefix predicate on the "webgl_hash" field.
func WebglHashHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldWebglHash, v))
}

// WebglHashHasSuffix applies the HasSuffix predicate on the "webgl_hash" field.
func WebglHashHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldWebglHash, v))
}

// WebglHashIsNil applies the IsNil predicate on the "webgl_hash" field.
func WebglHashIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldWebglHash))
}

// WebglHashNotNil applies the NotNil predicate on the "webgl_hash" field.
func WebglHashNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldWebglHash))
}

// WebglHashEqualFold applies the EqualFold predicate on the "webgl_hash" field.
func WebglHashEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldWebglHash, v))
}

// WebglHashContainsFold applies the ContainsFold predicate on the "webgl_hash" field.
func WebglHashContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldWebglHash, v))
}

// AudioHashEQ applies the EQ predicate on the "audio_hash" field.
func AudioHashEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldAudioHash, v))
}

// AudioHashNEQ applies the NEQ predicate on the "audio_hash" field.
func AudioHashNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldAudioHash, v))
}

// AudioHashIn applies the In predicate on the "audio_hash" field.
func AudioHashIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldAudioHash, vs...))
}

// AudioHashNotIn applies the NotIn predicate on the "audio_hash" field.
func AudioHashNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldAudioHash, vs...))
}

// AudioHashGT applies the GT predicate on the "audio_hash" field.
func AudioHashGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldAudioHash, v))
}

// AudioHashGTE applies the GTE predicate on the "audio_hash" field.
func AudioHashGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldAudioHash, v))
}

// AudioHashLT applies the LT predicate on the "audio_hash" field.
func AudioHashLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldAudioHash, v))
}

// AudioHashLTE applies the LTE predicate on the "audio_hash" field.
func AudioHashLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldAudioHash, v))
}

// AudioHashContains applies the Contains predicate on the "audio_hash" field.
func AudioHashContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldAudioHash, v))
}

// AudioHashHasPrefix applies the HasPrefix predicate on the "audio_hash" field.
func AudioHashHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldAudioHash, v))
}

// AudioHashHasSuffix applies the HasSuffix predicate on the "audio_hash" field.
func AudioHashHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldAudioHash, v))
}

// AudioHashIsNil applies the IsNil predicate on the "audio_hash" field.
func AudioHashIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldAudioHash))
}

// AudioHashNotNil applies the NotNil predicate on the "audio_hash" field.
func AudioHashNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldAudioHash))
}

// AudioHashEqualFold applies the EqualFold predicate on the "audio_hash" field.
func AudioHashEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldAudioHash, v))
}

// AudioHashContainsFold applies the ContainsFold predicate on the "audio_hash" field.
func AudioHashContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldAudioHash, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldUserAgent, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformIsNil applies the IsNil predicate on the "platform" field.
func PlatformIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldPlatform))
}

// PlatformNotNil applies the NotNil predicate on the "platform" field.
func PlatformNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldPlatform))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldPlatform, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldLanguage, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneIsNil applies the IsNil predicate on the "timezone" field.
func TimezoneIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldTimezone))
}

// TimezoneNotNil applies the NotNil predicate on the "timezone" field.
func TimezoneNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldTimezone))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldTimezone, v))
}

// ScreenWidthEQ applies the EQ predicate on the "screen_width" field.
func ScreenWidthEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldScreenWidth, v))
}

// ScreenWidthNEQ applies the NEQ predicate on the "screen_width" field.
func ScreenWidthNEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldScreenWidth, v))
}

// ScreenWidthIn applies the In predicate on the "screen_width" field.
func ScreenWidthIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldScreenWidth, vs...))
}

// ScreenWidthNotIn applies the NotIn predicate on the "screen_width" field.
func ScreenWidthNotIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldScreenWidth, vs...))
}

// ScreenWidthGT applies the GT predicate on the "screen_width" field.
func ScreenWidthGT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldScreenWidth, v))
}

// ScreenWidthGTE applies the GTE predicate on the "screen_width" field.
func ScreenWidthGTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldScreenWidth, v))
}

// ScreenWidthLT applies the LT predicate on the "screen_width" field.
func ScreenWidthLT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldScreenWidth, v))
}

// ScreenWidthLTE applies the LTE predicate on the "screen_width" field.
func ScreenWidthLTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldScreenWidth, v))
}

// ScreenHeightEQ applies the EQ predicate on the "screen_height" field.
func ScreenHeightEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldScreenHeight, v))
}

// ScreenHeightNEQ applies the NEQ predicate on the "screen_height" field.
func ScreenHeightNEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldScreenHeight, v))
}

// ScreenHeightIn applies the In predicate on the "screen_height" field.
func ScreenHeightIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldScreenHeight, vs...))
}

// ScreenHeightNotIn applies the NotIn predicate on the "screen_height" field.
func ScreenHeightNotIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldScreenHeight, vs...))
}

// ScreenHeightGT applies the GT predicate on the "screen_height" field.
func ScreenHeightGT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldScreenHeight, v))
}

// ScreenHeightGTE applies the GTE predicate on the "screen_height" field.
func ScreenHeightGTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldScreenHeight, v))
}

// ScreenHeightLT applies the LT predicate on the "screen_height" field.
func ScreenHeightLT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldScreenHeight, v))
}

// ScreenHeightLTE applies the LTE predicate on the "screen_height" field.
func ScreenHeightLTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldScreenHeight, v))
}

// PixelRatioEQ applies the EQ predicate on the "pixel_ratio" field.
func PixelRatioEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldPixelRatio, v))
}

// PixelRatioNEQ applies the NEQ predicate on the "pixel_ratio" field.
func PixelRatioNEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldPixelRatio, v))
}

// PixelRatioIn applies the In predicate on the "pixel_ratio" field.
func PixelRatioIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldPixelRatio, vs...))
}

// PixelRatioNotIn applies the NotIn predicate on the "pixel_ratio" field.
func PixelRatioNotIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldPixelRatio, vs...))
}

// PixelRatioGT applies the GT predicate on the "pixel_ratio" field.
func PixelRatioGT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldPixelRatio, v))
}

// PixelRatioGTE applies the GTE predicate on the "pixel_ratio" field.
func PixelRatioGTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldPixelRatio, v))
}

// PixelRatioLT applies the LT predicate on the "pixel_ratio" field.
func PixelRatioLT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldPixelRatio, v))
}

// PixelRatioLTE applies the LTE predicate on the "pixel_ratio" field.
func PixelRatioLTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldPixelRatio, v))
}

// TouchSupportEQ applies the EQ predicate on the "touch_support" field.
func TouchSupportEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldTouchSupport, v))
}

// TouchSupportNEQ applies the NEQ predicate on the "touch_support" field.
func TouchSupportNEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldTouchSupport, v))
}

// HardwareConcurrencyEQ applies the EQ predicate on the "hardware_concurrency" field.
func HardwareConcurrencyEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldHardwareConcurrency, v))
}

// HardwareConcurrencyNEQ applies the NEQ predicate on the "hardware_concurrency" field.
func HardwareConcurrencyNEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldHardwareConcurrency, v))
}

// HardwareConcurrencyIn applies the In predicate on the "hardware_concurrency" field.
func HardwareConcurrencyIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldHardwareConcurrency, vs...))
}

// HardwareConcurrencyNotIn applies the NotIn predicate on the "hardware_concurrency" field.
func HardwareConcurrencyNotIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldHardwareConcurrency, vs...))
}

// HardwareConcurrencyGT applies the GT predicate on the "hardware_concurrency" field.
func HardwareConcurrencyGT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldHardwareConcurrency, v))
}

// HardwareConcurrencyGTE applies the GTE predicate on the "hardware_concurrency" field.
func HardwareConcurrencyGTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldHardwareConcurrency, v))
}

// HardwareConcurrencyLT applies the LT predicate on the "hardware_concurrency" field.
func HardwareConcurrencyLT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldHardwareConcurrency, v))
}

// HardwareConcurrencyLTE applies the LTE predicate on the "hardware_concurrency" field.
func HardwareConcurrencyLTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldHardwareConcurrency, v))
}

// DeviceMemoryEQ applies the EQ predicate on the "device_memory" field.
func DeviceMemoryEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldDeviceMemory, v))
}

// DeviceMemoryNEQ applies the NEQ predicate on the "device_memory" field.
func DeviceMemoryNEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldDeviceMemory, v))
}

// DeviceMemoryIn applies the In predicate on the "device_memory" field.
func DeviceMemoryIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldDeviceMemory, vs...))
}

// DeviceMemoryNotIn applies the NotIn predicate on the "device_memory" field.
func DeviceMemoryNotIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldDeviceMemory, vs...))
}

// DeviceMemoryGT applies the GT predicate on the "device_memory" field.
func DeviceMemoryGT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldDeviceMemory, v))
}

// DeviceMemoryGTE applies the GTE predicate on the "device_memory" field.
func DeviceMemoryGTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldDeviceMemory, v))
}

// DeviceMemoryLT applies the LT predicate on the "device_memory" field.
func DeviceMemoryLT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldDeviceMemory, v))
}

// DeviceMemoryLTE applies the LTE predicate on the "device_memory" field.
func DeviceMemoryLTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldDeviceMemory, v))
}

// GpuVendorEQ applies the EQ predicate on the "gpu_vendor" field.
func GpuVendorEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldGpuVendor, v))
}

// GpuVendorNEQ applies the NEQ predicate on the "gpu_vendor" field.
func GpuVendorNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldGpuVendor, v))
}

// GpuVendorIn applies the In predicate on the "gpu_vendor" field.
func GpuVendorIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldGpuVendor, vs...))
}

// GpuVendorNotIn applies the NotIn predicate on the "gpu_vendor" field.
func GpuVendorNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldGpuVendor, vs...))
}

// GpuVendorGT applies the GT predicate on the "gpu_vendor" field.
func GpuVendorGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldGpuVendor, v))
}

// GpuVendorGTE applies the GTE predicate on the "gpu_vendor" field.
func GpuVendorGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldGpuVendor, v))
}

// GpuVendorLT applies the LT predicate on the "gpu_vendor" field.
func GpuVendorLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldGpuVendor, v))
}

// GpuVendorLTE applies the LTE predicate on the "gpu_vendor" field.
func GpuVendorLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldGpuVendor, v))
}

// GpuVendorContains applies the Contains predicate on the "gpu_vendor" field.
func GpuVendorContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldGpuVendor, v))
}

// GpuVendorHasPrefix applies the HasPrefix predicate on the "gpu_vendor" field.
func GpuVendorHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldGpuVendor, v))
}

// GpuVendorHasSuffix applies the HasSuffix predicate on the "gpu_vendor" field.
func GpuVendorHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldGpuVendor, v))
}

// GpuVendorIsNil applies the IsNil predicate on the "gpu_vendor" field.
func GpuVendorIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldGpuVendor))
}

// GpuVendorNotNil applies the NotNil predicate on the "gpu_vendor" field.
func GpuVendorNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldGpuVendor))
}

// GpuVendorEqualFold applies the EqualFold predicate on the "gpu_vendor" field.
func GpuVendorEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldGpuVendor, v))
}

// GpuVendorContainsFold applies the ContainsFold predicate on the "gpu_vendor" field.
func GpuVendorContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldGpuVendor, v))
}

// GpuRendererEQ applies the EQ predicate on the "gpu_renderer" field.
func GpuRendererEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldGpuRenderer, v))
}

// GpuRendererNEQ applies the NEQ predicate on the "gpu_renderer" field.
func GpuRendererNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldGpuRenderer, v))
}

// GpuRendererIn applies the In predicate on the "gpu_renderer" field.
func GpuRendererIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldGpuRenderer, vs...))
}

// GpuRendererNotIn applies the NotIn predicate on the "gpu_renderer" field.
func GpuRendererNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldGpuRenderer, vs...))
}

// GpuRendererGT applies the GT predicate on the "gpu_renderer" field.
func GpuRendererGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldGpuRenderer, v))
}

// GpuRendererGTE applies the GTE predicate on the "gpu_renderer" field.
func GpuRendererGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldGpuRenderer, v))
}

// GpuRendererLT applies the LT predicate on the "gpu_renderer" field.
func GpuRendererLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldGpuRenderer, v))
}

// GpuRendererLTE applies the LTE predicate on the "gpu_renderer" field.
func GpuRendererLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldGpuRenderer, v))
}

// GpuRendererContains applies the Contains predicate on the "gpu_renderer" field.
func GpuRendererContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldGpuRenderer, v))
}

// GpuRendererHasPrefix applies the HasPrefix predicate on the "gpu_renderer" field.
func GpuRendererHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldGpuRenderer, v))
}

// GpuRendererHasSuffix applies the HasSuffix predicate on the "gpu_renderer" field.
func GpuRendererHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldGpuRenderer, v))
}

// GpuRendererIsNil applies the IsNil predicate on the "gpu_renderer" field.
func GpuRendererIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldGpuRenderer))
}

// GpuRendererNotNil applies the NotNil predicate on the "gpu_renderer" field.
func GpuRendererNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldGpuRenderer))
}

// GpuRendererEqualFold applies the EqualFold predicate on the "gpu_renderer" field.
func GpuRendererEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldGpuRenderer, v))
}

// GpuRendererContainsFold applies the ContainsFold predicate on the "gpu_renderer" field.
func GpuRendererContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldGpuRenderer, v))
}

// ConnectionTypeEQ applies the EQ predicate on the "connection_type" field.
func ConnectionTypeEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldConnectionType, v))
}

// ConnectionTypeNEQ applies the NEQ predicate on the "connection_type" field.
func ConnectionTypeNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldConnectionType, v))
}

// ConnectionTypeIn applies the In predicate on the "connection_type" field.
func ConnectionTypeIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldConnectionType, vs...))
}

// ConnectionTypeNotIn applies the NotIn predicate on the "connection_type" field.
func ConnectionTypeNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldConnectionType, vs...))
}

// ConnectionTypeGT applies the GT predicate on the "connection_type" field.
func ConnectionTypeGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldConnectionType, v))
}

// ConnectionTypeGTE applies the GTE predicate on the "connection_type" field.
func ConnectionTypeGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldConnectionType, v))
}

// ConnectionTypeLT applies the LT predicate on the "connection_type" field.
func ConnectionTypeLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldConnectionType, v))
}

// ConnectionTypeLTE applies the LTE predicate on the "connection_type" field.
func ConnectionTypeLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldConnectionType, v))
}

// ConnectionTypeContains applies the Contains predicate on the "connection_type" field.
func ConnectionTypeContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldConnectionType, v))
}

// ConnectionTypeHasPrefix applies the HasPrefix predicate on the "connection_type" field.
func ConnectionTypeHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldConnectionType, v))
}

// ConnectionTypeHasSuffix applies the HasSuffix predicate on the "connection_type" field.
func ConnectionTypeHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldConnectionType, v))
}

// ConnectionTypeIsNil applies the IsNil predicate on the "connection_type" field.
func ConnectionTypeIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldConnectionType))
}

// ConnectionTypeNotNil applies the NotNil predicate on the "connection_type" field.
func ConnectionTypeNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldConnectionType))
}

// ConnectionTypeEqualFold applies the EqualFold predicate on the "connection_type" field.
func ConnectionTypeEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldConnectionType, v))
}

// ConnectionTypeContainsFold applies the ContainsFold predicate on the "connection_type" field.
func ConnectionTypeContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldConnectionType, v))
}

// CookiesEnabledEQ applies the EQ predicate on the "cookies_enabled" field.
func CookiesEnabledEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldCookiesEnabled, v))
}

// CookiesEnabledNEQ applies the NEQ predicate on the "cookies_enabled" field.
func CookiesEnabledNEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldCookiesEnabled, v))
}

// DoNotTrackEQ applies the EQ predicate on the "do_not_track" field.
func DoNotTrackEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldDoNotTrack, v))
}

// DoNotTrackNEQ applies the NEQ predicate on the "do_not_track" field.
func DoNotTrackNEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldDoNotTrack, v))
}

// AdBlockEQ applies the EQ predicate on the "ad_block" field.
func AdBlockEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldAdBlock, v))
}

// AdBlockNEQ applies the NEQ predicate on the "ad_block" field.
func AdBlockNEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldAdBlock, v))
}

// IsBotEQ applies the EQ predicate on the "is_bot" field.
func IsBotEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldIsBot, v))
}

// IsBotNEQ applies the NEQ predicate on the "is_bot" field.
func IsBotNEQ(v bool) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldIsBot, v))
}

// BotScoreEQ applies the EQ predicate on the "bot_score" field.
func BotScoreEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldBotScore, v))
}

// BotScoreNEQ applies the NEQ predicate on the "bot_score" field.
func BotScoreNEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldBotScore, v))
}

// BotScoreIn applies the In predicate on the "bot_score" field.
func BotScoreIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldBotScore, vs...))
}

// BotScoreNotIn applies the NotIn predicate on the "bot_score" field.
func BotScoreNotIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldBotScore, vs...))
}

// BotScoreGT applies the GT predicate on the "bot_score" field.
func BotScoreGT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldBotScore, v))
}

// BotScoreGTE applies the GTE predicate on the "bot_score" field.
func BotScoreGTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldBotScore, v))
}

// BotScoreLT applies the LT predicate on the "bot_score" field.
func BotScoreLT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldBotScore, v))
}

// BotScoreLTE applies the LTE predicate on the "bot_score" field.
func BotScoreLTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldBotScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldConfidence, v))
}

// SignalCountEQ applies the EQ predicate on the "signal_count" field.
func SignalCountEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldSignalCount, v))
}

// SignalCountNEQ applies the NEQ predicate on the "signal_count" field.
func SignalCountNEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldSignalCount, v))
}

// SignalCountIn applies the In predicate on the "signal_count" field.
func SignalCountIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldSignalCount, vs...))
}

// SignalCountNotIn applies the NotIn predicate on the "signal_count" field.
func SignalCountNotIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldSignalCount, vs...))
}

// SignalCountGT applies the GT predicate on the "signal_count" field.
func SignalCountGT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldSignalCount, v))
}

// SignalCountGTE applies the GTE predicate on the "signal_count" field.
func SignalCountGTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldSignalCount, v))
}

// SignalCountLT applies the LT predicate on the "signal_count" field.
func SignalCountLT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldSignalCount, v))
}

// SignalCountLTE applies the LTE predicate on the "signal_count" field.
func SignalCountLTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldSignalCount, v))
}

// VisitCountEQ applies the EQ predicate on the "visit_count" field.
func VisitCountEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldVisitCount, v))
}

// VisitCountNEQ applies the NEQ predicate on the "visit_count" field.
func VisitCountNEQ(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldVisitCount, v))
}

// VisitCountIn applies the In predicate on the "visit_count" field.
func VisitCountIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldVisitCount, vs...))
}

// VisitCountNotIn applies the NotIn predicate on the "visit_count" field.
func VisitCountNotIn(vs ...int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldVisitCount, vs...))
}

// VisitCountGT applies the GT predicate on the "visit_count" field.
func VisitCountGT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldVisitCount, v))
}

// VisitCountGTE applies the GTE predicate on the "visit_count" field.
func VisitCountGTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldVisitCount, v))
}

// VisitCountLT applies the LT predicate on the "visit_count" field.
func VisitCountLT(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldVisitCount, v))
}

// VisitCountLTE applies the LTE predicate on the "visit_count" field.
func VisitCountLTE(v int) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldVisitCount, v))
}

// IPAddressEQ applies the EQ predicate on the "ip_address" field.
func IPAddressEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldIPAddress, v))
}

// IPAddressNEQ applies the NEQ predicate on the "ip_address" field.
func IPAddressNEQ(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldIPAddress, v))
}

// IPAddressIn applies the In predicate on the "ip_address" field.
func IPAddressIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldIPAddress, vs...))
}

// IPAddressNotIn applies the NotIn predicate on the "ip_address" field.
func IPAddressNotIn(vs ...string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldIPAddress, vs...))
}

// IPAddressGT applies the GT predicate on the "ip_address" field.
func IPAddressGT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldIPAddress, v))
}

// IPAddressGTE applies the GTE predicate on the "ip_address" field.
func IPAddressGTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldIPAddress, v))
}

// IPAddressLT applies the LT predicate on the "ip_address" field.
func IPAddressLT(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldIPAddress, v))
}

// IPAddressLTE applies the LTE predicate on the "ip_address" field.
func IPAddressLTE(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldIPAddress, v))
}

// IPAddressContains applies the Contains predicate on the "ip_address" field.
func IPAddressContains(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContains(FieldIPAddress, v))
}

// IPAddressHasPrefix applies the HasPrefix predicate on the "ip_address" field.
func IPAddressHasPrefix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasPrefix(FieldIPAddress, v))
}

// IPAddressHasSuffix applies the HasSuffix predicate on the "ip_address" field.
func IPAddressHasSuffix(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldHasSuffix(FieldIPAddress, v))
}

// IPAddressIsNil applies the IsNil predicate on the "ip_address" field.
func IPAddressIsNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIsNull(FieldIPAddress))
}

// IPAddressNotNil applies the NotNil predicate on the "ip_address" field.
func IPAddressNotNil() predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotNull(FieldIPAddress))
}

// IPAddressEqualFold applies the EqualFold predicate on the "ip_address" field.
func IPAddressEqualFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEqualFold(FieldIPAddress, v))
}

// IPAddressContainsFold applies the ContainsFold predicate on the "ip_address" field.
func IPAddressContainsFold(v string) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldContainsFold(FieldIPAddress, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Fingerprint {
	return predicate.Fingerprint(sql.FieldLTE(FieldLastSeenAt, v))
}

// HasMerchant applies the HasEdge predicate on the "merchant" edge.
func HasMerchant() predicate.Fingerprint {
	return predicate.Fingerprint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MerchantTable, MerchantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMerchantWith applies the HasEdge predicate on the "merchant" edge with a given conditions (other predicates).
func HasMerchantWith(preds ...predicate.Merchant) predicate.Fingerprint {
	return predicate.Fingerprint(func(s *sql.Selector) {
		step := newMerchantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIdentityLinks applies the HasEdge predicate on the "identity_links" edge.
func HasIdentityLinks() predicate.Fingerprint {
	return predicate.Fingerprint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IdentityLinksTable, IdentityLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIdentityLinksWith applies the HasEdge predicate on the "identity_links" edge with a given conditions (other predicates).
func HasIdentityLinksWith(preds ...predicate.IdentityLink) predicate.Fingerprint {
	return predicate.Fingerprint(func(s *sql.Selector) {
		step := newIdentityLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Fingerprint) predicate.Fingerprint {
	return predicate.Fingerprint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Fingerprint) predicate.Fingerprint {
	return predicate.Fingerprint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Fingerprint) predicate.Fingerprint {
	return predicate.Fingerprint(sql.NotPredicates(p))
}
