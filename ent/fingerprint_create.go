// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/identitylink"
	"visitor-iq/ent/merchant"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FingerprintCreate is the builder for creating a Fingerprint entity.
type FingerprintCreate struct {
	config
	mutation *FingerprintMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMerchantID sets the "merchant_id" field.
func (_c *FingerprintCreate) SetMerchantID(v uuid.UUID) *FingerprintCreate {
	_c.mutation.SetMerchantID(v)
	return _c
}

// SetFpHash sets the "fp_hash" field.
func (_c *FingerprintCreate) SetFpHash(v string) *FingerprintCreate {
	_c.mutation.SetFpHash(v)
	return _c
}

// SetCanvasHash sets the "canvas_hash" field.
func (_c *FingerprintCreate) SetCanvasHash(v string) *FingerprintCreate {
	_c.mutation.SetCanvasHash(v)
	return _c
}

// SetNillableCanvasHash sets the "canvas_hash" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableCanvasHash(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetCanvasHash(*v)
	}
	return _c
}

// SetWebglHash sets the "webgl_hash" field.
func (_c *FingerprintCreate) SetWebglHash(v string) *FingerprintCreate {
	_c.mutation.SetWebglHash(v)
	return _c
}

// SetNillableWebglHash sets the "webgl_hash" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableWebglHash(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetWebglHash(*v)
	}
	return _c
}

// SetAudioHash sets the "audio_hash" field.
func (_c *FingerprintCreate) SetAudioHash(v string) *FingerprintCreate {
	_c.mutation.SetAudioHash(v)
	return _c
}

// SetNillableAudioHash sets the "audio_hash" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableAudioHash(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetAudioHash(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *FingerprintCreate) SetUserAgent(v string) *FingerprintCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableUserAgent(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *FingerprintCreate) SetPlatform(v string) *FingerprintCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillablePlatform(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetPlatform(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *FingerprintCreate) SetLanguage(v string) *FingerprintCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableLanguage(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *FingerprintCreate) SetTimezone(v string) *FingerprintCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableTimezone(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetScreenWidth sets the "screen_width" field.
func (_c *FingerprintCreate) SetScreenWidth(v int) *FingerprintCreate {
	_c.mutation.SetScreenWidth(v)
	return _c
}

// SetNillableScreenWidth sets the "screen_width" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableScreenWidth(v *int) *FingerprintCreate {
	if v != nil {
		_c.SetScreenWidth(*v)
	}
	return _c
}

// SetScreenHeight sets the "screen_height" field.
func (_c *FingerprintCreate) SetScreenHeight(v int) *FingerprintCreate {
	_c.mutation.SetScreenHeight(v)
	return _c
}

// SetNillableScreenHeight sets the "screen_height" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableScreenHeight(v *int) *FingerprintCreate {
	if v != nil {
		_c.SetScreenHeight(*v)
	}
	return _c
}

// SetPixelRatio sets the "pixel_ratio" field.
func (_c *FingerprintCreate) SetPixelRatio(v float64) *FingerprintCreate {
	_c.mutation.SetPixelRatio(v)
	return _c
}

// SetNillablePixelRatio sets the "pixel_ratio" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillablePixelRatio(v *float64) *FingerprintCreate {
	if v != nil {
		_c.SetPixelRatio(*v)
	}
	return _c
}

// SetTouchSupport sets the "touch_support" field.
func (_c *FingerprintCreate) SetTouchSupport(v bool) *FingerprintCreate {
	_c.mutation.SetTouchSupport(v)
	return _c
}

// SetNillableTouchSupport sets the "touch_support" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableTouchSupport(v *bool) *FingerprintCreate {
	if v != nil {
		_c.SetTouchSupport(*v)
	}
	return _c
}

// SetHardwareConcurrency sets the "hardware_concurrency" field.
func (_c *FingerprintCreate) SetHardwareConcurrency(v int) *FingerprintCreate {
	_c.mutation.SetHardwareConcurrency(v)
	return _c
}

// SetNillableHardwareConcurrency sets the "hardware_concurrency" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableHardwareConcurrency(v *int) *FingerprintCreate {
	if v != nil {
		_c.SetHardwareConcurrency(*v)
	}
	return _c
}

// SetDeviceMemory sets the "device_memory" field.
func (_c *FingerprintCreate) SetDeviceMemory(v float64) *FingerprintCreate {
	_c.mutation.SetDeviceMemory(v)
	return _c
}

// SetNillableDeviceMemory sets the "device_memory" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableDeviceMemory(v *float64) *FingerprintCreate {
	if v != nil {
		_c.SetDeviceMemory(*v)
	}
	return _c
}

// SetGpuVendor sets the "gpu_vendor" field.
func (_c *FingerprintCreate) SetGpuVendor(v string) *FingerprintCreate {
	_c.mutation.SetGpuVendor(v)
	return _c
}

// SetNillableGpuVendor sets the "gpu_vendor" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableGpuVendor(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetGpuVendor(*v)
	}
	return _c
}

// SetGpuRenderer sets the "gpu_renderer" field.
func (_c *FingerprintCreate) SetGpuRenderer(v string) *FingerprintCreate {
	_c.mutation.SetGpuRenderer(v)
	return _c
}

// SetNillableGpuRenderer sets the "gpu_renderer" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableGpuRenderer(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetGpuRenderer(*v)
	}
	return _c
}

// SetConnectionType sets the "connection_type" field.
func (_c *FingerprintCreate) SetConnectionType(v string) *FingerprintCreate {
	_c.mutation.SetConnectionType(v)
	return _c
}

// SetNillableConnectionType sets the "connection_type" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableConnectionType(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetConnectionType(*v)
	}
	return _c
}

// SetCookiesEnabled sets the "cookies_enabled" field.
func (_c *FingerprintCreate) SetCookiesEnabled(v bool) *FingerprintCreate {
	_c.mutation.SetCookiesEnabled(v)
	return _c
}

// SetNillableCookiesEnabled sets the "cookies_enabled" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableCookiesEnabled(v *bool) *FingerprintCreate {
	if v != nil {
		_c.SetCookiesEnabled(*v)
	}
	return _c
}

// SetDoNotTrack sets the "do_not_track" field.
func (_c *FingerprintCreate) SetDoNotTrack(v bool) *FingerprintCreate {
	_c.mutation.SetDoNotTrack(v)
	return _c
}

// SetNillableDoNotTrack sets the "do_not_track" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableDoNotTrack(v *bool) *FingerprintCreate {
	if v != nil {
		_c.SetDoNotTrack(*v)
	}
	return _c
}

// SetAdBlock sets the "ad_block" field.
func (_c *FingerprintCreate) SetAdBlock(v bool) *FingerprintCreate {
	_c.mutation.SetAdBlock(v)
	return _c
}

// SetNillableAdBlock sets the "ad_block" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableAdBlock(v *bool) *FingerprintCreate {
	if v != nil {
		_c.SetAdBlock(*v)
	}
	return _c
}

// SetIsBot sets the "is_bot" field.
func (_c *FingerprintCreate) SetIsBot(v bool) *FingerprintCreate {
	_c.mutation.SetIsBot(v)
	return _c
}

// SetNillableIsBot sets the "is_bot" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableIsBot(v *bool) *FingerprintCreate {
	if v != nil {
		_c.SetIsBot(*v)
	}
	return _c
}

// SetBotScore sets the "bot_score" field.
func (_c *FingerprintCreate) SetBotScore(v float64) *FingerprintCreate {
	_c.mutation.SetBotScore(v)
	return _c
}

// SetNillableBotScore sets the "bot_score" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableBotScore(v *float64) *FingerprintCreate {
	if v != nil {
		_c.SetBotScore(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *FingerprintCreate) SetConfidence(v float64) *FingerprintCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableConfidence(v *float64) *FingerprintCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSignalCount sets the "signal_count" field.
func (_c *FingerprintCreate) SetSignalCount(v int) *FingerprintCreate {
	_c.mutation.SetSignalCount(v)
	return _c
}

// SetNillableSignalCount sets the "signal_count" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableSignalCount(v *int) *FingerprintCreate {
	if v != nil {
		_c.SetSignalCount(*v)
	}
	return _c
}

// SetVisitCount sets the "visit_count" field.
func (_c *FingerprintCreate) SetVisitCount(v int) *FingerprintCreate {
	_c.mutation.SetVisitCount(v)
	return _c
}

// SetNillableVisitCount sets the "visit_count" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableVisitCount(v *int) *FingerprintCreate {
	if v != nil {
		_c.SetVisitCount(*v)
	}
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *FingerprintCreate) SetIPAddress(v string) *FingerprintCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableIPAddress(v *string) *FingerprintCreate {
	if v != nil {
		_c.SetIPAddress(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *FingerprintCreate) SetFirstSeenAt(v time.Time) *FingerprintCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableFirstSeenAt(v *time.Time) *FingerprintCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *FingerprintCreate) SetLastSeenAt(v time.Time) *FingerprintCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableLastSeenAt(v *time.Time) *FingerprintCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FingerprintCreate) SetID(v uuid.UUID) *FingerprintCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FingerprintCreate) SetNillableID(v *uuid.UUID) *FingerprintCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_c *FingerprintCreate) SetMerchant(v *Merchant) *FingerprintCreate {
	return _c.SetMerchantID(v.ID)
}

// AddIdentityLinkIDs adds the "identity_links" edge to the IdentityLink entity by IDs.
func (_c *FingerprintCreate) AddIdentityLinkIDs(ids ...uuid.UUID) *FingerprintCreate {
	_c.mutation.AddIdentityLinkIDs(ids...)
	return _c
}

// AddIdentityLinks adds the "identity_links" edges to the IdentityLink entity.
func (_c *FingerprintCreate) AddIdentityLinks(v ...*IdentityLink) *FingerprintCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIdentityLinkIDs(ids...)
}

// Mutation returns the FingerprintMutation object of the builder.
func (_c *FingerprintCreate) Mutation() *FingerprintMutation {
	return _c.mutation
}

// Save creates the Fingerprint in the database.
func (_c *FingerprintCreate) Save(ctx context.Context) (*Fingerprint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FingerprintCreate) SaveX(ctx context.Context) *Fingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FingerprintCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FingerprintCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FingerprintCreate) defaults() {
	if _, ok := _c.mutation.ScreenWidth(); !ok {
		v := fingerprint.DefaultScreenWidth
		_c.mutation.SetScreenWidth(v)
	}
	if _, ok := _c.mutation.ScreenHeight(); !ok {
		v := fingerprint.DefaultScreenHeight
		_c.mutation.SetScreenHeight(v)
	}
	if _, ok := _c.mutation.PixelRatio(); !ok {
		v := fingerprint.DefaultPixelRatio
		_c.mutation.SetPixelRatio(v)
	}
	if _, ok := _c.mutation.TouchSupport(); !ok {
		v := fingerprint.DefaultTouchSupport
		_c.mutation.SetTouchSupport(v)
	}
	if _, ok := _c.mutation.HardwareConcurrency(); !ok {
		v := fingerprint.DefaultHardwareConcurrency
		_c.mutation.SetHardwareConcurrency(v)
	}
	if _, ok := _c.mutation.DeviceMemory(); !ok {
		v := fingerprint.DefaultDeviceMemory
		_c.mutation.SetDeviceMemory(v)
	}
	if _, ok := _c.mutation.CookiesEnabled(); !ok {
		v := fingerprint.DefaultCookiesEnabled
		_c.mutation.SetCookiesEnabled(v)
	}
	if _, ok := _c.mutation.DoNotTrack(); !ok {
		v := fingerprint.DefaultDoNotTrack
		_c.mutation.SetDoNotTrack(v)
	}
	if _, ok := _c.mutation.AdBlock(); !ok {
		v := fingerprint.DefaultAdBlock
		_c.mutation.SetAdBlock(v)
	}
	if _, ok := _c.mutation.IsBot(); !ok {
		v := fingerprint.DefaultIsBot
		_c.mutation.SetIsBot(v)
	}
	if _, ok := _c.mutation.BotScore(); !ok {
		v := fingerprint.DefaultBotScore
		_c.mutation.SetBotScore(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := fingerprint.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.SignalCount(); !ok {
		v := fingerprint.DefaultSignalCount
		_c.mutation.SetSignalCount(v)
	}
	if _, ok := _c.mutation.VisitCount(); !ok {
		v := fingerprint.DefaultVisitCount
		_c.mutation.SetVisitCount(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := fingerprint.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := fingerprint.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fingerprint.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FingerprintCreate) check() error {
	if _, ok := _c.mutation.MerchantID(); !ok {
		return &ValidationError{Name: "merchant_id", err: errors.New(`ent: missing required field "Fingerprint.merchant_id"`)}
	}
	if _, ok := _c.mutation.FpHash(); !ok {
		return &ValidationError{Name: "fp_hash", err: errors.New(`ent: missing required field "Fingerprint.fp_hash"`)}
	}
	if v, ok := _c.mutation.FpHash(); ok {
		if err := fingerprint.FpHashValidator(v); err != nil {
			return &ValidationError{Name: "fp_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.fp_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CanvasHash(); ok {
		if err := fingerprint.CanvasHashValidator(v); err != nil {
			return &ValidationError{Name: "canvas_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.canvas_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.WebglHash(); ok {
		if err := fingerprint.WebglHashValidator(v); err != nil {
			return &ValidationError{Name: "webgl_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.webgl_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AudioHash(); ok {
		if err := fingerprint.AudioHashValidator(v); err != nil {
			return &ValidationError{Name: "audio_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.audio_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.UserAgent(); ok {
		if err := fingerprint.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.user_agent": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := fingerprint.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.platform": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := fingerprint.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.language": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := fingerprint.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScreenWidth(); !ok {
		return &ValidationError{Name: "screen_width", err: errors.New(`ent: missing required field "Fingerprint.screen_width"`)}
	}
	if _, ok := _c.mutation.ScreenHeight(); !ok {
		return &ValidationError{Name: "screen_height", err: errors.New(`ent: missing required field "Fingerprint.screen_height"`)}
	}
	if _, ok := _c.mutation.PixelRatio(); !ok {
		return &ValidationError{Name: "pixel_ratio", err: errors.New(`ent: missing required field "Fingerprint.pixel_ratio"`)}
	}
	if _, ok := _c.mutation.TouchSupport(); !ok {
		return &ValidationError{Name: "touch_support", err: errors.New(`ent: missing required field "Fingerprint.touch_support"`)}
	}
	if _, ok := _c.mutation.HardwareConcurrency(); !ok {
		return &ValidationError{Name: "hardware_concurrency", err: errors.New(`ent: missing required field "Fingerprint.hardware_concurrency"`)}
	}
	if _, ok := _c.mutation.DeviceMemory(); !ok {
		return &ValidationError{Name: "device_memory", err: errors.New(`ent: missing required field "Fingerprint.device_memory"`)}
	}
	if v, ok := _c.mutation.GpuVendor(); ok {
		if err := fingerprint.GpuVendorValidator(v); err != nil {
			return &ValidationError{Name: "gpu_vendor", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.gpu_vendor": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GpuRenderer(); ok {
		if err := fingerprint.GpuRendererValidator(v); err != nil {
			return &ValidationError{Name: "gpu_renderer", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.gpu_renderer": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ConnectionType(); ok {
		if err := fingerprint.ConnectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "connection_type", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.connection_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CookiesEnabled(); !ok {
		return &ValidationError{Name: "cookies_enabled", err: errors.New(`ent: missing required field "Fingerprint.cookies_enabled"`)}
	}
	if _, ok := _c.mutation.DoNotTrack(); !ok {
		return &ValidationError{Name: "do_not_track", err: errors.New(`ent: missing required field "Fingerprint.do_not_track"`)}
	}
	if _, ok := _c.mutation.AdBlock(); !ok {
		return &ValidationError{Name: "ad_block", err: errors.New(`ent: missing required field "Fingerprint.ad_block"`)}
	}
	if _, ok := _c.mutation.IsBot(); !ok {
		return &ValidationError{Name: "is_bot", err: errors.New(`ent: missing required field "Fingerprint.is_bot"`)}
	}
	if _, ok := _c.mutation.BotScore(); !ok {
		return &ValidationError{Name: "bot_score", err: errors.New(`ent: missing required field "Fingerprint.bot_score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Fingerprint.confidence"`)}
	}
	if _, ok := _c.mutation.SignalCount(); !ok {
		return &ValidationError{Name: "signal_count", err: errors.New(`ent: missing required field "Fingerprint.signal_count"`)}
	}
	if _, ok := _c.mutation.VisitCount(); !ok {
		return &ValidationError{Name: "visit_count", err: errors.New(`ent: missing required field "Fingerprint.visit_count"`)}
	}
	if v, ok := _c.mutation.VisitCount(); ok {
		if err := fingerprint.VisitCountValidator(v); err != nil {
			return &ValidationError{Name: "visit_count", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.visit_count": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IPAddress(); ok {
		if err := fingerprint.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.ip_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "Fingerprint.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Fingerprint.last_seen_at"`)}
	}
	if len(_c.mutation.MerchantIDs()) == 0 {
		return &ValidationError{Name: "merchant", err: errors.New(`ent: missing required edge "Fingerprint.merchant"`)}
	}
	return nil
}

func (_c *FingerprintCreate) sqlSave(ctx context.Context) (*Fingerprint, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FingerprintCreate) createSpec() (*Fingerprint, *sqlgraph.CreateSpec) {
	var (
		_node = &Fingerprint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fingerprint.Table, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FpHash(); ok {
		_spec.SetField(fingerprint.FieldFpHash, field.TypeString, value)
		_node.FpHash = value
	}
	if value, ok := _c.mutation.CanvasHash(); ok {
		_spec.SetField(fingerprint.FieldCanvasHash, field.TypeString, value)
		_node.CanvasHash = &value
	}
	if value, ok := _c.mutation.WebglHash(); ok {
		_spec.SetField(fingerprint.FieldWebglHash, field.TypeString, value)
		_node.WebglHash = &value
	}
	if value, ok := _c.mutation.AudioHash(); ok {
		_spec.SetField(fingerprint.FieldAudioHash, field.TypeString, value)
		_node.AudioHash = &value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(fingerprint.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(fingerprint.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(fingerprint.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(fingerprint.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.ScreenWidth(); ok {
		_spec.SetField(fingerprint.FieldScreenWidth, field.TypeInt, value)
		_node.ScreenWidth = value
	}
	if value, ok := _c.mutation.ScreenHeight(); ok {
		_spec.SetField(fingerprint.FieldScreenHeight, field.TypeInt, value)
		_node.ScreenHeight = value
	}
	if value, ok := _c.mutation.PixelRatio(); ok {
		_spec.SetField(fingerprint.FieldPixelRatio, field.TypeFloat64, value)
		_node.PixelRatio = value
	}
	if value, ok := _c.mutation.TouchSupport(); ok {
		_spec.SetField(fingerprint.FieldTouchSupport, field.TypeBool, value)
		_node.TouchSupport = value
	}
	if value, ok := _c.mutation.HardwareConcurrency(); ok {
		_spec.SetField(fingerprint.FieldHardwareConcurrency, field.TypeInt, value)
		_node.HardwareConcurrency = value
	}
	if value, ok := _c.mutation.DeviceMemory(); ok {
		_spec.SetField(fingerprint.FieldDeviceMemory, field.TypeFloat64, value)
		_node.DeviceMemory = value
	}
	if value, ok := _c.mutation.GpuVendor(); ok {
		_spec.SetField(fingerprint.FieldGpuVendor, field.TypeString, value)
		_node.GpuVendor = value
	}
	if value, ok := _c.mutation.GpuRenderer(); ok {
		_spec.SetField(fingerprint.FieldGpuRenderer, field.TypeString, value)
		_node.GpuRenderer = value
	}
	if value, ok := _c.mutation.ConnectionType(); ok {
		_spec.SetField(fingerprint.FieldConnectionType, field.TypeString, value)
		_node.ConnectionType = value
	}
	if value, ok := _c.mutation.CookiesEnabled(); ok {
		_spec.SetField(fingerprint.FieldCookiesEnabled, field.TypeBool, value)
		_node.CookiesEnabled = value
	}
	if value, ok := _c.mutation.DoNotTrack(); ok {
		_spec.SetField(fingerprint.FieldDoNotTrack, field.TypeBool, value)
		_node.DoNotTrack = value
	}
	if value, ok := _c.mutation.AdBlock(); ok {
		_spec.SetField(fingerprint.FieldAdBlock, field.TypeBool, value)
		_node.AdBlock = value
	}
	if value, ok := _c.mutation.IsBot(); ok {
		_spec.SetField(fingerprint.FieldIsBot, field.TypeBool, value)
		_node.IsBot = value
	}
	if value, ok := _c.mutation.BotScore(); ok {
		_spec.SetField(fingerprint.FieldBotScore, field.TypeFloat64, value)
		_node.BotScore = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(fingerprint.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SignalCount(); ok {
		_spec.SetField(fingerprint.FieldSignalCount, field.TypeInt, value)
		_node.SignalCount = value
	}
	if value, ok := _c.mutation.VisitCount(); ok {
		_spec.SetField(fingerprint.FieldVisitCount, field.TypeInt, value)
		_node.VisitCount = value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(fingerprint.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(fingerprint.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(fingerprint.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if nodes := _c.mutation.MerchantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fingerprint.MerchantTable,
			Columns: []string{fingerprint.MerchantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MerchantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IdentityLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fingerprint.IdentityLinksTable,
			Columns: []string{fingerprint.IdentityLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(identitylink.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Fingerprint.Create().
//		SetMerchantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FingerprintUpsert) {
//			SetMerchantID(v+v).
//		}).
//		Exec(ctx)
func (_c *FingerprintCreate) OnConflict(opts ...sql.ConflictOption) *FingerprintUpsertOne {
	_c.conflict = opts
	return &FingerprintUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FingerprintCreate) OnConflictColumns(columns ...string) *FingerprintUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FingerprintUpsertOne{
		create: _c,
	}
}

type (
	// FingerprintUpsertOne is the builder for "upsert"-ing
	//  one Fingerprint node.
	FingerprintUpsertOne struct {
		create *FingerprintCreate
	}

	// FingerprintUpsert is the "OnConflict" setter.
	FingerprintUpsert struct {
		*sql.UpdateSet
	}
)

// SetMerchantID sets the "merchant_id" field.
func (u *FingerprintUpsert) SetMerchantID(v uuid.UUID) *FingerprintUpsert {
	u.Set(fingerprint.FieldMerchantID, v)
	return u
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateMerchantID() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldMerchantID)
	return u
}

// SetFpHash sets the "fp_hash" field.
func (u *FingerprintUpsert) SetFpHash(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldFpHash, v)
	return u
}

// UpdateFpHash sets the "fp_hash" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateFpHash() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldFpHash)
	return u
}

// SetCanvasHash sets the "canvas_hash" field.
func (u *FingerprintUpsert) SetCanvasHash(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldCanvasHash, v)
	return u
}

// UpdateCanvasHash sets the "canvas_hash" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateCanvasHash() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldCanvasHash)
	return u
}

// ClearCanvasHash clears the value of the "canvas_hash" field.
func (u *FingerprintUpsert) ClearCanvasHash() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldCanvasHash)
	return u
}

// SetWebglHash sets the "webgl_hash" field.
func (u *FingerprintUpsert) SetWebglHash(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldWebglHash, v)
	return u
}

// UpdateWebglHash sets the "webgl_hash" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateWebglHash() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldWebglHash)
	return u
}

// ClearWebglHash clears the value of the "webgl_hash" field.
func (u *FingerprintUpsert) ClearWebglHash() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldWebglHash)
	return u
}

// SetAudioHash sets the "audio_hash" field.
func (u *FingerprintUpsert) SetAudioHash(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldAudioHash, v)
	return u
}

// UpdateAudioHash sets the "audio_hash" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateAudioHash() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldAudioHash)
	return u
}

// ClearAudioHash clears the value of the "audio_hash" field.
func (u *FingerprintUpsert) ClearAudioHash() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldAudioHash)
	return u
}

// SetUserAgent sets the "user_agent" field.
func (u *FingerprintUpsert) SetUserAgent(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldUserAgent, v)
	return u
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateUserAgent() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldUserAgent)
	return u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *FingerprintUpsert) ClearUserAgent() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldUserAgent)
	return u
}

// SetPlatform sets the "platform" field.
func (u *FingerprintUpsert) SetPlatform(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdatePlatform() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldPlatform)
	return u
}

// ClearPlatform clears the value of the "platform" field.
func (u *FingerprintUpsert) ClearPlatform() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldPlatform)
	return u
}

// SetLanguage sets the "language" field.
func (u *FingerprintUpsert) SetLanguage(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateLanguage() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldLanguage)
	return u
}

// ClearLanguage clears the value of the "language" field.
func (u *FingerprintUpsert) ClearLanguage() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldLanguage)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *FingerprintUpsert) SetTimezone(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateTimezone() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldTimezone)
	return u
}

// ClearTimezone clears the value of the "timezone" field.
func (u *FingerprintUpsert) ClearTimezone() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldTimezone)
	return u
}

// SetScreenWidth sets the "screen_width" field.
func (u *FingerprintUpsert) SetScreenWidth(v int) *FingerprintUpsert {
	u.Set(fingerprint.FieldScreenWidth, v)
	return u
}

// UpdateScreenWidth sets the "screen_width" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateScreenWidth() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldScreenWidth)
	return u
}

// AddScreenWidth adds v to the "screen_width" field.
func (u *FingerprintUpsert) AddScreenWidth(v int) *FingerprintUpsert {
	u.Add(fingerprint.FieldScreenWidth, v)
	return u
}

// SetScreenHeight sets the "screen_height" field.
func (u *FingerprintUpsert) SetScreenHeight(v int) *FingerprintUpsert {
	u.Set(fingerprint.FieldScreenHeight, v)
	return u
}

// UpdateScreenHeight sets the "screen_height" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateScreenHeight() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldScreenHeight)
	return u
}

// AddScreenHeight adds v to the "screen_height" field.
func (u *FingerprintUpsert) AddScreenHeight(v int) *FingerprintUpsert {
	u.Add(fingerprint.FieldScreenHeight, v)
	return u
}

// SetPixelRatio sets the "pixel_ratio" field.
func (u *FingerprintUpsert) SetPixelRatio(v float64) *FingerprintUpsert {
	u.Set(fingerprint.FieldPixelRatio, v)
	return u
}

// UpdatePixelRatio sets the "pixel_ratio" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdatePixelRatio() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldPixelRatio)
	return u
}

// AddPixelRatio adds v to the "pixel_ratio" field.
func (u *FingerprintUpsert) AddPixelRatio(v float64) *FingerprintUpsert {
	u.Add(fingerprint.FieldPixelRatio, v)
	return u
}

// SetTouchSupport sets the "touch_support" field.
func (u *FingerprintUpsert) SetTouchSupport(v bool) *FingerprintUpsert {
	u.Set(fingerprint.FieldTouchSupport, v)
	return u
}

// UpdateTouchSupport sets the "touch_support" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateTouchSupport() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldTouchSupport)
	return u
}

// SetHardwareConcurrency sets the "hardware_concurrency" field.
func (u *FingerprintUpsert) SetHardwareConcurrency(v int) *FingerprintUpsert {
	u.Set(fingerprint.FieldHardwareConcurrency, v)
	return u
}

// UpdateHardwareConcurrency sets the "hardware_concurrency" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateHardwareConcurrency() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldHardwareConcurrency)
	return u
}

// AddHardwareConcurrency adds v to the "hardware_concurrency" field.
func (u *FingerprintUpsert) AddHardwareConcurrency(v int) *FingerprintUpsert {
	u.Add(fingerprint.FieldHardwareConcurrency, v)
	return u
}

// SetDeviceMemory sets the "device_memory" field.
func (u *FingerprintUpsert) SetDeviceMemory(v float64) *FingerprintUpsert {
	u.Set(fingerprint.FieldDeviceMemory, v)
	return u
}

// UpdateDeviceMemory sets the "device_memory" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateDeviceMemory() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldDeviceMemory)
	return u
}

// AddDeviceMemory adds v to the "device_memory" field.
func (u *FingerprintUpsert) AddDeviceMemory(v float64) *FingerprintUpsert {
	u.Add(fingerprint.FieldDeviceMemory, v)
	return u
}

// SetGpuVendor sets the "gpu_vendor" field.
func (u *FingerprintUpsert) SetGpuVendor(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldGpuVendor, v)
	return u
}

// UpdateGpuVendor sets the "gpu_vendor" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateGpuVendor() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldGpuVendor)
	return u
}

// ClearGpuVendor clears the value of the "gpu_vendor" field.
func (u *FingerprintUpsert) ClearGpuVendor() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldGpuVendor)
	return u
}

// SetGpuRenderer sets the "gpu_renderer" field.
func (u *FingerprintUpsert) SetGpuRenderer(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldGpuRenderer, v)
	return u
}

// UpdateGpuRenderer sets the "gpu_renderer" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateGpuRenderer() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldGpuRenderer)
	return u
}

// ClearGpuRenderer clears the value of the "gpu_renderer" field.
func (u *FingerprintUpsert) ClearGpuRenderer() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldGpuRenderer)
	return u
}

// SetConnectionType sets the "connection_type" field.
func (u *FingerprintUpsert) SetConnectionType(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldConnectionType, v)
	return u
}

// UpdateConnectionType sets the "connection_type" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateConnectionType() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldConnectionType)
	return u
}

// ClearConnectionType clears the value of the "connection_type" field.
func (u *FingerprintUpsert) ClearConnectionType() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldConnectionType)
	return u
}

// SetCookiesEnabled sets the "cookies_enabled" field.
func (u *FingerprintUpsert) SetCookiesEnabled(v bool) *FingerprintUpsert {
	u.Set(fingerprint.FieldCookiesEnabled, v)
	return u
}

// UpdateCookiesEnabled sets the "cookies_enabled" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateCookiesEnabled() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldCookiesEnabled)
	return u
}

// SetDoNotTrack sets the "do_not_track" field.
func (u *FingerprintUpsert) SetDoNotTrack(v bool) *FingerprintUpsert {
	u.Set(fingerprint.FieldDoNotTrack, v)
	return u
}

// UpdateDoNotTrack sets the "do_not_track" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateDoNotTrack() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldDoNotTrack)
	return u
}

// SetAdBlock sets the "ad_block" field.
func (u *FingerprintUpsert) SetAdBlock(v bool) *FingerprintUpsert {
	u.Set(fingerprint.FieldAdBlock, v)
	return u
}

// UpdateAdBlock sets the "ad_block" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateAdBlock() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldAdBlock)
	return u
}

// SetIsBot sets the "is_bot" field.
func (u *FingerprintUpsert) SetIsBot(v bool) *FingerprintUpsert {
	u.Set(fingerprint.FieldIsBot, v)
	return u
}

// UpdateIsBot sets the "is_bot" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateIsBot() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldIsBot)
	return u
}

// SetBotScore sets the "bot_score" field.
func (u *FingerprintUpsert) SetBotScore(v float64) *FingerprintUpsert {
	u.Set(fingerprint.FieldBotScore, v)
	return u
}

// UpdateBotScore sets the "bot_score" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateBotScore() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldBotScore)
	return u
}

// AddBotScore adds v to the "bot_score" field.
func (u *FingerprintUpsert) AddBotScore(v float64) *FingerprintUpsert {
	u.Add(fingerprint.FieldBotScore, v)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *FingerprintUpsert) SetConfidence(v float64) *FingerprintUpsert {
	u.Set(fingerprint.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateConfidence() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *FingerprintUpsert) AddConfidence(v float64) *FingerprintUpsert {
	u.Add(fingerprint.FieldConfidence, v)
	return u
}

// SetSignalCount sets the "signal_count" field.
func (u *FingerprintUpsert) SetSignalCount(v int) *FingerprintUpsert {
	u.Set(fingerprint.FieldSignalCount, v)
	return u
}

// UpdateSignalCount sets the "signal_count" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateSignalCount() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldSignalCount)
	return u
}

// AddSignalCount adds v to the "signal_count" field.
func (u *FingerprintUpsert) AddSignalCount(v int) *FingerprintUpsert {
	u.Add(fingerprint.FieldSignalCount, v)
	return u
}

// SetVisitCount sets the "visit_count" field.
func (u *FingerprintUpsert) SetVisitCount(v int) *FingerprintUpsert {
	u.Set(fingerprint.FieldVisitCount, v)
	return u
}

// UpdateVisitCount sets the "visit_count" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateVisitCount() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldVisitCount)
	return u
}

// AddVisitCount adds v to the "visit_count" field.
func (u *FingerprintUpsert) AddVisitCount(v int) *FingerprintUpsert {
	u.Add(fingerprint.FieldVisitCount, v)
	return u
}

// SetIPAddress sets the "ip_address" field.
func (u *FingerprintUpsert) SetIPAddress(v string) *FingerprintUpsert {
	u.Set(fingerprint.FieldIPAddress, v)
	return u
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateIPAddress() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldIPAddress)
	return u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *FingerprintUpsert) ClearIPAddress() *FingerprintUpsert {
	u.SetNull(fingerprint.FieldIPAddress)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *FingerprintUpsert) SetLastSeenAt(v time.Time) *FingerprintUpsert {
	u.Set(fingerprint.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *FingerprintUpsert) UpdateLastSeenAt() *FingerprintUpsert {
	u.SetExcluded(fingerprint.FieldLastSeenAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fingerprint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FingerprintUpsertOne) UpdateNewValues() *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(fingerprint.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeenAt(); exists {
			s.SetIgnore(fingerprint.FieldFirstSeenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FingerprintUpsertOne) Ignore() *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FingerprintUpsertOne) DoNothing() *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FingerprintCreate.OnConflict
// documentation for more info.
func (u *FingerprintUpsertOne) Update(set func(*FingerprintUpsert)) *FingerprintUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FingerprintUpsert{UpdateSet: update})
	}))
	return u
}

// SetMerchantID sets the "merchant_id" field.
func (u *FingerprintUpsertOne) SetMerchantID(v uuid.UUID) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetMerchantID(v)
	})
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateMerchantID() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateMerchantID()
	})
}

// SetFpHash sets the "fp_hash" field.
func (u *FingerprintUpsertOne) SetFpHash(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetFpHash(v)
	})
}

// UpdateFpHash sets the "fp_hash" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateFpHash() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateFpHash()
	})
}

// SetCanvasHash sets the "canvas_hash" field.
func (u *FingerprintUpsertOne) SetCanvasHash(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetCanvasHash(v)
	})
}

// UpdateCanvasHash sets the "canvas_hash" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateCanvasHash() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateCanvasHash()
	})
}

// ClearCanvasHash clears the value of the "canvas_hash" field.
func (u *FingerprintUpsertOne) ClearCanvasHash() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearCanvasHash()
	})
}

// SetWebglHash sets the "webgl_hash" field.
func (u *FingerprintUpsertOne) SetWebglHash(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetWebglHash(v)
	})
}

// UpdateWebglHash sets the "webgl_hash" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateWebglHash() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateWebglHash()
	})
}

// ClearWebglHash clears the value of the "webgl_hash" field.
func (u *FingerprintUpsertOne) ClearWebglHash() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearWebglHash()
	})
}

// SetAudioHash sets the "audio_hash" field.
func (u *FingerprintUpsertOne) SetAudioHash(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetAudioHash(v)
	})
}

// UpdateAudioHash sets the "audio_hash" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateAudioHash() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateAudioHash()
	})
}

// ClearAudioHash clears the value of the "audio_hash" field.
func (u *FingerprintUpsertOne) ClearAudioHash() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearAudioHash()
	})
}

// SetUserAgent sets the "user_agent" field.
func (u *FingerprintUpsertOne) SetUserAgent(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetUserAgent(v)
	})
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateUserAgent() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateUserAgent()
	})
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *FingerprintUpsertOne) ClearUserAgent() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearUserAgent()
	})
}

// SetPlatform sets the "platform" field.
func (u *FingerprintUpsertOne) SetPlatform(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdatePlatform() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdatePlatform()
	})
}

// ClearPlatform clears the value of the "platform" field.
func (u *FingerprintUpsertOne) ClearPlatform() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearPlatform()
	})
}

// SetLanguage sets the "language" field.
func (u *FingerprintUpsertOne) SetLanguage(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateLanguage() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateLanguage()
	})
}

// ClearLanguage clears the value of the "language" field.
func (u *FingerprintUpsertOne) ClearLanguage() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearLanguage()
	})
}

// SetTimezone sets the "timezone" field.
func (u *FingerprintUpsertOne) SetTimezone(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateTimezone() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateTimezone()
	})
}

// ClearTimezone clears the value of the "timezone" field.
func (u *FingerprintUpsertOne) ClearTimezone() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearTimezone()
	})
}

// SetScreenWidth sets the "screen_width" field.
func (u *FingerprintUpsertOne) SetScreenWidth(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetScreenWidth(v)
	})
}

// AddScreenWidth adds v to the "screen_width" field.
func (u *FingerprintUpsertOne) AddScreenWidth(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddScreenWidth(v)
	})
}

// UpdateScreenWidth sets the "screen_width" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateScreenWidth() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateScreenWidth()
	})
}

// SetScreenHeight sets the "screen_height" field.
func (u *FingerprintUpsertOne) SetScreenHeight(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetScreenHeight(v)
	})
}

// AddScreenHeight adds v to the "screen_height" field.
func (u *FingerprintUpsertOne) AddScreenHeight(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddScreenHeight(v)
	})
}

// UpdateScreenHeight sets the "screen_height" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateScreenHeight() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateScreenHeight()
	})
}

// SetPixelRatio sets the "pixel_ratio" field.
func (u *FingerprintUpsertOne) SetPixelRatio(v float64) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetPixelRatio(v)
	})
}

// AddPixelRatio adds v to the "pixel_ratio" field.
func (u *FingerprintUpsertOne) AddPixelRatio(v float64) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddPixelRatio(v)
	})
}

// UpdatePixelRatio sets the "pixel_ratio" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdatePixelRatio() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdatePixelRatio()
	})
}

// SetTouchSupport sets the "touch_support" field.
func (u *FingerprintUpsertOne) SetTouchSupport(v bool) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetTouchSupport(v)
	})
}

// UpdateTouchSupport sets the "touch_support" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateTouchSupport() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateTouchSupport()
	})
}

// SetHardwareConcurrency sets the "hardware_concurrency" field.
func (u *FingerprintUpsertOne) SetHardwareConcurrency(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetHardwareConcurrency(v)
	})
}

// AddHardwareConcurrency adds v to the "hardware_concurrency" field.
func (u *FingerprintUpsertOne) AddHardwareConcurrency(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddHardwareConcurrency(v)
	})
}

// UpdateHardwareConcurrency sets the "hardware_concurrency" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateHardwareConcurrency() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateHardwareConcurrency()
	})
}

// SetDeviceMemory sets the "device_memory" field.
func (u *FingerprintUpsertOne) SetDeviceMemory(v float64) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetDeviceMemory(v)
	})
}

// AddDeviceMemory adds v to the "device_memory" field.
func (u *FingerprintUpsertOne) AddDeviceMemory(v float64) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddDeviceMemory(v)
	})
}

// UpdateDeviceMemory sets the "device_memory" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateDeviceMemory() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateDeviceMemory()
	})
}

// SetGpuVendor sets the "gpu_vendor" field.
func (u *FingerprintUpsertOne) SetGpuVendor(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetGpuVendor(v)
	})
}

// UpdateGpuVendor sets the "gpu_vendor" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateGpuVendor() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateGpuVendor()
	})
}

// ClearGpuVendor clears the value of the "gpu_vendor" field.
func (u *FingerprintUpsertOne) ClearGpuVendor() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearGpuVendor()
	})
}

// SetGpuRenderer sets the "gpu_renderer" field.
func (u *FingerprintUpsertOne) SetGpuRenderer(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetGpuRenderer(v)
	})
}

// UpdateGpuRenderer sets the "gpu_renderer" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateGpuRenderer() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateGpuRenderer()
	})
}

// ClearGpuRenderer clears the value of the "gpu_renderer" field.
func (u *FingerprintUpsertOne) ClearGpuRenderer() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearGpuRenderer()
	})
}

// SetConnectionType sets the "connection_type" field.
func (u *FingerprintUpsertOne) SetConnectionType(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetConnectionType(v)
	})
}

// UpdateConnectionType sets the "connection_type" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateConnectionType() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateConnectionType()
	})
}

// ClearConnectionType clears the value of the "connection_type" field.
func (u *FingerprintUpsertOne) ClearConnectionType() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearConnectionType()
	})
}

// SetCookiesEnabled sets the "cookies_enabled" field.
func (u *FingerprintUpsertOne) SetCookiesEnabled(v bool) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetCookiesEnabled(v)
	})
}

// UpdateCookiesEnabled sets the "cookies_enabled" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateCookiesEnabled() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateCookiesEnabled()
	})
}

// SetDoNotTrack sets the "do_not_track" field.
func (u *FingerprintUpsertOne) SetDoNotTrack(v bool) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetDoNotTrack(v)
	})
}

// UpdateDoNotTrack sets the "do_not_track" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateDoNotTrack() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateDoNotTrack()
	})
}

// SetAdBlock sets the "ad_block" field.
func (u *FingerprintUpsertOne) SetAdBlock(v bool) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetAdBlock(v)
	})
}

// UpdateAdBlock sets the "ad_block" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateAdBlock() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateAdBlock()
	})
}

// SetIsBot sets the "is_bot" field.
func (u *FingerprintUpsertOne) SetIsBot(v bool) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetIsBot(v)
	})
}

// UpdateIsBot sets the "is_bot" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateIsBot() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateIsBot()
	})
}

// SetBotScore sets the "bot_score" field.
func (u *FingerprintUpsertOne) SetBotScore(v float64) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetBotScore(v)
	})
}

// AddBotScore adds v to the "bot_score" field.
func (u *FingerprintUpsertOne) AddBotScore(v float64) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddBotScore(v)
	})
}

// UpdateBotScore sets the "bot_score" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateBotScore() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateBotScore()
	})
}

// SetConfidence sets the "confidence" field.
func (u *FingerprintUpsertOne) SetConfidence(v float64) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *FingerprintUpsertOne) AddConfidence(v float64) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateConfidence() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateConfidence()
	})
}

// SetSignalCount sets the "signal_count" field.
func (u *FingerprintUpsertOne) SetSignalCount(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetSignalCount(v)
	})
}

// AddSignalCount adds v to the "signal_count" field.
func (u *FingerprintUpsertOne) AddSignalCount(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddSignalCount(v)
	})
}

// UpdateSignalCount sets the "signal_count" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateSignalCount() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateSignalCount()
	})
}

// SetVisitCount sets the "visit_count" field.
func (u *FingerprintUpsertOne) SetVisitCount(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetVisitCount(v)
	})
}

// AddVisitCount adds v to the "visit_count" field.
func (u *FingerprintUpsertOne) AddVisitCount(v int) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddVisitCount(v)
	})
}

// UpdateVisitCount sets the "visit_count" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateVisitCount() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateVisitCount()
	})
}

// SetIPAddress sets the "ip_address" field.
func (u *FingerprintUpsertOne) SetIPAddress(v string) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetIPAddress(v)
	})
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateIPAddress() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateIPAddress()
	})
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *FingerprintUpsertOne) ClearIPAddress() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearIPAddress()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *FingerprintUpsertOne) SetLastSeenAt(v time.Time) *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *FingerprintUpsertOne) UpdateLastSeenAt() *FingerprintUpsertOne {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *FingerprintUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FingerprintCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FingerprintUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FingerprintUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FingerprintUpsertOne.ID is not supported by MySQL driver. Use FingerprintUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FingerprintUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FingerprintCreateBulk is the builder for creating many Fingerprint entities in bulk.
type FingerprintCreateBulk struct {
	config
	err      error
	builders []*FingerprintCreate
	conflict []sql.ConflictOption
}

// Save creates the Fingerprint entities in the database.
func (_c *FingerprintCreateBulk) Save(ctx context.Context) ([]*Fingerprint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Fingerprint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FingerprintMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FingerprintCreateBulk) SaveX(ctx context.Context) []*Fingerprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FingerprintCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FingerprintCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Fingerprint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FingerprintUpsert) {
//			SetMerchantID(v+v).
//		}).
//		Exec(ctx)
func (_c *FingerprintCreateBulk) OnConflict(opts ...sql.ConflictOption) *FingerprintUpsertBulk {
	_c.conflict = opts
	return &FingerprintUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FingerprintCreateBulk) OnConflictColumns(columns ...string) *FingerprintUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FingerprintUpsertBulk{
		create: _c,
	}
}

// FingerprintUpsertBulk is the builder for "upsert"-ing
// a bulk of Fingerprint nodes.
type FingerprintUpsertBulk struct {
	create *FingerprintCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fingerprint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FingerprintUpsertBulk) UpdateNewValues() *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(fingerprint.FieldID)
			}
			if _, exists := b.mutation.FirstSeenAt(); exists {
				s.SetIgnore(fingerprint.FieldFirstSeenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Fingerprint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FingerprintUpsertBulk) Ignore() *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FingerprintUpsertBulk) DoNothing() *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FingerprintCreateBulk.OnConflict
// documentation for more info.
func (u *FingerprintUpsertBulk) Update(set func(*FingerprintUpsert)) *FingerprintUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FingerprintUpsert{UpdateSet: update})
	}))
	return u
}

// SetMerchantID sets the "merchant_id" field.
func (u *FingerprintUpsertBulk) SetMerchantID(v uuid.UUID) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetMerchantID(v)
	})
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateMerchantID() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateMerchantID()
	})
}

// SetFpHash sets the "fp_hash" field.
func (u *FingerprintUpsertBulk) SetFpHash(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetFpHash(v)
	})
}

// UpdateFpHash sets the "fp_hash" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateFpHash() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateFpHash()
	})
}

// SetCanvasHash sets the "canvas_hash" field.
func (u *FingerprintUpsertBulk) SetCanvasHash(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetCanvasHash(v)
	})
}

// UpdateCanvasHash sets the "canvas_hash" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateCanvasHash() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateCanvasHash()
	})
}

// ClearCanvasHash clears the value of the "canvas_hash" field.
func (u *FingerprintUpsertBulk) ClearCanvasHash() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearCanvasHash()
	})
}

// SetWebglHash sets the "webgl_hash" field.
func (u *FingerprintUpsertBulk) SetWebglHash(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetWebglHash(v)
	})
}

// UpdateWebglHash sets the "webgl_hash" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateWebglHash() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateWebglHash()
	})
}

// ClearWebglHash clears the value of the "webgl_hash" field.
func (u *FingerprintUpsertBulk) ClearWebglHash() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearWebglHash()
	})
}

// SetAudioHash sets the "audio_hash" field.
func (u *FingerprintUpsertBulk) SetAudioHash(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetAudioHash(v)
	})
}

// UpdateAudioHash sets the "audio_hash" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateAudioHash() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateAudioHash()
	})
}

// ClearAudioHash clears the value of the "audio_hash" field.
func (u *FingerprintUpsertBulk) ClearAudioHash() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearAudioHash()
	})
}

// SetUserAgent sets the "user_agent" field.
func (u *FingerprintUpsertBulk) SetUserAgent(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetUserAgent(v)
	})
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateUserAgent() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateUserAgent()
	})
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *FingerprintUpsertBulk) ClearUserAgent() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearUserAgent()
	})
}

// SetPlatform sets the "platform" field.
func (u *FingerprintUpsertBulk) SetPlatform(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdatePlatform() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdatePlatform()
	})
}

// ClearPlatform clears the value of the "platform" field.
func (u *FingerprintUpsertBulk) ClearPlatform() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearPlatform()
	})
}

// SetLanguage sets the "language" field.
func (u *FingerprintUpsertBulk) SetLanguage(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateLanguage() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateLanguage()
	})
}

// ClearLanguage clears the value of the "language" field.
func (u *FingerprintUpsertBulk) ClearLanguage() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearLanguage()
	})
}

// SetTimezone sets the "timezone" field.
func (u *FingerprintUpsertBulk) SetTimezone(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateTimezone() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateTimezone()
	})
}

// ClearTimezone clears the value of the "timezone" field.
func (u *FingerprintUpsertBulk) ClearTimezone() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearTimezone()
	})
}

// SetScreenWidth sets the "screen_width" field.
func (u *FingerprintUpsertBulk) SetScreenWidth(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetScreenWidth(v)
	})
}

// AddScreenWidth adds v to the "screen_width" field.
func (u *FingerprintUpsertBulk) AddScreenWidth(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddScreenWidth(v)
	})
}

// UpdateScreenWidth sets the "screen_width" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateScreenWidth() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateScreenWidth()
	})
}

// SetScreenHeight sets the "screen_height" field.
func (u *FingerprintUpsertBulk) SetScreenHeight(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetScreenHeight(v)
	})
}

// AddScreenHeight adds v to the "screen_height" field.
func (u *FingerprintUpsertBulk) AddScreenHeight(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddScreenHeight(v)
	})
}

// UpdateScreenHeight sets the "screen_height" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateScreenHeight() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateScreenHeight()
	})
}

// SetPixelRatio sets the "pixel_ratio" field.
func (u *FingerprintUpsertBulk) SetPixelRatio(v float64) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetPixelRatio(v)
	})
}

// AddPixelRatio adds v to the "pixel_ratio" field.
func (u *FingerprintUpsertBulk) AddPixelRatio(v float64) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddPixelRatio(v)
	})
}

// UpdatePixelRatio sets the "pixel_ratio" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdatePixelRatio() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdatePixelRatio()
	})
}

// SetTouchSupport sets the "touch_support" field.
func (u *FingerprintUpsertBulk) SetTouchSupport(v bool) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetTouchSupport(v)
	})
}

// UpdateTouchSupport sets the "touch_support" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateTouchSupport() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateTouchSupport()
	})
}

// SetHardwareConcurrency sets the "hardware_concurrency" field.
func (u *FingerprintUpsertBulk) SetHardwareConcurrency(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetHardwareConcurrency(v)
	})
}

// AddHardwareConcurrency adds v to the "hardware_concurrency" field.
func (u *FingerprintUpsertBulk) AddHardwareConcurrency(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddHardwareConcurrency(v)
	})
}

// UpdateHardwareConcurrency sets the "hardware_concurrency" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateHardwareConcurrency() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateHardwareConcurrency()
	})
}

// SetDeviceMemory sets the "device_memory" field.
func (u *FingerprintUpsertBulk) SetDeviceMemory(v float64) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetDeviceMemory(v)
	})
}

// AddDeviceMemory adds v to the "device_memory" field.
func (u *FingerprintUpsertBulk) AddDeviceMemory(v float64) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddDeviceMemory(v)
	})
}

// UpdateDeviceMemory sets the "device_memory" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateDeviceMemory() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateDeviceMemory()
	})
}

// SetGpuVendor sets the "gpu_vendor" field.
func (u *FingerprintUpsertBulk) SetGpuVendor(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetGpuVendor(v)
	})
}

// UpdateGpuVendor sets the "gpu_vendor" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateGpuVendor() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateGpuVendor()
	})
}

// ClearGpuVendor clears the value of the "gpu_vendor" field.
func (u *FingerprintUpsertBulk) ClearGpuVendor() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearGpuVendor()
	})
}

// SetGpuRenderer sets the "gpu_renderer" field.
func (u *FingerprintUpsertBulk) SetGpuRenderer(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetGpuRenderer(v)
	})
}

// UpdateGpuRenderer sets the "gpu_renderer" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateGpuRenderer() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateGpuRenderer()
	})
}

// ClearGpuRenderer clears the value of the "gpu_renderer" field.
func (u *FingerprintUpsertBulk) ClearGpuRenderer() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearGpuRenderer()
	})
}

// SetConnectionType sets the "connection_type" field.
func (u *FingerprintUpsertBulk) SetConnectionType(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetConnectionType(v)
	})
}

// UpdateConnectionType sets the "connection_type" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateConnectionType() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateConnectionType()
	})
}

// ClearConnectionType clears the value of the "connection_type" field.
func (u *FingerprintUpsertBulk) ClearConnectionType() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearConnectionType()
	})
}

// SetCookiesEnabled sets the "cookies_enabled" field.
func (u *FingerprintUpsertBulk) SetCookiesEnabled(v bool) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetCookiesEnabled(v)
	})
}

// UpdateCookiesEnabled sets the "cookies_enabled" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateCookiesEnabled() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateCookiesEnabled()
	})
}

// SetDoNotTrack sets the "do_not_track" field.
func (u *FingerprintUpsertBulk) SetDoNotTrack(v bool) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetDoNotTrack(v)
	})
}

// UpdateDoNotTrack sets the "do_not_track" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateDoNotTrack() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateDoNotTrack()
	})
}

// SetAdBlock sets the "ad_block" field.
func (u *FingerprintUpsertBulk) SetAdBlock(v bool) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetAdBlock(v)
	})
}

// UpdateAdBlock sets the "ad_block" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateAdBlock() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateAdBlock()
	})
}

// SetIsBot sets the "is_bot" field.
func (u *FingerprintUpsertBulk) SetIsBot(v bool) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetIsBot(v)
	})
}

// UpdateIsBot sets the "is_bot" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateIsBot() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateIsBot()
	})
}

// SetBotScore sets the "bot_score" field.
func (u *FingerprintUpsertBulk) SetBotScore(v float64) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetBotScore(v)
	})
}

// AddBotScore adds v to the "bot_score" field.
func (u *FingerprintUpsertBulk) AddBotScore(v float64) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddBotScore(v)
	})
}

// UpdateBotScore sets the "bot_score" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateBotScore() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateBotScore()
	})
}

// SetConfidence sets the "confidence" field.
func (u *FingerprintUpsertBulk) SetConfidence(v float64) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *FingerprintUpsertBulk) AddConfidence(v float64) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateConfidence() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateConfidence()
	})
}

// SetSignalCount sets the "signal_count" field.
func (u *FingerprintUpsertBulk) SetSignalCount(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetSignalCount(v)
	})
}

// AddSignalCount adds v to the "signal_count" field.
func (u *FingerprintUpsertBulk) AddSignalCount(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddSignalCount(v)
	})
}

// UpdateSignalCount sets the "signal_count" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateSignalCount() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateSignalCount()
	})
}

// SetVisitCount sets the "visit_count" field.
func (u *FingerprintUpsertBulk) SetVisitCount(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetVisitCount(v)
	})
}

// AddVisitCount adds v to the "visit_count" field.
func (u *FingerprintUpsertBulk) AddVisitCount(v int) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.AddVisitCount(v)
	})
}

// UpdateVisitCount sets the "visit_count" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateVisitCount() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateVisitCount()
	})
}

// SetIPAddress sets the "ip_address" field.
func (u *FingerprintUpsertBulk) SetIPAddress(v string) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetIPAddress(v)
	})
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateIPAddress() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateIPAddress()
	})
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *FingerprintUpsertBulk) ClearIPAddress() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.ClearIPAddress()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *FingerprintUpsertBulk) SetLastSeenAt(v time.Time) *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *FingerprintUpsertBulk) UpdateLastSeenAt() *FingerprintUpsertBulk {
	return u.Update(func(s *FingerprintUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *FingerprintUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FingerprintCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FingerprintCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FingerprintUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
