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
	"visitor-iq/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FingerprintUpdate is the builder for updating Fingerprint entities.
type FingerprintUpdate struct {
	config
	hooks    []Hook
	mutation *FingerprintMutation
}

// Where appends a list predicates to the FingerprintUpdate builder.
func (_u *FingerprintUpdate) Where(ps ...predicate.Fingerprint) *FingerprintUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMerchantID sets the "merchant_id" field.
func (_u *FingerprintUpdate) SetMerchantID(v uuid.UUID) *FingerprintUpdate {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableMerchantID(v *uuid.UUID) *FingerprintUpdate {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetFpHash sets the "fp_hash" field.
func (_u *FingerprintUpdate) SetFpHash(v string) *FingerprintUpdate {
	_u.mutation.SetFpHash(v)
	return _u
}

// SetNillableFpHash sets the "fp_hash" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableFpHash(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetFpHash(*v)
	}
	return _u
}

// SetCanvasHash sets the "canvas_hash" field.
func (_u *FingerprintUpdate) SetCanvasHash(v string) *FingerprintUpdate {
	_u.mutation.SetCanvasHash(v)
	return _u
}

// SetNillableCanvasHash sets the "canvas_hash" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableCanvasHash(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetCanvasHash(*v)
	}
	return _u
}

// ClearCanvasHash clears the value of the "canvas_hash" field.
func (_u *FingerprintUpdate) ClearCanvasHash() *FingerprintUpdate {
	_u.mutation.ClearCanvasHash()
	return _u
}

// SetWebglHash sets the "webgl_hash" field.
func (_u *FingerprintUpdate) SetWebglHash(v string) *FingerprintUpdate {
	_u.mutation.SetWebglHash(v)
	return _u
}

// SetNillableWebglHash sets the "webgl_hash" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableWebglHash(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetWebglHash(*v)
	}
	return _u
}

// ClearWebglHash clears the value of the "webgl_hash" field.
func (_u *FingerprintUpdate) ClearWebglHash() *FingerprintUpdate {
	_u.mutation.ClearWebglHash()
	return _u
}

// SetAudioHash sets the "audio_hash" field.
func (_u *FingerprintUpdate) SetAudioHash(v string) *FingerprintUpdate {
	_u.mutation.SetAudioHash(v)
	return _u
}

// SetNillableAudioHash sets the "audio_hash" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableAudioHash(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetAudioHash(*v)
	}
	return _u
}

// ClearAudioHash clears the value of the "audio_hash" field.
func (_u *FingerprintUpdate) ClearAudioHash() *FingerprintUpdate {
	_u.mutation.ClearAudioHash()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *FingerprintUpdate) SetUserAgent(v string) *FingerprintUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableUserAgent(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *FingerprintUpdate) ClearUserAgent() *FingerprintUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *FingerprintUpdate) SetPlatform(v string) *FingerprintUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillablePlatform(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// ClearPlatform clears the value of the "platform" field.
func (_u *FingerprintUpdate) ClearPlatform() *FingerprintUpdate {
	_u.mutation.ClearPlatform()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *FingerprintUpdate) SetLanguage(v string) *FingerprintUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableLanguage(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *FingerprintUpdate) ClearLanguage() *FingerprintUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *FingerprintUpdate) SetTimezone(v string) *FingerprintUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableTimezone(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *FingerprintUpdate) ClearTimezone() *FingerprintUpdate {
	_u.mutation.ClearTimezone()
	return _u
}

// SetScreenWidth sets the "screen_width" field.
func (_u *FingerprintUpdate) SetScreenWidth(v int) *FingerprintUpdate {
	_u.mutation.ResetScreenWidth()
	_u.mutation.SetScreenWidth(v)
	return _u
}

// SetNillableScreenWidth sets the "screen_width" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableScreenWidth(v *int) *FingerprintUpdate {
	if v != nil {
		_u.SetScreenWidth(*v)
	}
	return _u
}

// AddScreenWidth adds value to the "screen_width" field.
func (_u *FingerprintUpdate) AddScreenWidth(v int) *FingerprintUpdate {
	_u.mutation.AddScreenWidth(v)
	return _u
}

// SetScreenHeight sets the "screen_height" field.
func (_u *FingerprintUpdate) SetScreenHeight(v int) *FingerprintUpdate {
	_u.mutation.ResetScreenHeight()
	_u.mutation.SetScreenHeight(v)
	return _u
}

// SetNillableScreenHeight sets the "screen_height" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableScreenHeight(v *int) *FingerprintUpdate {
	if v != nil {
		_u.SetScreenHeight(*v)
	}
	return _u
}

// AddScreenHeight adds value to the "screen_height" field.
func (_u *FingerprintUpdate) AddScreenHeight(v int) *FingerprintUpdate {
	_u.mutation.AddScreenHeight(v)
	return _u
}

// SetPixelRatio sets the "pixel_ratio" field.
func (_u *FingerprintUpdate) SetPixelRatio(v float64) *FingerprintUpdate {
	_u.mutation.ResetPixelRatio()
	_u.mutation.SetPixelRatio(v)
	return _u
}

// SetNillablePixelRatio sets the "pixel_ratio" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillablePixelRatio(v *float64) *FingerprintUpdate {
	if v != nil {
		_u.SetPixelRatio(*v)
	}
	return _u
}

// AddPixelRatio adds value to the "pixel_ratio" field.
func (_u *FingerprintUpdate) AddPixelRatio(v float64) *FingerprintUpdate {
	_u.mutation.AddPixelRatio(v)
	return _u
}

// SetTouchSupport sets the "touch_support" field.
func (_u *FingerprintUpdate) SetTouchSupport(v bool) *FingerprintUpdate {
	_u.mutation.SetTouchSupport(v)
	return _u
}

// SetNillableTouchSupport sets the "touch_support" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableTouchSupport(v *bool) *FingerprintUpdate {
	if v != nil {
		_u.SetTouchSupport(*v)
	}
	return _u
}

// SetHardwareConcurrency sets the "hardware_concurrency" field.
func (_u *FingerprintUpdate) SetHardwareConcurrency(v int) *FingerprintUpdate {
	_u.mutation.ResetHardwareConcurrency()
	_u.mutation.SetHardwareConcurrency(v)
	return _u
}

// SetNillableHardwareConcurrency sets the "hardware_concurrency" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableHardwareConcurrency(v *int) *FingerprintUpdate {
	if v != nil {
		_u.SetHardwareConcurrency(*v)
	}
	return _u
}

// AddHardwareConcurrency adds value to the "hardware_concurrency" field.
func (_u *FingerprintUpdate) AddHardwareConcurrency(v int) *FingerprintUpdate {
	_u.mutation.AddHardwareConcurrency(v)
	return _u
}

// SetDeviceMemory sets the "device_memory" field.
func (_u *FingerprintUpdate) SetDeviceMemory(v float64) *FingerprintUpdate {
	_u.mutation.ResetDeviceMemory()
	_u.mutation.SetDeviceMemory(v)
	return _u
}

// SetNillableDeviceMemory sets the "device_memory" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableDeviceMemory(v *float64) *FingerprintUpdate {
	if v != nil {
		_u.SetDeviceMemory(*v)
	}
	return _u
}

// AddDeviceMemory adds value to the "device_memory" field.
func (_u *FingerprintUpdate) AddDeviceMemory(v float64) *FingerprintUpdate {
	_u.mutation.AddDeviceMemory(v)
	return _u
}

// SetGpuVendor sets the "gpu_vendor" field.
func (_u *FingerprintUpdate) SetGpuVendor(v string) *FingerprintUpdate {
	_u.mutation.SetGpuVendor(v)
	return _u
}

// SetNillableGpuVendor sets the "gpu_vendor" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableGpuVendor(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetGpuVendor(*v)
	}
	return _u
}

// ClearGpuVendor clears the value of the "gpu_vendor" field.
func (_u *FingerprintUpdate) ClearGpuVendor() *FingerprintUpdate {
	_u.mutation.ClearGpuVendor()
	return _u
}

// SetGpuRenderer sets the "gpu_renderer" field.
func (_u *FingerprintUpdate) SetGpuRenderer(v string) *FingerprintUpdate {
	_u.mutation.SetGpuRenderer(v)
	return _u
}

// SetNillableGpuRenderer sets the "gpu_renderer" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableGpuRenderer(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetGpuRenderer(*v)
	}
	return _u
}

// ClearGpuRenderer clears the value of the "gpu_renderer" field.
func (_u *FingerprintUpdate) ClearGpuRenderer() *FingerprintUpdate {
	_u.mutation.ClearGpuRenderer()
	return _u
}

// SetConnectionType sets the "connection_type" field.
func (_u *FingerprintUpdate) SetConnectionType(v string) *FingerprintUpdate {
	_u.mutation.SetConnectionType(v)
	return _u
}

// SetNillableConnectionType sets the "connection_type" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableConnectionType(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetConnectionType(*v)
	}
	return _u
}

// ClearConnectionType clears the value of the "connection_type" field.
func (_u *FingerprintUpdate) ClearConnectionType() *FingerprintUpdate {
	_u.mutation.ClearConnectionType()
	return _u
}

// SetCookiesEnabled sets the "cookies_enabled" field.
func (_u *FingerprintUpdate) SetCookiesEnabled(v bool) *FingerprintUpdate {
	_u.mutation.SetCookiesEnabled(v)
	return _u
}

// SetNillableCookiesEnabled sets the "cookies_enabled" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableCookiesEnabled(v *bool) *FingerprintUpdate {
	if v != nil {
		_u.SetCookiesEnabled(*v)
	}
	return _u
}

// SetDoNotTrack sets the "do_not_track" field.
func (_u *FingerprintUpdate) SetDoNotTrack(v bool) *FingerprintUpdate {
	_u.mutation.SetDoNotTrack(v)
	return _u
}

// SetNillableDoNotTrack sets the "do_not_track" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableDoNotTrack(v *bool) *FingerprintUpdate {
	if v != nil {
		_u.SetDoNotTrack(*v)
	}
	return _u
}

// SetAdBlock sets the "ad_block" field.
func (_u *FingerprintUpdate) SetAdBlock(v bool) *FingerprintUpdate {
	_u.mutation.SetAdBlock(v)
	return _u
}

// SetNillableAdBlock sets the "ad_block" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableAdBlock(v *bool) *FingerprintUpdate {
	if v != nil {
		_u.SetAdBlock(*v)
	}
	return _u
}

// SetIsBot sets the "is_bot" field.
func (_u *FingerprintUpdate) SetIsBot(v bool) *FingerprintUpdate {
	_u.mutation.SetIsBot(v)
	return _u
}

// SetNillableIsBot sets the "is_bot" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableIsBot(v *bool) *FingerprintUpdate {
	if v != nil {
		_u.SetIsBot(*v)
	}
	return _u
}

// SetBotScore sets the "bot_score" field.
func (_u *FingerprintUpdate) SetBotScore(v float64) *FingerprintUpdate {
	_u.mutation.ResetBotScore()
	_u.mutation.SetBotScore(v)
	return _u
}

// SetNillableBotScore sets the "bot_score" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableBotScore(v *float64) *FingerprintUpdate {
	if v != nil {
		_u.SetBotScore(*v)
	}
	return _u
}

// AddBotScore adds value to the "bot_score" field.
func (_u *FingerprintUpdate) AddBotScore(v float64) *FingerprintUpdate {
	_u.mutation.AddBotScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FingerprintUpdate) SetConfidence(v float64) *FingerprintUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableConfidence(v *float64) *FingerprintUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FingerprintUpdate) AddConfidence(v float64) *FingerprintUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSignalCount sets the "signal_count" field.
func (_u *FingerprintUpdate) SetSignalCount(v int) *FingerprintUpdate {
	_u.mutation.ResetSignalCount()
	_u.mutation.SetSignalCount(v)
	return _u
}

// SetNillableSignalCount sets the "signal_count" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableSignalCount(v *int) *FingerprintUpdate {
	if v != nil {
		_u.SetSignalCount(*v)
	}
	return _u
}

// AddSignalCount adds value to the "signal_count" field.
func (_u *FingerprintUpdate) AddSignalCount(v int) *FingerprintUpdate {
	_u.mutation.AddSignalCount(v)
	return _u
}

// SetVisitCount sets the "visit_count" field.
func (_u *FingerprintUpdate) SetVisitCount(v int) *FingerprintUpdate {
	_u.mutation.ResetVisitCount()
	_u.mutation.SetVisitCount(v)
	return _u
}

// SetNillableVisitCount sets the "visit_count" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableVisitCount(v *int) *FingerprintUpdate {
	if v != nil {
		_u.SetVisitCount(*v)
	}
	return _u
}

// AddVisitCount adds value to the "visit_count" field.
func (_u *FingerprintUpdate) AddVisitCount(v int) *FingerprintUpdate {
	_u.mutation.AddVisitCount(v)
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *FingerprintUpdate) SetIPAddress(v string) *FingerprintUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableIPAddress(v *string) *FingerprintUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *FingerprintUpdate) ClearIPAddress() *FingerprintUpdate {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *FingerprintUpdate) SetLastSeenAt(v time.Time) *FingerprintUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *FingerprintUpdate) SetNillableLastSeenAt(v *time.Time) *FingerprintUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *FingerprintUpdate) SetMerchant(v *Merchant) *FingerprintUpdate {
	return _u.SetMerchantID(v.ID)
}

// AddIdentityLinkIDs adds the "identity_links" edge to the IdentityLink entity by IDs.
func (_u *FingerprintUpdate) AddIdentityLinkIDs(ids ...uuid.UUID) *FingerprintUpdate {
	_u.mutation.AddIdentityLinkIDs(ids...)
	return _u
}

// AddIdentityLinks adds the "identity_links" edges to the IdentityLink entity.
func (_u *FingerprintUpdate) AddIdentityLinks(v ...*IdentityLink) *FingerprintUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIdentityLinkIDs(ids...)
}

// Mutation returns the FingerprintMutation object of the builder.
func (_u *FingerprintUpdate) Mutation() *FingerprintMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *FingerprintUpdate) ClearMerchant() *FingerprintUpdate {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearIdentityLinks clears all "identity_links" edges to the IdentityLink entity.
func (_u *FingerprintUpdate) ClearIdentityLinks() *FingerprintUpdate {
	_u.mutation.ClearIdentityLinks()
	return _u
}

// RemoveIdentityLinkIDs removes the "identity_links" edge to IdentityLink entities by IDs.
func (_u *FingerprintUpdate) RemoveIdentityLinkIDs(ids ...uuid.UUID) *FingerprintUpdate {
	_u.mutation.RemoveIdentityLinkIDs(ids...)
	return _u
}

// RemoveIdentityLinks removes "identity_links" edges to IdentityLink entities.
func (_u *FingerprintUpdate) RemoveIdentityLinks(v ...*IdentityLink) *FingerprintUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIdentityLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FingerprintUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FingerprintUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FingerprintUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FingerprintUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FingerprintUpdate) check() error {
	if v, ok := _u.mutation.FpHash(); ok {
		if err := fingerprint.FpHashValidator(v); err != nil {
			return &ValidationError{Name: "fp_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.fp_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CanvasHash(); ok {
		if err := fingerprint.CanvasHashValidator(v); err != nil {
			return &ValidationError{Name: "canvas_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.canvas_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WebglHash(); ok {
		if err := fingerprint.WebglHashValidator(v); err != nil {
			return &ValidationError{Name: "webgl_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.webgl_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AudioHash(); ok {
		if err := fingerprint.AudioHashValidator(v); err != nil {
			return &ValidationError{Name: "audio_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.audio_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAgent(); ok {
		if err := fingerprint.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.user_agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := fingerprint.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := fingerprint.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := fingerprint.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GpuVendor(); ok {
		if err := fingerprint.GpuVendorValidator(v); err != nil {
			return &ValidationError{Name: "gpu_vendor", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.gpu_vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GpuRenderer(); ok {
		if err := fingerprint.GpuRendererValidator(v); err != nil {
			return &ValidationError{Name: "gpu_renderer", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.gpu_renderer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConnectionType(); ok {
		if err := fingerprint.ConnectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "connection_type", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.connection_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitCount(); ok {
		if err := fingerprint.VisitCountValidator(v); err != nil {
			return &ValidationError{Name: "visit_count", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.visit_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := fingerprint.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.ip_address": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Fingerprint.merchant"`)
	}
	return nil
}

func (_u *FingerprintUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fingerprint.Table, fingerprint.Columns, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FpHash(); ok {
		_spec.SetField(fingerprint.FieldFpHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanvasHash(); ok {
		_spec.SetField(fingerprint.FieldCanvasHash, field.TypeString, value)
	}
	if _u.mutation.CanvasHashCleared() {
		_spec.ClearField(fingerprint.FieldCanvasHash, field.TypeString)
	}
	if value, ok := _u.mutation.WebglHash(); ok {
		_spec.SetField(fingerprint.FieldWebglHash, field.TypeString, value)
	}
	if _u.mutation.WebglHashCleared() {
		_spec.ClearField(fingerprint.FieldWebglHash, field.TypeString)
	}
	if value, ok := _u.mutation.AudioHash(); ok {
		_spec.SetField(fingerprint.FieldAudioHash, field.TypeString, value)
	}
	if _u.mutation.AudioHashCleared() {
		_spec.ClearField(fingerprint.FieldAudioHash, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(fingerprint.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(fingerprint.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(fingerprint.FieldPlatform, field.TypeString, value)
	}
	if _u.mutation.PlatformCleared() {
		_spec.ClearField(fingerprint.FieldPlatform, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(fingerprint.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(fingerprint.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(fingerprint.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(fingerprint.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.ScreenWidth(); ok {
		_spec.SetField(fingerprint.FieldScreenWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScreenWidth(); ok {
		_spec.AddField(fingerprint.FieldScreenWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScreenHeight(); ok {
		_spec.SetField(fingerprint.FieldScreenHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScreenHeight(); ok {
		_spec.AddField(fingerprint.FieldScreenHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PixelRatio(); ok {
		_spec.SetField(fingerprint.FieldPixelRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPixelRatio(); ok {
		_spec.AddField(fingerprint.FieldPixelRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TouchSupport(); ok {
		_spec.SetField(fingerprint.FieldTouchSupport, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HardwareConcurrency(); ok {
		_spec.SetField(fingerprint.FieldHardwareConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHardwareConcurrency(); ok {
		_spec.AddField(fingerprint.FieldHardwareConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeviceMemory(); ok {
		_spec.SetField(fingerprint.FieldDeviceMemory, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeviceMemory(); ok {
		_spec.AddField(fingerprint.FieldDeviceMemory, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GpuVendor(); ok {
		_spec.SetField(fingerprint.FieldGpuVendor, field.TypeString, value)
	}
	if _u.mutation.GpuVendorCleared() {
		_spec.ClearField(fingerprint.FieldGpuVendor, field.TypeString)
	}
	if value, ok := _u.mutation.GpuRenderer(); ok {
		_spec.SetField(fingerprint.FieldGpuRenderer, field.TypeString, value)
	}
	if _u.mutation.GpuRendererCleared() {
		_spec.ClearField(fingerprint.FieldGpuRenderer, field.TypeString)
	}
	if value, ok := _u.mutation.ConnectionType(); ok {
		_spec.SetField(fingerprint.FieldConnectionType, field.TypeString, value)
	}
	if _u.mutation.ConnectionTypeCleared() {
		_spec.ClearField(fingerprint.FieldConnectionType, field.TypeString)
	}
	if value, ok := _u.mutation.CookiesEnabled(); ok {
		_spec.SetField(fingerprint.FieldCookiesEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DoNotTrack(); ok {
		_spec.SetField(fingerprint.FieldDoNotTrack, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AdBlock(); ok {
		_spec.SetField(fingerprint.FieldAdBlock, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBot(); ok {
		_spec.SetField(fingerprint.FieldIsBot, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BotScore(); ok {
		_spec.SetField(fingerprint.FieldBotScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBotScore(); ok {
		_spec.AddField(fingerprint.FieldBotScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(fingerprint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(fingerprint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SignalCount(); ok {
		_spec.SetField(fingerprint.FieldSignalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSignalCount(); ok {
		_spec.AddField(fingerprint.FieldSignalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VisitCount(); ok {
		_spec.SetField(fingerprint.FieldVisitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisitCount(); ok {
		_spec.AddField(fingerprint.FieldVisitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(fingerprint.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(fingerprint.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(fingerprint.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IdentityLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIdentityLinksIDs(); len(nodes) > 0 && !_u.mutation.IdentityLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentityLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FingerprintUpdateOne is the builder for updating a single Fingerprint entity.
type FingerprintUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FingerprintMutation
}

// SetMerchantID sets the "merchant_id" field.
func (_u *FingerprintUpdateOne) SetMerchantID(v uuid.UUID) *FingerprintUpdateOne {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableMerchantID(v *uuid.UUID) *FingerprintUpdateOne {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetFpHash sets the "fp_hash" field.
func (_u *FingerprintUpdateOne) SetFpHash(v string) *FingerprintUpdateOne {
	_u.mutation.SetFpHash(v)
	return _u
}

// SetNillableFpHash sets the "fp_hash" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableFpHash(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetFpHash(*v)
	}
	return _u
}

// SetCanvasHash sets the "canvas_hash" field.
func (_u *FingerprintUpdateOne) SetCanvasHash(v string) *FingerprintUpdateOne {
	_u.mutation.SetCanvasHash(v)
	return _u
}

// SetNillableCanvasHash sets the "canvas_hash" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableCanvasHash(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetCanvasHash(*v)
	}
	return _u
}

// ClearCanvasHash clears the value of the "canvas_hash" field.
func (_u *FingerprintUpdateOne) ClearCanvasHash() *FingerprintUpdateOne {
	_u.mutation.ClearCanvasHash()
	return _u
}

// SetWebglHash sets the "webgl_hash" field.
func (_u *FingerprintUpdateOne) SetWebglHash(v string) *FingerprintUpdateOne {
	_u.mutation.SetWebglHash(v)
	return _u
}

// SetNillableWebglHash sets the "webgl_hash" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableWebglHash(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetWebglHash(*v)
	}
	return _u
}

// ClearWebglHash clears the value of the "webgl_hash" field.
func (_u *FingerprintUpdateOne) ClearWebglHash() *FingerprintUpdateOne {
	_u.mutation.ClearWebglHash()
	return _u
}

// SetAudioHash sets the "audio_hash" field.
func (_u *FingerprintUpdateOne) SetAudioHash(v string) *FingerprintUpdateOne {
	_u.mutation.SetAudioHash(v)
	return _u
}

// SetNillableAudioHash sets the "audio_hash" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableAudioHash(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetAudioHash(*v)
	}
	return _u
}

// ClearAudioHash clears the value of the "audio_hash" field.
func (_u *FingerprintUpdateOne) ClearAudioHash() *FingerprintUpdateOne {
	_u.mutation.ClearAudioHash()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *FingerprintUpdateOne) SetUserAgent(v string) *FingerprintUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableUserAgent(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *FingerprintUpdateOne) ClearUserAgent() *FingerprintUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *FingerprintUpdateOne) SetPlatform(v string) *FingerprintUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillablePlatform(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// ClearPlatform clears the value of the "platform" field.
func (_u *FingerprintUpdateOne) ClearPlatform() *FingerprintUpdateOne {
	_u.mutation.ClearPlatform()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *FingerprintUpdateOne) SetLanguage(v string) *FingerprintUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableLanguage(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *FingerprintUpdateOne) ClearLanguage() *FingerprintUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *FingerprintUpdateOne) SetTimezone(v string) *FingerprintUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableTimezone(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *FingerprintUpdateOne) ClearTimezone() *FingerprintUpdateOne {
	_u.mutation.ClearTimezone()
	return _u
}

// SetScreenWidth sets the "screen_width" field.
func (_u *FingerprintUpdateOne) SetScreenWidth(v int) *FingerprintUpdateOne {
	_u.mutation.ResetScreenWidth()
	_u.mutation.SetScreenWidth(v)
	return _u
}

// SetNillableScreenWidth sets the "screen_width" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableScreenWidth(v *int) *FingerprintUpdateOne {
	if v != nil {
		_u.SetScreenWidth(*v)
	}
	return _u
}

// AddScreenWidth adds value to the "screen_width" field.
func (_u *FingerprintUpdateOne) AddScreenWidth(v int) *FingerprintUpdateOne {
	_u.mutation.AddScreenWidth(v)
	return _u
}

// SetScreenHeight sets the "screen_height" field.
func (_u *FingerprintUpdateOne) SetScreenHeight(v int) *FingerprintUpdateOne {
	_u.mutation.ResetScreenHeight()
	_u.mutation.SetScreenHeight(v)
	return _u
}

// SetNillableScreenHeight sets the "screen_height" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableScreenHeight(v *int) *FingerprintUpdateOne {
	if v != nil {
		_u.SetScreenHeight(*v)
	}
	return _u
}

// AddScreenHeight adds value to the "screen_height" field.
func (_u *FingerprintUpdateOne) AddScreenHeight(v int) *FingerprintUpdateOne {
	_u.mutation.AddScreenHeight(v)
	return _u
}

// SetPixelRatio sets the "pixel_ratio" field.
func (_u *FingerprintUpdateOne) SetPixelRatio(v float64) *FingerprintUpdateOne {
	_u.mutation.ResetPixelRatio()
	_u.mutation.SetPixelRatio(v)
	return _u
}

// SetNillablePixelRatio sets the "pixel_ratio" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillablePixelRatio(v *float64) *FingerprintUpdateOne {
	if v != nil {
		_u.SetPixelRatio(*v)
	}
	return _u
}

// AddPixelRatio adds value to the "pixel_ratio" field.
func (_u *FingerprintUpdateOne) AddPixelRatio(v float64) *FingerprintUpdateOne {
	_u.mutation.AddPixelRatio(v)
	return _u
}

// SetTouchSupport sets the "touch_support" field.
func (_u *FingerprintUpdateOne) SetTouchSupport(v bool) *FingerprintUpdateOne {
	_u.mutation.SetTouchSupport(v)
	return _u
}

// SetNillableTouchSupport sets the "touch_support" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableTouchSupport(v *bool) *FingerprintUpdateOne {
	if v != nil {
		_u.SetTouchSupport(*v)
	}
	return _u
}

// SetHardwareConcurrency sets the "hardware_concurrency" field.
func (_u *FingerprintUpdateOne) SetHardwareConcurrency(v int) *FingerprintUpdateOne {
	_u.mutation.ResetHardwareConcurrency()
	_u.mutation.SetHardwareConcurrency(v)
	return _u
}

// SetNillableHardwareConcurrency sets the "hardware_concurrency" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableHardwareConcurrency(v *int) *FingerprintUpdateOne {
	if v != nil {
		_u.SetHardwareConcurrency(*v)
	}
	return _u
}

// AddHardwareConcurrency adds value to the "hardware_concurrency" field.
func (_u *FingerprintUpdateOne) AddHardwareConcurrency(v int) *FingerprintUpdateOne {
	_u.mutation.AddHardwareConcurrency(v)
	return _u
}

// SetDeviceMemory sets the "device_memory" field.
func (_u *FingerprintUpdateOne) SetDeviceMemory(v float64) *FingerprintUpdateOne {
	_u.mutation.ResetDeviceMemory()
	_u.mutation.SetDeviceMemory(v)
	return _u
}

// SetNillableDeviceMemory sets the "device_memory" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableDeviceMemory(v *float64) *FingerprintUpdateOne {
	if v != nil {
		_u.SetDeviceMemory(*v)
	}
	return _u
}

// AddDeviceMemory adds value to the "device_memory" field.
func (_u *FingerprintUpdateOne) AddDeviceMemory(v float64) *FingerprintUpdateOne {
	_u.mutation.AddDeviceMemory(v)
	return _u
}

// SetGpuVendor sets the "gpu_vendor" field.
func (_u *FingerprintUpdateOne) SetGpuVendor(v string) *FingerprintUpdateOne {
	_u.mutation.SetGpuVendor(v)
	return _u
}

// SetNillableGpuVendor sets the "gpu_vendor" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableGpuVendor(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetGpuVendor(*v)
	}
	return _u
}

// ClearGpuVendor clears the value of the "gpu_vendor" field.
func (_u *FingerprintUpdateOne) ClearGpuVendor() *FingerprintUpdateOne {
	_u.mutation.ClearGpuVendor()
	return _u
}

// SetGpuRenderer sets the "gpu_renderer" field.
func (_u *FingerprintUpdateOne) SetGpuRenderer(v string) *FingerprintUpdateOne {
	_u.mutation.SetGpuRenderer(v)
	return _u
}

// SetNillableGpuRenderer sets the "gpu_renderer" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableGpuRenderer(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetGpuRenderer(*v)
	}
	return _u
}

// ClearGpuRenderer clears the value of the "gpu_renderer" field.
func (_u *FingerprintUpdateOne) ClearGpuRenderer() *FingerprintUpdateOne {
	_u.mutation.ClearGpuRenderer()
	return _u
}

// SetConnectionType sets the "connection_type" field.
func (_u *FingerprintUpdateOne) SetConnectionType(v string) *FingerprintUpdateOne {
	_u.mutation.SetConnectionType(v)
	return _u
}

// SetNillableConnectionType sets the "connection_type" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableConnectionType(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetConnectionType(*v)
	}
	return _u
}

// ClearConnectionType clears the value of the "connection_type" field.
func (_u *FingerprintUpdateOne) ClearConnectionType() *FingerprintUpdateOne {
	_u.mutation.ClearConnectionType()
	return _u
}

// SetCookiesEnabled sets the "cookies_enabled" field.
func (_u *FingerprintUpdateOne) SetCookiesEnabled(v bool) *FingerprintUpdateOne {
	_u.mutation.SetCookiesEnabled(v)
	return _u
}

// SetNillableCookiesEnabled sets the "cookies_enabled" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableCookiesEnabled(v *bool) *FingerprintUpdateOne {
	if v != nil {
		_u.SetCookiesEnabled(*v)
	}
	return _u
}

// SetDoNotTrack sets the "do_not_track" field.
func (_u *FingerprintUpdateOne) SetDoNotTrack(v bool) *FingerprintUpdateOne {
	_u.mutation.SetDoNotTrack(v)
	return _u
}

// SetNillableDoNotTrack sets the "do_not_track" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableDoNotTrack(v *bool) *FingerprintUpdateOne {
	if v != nil {
		_u.SetDoNotTrack(*v)
	}
	return _u
}

// SetAdBlock sets the "ad_block" field.
func (_u *FingerprintUpdateOne) SetAdBlock(v bool) *FingerprintUpdateOne {
	_u.mutation.SetAdBlock(v)
	return _u
}

// SetNillableAdBlock sets the "ad_block" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableAdBlock(v *bool) *FingerprintUpdateOne {
	if v != nil {
		_u.SetAdBlock(*v)
	}
	return _u
}

// SetIsBot sets the "is_bot" field.
func (_u *FingerprintUpdateOne) SetIsBot(v bool) *FingerprintUpdateOne {
	_u.mutation.SetIsBot(v)
	return _u
}

// SetNillableIsBot sets the "is_bot" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableIsBot(v *bool) *FingerprintUpdateOne {
	if v != nil {
		_u.SetIsBot(*v)
	}
	return _u
}

// SetBotScore sets the "bot_score" field.
func (_u *FingerprintUpdateOne) SetBotScore(v float64) *FingerprintUpdateOne {
	_u.mutation.ResetBotScore()
	_u.mutation.SetBotScore(v)
	return _u
}

// SetNillableBotScore sets the "bot_score" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableBotScore(v *float64) *FingerprintUpdateOne {
	if v != nil {
		_u.SetBotScore(*v)
	}
	return _u
}

// AddBotScore adds value to the "bot_score" field.
func (_u *FingerprintUpdateOne) AddBotScore(v float64) *FingerprintUpdateOne {
	_u.mutation.AddBotScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FingerprintUpdateOne) SetConfidence(v float64) *FingerprintUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableConfidence(v *float64) *FingerprintUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FingerprintUpdateOne) AddConfidence(v float64) *FingerprintUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSignalCount sets the "signal_count" field.
func (_u *FingerprintUpdateOne) SetSignalCount(v int) *FingerprintUpdateOne {
	_u.mutation.ResetSignalCount()
	_u.mutation.SetSignalCount(v)
	return _u
}

// SetNillableSignalCount sets the "signal_count" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableSignalCount(v *int) *FingerprintUpdateOne {
	if v != nil {
		_u.SetSignalCount(*v)
	}
	return _u
}

// AddSignalCount adds value to the "signal_count" field.
func (_u *FingerprintUpdateOne) AddSignalCount(v int) *FingerprintUpdateOne {
	_u.mutation.AddSignalCount(v)
	return _u
}

// SetVisitCount sets the "visit_count" field.
func (_u *FingerprintUpdateOne) SetVisitCount(v int) *FingerprintUpdateOne {
	_u.mutation.ResetVisitCount()
	_u.mutation.SetVisitCount(v)
	return _u
}

// SetNillableVisitCount sets the "visit_count" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableVisitCount(v *int) *FingerprintUpdateOne {
	if v != nil {
		_u.SetVisitCount(*v)
	}
	return _u
}

// AddVisitCount adds value to the "visit_count" field.
func (_u *FingerprintUpdateOne) AddVisitCount(v int) *FingerprintUpdateOne {
	_u.mutation.AddVisitCount(v)
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *FingerprintUpdateOne) SetIPAddress(v string) *FingerprintUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableIPAddress(v *string) *FingerprintUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *FingerprintUpdateOne) ClearIPAddress() *FingerprintUpdateOne {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *FingerprintUpdateOne) SetLastSeenAt(v time.Time) *FingerprintUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *FingerprintUpdateOne) SetNillableLastSeenAt(v *time.Time) *FingerprintUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" edge to the Merchant entity.
func (_u *FingerprintUpdateOne) SetMerchant(v *Merchant) *FingerprintUpdateOne {
	return _u.SetMerchantID(v.ID)
}

// AddIdentityLinkIDs adds the "identity_links" edge to the IdentityLink entity by IDs.
func (_u *FingerprintUpdateOne) AddIdentityLinkIDs(ids ...uuid.UUID) *FingerprintUpdateOne {
	_u.mutation.AddIdentityLinkIDs(ids...)
	return _u
}

// AddIdentityLinks adds the "identity_links" edges to the IdentityLink entity.
func (_u *FingerprintUpdateOne) AddIdentityLinks(v ...*IdentityLink) *FingerprintUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIdentityLinkIDs(ids...)
}

// Mutation returns the FingerprintMutation object of the builder.
func (_u *FingerprintUpdateOne) Mutation() *FingerprintMutation {
	return _u.mutation
}

// ClearMerchant clears the "merchant" edge to the Merchant entity.
func (_u *FingerprintUpdateOne) ClearMerchant() *FingerprintUpdateOne {
	_u.mutation.ClearMerchant()
	return _u
}

// ClearIdentityLinks clears all "identity_links" edges to the IdentityLink entity.
func (_u *FingerprintUpdateOne) ClearIdentityLinks() *FingerprintUpdateOne {
	_u.mutation.ClearIdentityLinks()
	return _u
}

// RemoveIdentityLinkIDs removes the "identity_links" edge to IdentityLink entities by IDs.
func (_u *FingerprintUpdateOne) RemoveIdentityLinkIDs(ids ...uuid.UUID) *FingerprintUpdateOne {
	_u.mutation.RemoveIdentityLinkIDs(ids...)
	return _u
}

// RemoveIdentityLinks removes "identity_links" edges to IdentityLink entities.
func (_u *FingerprintUpdateOne) RemoveIdentityLinks(v ...*IdentityLink) *FingerprintUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIdentityLinkIDs(ids...)
}

// Where appends a list predicates to the FingerprintUpdate builder.
func (_u *FingerprintUpdateOne) Where(ps ...predicate.Fingerprint) *FingerprintUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FingerprintUpdateOne) Select(field string, fields ...string) *FingerprintUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Fingerprint entity.
func (_u *FingerprintUpdateOne) Save(ctx context.Context) (*Fingerprint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FingerprintUpdateOne) SaveX(ctx context.Context) *Fingerprint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FingerprintUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FingerprintUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FingerprintUpdateOne) check() error {
	if v, ok := _u.mutation.FpHash(); ok {
		if err := fingerprint.FpHashValidator(v); err != nil {
			return &ValidationError{Name: "fp_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.fp_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CanvasHash(); ok {
		if err := fingerprint.CanvasHashValidator(v); err != nil {
			return &ValidationError{Name: "canvas_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.canvas_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WebglHash(); ok {
		if err := fingerprint.WebglHashValidator(v); err != nil {
			return &ValidationError{Name: "webgl_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.webgl_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AudioHash(); ok {
		if err := fingerprint.AudioHashValidator(v); err != nil {
			return &ValidationError{Name: "audio_hash", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.audio_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAgent(); ok {
		if err := fingerprint.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.user_agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := fingerprint.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := fingerprint.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := fingerprint.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GpuVendor(); ok {
		if err := fingerprint.GpuVendorValidator(v); err != nil {
			return &ValidationError{Name: "gpu_vendor", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.gpu_vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GpuRenderer(); ok {
		if err := fingerprint.GpuRendererValidator(v); err != nil {
			return &ValidationError{Name: "gpu_renderer", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.gpu_renderer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConnectionType(); ok {
		if err := fingerprint.ConnectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "connection_type", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.connection_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitCount(); ok {
		if err := fingerprint.VisitCountValidator(v); err != nil {
			return &ValidationError{Name: "visit_count", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.visit_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := fingerprint.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`ent: validator failed for field "Fingerprint.ip_address": %w`, err)}
		}
	}
	if _u.mutation.MerchantCleared() && len(_u.mutation.MerchantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Fingerprint.merchant"`)
	}
	return nil
}

func (_u *FingerprintUpdateOne) sqlSave(ctx context.Context) (_node *Fingerprint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fingerprint.Table, fingerprint.Columns, sqlgraph.NewFieldSpec(fingerprint.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Fingerprint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fingerprint.FieldID)
		for _, f := range fields {
			if !fingerprint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fingerprint.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FpHash(); ok {
		_spec.SetField(fingerprint.FieldFpHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanvasHash(); ok {
		_spec.SetField(fingerprint.FieldCanvasHash, field.TypeString, value)
	}
	if _u.mutation.CanvasHashCleared() {
		_spec.ClearField(fingerprint.FieldCanvasHash, field.TypeString)
	}
	if value, ok := _u.mutation.WebglHash(); ok {
		_spec.SetField(fingerprint.FieldWebglHash, field.TypeString, value)
	}
	if _u.mutation.WebglHashCleared() {
		_spec.ClearField(fingerprint.FieldWebglHash, field.TypeString)
	}
	if value, ok := _u.mutation.AudioHash(); ok {
		_spec.SetField(fingerprint.FieldAudioHash, field.TypeString, value)
	}
	if _u.mutation.AudioHashCleared() {
		_spec.ClearField(fingerprint.FieldAudioHash, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(fingerprint.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(fingerprint.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(fingerprint.FieldPlatform, field.TypeString, value)
	}
	if _u.mutation.PlatformCleared() {
		_spec.ClearField(fingerprint.FieldPlatform, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(fingerprint.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(fingerprint.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(fingerprint.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(fingerprint.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.ScreenWidth(); ok {
		_spec.SetField(fingerprint.FieldScreenWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScreenWidth(); ok {
		_spec.AddField(fingerprint.FieldScreenWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScreenHeight(); ok {
		_spec.SetField(fingerprint.FieldScreenHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScreenHeight(); ok {
		_spec.AddField(fingerprint.FieldScreenHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PixelRatio(); ok {
		_spec.SetField(fingerprint.FieldPixelRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPixelRatio(); ok {
		_spec.AddField(fingerprint.FieldPixelRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TouchSupport(); ok {
		_spec.SetField(fingerprint.FieldTouchSupport, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HardwareConcurrency(); ok {
		_spec.SetField(fingerprint.FieldHardwareConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHardwareConcurrency(); ok {
		_spec.AddField(fingerprint.FieldHardwareConcurrency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeviceMemory(); ok {
		_spec.SetField(fingerprint.FieldDeviceMemory, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeviceMemory(); ok {
		_spec.AddField(fingerprint.FieldDeviceMemory, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GpuVendor(); ok {
		_spec.SetField(fingerprint.FieldGpuVendor, field.TypeString, value)
	}
	if _u.mutation.GpuVendorCleared() {
		_spec.ClearField(fingerprint.FieldGpuVendor, field.TypeString)
	}
	if value, ok := _u.mutation.GpuRenderer(); ok {
		_spec.SetField(fingerprint.FieldGpuRenderer, field.TypeString, value)
	}
	if _u.mutation.GpuRendererCleared() {
		_spec.ClearField(fingerprint.FieldGpuRenderer, field.TypeString)
	}
	if value, ok := _u.mutation.ConnectionType(); ok {
		_spec.SetField(fingerprint.FieldConnectionType, field.TypeString, value)
	}
	if _u.mutation.ConnectionTypeCleared() {
		_spec.ClearField(fingerprint.FieldConnectionType, field.TypeString)
	}
	if value, ok := _u.mutation.CookiesEnabled(); ok {
		_spec.SetField(fingerprint.FieldCookiesEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DoNotTrack(); ok {
		_spec.SetField(fingerprint.FieldDoNotTrack, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AdBlock(); ok {
		_spec.SetField(fingerprint.FieldAdBlock, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBot(); ok {
		_spec.SetField(fingerprint.FieldIsBot, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BotScore(); ok {
		_spec.SetField(fingerprint.FieldBotScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBotScore(); ok {
		_spec.AddField(fingerprint.FieldBotScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(fingerprint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(fingerprint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SignalCount(); ok {
		_spec.SetField(fingerprint.FieldSignalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSignalCount(); ok {
		_spec.AddField(fingerprint.FieldSignalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VisitCount(); ok {
		_spec.SetField(fingerprint.FieldVisitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisitCount(); ok {
		_spec.AddField(fingerprint.FieldVisitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(fingerprint.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(fingerprint.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(fingerprint.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.MerchantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IdentityLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIdentityLinksIDs(); len(nodes) > 0 && !_u.mutation.IdentityLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IdentityLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Fingerprint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fingerprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
