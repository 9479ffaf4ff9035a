// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/merchant"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Fingerprint is the model entity for the Fingerprint schema.
type Fingerprint struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MerchantID holds the value of the "merchant_id" field.
	MerchantID uuid.UUID `json:"merchant_id,omitempty"`
	// FpHash holds the value of the "fp_hash" field.
	FpHash string `json:"fp_hash,omitempty"`
	// CanvasHash holds the value of the "canvas_hash" field.
	CanvasHash *string `json:"canvas_hash,omitempty"`
	// WebglHash holds the value of the "webgl_hash" field.
	WebglHash *string `json:"webgl_hash,omitempty"`
	// AudioHash holds the value of the "audio_hash" field.
	AudioHash *string `json:"audio_hash,omitempty"`
	// UserAgent holds the value of the "user_agent" field.
	UserAgent string `json:"user_agent,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// ScreenWidth holds the value of the "screen_width" field.
	ScreenWidth int `json:"screen_width,omitempty"`
	// ScreenHeight holds the value of the "screen_height" field.
	ScreenHeight int `json:"screen_height,omitempty"`
	// PixelRatio holds the value of the "pixel_ratio" field.
	PixelRatio float64 `json:"pixel_ratio,omitempty"`
	// TouchSupport holds the value of the "touch_support" field.
	TouchSupport bool `json:"touch_support,omitempty"`
	// HardwareConcurrency holds the value of the "hardware_concurrency" field.
	HardwareConcurrency int `json:"hardware_concurrency,omitempty"`
	// DeviceMemory holds the value of the "device_memory" field.
	DeviceMemory float64 `json:"device_memory,omitempty"`
	// GpuVendor holds the value of the "gpu_vendor" field.
	GpuVendor string `json:"gpu_vendor,omitempty"`
	// GpuRenderer holds the value of the "gpu_renderer" field.
	GpuRenderer string `json:"gpu_renderer,omitempty"`
	// ConnectionType holds the value of the "connection_type" field.
	ConnectionType string `json:"connection_type,omitempty"`
	// CookiesEnabled holds the value of the "cookies_enabled" field.
	CookiesEnabled bool `json:"cookies_enabled,omitempty"`
	// DoNotTrack holds the value of the "do_not_track" field.
	DoNotTrack bool `json:"do_not_track,omitempty"`
	// AdBlock holds the value of the "ad_block" field.
	AdBlock bool `json:"ad_block,omitempty"`
	// IsBot holds the value of the "is_bot" field.
	IsBot bool `json:"is_bot,omitempty"`
	// BotScore holds the value of the "bot_score" field.
	BotScore float64 `json:"bot_score,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// SignalCount holds the value of the "signal_count" field.
	SignalCount int `json:"signal_count,omitempty"`
	// VisitCount holds the value of the "visit_count" field.
	VisitCount int `json:"visit_count,omitempty"`
	// IPAddress holds the value of the "ip_address" field.
	IPAddress string `json:"ip_address,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FingerprintQuery when eager-loading is set.
	Edges        FingerprintEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FingerprintEdges holds the relations/edges for other nodes in the graph.
type FingerprintEdges struct {
	// Merchant holds the value of the merchant edge.
	Merchant *Merchant `json:"merchant,omitempty"`
	// IdentityLinks holds the value of the identity_links edge.
	IdentityLinks []*IdentityLink `json:"identity_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MerchantOrErr returns the Merchant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FingerprintEdges) MerchantOrErr() (*Merchant, error) {
	if e.Merchant != nil {
		return e.Merchant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: merchant.Label}
	}
	return nil, &NotLoadedError{edge: "merchant"}
}

// IdentityLinksOrErr returns the IdentityLinks value or an error if the edge
// was not loaded in eager-loading.
func (e FingerprintEdges) IdentityLinksOrErr() ([]*IdentityLink, error) {
	if e.loadedTypes[1] {
		return e.IdentityLinks, nil
	}
	return nil, &NotLoadedError{edge: "identity_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Fingerprint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fingerprint.FieldTouchSupport, fingerprint.FieldCookiesEnabled, fingerprint.FieldDoNotTrack, fingerprint.FieldAdBlock, fingerprint.FieldIsBot:
			values[i] = new(sql.NullBool)
		case fingerprint.FieldPixelRatio, fingerprint.FieldDeviceMemory, fingerprint.FieldBotScore, fingerprint.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case fingerprint.FieldScreenWidth, fingerprint.FieldScreenHeight, fingerprint.FieldHardwareConcurrency, fingerprint.FieldSignalCount, fingerprint.FieldVisitCount:
			values[i] = new(sql.NullInt64)
		case fingerprint.FieldFpHash, fingerprint.FieldCanvasHash, fingerprint.FieldWebglHash, fingerprint.FieldAudioHash, fingerprint.FieldUserAgent, fingerprint.FieldPlatform, fingerprint.FieldLanguage, fingerprint.FieldTimezone, fingerprint.FieldGpuVendor, fingerprint.FieldGpuRenderer, fingerprint.FieldConnectionType, fingerprint.FieldIPAddress:
			values[i] = new(sql.NullString)
		case fingerprint.FieldFirstSeenAt, fingerprint.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		case fingerprint.FieldID, fingerprint.FieldMerchantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Fingerprint fields.
func (_m *Fingerprint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fingerprint.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fingerprint.FieldMerchantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field merchant_id", values[i])
			} else if value != nil {
				_m.MerchantID = *value
			}
		case fingerprint.FieldFpHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fp_hash", values[i])
			} else if value.Valid {
				_m.FpHash = value.String
			}
		case fingerprint.FieldCanvasHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canvas_hash", values[i])
			} else if value.Valid {
				_m.CanvasHash = new(string)
				*_m.CanvasHash = value.String
			}
		case fingerprint.FieldWebglHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webgl_hash", values[i])
			} else if value.Valid {
				_m.WebglHash = new(string)
				*_m.WebglHash = value.String
			}
		case fingerprint.FieldAudioHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_hash", values[i])
			} else if value.Valid {
				_m.AudioHash = new(string)
				*_m.AudioHash = value.String
			}
		case fingerprint.FieldUserAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_agent", values[i])
			} else if value.Valid {
				_m.UserAgent = value.String
			}
		case fingerprint.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case fingerprint.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case fingerprint.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case fingerprint.FieldScreenWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field screen_width", values[i])
			} else if value.Valid {
				_m.ScreenWidth = int(value.Int64)
			}
		case fingerprint.FieldScreenHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field screen_height", values[i])
			} else if value.Valid {
				_m.ScreenHeight = int(value.Int64)
			}
		case fingerprint.FieldPixelRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pixel_ratio", values[i])
			} else if value.Valid {
				_m.PixelRatio = value.Float64
			}
		case fingerprint.FieldTouchSupport:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field touch_support", values[i])
			} else if value.Valid {
				_m.TouchSupport = value.Bool
			}
		case fingerprint.FieldHardwareConcurrency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hardware_concurrency", values[i])
			} else if value.Valid {
				_m.HardwareConcurrency = int(value.Int64)
			}
		case fingerprint.FieldDeviceMemory:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field device_memory", values[i])
			} else if value.Valid {
				_m.DeviceMemory = value.Float64
			}
		case fingerprint.FieldGpuVendor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gpu_vendor", values[i])
			} else if value.Valid {
				_m.GpuVendor = value.String
			}
		case fingerprint.FieldGpuRenderer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gpu_renderer", values[i])
			} else if value.Valid {
				_m.GpuRenderer = value.String
			}
		case fingerprint.FieldConnectionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connection_type", values[i])
			} else if value.Valid {
				_m.ConnectionType = value.String
			}
		case fingerprint.FieldCookiesEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cookies_enabled", values[i])
			} else if value.Valid {
				_m.CookiesEnabled = value.Bool
			}
		case fingerprint.FieldDoNotTrack:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field do_not_track", values[i])
			} else if value.Valid {
				_m.DoNotTrack = value.Bool
			}
		case fingerprint.FieldAdBlock:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ad_block", values[i])
			} else if value.Valid {
				_m.AdBlock = value.Bool
			}
		case fingerprint.FieldIsBot:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_bot", values[i])
			} else if value.Valid {
				_m.IsBot = value.Bool
			}
		case fingerprint.FieldBotScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bot_score", values[i])
			} else if value.Valid {
				_m.BotScore = value.Float64
			}
		case fingerprint.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case fingerprint.FieldSignalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field signal_count", values[i])
			} else if value.Valid {
				_m.SignalCount = int(value.Int64)
			}
		case fingerprint.FieldVisitCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field visit_count", values[i])
			} else if value.Valid {
				_m.VisitCount = int(value.Int64)
			}
		case fingerprint.FieldIPAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_address", values[i])
			} else if value.Valid {
				_m.IPAddress = value.String
			}
		case fingerprint.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case fingerprint.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Fingerprint.
// This includes values selected through modifiers, order, etc.
func (_m *Fingerprint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMerchant queries the "merchant" edge of the Fingerprint entity.
func (_m *Fingerprint) QueryMerchant() *MerchantQuery {
	return NewFingerprintClient(_m.config).QueryMerchant(_m)
}

// QueryIdentityLinks queries the "identity_links" edge of the Fingerprint entity.
func (_m *Fingerprint) QueryIdentityLinks() *IdentityLinkQuery {
	return NewFingerprintClient(_m.config).QueryIdentityLinks(_m)
}

// Update returns a builder for updating this Fingerprint.
// Note that you need to call Fingerprint.Unwrap() before calling this method if this Fingerprint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Fingerprint) Update() *FingerprintUpdateOne {
	return NewFingerprintClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Fingerprint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Fingerprint) Unwrap() *Fingerprint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Fingerprint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Fingerprint) String() string {
	var builder strings.Builder
	builder.WriteString("Fingerprint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("merchant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MerchantID))
	builder.WriteString(", ")
	builder.WriteString("fp_hash=")
	builder.WriteString(_m.FpHash)
	builder.WriteString(", ")
	if v := _m.CanvasHash; v != nil {
		builder.WriteString("canvas_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WebglHash; v != nil {
		builder.WriteString("webgl_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AudioHash; v != nil {
		builder.WriteString("audio_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("user_agent=")
	builder.WriteString(_m.UserAgent)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("screen_width=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScreenWidth))
	builder.WriteString(", ")
	builder.WriteString("screen_height=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScreenHeight))
	builder.WriteString(", ")
	builder.WriteString("pixel_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.PixelRatio))
	builder.WriteString(", ")
	builder.WriteString("touch_support=")
	builder.WriteString(fmt.Sprintf("%v", _m.TouchSupport))
	builder.WriteString(", ")
	builder.WriteString("hardware_concurrency=")
	builder.WriteString(fmt.Sprintf("%v", _m.HardwareConcurrency))
	builder.WriteString(", ")
	builder.WriteString("device_memory=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeviceMemory))
	builder.WriteString(", ")
	builder.WriteString("gpu_vendor=")
	builder.WriteString(_m.GpuVendor)
	builder.WriteString(", ")
	builder.WriteString("gpu_renderer=")
	builder.WriteString(_m.GpuRenderer)
	builder.WriteString(", ")
	builder.WriteString("connection_type=")
	builder.WriteString(_m.ConnectionType)
	builder.WriteString(", ")
	builder.WriteString("cookies_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.CookiesEnabled))
	builder.WriteString(", ")
	builder.WriteString("do_not_track=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoNotTrack))
	builder.WriteString(", ")
	builder.WriteString("ad_block=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdBlock))
	builder.WriteString(", ")
	builder.WriteString("is_bot=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBot))
	builder.WriteString(", ")
	builder.WriteString("bot_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.BotScore))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("signal_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalCount))
	builder.WriteString(", ")
	builder.WriteString("visit_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisitCount))
	builder.WriteString(", ")
	builder.WriteString("ip_address=")
	builder.WriteString(_m.IPAddress)
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Fingerprints is a parsable slice of Fingerprint.
type Fingerprints []*Fingerprint
