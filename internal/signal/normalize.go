// Package signal shapes raw collection payloads into canonical records.
// Normalization is pure: no I/O, no store access.
package signal

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidPayload is returned when the shop identifier or the fingerprint
// hash is absent or malformed.
var ErrInvalidPayload = errors.New("invalid payload")

// RawPayload is the body the storefront snippet posts to /collect.
// swagger:model RawPayload
type RawPayload struct {
	Shop            string `json:"shop" example:"acme.myshopify.com"`
	FingerprintHash string `json:"fingerprintHash" example:"ab12cd34"`

	CanvasHash string `json:"canvasHash,omitempty"`
	WebglHash  string `json:"webglHash,omitempty"`
	AudioHash  string `json:"audioHash,omitempty"`

	UserAgent           string  `json:"userAgent,omitempty"`
	Platform            string  `json:"platform,omitempty"`
	Language            string  `json:"language,omitempty"`
	Timezone            string  `json:"timezone,omitempty"`
	ScreenWidth         int     `json:"screenWidth,omitempty"`
	ScreenHeight        int     `json:"screenHeight,omitempty"`
	PixelRatio          float64 `json:"pixelRatio,omitempty"`
	TouchSupport        bool    `json:"touchSupport,omitempty"`
	HardwareConcurrency int     `json:"hardwareConcurrency,omitempty"`
	DeviceMemory        float64 `json:"deviceMemory,omitempty"`
	GPUVendor           string  `json:"gpuVendor,omitempty"`
	GPURenderer         string  `json:"gpuRenderer,omitempty"`
	ConnectionType      string  `json:"connectionType,omitempty"`

	CookiesEnabled bool `json:"cookiesEnabled,omitempty"`
	DoNotTrack     bool `json:"doNotTrack,omitempty"`
	AdBlock        bool `json:"adBlock,omitempty"`
	SignalCount    int  `json:"signalCount,omitempty"`

	// identity hints
	AuthToken          string `json:"authToken,omitempty"`
	Email              string `json:"email,omitempty"`
	PlatformCustomerID string `json:"platformCustomerId,omitempty"`
	SessionID          string `json:"sessionId,omitempty"`
}

// Signals is the canonical normalized record consumed by the classifier,
// the fingerprint store adapter and the identity resolver.
type Signals struct {
	Shop            string
	FingerprintHash string

	CanvasHash string
	WebglHash  string
	AudioHash  string

	UserAgent           string
	Platform            string
	Language            string
	Timezone            string
	ScreenWidth         int
	ScreenHeight        int
	PixelRatio          float64
	TouchSupport        bool
	HardwareConcurrency int
	DeviceMemory        float64
	GPUVendor           string
	GPURenderer         string
	ConnectionType      string

	CookiesEnabled bool
	DoNotTrack     bool
	AdBlock        bool
	SignalCount    int

	AuthToken          string
	Email              string
	PlatformCustomerID string
	SessionID          string
}

// Normalize validates and canonicalizes a raw payload. The shop identifier
// and the fingerprint hash are the only required fields; everything else is
// best-effort trimmed and clamped.
func Normalize(raw RawPayload) (Signals, error) {
	shop := strings.ToLower(strings.TrimSpace(raw.Shop))
	hash := strings.TrimSpace(raw.FingerprintHash)
	if shop == "" || hash == "" {
		return Signals{}, ErrInvalidPayload
	}

	s := Signals{
		Shop:            shop,
		FingerprintHash: hash,

		CanvasHash: strings.TrimSpace(raw.CanvasHash),
		WebglHash:  strings.TrimSpace(raw.WebglHash),
		AudioHash:  strings.TrimSpace(raw.AudioHash),

		UserAgent:           strings.TrimSpace(raw.UserAgent),
		Platform:            strings.TrimSpace(raw.Platform),
		Language:            strings.TrimSpace(raw.Language),
		Timezone:            strings.TrimSpace(raw.Timezone),
		ScreenWidth:         clampNonNegative(raw.ScreenWidth),
		ScreenHeight:        clampNonNegative(raw.ScreenHeight),
		PixelRatio:          clampNonNegativeF(raw.PixelRatio),
		TouchSupport:        raw.TouchSupport,
		HardwareConcurrency: clampNonNegative(raw.HardwareConcurrency),
		DeviceMemory:        clampNonNegativeF(raw.DeviceMemory),
		GPUVendor:           strings.TrimSpace(raw.GPUVendor),
		GPURenderer:         strings.TrimSpace(raw.GPURenderer),
		ConnectionType:      strings.TrimSpace(raw.ConnectionType),

		CookiesEnabled: raw.CookiesEnabled,
		DoNotTrack:     raw.DoNotTrack,
		AdBlock:        raw.AdBlock,
		SignalCount:    clampNonNegative(raw.SignalCount),

		AuthToken:          strings.TrimSpace(raw.AuthToken),
		Email:              strings.ToLower(strings.TrimSpace(raw.Email)),
		PlatformCustomerID: strings.TrimSpace(raw.PlatformCustomerID),
		SessionID:          strings.TrimSpace(raw.SessionID),
	}
	return s, nil
}

// PlatformCustomerIDInt64 parses the platform customer id hint. An
// unparseable id is treated as absent, never as an error; a bad hint must
// not fail the whole request.
func (s Signals) PlatformCustomerIDInt64() (int64, bool) {
	if s.PlatformCustomerID == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s.PlatformCustomerID, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampNonNegativeF(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
