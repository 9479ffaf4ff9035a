package identity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"visitor-iq/ent"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/internal/botdetect"
	"visitor-iq/internal/signal"
)

// upsertFingerprint inserts or updates the per-merchant fingerprint row in
// a single atomic statement keyed by (merchant_id, fp_hash). Concurrent
// collection calls for the same hash therefore never produce duplicates
// and never lose a visit-count increment.
//
// On recurrence only the monotonic bookkeeping (visit count, last seen,
// last IP) always moves; descriptive signals are merged, never blanked:
// a lightweight page-view beacon carries far less detail than a full scan
// and must not erase what an earlier full scan captured. The classifier
// output is likewise frozen at first full collection for the same reason.
func (e *Engine) upsertFingerprint(ctx context.Context, merchantID uuid.UUID, sig signal.Signals, bot botdetect.Result, ip string) (*ent.Fingerprint, error) {
	now := time.Now().UTC()

	err := withRetry(ctx, func() error {
		create := e.client.Fingerprint.Create().
			SetMerchantID(merchantID).
			SetFpHash(sig.FingerprintHash).
			SetUserAgent(sig.UserAgent).
			SetPlatform(sig.Platform).
			SetLanguage(sig.Language).
			SetTimezone(sig.Timezone).
			SetScreenWidth(sig.ScreenWidth).
			SetScreenHeight(sig.ScreenHeight).
			SetPixelRatio(sig.PixelRatio).
			SetTouchSupport(sig.TouchSupport).
			SetHardwareConcurrency(sig.HardwareConcurrency).
			SetDeviceMemory(sig.DeviceMemory).
			SetGpuVendor(sig.GPUVendor).
			SetGpuRenderer(sig.GPURenderer).
			SetConnectionType(sig.ConnectionType).
			SetCookiesEnabled(sig.CookiesEnabled).
			SetDoNotTrack(sig.DoNotTrack).
			SetAdBlock(sig.AdBlock).
			SetIsBot(bot.IsBot).
			SetBotScore(bot.BotScore).
			SetConfidence(bot.Confidence).
			SetSignalCount(sig.SignalCount).
			SetVisitCount(1).
			SetFirstSeenAt(now).
			SetLastSeenAt(now)
		if sig.CanvasHash != "" {
			create = create.SetCanvasHash(sig.CanvasHash)
		}
		if sig.WebglHash != "" {
			create = create.SetWebglHash(sig.WebglHash)
		}
		if sig.AudioHash != "" {
			create = create.SetAudioHash(sig.AudioHash)
		}
		if ip != "" {
			create = create.SetIPAddress(ip)
		}
		return create.
			OnConflictColumns(fingerprint.FieldMerchantID, fingerprint.FieldFpHash).
			Update(func(u *ent.FingerprintUpsert) { mergeRecurrence(u, sig, ip, now) }).
			Exec(ctx)
	})
	if err != nil {
		return nil, err
	}

	return e.client.Fingerprint.Query().
		Where(fingerprint.MerchantID(merchantID), fingerprint.FpHash(sig.FingerprintHash)).
		Only(ctx)
}

// mergeRecurrence is the explicit merge policy for a returning fingerprint:
// a field is overwritten only when the new payload actually carries it.
func mergeRecurrence(u *ent.FingerprintUpsert, sig signal.Signals, ip string, now time.Time) {
	u.AddVisitCount(1)
	u.SetLastSeenAt(now)
	if ip != "" {
		u.SetIPAddress(ip)
	}
	if sig.GPUVendor != "" {
		u.SetGpuVendor(sig.GPUVendor)
	}
	if sig.GPURenderer != "" {
		u.SetGpuRenderer(sig.GPURenderer)
	}
	if sig.ConnectionType != "" {
		u.SetConnectionType(sig.ConnectionType)
	}
	if sig.SignalCount > 0 {
		u.SetSignalCount(sig.SignalCount)
	}
}
