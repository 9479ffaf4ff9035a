// Package identity implements the visitor identity resolution and
// behavioral scoring engine: fingerprint upserts, the buyer matching
// cascade, behavior aggregation and the reporting reads.
package identity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/samber/lo"

	"github.com/google/uuid"

	"visitor-iq/ent"
	"visitor-iq/ent/merchant"
	"visitor-iq/internal/botdetect"
	"visitor-iq/internal/config"
	"visitor-iq/internal/esx"
	"visitor-iq/internal/logx"
	"visitor-iq/internal/mqx"
	"visitor-iq/internal/signal"
)

var engineLogger = logx.GetScope("identity")

// Engine wires the store, the optional search index and the optional event
// publisher behind the collection and behavior entry points. All mutation
// paths are idempotent upserts keyed by stable identifiers, so the engine
// itself holds no mutable state.
type Engine struct {
	client *ent.Client
	cfg    *config.Store

	// optional collaborators; nil disables the feature
	ES *esx.Client
	MQ mqx.Publisher
}

// NewEngine creates an engine over the given ent client. cfg may be nil;
// the default bot threshold is used then.
func NewEngine(client *ent.Client, cfg *config.Store) *Engine {
	return &Engine{client: client, cfg: cfg}
}

func (e *Engine) botThreshold() float64 {
	if e.cfg != nil {
		if t := e.cfg.Get().Bot.Threshold; t > 0 && t <= 1 {
			return t
		}
	}
	return botdetect.DefaultThreshold
}

// CollectResult is the exact wire shape the storefront snippet receives.
// Failure responses carry only success+error; pointers keep false-valued
// booleans out of the failure shape.
type CollectResult struct {
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
	FingerprintID string `json:"fingerprintId,omitempty"`
	IsReturning   *bool  `json:"isReturning,omitempty"`
	VisitCount    int    `json:"visitCount,omitempty"`
	IsBot         *bool  `json:"isBot,omitempty"`
}

// Soft-failure messages surfaced to the storefront snippet. Never more
// detail than this: the caller is unauthenticated browser code.
const (
	ErrMsgUnknownShop    = "Unknown shop"
	ErrMsgInvalidPayload = "Invalid payload"
	ErrMsgCollectFailed  = "Collection failed"
)

func softFail(msg string) CollectResult { return CollectResult{Success: false, Error: msg} }

// Collect runs the full collection flow: normalize, classify, fingerprint
// upsert, identity resolution. It never returns an error; every failure is
// folded into a soft-fail result because the caller must never observe a
// thrown error.
func (e *Engine) Collect(ctx context.Context, raw signal.RawPayload, ip string) CollectResult {
	sig, err := signal.Normalize(raw)
	if err != nil {
		return softFail(ErrMsgInvalidPayload)
	}

	m, err := e.client.Merchant.Query().Where(merchant.ShopDomain(sig.Shop)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return softFail(ErrMsgUnknownShop)
		}
		engineLogger.Sugar().Errorw("merchant lookup failed", "shop", sig.Shop, "err", err)
		return softFail(ErrMsgCollectFailed)
	}

	bot := botdetect.ClassifyWithThreshold(sig, e.botThreshold())

	fp, err := e.upsertFingerprint(ctx, m.ID, sig, bot, ip)
	if err != nil {
		engineLogger.Sugar().Errorw("fingerprint upsert failed", "shop", sig.Shop, "hash", sig.FingerprintHash, "err", err)
		return softFail(ErrMsgCollectFailed)
	}

	link, err := e.Resolve(ctx, m.ID, fp, sig)
	if err != nil {
		engineLogger.Sugar().Errorw("identity resolution failed", "fingerprint", fp.ID, "err", err)
		return softFail(ErrMsgCollectFailed)
	}

	e.publishIdentified(ctx, m.ID, fp, link)

	return CollectResult{
		Success:       true,
		FingerprintID: fp.ID.String(),
		IsReturning:   lo.ToPtr(fp.VisitCount > 1),
		VisitCount:    fp.VisitCount,
		IsBot:         lo.ToPtr(fp.IsBot),
	}
}

// publishIdentified emits a best-effort visitor.identified event for
// downstream consumers. Publish failures are logged, never surfaced.
func (e *Engine) publishIdentified(ctx context.Context, merchantID uuid.UUID, fp *ent.Fingerprint, link *ent.IdentityLink) {
	if e.MQ == nil || link == nil {
		return
	}
	evt := map[string]any{
		"type":             "visitor.identified",
		"merchant_id":      merchantID.String(),
		"fingerprint_id":   fp.ID.String(),
		"fingerprint_hash": fp.FpHash,
		"match_type":       link.MatchType,
		"match_confidence": link.MatchConfidence,
		"visit_count":      fp.VisitCount,
		"is_bot":           fp.IsBot,
	}
	b, _ := json.Marshal(evt)
	pubCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := e.MQ.Publish(pubCtx, "visitor.identified", b); err != nil {
		engineLogger.Sugar().Warnw("publish visitor.identified failed", "err", err)
	}
}

// withRetry runs fn and retries exactly once on a transient failure.
// Constraint violations and cancelled contexts are not transient.
func withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || ent.IsConstraintError(err) || ctx.Err() != nil {
		return err
	}
	engineLogger.Sugar().Warnw("store operation failed, retrying once", "err", err)
	return fn()
}
