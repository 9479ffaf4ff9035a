package identity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"visitor-iq/ent"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/identitylink"
	"visitor-iq/internal/esx"
	"visitor-iq/internal/scoring"
)

// Behavior event types accepted by the aggregator. Anything else is a
// no-op.
const (
	EventPageView    = "page_view"
	EventProductView = "product_view"
	EventAddToCart   = "add_to_cart"
	EventOrder       = "order"
)

// EventPayload carries the optional per-event context.
type EventPayload struct {
	PageURL    string  `json:"page_url,omitempty"`
	ProductID  string  `json:"product_id,omitempty"`
	OrderValue float64 `json:"order_value,omitempty"`
}

// BehaviorEvent is the queue message shape consumed from the events
// exchange.
type BehaviorEvent struct {
	MerchantID      uuid.UUID    `json:"merchant_id"`
	FingerprintHash string       `json:"fingerprint_hash"`
	EventType       string       `json:"event_type"`
	Payload         EventPayload `json:"payload"`
}

// RecordEvent attributes a behavior event to a collected fingerprint and
// recomputes the derived scores of every identity link attached to it.
//
// An event for a fingerprint that was never collected is silently dropped:
// ordering between the collection channel and the event channel is not
// guaranteed, and the collect path is the only writer of fingerprint rows.
func (e *Engine) RecordEvent(ctx context.Context, merchantID uuid.UUID, fpHash, eventType string, payload EventPayload) error {
	fp, err := e.client.Fingerprint.Query().
		Where(fingerprint.MerchantID(merchantID), fingerprint.FpHash(fpHash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			engineLogger.Sugar().Debugw("dropping event for uncollected fingerprint",
				"merchant", merchantID, "hash", fpHash, "event", eventType)
			return nil
		}
		return err
	}

	// counter increments are done in SQL so concurrent events never lose
	// an update
	upd := e.client.IdentityLink.Update().
		Where(identitylink.FingerprintID(fp.ID)).
		SetUpdatedAt(time.Now().UTC())
	switch eventType {
	case EventPageView:
		upd = upd.AddPageViews(1)
		if payload.PageURL != "" {
			upd = upd.SetLastPageURL(payload.PageURL)
		}
	case EventProductView:
		upd = upd.AddProductViews(1)
		if payload.ProductID != "" {
			upd = upd.SetLastProductViewed(payload.ProductID)
		}
	case EventAddToCart:
		upd = upd.AddAddToCarts(1)
	case EventOrder:
		upd = upd.AddTotalOrders(1)
		if payload.OrderValue > 0 {
			upd = upd.AddTotalRevenue(payload.OrderValue)
		}
	default:
		return nil
	}

	if err := withRetry(ctx, func() error { return upd.Exec(ctx) }); err != nil {
		return err
	}

	return e.recomputeScores(ctx, fp.ID)
}

// recomputeScores refreshes engagement, intent and segment for every
// identity link of the fingerprint, so all strategies stay consistent, not
// just the highest-confidence row. The three derived views are written
// together; recomputing one without the others is a correctness bug.
func (e *Engine) recomputeScores(ctx context.Context, fingerprintID uuid.UUID) error {
	links, err := e.client.IdentityLink.Query().
		Where(identitylink.FingerprintID(fingerprintID)).
		All(ctx)
	if err != nil {
		return err
	}

	for _, link := range links {
		engagement, intent, segment := scoring.Score(scoring.Counters{
			PageViews:    link.PageViews,
			ProductViews: link.ProductViews,
			AddToCarts:   link.AddToCarts,
			Orders:       link.TotalOrders,
		})
		err := e.client.IdentityLink.UpdateOneID(link.ID).
			SetEngagementScore(engagement).
			SetBuyerIntent(identitylink.BuyerIntent(intent)).
			SetSegment(identitylink.Segment(segment)).
			Exec(ctx)
		if err != nil {
			return err
		}
		e.indexLead(ctx, link, engagement, intent, segment)
	}
	return nil
}

// indexLead pushes the refreshed lead projection into the search index,
// best effort.
func (e *Engine) indexLead(ctx context.Context, link *ent.IdentityLink, engagement int, intent scoring.Intent, segment scoring.Segment) {
	if e.ES == nil {
		return
	}
	doc := esx.LeadDoc{
		ID:              link.ID.String(),
		MerchantID:      link.MerchantID.String(),
		FingerprintID:   link.FingerprintID.String(),
		MatchType:       string(link.MatchType),
		MatchConfidence: link.MatchConfidence,
		EngagementScore: engagement,
		BuyerIntent:     string(intent),
		Segment:         string(segment),
		TotalOrders:     link.TotalOrders,
		LastPageURL:     link.LastPageURL,
		UpdatedAt:       time.Now().UTC().Format(time.RFC3339Nano),
	}
	if link.Email != nil {
		doc.Email = *link.Email
	}
	idxCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := esx.IndexLead(idxCtx, e.ES, doc); err != nil {
		engineLogger.Sugar().Warnw("lead indexing failed", "link", link.ID, "err", err)
	}
}

// HandleBehaviorMessage decodes a queue message and feeds it to
// RecordEvent. Malformed bodies are dropped with a log line instead of
// being requeued forever.
func (e *Engine) HandleBehaviorMessage(ctx context.Context, body []byte) error {
	var evt BehaviorEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		engineLogger.Sugar().Warnw("dropping malformed behavior event", "err", err)
		return nil
	}
	if evt.MerchantID == uuid.Nil || evt.FingerprintHash == "" {
		engineLogger.Sugar().Debugw("dropping behavior event without identifiers")
		return nil
	}
	return e.RecordEvent(ctx, evt.MerchantID, evt.FingerprintHash, evt.EventType, evt.Payload)
}
