package identity

import (
	"context"

	"github.com/google/uuid"

	"visitor-iq/ent"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/identitylink"
)

// Dashboard result limits.
const (
	recentVisitorLimit = 20
	topEngagedLimit    = 20
	hotLeadLimit       = 50
)

// DashboardStats is the merchant dashboard aggregate. It is a pure read
// over the fingerprint and identity tables.
type DashboardStats struct {
	TotalFingerprints  int `json:"total_fingerprints"`
	ReturningVisitors  int `json:"returning_visitors"`
	IdentifiedVisitors int `json:"identified_visitors"`
	BotCount           int `json:"bot_count"`

	ByIntent  map[string]int `json:"by_intent"`
	BySegment map[string]int `json:"by_segment"`

	RecentVisitors []RecentVisitor     `json:"recent_visitors"`
	TopEngaged     []*ent.IdentityLink `json:"top_engaged"`
}

// RecentVisitor pairs a recently seen fingerprint with its
// highest-confidence identity, if it has one.
type RecentVisitor struct {
	Fingerprint *ent.Fingerprint  `json:"fingerprint"`
	Identity    *ent.IdentityLink `json:"identity,omitempty"`
}

// Dashboard computes the merchant dashboard aggregate.
func (e *Engine) Dashboard(ctx context.Context, merchantID uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{
		ByIntent:  map[string]int{},
		BySegment: map[string]int{},
	}

	var err error
	stats.TotalFingerprints, err = e.client.Fingerprint.Query().
		Where(fingerprint.MerchantID(merchantID)).
		Count(ctx)
	if err != nil {
		return nil, err
	}

	stats.ReturningVisitors, err = e.client.Fingerprint.Query().
		Where(fingerprint.MerchantID(merchantID), fingerprint.VisitCountGT(1)).
		Count(ctx)
	if err != nil {
		return nil, err
	}

	stats.BotCount, err = e.client.Fingerprint.Query().
		Where(fingerprint.MerchantID(merchantID), fingerprint.IsBot(true)).
		Count(ctx)
	if err != nil {
		return nil, err
	}

	// identified visitors = distinct fingerprints with at least one
	// buyer-resolved link
	var identified []struct {
		FingerprintID uuid.UUID `json:"fingerprint_id"`
		Count         int       `json:"count"`
	}
	err = e.client.IdentityLink.Query().
		Where(identitylink.MerchantID(merchantID), identitylink.BuyerIDNotNil()).
		GroupBy(identitylink.FieldFingerprintID).
		Aggregate(ent.Count()).
		Scan(ctx, &identified)
	if err != nil {
		return nil, err
	}
	stats.IdentifiedVisitors = len(identified)

	var byIntent []struct {
		BuyerIntent string `json:"buyer_intent"`
		Count       int    `json:"count"`
	}
	err = e.client.IdentityLink.Query().
		Where(identitylink.MerchantID(merchantID)).
		GroupBy(identitylink.FieldBuyerIntent).
		Aggregate(ent.Count()).
		Scan(ctx, &byIntent)
	if err != nil {
		return nil, err
	}
	for _, row := range byIntent {
		stats.ByIntent[row.BuyerIntent] = row.Count
	}

	var bySegment []struct {
		Segment string `json:"segment"`
		Count   int    `json:"count"`
	}
	err = e.client.IdentityLink.Query().
		Where(identitylink.MerchantID(merchantID)).
		GroupBy(identitylink.FieldSegment).
		Aggregate(ent.Count()).
		Scan(ctx, &bySegment)
	if err != nil {
		return nil, err
	}
	for _, row := range bySegment {
		stats.BySegment[row.Segment] = row.Count
	}

	recent, err := e.client.Fingerprint.Query().
		Where(fingerprint.MerchantID(merchantID), fingerprint.IsBot(false)).
		Order(ent.Desc(fingerprint.FieldLastSeenAt)).
		Limit(recentVisitorLimit).
		WithIdentityLinks(func(q *ent.IdentityLinkQuery) {
			q.Order(ent.Desc(identitylink.FieldMatchConfidence))
		}).
		All(ctx)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = make([]RecentVisitor, 0, len(recent))
	for _, fp := range recent {
		rv := RecentVisitor{Fingerprint: fp}
		if len(fp.Edges.IdentityLinks) > 0 {
			rv.Identity = fp.Edges.IdentityLinks[0]
		}
		stats.RecentVisitors = append(stats.RecentVisitors, rv)
	}

	stats.TopEngaged, err = e.client.IdentityLink.Query().
		Where(identitylink.MerchantID(merchantID)).
		Order(ent.Desc(identitylink.FieldEngagementScore)).
		Limit(topEngagedLimit).
		All(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// HotLeads returns high-interest identities that have not purchased yet:
// intent hot or warm, zero orders, strongest engagement first.
func (e *Engine) HotLeads(ctx context.Context, merchantID uuid.UUID) ([]*ent.IdentityLink, error) {
	return e.client.IdentityLink.Query().
		Where(
			identitylink.MerchantID(merchantID),
			identitylink.BuyerIntentIn(identitylink.BuyerIntentHot, identitylink.BuyerIntentWarm),
			identitylink.TotalOrders(0),
		).
		Order(ent.Desc(identitylink.FieldEngagementScore)).
		Limit(hotLeadLimit).
		All(ctx)
}
