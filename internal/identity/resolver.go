package identity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"visitor-iq/ent"
	"visitor-iq/ent/buyer"
	"visitor-iq/ent/identitylink"
	"visitor-iq/internal/signal"
)

// Match confidence per match type. Fingerprint recurrence is split by how
// much rendering evidence backs the hash.
const (
	confAuthSession     = 1.00
	confEmail           = 0.95
	confPlatformSession = 0.90
	confRecurrenceFull  = 0.75 // canvas and webgl hashes both present
	confRecurrenceWeak  = 0.50
)

// linkage is the buyer association adopted by the cascade. All fields are
// optional; an empty linkage still produces an identity link row.
type linkage struct {
	buyerID    *uuid.UUID
	companyID  *uuid.UUID
	platformID *int64
}

// Resolve executes the matching cascade for a collected fingerprint and
// upserts the identity link row for the strongest signal present.
//
// The recorded match type reflects which signal carried the link
// (authenticated session > email > platform session > fingerprint
// recurrence) independently of which cascade step actually supplied the
// buyer: a request carrying only a platform customer id is recorded as
// platform_session even when no buyer was found for it.
func (e *Engine) Resolve(ctx context.Context, merchantID uuid.UUID, fp *ent.Fingerprint, sig signal.Signals) (*ent.IdentityLink, error) {
	matchType, confidence := matchSignal(sig)
	link := e.runCascade(ctx, merchantID, fp, sig)

	now := time.Now().UTC()
	err := withRetry(ctx, func() error {
		create := e.client.IdentityLink.Create().
			SetMerchantID(merchantID).
			SetFingerprintID(fp.ID).
			SetMatchType(matchType).
			SetMatchConfidence(confidence)
		if link.buyerID != nil {
			create = create.SetBuyerID(*link.buyerID)
		}
		if link.companyID != nil {
			create = create.SetCompanyID(*link.companyID)
		}
		if link.platformID != nil {
			create = create.SetPlatformCustomerID(*link.platformID)
		}
		if sig.Email != "" {
			create = create.SetEmail(sig.Email)
		}
		if sig.AuthToken != "" {
			create = create.SetAuthToken(sig.AuthToken)
		}
		if sig.SessionID != "" {
			create = create.SetSessionID(sig.SessionID)
		}
		return create.
			OnConflictColumns(
				identitylink.FieldMerchantID,
				identitylink.FieldFingerprintID,
				identitylink.FieldMatchType,
			).
			Update(func(u *ent.IdentityLinkUpsert) {
				// identifying fields are only ever added, never cleared
				u.SetUpdatedAt(now)
				if link.buyerID != nil {
					u.SetBuyerID(*link.buyerID)
				}
				if link.companyID != nil {
					u.SetCompanyID(*link.companyID)
				}
				if link.platformID != nil {
					u.SetPlatformCustomerID(*link.platformID)
				}
				if sig.Email != "" {
					u.SetEmail(sig.Email)
				}
				if sig.AuthToken != "" {
					u.SetAuthToken(sig.AuthToken)
				}
				if sig.SessionID != "" {
					u.SetSessionID(sig.SessionID)
				}
			}).
			Exec(ctx)
	})
	if err != nil {
		return nil, err
	}

	// Confidence is monotonic per (fingerprint, match type): raise it to the
	// new value only where the stored value is lower. Doing this as a
	// conditional update keeps it atomic without a read-modify-write.
	_, err = e.client.IdentityLink.Update().
		Where(
			identitylink.MerchantID(merchantID),
			identitylink.FingerprintID(fp.ID),
			identitylink.MatchTypeEQ(matchType),
			identitylink.MatchConfidenceLT(confidence),
		).
		SetMatchConfidence(confidence).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	return e.client.IdentityLink.Query().
		Where(
			identitylink.MerchantID(merchantID),
			identitylink.FingerprintID(fp.ID),
			identitylink.MatchTypeEQ(matchType),
		).
		Only(ctx)
}

// matchSignal picks the match type and its confidence from the strongest
// identity hint present in the payload.
func matchSignal(sig signal.Signals) (identitylink.MatchType, float64) {
	if sig.AuthToken != "" {
		return identitylink.MatchTypeAuthenticatedSession, confAuthSession
	}
	if sig.Email != "" {
		return identitylink.MatchTypeEmail, confEmail
	}
	if _, ok := sig.PlatformCustomerIDInt64(); ok {
		return identitylink.MatchTypePlatformSession, confPlatformSession
	}
	if sig.CanvasHash != "" && sig.WebglHash != "" {
		return identitylink.MatchTypeFingerprintRecurrence, confRecurrenceFull
	}
	return identitylink.MatchTypeFingerprintRecurrence, confRecurrenceWeak
}

// runCascade walks the fixed-priority lookup chain until a buyer linkage is
// found. Lookup failures other than not-found are logged and treated as a
// miss; the collection flow must keep going on a degraded store read.
func (e *Engine) runCascade(ctx context.Context, merchantID uuid.UUID, fp *ent.Fingerprint, sig signal.Signals) linkage {
	var link linkage

	// 1. previously stored identity with the same auth token
	if sig.AuthToken != "" {
		prior, err := e.client.IdentityLink.Query().
			Where(
				identitylink.MerchantID(merchantID),
				identitylink.AuthTokenEQ(sig.AuthToken),
				identitylink.BuyerIDNotNil(),
			).
			Order(ent.Desc(identitylink.FieldMatchConfidence)).
			First(ctx)
		if err == nil {
			link.buyerID = prior.BuyerID
			link.companyID = prior.CompanyID
			link.platformID = prior.PlatformCustomerID
		} else if !ent.IsNotFound(err) {
			engineLogger.Sugar().Warnw("auth token lookup failed", "err", err)
		}
	}

	// 2. exact email match against known buyers
	if link.buyerID == nil && sig.Email != "" {
		b, err := e.client.Buyer.Query().
			Where(buyer.MerchantID(merchantID), buyer.Email(sig.Email)).
			Only(ctx)
		if err == nil {
			link.buyerID = &b.ID
			link.companyID = b.CompanyID
			link.platformID = b.PlatformCustomerID
		} else if !ent.IsNotFound(err) {
			engineLogger.Sugar().Warnw("buyer email lookup failed", "err", err)
		}
	}

	// 3. platform customer id, merchant scoped
	if pcid, ok := sig.PlatformCustomerIDInt64(); ok {
		if link.platformID == nil {
			link.platformID = &pcid
		}
		if link.buyerID == nil {
			b, err := e.client.Buyer.Query().
				Where(buyer.MerchantID(merchantID), buyer.PlatformCustomerID(pcid)).
				First(ctx)
			if err == nil {
				link.buyerID = &b.ID
				link.companyID = b.CompanyID
			} else if !ent.IsNotFound(err) {
				engineLogger.Sugar().Warnw("buyer platform id lookup failed", "err", err)
			}
		}
	}

	// 4. any prior resolved link for this exact fingerprint
	if link.buyerID == nil {
		prior, err := e.client.IdentityLink.Query().
			Where(
				identitylink.MerchantID(merchantID),
				identitylink.FingerprintID(fp.ID),
				identitylink.BuyerIDNotNil(),
			).
			Order(ent.Desc(identitylink.FieldMatchConfidence)).
			First(ctx)
		if err == nil {
			link.buyerID = prior.BuyerID
			link.companyID = prior.CompanyID
			if link.platformID == nil {
				link.platformID = prior.PlatformCustomerID
			}
		} else if !ent.IsNotFound(err) {
			engineLogger.Sugar().Warnw("prior link lookup failed", "err", err)
		}
	}

	return link
}
