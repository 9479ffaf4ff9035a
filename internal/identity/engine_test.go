package identity

import (
	"context"
	"database/sql"
	"math"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"visitor-iq/ent"
	"visitor-iq/ent/identitylink"
	"visitor-iq/internal/config"
	"visitor-iq/internal/signal"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:identity?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func newTestEngine(t *testing.T, client *ent.Client) *Engine {
	t.Helper()
	cfg := &config.Config{}
	cfg.Bot.Threshold = 0.7
	return NewEngine(client, config.NewStore(cfg))
}

func seedMerchant(t *testing.T, client *ent.Client, shop string) *ent.Merchant {
	t.Helper()
	m, err := client.Merchant.Create().SetShopDomain(shop).SetName(shop).Save(context.Background())
	if err != nil {
		t.Fatalf("seed merchant: %v", err)
	}
	return m
}

func basePayload(shop, hash string) signal.RawPayload {
	return signal.RawPayload{
		Shop:                shop,
		FingerprintHash:     hash,
		CanvasHash:          "canvas-" + hash,
		WebglHash:           "webgl-" + hash,
		AudioHash:           "audio-" + hash,
		UserAgent:           "Mozilla/5.0 (Macintosh)",
		Platform:            "MacIntel",
		Language:            "en-US",
		Timezone:            "Europe/Berlin",
		ScreenWidth:         1440,
		ScreenHeight:        900,
		HardwareConcurrency: 8,
	}
}

func TestCollect_UnknownShop(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)

	res := e.Collect(context.Background(), basePayload("ghost.example.com", "fp-x"), "")
	want := CollectResult{Success: false, Error: ErrMsgUnknownShop}
	if res != want {
		t.Fatalf("result = %+v, want %+v", res, want)
	}
}

func TestCollect_InvalidPayload(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)

	res := e.Collect(context.Background(), signal.RawPayload{Shop: "s.example.com"}, "")
	if res.Success || res.Error != ErrMsgInvalidPayload {
		t.Fatalf("result = %+v", res)
	}
}

func TestCollect_VisitCountMonotonic(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	seedMerchant(t, client, "visits.example.com")

	payload := basePayload("visits.example.com", "fp-visits")
	for i := 1; i <= 3; i++ {
		res := e.Collect(context.Background(), payload, "203.0.113.5")
		if !res.Success {
			t.Fatalf("collect %d failed: %+v", i, res)
		}
		if res.VisitCount != i {
			t.Fatalf("visit %d: count = %d", i, res.VisitCount)
		}
		if wantReturning := i > 1; *res.IsReturning != wantReturning {
			t.Fatalf("visit %d: isReturning = %v", i, *res.IsReturning)
		}
	}
}

func TestCollect_RecurrenceMergesSignals(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "merge.example.com")
	ctx := context.Background()

	full := basePayload("merge.example.com", "fp-merge")
	full.GPUVendor = "Apple"
	full.GPURenderer = "Apple M1"
	if res := e.Collect(ctx, full, "203.0.113.1"); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	// a later lean beacon must not blank previously captured detail
	lean := basePayload("merge.example.com", "fp-merge")
	if res := e.Collect(ctx, lean, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	fp, err := client.Fingerprint.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	var found bool
	for _, f := range fp {
		if f.MerchantID == m.ID && f.FpHash == "fp-merge" {
			found = true
			if f.GpuVendor != "Apple" || f.GpuRenderer != "Apple M1" {
				t.Fatalf("gpu fields blanked: %q %q", f.GpuVendor, f.GpuRenderer)
			}
			if f.IPAddress != "203.0.113.1" {
				t.Fatalf("ip overwritten by empty value: %q", f.IPAddress)
			}
			if f.VisitCount != 2 {
				t.Fatalf("visit count = %d", f.VisitCount)
			}
		}
	}
	if !found {
		t.Fatal("fingerprint row missing")
	}
}

func TestCollect_BotFlagged(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	seedMerchant(t, client, "bots.example.com")

	payload := basePayload("bots.example.com", "fp-bot")
	payload.UserAgent = "Mozilla/5.0 HeadlessChrome/120.0"
	res := e.Collect(context.Background(), payload, "")
	if !res.Success {
		t.Fatalf("collect: %+v", res)
	}
	if res.IsBot == nil || !*res.IsBot {
		t.Fatalf("headless visitor not flagged: %+v", res)
	}
}

func TestResolve_EmailMatch(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "email.example.com")
	ctx := context.Background()

	b, err := client.Buyer.Create().
		SetMerchantID(m.ID).
		SetEmail("buyer@example.com").
		SetName("Buyer").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed buyer: %v", err)
	}

	payload := basePayload("email.example.com", "fp-email")
	payload.Email = "Buyer@Example.Com"
	if res := e.Collect(ctx, payload, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	link, err := client.IdentityLink.Query().
		Where(identitylink.MerchantID(m.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("query link: %v", err)
	}
	if link.MatchType != identitylink.MatchTypeEmail {
		t.Fatalf("match type = %q", link.MatchType)
	}
	if math.Abs(link.MatchConfidence-0.95) > 1e-9 {
		t.Fatalf("confidence = %v", link.MatchConfidence)
	}
	if link.BuyerID == nil || *link.BuyerID != b.ID {
		t.Fatalf("buyer not linked: %v", link.BuyerID)
	}
	if link.Email == nil || *link.Email != "buyer@example.com" {
		t.Fatalf("email not normalized: %v", link.Email)
	}
}

func TestResolve_AuthTokenCarriesPriorLink(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "token.example.com")
	ctx := context.Background()

	b, err := client.Buyer.Create().
		SetMerchantID(m.ID).
		SetEmail("tok@example.com").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed buyer: %v", err)
	}

	// first device: token + email identify the buyer
	first := basePayload("token.example.com", "fp-tok-1")
	first.AuthToken = "session-token-1"
	first.Email = "tok@example.com"
	if res := e.Collect(ctx, first, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	// second device: same token, no email; buyer follows the token
	second := basePayload("token.example.com", "fp-tok-2")
	second.AuthToken = "session-token-1"
	if res := e.Collect(ctx, second, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	links, err := client.IdentityLink.Query().
		Where(identitylink.MerchantID(m.ID), identitylink.MatchTypeEQ(identitylink.MatchTypeAuthenticatedSession)).
		All(ctx)
	if err != nil {
		t.Fatalf("query links: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("links = %d, want 2", len(links))
	}
	for _, link := range links {
		if link.BuyerID == nil || *link.BuyerID != b.ID {
			t.Fatalf("buyer not carried across devices: %+v", link)
		}
		if math.Abs(link.MatchConfidence-1.0) > 1e-9 {
			t.Fatalf("confidence = %v, want 1.0", link.MatchConfidence)
		}
	}
}

func TestResolve_PlatformSession(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "platform.example.com")
	ctx := context.Background()

	b, err := client.Buyer.Create().
		SetMerchantID(m.ID).
		SetEmail("plat@example.com").
		SetPlatformCustomerID(777).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed buyer: %v", err)
	}

	payload := basePayload("platform.example.com", "fp-plat")
	payload.PlatformCustomerID = "777"
	if res := e.Collect(ctx, payload, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	link, err := client.IdentityLink.Query().
		Where(identitylink.MerchantID(m.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("query link: %v", err)
	}
	if link.MatchType != identitylink.MatchTypePlatformSession {
		t.Fatalf("match type = %q", link.MatchType)
	}
	if math.Abs(link.MatchConfidence-0.90) > 1e-9 {
		t.Fatalf("confidence = %v", link.MatchConfidence)
	}
	if link.BuyerID == nil || *link.BuyerID != b.ID {
		t.Fatalf("buyer not linked: %v", link.BuyerID)
	}
	if link.PlatformCustomerID == nil || *link.PlatformCustomerID != 777 {
		t.Fatalf("platform id not stored: %v", link.PlatformCustomerID)
	}
}

func TestResolve_RecurrenceConfidence(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "recur.example.com")
	ctx := context.Background()

	// full rendering evidence
	strong := basePayload("recur.example.com", "fp-strong")
	if res := e.Collect(ctx, strong, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}
	// hash only, no canvas/webgl
	weak := signal.RawPayload{Shop: "recur.example.com", FingerprintHash: "fp-weak", UserAgent: "Mozilla/5.0"}
	if res := e.Collect(ctx, weak, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	links, err := client.IdentityLink.Query().
		Where(identitylink.MerchantID(m.ID)).
		All(ctx)
	if err != nil {
		t.Fatalf("query links: %v", err)
	}
	var got []float64
	for _, l := range links {
		if l.MatchType != identitylink.MatchTypeFingerprintRecurrence {
			t.Fatalf("match type = %q", l.MatchType)
		}
		got = append(got, l.MatchConfidence)
	}
	if len(got) != 2 {
		t.Fatalf("links = %d, want 2", len(got))
	}
	lo, hi := got[0], got[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.Abs(lo-0.50) > 1e-9 || math.Abs(hi-0.75) > 1e-9 {
		t.Fatalf("confidences = %v, want 0.50 and 0.75", got)
	}
}

func TestResolve_ConfidenceNeverDrops(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "mono.example.com")
	ctx := context.Background()

	weak := signal.RawPayload{Shop: "mono.example.com", FingerprintHash: "fp-mono", UserAgent: "Mozilla/5.0"}
	if res := e.Collect(ctx, weak, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}
	strong := basePayload("mono.example.com", "fp-mono")
	if res := e.Collect(ctx, strong, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}
	// weak again: confidence must stay at the raised value
	if res := e.Collect(ctx, weak, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	link, err := client.IdentityLink.Query().
		Where(identitylink.MerchantID(m.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("query link: %v", err)
	}
	if math.Abs(link.MatchConfidence-0.75) > 1e-9 {
		t.Fatalf("confidence = %v, want 0.75", link.MatchConfidence)
	}
}

func TestRecordEvent_ScoresAndSegments(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "events.example.com")
	ctx := context.Background()

	payload := basePayload("events.example.com", "fp-events")
	payload.Email = "shopper@example.com"
	if res := e.Collect(ctx, payload, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	for i := 0; i < 3; i++ {
		if err := e.RecordEvent(ctx, m.ID, "fp-events", EventProductView, EventPayload{ProductID: "sku-9"}); err != nil {
			t.Fatalf("product view: %v", err)
		}
	}
	if err := e.RecordEvent(ctx, m.ID, "fp-events", EventAddToCart, EventPayload{}); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	link, err := client.IdentityLink.Query().
		Where(identitylink.MerchantID(m.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("query link: %v", err)
	}
	if link.ProductViews != 3 || link.AddToCarts != 1 {
		t.Fatalf("counters: %d views, %d carts", link.ProductViews, link.AddToCarts)
	}
	if link.EngagementScore != 19 {
		t.Fatalf("engagement = %d, want 19", link.EngagementScore)
	}
	if link.BuyerIntent != identitylink.BuyerIntentHot {
		t.Fatalf("intent = %q, want hot", link.BuyerIntent)
	}
	if link.Segment != identitylink.SegmentAbandonedCart {
		t.Fatalf("segment = %q, want abandoned_cart", link.Segment)
	}
	if link.LastProductViewed != "sku-9" {
		t.Fatalf("last product = %q", link.LastProductViewed)
	}

	// an order converts the visitor
	if err := e.RecordEvent(ctx, m.ID, "fp-events", EventOrder, EventPayload{OrderValue: 129.90}); err != nil {
		t.Fatalf("order: %v", err)
	}
	link, err = client.IdentityLink.Query().
		Where(identitylink.MerchantID(m.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("query link: %v", err)
	}
	if link.BuyerIntent != identitylink.BuyerIntentConverting {
		t.Fatalf("intent = %q, want converting", link.BuyerIntent)
	}
	if link.Segment != identitylink.SegmentCustomer {
		t.Fatalf("segment = %q, want customer", link.Segment)
	}
	if math.Abs(link.TotalRevenue-129.90) > 1e-9 {
		t.Fatalf("revenue = %v", link.TotalRevenue)
	}
}

func TestRecordEvent_OrphanDropped(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "orphan.example.com")

	if err := e.RecordEvent(context.Background(), m.ID, "never-collected", EventPageView, EventPayload{}); err != nil {
		t.Fatalf("orphan event must be dropped silently, got %v", err)
	}
}

func TestRecordEvent_UnknownTypeIgnored(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "unknown-type.example.com")
	ctx := context.Background()

	if res := e.Collect(ctx, basePayload("unknown-type.example.com", "fp-ut"), ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}
	if err := e.RecordEvent(ctx, m.ID, "fp-ut", "mystery_event", EventPayload{}); err != nil {
		t.Fatalf("unknown type: %v", err)
	}
	link, err := client.IdentityLink.Query().
		Where(identitylink.MerchantID(m.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("query link: %v", err)
	}
	if link.PageViews != 0 || link.EngagementScore != 0 {
		t.Fatalf("unknown event mutated counters: %+v", link)
	}
}

func TestHandleBehaviorMessage(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "queue.example.com")
	ctx := context.Background()

	if res := e.Collect(ctx, basePayload("queue.example.com", "fp-q"), ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	// malformed body is dropped, not requeued
	if err := e.HandleBehaviorMessage(ctx, []byte("{broken")); err != nil {
		t.Fatalf("malformed body: %v", err)
	}

	body := []byte(`{"merchant_id":"` + m.ID.String() + `","fingerprint_hash":"fp-q","event_type":"page_view","payload":{"page_url":"/products/shoe"}}`)
	if err := e.HandleBehaviorMessage(ctx, body); err != nil {
		t.Fatalf("handle: %v", err)
	}

	link, err := client.IdentityLink.Query().
		Where(identitylink.MerchantID(m.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("query link: %v", err)
	}
	if link.PageViews != 1 || link.LastPageURL != "/products/shoe" {
		t.Fatalf("queue event not applied: %+v", link)
	}
}

func TestHotLeads_ExcludesConverted(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "hot.example.com")
	ctx := context.Background()

	for _, hash := range []string{"fp-hot-a", "fp-hot-b"} {
		p := basePayload("hot.example.com", hash)
		p.Email = hash + "@example.com"
		if res := e.Collect(ctx, p, ""); !res.Success {
			t.Fatalf("collect: %+v", res)
		}
		if err := e.RecordEvent(ctx, m.ID, hash, EventAddToCart, EventPayload{}); err != nil {
			t.Fatalf("event: %v", err)
		}
	}
	// the second one converts and must drop out of the lead list
	if err := e.RecordEvent(ctx, m.ID, "fp-hot-b", EventOrder, EventPayload{OrderValue: 50}); err != nil {
		t.Fatalf("order: %v", err)
	}

	leads, err := e.HotLeads(ctx, m.ID)
	if err != nil {
		t.Fatalf("hot leads: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("leads = %d, want 1", len(leads))
	}
	if leads[0].Email == nil || *leads[0].Email != "fp-hot-a@example.com" {
		t.Fatalf("wrong lead: %+v", leads[0])
	}
}

func TestDashboard_Counts(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	e := newTestEngine(t, client)
	m := seedMerchant(t, client, "dash.example.com")
	ctx := context.Background()

	// identified returning visitor
	p := basePayload("dash.example.com", "fp-dash-a")
	p.Email = "dash@example.com"
	for i := 0; i < 2; i++ {
		if res := e.Collect(ctx, p, ""); !res.Success {
			t.Fatalf("collect: %+v", res)
		}
	}
	// bot visitor
	bot := basePayload("dash.example.com", "fp-dash-bot")
	bot.UserAgent = "Mozilla/5.0 HeadlessChrome/120.0"
	if res := e.Collect(ctx, bot, ""); !res.Success {
		t.Fatalf("collect: %+v", res)
	}

	stats, err := e.Dashboard(ctx, m.ID)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.TotalFingerprints != 2 {
		t.Fatalf("total = %d, want 2", stats.TotalFingerprints)
	}
	if stats.ReturningVisitors != 1 {
		t.Fatalf("returning = %d, want 1", stats.ReturningVisitors)
	}
	if stats.BotCount != 1 {
		t.Fatalf("bots = %d, want 1", stats.BotCount)
	}
	if len(stats.RecentVisitors) != 1 {
		t.Fatalf("recent (non-bot) = %d, want 1", len(stats.RecentVisitors))
	}
	if stats.RecentVisitors[0].Identity == nil {
		t.Fatal("recent visitor must join its identity")
	}
}
