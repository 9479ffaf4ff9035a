package reporting

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"visitor-iq/ent"
	"visitor-iq/internal/config"
	"visitor-iq/internal/httpx/kit/testutil"
	"visitor-iq/internal/httpx/mw"
	"visitor-iq/internal/identity"
	"visitor-iq/internal/signal"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:reporting?mode=memory&cache=shared&_fk=1")
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

// fakeAuth injects a merchant auth context the way the JWT middleware
// would after verifying a token.
func fakeAuth(id uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("auth", &mw.AuthContext{Subject: "merchant:" + id.String(), Kind: "merchant", MerchantID: id})
		return c.Next()
	}
}

func TestDashboardAndHotLeads(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()

	m, err := client.Merchant.Create().SetShopDomain("report.example.com").SetName("Report").Save(ctx)
	if err != nil {
		t.Fatalf("seed merchant: %v", err)
	}

	if _, err := client.Buyer.Create().
		SetMerchantID(m.ID).
		SetEmail("lead@example.com").
		Save(ctx); err != nil {
		t.Fatalf("seed buyer: %v", err)
	}

	cfg := &config.Config{}
	cfg.Bot.Threshold = 0.7
	engine := identity.NewEngine(client, config.NewStore(cfg))

	// one identified visitor with some behavior
	res := engine.Collect(ctx, signal.RawPayload{
		Shop:                "report.example.com",
		FingerprintHash:     "fp-dash-1",
		CanvasHash:          "c1",
		WebglHash:           "w1",
		AudioHash:           "a1",
		UserAgent:           "Mozilla/5.0",
		Platform:            "Win32",
		Timezone:            "UTC",
		ScreenWidth:         1920,
		ScreenHeight:        1080,
		HardwareConcurrency: 4,
		Email:               "lead@example.com",
	}, "198.51.100.7")
	if !res.Success {
		t.Fatalf("collect failed: %+v", res)
	}
	for i := 0; i < 3; i++ {
		if err := engine.RecordEvent(ctx, m.ID, "fp-dash-1", identity.EventProductView, identity.EventPayload{ProductID: "sku-1"}); err != nil {
			t.Fatalf("record event: %v", err)
		}
	}
	if err := engine.RecordEvent(ctx, m.ID, "fp-dash-1", identity.EventAddToCart, identity.EventPayload{ProductID: "sku-1"}); err != nil {
		t.Fatalf("record event: %v", err)
	}

	app := testutil.NewApp(func(a *fiber.App) {
		a.Use(fakeAuth(m.ID))
		a.Get("/dashboard", DashboardHandler(engine, nil))
		a.Get("/leads/hot", HotLeadsHandler(engine))
		a.Get("/leads/search", LeadSearchHandler(engine))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil), -1)
	if err != nil {
		t.Fatalf("dashboard request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard status = %d", resp.StatusCode)
	}
	var dash struct {
		Data identity.DashboardStats `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dash.Data.TotalFingerprints != 1 || dash.Data.IdentifiedVisitors != 1 {
		t.Fatalf("dashboard stats: %+v", dash.Data)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/leads/hot", nil), -1)
	if err != nil {
		t.Fatalf("hot leads request: %v", err)
	}
	var hot struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hot); err != nil {
		t.Fatalf("decode hot leads: %v", err)
	}
	if len(hot.Data) != 1 {
		t.Fatalf("hot leads = %d, want 1", len(hot.Data))
	}

	// no search backend configured: empty result, not an error
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/leads/search?q=lead", nil), -1)
	if err != nil {
		t.Fatalf("search request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search status = %d", resp.StatusCode)
	}
}

func TestLeadsHandler_Paging(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()

	m, err := client.Merchant.Create().SetShopDomain("leads.example.com").SetName("Leads").Save(ctx)
	if err != nil {
		t.Fatalf("seed merchant: %v", err)
	}

	cfg := &config.Config{}
	cfg.Bot.Threshold = 0.7
	engine := identity.NewEngine(client, config.NewStore(cfg))

	hashes := []string{"fp-l1", "fp-l2", "fp-l3"}
	for i, h := range hashes {
		res := engine.Collect(ctx, signal.RawPayload{
			Shop:            "leads.example.com",
			FingerprintHash: h,
			CanvasHash:      "c" + h,
			WebglHash:       "w" + h,
			UserAgent:       "Mozilla/5.0",
			Platform:        "Win32",
			Timezone:        "UTC",
			ScreenWidth:     1920,
			ScreenHeight:    1080,
		}, "")
		if !res.Success {
			t.Fatalf("collect %s: %+v", h, res)
		}
		for j := 0; j <= i; j++ {
			if err := engine.RecordEvent(ctx, m.ID, h, identity.EventPageView, identity.EventPayload{}); err != nil {
				t.Fatalf("event: %v", err)
			}
		}
	}

	app := testutil.NewApp(func(a *fiber.App) {
		a.Use(fakeAuth(m.ID))
		a.Get("/leads", LeadsHandler(client))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/leads?sort=engagement_score:desc&limit=2", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var page struct {
		Data []struct {
			EngagementScore int `json:"engagement_score"`
		} `json:"data"`
		Meta struct {
			Count   int  `json:"count"`
			HasMore bool `json:"has_more"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Meta.Count != 2 || !page.Meta.HasMore {
		t.Fatalf("meta = %+v", page.Meta)
	}
	if page.Data[0].EngagementScore < page.Data[1].EngagementScore {
		t.Fatal("not sorted by engagement descending")
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/leads?sort=password:asc", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("non-whitelisted sort status = %d, want 400", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/leads?intent=nonsense", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid intent status = %d, want 400", resp.StatusCode)
	}
}

func TestRequireMerchant_Unauthenticated(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	engine := identity.NewEngine(client, nil)

	app := testutil.NewApp(func(a *fiber.App) {
		a.Get("/dashboard", mw.RequireMerchant(), DashboardHandler(engine, nil))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

// memCache is an in-memory Cache for tests.
type memCache struct {
	m    map[string][]byte
	sets int
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	if b, ok := c.m[key]; ok {
		return b, nil
	}
	return nil, errors.New("cache miss")
}

func (c *memCache) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	c.sets++
	c.m[key] = val
	return nil
}

func TestDashboard_CacheHitKeepsEnvelope(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()

	m, err := client.Merchant.Create().SetShopDomain("cached.example.com").SetName("Cached").Save(ctx)
	if err != nil {
		t.Fatalf("seed merchant: %v", err)
	}

	cfg := &config.Config{}
	cfg.Bot.Threshold = 0.7
	engine := identity.NewEngine(client, config.NewStore(cfg))
	if res := engine.Collect(ctx, signal.RawPayload{
		Shop:            "cached.example.com",
		FingerprintHash: "fp-cache-1",
		CanvasHash:      "c1",
		UserAgent:       "Mozilla/5.0",
		Platform:        "Win32",
		Timezone:        "UTC",
		ScreenWidth:     1280,
		ScreenHeight:    720,
	}, "198.51.100.9"); !res.Success {
		t.Fatalf("collect failed: %+v", res)
	}

	cache := &memCache{m: map[string][]byte{}}
	app := testutil.NewApp(func(a *fiber.App) {
		a.Use(fakeAuth(m.ID))
		a.Get("/dashboard", DashboardHandler(engine, cache))
	})

	get := func() map[string]any {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil), -1)
		if err != nil {
			t.Fatalf("dashboard request: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("dashboard status = %d", resp.StatusCode)
		}
		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return body
	}

	first := get()
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	// a write after the cache fill must not show up within the TTL
	if res := engine.Collect(ctx, signal.RawPayload{
		Shop:            "cached.example.com",
		FingerprintHash: "fp-cache-2",
		CanvasHash:      "c2",
		UserAgent:       "Mozilla/5.0",
		Platform:        "Win32",
		Timezone:        "UTC",
		ScreenWidth:     1280,
		ScreenHeight:    720,
	}, "198.51.100.10"); !res.Success {
		t.Fatalf("collect failed: %+v", res)
	}

	second := get()
	if cache.sets != 1 {
		t.Fatalf("hit should not rewrite the cache, sets = %d", cache.sets)
	}

	// hit and miss serve the same envelope shape
	for _, body := range []map[string]any{first, second} {
		if body["code"] != "OK" || body["message"] != "success" {
			t.Fatalf("envelope missing code/message: %v", body)
		}
		if _, ok := body["request_id"]; !ok {
			t.Fatalf("envelope missing request_id: %v", body)
		}
	}
	fd := first["data"].(map[string]any)
	sd := second["data"].(map[string]any)
	if fd["total_fingerprints"] != sd["total_fingerprints"] {
		t.Fatalf("hit should serve the cached stats: %v vs %v", fd, sd)
	}
}
