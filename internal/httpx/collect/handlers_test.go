package collect

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"visitor-iq/ent"
	"visitor-iq/internal/config"
	"visitor-iq/internal/httpx/kit/testutil"
	"visitor-iq/internal/identity"
	"visitor-iq/internal/signal"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:collect?mode=memory&cache=shared&_fk=1")
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

func newTestApp(t *testing.T, client *ent.Client) *fiber.App {
	t.Helper()
	cfg := &config.Config{}
	cfg.Bot.Threshold = 0.7
	engine := identity.NewEngine(client, config.NewStore(cfg))
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/collect", Handler(engine))
	})
}

func post(t *testing.T, app *fiber.App, body any) identity.CollectResult {
	t.Helper()
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/collect", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 always", resp.StatusCode)
	}
	var out identity.CollectResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestCollect_UnknownShop(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	app := newTestApp(t, client)

	out := post(t, app, signal.RawPayload{Shop: "nobody.example.com", FingerprintHash: "abc"})
	if out.Success || out.Error != identity.ErrMsgUnknownShop {
		t.Fatalf("got %+v, want soft failure %q", out, identity.ErrMsgUnknownShop)
	}
	if out.FingerprintID != "" || out.IsBot != nil {
		t.Fatalf("failure response must not carry result fields: %+v", out)
	}
}

func TestCollect_ReturningVisitor(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	if _, err := client.Merchant.Create().SetShopDomain("ret.example.com").SetName("Ret").Save(context.Background()); err != nil {
		t.Fatalf("seed merchant: %v", err)
	}
	app := newTestApp(t, client)

	payload := signal.RawPayload{
		Shop:                "ret.example.com",
		FingerprintHash:     "fp-ret-1",
		CanvasHash:          "c1",
		WebglHash:           "w1",
		AudioHash:           "a1",
		UserAgent:           "Mozilla/5.0",
		Platform:            "MacIntel",
		Timezone:            "Europe/Berlin",
		ScreenWidth:         1440,
		ScreenHeight:        900,
		HardwareConcurrency: 8,
	}
	first := post(t, app, payload)
	if !first.Success || first.VisitCount != 1 || first.IsReturning == nil || *first.IsReturning {
		t.Fatalf("first visit: %+v", first)
	}
	second := post(t, app, payload)
	if !second.Success || second.VisitCount != 2 || second.IsReturning == nil || !*second.IsReturning {
		t.Fatalf("second visit: %+v", second)
	}
	if first.FingerprintID != second.FingerprintID {
		t.Fatal("same signals must map to the same fingerprint")
	}
}

func TestCollect_MalformedBody(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	app := newTestApp(t, client)

	req := httptest.NewRequest(http.MethodPost, "/collect", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out identity.CollectResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Success || out.Error != identity.ErrMsgInvalidPayload {
		t.Fatalf("got %+v", out)
	}
}

func TestClientIP_ForwardedFor(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = clientIP(c)
		return c.SendStatus(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if _, err := app.Test(req, -1); err != nil {
		t.Fatalf("request: %v", err)
	}
	if got != "203.0.113.9" {
		t.Fatalf("clientIP = %q", got)
	}
}
