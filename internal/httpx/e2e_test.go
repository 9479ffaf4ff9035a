package httpx

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
	"visitor-iq/internal/httpx/kit"
	"visitor-iq/internal/identity"
	"visitor-iq/internal/signal"
)

func newE2EApp(t *testing.T) (*fiber.App, *ent.Client) {
	t.Helper()
	db, err := sql.Open("sqlite", "file:e2e?mode=memory&cache=shared&_fk=1")
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

	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "e2e-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	cfg.Bot.Threshold = 0.7
	cfg.RateLimit.WindowSec = 60
	cfg.RateLimit.Max = 1000
	store := config.NewStore(cfg)

	engine := identity.NewEngine(client, store)
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	RegisterCommonMiddlewares(app)
	Register(app, client, store, engine)
	return app, client
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		buf, _ := json.Marshal(body)
		rd = bytes.NewReader(buf)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestEndToEnd_RegisterCollectDashboard(t *testing.T) {
	app, client := newE2EApp(t)
	defer client.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"shop_domain": "e2e.example.com",
		"name":        "E2E Shop",
		"password":    "Secretp@ssw0rd",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register status = %d", resp.StatusCode)
	}
	var tok struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if tok.Data.AccessToken == "" {
		t.Fatal("no access token")
	}

	resp = doJSON(t, app, http.MethodPost, "/collect", "", signal.RawPayload{
		Shop:                "e2e.example.com",
		FingerprintHash:     "fp-e2e-1",
		CanvasHash:          "c",
		WebglHash:           "w",
		AudioHash:           "a",
		UserAgent:           "Mozilla/5.0",
		Platform:            "Linux x86_64",
		Timezone:            "UTC",
		ScreenWidth:         1280,
		ScreenHeight:        720,
		HardwareConcurrency: 2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("collect status = %d", resp.StatusCode)
	}
	var cr identity.CollectResult
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		t.Fatalf("decode collect: %v", err)
	}
	if !cr.Success || cr.FingerprintID == "" {
		t.Fatalf("collect result: %+v", cr)
	}

	// dashboard requires merchant auth
	resp = doJSON(t, app, http.MethodGet, "/api/v1/dashboard", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated dashboard status = %d, want 401", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/dashboard", tok.Data.AccessToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard status = %d", resp.StatusCode)
	}
	var dash struct {
		Data identity.DashboardStats `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dash.Data.TotalFingerprints != 1 {
		t.Fatalf("dashboard stats: %+v", dash.Data)
	}
}

func TestHealth(t *testing.T) {
	app, client := newE2EApp(t)
	defer client.Close()
	resp := doJSON(t, app, http.MethodGet, "/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}
}
