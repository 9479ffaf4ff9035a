package auth

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
	testutil "visitor-iq/internal/httpx/kit/testutil"
)

func newTestApp(t *testing.T, client *ent.Client, store *config.Store) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		func(app *fiber.App) { app.Post("/auth/register", RegisterHandler(store, client)) },
		func(app *fiber.App) { app.Post("/auth/login", LoginHandler(store, client)) },
		func(app *fiber.App) { app.Post("/auth/refresh", RefreshHandler(store)) },
	)
}

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:ent?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
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

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	return cfg
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func TestRegisterThenLogin(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	cfg := newTestConfig()
	store := config.NewStore(cfg)
	app := newTestApp(t, client, store)

	resp := postJSON(t, app, "/auth/register", RegisterRequest{
		ShopDomain: "Acme.MyShopify.com",
		Name:       "Acme",
		Password:   "Secretp@ssw0rd",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register status = %d", resp.StatusCode)
	}

	// shop domain is normalized to lower case on registration
	resp = postJSON(t, app, "/auth/login", LoginRequest{
		ShopDomain: "acme.myshopify.com",
		Password:   "Secretp@ssw0rd",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var body struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.AccessToken == "" {
		t.Fatal("expected access token")
	}

	claims, err := ParseAndValidate(cfg, body.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Kind != "merchant" {
		t.Fatalf("kind = %q, want merchant", claims.Kind)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	cfg := newTestConfig()
	store := config.NewStore(cfg)
	app := newTestApp(t, client, store)

	postJSON(t, app, "/auth/register", RegisterRequest{
		ShopDomain: "shop.example.com",
		Password:   "rightpassword",
	})

	resp := postJSON(t, app, "/auth/login", LoginRequest{
		ShopDomain: "shop.example.com",
		Password:   "wrongpassword",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRegister_DuplicateShop(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	cfg := newTestConfig()
	store := config.NewStore(cfg)
	app := newTestApp(t, client, store)

	req := RegisterRequest{ShopDomain: "dup.example.com", Password: "Secretp@ssw0rd"}
	if resp := postJSON(t, app, "/auth/register", req); resp.StatusCode != http.StatusOK {
		t.Fatalf("first register status = %d", resp.StatusCode)
	}
	if resp := postJSON(t, app, "/auth/register", req); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", resp.StatusCode)
	}
}

func TestHashVerifyPassword(t *testing.T) {
	h, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("s3cret-pass", h) {
		t.Fatal("expected password to verify")
	}
	if VerifyPassword("other", h) {
		t.Fatal("wrong password verified")
	}
}

func TestLogin_UsesLiveConfig(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	cfg := newTestConfig()
	store := config.NewStore(cfg)
	app := newTestApp(t, client, store)

	postJSON(t, app, "/auth/register", RegisterRequest{
		ShopDomain: "live.example.com",
		Password:   "Secretp@ssw0rd",
	})

	// rotate the signing secret through the store, as an apollo push would
	rotated := *cfg
	rotated.JWT.HSSecret = "rotated-secret"
	store.Update(&rotated, map[string]bool{"jwt.hs_secret": true})

	resp := postJSON(t, app, "/auth/login", LoginRequest{
		ShopDomain: "live.example.com",
		Password:   "Secretp@ssw0rd",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var body struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if _, err := ParseAndValidate(&rotated, body.Data.AccessToken); err != nil {
		t.Fatalf("token should verify with rotated secret: %v", err)
	}
	if _, err := ParseAndValidate(cfg, body.Data.AccessToken); err == nil {
		t.Fatal("token verified with the stale secret")
	}
}
