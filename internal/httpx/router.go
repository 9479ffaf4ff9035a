// Package httpx wires the HTTP surface: the public collection endpoint,
// merchant auth, and the authenticated reporting API.
package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"visitor-iq/ent"
	"visitor-iq/internal/config"
	"visitor-iq/internal/httpx/auth"
	"visitor-iq/internal/httpx/collect"
	"visitor-iq/internal/httpx/mw"
	"visitor-iq/internal/httpx/reporting"
	"visitor-iq/internal/identity"
	"visitor-iq/internal/redisx"
)

// Providers carries the optional infrastructure handed to the router.
type Providers struct {
	Redis *redisx.Client
}

// Register mounts all routes. The /collect endpoint is registered before
// auth and rate limiting on purpose: it is hit by storefront snippets
// that carry no credentials and must never be throttled into breaking a
// shop page.
func Register(app *fiber.App, client *ent.Client, store *config.Store, engine *identity.Engine, providers ...*Providers) {
	var p *Providers
	if len(providers) > 0 {
		p = providers[0]
	}
	var rdb *redisx.Client
	if p != nil {
		rdb = p.Redis
	}

	app.Post("/collect", collect.Handler(engine))
	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Handlers and middlewares read the store per request so Apollo-driven
	// changes (JWT keys, rate limits) apply without a remount.
	parse := func(token string) (string, string, error) {
		claims, err := auth.ParseAndValidate(store.Get(), token)
		if err != nil {
			return "", "", err
		}
		return claims.Subject, claims.Kind, nil
	}
	limits := func() (int, int) {
		cfg := store.Get()
		return cfg.RateLimit.WindowSec, cfg.RateLimit.Max
	}

	api := app.Group("/api/v1")
	api.Use(mw.JWTMiddlewareDynamic(parse))
	api.Use(mw.RateLimitDefault(rdb, limits))

	api.Post("/auth/register", auth.RegisterHandler(store, client))
	api.Post("/auth/login", auth.LoginHandler(store, client))
	api.Post("/auth/refresh", auth.RefreshHandler(store))
	api.Post("/auth/logout", auth.LogoutHandler())

	var cache reporting.Cache
	if rdb != nil {
		cache = reporting.RedisCache{RDB: rdb}
	}
	reports := api.Group("", mw.RequireMerchant())
	reports.Get("/dashboard", reporting.DashboardHandler(engine, cache))
	reports.Get("/leads", reporting.LeadsHandler(client))
	reports.Get("/leads/hot", reporting.HotLeadsHandler(engine))
	reports.Get("/leads/search", reporting.LeadSearchHandler(engine))
}
