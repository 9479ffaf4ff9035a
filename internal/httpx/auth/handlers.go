package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"visitor-iq/ent"
	"visitor-iq/ent/merchant"
	"visitor-iq/internal/config"
	"visitor-iq/internal/httpx/kit"
)

// RegisterHandler creates a merchant account and issues tokens.
//
//	@Summary      Register merchant
//	@Description  Create a merchant account for a shop domain and issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body      auth.RegisterRequest  true  "registration"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/auth/register [post]
func RegisterHandler(store *config.Store, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		req.ShopDomain = strings.ToLower(strings.TrimSpace(req.ShopDomain))
		if req.ShopDomain == "" || len(req.Password) < 8 {
			return kit.BadRequest("shop_domain and password (>=8 chars) required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		hash, err := HashPassword(req.Password)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}
		m, err := client.Merchant.Create().
			SetShopDomain(req.ShopDomain).
			SetName(strings.TrimSpace(req.Name)).
			SetPasswordHash(hash).
			Save(ctx)
		if ent.IsConstraintError(err) {
			return kit.BadRequest("shop already registered", nil)
		}
		if err != nil {
			return kit.InternalError("create merchant failed", err.Error())
		}
		return issueTokens(c, store.Get(), m)
	}
}

// LoginHandler authenticates a merchant by shop domain and password.
//
//	@Summary      Merchant login
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body      auth.LoginRequest  true  "login"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/login [post]
func LoginHandler(store *config.Store, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.ShopDomain == "" || req.Password == "" {
			return kit.BadRequest("shop_domain and password required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		m, err := client.Merchant.Query().
			Where(merchant.ShopDomainEQ(strings.ToLower(strings.TrimSpace(req.ShopDomain)))).
			Only(ctx)
		if ent.IsNotFound(err) || (err == nil && (m.PasswordHash == nil || !VerifyPassword(req.Password, *m.PasswordHash))) {
			return kit.NewAPIError(fiber.StatusUnauthorized, "E_UNAUTHORIZED", "invalid credentials", nil)
		}
		if err != nil {
			return kit.InternalError("query merchant failed", err.Error())
		}
		return issueTokens(c, store.Get(), m)
	}
}

// RefreshHandler rotates the access token using the refresh cookie.
//
//	@Summary      Refresh access token
//	@Tags         auth
//	@Produce      json
//	@Success      200  {object}  auth.TokenResponse
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/auth/refresh [post]
func RefreshHandler(store *config.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := store.Get()
		raw := c.Cookies("refresh_token")
		if raw == "" {
			return kit.NewAPIError(fiber.StatusUnauthorized, "E_UNAUTHORIZED", "missing refresh token", nil)
		}
		claims, err := ParseAndValidate(cfg, raw)
		if err != nil || claims.Kind != "merchant" {
			return kit.NewAPIError(fiber.StatusUnauthorized, "E_UNAUTHORIZED", "invalid refresh token", nil)
		}
		access, _, err := SignAccess(cfg, claims.Subject, "merchant")
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		return kit.OK(c, TokenResponse{
			AccessToken: access,
			TokenType:   "Bearer",
			ExpiresIn:   cfg.JWT.AccessMin * 60,
		})
	}
}

// LogoutHandler clears the refresh cookie.
//
//	@Summary      Logout
//	@Tags         auth
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ClearRefreshCookie(c)
		return kit.OK(c, fiber.Map{"ok": true})
	}
}

func issueTokens(c *fiber.Ctx, cfg *config.Config, m *ent.Merchant) error {
	sub := "merchant:" + m.ID.String()
	access, _, err := SignAccess(cfg, sub, "merchant")
	if err != nil {
		return kit.InternalError("sign access failed", err.Error())
	}
	refresh, _, err := SignRefresh(cfg, sub, "merchant")
	if err != nil {
		return kit.InternalError("sign refresh failed", err.Error())
	}
	SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)
	return kit.OK(c, TokenResponse{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   cfg.JWT.AccessMin * 60,
	})
}
