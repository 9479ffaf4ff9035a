// Package collect exposes the public fingerprint collection endpoint
// hit by storefront snippets. It never returns a non-200 status so a
// broken backend cannot break a merchant's storefront.
package collect

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"visitor-iq/internal/identity"
	"visitor-iq/internal/signal"
)

const collectTimeout = 2 * time.Second

// Handler ingests a fingerprint payload from a storefront.
//
//	@Summary      Collect visitor fingerprint
//	@Description  Ingest browser signals, upsert fingerprint, resolve identity
//	@Tags         collect
//	@Accept       json
//	@Produce      json
//	@Param        body  body      signal.RawPayload  true  "browser signals"
//	@Success      200   {object}  identity.CollectResult
//	@Router       /collect [post]
func Handler(engine *identity.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw signal.RawPayload
		if err := c.BodyParser(&raw); err != nil {
			return c.JSON(identity.CollectResult{Success: false, Error: identity.ErrMsgInvalidPayload})
		}
		ctx, cancel := context.WithTimeout(c.Context(), collectTimeout)
		defer cancel()
		return c.JSON(engine.Collect(ctx, raw, clientIP(c)))
	}
}

// clientIP prefers proxy headers over the socket peer address.
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if real := c.Get("X-Real-IP"); real != "" {
		return strings.TrimSpace(real)
	}
	return c.IP()
}
