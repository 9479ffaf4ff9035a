// Package mw contains HTTP middleware including authentication and rate limiting.
package mw

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AuthContext holds authentication details extracted from JWT.
type AuthContext struct {
	Subject    string // merchant:<uuid>
	Kind       string // merchant
	MerchantID uuid.UUID
}

// TokenParser parses a token string and returns subject and kind.
type TokenParser func(token string) (sub string, kind string, err error)

// JWTMiddlewareDynamic attaches auth context parsed by the given token parser.
func JWTMiddlewareDynamic(parse TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return c.Next()
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		sub, kind, err := parse(token)
		if err != nil || sub == "" {
			return c.Next()
		}
		ac := &AuthContext{Subject: sub, Kind: kind}
		if kind == "merchant" {
			if id, err := uuid.Parse(strings.TrimPrefix(sub, "merchant:")); err == nil {
				ac.MerchantID = id
			}
		}
		c.Locals("auth", ac)
		return c.Next()
	}
}

// RequireMerchant enforces an authenticated merchant context.
func RequireMerchant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.Kind != "merchant" || ac.MerchantID == uuid.Nil {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// MerchantID returns the authenticated merchant id, or uuid.Nil when the
// request is unauthenticated.
func MerchantID(c *fiber.Ctx) uuid.UUID {
	if ac, _ := c.Locals("auth").(*AuthContext); ac != nil {
		return ac.MerchantID
	}
	return uuid.Nil
}
