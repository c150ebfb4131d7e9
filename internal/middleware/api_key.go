package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Ananth-NQI/scam-honeypot/internal/config"
)

// RequireAPIKey rejects requests whose credential header does not match the
// configured key. Nothing after this handler runs on a mismatch.
func RequireAPIKey(auth config.Auth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		credential, ok := extractCredential(c.Get(auth.Header), auth.Scheme)
		if !ok || credential != auth.APIKey {
			log.Printf("🔒 Rejected %s %s from %s: invalid API key", c.Method(), c.Path(), c.IP())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}

// extractCredential pulls the secret out of the header value for the scheme
func extractCredential(value, scheme string) (string, bool) {
	if value == "" {
		return "", false
	}

	if scheme != config.SchemeBearer {
		return value, true
	}

	const prefix = "Bearer "
	if len(value) <= len(prefix) || !strings.EqualFold(value[:len(prefix)], prefix) {
		return "", false
	}
	return value[len(prefix):], true
}
