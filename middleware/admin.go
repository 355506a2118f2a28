package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-Admin-Key"

const adminAuthFailed = "Admin authentication failed."

// AdminGate returns a middleware that only lets through requests presenting
// the configured secret in X-Admin-Key. key is compared in constant time;
// hash, when set, is a bcrypt hash of the secret and is tried as well.
// With neither configured every request is rejected.
func AdminGate(key, hash string) fiber.Handler {
	secret := []byte(key)
	hashed := []byte(hash)

	return func(c *fiber.Ctx) error {
		if len(secret) == 0 && len(hashed) == 0 {
			return DetailResponse(c, fiber.StatusForbidden, adminAuthFailed)
		}

		provided := c.Get(AdminKeyHeader)
		if provided == "" {
			return DetailResponse(c, fiber.StatusForbidden, adminAuthFailed)
		}

		if len(secret) > 0 && subtle.ConstantTimeCompare([]byte(provided), secret) == 1 {
			return c.Next()
		}
		if len(hashed) > 0 && bcrypt.CompareHashAndPassword(hashed, []byte(provided)) == nil {
			return c.Next()
		}
		return DetailResponse(c, fiber.StatusForbidden, adminAuthFailed)
	}
}
