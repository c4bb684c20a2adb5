package security

import "github.com/gofiber/fiber/v2"

// APIKeyGuard rejects requests missing the configured key. An empty key
// leaves the API open, which is the default for classroom deployments.
func APIKeyGuard(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}
		if c.Get("X-API-Key") != apiKey {
			return c.Status(401).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}
