package market

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, history *History) {

	r.Get("/market/history", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"samples": history.Samples(),
		})
	})
}
