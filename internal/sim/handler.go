package sim

import "github.com/gofiber/fiber/v2"

// Slider bounds for the dashboard controls. Presentation hints only;
// the engine accepts any non-negative finite value.
var controls = fiber.Map{
	"price":     fiber.Map{"min": 50, "max": 500, "default": 250, "step": 10},
	"marketing": fiber.Map{"min": 0, "max": 100000, "default": 20000, "step": 1000},
}

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/simulate", func(c *fiber.Ctx) error {

		var body Decision
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		out, err := service.Evaluate(body)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(out)
	})

	r.Get("/catalog", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"catalog":  service.Catalog(),
			"controls": controls,
		})
	})
}
