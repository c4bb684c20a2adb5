package export

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Saannndddyyyyy/best-manager/internal/sim"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/export", func(c *fiber.Ctx) error {

		type Req struct {
			TeamName string       `json:"team_name"`
			Decision sim.Decision `json:"decision"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		name, data, err := service.Submission(body.TeamName, body.Decision)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Set(fiber.HeaderContentType, xlsxMIME)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
		return c.Send(data)
	})
}
