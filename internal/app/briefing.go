package app

import "github.com/gofiber/fiber/v2"

// Static mission text for the briefing tab.
var briefing = fiber.Map{
	"title":    "Best Manager Simulation: The Grand Tech Summit",
	"scenario": "You are the Event Manager for the annual Tech Summit.",
	"goal":     "Maximize the Event Success Score. Profit carries 50% weight, attendee satisfaction the other 50%.",
	"relationships": []string{
		"Higher price lowers attendance.",
		"Higher marketing raises awareness and attendance, with diminishing returns.",
		"Venue capacity is a hard limit on attendance.",
		"Staffing and catering drive satisfaction but increase costs.",
	},
	"warnings": []string{
		"Overfilling a venue triggers crowding penalties.",
		"External risks like rain can ruin a good plan if not anticipated.",
	},
}

func briefingHandler(c *fiber.Ctx) error {
	return c.JSON(briefing)
}
