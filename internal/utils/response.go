package utils

import "github.com/gofiber/fiber/v2"

// JSONMessage writes the {"message": ...} envelope the site's frontend
// expects on every non-payload response, errors included.
func JSONMessage(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func JSONError(c *fiber.Ctx, status int, msg string) error {
	return JSONMessage(c, status, msg)
}
