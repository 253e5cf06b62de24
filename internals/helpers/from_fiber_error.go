package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converts an in-handler *fiber.Error into the standard JSON
// envelope; anything else becomes a generic 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
