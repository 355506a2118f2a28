package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// DetailResponse writes a non-field error as {"detail": message}.
func DetailResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"detail": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, fieldErrors map[string][]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, fieldErrors)
}

// ErrorHandler renders anything a handler returns unhandled. *fiber.Error
// keeps its status, everything else is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error!"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	return DetailResponse(c, code, message)
}
