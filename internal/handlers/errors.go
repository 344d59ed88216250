package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// devMode reports whether verbose error bodies are enabled.
func devMode() bool {
	return viper.GetString("APP_ENV") == "development"
}

// validationFailed writes the 400 response for a failed struct validation,
// naming each offending field and the rule it broke.
func validationFailed(c *fiber.Ctx, err error) error {
	errorMessages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"errors": errorMessages,
	})
}

// internalError logs the fault server-side and writes a 500 body. The
// underlying message is only exposed in development.
func internalError(c *fiber.Ctx, label string, err error) error {
	log.Printf("%s: %v", label, err)
	body := fiber.Map{"error": label}
	if devMode() {
		body["message"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// ErrorHandler is the app-level last-resort handler for errors that escape
// the route handlers (including panics surfaced by the recover middleware).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}
	return internalError(c, "Internal server error", err)
}

// NotFoundHandler answers requests that matched no registered route.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "Endpoint not found",
		"message": fmt.Sprintf("Cannot %s %s", c.Method(), c.Path()),
	})
}
