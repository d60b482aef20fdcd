package handlers

import (
	"errors"

	"grocer/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fail maps a service or repository error to the API's error shape. The
// fallback message keeps internals out of 500 responses.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrPaymentDeclined),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, models.ErrInvalidCredential):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
}

// validationFail renders validator errors as a 400 with per-field reasons.
func validationFail(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, e := range verrs {
			fields[e.Field()] = "failed on the '" + e.Tag() + "' rule"
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fields,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}
