package exts

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

// BindAndValidate parses the request body into out and checks its validate
// tags. Failures surface as field-level bad request errors so the caller can
// re-render the form with the entered data preserved.
func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err := validation.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}
