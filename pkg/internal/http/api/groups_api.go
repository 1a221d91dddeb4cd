package api

import (
	"errors"

	"github.com/quillapp/quill-server/pkg/internal/http/exts"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/quillapp/quill-server/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func listGroup(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	groups, err := services.ListGroup(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func getGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(group)
}

func createGroup(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	var data struct {
		Title       string `json:"title" validate:"required"`
		Slug        string `json:"slug" validate:"max=100"`
		Description string `json:"description"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Title, data.Slug, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func editGroup(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err = services.EditGroup(group, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(group)
}

func deleteGroup(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
