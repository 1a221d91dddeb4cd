package api

import (
	"errors"

	"github.com/quillapp/quill-server/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func listGlobalFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	result, err := services.ComposeFeed(viewerFromContext(c), services.FeedGlobal, "", page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}

func listGroupFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	slug := c.Params("slug")

	result, err := services.ComposeFeed(viewerFromContext(c), services.FeedGroup, slug, page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}

func listAuthorFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	username := c.Params("username")

	result, err := services.ComposeFeed(viewerFromContext(c), services.FeedAuthor, username, page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}

func listSubscriptionFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	viewer := viewerFromContext(c)
	if viewer == nil {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	result, err := services.ComposeFeed(viewer, services.FeedSubscriptions, "", page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}
