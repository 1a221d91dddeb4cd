package api

import (
	"errors"

	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/quillapp/quill-server/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func getUserProfile(c *fiber.Ctx) error {
	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	viewer := viewerFromContext(c)

	return c.JSON(fiber.Map{
		"account":         author,
		"total_followers": services.CountFollowers(author.ID),
		"total_following": services.CountFollowing(author.ID),
		"is_following":    viewer != nil && services.IsFollowing(viewer.ID, author.ID),
	})
}

func followUser(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Self-follow and duplicate follow are silent no-ops with a zero delta.
	delta, err := services.FollowAuthor(user, author)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Debug().
		Uint("user", user.ID).
		Uint("author", author.ID).
		Int64("delta", delta).
		Msg("Processed a follow request.")

	return c.SendStatus(fiber.StatusNoContent)
}

func unfollowUser(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	delta, err := services.UnfollowAuthor(user, author)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Debug().
		Uint("user", user.ID).
		Uint("author", author.ID).
		Int64("delta", delta).
		Msg("Processed an unfollow request.")

	return c.SendStatus(fiber.StatusNoContent)
}
