package api

import (
	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/http/exts"
	"github.com/quillapp/quill-server/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listPostComments(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId")
	page := c.QueryInt("page", 1)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	result, err := services.ListCommentPage(item.ID, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}

func createPostComment(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId")

	user := viewerFromContext(c)
	if !services.CanComment(user) {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Text string `json:"text" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.NewComment(*user, item, data.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(comment)
}
