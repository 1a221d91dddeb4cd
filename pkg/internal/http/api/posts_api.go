package api

import (
	"errors"

	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/http/exts"
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/quillapp/quill-server/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "post id must be a number")
	}

	item, err := services.GetPostWithComments(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	viewer := viewerFromContext(c)

	return c.JSON(models.PostView{
		Post:              item,
		IsFollowingAuthor: viewer != nil && services.IsFollowing(viewer.ID, item.AuthorID),
	})
}

func createPost(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	var data struct {
		Text        string   `json:"text" validate:"required"`
		Group       string   `json:"group"`
		Attachments []string `json:"attachments"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Text:        data.Text,
		Attachments: datatypes.NewJSONSlice(data.Attachments),
	}

	if len(data.Group) > 0 {
		group, err := services.GetGroup(data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		item.GroupID = &group.ID
	}

	item, err := services.NewPost(user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func editPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId")

	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !services.CanEditPost(&user, item) {
		return fiber.NewError(fiber.StatusForbidden, "only the author can edit a post")
	}

	var data struct {
		Text        string   `json:"text" validate:"required"`
		Group       string   `json:"group"`
		Attachments []string `json:"attachments"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var groupID *uint
	if len(data.Group) > 0 {
		group, err := services.GetGroup(data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		groupID = &group.ID
	}

	item, err = services.EditPost(item, data.Text, groupID, data.Attachments)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId")

	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !services.CanDeletePost(&user, item) {
		return fiber.NewError(fiber.StatusForbidden, "only the author can delete a post")
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
