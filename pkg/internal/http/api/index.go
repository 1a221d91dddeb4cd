package api

import (
	"github.com/quillapp/quill-server/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		feed := api.Group("/feed").Name("Feed API")
		{
			feed.Get("/", listGlobalFeed)
			feed.Get("/subscribed", listSubscriptionFeed)
			feed.Get("/groups/:slug", listGroupFeed)
			feed.Get("/users/:username", listAuthorFeed)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Post("/", createPost)
			posts.Get("/:postId", getPost)
			posts.Put("/:postId", editPost)
			posts.Delete("/:postId", deletePost)
			posts.Get("/:postId/comments", listPostComments)
			posts.Post("/:postId/comments", createPostComment)
		}

		groups := api.Group("/groups").Name("Groups API")
		{
			groups.Get("/", listGroup)
			groups.Post("/", createGroup)
			groups.Get("/:slug", getGroup)
			groups.Put("/:slug", editGroup)
			groups.Delete("/:slug", deleteGroup)
		}

		users := api.Group("/users").Name("Users API")
		{
			users.Get("/:username", getUserProfile)
			users.Post("/:username/follow", followUser)
			users.Delete("/:username/follow", unfollowUser)
		}
	}
}

func viewerFromContext(c *fiber.Ctx) *models.Account {
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		return &user
	}
	return nil
}
