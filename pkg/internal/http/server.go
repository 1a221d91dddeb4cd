package http

import (
	"strings"

	"github.com/quillapp/quill-server/pkg/internal/http/api"
	"github.com/quillapp/quill-server/pkg/internal/security"
	"github.com/quillapp/quill-server/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// IReader verifies viewer tokens issued by the auth subsystem. When it is
// nil every request is treated as anonymous.
var IReader *security.TokenReader

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Quill",
		AppName:               "Quill",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             50 * 1024 * 1024,
	})

	app.Use(authMiddleware)

	api.MapAPIs(app, "/api")

	return &App{app}
}

// authMiddleware resolves the current viewer. Requests without a verifiable
// bearer token proceed anonymously; the route handlers decide whether that
// is acceptable.
func authMiddleware(c *fiber.Ctx) error {
	if IReader == nil {
		return c.Next()
	}

	header := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		claims, err := IReader.ReadToken(token)
		if err != nil {
			log.Debug().Err(err).Msg("Rejected a viewer token...")
		} else if account, err := services.EnsureAccount(claims); err != nil {
			log.Warn().Err(err).Msg("An error occurred when ensuring viewer account...")
		} else {
			c.Locals("user", account)
		}
	}

	return c.Next()
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}
