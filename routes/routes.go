package routes

import (
	"errors"

	"inventory-api/auth"
	"inventory-api/config"
	"inventory-api/middleware"
	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Dependencies is everything the HTTP layer needs from main.
type Dependencies struct {
	DB     *gorm.DB
	Tokens auth.Provider
	Mailer services.Mailer
}

func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog())
	config.SetupCORS(app)

	api := app.Group(config.MAIN_ROUTES)
	guard := middleware.RequireAuth(deps.Tokens)

	SetupAuthRoutes(api, services.NewAuthService(deps.DB, deps.Tokens, deps.Mailer, config.APP_ENV))
	SetupSupplierRoutes(api, guard, services.NewSupplierService(deps.DB))
	SetupProductRoutes(api, guard, services.NewProductService(deps.DB))
	SetupOrderRoutes(api, guard, services.NewOrderService(deps.DB))

	return app
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Something went wrong"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Error().Err(err).Str("path", ctx.Path()).Msg("unhandled error")
	}
	return ctx.Status(code).JSON(fiber.Map{"message": msg})
}
