package controllers

import (
	"errors"

	"inventory-api/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

// fail renders a service error as {"message": ...}. Causes of internal errors are logged, never sent.
func fail(ctx *fiber.Ctx, err error) error {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		log.Error().Err(err).Str("path", ctx.Path()).Msg("unexpected error")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Something went wrong"})
	}
	if svcErr.Kind == services.KindInternal {
		log.Error().Err(svcErr.Err).Str("path", ctx.Path()).Msg(svcErr.Message)
	}
	return ctx.Status(statusFor(svcErr.Kind)).JSON(fiber.Map{"message": svcErr.Message})
}

func message(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{"message": msg})
}

func badBody(ctx *fiber.Ctx) error {
	return message(ctx, fiber.StatusBadRequest, "Invalid request body")
}

// parseBody fills out from the request body. An empty body leaves out untouched so validation reports the missing fields.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if len(ctx.Body()) == 0 {
		return nil
	}
	return ctx.BodyParser(out)
}

// paramID reads the :id route param. Anything that is not a positive integer matches no row.
func paramID(ctx *fiber.Ctx) (uint, bool) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
