package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AccessLog writes one line per request once the rest of the chain has answered.
func AccessLog() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		chainErr := ctx.Next()

		status := ctx.Response().StatusCode()
		if chainErr != nil {
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		var event *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			event = log.Error()
		case status >= fiber.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event = event.
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Int("status", status).
			Dur("latency", time.Since(start))
		if id, ok := ctx.Locals("requestID").(string); ok {
			event = event.Str("request_id", id)
		}
		if userID, ok := ctx.Locals("userID").(uint); ok {
			event = event.Uint("user_id", userID)
		}
		event.Msg("request")

		return chainErr
	}
}
