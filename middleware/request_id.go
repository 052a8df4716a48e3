package middleware

import (
	"regexp"

	"inventory-api/idgen"

	"github.com/gofiber/fiber/v2"
)

const RequestIDHeader = "X-Request-ID"

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// RequestID reuses the caller's X-Request-ID when it is a short token of letters, digits,
// '-' or '_'. Anything else is replaced by a snowflake id. The id is echoed back.
func RequestID() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = idgen.Generate().String()
		}
		ctx.Locals("requestID", id)
		ctx.Set(RequestIDHeader, id)
		return ctx.Next()
	}
}
