// Package rayid provides a middleware that tags every request with a unique
// ray ID, stored in locals and echoed in the X-Ray-Id response header so
// client reports can be correlated with server logs.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// New returns the ray ID middleware. An inbound X-Ray-Id header is honored
// so upstream proxies can propagate their own correlation IDs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Ray-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set("X-Ray-Id", rid)
		return c.Next()
	}
}
