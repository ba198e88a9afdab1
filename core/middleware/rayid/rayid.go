// Package rayid assigns a unique request ID to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the RayID.
const HeaderName = "X-Ray-Id"

// LocalsKey is the Fiber locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New creates the RayID middleware. An incoming X-Ray-Id header is
// honored so upstream proxies can correlate; otherwise a fresh UUID is
// generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
