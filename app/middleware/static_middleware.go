package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PlugStatic guards the static chat page mount. Probes for /.well-known
// under the static prefix get a flat JSON answer instead of a 404 page.
func PlugStatic(staticPrefix string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		if strings.HasPrefix(path, staticPrefix) {
			if strings.HasPrefix(path, "/.well-known/") {
				return c.JSON(fiber.Map{
					"status": "ignored dynamic-static",
				})
			}
		}

		return c.Next()
	}
}
