package controllers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// pathParam reads and unescapes a route parameter. Subject and topic names
// contain spaces, so they arrive percent-encoded.
func pathParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
