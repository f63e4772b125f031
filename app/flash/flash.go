// Package flash carries one-shot notices across redirects in a cookie, so a
// POST handler can leave a message for the next rendered page. Only one
// notice is pending at a time; setting a new one replaces it.
package flash

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "flash"

// Notice is a transient message with a styling category
// (success, info, warning or error).
type Notice struct {
	Category string
	Message  string
}

// Set replaces any pending notice.
func Set(c *fiber.Ctx, category, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(category + "|" + message),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Pop returns the pending notice, if any, and clears it.
func Pop(c *fiber.Ctx) *Notice {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return nil
	}
	Clear(c)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	category, message, ok := strings.Cut(decoded, "|")
	if !ok {
		return &Notice{Category: "info", Message: decoded}
	}
	return &Notice{Category: category, Message: message}
}

// Clear drops any pending notice without reading it.
func Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
