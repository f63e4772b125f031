package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("hello " + ActingUsername(c))
	})
	app.Get("/api/stats/class", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestAuthMiddlewareRedirectsAnonymousPages(t *testing.T) {
	app := newGatedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// A transient "please log in" notice rides along on the redirect.
	cookies := resp.Header.Values("Set-Cookie")
	var flashCookie string
	for _, cookie := range cookies {
		if len(cookie) >= 6 && cookie[:6] == "flash=" {
			flashCookie = cookie
		}
	}
	require.NotEmpty(t, flashCookie)
	decoded, err := url.QueryUnescape(flashCookie)
	require.NoError(t, err)
	assert.Contains(t, decoded, "Please log in to access this page.")
}

func TestAuthMiddlewareRejectsAnonymousAPI(t *testing.T) {
	app := newGatedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stats/class", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	app := newGatedApp()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "not-a-token"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAuthMiddlewarePassesValidSession(t *testing.T) {
	app := newGatedApp()

	token, err := GenerateSessionToken("admin-id-1", "fairoz")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestActingUsernameDefaultsToSystem(t *testing.T) {
	app := fiber.New()
	app.Get("/who", func(c *fiber.Ctx) error {
		return c.SendString(ActingUsername(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/who", nil))
	require.NoError(t, err)

	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "system", string(body[:n]))
}
