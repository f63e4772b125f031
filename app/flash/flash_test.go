package flash

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlashApp() *fiber.App {
	app := fiber.New()
	app.Get("/stale-then-fresh", func(c *fiber.Ctx) error {
		Set(c, "info", "Please log in to access this page.")
		Set(c, "success", "Logged in")
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/pop", func(c *fiber.Ctx) error {
		notice := Pop(c)
		if notice == nil {
			return c.SendString("none")
		}
		return c.SendString(notice.Category + ":" + notice.Message)
	})
	return app
}

func flashCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "flash" {
			return cookie
		}
	}
	return nil
}

// Setting a fresh notice replaces a pending one, so after login only the
// confirmation survives.
func TestSetReplacesPendingNotice(t *testing.T) {
	app := newFlashApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stale-then-fresh", nil))
	require.NoError(t, err)

	cookie := flashCookie(resp)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/pop", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "success:Logged in", string(body))
}

func TestPopClearsNotice(t *testing.T) {
	app := newFlashApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stale-then-fresh", nil))
	require.NoError(t, err)
	cookie := flashCookie(resp)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/pop", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)

	// The pop response expires the cookie.
	cleared := flashCookie(resp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestPopWithoutNotice(t *testing.T) {
	app := newFlashApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pop", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "none", string(body))
}
