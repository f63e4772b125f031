package auth

import (
	"database/sql"
	"strings"
	"time"

	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/config"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/database"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/flash"
	"github.com/gofiber/fiber/v2"
)

const sessionCookie = "session_token"

// Both unknown usernames and wrong passwords surface this exact message so
// the response never reveals which part was wrong.
const invalidCredentialsMessage = "Invalid credentials"

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/login", ShowLoginPage)
	app.Post("/login", LoginAPI)
	app.Get("/logout", AuthMiddleware, LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies(sessionCookie); tokenString != "" {
		if _, err := ValidateSessionToken(tokenString); err == nil {
			return c.Redirect("/admin")
		}
	}

	return c.Render("login", fiber.Map{
		"Title":  "Login - Bright Horizon",
		"Notice": flash.Pop(c),
	})
}

func LoginAPI(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	admin, err := database.GetAdminByUsername(config.GetDB(), username)
	if err != nil {
		if err == sql.ErrNoRows {
			flash.Set(c, "error", invalidCredentialsMessage)
			return c.Redirect("/login")
		}
		return err
	}

	if !CheckPasswordHash(password, admin.PasswordHash) {
		flash.Set(c, "error", invalidCredentialsMessage)
		return c.Redirect("/login")
	}

	token, err := GenerateSessionToken(admin.ID, admin.Username)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	// Replaces any stale "please log in" notice so only the fresh
	// confirmation shows after the redirect.
	flash.Set(c, "success", "Logged in")
	return c.Redirect("/admin")
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	flash.Set(c, "info", "Logged out")
	return c.Redirect("/login")
}

// AuthMiddleware validates the session cookie and sets the acting admin on
// the request context. Pages redirect to the login form when the session is
// absent or expired; /api/ paths get a 401 instead.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(sessionCookie)

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No session found"})
		}
		flash.Set(c, "info", "Please log in to access this page.")
		return c.Redirect("/login")
	}

	claims, err := ValidateSessionToken(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
		}
		flash.Set(c, "info", "Please log in to access this page.")
		return c.Redirect("/login")
	}

	c.Locals("admin_id", claims.AdminID)
	c.Locals("username", claims.Username)

	return c.Next()
}

// ActingUsername returns the session admin's username, or "system" outside
// an authenticated session. Used as the actor on audit entries.
func ActingUsername(c *fiber.Ctx) string {
	if username, ok := c.Locals("username").(string); ok && username != "" {
		return username
	}
	return "system"
}
