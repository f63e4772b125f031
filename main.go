package main

import (
	"encoding/json"
	"log"

	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/config"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/database"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/auth"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/dashboard"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/logs"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/reports"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/students"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders error templates for web requests and JSON for
// API requests
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 403:
		return c.Status(403).Render("403", fiber.Map{
			"Title":       "Forbidden - Bright Horizon",
			"CurrentPage": "",
		})
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Bright Horizon",
			"CurrentPage": "",
		})
	default:
		return c.Status(code).Render("500", fiber.Map{
			"Title":        "Server Error - Bright Horizon",
			"CurrentPage":  "",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Load configuration and connect to the database
	config.Load()
	defer config.GetDB().Close()

	// Ensure database schema
	if err := database.EnsureSchema(config.GetDB()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	// First-run admin bootstrap
	cfg := config.AppConfig
	if err := database.EnsureAdmin(config.GetDB(), cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash); err != nil {
		log.Fatal("Failed to bootstrap admin:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static assets
	app.Static("/static", "./static")

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes (includes landing page and chart API)
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentRoutes(app)

	// Setup report routes
	reports.SetupReportRoutes(app)

	// Setup audit log routes
	logs.SetupLogRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
