package dashboard

import (
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/config"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/database"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/flash"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/models"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", HomePage)
	app.Get("/admin", auth.AuthMiddleware, DashboardPage)
	app.Get("/api/stats/class", auth.AuthMiddleware, ClassStatsAPI)
}

func HomePage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":  "Bright Horizon Tuition Center",
		"Notice": flash.Pop(c),
	})
}

// DashboardPage shows per-class fee statistics, global collected and
// outstanding totals, and the six most recently added students.
func DashboardPage(c *fiber.Ctx) error {
	db := config.GetDB()

	all, err := database.GetStudents(db, "")
	if err != nil {
		return err
	}
	stats := models.BuildClassStats(all)
	collected, outstanding := models.Totals(stats)

	latest, err := database.GetLatestStudents(db, 6)
	if err != nil {
		return err
	}

	return c.Render("dashboard", fiber.Map{
		"Title":            "Dashboard - Bright Horizon",
		"CurrentPage":      "dashboard",
		"ClassStats":       stats,
		"TotalCollected":   collected,
		"TotalOutstanding": outstanding,
		"LatestStudents":   latest,
		"Username":         auth.ActingUsername(c),
		"Notice":           flash.Pop(c),
	})
}

// ClassStatsAPI returns chart data as parallel series, one entry per
// distinct class.
func ClassStatsAPI(c *fiber.Ctx) error {
	all, err := database.GetStudents(config.GetDB(), "")
	if err != nil {
		return err
	}
	series := models.BuildClassSeries(models.BuildClassStats(all))
	return c.JSON(series)
}
