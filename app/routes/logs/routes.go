package logs

import (
	"fmt"

	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/config"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/database"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/flash"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

const logPageSize = 200

func SetupLogRoutes(app *fiber.App) {
	app.Get("/admin/logs", auth.AuthMiddleware, LogsPage)
}

type logRow struct {
	At      string
	Action  string
	Details string
	By      string
}

// LogsPage shows the most recent audit entries, newest first.
func LogsPage(c *fiber.Ctx) error {
	entries, err := database.GetLatestLogs(config.GetDB(), logPageSize)
	if err != nil {
		return err
	}

	rows := make([]logRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, logRow{
			At:      entry.At.Format("2006-01-02 15:04:05"),
			Action:  entry.Action,
			Details: fmt.Sprintf("%v", entry.Details),
			By:      entry.By,
		})
	}

	return c.Render("logs", fiber.Map{
		"Title":       "Audit Logs - Bright Horizon",
		"CurrentPage": "logs",
		"Logs":        rows,
		"Username":    auth.ActingUsername(c),
		"Notice":      flash.Pop(c),
	})
}
