package reports

import (
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/config"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/database"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/flash"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	admin := app.Group("/admin", auth.AuthMiddleware)

	admin.Get("/unpaid", UnpaidPage)
	admin.Get("/summary", SummaryPage)
}

type unpaidRow struct {
	ID     string
	Name   string
	Class  string
	Unpaid float64
}

// UnpaidPage lists every student whose outstanding balance is strictly
// positive.
func UnpaidPage(c *fiber.Ctx) error {
	students, err := database.GetStudents(config.GetDB(), "")
	if err != nil {
		return err
	}

	var rows []unpaidRow
	for _, s := range students {
		if amount := s.Unpaid(); amount > 0 {
			rows = append(rows, unpaidRow{ID: s.ID, Name: s.Name, Class: s.Class, Unpaid: amount})
		}
	}

	return c.Render("unpaid", fiber.Map{
		"Title":       "Unpaid Fees - Bright Horizon",
		"CurrentPage": "unpaid",
		"UnpaidList":  rows,
		"Username":    auth.ActingUsername(c),
		"Notice":      flash.Pop(c),
	})
}

func SummaryPage(c *fiber.Ctx) error {
	summary, err := database.GetSummary(config.GetDB())
	if err != nil {
		return err
	}

	return c.Render("summary", fiber.Map{
		"Title":       "Summary - Bright Horizon",
		"CurrentPage": "summary",
		"Summary":     summary,
		"Username":    auth.ActingUsername(c),
		"Notice":      flash.Pop(c),
	})
}
