package students

import (
	"database/sql"
	"strings"
	"time"

	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/config"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/database"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/flash"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/models"
	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/routes/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

func SetupStudentRoutes(app *fiber.App) {
	admin := app.Group("/admin", auth.AuthMiddleware)

	admin.Get("/students", StudentsListPage)
	admin.Get("/student/add", AddStudentPage)
	admin.Post("/student/add", AddStudentAPI)
	admin.Get("/student/:id/edit", EditStudentPage)
	admin.Post("/student/:id/edit", UpdateStudentAPI)
	admin.Post("/student/:id/delete", DeleteStudentAPI)
	admin.Post("/student/:id/add_payment", AddPaymentAPI)
}

type studentForm struct {
	Name     string `validate:"required"`
	Class    string
	Contact  string
	TotalFee float64
}

// parseStudentForm reads the submitted fields, normalizing the name and
// coercing an unparsable fee to 0. Validation only rejects an empty name.
func parseStudentForm(c *fiber.Ctx) (*studentForm, error) {
	form := &studentForm{
		Name:     CleanName(c.FormValue("name")),
		Class:    strings.TrimSpace(c.FormValue("class")),
		Contact:  strings.TrimSpace(c.FormValue("contact")),
		TotalFee: ParseAmount(c.FormValue("total_fee")),
	}
	if err := validate.Struct(form); err != nil {
		return nil, err
	}
	return form, nil
}

func StudentsListPage(c *fiber.Ctx) error {
	db := config.GetDB()
	selectedClass := c.Query("class")

	students, err := database.GetStudents(db, selectedClass)
	if err != nil {
		return err
	}
	classes, err := database.GetDistinctClasses(db)
	if err != nil {
		return err
	}

	return c.Render("students_list", fiber.Map{
		"Title":         "Students - Bright Horizon",
		"CurrentPage":   "students",
		"Students":      students,
		"Classes":       classes,
		"SelectedClass": selectedClass,
		"Username":      auth.ActingUsername(c),
		"Notice":        flash.Pop(c),
	})
}

func AddStudentPage(c *fiber.Ctx) error {
	return c.Render("student_form", fiber.Map{
		"Title":       "Add Student - Bright Horizon",
		"CurrentPage": "students",
		"Action":      "Add",
		"Student":     nil,
		"Username":    auth.ActingUsername(c),
		"Notice":      flash.Pop(c),
	})
}

func AddStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	form, err := parseStudentForm(c)
	if err != nil {
		flash.Set(c, "warning", "Student name is required")
		return c.Redirect("/admin/student/add")
	}

	student := &models.Student{
		Name:     form.Name,
		Class:    form.Class,
		Contact:  form.Contact,
		TotalFee: form.TotalFee,
	}

	err = database.CreateStudent(db, student)
	if err == database.ErrDuplicateStudent {
		flash.Set(c, "warning", "A student with this name already exists in this class!")
		return c.Redirect("/admin/student/add")
	}
	if err != nil {
		return err
	}

	database.LogAction(db, "add_student", fiber.Map{"student_id": student.ID, "name": student.Name}, auth.ActingUsername(c))
	flash.Set(c, "success", "Student added")
	return c.Redirect("/admin/students")
}

func EditStudentPage(c *fiber.Ctx) error {
	db := config.GetDB()
	id := c.Params("id")

	student, err := loadStudent(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			flash.Set(c, "error", "Student not found")
			return c.Redirect("/admin/students")
		}
		return err
	}

	return c.Render("student_form", fiber.Map{
		"Title":       "Edit Student - Bright Horizon",
		"CurrentPage": "students",
		"Action":      "Edit",
		"Student":     student,
		"Username":    auth.ActingUsername(c),
		"Notice":      flash.Pop(c),
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	id := c.Params("id")

	student, err := loadStudent(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			flash.Set(c, "error", "Student not found")
			return c.Redirect("/admin/students")
		}
		return err
	}

	form, err := parseStudentForm(c)
	if err != nil {
		flash.Set(c, "warning", "Student name is required")
		return c.Redirect("/admin/student/" + id + "/edit")
	}

	student.Name = form.Name
	student.Class = form.Class
	student.Contact = form.Contact
	student.TotalFee = form.TotalFee

	err = database.UpdateStudent(db, student)
	if err == database.ErrDuplicateStudent {
		flash.Set(c, "warning", "Another student with this name already exists in this class!")
		return c.Redirect("/admin/student/" + id + "/edit")
	}
	if err != nil {
		return err
	}

	database.LogAction(db, "edit_student", fiber.Map{"student_id": id}, auth.ActingUsername(c))
	flash.Set(c, "success", "Student updated")
	return c.Redirect("/admin/students")
}

// DeleteStudentAPI removes the student; an unknown id is a silent no-op and
// still takes the success path.
func DeleteStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	id := c.Params("id")

	if _, err := uuid.Parse(id); err == nil {
		if err := database.DeleteStudent(db, id); err != nil {
			return err
		}
	}

	database.LogAction(db, "delete_student", fiber.Map{"student_id": id}, auth.ActingUsername(c))
	flash.Set(c, "success", "Student deleted")
	return c.Redirect("/admin/students")
}

// AddPaymentAPI appends a payment to the student's history. An unparsable
// amount records 0; an unknown id modifies nothing.
func AddPaymentAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	id := c.Params("id")

	payment := models.Payment{
		Amount: ParseAmount(c.FormValue("amount")),
		Date:   time.Now().UTC(),
		Note:   c.FormValue("note"),
	}

	if _, err := uuid.Parse(id); err == nil {
		if err := database.AppendPayment(db, id, payment); err != nil {
			return err
		}
	}

	database.LogAction(db, "add_payment", fiber.Map{"student_id": id, "amount": payment.Amount}, auth.ActingUsername(c))
	flash.Set(c, "success", "Payment recorded")
	return c.Redirect("/admin/student/" + id + "/edit")
}

// loadStudent fetches by id, mapping a malformed identifier to the same
// not-found outcome as a missing row.
func loadStudent(db *sql.DB, id string) (*models.Student, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, sql.ErrNoRows
	}
	return database.GetStudentByID(db, id)
}
