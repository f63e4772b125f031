package database

import (
	"database/sql"

	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/models"
)

// GetLatestStudents returns the most recently created students.
func GetLatestStudents(db *sql.DB, limit int) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetDistinctClasses returns every class label in use, sorted ascending.
func GetDistinctClasses(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT class FROM students ORDER BY class ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []string
	for rows.Next() {
		var class string
		if err := rows.Scan(&class); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

// GetSummary returns headline counts for the summary view: total students,
// per-class counts sorted by class label, and students carrying no fee.
func GetSummary(db *sql.DB) (*models.Summary, error) {
	summary := &models.Summary{}

	err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&summary.TotalStudents)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT class, COUNT(*) FROM students GROUP BY class ORDER BY class ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var cc models.ClassCount
		if err := rows.Scan(&cc.Class, &cc.Count); err != nil {
			return nil, err
		}
		summary.ClassCounts = append(summary.ClassCounts, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM students WHERE total_fee = 0`).Scan(&summary.FreeStudents)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
