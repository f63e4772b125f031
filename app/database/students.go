package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/models"
	"github.com/google/uuid"
)

// ErrDuplicateStudent is returned when a create or update would collide with
// an existing student carrying the same normalized name in the same class.
var ErrDuplicateStudent = errors.New("a student with this name already exists in this class")

const studentColumns = `id, name, class, contact, total_fee, payments, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	s := &models.Student{}
	var payments []byte
	err := row.Scan(&s.ID, &s.Name, &s.Class, &s.Contact, &s.TotalFee, &payments, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payments, &s.Payments); err != nil {
		return nil, fmt.Errorf("decode payments: %v", err)
	}
	return s, nil
}

// CreateStudent persists a new student with an empty payment history. The
// name is expected to be normalized already; the duplicate check matches it
// exactly against its class. Returns ErrDuplicateStudent on collision.
func CreateStudent(db *sql.DB, s *models.Student) error {
	var existing string
	err := db.QueryRow(`SELECT id FROM students WHERE name = $1 AND class = $2`, s.Name, s.Class).Scan(&existing)
	if err == nil {
		return ErrDuplicateStudent
	}
	if err != sql.ErrNoRows {
		return err
	}

	s.ID = uuid.New().String()
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.Payments == nil {
		s.Payments = []models.Payment{}
	}

	payments, err := json.Marshal(s.Payments)
	if err != nil {
		return err
	}

	query := `INSERT INTO students (id, name, class, contact, total_fee, payments, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = db.Exec(query, s.ID, s.Name, s.Class, s.Contact, s.TotalFee, payments, s.CreatedAt, s.UpdatedAt)
	return err
}

// GetStudentByID looks a student up by identifier. Absent rows surface as
// sql.ErrNoRows.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(db.QueryRow(query, id))
}

// GetStudents returns students ordered by name, optionally restricted to one
// class.
func GetStudents(db *sql.DB, class string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	args := []interface{}{}
	if class != "" {
		query += ` WHERE class = $1`
		args = append(args, class)
	}
	query += ` ORDER BY name ASC`

	rows, err := db.Query(query, args...)
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

// UpdateStudent overwrites name, class, contact and total fee, refreshing
// updated_at. The payment history and created_at are untouched. The
// duplicate check excludes the student's own row.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	var existing string
	err := db.QueryRow(`SELECT id FROM students WHERE name = $1 AND class = $2 AND id <> $3`,
		s.Name, s.Class, s.ID).Scan(&existing)
	if err == nil {
		return ErrDuplicateStudent
	}
	if err != sql.ErrNoRows {
		return err
	}

	query := `UPDATE students SET name = $1, class = $2, contact = $3, total_fee = $4, updated_at = NOW()
			  WHERE id = $5`
	_, err = db.Exec(query, s.Name, s.Class, s.Contact, s.TotalFee, s.ID)
	return err
}

// DeleteStudent removes a student and, with it, the embedded payment
// history. Deleting an id that does not exist affects zero rows and is not
// an error.
func DeleteStudent(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	return err
}

// AppendPayment appends one payment to the student's embedded history in a
// single statement and refreshes updated_at. If the id matches nothing the
// statement is a no-op.
func AppendPayment(db *sql.DB, id string, p models.Payment) error {
	encoded, err := json.Marshal(p)
	if err != nil {
		return err
	}
	query := `UPDATE students SET payments = payments || $2::jsonb, updated_at = NOW() WHERE id = $1`
	_, err = db.Exec(query, id, encoded)
	return err
}
