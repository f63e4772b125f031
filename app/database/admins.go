package database

import (
	"database/sql"
	"log"
	"time"

	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// GetAdminByUsername looks an admin up by username. Absent rows surface as
// sql.ErrNoRows.
func GetAdminByUsername(db *sql.DB, username string) (*models.Admin, error) {
	admin := &models.Admin{}
	query := `SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`

	err := db.QueryRow(query, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func CountAdmins(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&count)
	return count, err
}

func CreateAdmin(db *sql.DB, admin *models.Admin) error {
	admin.ID = uuid.New().String()
	admin.CreatedAt = time.Now().UTC()
	query := `INSERT INTO admins (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, admin.ID, admin.Username, admin.PasswordHash, admin.CreatedAt)
	return err
}

// UpdateAdminPassword replaces an admin's password hash.
func UpdateAdminPassword(db *sql.DB, id, passwordHash string) error {
	_, err := db.Exec(`UPDATE admins SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	return err
}

// EnsureAdmin provisions the first admin account when none exists yet. A
// pre-hashed password wins over a plaintext one; with neither supplied the
// bootstrap is skipped and login stays impossible until fixed out-of-band.
func EnsureAdmin(db *sql.DB, username, password, passwordHash string) error {
	count, err := CountAdmins(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash := passwordHash
	if hash == "" && password != "" {
		hash, err = hashPassword(password)
		if err != nil {
			return err
		}
	}
	if hash == "" {
		log.Println("WARNING: No admin credentials provided! Set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH.")
		return nil
	}

	if err := CreateAdmin(db, &models.Admin{Username: username, PasswordHash: hash}); err != nil {
		return err
	}
	log.Printf("Admin user %q created.", username)
	return nil
}
