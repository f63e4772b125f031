package database

import (
	"database/sql"
	"encoding/json"
	"log"

	"github.com/FairozAhmadSheikh/Bright-Horizion-Tution-Center-Fee-Management/app/models"
)

// LogAction appends one audit entry. Failures are logged and swallowed so an
// audit problem never fails the operation that triggered it.
func LogAction(db *sql.DB, action string, details map[string]interface{}, by string) {
	payload, err := json.Marshal(details)
	if err != nil {
		log.Printf("audit: encode details for %s: %v", action, err)
		return
	}
	query := `INSERT INTO logs (action, details, by_user, at) VALUES ($1, $2, $3, NOW())`
	if _, err := db.Exec(query, action, payload, by); err != nil {
		log.Printf("audit: record %s: %v", action, err)
	}
}

// GetLatestLogs returns the most recent audit entries, newest first.
func GetLatestLogs(db *sql.DB, limit int) ([]*models.AuditLog, error) {
	query := `SELECT id, action, details, by_user, at FROM logs ORDER BY at DESC, id DESC LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.AuditLog
	for rows.Next() {
		entry := &models.AuditLog{}
		var details []byte
		if err := rows.Scan(&entry.ID, &entry.Action, &details, &entry.By, &entry.At); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(details, &entry.Details); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
