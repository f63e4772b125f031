package models

import "time"

// AuditLog is one append-only record of an administrative action. Entries
// are never updated or deleted by the application.
type AuditLog struct {
	ID      int64                  `json:"id"`
	Action  string                 `json:"action"`
	Details map[string]interface{} `json:"details"`
	By      string                 `json:"by"`
	At      time.Time              `json:"at"`
}
