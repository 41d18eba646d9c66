package database

import (
	"avy-dashboard/internal/models"

	"github.com/m-mizutani/goerr/v2"
)

// CreateAuditLog journals one grid change. Failures are returned for the
// caller to log; the edit itself has already been applied to the session.
func CreateAuditLog(entry models.GridEditLog) error {
	if DB == nil {
		return nil
	}
	entry.CreatedAt = clock.Now()
	if err := DB.Create(&entry).Error; err != nil {
		return goerr.Wrap(err, "failed to write audit log",
			goerr.V("session_id", entry.SessionID), goerr.V("action", entry.Action))
	}
	return nil
}

// ListAuditLogs returns a session's most recent journal entries, newest first.
func ListAuditLogs(sessionID string, limit int) ([]models.GridEditLog, error) {
	logs := []models.GridEditLog{}
	if DB == nil {
		return logs, nil
	}
	err := DB.
		Where("session_id = ?", sessionID).
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit logs", goerr.V("session_id", sessionID))
	}
	return logs, nil
}
