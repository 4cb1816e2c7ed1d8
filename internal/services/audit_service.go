package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"baletrack/internal/logger"
	"baletrack/internal/models"
)

// Audit actions recorded for bale, expense and savings mutations.
const (
	AuditCreate = "CREATE"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
)

// auditService handles audit log recording.
type auditService struct {
	store
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB, opts ...Option) AuditServicer {
	return &auditService{store: newStore(db, opts)}
}

// Log records an audit event. Failures are logged and never reach the caller,
// so an audit outage cannot fail a user's write.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	var changesJSON string
	if len(changes) > 0 {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	// Detached from the request so a client disconnect does not drop the entry.
	db, cancel := s.conn(context.Background())
	defer cancel()
	if err := db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
			"at", time.Now().UTC(),
		)
	}
}
