package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of a privileged mutation.
type AuditLog struct {
	ID           string
	Action       AuditAction
	TargetUserID *uuid.UUID
	TargetRoleID *uuid.UUID
	PerformedBy  uuid.UUID
	Details      map[string]any
	CreatedAt    time.Time
}

// AuditFilter narrows an audit log listing. Nil fields do not filter.
type AuditFilter struct {
	Action       *AuditAction
	TargetUserID *uuid.UUID
	PerformedBy  *uuid.UUID
	Limit        int
}
