package domain

import "time"

// OperationLog is one append-only audit trail entry. Entries are never
// updated or deleted.
type OperationLog struct {
	ID          string
	OperationID string
	UserID      *string // nil for system-generated entries
	Action      string
	Details     string
	Timestamp   time.Time
}

// Audit action labels.
const (
	ActionOperationCreated   = "Operation Created"
	ActionStatusUpdated      = "Status Updated"
	ActionOperationCancelled = "Operation Cancelled"
)
