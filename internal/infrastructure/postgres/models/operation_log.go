package models

import "time"

// OperationLogModel rows are append-only: no updates, no deletes.
type OperationLogModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	OperationID string  `gorm:"type:uuid;index:idx_log_operation"`
	UserID      *string `gorm:"type:uuid"`
	Action      string  `gorm:"size:100"`
	Details     string  `gorm:"type:text"`
	Timestamp   time.Time `gorm:"index:idx_log_timestamp,sort:desc"`
}

func (OperationLogModel) TableName() string {
	return "operation_logs"
}
