package publisher

import (
	"encoding/json"
	"time"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

// OperationEvent is the JSON payload published for every lifecycle change.
type OperationEvent struct {
	Kind        string    `json:"kind"` // operation.created, operation.status_changed, operation.cancelled
	OperationID string    `json:"operation_id"`
	Code        string    `json:"code"`
	ClientID    string    `json:"client_id"`
	Status      string    `json:"status"`
	AmountUSD   float64   `json:"amount_usd"`
	Priority    string    `json:"priority"`
	Timestamp   time.Time `json:"timestamp"`
}

// Message keys by operation ID so all events of one operation land in the
// same partition, in order.
func (e OperationEvent) Message() (domain.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{Key: []byte(e.OperationID), Value: value}, nil
}
