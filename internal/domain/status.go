package domain

// OperationStatus is the pipeline position of an operation. Stored as the
// human-readable label so exports and direct table inspection stay legible.
type OperationStatus string

const (
	StatusPending       OperationStatus = "Pending"
	StatusAssigned      OperationStatus = "Assigned"
	StatusCollecting    OperationStatus = "Collecting"
	StatusCollected     OperationStatus = "Collected"
	StatusValidated     OperationStatus = "Validated"
	StatusDeliveredToFX OperationStatus = "Delivered to FX"
	StatusFXProcessing  OperationStatus = "FX Processing"
	StatusCompleted     OperationStatus = "Completed"
	StatusCancelled     OperationStatus = "Cancelled"
	StatusError         OperationStatus = "Error"
)

// AllStatuses in pipeline order.
var AllStatuses = []OperationStatus{
	StatusPending,
	StatusAssigned,
	StatusCollecting,
	StatusCollected,
	StatusValidated,
	StatusDeliveredToFX,
	StatusFXProcessing,
	StatusCompleted,
	StatusCancelled,
	StatusError,
}

// ActiveStatuses are the statuses the dashboard counts as in-flight.
// Delivered to FX is deliberately not part of this set.
var ActiveStatuses = []OperationStatus{
	StatusPending,
	StatusAssigned,
	StatusCollecting,
	StatusCollected,
	StatusValidated,
	StatusFXProcessing,
}

// allowedTransitions is the forward pipeline plus the explicit cancellation
// path. Error is reachable from any non-terminal status and is handled in
// CanTransition directly.
var allowedTransitions = map[OperationStatus][]OperationStatus{
	StatusPending:       {StatusAssigned, StatusCancelled},
	StatusAssigned:      {StatusCollecting, StatusCancelled},
	StatusCollecting:    {StatusCollected},
	StatusCollected:     {StatusValidated},
	StatusValidated:     {StatusDeliveredToFX},
	StatusDeliveredToFX: {StatusFXProcessing},
	StatusFXProcessing:  {StatusCompleted},
}

// ParseStatus validates a status label at the system boundary.
func ParseStatus(s string) (OperationStatus, error) {
	for _, status := range AllStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", ErrUnknownStatus
}

// IsTerminal reports whether no further transition is possible.
func (s OperationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusError
}

// CanTransition reports whether s -> to is a legal pipeline move.
func (s OperationStatus) CanTransition(to OperationStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if to == StatusError {
		return true
	}
	for _, next := range allowedTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
