package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// ParsePriority validates a priority label, defaulting to Normal when empty.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityNormal, PriorityHigh, PriorityUrgent:
		return Priority(s), true
	}
	if s == "" {
		return PriorityNormal, true
	}
	return "", false
}

// Operation is one cash -> USDT exchange request tracked through the
// status pipeline.
type Operation struct {
	ID            string
	Code          string // human-readable, MSB-<date>-<suffix>
	ClientID      string
	PickupAddress string

	AmountUSD        decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	FXCommission     decimal.Decimal
	NetAmount        decimal.Decimal
	EstimatedUSDT    decimal.Decimal
	ActualUSDT       *decimal.Decimal

	USDTWallet  string
	Status      OperationStatus
	CollectorID *string
	FXProvider  string
	Priority    Priority

	CreatedAt   time.Time
	Deadline    *time.Time
	CompletedAt *time.Time
	Notes       string

	Client    *Client
	Collector *User
}

// CollectorName returns the assigned collector's display name, empty when
// unassigned.
func (o *Operation) CollectorName() string {
	if o.Collector == nil {
		return ""
	}
	return o.Collector.FullName
}

// ClientName returns the owning client's name when preloaded.
func (o *Operation) ClientName() string {
	if o.Client == nil {
		return ""
	}
	return o.Client.Name
}

// OperationFilters narrows a listing. Zero values mean "no constraint",
// matching how the store builds its queries.
type OperationFilters struct {
	Statuses     []OperationStatus
	CollectorIDs []string
	Priorities   []Priority
	FXProviders  []string
	MinAmount    decimal.Decimal
	MaxAmount    decimal.Decimal
	DateFrom     time.Time
	DateTo       time.Time
}

// OperationAnalytics is the dashboard aggregate over a trailing window.
type OperationAnalytics struct {
	TotalOperations      int64
	TotalVolume          decimal.Decimal
	CompletedOperations  int64
	ActiveOperations     int64
	TotalCommission      decimal.Decimal
	CompletionRate       float64
	AverageOperationSize decimal.Decimal
}

// DailyVolume is one point of the daily volume trend chart.
type DailyVolume struct {
	Date   time.Time
	Volume decimal.Decimal
	Count  int64
}
