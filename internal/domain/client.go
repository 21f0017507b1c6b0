package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClientTier string

const (
	TierRegular  ClientTier = "regular"
	TierFrequent ClientTier = "frequent"
)

// Frequent-tier promotion thresholds. Both must be met.
var (
	frequentMinOperations = int64(5)
	frequentMinVolume     = decimal.NewFromInt(25000)
)

// Client is a customer of the exchange. Tier is derived from cumulative
// stats and is never set directly.
type Client struct {
	ID              string
	Name            string
	Phone           string
	Email           string
	Tier            ClientTier
	TotalOperations int64
	TotalVolume     decimal.Decimal
	Notes           string
	CreatedAt       time.Time
}

// RecordOperation folds a new operation into the client's cumulative stats
// and promotes the tier once both thresholds are reached.
func (c *Client) RecordOperation(amount decimal.Decimal) {
	c.TotalOperations++
	c.TotalVolume = c.TotalVolume.Add(amount)
	if c.TotalOperations >= frequentMinOperations && c.TotalVolume.GreaterThanOrEqual(frequentMinVolume) {
		c.Tier = TierFrequent
	}
}
