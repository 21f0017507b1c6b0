package domain

import "github.com/shopspring/decimal"

// Tiered commission rates keyed by client tier and amount bracket.
// Frequent clients pay one percentage point less in every bracket.
var commissionRates = map[ClientTier][3]decimal.Decimal{
	TierRegular: {
		decimal.NewFromFloat(0.07), // < 5 000
		decimal.NewFromFloat(0.06), // 5 000 - 20 000
		decimal.NewFromFloat(0.05), // > 20 000
	},
	TierFrequent: {
		decimal.NewFromFloat(0.06),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.04),
	},
}

var (
	bracketLow     = decimal.NewFromInt(5000)
	bracketHigh    = decimal.NewFromInt(20000)
	fxProviderRate = decimal.NewFromFloat(0.015)
	usdtShrinkage  = decimal.NewFromFloat(0.95)
)

// CommissionBreakdown is the result of the commission calculation for one
// operation amount.
type CommissionBreakdown struct {
	GrossAmount      decimal.Decimal
	Rate             decimal.Decimal
	CommissionAmount decimal.Decimal
	FXCommission     decimal.Decimal
	NetAmount        decimal.Decimal
}

// CalculateCommission maps (amount, tier) to a commission breakdown.
// The FX provider commission is informational and is not subtracted from
// the net amount: the provider is paid from the operator's margin.
// Unrecognized tiers fall back to regular rates.
func CalculateCommission(amount decimal.Decimal, tier ClientTier) CommissionBreakdown {
	rates, ok := commissionRates[tier]
	if !ok {
		rates = commissionRates[TierRegular]
	}

	var rate decimal.Decimal
	switch {
	case amount.LessThan(bracketLow):
		rate = rates[0]
	case amount.LessThanOrEqual(bracketHigh):
		rate = rates[1]
	default:
		rate = rates[2]
	}

	commission := amount.Mul(rate).Round(2)

	return CommissionBreakdown{
		GrossAmount:      amount,
		Rate:             rate,
		CommissionAmount: commission,
		FXCommission:     amount.Mul(fxProviderRate).Round(2),
		// Net is derived from the rounded commission so that
		// commission + net always reassembles the gross amount exactly.
		NetAmount: amount.Sub(commission),
	}
}

// EstimateUSDT applies the fixed conversion/network fee shrinkage to a net
// amount.
func EstimateUSDT(netAmount decimal.Decimal) decimal.Decimal {
	return netAmount.Mul(usdtShrinkage).Round(8)
}
