package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateCommission_Brackets(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		tier     ClientTier
		wantRate string
	}{
		{"regular low bracket", "4999.99", TierRegular, "0.07"},
		{"regular low bracket small", "100", TierRegular, "0.07"},
		{"regular medium lower edge", "5000", TierRegular, "0.06"},
		{"regular medium upper edge", "20000", TierRegular, "0.06"},
		{"regular high bracket", "20000.01", TierRegular, "0.05"},
		{"frequent low bracket", "4999.99", TierFrequent, "0.06"},
		{"frequent medium lower edge", "5000", TierFrequent, "0.05"},
		{"frequent medium upper edge", "20000", TierFrequent, "0.05"},
		{"frequent high bracket", "100000", TierFrequent, "0.04"},
		{"unknown tier defaults to regular", "1000", ClientTier("vip"), "0.07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCommission(dec(tt.amount), tt.tier)
			assert.True(t, got.Rate.Equal(dec(tt.wantRate)),
				"rate = %s, want %s", got.Rate, tt.wantRate)
		})
	}
}

func TestCalculateCommission_FrequentAlwaysOnePointLess(t *testing.T) {
	for _, amount := range []string{"100", "4999", "5000", "12000", "20000", "20001", "99999"} {
		regular := CalculateCommission(dec(amount), TierRegular)
		frequent := CalculateCommission(dec(amount), TierFrequent)
		assert.True(t, regular.Rate.Sub(frequent.Rate).Equal(dec("0.01")),
			"amount %s: regular %s frequent %s", amount, regular.Rate, frequent.Rate)
	}
}

func TestCalculateCommission_NetPlusCommissionIsGross(t *testing.T) {
	for _, amount := range []string{"100", "333.33", "4999.99", "5000", "17777.77", "20000", "99999.99"} {
		for _, tier := range []ClientTier{TierRegular, TierFrequent} {
			got := CalculateCommission(dec(amount), tier)
			sum := got.CommissionAmount.Add(got.NetAmount)
			assert.True(t, sum.Equal(dec(amount)),
				"amount %s tier %s: commission %s + net %s = %s", amount, tier, got.CommissionAmount, got.NetAmount, sum)
		}
	}
}

func TestCalculateCommission_FrequentScenario(t *testing.T) {
	got := CalculateCommission(dec("10000"), TierFrequent)

	require.True(t, got.Rate.Equal(dec("0.05")))
	assert.True(t, got.CommissionAmount.Equal(dec("500.00")), "commission = %s", got.CommissionAmount)
	assert.True(t, got.NetAmount.Equal(dec("9500.00")), "net = %s", got.NetAmount)
	assert.True(t, EstimateUSDT(got.NetAmount).Equal(dec("9025.00")), "usdt = %s", EstimateUSDT(got.NetAmount))
}

func TestCalculateCommission_FXCommissionFlat(t *testing.T) {
	// 1.5% regardless of tier or bracket, never subtracted from net.
	regular := CalculateCommission(dec("10000"), TierRegular)
	frequent := CalculateCommission(dec("10000"), TierFrequent)

	assert.True(t, regular.FXCommission.Equal(dec("150.00")))
	assert.True(t, frequent.FXCommission.Equal(dec("150.00")))
	assert.True(t, regular.NetAmount.Equal(dec("9400")), "net = %s", regular.NetAmount)
}

func TestCalculateCommission_Deterministic(t *testing.T) {
	a := CalculateCommission(dec("7500.50"), TierRegular)
	b := CalculateCommission(dec("7500.50"), TierRegular)
	assert.Equal(t, a, b)
}
