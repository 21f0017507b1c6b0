package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOperationInput(t *testing.T) {
	valid := OperationInput{
		ClientName:    "John Smith",
		Amount:        dec("1500"),
		USDTWallet:    "T123456789012345678901234567890123",
		PickupAddress: "742 Evergreen Terrace",
	}

	tests := []struct {
		name     string
		mutate   func(*OperationInput)
		wantErrs []string
	}{
		{
			name:     "valid input",
			mutate:   func(in *OperationInput) {},
			wantErrs: nil,
		},
		{
			name:     "missing client name",
			mutate:   func(in *OperationInput) { in.ClientName = "  " },
			wantErrs: []string{"Client name is required"},
		},
		{
			name:     "amount below minimum",
			mutate:   func(in *OperationInput) { in.Amount = dec("99.99") },
			wantErrs: []string{"Amount must be at least $100"},
		},
		{
			name:     "zero amount",
			mutate:   func(in *OperationInput) { in.Amount = dec("0") },
			wantErrs: []string{"Amount must be at least $100"},
		},
		{
			name:     "amount above maximum",
			mutate:   func(in *OperationInput) { in.Amount = dec("100000.01") },
			wantErrs: []string{"Amount cannot exceed $100000"},
		},
		{
			name:     "missing wallet",
			mutate:   func(in *OperationInput) { in.USDTWallet = "" },
			wantErrs: []string{"USDT wallet address is required"},
		},
		{
			name:     "malformed wallet",
			mutate:   func(in *OperationInput) { in.USDTWallet = "T12345" },
			wantErrs: []string{"USDT wallet address format is invalid"},
		},
		{
			name:     "missing pickup address",
			mutate:   func(in *OperationInput) { in.PickupAddress = "" },
			wantErrs: []string{"Pickup address is required"},
		},
		{
			name: "every rule reported independently",
			mutate: func(in *OperationInput) {
				in.ClientName = ""
				in.Amount = dec("50")
				in.USDTWallet = ""
				in.PickupAddress = ""
			},
			wantErrs: []string{
				"Client name is required",
				"Amount must be at least $100",
				"USDT wallet address is required",
				"Pickup address is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			assert.Equal(t, tt.wantErrs, ValidateOperationInput(in))
		})
	}
}

func TestValidUSDTAddress(t *testing.T) {
	tests := []struct {
		address string
		want    bool
	}{
		{"T123456789012345678901234567890123", true},  // T + 33 = 34 chars
		{"0x1234567890abcdef1234567890abcdef12345678", true}, // 0x + 40 = 42 chars
		{"T12345", false},
		{"T1234567890123456789012345678901234", false}, // 35 chars
		{"0x1234", false},
		{"1234567890123456789012345678901234", false}, // right length, wrong prefix
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidUSDTAddress(tt.address), "address %q", tt.address)
	}
}
