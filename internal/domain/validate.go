package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Operation amount limits at creation time, in USD.
var (
	MinOperationAmount = decimal.NewFromInt(100)
	MaxOperationAmount = decimal.NewFromInt(100000)
)

// OperationInput is the raw new-operation form data as submitted by an
// operator, before any persistence.
type OperationInput struct {
	ClientName    string
	Amount        decimal.Decimal
	USDTWallet    string
	PickupAddress string
}

// ValidateOperationInput checks every rule independently and returns one
// message per violation. An empty slice means the input may be persisted.
func ValidateOperationInput(in OperationInput) []string {
	var errs []string

	if strings.TrimSpace(in.ClientName) == "" {
		errs = append(errs, "Client name is required")
	}

	if in.Amount.LessThan(MinOperationAmount) {
		errs = append(errs, fmt.Sprintf("Amount must be at least $%s", MinOperationAmount))
	} else if in.Amount.GreaterThan(MaxOperationAmount) {
		errs = append(errs, fmt.Sprintf("Amount cannot exceed $%s", MaxOperationAmount))
	}

	if strings.TrimSpace(in.USDTWallet) == "" {
		errs = append(errs, "USDT wallet address is required")
	} else if !ValidUSDTAddress(in.USDTWallet) {
		errs = append(errs, "USDT wallet address format is invalid")
	}

	if strings.TrimSpace(in.PickupAddress) == "" {
		errs = append(errs, "Pickup address is required")
	}

	return errs
}

// ValidUSDTAddress accepts the two supported chain shapes: a 34-character
// TRON address starting with T, or a 42-character 0x-prefixed address.
// No checksum validation is performed.
func ValidUSDTAddress(address string) bool {
	if strings.HasPrefix(address, "T") && len(address) == 34 {
		return true
	}
	if strings.HasPrefix(address, "0x") && len(address) == 42 {
		return true
	}
	return false
}
