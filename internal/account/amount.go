package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// MaxAmount is the largest balance or amount an account accepts (2^96 - 1).
	MaxAmount = decimal.RequireFromString("79228162514264337593543950335")
	// MinAmount is the most negative representable amount. It is never a valid
	// balance and exists so callers can probe the lower edge of the range.
	MinAmount = MaxAmount.Neg()
)

// requirePositive rejects zero, negative and out-of-range amounts.
func requirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidArgument, amount)
	}
	if amount.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: amount %s exceeds maximum %s", ErrInvalidArgument, amount, MaxAmount)
	}
	return nil
}

// requireCredit rejects a credit that would push balance past MaxAmount.
func requireCredit(balance, amount decimal.Decimal) error {
	if balance.Add(amount).GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: crediting %s would exceed maximum balance %s", ErrInvalidArgument, amount, MaxAmount)
	}
	return nil
}
