// Package account implements a validated bank account value object.
//
// Every operation either applies all of its effects or returns an error and
// leaves the receiver (and, for transfers, the recipient) untouched. Amounts
// are exact decimals; no binary floating point is involved anywhere.
package account

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Account holds an identifier and a non-negative balance.
//
// Account is not safe for unsynchronized concurrent mutation. Callers that
// share accounts across goroutines must serialize access themselves and, for
// TransferTo, lock both accounts in a consistent order (lower ID first).
type Account struct {
	id      string
	balance decimal.Decimal
}

// New builds an account. The identifier is checked before the balance.
func New(id string, initial decimal.Decimal) (*Account, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: account identifier is required", ErrInvalidArgument)
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance must not be negative, got %s", ErrInvalidArgument, initial)
	}
	if initial.GreaterThan(MaxAmount) {
		return nil, fmt.Errorf("%w: initial balance %s exceeds maximum %s", ErrInvalidArgument, initial, MaxAmount)
	}
	return &Account{id: id, balance: initial}, nil
}

// ID returns the account identifier.
func (a *Account) ID() string {
	return a.id
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Status classifies the current balance.
func (a *Account) Status() Tier {
	return Classify(a.balance)
}

// Deposit credits a strictly positive amount.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	if err := requireCredit(a.balance, amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw debits a strictly positive amount no larger than the balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	if err := a.requireFunds(amount); err != nil {
		return err
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// TransferTo moves amount from a to recipient. A missing recipient is
// reported before the amount is looked at. Transferring to the same account
// validates as usual and leaves the balance unchanged.
func (a *Account) TransferTo(recipient *Account, amount decimal.Decimal) error {
	if recipient == nil {
		return fmt.Errorf("%w: transfer from %s", ErrNullRecipient, a.id)
	}
	if err := requirePositive(amount); err != nil {
		return err
	}
	if err := a.requireFunds(amount); err != nil {
		return err
	}
	if recipient == a {
		return nil
	}
	if err := requireCredit(recipient.balance, amount); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	recipient.balance = recipient.balance.Add(amount)
	return nil
}

func (a *Account) requireFunds(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: account %s holds %s, requested %s", ErrInsufficientFunds, a.id, a.balance, amount)
	}
	return nil
}

func (a *Account) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.id, a.balance, a.Status())
}
