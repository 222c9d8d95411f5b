package scenario

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/congo-pay/bankaccount/internal/account"
)

// expectation is the result a case should produce.
type expectation struct {
	stage   string
	kind    string
	balance decimal.Decimal
}

func expect(c Case) expectation {
	if c.Initial.IsNegative() || c.Initial.GreaterThan(account.MaxAmount) {
		return expectation{stage: StageOpen, kind: account.KindInvalidArgument}
	}

	balance := c.Initial
	if !c.Deposit.IsPositive() || balance.Add(c.Deposit).GreaterThan(account.MaxAmount) {
		return expectation{stage: StageDeposit, kind: account.KindInvalidArgument, balance: balance}
	}
	balance = balance.Add(c.Deposit)

	switch {
	case !c.Withdraw.IsPositive() || c.Withdraw.GreaterThan(account.MaxAmount):
		return expectation{stage: StageWithdraw, kind: account.KindInvalidArgument, balance: balance}
	case c.Withdraw.GreaterThan(balance):
		return expectation{stage: StageWithdraw, kind: account.KindInsufficientFunds, balance: balance}
	}
	return expectation{stage: StageDone, balance: balance.Sub(c.Withdraw)}
}

// Verify checks every outcome against the account rules and returns all
// violations found, or nil.
func Verify(outcomes []Outcome) error {
	var errs *multierror.Error
	for _, out := range outcomes {
		want := expect(out.Case)
		label := fmt.Sprintf("case (initial=%s, deposit=%s, withdraw=%s)", out.Initial, out.Deposit, out.Withdraw)

		if out.Stage != want.stage {
			errs = multierror.Append(errs, fmt.Errorf("%s: stopped at %q, expected %q", label, out.Stage, want.stage))
			continue
		}
		if got := account.Kind(out.Err); got != want.kind {
			errs = multierror.Append(errs, fmt.Errorf("%s: error kind %q, expected %q", label, got, want.kind))
		}
		if out.Stage == StageOpen {
			continue
		}
		if out.Balance.IsNegative() {
			errs = multierror.Append(errs, fmt.Errorf("%s: negative balance %s", label, out.Balance))
		}
		if !out.Balance.Equal(want.balance) {
			errs = multierror.Append(errs, fmt.Errorf("%s: balance %s, expected %s", label, out.Balance, want.balance))
		}
		if status := account.Classify(out.Balance); out.Status != status {
			errs = multierror.Append(errs, fmt.Errorf("%s: status %s, expected %s", label, out.Status, status))
		}
	}
	return errs.ErrorOrNil()
}
