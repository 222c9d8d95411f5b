// Package scenario drives accounts through combinations of input values and
// checks the results against the account rules.
package scenario

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/congo-pay/bankaccount/internal/account"
)

const (
	// StageOpen is the construction of the account.
	StageOpen = "open"
	// StageDeposit is the deposit applied after opening.
	StageDeposit = "deposit"
	// StageWithdraw is the withdrawal applied after the deposit.
	StageWithdraw = "withdraw"
	// StageDone means every stage was accepted.
	StageDone = "done"
)

// Dimensions lists the candidate values of each input of a case.
type Dimensions struct {
	Balances    []decimal.Decimal
	Deposits    []decimal.Decimal
	Withdrawals []decimal.Decimal
}

// Case is one input tuple.
type Case struct {
	Initial  decimal.Decimal
	Deposit  decimal.Decimal
	Withdraw decimal.Decimal
}

// Outcome captures what happened when a case was run.
type Outcome struct {
	Case
	AccountID string
	// Stage is the first rejected stage, or StageDone.
	Stage   string
	Balance decimal.Decimal
	Status  account.Tier
	Err     error
}

// Reporter receives outcomes as they are produced.
type Reporter interface {
	Report(ctx context.Context, outcome Outcome) error
}

// Exhaustive returns the cartesian product of the dimensions, balances outermost.
func Exhaustive(d Dimensions) []Case {
	cases := make([]Case, 0, len(d.Balances)*len(d.Deposits)*len(d.Withdrawals))
	for _, initial := range d.Balances {
		for _, deposit := range d.Deposits {
			for _, withdraw := range d.Withdrawals {
				cases = append(cases, Case{Initial: initial, Deposit: deposit, Withdraw: withdraw})
			}
		}
	}
	return cases
}

// Pairwise returns cases in which every pair of values taken from two
// different dimensions occurs at least once.
func Pairwise(d Dimensions) []Case {
	rows := coveringArray([]int{len(d.Balances), len(d.Deposits), len(d.Withdrawals)})
	if len(rows) >= len(d.Balances)*len(d.Deposits)*len(d.Withdrawals) {
		return Exhaustive(d)
	}

	cases := make([]Case, 0, len(rows))
	for _, row := range rows {
		cases = append(cases, Case{
			Initial:  d.Balances[row[0]],
			Deposit:  d.Deposits[row[1]],
			Withdraw: d.Withdrawals[row[2]],
		})
	}
	return cases
}

// Run opens an account for c, deposits, then withdraws. It stops at the first
// rejected stage.
func Run(c Case) Outcome {
	out := Outcome{Case: c, AccountID: uuid.NewString()}

	acc, err := account.New(out.AccountID, c.Initial)
	if err != nil {
		out.Stage, out.Err = StageOpen, err
		return out
	}

	out.Stage = StageDone
	if err := acc.Deposit(c.Deposit); err != nil {
		out.Stage, out.Err = StageDeposit, err
	} else if err := acc.Withdraw(c.Withdraw); err != nil {
		out.Stage, out.Err = StageWithdraw, err
	}

	out.Balance = acc.Balance()
	out.Status = acc.Status()
	return out
}

// RunAll runs cases in order and reports each outcome. It stops early when ctx
// is cancelled or the reporter fails.
func RunAll(ctx context.Context, cases []Case, reporter Reporter) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		out := Run(c)
		outcomes = append(outcomes, out)
		if reporter == nil {
			continue
		}
		if err := reporter.Report(ctx, out); err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}

// TransferOutcome captures balances around a single transfer.
type TransferOutcome struct {
	SenderBefore    decimal.Decimal
	RecipientBefore decimal.Decimal
	SenderAfter     decimal.Decimal
	RecipientAfter  decimal.Decimal
	Err             error
}

// Conserved reports whether the combined balance is unchanged.
func (t TransferOutcome) Conserved() bool {
	return t.SenderBefore.Add(t.RecipientBefore).Equal(t.SenderAfter.Add(t.RecipientAfter))
}

// RunTransfer opens two accounts and transfers amount between them.
func RunTransfer(senderInitial, recipientInitial, amount decimal.Decimal) (TransferOutcome, error) {
	sender, err := account.New(uuid.NewString(), senderInitial)
	if err != nil {
		return TransferOutcome{}, err
	}
	recipient, err := account.New(uuid.NewString(), recipientInitial)
	if err != nil {
		return TransferOutcome{}, err
	}

	out := TransferOutcome{SenderBefore: sender.Balance(), RecipientBefore: recipient.Balance()}
	out.Err = sender.TransferTo(recipient, amount)
	out.SenderAfter = sender.Balance()
	out.RecipientAfter = recipient.Balance()
	return out, nil
}
