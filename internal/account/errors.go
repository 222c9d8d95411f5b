package account

import "errors"

var (
	// ErrInvalidArgument occurs when an identifier or amount is missing, not
	// positive where positivity is required, or outside the representable range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientFunds indicates a well-formed amount that exceeds the
	// available balance of the debited account.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNullRecipient indicates a transfer without a target account.
	ErrNullRecipient = errors.New("recipient is required")
)

const (
	KindInvalidArgument   = "invalid_argument"
	KindInsufficientFunds = "insufficient_funds"
	KindNullRecipient     = "null_recipient"
)

// Kind maps err onto its taxonomy label. It returns an empty string for nil
// and for errors that do not originate from this package.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNullRecipient):
		return KindNullRecipient
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return ""
	}
}
