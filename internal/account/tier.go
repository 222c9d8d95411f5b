package account

import "github.com/shopspring/decimal"

// Tier is the coarse health classification of an account.
type Tier string

const (
	TierLow    Tier = "Low"
	TierNormal Tier = "Normal"
	TierHigh   Tier = "High"
)

var (
	// NormalThreshold is the lowest balance classified as TierNormal.
	NormalThreshold = decimal.NewFromInt(100)
	// HighThreshold is the lowest balance classified as TierHigh.
	HighThreshold = decimal.NewFromInt(1000)
)

// Classify returns the tier for balance. Thresholds belong to the upper tier.
func Classify(balance decimal.Decimal) Tier {
	switch {
	case balance.GreaterThanOrEqual(HighThreshold):
		return TierHigh
	case balance.GreaterThanOrEqual(NormalThreshold):
		return TierNormal
	default:
		return TierLow
	}
}

func (t Tier) String() string {
	return string(t)
}
