package accounting

import "github.com/shopspring/decimal"

// DiscrepancyTolerance is the absolute difference treated as floating-point noise.
var DiscrepancyTolerance = decimal.RequireFromString("0.01")

// Direction classifies a platform balance against the balance a session implies.
type Direction string

const (
	DirectionNone   Direction = "none"
	DirectionHigher Direction = "higher" // platform holds more than expected
	DirectionLower  Direction = "lower"  // platform holds less than expected
)

// Remediation names a user action that can settle a discrepancy.
type Remediation string

const (
	RemediationDismiss    Remediation = "dismiss"
	RemediationAdjustment Remediation = "adjustment"
	RemediationDeposit    Remediation = "deposit"
	RemediationWithdrawal Remediation = "withdrawal"
)

// Discrepancy is the classification of a balance mismatch.
// Difference is signed (platform - expected); Delta is its absolute value.
type Discrepancy struct {
	Direction  Direction
	Delta      decimal.Decimal
	Difference decimal.Decimal
}

// Found reports whether the mismatch exceeds the tolerance.
func (d Discrepancy) Found() bool {
	return d.Direction != DirectionNone
}

// Suggestions lists the remediation paths for the discrepancy, most specific first.
func (d Discrepancy) Suggestions() []Remediation {
	switch d.Direction {
	case DirectionHigher:
		return []Remediation{RemediationDeposit, RemediationAdjustment}
	case DirectionLower:
		return []Remediation{RemediationWithdrawal, RemediationAdjustment}
	default:
		return []Remediation{}
	}
}

// CheckDiscrepancy compares the recorded platform balance with the expected balance.
func CheckDiscrepancy(platformBalance, expectedBalance decimal.Decimal) Discrepancy {
	diff := platformBalance.Sub(expectedBalance)
	if diff.Abs().LessThanOrEqual(DiscrepancyTolerance) {
		return Discrepancy{Direction: DirectionNone, Delta: decimal.Zero, Difference: decimal.Zero}
	}
	d := Discrepancy{Direction: DirectionLower, Delta: diff.Abs(), Difference: diff}
	if diff.IsPositive() {
		d.Direction = DirectionHigher
	}
	return d
}

// IsValidRemediation reports whether r is a known remediation.
func IsValidRemediation(r Remediation) bool {
	switch r {
	case RemediationDismiss, RemediationAdjustment, RemediationDeposit, RemediationWithdrawal:
		return true
	}
	return false
}
