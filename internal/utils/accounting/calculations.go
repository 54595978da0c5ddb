package accounting

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatePrecision is the number of decimal places kept for derived exchange rates.
const RatePrecision = 4

var (
	sixty = decimal.NewFromInt(60)
	one   = decimal.NewFromInt(1)
)

// SessionNetResult returns exit - entry. Tips and fees are never part of this figure.
func SessionNetResult(entryAmount, exitAmount decimal.Decimal) decimal.Decimal {
	return exitAmount.Sub(entryAmount)
}

// LiveNetResultBase converts each leg of a live session at its own rate:
// (cashOut * cashOutRate) - (buyIn * buyInRate).
func LiveNetResultBase(buyIn, buyInRate, cashOut, cashOutRate decimal.Decimal) decimal.Decimal {
	return cashOut.Mul(cashOutRate).Sub(buyIn.Mul(buyInRate))
}

// OnlineNetResultBase converts an online session's net result with the platform's latest
// rate when the platform currency differs from the base currency.
func OnlineNetResultBase(net decimal.Decimal, sessionCurrency, baseCurrency string, platformRate decimal.Decimal) decimal.Decimal {
	if sessionCurrency == baseCurrency {
		return net
	}
	return net.Mul(platformRate)
}

// EffectiveRate back-calculates received/sent, rounded to RatePrecision.
// It returns zero ("not yet computable") when either amount is not positive.
func EffectiveRate(sent, received decimal.Decimal) decimal.Decimal {
	if !sent.IsPositive() || !received.IsPositive() {
		return decimal.Zero
	}
	return received.DivRound(sent, RatePrecision)
}

// InvertRate returns 1/rate rounded to RatePrecision, or zero for a non-positive rate.
func InvertRate(rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return one.DivRound(rate, RatePrecision)
}

// ProcessingFee returns amountOut - amountIn; a positive fee means value was lost in transfer.
func ProcessingFee(amountOut, amountIn decimal.Decimal) decimal.Decimal {
	return amountOut.Sub(amountIn)
}

// ConvertToBase converts an amount into the base currency with the given rate.
func ConvertToBase(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

// EstimatedHands returns floor(hours * handsPerHour * tables). Tables below one count as one.
func EstimatedHands(durationHours decimal.Decimal, handsPerHour, tableCount int) int {
	if tableCount < 1 {
		tableCount = 1
	}
	if handsPerHour <= 0 || !durationHours.IsPositive() {
		return 0
	}
	hands := durationHours.Mul(decimal.NewFromInt(int64(handsPerHour))).Mul(decimal.NewFromInt(int64(tableCount)))
	return int(hands.Floor().IntPart())
}

// EffectiveHands prefers a positive manual count over the estimate.
func EffectiveHands(manual, estimate int) int {
	if manual > 0 {
		return manual
	}
	return estimate
}

// SessionDuration returns the played hours between start and end minus breaks, never negative.
func SessionDuration(start, end time.Time, breakMinutes int) decimal.Decimal {
	elapsed := decimal.NewFromInt(int64(end.Sub(start) / time.Second)).Div(decimal.NewFromInt(3600))
	hours := elapsed.Sub(decimal.NewFromInt(int64(breakMinutes)).Div(sixty))
	if hours.IsNegative() {
		return decimal.Zero
	}
	return hours
}
