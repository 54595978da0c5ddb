package dto

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/SscSPs/bankroll_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Amount is a money value accepted either as a JSON number or as live-typed text.
// Text that does not parse becomes zero.
type Amount struct {
	decimal.Decimal
}

// Rate is an exchange rate accepted like Amount. Text that does not parse, and
// non-positive values, become 1.
type Rate struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Decimal = utils.ParseAmount(rawNumber(data))
	return nil
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	r.Decimal = utils.ParseRate(rawNumber(data))
	return nil
}

// rawNumber strips JSON string quotes; numbers pass through as text.
func rawNumber(data []byte) string {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	return string(data)
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount { return Amount{Decimal: d} }

// NewRate wraps d.
func NewRate(d decimal.Decimal) Rate { return Rate{Decimal: d} }

// DecimalValue lets the validator compare Amount and Rate fields with gte/gt tags.
// Register it with RegisterCustomTypeFunc for Amount{} and Rate{}.
func DecimalValue(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case Amount:
		f, _ := v.Float64()
		return f
	case Rate:
		f, _ := v.Float64()
		return f
	}
	return nil
}

func amountPtr(a *Amount) *decimal.Decimal {
	if a == nil {
		return nil
	}
	return &a.Decimal
}

func ratePtr(r *Rate) *decimal.Decimal {
	if r == nil {
		return nil
	}
	return &r.Decimal
}
