package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bankroll_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSessionNetResult(t *testing.T) {
	assert.True(t, d("50").Equal(accounting.SessionNetResult(d("100"), d("150"))))
	assert.True(t, d("-100").Equal(accounting.SessionNetResult(d("100"), d("0"))))
}

func TestLiveNetResultBase_ConvertsEachLegIndependently(t *testing.T) {
	net := accounting.SessionNetResult(d("100"), d("150"))
	base := accounting.LiveNetResultBase(d("100"), d("1.35"), d("150"), d("1.33"))

	assert.True(t, d("50").Equal(net))
	assert.True(t, d("64.5").Equal(base), "got %s", base)
}

func TestOnlineNetResultBase(t *testing.T) {
	assert.True(t, d("150").Equal(accounting.OnlineNetResultBase(d("150"), "USD", "USD", d("1.35"))))
	assert.True(t, d("202.5").Equal(accounting.OnlineNetResultBase(d("150"), "USD", "CAD", d("1.35"))))
}

func TestEffectiveRate(t *testing.T) {
	tests := []struct {
		name     string
		sent     string
		received string
		want     string
	}{
		{"simple", "200", "195", "0.975"},
		{"rounded to four places", "3", "1", "0.3333"},
		{"zero sent", "0", "195", "0"},
		{"zero received", "200", "0", "0"},
		{"negative sent", "-5", "10", "0"},
		{"negative received", "5", "-10", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.EffectiveRate(d(tt.sent), d(tt.received))
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestInvertRate(t *testing.T) {
	assert.True(t, d("1.25").Equal(accounting.InvertRate(d("0.8"))))
	assert.True(t, decimal.Zero.Equal(accounting.InvertRate(decimal.Zero)))
}

func TestProcessingFee(t *testing.T) {
	assert.True(t, d("5").Equal(accounting.ProcessingFee(d("200"), d("195"))))
	assert.True(t, d("-5").Equal(accounting.ProcessingFee(d("195"), d("200"))))
}

func TestEstimatedHands(t *testing.T) {
	assert.Equal(t, 90, accounting.EstimatedHands(d("3"), 30, 1))
	assert.Equal(t, 112, accounting.EstimatedHands(d("1.5"), 75, 1))
	assert.Equal(t, 450, accounting.EstimatedHands(d("1.5"), 75, 4))
	assert.Equal(t, 90, accounting.EstimatedHands(d("3"), 30, 0), "zero tables counts as one")
	assert.Equal(t, 0, accounting.EstimatedHands(decimal.Zero, 30, 1))
	assert.Equal(t, 0, accounting.EstimatedHands(d("2"), 0, 1))
}

func TestEffectiveHands(t *testing.T) {
	assert.Equal(t, 120, accounting.EffectiveHands(120, 90))
	assert.Equal(t, 90, accounting.EffectiveHands(0, 90))
	assert.Equal(t, 90, accounting.EffectiveHands(-1, 90))
}

func TestSessionDuration(t *testing.T) {
	start := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		end    time.Time
		breaks int
		want   string
	}{
		{"plain", start.Add(3 * time.Hour), 0, "3"},
		{"with break", start.Add(3 * time.Hour), 30, "2.5"},
		{"break exceeds elapsed", start.Add(time.Hour), 90, "0"},
		{"end before start", start.Add(-2 * time.Hour), 0, "0"},
		{"end before start with break", start.Add(-2 * time.Hour), 15, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.SessionDuration(start, tt.end, tt.breaks)
			assert.False(t, got.IsNegative())
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}
