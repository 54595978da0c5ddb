package domain_test

import (
	"testing"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit_Price(t *testing.T) {
	t.Run("same currency fee", func(t *testing.T) {
		dep := domain.Deposit{PlatformID: "p1", AmountSent: d("200"), AmountReceived: d("195")}
		require.NoError(t, dep.Price(domain.ExchangeInputAmounts, decimal.Zero))
		assert.True(t, d("5").Equal(dep.ProcessingFee))
		assert.True(t, dep.EffectiveRate.IsZero())
	})

	t.Run("fx rate from amounts", func(t *testing.T) {
		dep := domain.Deposit{PlatformID: "p1", AmountSent: d("200"), AmountReceived: d("195"), IsForeignExchange: true}
		require.NoError(t, dep.Price(domain.ExchangeInputAmounts, decimal.Zero))
		assert.True(t, d("0.975").Equal(dep.EffectiveRate))
		assert.True(t, dep.ProcessingFee.IsZero())
		assert.True(t, d("1.0256").Equal(dep.BaseRate()))
	})

	t.Run("fx direct rate", func(t *testing.T) {
		dep := domain.Deposit{PlatformID: "p1", AmountSent: d("100"), IsForeignExchange: true}
		require.NoError(t, dep.Price(domain.ExchangeInputDirect, d("0.92")))
		assert.True(t, d("92").Equal(dep.AmountReceived))
	})

	t.Run("profit-making same currency", func(t *testing.T) {
		dep := domain.Deposit{PlatformID: "p1", AmountSent: d("100"), AmountReceived: d("110")}
		assert.ErrorIs(t, dep.Price(domain.ExchangeInputAmounts, decimal.Zero), apperrors.ErrValidation)
	})

	t.Run("fx missing amount", func(t *testing.T) {
		dep := domain.Deposit{PlatformID: "p1", AmountSent: d("100"), IsForeignExchange: true}
		assert.ErrorIs(t, dep.Price(domain.ExchangeInputAmounts, decimal.Zero), apperrors.ErrValidation)
	})

	t.Run("zero sent", func(t *testing.T) {
		dep := domain.Deposit{PlatformID: "p1"}
		assert.ErrorIs(t, dep.Price(domain.ExchangeInputAmounts, decimal.Zero), apperrors.ErrValidation)
	})
}

func TestWithdrawal_Price(t *testing.T) {
	w := domain.Withdrawal{PlatformID: "p1", AmountRequested: d("300"), AmountReceived: d("330"), IsForeignExchange: true}
	require.NoError(t, w.Price(domain.ExchangeInputAmounts, decimal.Zero))
	assert.True(t, d("1.1").Equal(w.EffectiveRate))

	same := domain.Withdrawal{PlatformID: "p1", AmountRequested: d("300"), AmountReceived: d("297")}
	require.NoError(t, same.Price(domain.ExchangeInputAmounts, decimal.Zero))
	assert.True(t, d("3").Equal(same.ProcessingFee))
}

func TestPlatform_TransferEffects(t *testing.T) {
	p := domain.Platform{PlatformID: "p1", CurrencyCode: "EUR", Balance: d("100"), LatestRate: d("1.08")}

	p.ApplyDeposit(domain.Deposit{AmountReceived: d("92"), IsForeignExchange: true, EffectiveRate: d("0.92")})
	assert.True(t, d("192").Equal(p.Balance))
	assert.True(t, d("1.087").Equal(p.LatestRate))

	p.ApplyWithdrawal(domain.Withdrawal{AmountRequested: d("50"), IsForeignExchange: true, EffectiveRate: d("1.1")})
	assert.True(t, d("142").Equal(p.Balance))
	assert.True(t, d("1.1").Equal(p.LatestRate))

	p.ApplyWithdrawal(domain.Withdrawal{AmountRequested: d("42"), ProcessingFee: d("2")})
	assert.True(t, d("100").Equal(p.Balance))
	assert.True(t, d("1.1").Equal(p.LatestRate))
}

func TestAdjustment_Derive(t *testing.T) {
	a := domain.Adjustment{Name: "Rakeback", Amount: d("-20"), CurrencyCode: "eur", ExchangeRate: d("1.1")}
	require.NoError(t, a.Derive())
	assert.True(t, d("-22").Equal(a.AmountBase))
	assert.Equal(t, "EUR", a.CurrencyCode)

	online := domain.Adjustment{Name: "Bonus", IsOnline: true, ExchangeRate: d("1")}
	assert.ErrorIs(t, online.Derive(), apperrors.ErrValidation)
}
