package mapping

import (
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/models"
)

// ToModelDeposit converts a domain Deposit to a model Deposit
func ToModelDeposit(d domain.Deposit) models.Deposit {
	return models.Deposit{
		DepositID:         d.DepositID,
		PlatformID:        d.PlatformID,
		DepositDate:       d.Date,
		AmountSent:        d.AmountSent,
		AmountReceived:    d.AmountReceived,
		IsForeignExchange: d.IsForeignExchange,
		EffectiveRate:     d.EffectiveRate,
		ProcessingFee:     d.ProcessingFee,
		Method:            d.Method,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeposit converts a model Deposit to a domain Deposit
func ToDomainDeposit(m models.Deposit) domain.Deposit {
	return domain.Deposit{
		DepositID:         m.DepositID,
		PlatformID:        m.PlatformID,
		Date:              m.DepositDate.UTC(),
		AmountSent:        m.AmountSent,
		AmountReceived:    m.AmountReceived,
		IsForeignExchange: m.IsForeignExchange,
		EffectiveRate:     m.EffectiveRate,
		ProcessingFee:     m.ProcessingFee,
		Method:            m.Method,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepositSlice converts a slice of model Deposits to a slice of domain Deposits
func ToDomainDepositSlice(ms []models.Deposit) []domain.Deposit {
	ds := make([]domain.Deposit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeposit(m)
	}
	return ds
}

// ToModelWithdrawal converts a domain Withdrawal to a model Withdrawal
func ToModelWithdrawal(d domain.Withdrawal) models.Withdrawal {
	return models.Withdrawal{
		WithdrawalID:      d.WithdrawalID,
		PlatformID:        d.PlatformID,
		WithdrawalDate:    d.Date,
		AmountRequested:   d.AmountRequested,
		AmountReceived:    d.AmountReceived,
		IsForeignExchange: d.IsForeignExchange,
		EffectiveRate:     d.EffectiveRate,
		ProcessingFee:     d.ProcessingFee,
		Method:            d.Method,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWithdrawal converts a model Withdrawal to a domain Withdrawal
func ToDomainWithdrawal(m models.Withdrawal) domain.Withdrawal {
	return domain.Withdrawal{
		WithdrawalID:      m.WithdrawalID,
		PlatformID:        m.PlatformID,
		Date:              m.WithdrawalDate.UTC(),
		AmountRequested:   m.AmountRequested,
		AmountReceived:    m.AmountReceived,
		IsForeignExchange: m.IsForeignExchange,
		EffectiveRate:     m.EffectiveRate,
		ProcessingFee:     m.ProcessingFee,
		Method:            m.Method,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWithdrawalSlice converts a slice of model Withdrawals to a slice of domain Withdrawals
func ToDomainWithdrawalSlice(ms []models.Withdrawal) []domain.Withdrawal {
	ds := make([]domain.Withdrawal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWithdrawal(m)
	}
	return ds
}

// ToModelAdjustment converts a domain Adjustment to a model Adjustment
func ToModelAdjustment(d domain.Adjustment) models.Adjustment {
	return models.Adjustment{
		AdjustmentID:   d.AdjustmentID,
		PlatformID:     d.PlatformID,
		Name:           d.Name,
		Amount:         d.Amount,
		AdjustmentDate: d.Date,
		CurrencyCode:   d.CurrencyCode,
		ExchangeRate:   d.ExchangeRate,
		AmountBase:     d.AmountBase,
		IsOnline:       d.IsOnline,
		Location:       d.Location,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdjustment converts a model Adjustment to a domain Adjustment
func ToDomainAdjustment(m models.Adjustment) domain.Adjustment {
	return domain.Adjustment{
		AdjustmentID: m.AdjustmentID,
		PlatformID:   m.PlatformID,
		Name:         m.Name,
		Amount:       m.Amount,
		Date:         m.AdjustmentDate.UTC(),
		CurrencyCode: m.CurrencyCode,
		ExchangeRate: m.ExchangeRate,
		AmountBase:   m.AmountBase,
		IsOnline:     m.IsOnline,
		Location:     m.Location,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAdjustmentSlice converts a slice of model Adjustments to a slice of domain Adjustments
func ToDomainAdjustmentSlice(ms []models.Adjustment) []domain.Adjustment {
	ds := make([]domain.Adjustment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdjustment(m)
	}
	return ds
}
