package mapping

import (
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/models"
)

// ToModelPlatform converts a domain Platform to a model Platform
func ToModelPlatform(d domain.Platform) models.Platform {
	return models.Platform{
		PlatformID:   d.PlatformID,
		Name:         d.Name,
		CurrencyCode: d.CurrencyCode,
		Balance:      d.Balance,
		LatestRate:   d.LatestRate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPlatform converts a model Platform to a domain Platform
func ToDomainPlatform(m models.Platform) domain.Platform {
	return domain.Platform{
		PlatformID:   m.PlatformID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		Balance:      m.Balance,
		LatestRate:   m.LatestRate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPlatformSlice converts a slice of model Platforms to a slice of domain Platforms
func ToDomainPlatformSlice(ms []models.Platform) []domain.Platform {
	ds := make([]domain.Platform, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPlatform(m)
	}
	return ds
}
