package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	portsrepo "github.com/SscSPs/bankroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bankroll_app/internal/core/ports/services"
	"github.com/SscSPs/bankroll_app/internal/dto"
)

type backupService struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	settings portssvc.SettingsSvcFacade
}

// NewBackupService creates the export/import service over every repository.
func NewBackupService(repos portsrepo.RepositoryProvider, settings portssvc.SettingsSvcFacade, options ...ServiceOption) portssvc.BackupSvcFacade {
	return &backupService{
		BaseService: newBaseService(options),
		repos:       repos,
		settings:    settings,
	}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

func (s *backupService) Export(ctx context.Context) (*dto.ExportDocument, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(snap.Platforms))
	for _, p := range snap.Platforms {
		names[p.PlatformID] = p.Name
	}

	doc := &dto.ExportDocument{
		ExportVersion:  dto.ExportVersion,
		ExportDate:     s.Now(),
		BaseCurrency:   s.settings.GetSettings(ctx).BaseCurrency,
		Platforms:      snap.Platforms,
		LiveSessions:   snap.LiveSessions,
		OnlineSessions: make([]dto.ExportOnlineSession, len(snap.OnlineSessions)),
		Deposits:       make([]dto.ExportDeposit, len(snap.Deposits)),
		Withdrawals:    make([]dto.ExportWithdrawal, len(snap.Withdrawals)),
		Adjustments:    make([]dto.ExportAdjustment, len(snap.Adjustments)),
	}
	for i, o := range snap.OnlineSessions {
		doc.OnlineSessions[i] = dto.ExportOnlineSession{OnlineSession: o, PlatformName: names[o.PlatformID]}
	}
	for i, d := range snap.Deposits {
		doc.Deposits[i] = dto.ExportDeposit{Deposit: d, PlatformName: names[d.PlatformID]}
	}
	for i, w := range snap.Withdrawals {
		doc.Withdrawals[i] = dto.ExportWithdrawal{Withdrawal: w, PlatformName: names[w.PlatformID]}
	}
	for i, a := range snap.Adjustments {
		doc.Adjustments[i] = dto.ExportAdjustment{Adjustment: a}
		if a.PlatformID != nil {
			doc.Adjustments[i].PlatformName = names[*a.PlatformID]
		}
	}

	s.LogInfo(ctx, "Ledger exported",
		slog.Int("platforms", len(doc.Platforms)),
		slog.Int("live_sessions", len(doc.LiveSessions)),
		slog.Int("online_sessions", len(doc.OnlineSessions)))
	return doc, nil
}

// Import inserts the planned records in one transaction. Imported transfers are history:
// platform balances arrive with the platforms and are not recomputed.
func (s *backupService) Import(ctx context.Context, doc dto.ExportDocument, userID string) (*dto.ImportSummary, error) {
	if doc.ExportVersion != dto.ExportVersion {
		return nil, fmt.Errorf("%w: unsupported export version %d", apperrors.ErrValidation, doc.ExportVersion)
	}
	if base := s.settings.GetSettings(ctx).BaseCurrency; doc.BaseCurrency != "" && doc.BaseCurrency != base {
		s.LogInfo(ctx, "Importing backup made with another base currency",
			slog.String("backup_base", doc.BaseCurrency), slog.String("base", base))
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	plan := PlanImport(snap, doc)
	if plan.Summary.Added() == 0 {
		return &plan.Summary, nil
	}

	tx, err := s.repos.TxManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.repos.TxManager.Rollback(ctx, tx) // no-op once committed

	for _, p := range plan.Platforms {
		if err := s.repos.PlatformRepo.SavePlatformInTx(ctx, tx, p); err != nil {
			return nil, s.importFailed(ctx, err, "platform", p.PlatformID)
		}
	}
	for _, ls := range plan.LiveSessions {
		if err := s.repos.LiveSessionRepo.SaveLiveSessionInTx(ctx, tx, ls); err != nil {
			return nil, s.importFailed(ctx, err, "live session", ls.SessionID)
		}
	}
	for _, o := range plan.OnlineSessions {
		if err := s.repos.OnlineSessionRepo.SaveOnlineSessionInTx(ctx, tx, o); err != nil {
			return nil, s.importFailed(ctx, err, "online session", o.SessionID)
		}
	}
	for _, d := range plan.Deposits {
		if err := s.repos.DepositRepo.SaveDepositInTx(ctx, tx, d); err != nil {
			return nil, s.importFailed(ctx, err, "deposit", d.DepositID)
		}
	}
	for _, w := range plan.Withdrawals {
		if err := s.repos.WithdrawalRepo.SaveWithdrawalInTx(ctx, tx, w); err != nil {
			return nil, s.importFailed(ctx, err, "withdrawal", w.WithdrawalID)
		}
	}
	for _, a := range plan.Adjustments {
		if err := s.repos.AdjustmentRepo.SaveAdjustmentInTx(ctx, tx, a); err != nil {
			return nil, s.importFailed(ctx, err, "adjustment", a.AdjustmentID)
		}
	}
	if err := s.repos.TxManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Backup imported", slog.String("user_id", userID), slog.Int("added", plan.Summary.Added()))
	return &plan.Summary, nil
}

func (s *backupService) importFailed(ctx context.Context, err error, kind, id string) error {
	s.LogError(ctx, err, "Import aborted", slog.String("kind", kind), slog.String("id", id))
	return fmt.Errorf("import %s %s: %w", kind, id, err)
}

func (s *backupService) snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.Platforms, err = s.repos.PlatformRepo.ListPlatforms(ctx); err != nil {
		return snap, err
	}
	if snap.LiveSessions, err = s.repos.LiveSessionRepo.ListAllLiveSessions(ctx); err != nil {
		return snap, err
	}
	if snap.OnlineSessions, err = s.repos.OnlineSessionRepo.ListAllOnlineSessions(ctx); err != nil {
		return snap, err
	}
	if snap.Deposits, err = s.repos.DepositRepo.ListDeposits(ctx, ""); err != nil {
		return snap, err
	}
	if snap.Withdrawals, err = s.repos.WithdrawalRepo.ListWithdrawals(ctx, ""); err != nil {
		return snap, err
	}
	if snap.Adjustments, err = s.repos.AdjustmentRepo.ListAdjustments(ctx); err != nil {
		return snap, err
	}
	return snap, nil
}
