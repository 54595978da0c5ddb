package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
)

// Verification is one-way. These methods never clear IsVerified.

// CanVerify reports why a live session cannot be verified yet, or nil when it can.
// A zero duration yields ErrInvalidDuration; missing fields yield ErrNotReady.
func (s *LiveSession) CanVerify() error {
	if s.IsVerified {
		return apperrors.ErrAlreadyVerified
	}
	if s.IsActive() {
		return fmt.Errorf("%w: session is still active", apperrors.ErrNotReady)
	}
	if missing := missingFields(s.Game, map[string]bool{"location": strings.TrimSpace(s.Location) == ""}); missing != "" {
		return fmt.Errorf("%w: missing %s", apperrors.ErrNotReady, missing)
	}
	if !s.DurationHours().IsPositive() {
		return apperrors.ErrInvalidDuration
	}
	return nil
}

// Verify finalizes the derived fields and locks the monetary fields.
func (s *LiveSession) Verify(settings Settings) error {
	if err := s.CanVerify(); err != nil {
		return err
	}
	s.Finalize(settings)
	s.IsVerified = true
	return nil
}

// CanVerify reports why an online session cannot be verified yet, or nil when it can.
func (s *OnlineSession) CanVerify() error {
	if s.IsVerified {
		return apperrors.ErrAlreadyVerified
	}
	if s.IsActive() {
		return fmt.Errorf("%w: session is still active", apperrors.ErrNotReady)
	}
	if missing := missingFields(s.Game, map[string]bool{"platform": strings.TrimSpace(s.PlatformID) == ""}); missing != "" {
		return fmt.Errorf("%w: missing %s", apperrors.ErrNotReady, missing)
	}
	if !s.DurationHours().IsPositive() {
		return apperrors.ErrInvalidDuration
	}
	if !s.DiscrepancyResolved {
		return apperrors.ErrDiscrepancyUnresolved
	}
	return nil
}

// Verify finalizes the session, locks its balances and commits BalanceAfter to the platform.
// The caller persists both records together.
func (s *OnlineSession) Verify(platform *Platform, settings Settings) error {
	if platform == nil || platform.PlatformID != s.PlatformID {
		return fmt.Errorf("%w: platform does not match session", apperrors.ErrValidation)
	}
	if err := s.CanVerify(); err != nil {
		return err
	}
	s.Finalize(*platform, settings)
	s.IsVerified = true
	platform.CommitSessionBalance(*s)
	return nil
}

func missingFields(g GameInfo, extra map[string]bool) string {
	var missing []string
	for name, isMissing := range extra {
		if isMissing {
			missing = append(missing, name)
		}
	}
	if strings.TrimSpace(g.GameType) == "" {
		missing = append(missing, "game type")
	}
	if !g.SmallBlind.IsPositive() {
		missing = append(missing, "small blind")
	}
	if !g.BigBlind.IsPositive() {
		missing = append(missing, "big blind")
	}
	return strings.Join(missing, ", ")
}
