package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveSession_CanVerify(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		s := &domain.LiveSession{Location: "Casino", Game: holdem()}
		s.StartTime = start
		assert.ErrorIs(t, s.CanVerify(), apperrors.ErrNotReady)
	})

	t.Run("missing fields", func(t *testing.T) {
		s := stoppedLive(t)
		s.Location = ""
		s.Game.SmallBlind = d("0")
		err := s.CanVerify()
		assert.ErrorIs(t, err, apperrors.ErrNotReady)
		assert.Contains(t, err.Error(), "location")
		assert.Contains(t, err.Error(), "small blind")
	})

	t.Run("zero duration", func(t *testing.T) {
		s := stoppedLive(t)
		s.BreakMinutes = 180
		assert.ErrorIs(t, s.CanVerify(), apperrors.ErrInvalidDuration)
	})

	t.Run("ready", func(t *testing.T) {
		assert.NoError(t, stoppedLive(t).CanVerify())
	})
}

func TestLiveSession_VerifyIsOneWay(t *testing.T) {
	s := stoppedLive(t)
	require.NoError(t, s.Verify(usd))
	assert.True(t, s.IsVerified)
	assert.True(t, d("64.5").Equal(s.NetProfitLossBase))

	assert.ErrorIs(t, s.Verify(usd), apperrors.ErrAlreadyVerified)
	assert.True(t, s.IsVerified)
}

func stoppedOnline(t *testing.T) *domain.OnlineSession {
	t.Helper()
	s := &domain.OnlineSession{
		SessionID:     "online-1",
		PlatformID:    "p1",
		Game:          holdem(),
		TableCount:    2,
		BalanceBefore: d("500"),
		BalanceAfter:  d("650"),
	}
	s.StartTime = start
	require.NoError(t, s.Stop(start.Add(time.Hour)))
	return s
}

func TestOnlineSession_VerifyCommitsBalance(t *testing.T) {
	s := stoppedOnline(t)
	platform := &domain.Platform{PlatformID: "p1", CurrencyCode: "USD", Balance: d("500"), LatestRate: d("1")}

	assert.ErrorIs(t, s.Verify(platform, usd), apperrors.ErrDiscrepancyUnresolved)
	assert.True(t, d("500").Equal(platform.Balance))

	s.DiscrepancyResolved = true
	require.NoError(t, s.Verify(platform, usd))
	assert.True(t, s.IsVerified)
	assert.True(t, d("650").Equal(platform.Balance))
	assert.True(t, d("150").Equal(s.NetProfitLoss))

	assert.ErrorIs(t, s.ApplyPatch(domain.OnlineSessionPatch{BalanceAfter: ptr(d("700"))}), apperrors.ErrLocked)
	assert.ErrorIs(t, s.ApplyPatch(domain.OnlineSessionPatch{PlatformID: ptr("p2")}), apperrors.ErrLocked)
	assert.NoError(t, s.ApplyPatch(domain.OnlineSessionPatch{Notes: ptr("good run")}))
}

func TestOnlineSession_VerifyRejectsOtherPlatform(t *testing.T) {
	s := stoppedOnline(t)
	s.DiscrepancyResolved = true
	err := s.Verify(&domain.Platform{PlatformID: "p2"}, usd)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.False(t, s.IsVerified)
}
