package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateWriteError(t *testing.T) {
	unique := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, translateWriteError(unique, "platform", "p1"), apperrors.ErrDuplicate)

	fk := &pgconn.PgError{Code: "23503"}
	assert.ErrorIs(t, translateWriteError(fk, "deposit", "d1"), apperrors.ErrValidation)

	other := errors.New("connection reset")
	err := translateWriteError(other, "deposit", "d1")
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestTranslateReadError(t *testing.T) {
	assert.ErrorIs(t, translateReadError(pgx.ErrNoRows, "platform", "p1"), apperrors.ErrNotFound)

	other := errors.New("timeout")
	err := translateReadError(other, "platform", "p1")
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "p1")
}

func TestExpectOneRow(t *testing.T) {
	assert.ErrorIs(t, expectOneRow(pgconn.NewCommandTag("UPDATE 0"), nil, "platform", "p1"), apperrors.ErrNotFound)
	assert.NoError(t, expectOneRow(pgconn.NewCommandTag("UPDATE 1"), nil, "platform", "p1"))
}
