package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/bankroll_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		fmt.Errorf("%w: bad rate", apperrors.ErrValidation):     http.StatusBadRequest,
		apperrors.ErrUnauthorized:                               http.StatusUnauthorized,
		apperrors.NewNotFoundError("platform p1"):               http.StatusNotFound,
		fmt.Errorf("wrapped: %w", apperrors.ErrDuplicate):       http.StatusConflict,
		apperrors.ErrLocked:                                     http.StatusConflict,
		apperrors.ErrAlreadyVerified:                            http.StatusConflict,
		apperrors.ErrNotReady:                                   http.StatusUnprocessableEntity,
		apperrors.ErrInvalidDuration:                            http.StatusUnprocessableEntity,
		apperrors.ErrDiscrepancyUnresolved:                      http.StatusUnprocessableEntity,
		apperrors.NewAppError(http.StatusTeapot, "custom", nil): http.StatusTeapot,
		errors.New("boom"):                                      http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusFor(err), err.Error())
	}
}
