package failure_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"resort/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		kind    failure.Kind
		message string
	}{
		{name: "not found", err: failure.NotFound("guest not found"), code: http.StatusNotFound, kind: failure.KindNotFound, message: "guest not found"},
		{name: "duplicate name", err: failure.DuplicateName("amenity name already exists"), code: http.StatusConflict, kind: failure.KindDuplicateName, message: "amenity name already exists"},
		{name: "duplicate email", err: failure.DuplicateEmail("email already registered"), code: http.StatusConflict, kind: failure.KindDuplicateEmail, message: "email already registered"},
		{name: "invalid state", err: failure.InvalidState("Guest is already checked in!"), code: http.StatusConflict, kind: failure.KindInvalidState, message: "Guest is already checked in!"},
		{name: "conflict", err: failure.Conflict("room is already booked for these dates"), code: http.StatusConflict, kind: failure.KindConflict, message: "room is already booked for these dates"},
		{name: "validation", err: failure.Validation("quantity must be greater than 0"), code: http.StatusBadRequest, kind: failure.KindValidation, message: "quantity must be greater than 0"},
		{name: "bad request", err: failure.BadRequest(errors.New("unexpected EOF")), code: http.StatusBadRequest, kind: failure.KindValidation, message: "unexpected EOF"},
		{name: "precondition", err: failure.Precondition("no active reservation"), code: http.StatusPreconditionFailed, kind: failure.KindPrecondition, message: "no active reservation"},
		{name: "referential integrity", err: failure.ReferentialIntegrity("guest has active reservations"), code: http.StatusConflict, kind: failure.KindReferentialIntegrity, message: "guest has active reservations"},
		{name: "unauthorized", err: failure.Unauthorized("invalid email or password"), code: http.StatusUnauthorized, kind: failure.KindUnauthorized, message: "invalid email or password"},
		{name: "forbidden", err: failure.Forbidden("account is inactive"), code: http.StatusForbidden, kind: failure.KindForbidden, message: "account is inactive"},
		{name: "role not allowed", err: failure.ForbiddenError, code: http.StatusForbidden, kind: failure.KindForbidden, message: "You don't have the required permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.kind, failure.GetKind(tt.err))
			assert.Equal(t, tt.message, failure.GetMessage(tt.err))
			assert.True(t, failure.Is(tt.err, tt.kind))
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.Store(nil))
}

func TestInsufficientPayment(t *testing.T) {
	err := failure.InsufficientPayment(300, 340)

	assert.Equal(t, http.StatusPaymentRequired, failure.GetCode(err))
	assert.Equal(t, "insufficient payment: paid 300.00, total charges 340.00", err.Error())
	assert.Equal(t, map[string]any{
		failure.DetailAmountPaid:   300.0,
		failure.DetailTotalCharges: 340.0,
	}, failure.GetDetails(err))
}

func TestStore(t *testing.T) {
	err := failure.Store(sql.ErrConnDone)

	assert.Equal(t, failure.KindStore, failure.GetKind(err))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestWrappedChains(t *testing.T) {
	err := fmt.Errorf("failed to check in: %w", failure.InvalidState("This reservation has been cancelled!"))

	assert.Equal(t, failure.KindInvalidState, failure.GetKind(err))
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, "This reservation has been cancelled!", failure.GetMessage(err))
	assert.True(t, failure.Is(err, failure.KindInvalidState))
	assert.False(t, failure.Is(err, failure.KindConflict))
}

func TestPlainErrors(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, failure.KindInternal, failure.GetKind(err))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, "boom", failure.GetMessage(err))
	assert.Nil(t, failure.GetDetails(err))
	assert.False(t, failure.Is(nil, failure.KindInternal))
}
