package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a Failure independently of its transport code.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindDuplicateName        Kind = "duplicate_name"
	KindDuplicateEmail       Kind = "duplicate_email"
	KindInvalidState         Kind = "invalid_state"
	KindConflict             Kind = "conflict"
	KindValidation           Kind = "validation"
	KindInsufficientPayment  Kind = "insufficient_payment"
	KindPrecondition         Kind = "precondition"
	KindReferentialIntegrity Kind = "referential_integrity"
	KindUnauthorized         Kind = "unauthorized"
	KindForbidden            Kind = "forbidden"
	KindStore                Kind = "store"
	KindInternal             Kind = "internal"
)

const (
	DetailAmountPaid   = "amount_paid"
	DetailTotalCharges = "total_charges"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Kind    Kind           `json:"kind,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// ForbiddenError is returned when the caller's role is not allowed on an endpoint.
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions", Kind: KindForbidden}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the store error behind a KindStore failure.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Kind:    KindValidation,
		}
	}

	return nil
}

// Validation reports input that breaks a domain rule.
func Validation(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindValidation,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
		Kind:    KindUnauthorized,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Kind:    KindNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Kind:    KindConflict,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
		Kind:    KindForbidden,
	}
}

func DuplicateName(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Kind:    KindDuplicateName,
	}
}

func DuplicateEmail(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Kind:    KindDuplicateEmail,
	}
}

// InvalidState reports an entity whose status does not allow the requested transition.
func InvalidState(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Kind:    KindInvalidState,
	}
}

// InsufficientPayment carries both the paid amount and the computed total.
func InsufficientPayment(amountPaid, totalCharges float64) error {
	return &Failure{
		Code:    http.StatusPaymentRequired,
		Message: fmt.Sprintf("insufficient payment: paid %.2f, total charges %.2f", amountPaid, totalCharges),
		Kind:    KindInsufficientPayment,
		Details: map[string]any{
			DetailAmountPaid:   amountPaid,
			DetailTotalCharges: totalCharges,
		},
	}
}

func Precondition(msg string) error {
	return &Failure{
		Code:    http.StatusPreconditionFailed,
		Message: msg,
		Kind:    KindPrecondition,
	}
}

func ReferentialIntegrity(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Kind:    KindReferentialIntegrity,
	}
}

// Store wraps an unclassified storage error. The original error stays reachable through errors.Is/As.
func Store(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
		Kind:    KindStore,
		cause:   err,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of the first Failure found in the error chain.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// GetDetails returns the details of the first Failure found in the error chain.
func GetDetails(err error) map[string]any {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}

// GetMessage returns the message of the first Failure found in the error chain.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}

func Is(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}
