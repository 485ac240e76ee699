package postgres

import (
	"context"
	"errors"
	"strings"

	"resort/shared/constant"
	"resort/shared/failure"

	"github.com/lib/pq"
)

const (
	constraintSuffixEmail        = "email_key"
	constraintSuffixTransaction  = "transaction_reference_key"
	constraintRoomStayExclusion  = "reservations_room_stay_excl"
	messageDuplicateValue        = "a record with the same value already exists"
	messageDuplicateEmail        = "email is already registered to another guest"
	messageDuplicateTransaction  = "transaction reference has already been used"
	messageRoomAlreadyBooked     = "room is already booked for the requested dates"
	messageConcurrentUpdate      = "the record was modified concurrently, please retry"
	messageReferencedRecord      = "the record is referenced by other records"
	messageConstraintViolation   = "the value violates a data constraint"
	messageTransactionTimeout    = "the operation timed out"
)

// TranslateError maps postgres errors into failure kinds. Failures pass through untouched
// and unclassified errors become store failures.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			switch {
			case strings.HasSuffix(pqErr.Constraint, constraintSuffixEmail):
				return failure.DuplicateEmail(messageDuplicateEmail) // nolint:wrapcheck
			case strings.HasSuffix(pqErr.Constraint, constraintSuffixTransaction):
				return failure.Conflict(messageDuplicateTransaction) // nolint:wrapcheck
			default:
				return failure.DuplicateName(messageDuplicateValue) // nolint:wrapcheck
			}
		case constant.PqErrorCodeExclusionViolation:
			if pqErr.Constraint == constraintRoomStayExclusion {
				return failure.Conflict(messageRoomAlreadyBooked) // nolint:wrapcheck
			}

			return failure.Conflict(pqErr.Message) // nolint:wrapcheck
		case constant.PqErrorCodeSerializationFailed:
			return failure.Conflict(messageConcurrentUpdate) // nolint:wrapcheck
		case constant.PqErrorCodeFkViolation:
			return failure.ReferentialIntegrity(messageReferencedRecord) // nolint:wrapcheck
		case constant.PqErrorCodeCheckViolation:
			return failure.Validation(messageConstraintViolation) // nolint:wrapcheck
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return failure.Store(errors.New(messageTransactionTimeout)) // nolint:wrapcheck
	}

	return failure.Store(err) // nolint:wrapcheck
}
