package model

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusCancelled  Status = "cancelled"
)

// ActiveStatuses hold a room for their stay window.
var ActiveStatuses = []Status{StatusConfirmed, StatusCheckedIn}

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) Active() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

func (s Status) CanCheckIn() bool {
	return s == StatusConfirmed
}

func (s Status) CanCheckOut() bool {
	return s == StatusCheckedIn
}

func (s Status) CanCancel() bool {
	return s == StatusConfirmed
}

// Billable reports whether charges may still be added to the reservation.
func (s Status) Billable() bool {
	return s.Active()
}

type LogEvent string

const (
	LogEventCheckIn  LogEvent = "check-in"
	LogEventCheckOut LogEvent = "check-out"
)
