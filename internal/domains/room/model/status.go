package model

type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}

// Bookable reports whether a reservation may be placed on the room.
func (s Status) Bookable() bool {
	return s.Valid() && s != StatusMaintenance
}

// CanSetManually reports whether staff may move the room from s to next outside the reservation flow.
// Only available and maintenance rooms can be toggled; reserved and occupied follow their reservations.
func (s Status) CanSetManually(next Status) bool {
	switch next {
	case StatusMaintenance:
		return s == StatusAvailable || s == StatusMaintenance
	case StatusAvailable:
		return s == StatusMaintenance || s == StatusAvailable
	default:
		return false
	}
}
