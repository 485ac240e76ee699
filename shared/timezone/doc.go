// Package timezone keeps the resort's wall clock.
//
// The location comes from APP_TIMEZONE and is loaded once on import; unknown or empty names
// fall back to UTC. Stay dates are calendar dates, so Today returns the resort's date at
// midnight UTC while DayRange gives the real instants bounding a resort day, which is what
// payment timestamps are compared against.
package timezone
