package timezone

import (
	"resort/config"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimezone = "UTC"

var appLocation = time.UTC

func init() {
	appLocation = load(config.Get().App.Timezone)
}

func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Resort timezone initialized")

	return loc
}

// Now returns the current time at the resort.
func Now() time.Time {
	return time.Now().In(appLocation)
}

// ToAppTime converts t to the resort timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse parses value as a resort local time.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

// Format formats t in the resort timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Today is the resort's current calendar date, normalized to midnight UTC so it compares
// directly with DATE columns.
func Today() time.Time {
	year, month, day := Now().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayRange returns the half-open [start, end) instants of the resort day containing t.
func DayRange(t time.Time) (time.Time, time.Time) {
	year, month, day := ToAppTime(t).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, appLocation)

	return start, start.AddDate(0, 0, 1)
}
