package timezone_test

import (
	"resort/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())

	year, month, day := timezone.Now().Date()
	assert.Equal(t, time.Date(year, month, day, 0, 0, 0, 0, time.UTC), today)
}

func TestDayRange(t *testing.T) {
	instant := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	start, end := timezone.DayRange(instant)

	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.False(t, instant.Before(start))
	assert.True(t, instant.Before(end))
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2025-06-01")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2025-06-01", timezone.Format(parsed, time.DateOnly))

	_, err = timezone.Parse(time.DateOnly, "01/06/2025")
	assert.Error(t, err)
}
