package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTCMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 23:30 New York on March 5 is already March 6 in UTC.
	in := time.Date(2026, 3, 5, 23, 30, 0, 0, loc)
	got := UTCMidnight(in)

	assert.Equal(t, time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("01-09-2026")
	assert.Error(t, err)
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDate(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), now))
	// Same calendar day is not in the past, whatever the hour.
	assert.False(t, IsPastDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsPastDate(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), now))
}
