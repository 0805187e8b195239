package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Layouts(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	want := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2026-03-02T09:00:00+08:00",
		"2026-03-02T01:00:00Z",
		"2026-03-02T09:00:00",
		"2026-03-02T09:00",
		"2026-03-02 09:00:00",
		" 2026-03-02 09:00 ",
	} {
		got, err := Parse(in, loc)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
		assert.Equal(t, time.UTC, got.Location(), in)
	}
}

func TestParse_TruncatesFraction(t *testing.T) {
	got, err := Parse("2026-03-02T01:00:00.750Z", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Nanosecond())
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2026-13-01T09:00", "09:00"} {
		_, err := Parse(in, time.UTC)
		assert.ErrorIs(t, err, ErrInvalid, in)
	}
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	from, to := DayBounds(now, loc)
	assert.Equal(t, time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC), to)
}
