package profile

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFn
	nowFn = func() time.Time { return at }
	t.Cleanup(func() { nowFn = prev })
}

func TestSessionID_Format(t *testing.T) {
	withClock(t, time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC))

	got := SessionID("user123")
	assert.Equal(t, "user123-20240307", got)
	assert.Regexp(t, regexp.MustCompile(`^user123-\d{8}$`), got)
}

func TestSessionID_SameDayIdempotent(t *testing.T) {
	withClock(t, time.Date(2024, 3, 7, 0, 0, 1, 0, time.UTC))
	first := SessionID("user123")

	withClock(t, time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC))
	second := SessionID("user123")

	assert.Equal(t, first, second)
}

func TestSessionID_DifferentDays(t *testing.T) {
	withClock(t, time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC))
	first := SessionID("user123")

	withClock(t, time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC))
	second := SessionID("user123")

	assert.NotEqual(t, first, second)
}

func TestSessionID_UTCDate(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	withClock(t, time.Date(2024, 3, 7, 23, 30, 0, 0, loc))

	assert.Equal(t, "user123-20240308", SessionID("user123"))
}
