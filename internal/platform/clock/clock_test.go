package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrozen(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, 8, 31, 7, 30, 0, 0, time.UTC)
	frozen := NewFrozen(instant)

	assert.Equal(t, instant, frozen.Now())
	assert.Equal(t, "2026-08-31", frozen.Today())
	assert.Equal(t, 7, frozen.LocalHour())

	frozen.Advance(18 * time.Hour)
	assert.Equal(t, "2026-09-01", frozen.Today())
	assert.Equal(t, 1, frozen.LocalHour())

	// The hour can be pinned independently of the instant, the way a device
	// in another zone would report it.
	frozen.Hour = 23
	assert.Equal(t, 23, frozen.LocalHour())
}

func TestSystemClockUsesUTC(t *testing.T) {
	t.Parallel()

	now := NewSystem().Now()
	_, offset := now.Zone()
	assert.Equal(t, 0, offset)
}
