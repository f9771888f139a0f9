// Package clock abstracts the current time behind an injectable interface
// so streak, badge, and review-scheduling logic stays deterministic in tests.
package clock

import (
	"time"

	"github.com/openaws/openaws-api/internal/domain"
)

// Clock supplies the current instant, calendar date, and local hour.
type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time

	// Today returns the current calendar date in the record's date layout.
	Today() string

	// LocalHour returns the device-local hour of day (0-23). Time-of-day
	// badges deliberately use the device's zone, not UTC.
	LocalHour() int
}

// systemClock reads the real system time.
type systemClock struct{}

// NewSystem creates a Clock backed by the system time.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Today() string {
	return time.Now().Format(domain.DateLayout)
}

func (systemClock) LocalHour() int {
	return time.Now().Hour()
}

// Frozen is a Clock pinned to a fixed instant, for tests.
type Frozen struct {
	Instant time.Time
	Hour    int
}

// NewFrozen creates a Clock pinned to the given instant. The local hour
// defaults to the instant's hour and can be overridden on the struct.
func NewFrozen(instant time.Time) *Frozen {
	return &Frozen{Instant: instant, Hour: instant.Hour()}
}

func (f *Frozen) Now() time.Time {
	return f.Instant
}

func (f *Frozen) Today() string {
	return f.Instant.Format(domain.DateLayout)
}

func (f *Frozen) LocalHour() int {
	return f.Hour
}

// Advance moves the frozen instant forward, keeping the hour in sync.
func (f *Frozen) Advance(d time.Duration) {
	f.Instant = f.Instant.Add(d)
	f.Hour = f.Instant.Hour()
}
