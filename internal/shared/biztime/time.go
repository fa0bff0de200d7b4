// Package biztime holds the business timezone. Storage is UTC; the business
// zone only decides where a calendar day starts and ends.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	bizLocation *time.Location
	once        sync.Once
	initErr     error
)

// Init sets the business timezone once. Empty tz means UTC.
func Init(tz string) error {
	once.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to initialize default timezone: %v", err))
		}
	}
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses a YYYY-MM-DD date in the business timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, Location())
}

// StartOfDayUTC is 00:00 of t's business day, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// EndOfDayUTC is the last instant of t's business day, in UTC.
func EndOfDayUTC(t time.Time) time.Time {
	return StartOfDayUTC(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
