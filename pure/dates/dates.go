// Package dates checks instants against time ranges.
package dates

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// NewTimeSpan returns the span from from to to. Reversed bounds are swapped.
func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

const epsilon = time.Millisecond

// Now returns a two millisecond span centred on the current instant.
func Now() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-epsilon), now.Add(epsilon))
}

// Between reports whether t lies strictly after from and strictly before to.
// It is false whenever from is not before to.
func Between(t, from, to time.Time) bool {
	if !from.Before(to) {
		return false
	}
	return Within(t, NewTimeSpan(from, to)) && !t.Equal(from)
}

// Within reports whether t lies in span, start inclusive and end exclusive.
func Within(t time.Time, span TimeSpan) bool {
	return span.Contains(t)
}
