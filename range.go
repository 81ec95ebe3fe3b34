// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calday

import (
	"iter"
	"slices"
	"time"
)

// Bound is the set of types that may be used to specify the end
// of a Range: a Day or time.Time marks an exclusive end day and an int
// is a signed count of days.
type Bound interface {
	Day | time.Time | int
}

// Range returns an iterator over consecutive days starting at start.
//
// If end is an int, abs(end) days are yielded, moving forward in time
// for a positive end and backward for a negative one. If end is a Day
// or time.Time, the days from start toward end are yielded, excluding
// end itself, ie. the half open interval [start, end) when end is
// later than start and (end, start] when it is earlier.
//
// The returned iterator may be ranged over any number of times and
// yields the same sequence each time.
func Range[E Bound](start Day, end E) iter.Seq[Day] {
	var count int
	switch v := any(end).(type) {
	case int:
		count = v
	case Day:
		count = DaysBetween(start, v)
	case time.Time:
		count = DaysBetween(start, From(v))
	}
	step := int64(1)
	if count < 0 {
		step, count = -1, -count
	}
	return func(yield func(Day) bool) {
		o := start.ordinal()
		for i := 0; i < count; i++ {
			if !yield(fromOrdinal(o)) {
				return
			}
			o += step
		}
	}
}

// Days returns the days yielded by Range(start, end) as a slice.
func Days[E Bound](start Day, end E) []Day {
	return slices.Collect(Range(start, end))
}
