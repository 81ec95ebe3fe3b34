// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calday

import (
	"fmt"
	"strings"
	"time"
)

// Interval represents the unit used by Day.Add.
type Interval int

const (
	IntervalDay Interval = iota + 1
	IntervalWeek
	IntervalMonth
	IntervalQuarter
	IntervalYear
)

var intervalNames = map[Interval]string{
	IntervalDay:     "day",
	IntervalWeek:    "week",
	IntervalMonth:   "month",
	IntervalQuarter: "quarter",
	IntervalYear:    "year",
}

func (i Interval) String() string {
	if n, ok := intervalNames[i]; ok {
		return n
	}
	return fmt.Sprintf("Interval(%d)", int(i))
}

// ParseInterval parses one of day, week, month, quarter or year, in
// either singular or plural form and in any case.
func ParseInterval(val string) (Interval, error) {
	lc := strings.TrimSuffix(strings.ToLower(val), "s")
	for i, n := range intervalNames {
		if n == lc {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, val)
}

// Add returns d offset by amount units. Day and week offsets move by
// whole days. Month and quarter offsets keep the day of month where
// possible and otherwise clamp to the last day of the resulting month,
// so that January 31 plus one month is the last day of February.
// Year offsets keep the month and day of month; February 29 in a year
// that is not a leap year rolls forward to March 1.
// An error wrapping ErrInvalidInterval is returned for any other unit.
func (d Day) Add(unit Interval, amount int) (Day, error) {
	switch unit {
	case IntervalDay:
		return d.AddDays(amount), nil
	case IntervalWeek:
		return d.AddDays(7 * amount), nil
	case IntervalMonth:
		return d.AddMonths(amount), nil
	case IntervalQuarter:
		return d.AddMonths(3 * amount), nil
	case IntervalYear:
		return d.AddYears(amount), nil
	}
	return d, fmt.Errorf("%w: %v", ErrInvalidInterval, unit)
}

// MustAdd is like Add but panics on an invalid interval.
func (d Day) MustAdd(unit Interval, amount int) Day {
	n, err := d.Add(unit, amount)
	if err != nil {
		panic(err)
	}
	return n
}

// AddDays returns the day n days after d, or before d if n is negative.
func (d Day) AddDays(n int) Day {
	if n == 0 {
		return d
	}
	return fromOrdinal(d.ordinal() + int64(n))
}

// AddMonths returns d offset by n months with the day of month clamped
// to the last day of the resulting month.
func (d Day) AddMonths(n int) Day {
	year, month := normalizeMonth(d.year, int(d.month)-1+n)
	return Day{year: year, month: month, day: min(d.day, DaysInMonth(year, month))}
}

// AddYears returns d offset by n years. February 29 becomes March 1
// when the resulting year is not a leap year.
func (d Day) AddYears(n int) Day {
	return New(d.year+n, d.month, d.day)
}

// Tomorrow returns the day after d.
func (d Day) Tomorrow() Day {
	return d.AddDays(1)
}

// Yesterday returns the day before d.
func (d Day) Yesterday() Day {
	return d.AddDays(-1)
}

type fields struct {
	year  int
	month time.Month
	day   int
}

// Field represents a field to be replaced by Day.Set.
type Field func(*fields)

// WithYear replaces the year.
func WithYear(year int) Field {
	return func(f *fields) {
		f.year = year
	}
}

// WithMonth replaces the month. Months outside of January to December
// move into the adjacent years.
func WithMonth(month time.Month) Field {
	return func(f *fields) {
		f.month = month
	}
}

// WithDate replaces the day of month.
func WithDate(date int) Field {
	return func(f *fields) {
		f.day = date
	}
}

// Set returns a new Day with the specified fields replaced and all
// others retained from d. If the resulting day of month does not exist
// in the resulting month it is clamped to the last day of that month,
// eg. setting the month of July 31 to February yields February 28 or 29.
// A day of month less than 1 is normalized as per New.
func (d Day) Set(opts ...Field) Day {
	f := fields{year: d.year, month: d.month, day: d.day}
	for _, fn := range opts {
		fn(&f)
	}
	year, month := normalizeMonth(f.year, int(f.month)-1)
	if last := DaysInMonth(year, month); f.day > last {
		return Day{year: year, month: month, day: last}
	}
	return New(year, month, f.day)
}
