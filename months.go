// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calday

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"
)

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
	months          = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func daysInMonthForYearInit(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, time.Month(i+1))
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, time.Month(i+1))
	}
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in the given month for the given year.
// Months outside of January to December are normalized into the adjacent
// years first.
func DaysInMonth(year int, month time.Month) int {
	year, month = normalizeMonth(year, int(month)-1)
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// LastDayOfMonth returns the last valid day of the given month, ie.
// the value that out of range days of month are clamped to.
func LastDayOfMonth(year int, month time.Month) Day {
	year, month = normalizeMonth(year, int(month)-1)
	return Day{year: year, month: month, day: DaysInMonth(year, month)}
}

// normalizeMonth converts a zero based month offset, which may be negative or
// exceed 11, into a year and time.Month.
func normalizeMonth(year, offset int) (int, time.Month) {
	y, m := floorDiv(offset, 12), floorMod(offset, 12)
	return year + y, time.Month(m + 1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case, or
// a 1 or 2 digit numeric month in the range 1-12.
func ParseMonth(val string) (time.Month, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month: %d", n)
		}
		return time.Month(n), nil
	}
	lc := strings.ToLower(val)
	if len(lc) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return time.Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// FirstOfMonth returns the first day of the month containing d.
func (d Day) FirstOfMonth() Day {
	return Day{year: d.year, month: d.month, day: 1}
}

// LastOfMonth returns the last day of the month containing d.
func (d Day) LastOfMonth() Day {
	return LastDayOfMonth(d.year, d.month)
}

// SameMonth returns true if a and b fall in the same month of the same year.
func SameMonth(a, b Day) bool {
	return a.year == b.year && a.month == b.month
}

// IsNextMonth returns true if d falls in the month following the month
// of ref.
func IsNextMonth(d, ref Day) bool {
	y, m := normalizeMonth(ref.year, int(ref.month))
	return d.year == y && d.month == m
}

// IsPreviousMonth returns true if d falls in the month preceding the month
// of ref.
func IsPreviousMonth(d, ref Day) bool {
	y, m := normalizeMonth(ref.year, int(ref.month)-2)
	return d.year == y && d.month == m
}

// GridDays is the number of days displayed by a month view, six
// complete weeks.
const GridDays = 6 * 7

// MonthGrid returns an iterator over the GridDays days of a month view for
// the specified month. The first day yielded is the firstWeekday on or
// before the first of the month, so the leading and trailing days belong
// to the adjacent months.
func MonthGrid(year int, month time.Month, firstWeekday time.Weekday) iter.Seq[Day] {
	first := New(year, month, 1)
	offset := floorMod(int(first.Weekday())-int(firstWeekday), 7)
	return Range(first.AddDays(-offset), GridDays)
}
