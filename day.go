// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calday provides an immutable calendar day type together with
// calendar correct arithmetic, day range generation and predicates for
// testing days against collections of range descriptors such as
// disabled or highlighted dates.
//
// A Day has no time of day or time zone, it is identified solely by
// its year, month and day of month in the proleptic Gregorian calendar.
// Conversion to and from time.Time uses the local calendar fields:
//
//	d := calday.From(time.Now())
//	next, _ := d.Add(calday.IntervalMonth, 1)
//	fmt.Println(next.Time())
package calday

import (
	"errors"
	"fmt"
	"time"
)

// Day represents a single calendar day. The zero value is not a valid
// day, use New, From or Today to create one. Day values are always
// normalized so that == may be used to test for equality.
type Day struct {
	year  int
	month time.Month
	day   int
}

// Value is the set of types accepted wherever a day may be specified
// either as a Day or a time.Time.
type Value interface {
	Day | time.Time
}

// New returns the Day for the specified year, month and day of month.
// Values outside of their usual ranges are normalized in the same
// manner as time.Date, for example a day of 0 is the last day of the
// preceding month and October 32 is November 1.
func New(year int, month time.Month, date int) Day {
	t := time.Date(year, month, date, 0, 0, 0, 0, time.UTC)
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// NewMonth returns the first day of the specified month.
func NewMonth(year int, month time.Month) Day {
	return New(year, month, 1)
}

// From returns the Day for the calendar date of t in t's location.
// Times that differ only in their time of day yield the same Day.
func From(t time.Time) Day {
	year, month, day := t.Date()
	return Day{year: year, month: month, day: day}
}

// Today returns the current local calendar day.
func Today() Day {
	return From(time.Now())
}

// Of converts either a Day or a time.Time to a Day.
func Of[V Value](v V) Day {
	switch t := any(v).(type) {
	case Day:
		return t
	case time.Time:
		return From(t)
	}
	panic("unreachable")
}

// Year returns the year of d.
func (d Day) Year() int {
	return d.year
}

// Month returns the month of d.
func (d Day) Month() time.Month {
	return d.month
}

// Date returns the day of the month of d, starting at 1.
func (d Day) Date() int {
	return d.day
}

func (d Day) utc() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of d.
func (d Day) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// YearDay returns the day of the year of d, 1-365 for non-leap years
// and 1-366 for leap years.
func (d Day) YearDay() int {
	return d.utc().YearDay()
}

// Week returns the week of the year of d counted in 7 day blocks from
// January 1, ie. days 1-7 of the year are week 1 and December 31 is
// week 53. This is not the ISO 8601 week number, see time.Time.ISOWeek
// for that.
func (d Day) Week() int {
	return (d.YearDay() + 6) / 7
}

// Weekend returns true if d falls on a Saturday or Sunday.
func (d Day) Weekend() bool {
	wd := d.Weekday()
	return wd < time.Monday || wd > time.Friday
}

// Time returns midnight of d in the local time zone.
func (d Day) Time() time.Time {
	return d.TimeIn(time.Local)
}

// TimeIn returns midnight of d in the specified location.
func (d Day) TimeIn(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Timestamp returns the number of milliseconds since the Unix epoch
// of local midnight of d.
func (d Day) Timestamp() int64 {
	return d.Time().UnixMilli()
}

// IsZero returns true for the zero value of Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

const secondsPerDay = 24 * 60 * 60

// ordinal returns the number of days since 1970-01-01.
func (d Day) ordinal() int64 {
	return d.utc().Unix() / secondsPerDay
}

func fromOrdinal(n int64) Day {
	return From(time.Unix(n*secondsPerDay, 0).UTC())
}

// Compare returns -1 if a is before b, 0 if they are the same day
// and +1 if a is after b.
func Compare(a, b Day) int {
	switch ao, bo := a.ordinal(), b.ordinal(); {
	case ao < bo:
		return -1
	case ao > bo:
		return 1
	}
	return 0
}

// DaysBetween returns the number of days from a to b, it is negative
// if b is before a.
func DaysBetween(a, b Day) int {
	return int(b.ordinal() - a.ordinal())
}

// Compare is equivalent to Compare(d, o).
func (d Day) Compare(o Day) int {
	return Compare(d, o)
}

// Equal returns true if d and o are the same day.
func (d Day) Equal(o Day) bool {
	return d == o
}

// After returns true if d is later than o.
func (d Day) After(o Day) bool {
	return Compare(d, o) > 0
}

// AfterOrEqual returns true if d is the same day as, or later than, o.
func (d Day) AfterOrEqual(o Day) bool {
	return Compare(d, o) >= 0
}

// Before returns true if d is earlier than o.
func (d Day) Before(o Day) bool {
	return Compare(d, o) < 0
}

// BeforeOrEqual returns true if d is the same day as, or earlier than, o.
func (d Day) BeforeOrEqual(o Day) bool {
	return Compare(d, o) <= 0
}

// ErrInvalidInterval is returned by Add for an unsupported interval.
var ErrInvalidInterval = errors.New("invalid interval")
