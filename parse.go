// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDate is returned when parsing a malformed or non-existent date.
var ErrInvalidDate = errors.New("invalid date")

const expectedDayFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// Parse parses a day in formats '2006-01-02', '01/02/2006' or
// 'Jan-02-2006'. The month and day are validated, so that Feb-29-2023
// is an error rather than being normalized to March 1.
func Parse(val string) (Day, error) {
	if len(val) == 0 {
		return Day{}, fmt.Errorf("%w: empty value, expected %s", ErrInvalidDate, expectedDayFormats)
	}
	var year, month, day string
	if parts := strings.Split(val, "/"); len(parts) == 3 {
		month, day, year = parts[0], parts[1], parts[2]
	} else if parts := strings.Split(val, "-"); len(parts) == 3 {
		if len(parts[0]) == 4 && isDigits(parts[0]) {
			year, month, day = parts[0], parts[1], parts[2]
		} else {
			month, day, year = parts[0], parts[1], parts[2]
		}
	} else {
		return Day{}, fmt.Errorf("%w: %q, expected %s", ErrInvalidDate, val, expectedDayFormats)
	}
	return parseFields(val, year, month, day)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

func parseFields(val, year, month, day string) (Day, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q: invalid year: %s", ErrInvalidDate, val, year)
	}
	m, err := ParseMonth(month)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, val, err)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q: invalid day: %s", ErrInvalidDate, val, day)
	}
	if d < 1 || d > DaysInMonth(y, m) {
		return Day{}, fmt.Errorf("%w: %q: invalid day for %v %v: %d", ErrInvalidDate, val, m, y, d)
	}
	return Day{year: y, month: m, day: d}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(val string) Day {
	d, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Day) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = n
	return nil
}
