// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calday

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Kind identifies the rule implemented by a Descriptor.
type Kind int

const (
	Before   Kind = iota + 1 // days strictly earlier than Dates[0]
	After                    // days strictly later than Dates[0]
	Between                  // days between Dates[0] and Dates[1] inclusive, in either order
	Specific                 // days equal to any of Dates
	Weekdays                 // Monday to Friday
	Weekends                 // Saturday and Sunday
)

var kindNames = []string{"before", "after", "between", "specific", "weekdays", "weekends"}

func (k Kind) String() string {
	if k < Before || k > Weekends {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k-1]
}

// ParseKind parses the lower case name of a Kind, eg. 'between'.
func ParseKind(val string) (Kind, error) {
	lc := strings.ToLower(val)
	for i, n := range kindNames {
		if n == lc {
			return Kind(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid range descriptor type: %q", val)
}

// Descriptor is a rule that matches a set of days, it is typically used
// to describe disabled or highlighted days in a calendar. A Descriptor
// whose Dates are insufficient for its Kind matches no days.
type Descriptor struct {
	Kind  Kind
	Dates []Day
}

// BeforeDay returns a Descriptor that matches all days before d.
func BeforeDay(d Day) Descriptor {
	return Descriptor{Kind: Before, Dates: []Day{d}}
}

// AfterDay returns a Descriptor that matches all days after d.
func AfterDay(d Day) Descriptor {
	return Descriptor{Kind: After, Dates: []Day{d}}
}

// BetweenDays returns a Descriptor that matches all days from a to b,
// inclusive. The order of a and b is immaterial.
func BetweenDays(a, b Day) Descriptor {
	return Descriptor{Kind: Between, Dates: []Day{a, b}}
}

// SpecificDays returns a Descriptor that matches exactly the specified days.
func SpecificDays(days ...Day) Descriptor {
	return Descriptor{Kind: Specific, Dates: days}
}

// WeekdaysOnly returns a Descriptor that matches Monday to Friday.
func WeekdaysOnly() Descriptor {
	return Descriptor{Kind: Weekdays}
}

// WeekendsOnly returns a Descriptor that matches Saturday and Sunday.
func WeekendsOnly() Descriptor {
	return Descriptor{Kind: Weekends}
}

// Match returns true if d is matched by the descriptor.
func (r Descriptor) Match(d Day) bool {
	switch r.Kind {
	case Before:
		return len(r.Dates) > 0 && d.Before(r.Dates[0])
	case After:
		return len(r.Dates) > 0 && d.After(r.Dates[0])
	case Between:
		if len(r.Dates) < 2 {
			return false
		}
		from, to := r.Dates[0], r.Dates[1]
		if from.After(to) {
			from, to = to, from
		}
		return d.AfterOrEqual(from) && d.BeforeOrEqual(to)
	case Specific:
		return slices.Contains(r.Dates, d)
	case Weekdays:
		return !d.Weekend()
	case Weekends:
		return d.Weekend()
	}
	return false
}

func (r Descriptor) String() string {
	switch r.Kind {
	case Weekdays, Weekends:
		return r.Kind.String()
	}
	var out strings.Builder
	out.WriteString(r.Kind.String())
	out.WriteString(": ")
	for i, d := range r.Dates {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// InRanges returns true if d is matched by any of the descriptors. It
// returns false if no descriptors are specified.
func InRanges(d Day, descriptors ...Descriptor) bool {
	return DescriptorList(descriptors).Match(d)
}

// DescriptorList represents a collection of Descriptors that match a day
// if any one of them does.
type DescriptorList []Descriptor

// Match returns true if any descriptor in the list matches d. Evaluation
// stops at the first match.
func (dl DescriptorList) Match(d Day) bool {
	for _, r := range dl {
		if r.Match(d) {
			return true
		}
	}
	return false
}

// Filter returns an iterator over the days in seq that are matched by
// the list.
func (dl DescriptorList) Filter(seq iter.Seq[Day]) iter.Seq[Day] {
	return func(yield func(Day) bool) {
		for d := range seq {
			if dl.Match(d) && !yield(d) {
				return
			}
		}
	}
}

// Exclude returns an iterator over the days in seq that are not matched
// by the list.
func (dl DescriptorList) Exclude(seq iter.Seq[Day]) iter.Seq[Day] {
	return func(yield func(Day) bool) {
		for d := range seq {
			if !dl.Match(d) && !yield(d) {
				return
			}
		}
	}
}

func (dl DescriptorList) String() string {
	var out strings.Builder
	for i, r := range dl {
		if i > 0 {
			out.WriteString("; ")
		}
		out.WriteString(r.String())
	}
	return out.String()
}
