// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calday_test

import (
	"reflect"
	"slices"
	"testing"

	"cloudeng.io/calday"
)

func TestDescriptorMatch(t *testing.T) {
	nd := calday.New
	day := nd(1987, 7, 17) // Friday

	for i, tc := range []struct {
		desc  calday.Descriptor
		match bool
	}{
		{calday.BetweenDays(nd(1987, 7, 10), nd(1987, 7, 24)), true},
		{calday.BetweenDays(nd(1987, 7, 24), nd(1987, 7, 10)), true},
		{calday.BetweenDays(nd(1987, 7, 17), nd(1987, 7, 24)), true},
		{calday.BetweenDays(nd(1987, 7, 10), nd(1987, 7, 17)), true},
		{calday.BetweenDays(nd(1987, 7, 18), nd(1987, 7, 24)), false},
		{calday.BetweenDays(nd(1987, 7, 16), nd(1987, 7, 1)), false},

		{calday.BeforeDay(nd(1987, 7, 18)), true},
		{calday.BeforeDay(nd(1987, 7, 17)), false},
		{calday.AfterDay(nd(1987, 7, 16)), true},
		{calday.AfterDay(nd(1987, 7, 17)), false},

		{calday.SpecificDays(), false},
		{calday.SpecificDays(nd(1987, 7, 17)), true},
		{calday.SpecificDays(nd(1987, 7, 16), nd(1987, 7, 18)), false},
		{calday.SpecificDays(nd(1987, 6, 47)), true},

		{calday.WeekdaysOnly(), true},
		{calday.WeekendsOnly(), false},

		{calday.Descriptor{Kind: calday.Between, Dates: []calday.Day{nd(1987, 7, 1)}}, false},
		{calday.Descriptor{Kind: calday.Before}, false},
		{calday.Descriptor{Kind: calday.After}, false},
		{calday.Descriptor{}, false},
	} {
		if got, want := tc.desc.Match(day), tc.match; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.desc, got, want)
		}
		if got, want := calday.InRanges(day, tc.desc), tc.match; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.desc, got, want)
		}
	}

	weekend := nd(2024, 1, 6)
	if !calday.InRanges(weekend, calday.WeekendsOnly()) || calday.InRanges(weekend, calday.WeekdaysOnly()) {
		t.Errorf("%v: weekend descriptors failed", weekend)
	}
	if !calday.InRanges(nd(2024, 1, 7), calday.WeekendsOnly()) {
		t.Errorf("sunday is a weekend")
	}
}

func TestInRanges(t *testing.T) {
	nd := calday.New
	day := nd(1987, 7, 17)

	if calday.InRanges(day) {
		t.Errorf("empty descriptors should never match")
	}
	if calday.InRanges(day, calday.SpecificDays()) {
		t.Errorf("empty specific descriptor should never match")
	}
	if !calday.InRanges(day,
		calday.SpecificDays(),
		calday.BeforeDay(nd(1987, 1, 1)),
		calday.BetweenDays(nd(1987, 7, 10), nd(1987, 7, 24))) {
		t.Errorf("any matching descriptor should match")
	}
	if calday.InRanges(day,
		calday.WeekendsOnly(),
		calday.AfterDay(nd(1987, 7, 17)),
		calday.BeforeDay(nd(1987, 7, 17))) {
		t.Errorf("no descriptor should match")
	}
}

func TestDescriptorList(t *testing.T) {
	nd := calday.New
	disabled := calday.DescriptorList{
		calday.WeekendsOnly(),
		calday.SpecificDays(nd(2024, 1, 1)),
	}
	week := calday.Range(nd(2024, 1, 1), 7)

	if got, want := slices.Collect(disabled.Filter(week)), []calday.Day{nd(2024, 1, 1), nd(2024, 1, 6), nd(2024, 1, 7)}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := slices.Collect(disabled.Exclude(week)), calday.Days(nd(2024, 1, 2), 4); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	var first []calday.Day
	for d := range disabled.Exclude(week) {
		first = append(first, d)
		break
	}
	if got, want := first, []calday.Day{nd(2024, 1, 2)}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := disabled.String(), "weekends; specific: 2024-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calday.BetweenDays(nd(2024, 1, 1), nd(2024, 2, 1)).String(), "between: 2024-01-01, 2024-02-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []calday.Kind{calday.Before, calday.After, calday.Between, calday.Specific, calday.Weekdays, calday.Weekends} {
		got, err := calday.ParseKind(k.String())
		if err != nil {
			t.Errorf("%v: %v", k, err)
			continue
		}
		if got != k {
			t.Errorf("got %v, want %v", got, k)
		}
	}
	if got, err := calday.ParseKind("BETWEEN"); err != nil || got != calday.Between {
		t.Errorf("got %v, %v, want %v", got, err, calday.Between)
	}
	if _, err := calday.ParseKind("holidays"); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := calday.Kind(0).String(), "Kind(0)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
