// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calday_test

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"cloudeng.io/calday"
)

func consecutive(start calday.Day, step, n int) []calday.Day {
	days := make([]calday.Day, n)
	for i := range days {
		days[i] = start.AddDays(i * step)
	}
	return days
}

func TestRangeCount(t *testing.T) {
	nd := calday.New
	start := nd(2024, 1, 11)

	fwd := calday.Days(start, 7)
	if got, want := len(fwd), 7; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := fwd[0], start; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := fwd[6], nd(2024, 1, 17); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if slices.Contains(fwd, nd(2024, 1, 18)) {
		t.Errorf("range should not include the end day")
	}
	if got, want := fwd, consecutive(start, 1, 7); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	bwd := calday.Days(start, -7)
	if got, want := bwd, consecutive(start, -1, 7); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := bwd[6], nd(2024, 1, 5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if slices.Contains(bwd, nd(2024, 1, 4)) {
		t.Errorf("range should not include the end day")
	}

	if got := calday.Days(start, 0); len(got) != 0 {
		t.Errorf("got %v, want an empty range", got)
	}
}

func TestRangeDays(t *testing.T) {
	nd := calday.New
	for _, tc := range []struct {
		start, end calday.Day
		want       []calday.Day
	}{
		{nd(2024, 2, 27), nd(2024, 3, 2), []calday.Day{nd(2024, 2, 27), nd(2024, 2, 28), nd(2024, 2, 29), nd(2024, 3, 1)}},
		{nd(2024, 3, 2), nd(2024, 2, 27), []calday.Day{nd(2024, 3, 2), nd(2024, 3, 1), nd(2024, 2, 29), nd(2024, 2, 28)}},
		{nd(2023, 12, 30), nd(2024, 1, 2), []calday.Day{nd(2023, 12, 30), nd(2023, 12, 31), nd(2024, 1, 1)}},
		{nd(2024, 1, 1), nd(2024, 1, 2), []calday.Day{nd(2024, 1, 1)}},
		{nd(2024, 1, 1), nd(2024, 1, 1), nil},
	} {
		got := calday.Days(tc.start, tc.end)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%v -> %v: got %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}

	// time.Time end points are normalized to their calendar day.
	end := time.Date(2024, 1, 4, 18, 30, 0, 0, time.Local)
	if got, want := calday.Days(nd(2024, 1, 1), end), consecutive(nd(2024, 1, 1), 1, 3); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRangeRestartable(t *testing.T) {
	seq := calday.Range(calday.New(2024, 1, 11), 10)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("got %v, want %v", second, first)
	}

	var early []calday.Day
	for d := range seq {
		if len(early) == 3 {
			break
		}
		early = append(early, d)
	}
	if got, want := early, first[:3]; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
