// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/calday"
	"cloudeng.io/calday/rangeconfig"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

func infoCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*infoFlags)
	ctx, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	return info(ctx, os.Stdout, args)
}

func addCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*addFlags)
	ctx, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	return add(ctx, os.Stdout, args[0], args[1], args[2])
}

func setCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*setFlags)
	ctx, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	return set(ctx, os.Stdout, args[0], fv)
}

func rangeCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*rangeFlags)
	ctx, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	return dateRange(ctx, os.Stdout, args[0], args[1])
}

func gridCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*gridFlags)
	ctx, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	return grid(ctx, os.Stdout, args[0], args[1], fv.FirstWeekday)
}

func checkCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*checkFlags)
	ctx, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	cfg, err := rangeconfig.ParseFile(ctx, fv.Config)
	if err != nil {
		return errors.Caller(err)
	}
	return check(ctx, os.Stdout, cfg, args)
}

// parseDates parses all of the supplied dates, returning all
// errors encountered.
func parseDates(args []string) ([]calday.Day, error) {
	errs := &errors.M{}
	days := make([]calday.Day, 0, len(args))
	for _, arg := range args {
		d, err := calday.Parse(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		days = append(days, d)
	}
	return days, errs.Err()
}

func info(ctx context.Context, out io.Writer, args []string) error {
	days, err := parseDates(args)
	if err != nil {
		return err
	}
	for _, d := range days {
		ctxlog.Logger(ctx).Debug("info", "date", d.String())
		fmt.Fprintf(out, "%v: %v, week %v, day %v of the year, %v days in month, weekend: %v, timestamp: %v\n",
			d, d.Weekday(), d.Week(), d.YearDay(),
			calday.DaysInMonth(d.Year(), d.Month()), d.Weekend(), d.Timestamp())
	}
	return nil
}

func add(ctx context.Context, out io.Writer, date, unit, amount string) error {
	d, err := calday.Parse(date)
	if err != nil {
		return err
	}
	interval, err := calday.ParseInterval(unit)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %q: %w", amount, err)
	}
	r, err := d.Add(interval, n)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("add", "date", d.String(), "interval", interval.String(), "amount", n, "result", r.String())
	fmt.Fprintln(out, r)
	return nil
}

func set(ctx context.Context, out io.Writer, date string, fv *setFlags) error {
	d, err := calday.Parse(date)
	if err != nil {
		return err
	}
	var opts []calday.Field
	if len(fv.Year) > 0 {
		y, err := strconv.Atoi(fv.Year)
		if err != nil {
			return fmt.Errorf("invalid year: %q: %w", fv.Year, err)
		}
		opts = append(opts, calday.WithYear(y))
	}
	if len(fv.Month) > 0 {
		m, err := calday.ParseMonth(fv.Month)
		if err != nil {
			return err
		}
		opts = append(opts, calday.WithMonth(m))
	}
	if len(fv.Date) > 0 {
		dt, err := strconv.Atoi(fv.Date)
		if err != nil {
			return fmt.Errorf("invalid date: %q: %w", fv.Date, err)
		}
		opts = append(opts, calday.WithDate(dt))
	}
	r := d.Set(opts...)
	ctxlog.Logger(ctx).Debug("set", "date", d.String(), "result", r.String())
	fmt.Fprintln(out, r)
	return nil
}

func dateRange(ctx context.Context, out io.Writer, start, end string) error {
	from, err := calday.Parse(start)
	if err != nil {
		return err
	}
	var days []calday.Day
	if to, err := calday.Parse(end); err == nil {
		days = calday.Days(from, to)
	} else {
		n, nerr := strconv.Atoi(end)
		if nerr != nil {
			return fmt.Errorf("%q is neither a date nor a count: %w", end, err)
		}
		days = calday.Days(from, n)
	}
	ctxlog.Logger(ctx).Debug("range", "start", from.String(), "end", end, "days", len(days))
	for _, d := range days {
		fmt.Fprintln(out, d)
	}
	return nil
}

func parseWeekday(val string) (time.Weekday, error) {
	lc := strings.ToLower(val)
	if len(lc) >= 2 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.HasPrefix(strings.ToLower(wd.String()), lc) {
				return wd, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday: %q", val)
}

func grid(ctx context.Context, out io.Writer, year, month, firstWeekday string) error {
	y, err := strconv.Atoi(year)
	if err != nil {
		return fmt.Errorf("invalid year: %q: %w", year, err)
	}
	m, err := calday.ParseMonth(month)
	if err != nil {
		return err
	}
	fwd, err := parseWeekday(firstWeekday)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("grid", "year", y, "month", m.String(), "first-weekday", fwd.String())
	fmt.Fprintf(out, "%v %v\n", m, y)
	hdr := make([]string, 7)
	for i := range hdr {
		hdr[i] = fmt.Sprintf("%3s", ((fwd + time.Weekday(i)) % 7).String()[:2])
	}
	fmt.Fprintln(out, strings.TrimRight(strings.Join(hdr, ""), " "))
	var line strings.Builder
	col := 0
	for d := range calday.MonthGrid(y, m, fwd) {
		if d.Month() == m {
			fmt.Fprintf(&line, "%3d", d.Date())
		} else {
			line.WriteString("   ")
		}
		if col++; col == 7 {
			fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
			line.Reset()
			col = 0
		}
	}
	return nil
}

func check(ctx context.Context, out io.Writer, cfg *rangeconfig.Config, args []string) error {
	days, err := parseDates(args)
	if err != nil {
		return err
	}
	for _, d := range days {
		c := cfg.Classify(d)
		ctxlog.Logger(ctx).Info("classified", "date", d.String(), "disabled", c.Disabled, "special", c.Special)
		fmt.Fprintln(out, c)
	}
	return nil
}
