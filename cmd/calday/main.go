// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calday provides access to calendar day arithmetic, range
// generation and range descriptors from the command line.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: calday
summary: calendar day arithmetic, ranges and range descriptors
commands:
  - name: info
    summary: display information about the specified dates
    arguments:
      - <date>
      - ...
  - name: add
    summary: add an interval (day, week, month, quarter or year) to a date
    arguments:
      - <date>
      - <interval>
      - <amount>
  - name: set
    summary: set the year, month or date of a date, clamping to the end of the month
    arguments:
      - <date>
  - name: range
    summary: display the dates from start up to, but excluding, end; end may be a date or a signed count
    arguments:
      - <start>
      - <end-or-count>
  - name: grid
    summary: display the 6 week grid used to display a month
    arguments:
      - <year>
      - <month>
  - name: check
    summary: classify dates as disabled and/or special using a YAML range configuration
    arguments:
      - <date>
      - ...
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	LogLevel string `subcmd:"log-level,warn,'log level: debug, info, warn or error'"`
}

type infoFlags struct {
	CommonFlags
}

type addFlags struct {
	CommonFlags
}

type setFlags struct {
	CommonFlags
	Year  string `subcmd:"year,,'the new year'"`
	Month string `subcmd:"month,,'the new month, as a number or name'"`
	Date  string `subcmd:"date,,'the new day of the month, out of range values are normalized'"`
}

type rangeFlags struct {
	CommonFlags
}

type gridFlags struct {
	CommonFlags
	FirstWeekday string `subcmd:"first-weekday,sunday,'the first day of the week'"`
}

type checkFlags struct {
	CommonFlags
	Config string `subcmd:"config,,'YAML file containing disabled and special range descriptors'"`
}

var cmdSet = subcmd.MustFromYAML(cmdSpec)

func init() {
	cmdSet.Set("info").MustRunnerAndFlags(infoCmd,
		subcmd.MustRegisteredFlagSet(&infoFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(addCmd,
		subcmd.MustRegisteredFlagSet(&addFlags{}))
	cmdSet.Set("set").MustRunnerAndFlags(setCmd,
		subcmd.MustRegisteredFlagSet(&setFlags{}))
	cmdSet.Set("range").MustRunnerAndFlags(rangeCmd,
		subcmd.MustRegisteredFlagSet(&rangeFlags{}))
	cmdSet.Set("grid").MustRunnerAndFlags(gridCmd,
		subcmd.MustRegisteredFlagSet(&gridFlags{}))
	cmdSet.Set("check").MustRunnerAndFlags(checkCmd,
		subcmd.MustRegisteredFlagSet(&checkFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// withLogger returns a context with a JSON logger, writing to stderr,
// configured with the requested log level.
func withLogger(ctx context.Context, cf CommonFlags) (context.Context, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cf.LogLevel)); err != nil {
		return ctx, fmt.Errorf("invalid --log-level: %w", err)
	}
	return ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: level}), nil
}
