// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rangeconfig provides support for specifying collections of
// calendar range descriptors, such as disabled or special days, in YAML.
// The format is:
//
//	disabled:
//	  - type: before
//	    date: 2024-01-01
//	  - type: between
//	    dates: [2024-03-10, 2024-03-01]
//	  - type: weekends
//	special:
//	  - type: specific
//	    dates: [2024-02-14, 2024-12-25]
//
// Dates may be in any of the formats accepted by calday.Parse.
package rangeconfig

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cloudeng.io/calday"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Spec represents a single range descriptor as specified in YAML.
// Date is used by before and after, Dates by between and specific;
// specifying either for any other type is an error.
type Spec struct {
	Type  string   `yaml:"type" validate:"required,oneof=before after between specific weekdays weekends"`
	Date  string   `yaml:"date,omitempty" validate:"required_if=Type before,required_if=Type after,excluded_if=Type between,excluded_if=Type specific,excluded_if=Type weekdays,excluded_if=Type weekends"`
	Dates []string `yaml:"dates,flow,omitempty" validate:"omitempty,excluded_if=Type before,excluded_if=Type after,excluded_if=Type weekdays,excluded_if=Type weekends,dive,required"`
}

// Config represents the disabled and special range descriptors used
// by a calendar.
type Config struct {
	DisabledSpecs []Spec `yaml:"disabled"`
	SpecialSpecs  []Spec `yaml:"special"`

	disabled calday.DescriptorList
	special  calday.DescriptorList
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func specValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Descriptor validates the spec and returns the calday.Descriptor
// it represents.
func (s Spec) Descriptor() (calday.Descriptor, error) {
	if err := specValidator().Struct(s); err != nil {
		return calday.Descriptor{}, convertValidationError(err)
	}
	kind, err := calday.ParseKind(s.Type)
	if err != nil {
		return calday.Descriptor{}, err
	}
	desc := calday.Descriptor{Kind: kind}
	switch kind {
	case calday.Before, calday.After:
		d, err := calday.Parse(s.Date)
		if err != nil {
			return calday.Descriptor{}, fmt.Errorf("date: %w", err)
		}
		desc.Dates = []calday.Day{d}
		return desc, nil
	case calday.Between:
		if len(s.Dates) != 2 {
			return calday.Descriptor{}, fmt.Errorf("dates: between requires exactly 2 dates, got %d", len(s.Dates))
		}
	case calday.Weekdays, calday.Weekends:
		return desc, nil
	}
	desc.Dates = make([]calday.Day, 0, len(s.Dates))
	for i, ds := range s.Dates {
		d, err := calday.Parse(ds)
		if err != nil {
			return calday.Descriptor{}, fmt.Errorf("dates[%d]: %w", i, err)
		}
		desc.Dates = append(desc.Dates, d)
	}
	return desc, nil
}

// convertValidationError reports every failing field using its
// yaml style lower case name.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err
	}
	errs := &errors.M{}
	for _, fe := range ves {
		field := strings.ToLower(fe.Field())
		if len(fe.Param()) > 0 {
			errs.Append(fmt.Errorf("%s failed validation for tag '%s=%s'", field, fe.Tag(), fe.Param()))
			continue
		}
		errs.Append(fmt.Errorf("%s failed validation for tag '%s'", field, fe.Tag()))
	}
	return errs.Err()
}

// splitErrors returns the errors contained in a multi-error, or err itself.
func splitErrors(err error) []error {
	if m, ok := err.(interface{ Unwrap() []error }); ok {
		return m.Unwrap()
	}
	return []error{err}
}

func compileSpecs(name string, specs []Spec, errs *errors.M) calday.DescriptorList {
	dl := make(calday.DescriptorList, 0, len(specs))
	for i, s := range specs {
		d, err := s.Descriptor()
		if err != nil {
			for _, e := range splitErrors(err) {
				errs.Append(fmt.Errorf("%s[%d]: %w", name, i, e))
			}
			continue
		}
		dl = append(dl, d)
	}
	return dl
}

func (c *Config) compile() error {
	errs := &errors.M{}
	c.disabled = compileSpecs("disabled", c.DisabledSpecs, errs)
	c.special = compileSpecs("special", c.SpecialSpecs, errs)
	return errs.Err()
}

// Parse parses the supplied YAML specification. Unknown fields are
// reported as errors, as are all invalid descriptors.
func Parse(spec []byte) (*Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.compile(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseFile is like Parse but reads the specification from the named file
// using cmdyaml.ParseConfigFileStrict.
func ParseFile(ctx context.Context, filename string) (*Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.compile(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	ctxlog.Logger(ctx).Debug("loaded range descriptors",
		"file", filename,
		"disabled", len(cfg.disabled),
		"special", len(cfg.special))
	return &cfg, nil
}

// New returns a Config for the supplied descriptor lists.
func New(disabled, special calday.DescriptorList) *Config {
	return &Config{disabled: disabled, special: special}
}

// Disabled returns the descriptors for disabled days.
func (c *Config) Disabled() calday.DescriptorList {
	return c.disabled
}

// Special returns the descriptors for special days.
func (c *Config) Special() calday.DescriptorList {
	return c.special
}

// Classification describes how a day is treated by a Config.
type Classification struct {
	Day      calday.Day
	Disabled bool
	Special  bool
}

func (c Classification) String() string {
	var flags []string
	if c.Disabled {
		flags = append(flags, "disabled")
	}
	if c.Special {
		flags = append(flags, "special")
	}
	if len(flags) == 0 {
		return c.Day.String()
	}
	return c.Day.String() + ": " + strings.Join(flags, ", ")
}

// Classify returns the Classification of d.
func (c *Config) Classify(d calday.Day) Classification {
	return Classification{
		Day:      d,
		Disabled: calday.InRanges(d, c.disabled...),
		Special:  calday.InRanges(d, c.special...),
	}
}

// Enabled returns true if d is not disabled.
func (c *Config) Enabled(d calday.Day) bool {
	return !c.disabled.Match(d)
}

// SpecFor returns the Spec that represents d.
func SpecFor(d calday.Descriptor) Spec {
	s := Spec{Type: d.Kind.String()}
	switch d.Kind {
	case calday.Before, calday.After:
		if len(d.Dates) > 0 {
			s.Date = d.Dates[0].String()
		}
	case calday.Between, calday.Specific:
		s.Dates = make([]string, len(d.Dates))
		for i, day := range d.Dates {
			s.Dates[i] = day.String()
		}
	}
	return s
}

func specsFor(dl calday.DescriptorList) []Spec {
	if len(dl) == 0 {
		return nil
	}
	specs := make([]Spec, len(dl))
	for i, d := range dl {
		specs[i] = SpecFor(d)
	}
	return specs
}

// Marshal returns the YAML representation of the Config's descriptors,
// in the format accepted by Parse.
func (c *Config) Marshal() ([]byte, error) {
	out := struct {
		Disabled []Spec `yaml:"disabled,omitempty"`
		Special  []Spec `yaml:"special,omitempty"`
	}{
		Disabled: specsFor(c.disabled),
		Special:  specsFor(c.special),
	}
	return yaml.Marshal(out)
}
