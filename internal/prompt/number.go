// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"strconv"
	"strings"
)

type (
	// IntOption bounds an Int prompt.
	IntOption func(*intOptions)

	intOptions struct {
		min, max       int
		hasMin, hasMax bool
	}

	// FloatOption bounds a Float prompt.
	FloatOption func(*floatOptions)

	floatOptions struct {
		min, max       float64
		hasMin, hasMax bool
	}
)

// MinInt sets the inclusive lower bound of an Int prompt.
func MinInt(v int) IntOption {
	return func(o *intOptions) { o.min, o.hasMin = v, true }
}

// MaxInt sets the inclusive upper bound of an Int prompt.
func MaxInt(v int) IntOption {
	return func(o *intOptions) { o.max, o.hasMax = v, true }
}

// MinFloat sets the inclusive lower bound of a Float prompt.
func MinFloat(v float64) FloatOption {
	return func(o *floatOptions) { o.min, o.hasMin = v, true }
}

// MaxFloat sets the inclusive upper bound of a Float prompt.
func MaxFloat(v float64) FloatOption {
	return func(o *floatOptions) { o.max, o.hasMax = v, true }
}

// Int prompts until a base-10 integer within the optional bounds is
// entered. Non-numeric input and out-of-range input get distinct
// messages.
func (p *Prompter) Int(prompt string, opts ...IntOption) (int, error) {
	var o intOptions
	for _, opt := range opts {
		opt(&o)
	}

	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			p.errorf("Debe ser un número entero.")
			continue
		}
		if o.hasMin && n < o.min {
			p.errorf("Debe ser ≥ %d.", o.min)
			continue
		}
		if o.hasMax && n > o.max {
			p.errorf("Debe ser ≤ %d.", o.max)
			continue
		}
		return n, nil
	}
}

// Float prompts until a decimal number within the optional bounds is
// entered. Both "." and "," are accepted as the decimal separator; a
// comma is rewritten to a dot before parsing.
func (p *Prompter) Float(prompt string, opts ...FloatOption) (float64, error) {
	var o floatOptions
	for _, opt := range opts {
		opt(&o)
	}

	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		x, convErr := strconv.ParseFloat(strings.ReplaceAll(line, ",", "."), 64)
		if convErr != nil {
			p.errorf("Debe ser un número (use . o , para decimales).")
			continue
		}
		if o.hasMin && x < o.min {
			p.errorf("Debe ser ≥ %g.", o.min)
			continue
		}
		if o.hasMax && x > o.max {
			p.errorf("Debe ser ≤ %g.", o.max)
			continue
		}
		return x, nil
	}
}
