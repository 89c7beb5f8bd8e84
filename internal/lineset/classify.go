// SPDX-License-Identifier: MPL-2.0

package lineset

import (
	"strconv"
	"strings"
)

type (
	// Option bounds ClassifyInts.
	Option func(*options)

	options struct {
		min, max       int
		hasMin, hasMax bool
	}
)

// Min sets the inclusive lower bound for accepted integers.
func Min(v int) Option {
	return func(o *options) { o.min, o.hasMin = v, true }
}

// Max sets the inclusive upper bound for accepted integers.
func Max(v int) Option {
	return func(o *options) { o.max, o.hasMax = v, true }
}

// ClassifyInts partitions lines into parseable base-10 integers within
// the optional bounds and everything else. Original order is preserved
// in both sequences, and rejected entries keep their original string
// form, not a parsed value.
func ClassifyInts(lines []string, opts ...Option) (valid []int, rejected []string) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	for _, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			rejected = append(rejected, line)
			continue
		}
		if (o.hasMin && n < o.min) || (o.hasMax && n > o.max) {
			rejected = append(rejected, line)
			continue
		}
		valid = append(valid, n)
	}

	return valid, rejected
}
