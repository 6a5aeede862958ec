// SPDX-License-Identifier: MIT
// Package: fractal/sampler
//
// errors.go — sentinel errors for the sampler package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w via samplerErrorf(method, err).

package sampler

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a malformed call: an empty weight vector or a
// nil Source.
var ErrInvalidArgument = errors.New("sampler: invalid argument")

// ErrInvalidDistribution indicates weights that cannot be normalized: a
// negative, NaN or infinite entry, or a vector whose sum is zero.
var ErrInvalidDistribution = errors.New("sampler: invalid distribution")

// samplerErrorf returns "<method>: <detail>: <sentinel>" preserving err for errors.Is.
func samplerErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}

// Method tags used as error prefixes.
const (
	methodSample      = "Sample"
	methodSampleValue = "SampleValue"
	methodNew         = "New"
)
