// SPDX-License-Identifier: MIT
// Package: fractal/ifs
//
// errors.go — sentinel errors for the ifs package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Sampler failures (sampler.ErrInvalidDistribution) are wrapped, not
//     re-labelled, so errors.Is matches the sampler sentinel too.
//   • Generators never panic on user input. Option constructors may panic on
//     programmer errors (WithSource(nil)).

package ifs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates bad numeric parameters: NumPoints < 1,
// NumIter < 0, an empty point set, or a point count above MaxPoints.
var ErrInvalidArgument = errors.New("ifs: invalid argument")

// ErrInvalidDefinition indicates a malformed IFS: mismatched lengths between
// maps, translations and weights, an empty map list, or a map that is not a
// finite 2×2 linear part with a length-2 translation.
var ErrInvalidDefinition = errors.New("ifs: invalid IFS definition")

// ifsErrorf returns "<method>: <detail>: <sentinel>".
func ifsErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}

// Method tags used as error prefixes.
const (
	MethodRandom        = "Random"
	MethodDeterministic = "Deterministic"
	MethodNewAffineMap  = "NewAffineMap"
	MethodNewDefinition = "NewDefinition"
	MethodCompose       = "Compose"
	MethodRefine        = "Refine"
	MethodBounds        = "Bounds"
)
