// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for correlation-table validation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts Build and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by symmetry and bounds checks.
	DefaultEpsilon = 1e-9

	// DefaultCheckSymmetry enables |A[i,j]-A[j,i]| <= eps verification in Build.
	DefaultCheckSymmetry = true

	// DefaultCheckBounds enables -1-eps <= A[i,j] <= 1+eps verification in Build.
	DefaultCheckBounds = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps           float64 // >= 0; DefaultEpsilon
	checkSymmetry bool    // DefaultCheckSymmetry
	checkBounds   bool    // DefaultCheckBounds
}

// WithEpsilon sets the numeric tolerance used by structural checks.
// Panics with a stable message when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - Correlations computed from CSV data are symmetric to the last ulp;
//     loosen eps only for tables produced by external tools with rounding.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSymmetryCheck toggles value-symmetry verification.
func WithSymmetryCheck(enabled bool) Option {
	return func(o *Options) { o.checkSymmetry = enabled }
}

// WithBoundsCheck toggles the [-1, 1] range verification.
func WithBoundsCheck(enabled bool) Option {
	return func(o *Options) { o.checkBounds = enabled }
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// gatherOptions applies user-provided setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:           DefaultEpsilon,
		checkSymmetry: DefaultCheckSymmetry,
		checkBounds:   DefaultCheckBounds,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
