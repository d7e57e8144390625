// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// elimination-based kernels (Det, Cofactor, Inverse). This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultPivotTolerance is the fixed threshold below which the largest
// available pivot is treated as zero during Gaussian elimination: the matrix
// is then reported singular and its determinant is exactly 0. The value is
// intentionally far below float32 working precision so that only structurally
// zero pivot columns trip it; near-singular inputs instead surface as tiny
// (non-zero) determinants, which is the documented float32 behavior.
const DefaultPivotTolerance float32 = 1e-10

// options carries the resolved numeric policy for elimination kernels.
// Fields are unexported; public APIs consume ...Option.
type options struct {
	pivotTol float32 // non-negative, finite; see DefaultPivotTolerance
}

// Option mutates the internal options state. Constructed only via WithX
// functions, which validate their inputs eagerly.
type Option func(*options)

// defaultOptions returns the documented zero-configuration policy.
func defaultOptions() options {
	return options{pivotTol: DefaultPivotTolerance}
}

// gatherOptions folds the supplied options over the defaults.
// Deterministic: options apply in argument order; last write wins.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts { // fixed argument order
		opt(&o)
	}

	return o
}

// WithPivotTolerance overrides the singularity threshold used by Det,
// Cofactor and Inverse. tol must be finite and non-negative; violating that
// is a programmer error and panics eagerly, never inside a kernel.
//
// AI-Hints:
//   - Raise the tolerance to treat nearly-dependent rows as singular instead
//     of producing a tiny, noise-dominated determinant.
func WithPivotTolerance(tol float32) Option {
	if tol < 0 || math.IsNaN(float64(tol)) || math.IsInf(float64(tol), 0) {
		panic("matrix: WithPivotTolerance requires a finite, non-negative tolerance")
	}

	return func(o *options) { o.pivotTol = tol }
}
