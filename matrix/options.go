// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for iterative kernels and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the convergence tolerance of iterative kernels
	// (L1 change between successive normalized iterates).
	DefaultEpsilon = 1e-12

	// DefaultMaxIterations caps iterative kernels such as PrincipalEigenvector.
	DefaultMaxIterations = 100

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterationsInvalid = "matrix: WithMaxIterations: n must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	maxIter int     // > 0; DefaultMaxIterations
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the convergence tolerance used by iterative kernels.
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
//
// AI-Hints:
//   - eps=0 demands an exact fixed point; the kernel then usually runs to the cap.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations caps the number of iterations of iterative kernels.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies user setters over the documented defaults.
// Last-writer-wins semantics; no derived invariants at present.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		maxIter: DefaultMaxIterations,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
