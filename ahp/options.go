package ahp

import (
	"fmt"
	"math"
	"strings"
)

// Method selects how the weight vector is extracted from the comparison matrix.
type Method int

const (
	// GeometricMean normalizes the row geometric means (closed form, default).
	GeometricMean Method = iota
	// ColumnNormalization divides each column by its sum and averages the rows
	// (the additive normalization used in hand-computed spreadsheets).
	ColumnNormalization
	// Eigenvector runs a capped power iteration (matrix.PrincipalEigenvector).
	Eigenvector
)

// String returns the config spelling of m.
func (m Method) String() string {
	switch m {
	case GeometricMean:
		return "geometric_mean"
	case ColumnNormalization:
		return "column_normalization"
	case Eigenvector:
		return "eigenvector"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod parses the config spelling of a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "geometric_mean", "geometric-mean", "gm":
		return GeometricMean, nil
	case "column_normalization", "column-normalization", "column":
		return ColumnNormalization, nil
	case "eigenvector", "eigen", "power":
		return Eigenvector, nil
	}
	return 0, fmt.Errorf("ahp: unknown method %q", s)
}

// Defaults.
const (
	// DefaultTolerance bounds diagonal and reciprocity checks.
	DefaultTolerance = 1e-6

	// DefaultScaleMax is the upper bound of the Saaty scale; entries must lie
	// in [1/DefaultScaleMax, DefaultScaleMax].
	DefaultScaleMax = 9.0

	// DefaultThreshold is the largest acceptable consistency ratio for N ≥ 3.
	DefaultThreshold = 0.10

	// DefaultMaxIterations caps the Eigenvector method.
	DefaultMaxIterations = 100
)

const (
	panicToleranceInvalid = "ahp: WithTolerance: tol must be finite, non-negative"
	panicScaleInvalid     = "ahp: WithScaleMax: max must be 0 (unbounded) or >= 1"
	panicThresholdInvalid = "ahp: WithThreshold: threshold must be finite, non-negative"
	panicRandomIndex      = "ahp: WithRandomIndex: sizes must be >= 1 and values finite, non-negative"
	panicMaxIterInvalid   = "ahp: WithMaxIterations: n must be > 0"
)

// Option configures construction and weight derivation.
type Option func(*options)

type options struct {
	tol       float64
	scaleMax  float64 // 0 disables the scale bound
	method    Method
	threshold float64
	ri        map[int]float64
	maxIter   int
}

// WithTolerance sets ε for the diagonal and reciprocity checks.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *options) { o.tol = tol }
}

// WithScaleMax sets the upper bound of the comparison scale; 0 disables it.
func WithScaleMax(max float64) Option {
	if math.IsNaN(max) || (max != 0 && max < 1) {
		panic(panicScaleInvalid)
	}
	return func(o *options) { o.scaleMax = max }
}

// WithMethod selects the weight extraction method.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithThreshold sets the consistency ratio at or below which a matrix with
// N ≥ 3 is Acceptable.
func WithThreshold(cr float64) Option {
	if math.IsNaN(cr) || math.IsInf(cr, 0) || cr < 0 {
		panic(panicThresholdInvalid)
	}
	return func(o *options) { o.threshold = cr }
}

// WithRandomIndex supplies random index values for sizes the built-in table
// lacks (or overrides it). This is the only way to get a verdict for N > 10.
func WithRandomIndex(table map[int]float64) Option {
	cp := make(map[int]float64, len(table))
	for n, v := range table {
		if n < 1 || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			panic(panicRandomIndex)
		}
		cp[n] = v
	}
	return func(o *options) {
		for n, v := range cp {
			o.ri[n] = v
		}
	}
}

// WithMaxIterations caps the power iteration of the Eigenvector method.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}
	return func(o *options) { o.maxIter = n }
}

func gatherOptions(user ...Option) options {
	o := options{
		tol:       DefaultTolerance,
		scaleMax:  DefaultScaleMax,
		method:    GeometricMean,
		threshold: DefaultThreshold,
		ri:        make(map[int]float64, len(randomIndex)),
		maxIter:   DefaultMaxIterations,
	}
	for n, v := range randomIndex {
		o.ri[n] = v
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
