package decision

import (
	"fmt"
	"strings"

	"github.com/yankputra/SPK-AlatMusikKesenian/ahp"
	"github.com/yankputra/SPK-AlatMusikKesenian/criteria"
	"github.com/yankputra/SPK-AlatMusikKesenian/matrix"
)

// Policy selects the column normalization rule.
type Policy int

const (
	// Vector divides each score by the Euclidean norm of its column.
	Vector Policy = iota
	// Linear divides each score by the column maximum.
	Linear
	// Precomputed marks a table that was weighted outside this package, see
	// NewWeightedMatrix. It is not a normalization rule.
	Precomputed
)

// String returns the config spelling of p.
func (p Policy) String() string {
	switch p {
	case Vector:
		return "vector"
	case Linear:
		return "linear"
	case Precomputed:
		return "precomputed"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses "vector" or "linear" (case-insensitive; "" is Vector).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vector":
		return Vector, nil
	case "linear", "max":
		return Linear, nil
	}
	return 0, fmt.Errorf("decision: unknown normalization %q", s)
}

// Option configures NormalizeAndWeight.
type Option func(*options)

type options struct {
	policy Policy
}

// WithPolicy selects the normalization rule (default Vector).
func WithPolicy(p Policy) Option {
	if p != Vector && p != Linear {
		panic("decision: WithPolicy: unknown policy")
	}
	return func(o *options) { o.policy = p }
}

// Normalize rescales every column of raw under policy.
//
// Errors: ErrEmptyMatrix, ErrDegenerateColumn (column index in the message).
//
// Complexity: O(M·N).
func Normalize(raw *DecisionMatrix, policy Policy) (*NormalizedMatrix, error) {
	return normalize(raw, policy, func(j int) string { return fmt.Sprintf("column %d", j) })
}

func normalize(raw *DecisionMatrix, policy Policy, name func(j int) string) (*NormalizedMatrix, error) {
	if raw == nil || raw.Rows() == 0 {
		return nil, ErrEmptyMatrix
	}

	var div []float64
	var err error
	switch policy {
	case Vector:
		div, err = matrix.ColumnNorms(raw.d)
	case Linear:
		div, err = matrix.ColumnMax(raw.d)
	default:
		return nil, fmt.Errorf("decision: unknown normalization %s", policy)
	}
	if err != nil {
		return nil, fmt.Errorf("decision: %w", err)
	}
	for j, v := range div {
		if v == 0 {
			return nil, fmt.Errorf("%w: %s is all zero", ErrDegenerateColumn, name(j))
		}
	}

	d, err := matrix.BroadcastDivCols(raw.d, div)
	if err != nil {
		return nil, fmt.Errorf("decision: %w", err)
	}

	return &NormalizedMatrix{table: table{ids: raw.ids, d: d}, policy: policy}, nil
}

// NormalizeAndWeight normalizes raw and multiplies column j by w[j].
//
// Implementation:
//   - Stage 1: raw.Cols() must equal reg.Len() and w.Len().
//   - Stage 2: Normalize under the selected Policy (default Vector).
//   - Stage 3: weighted = normalized ⊙ w, broadcast over rows.
//
// Errors: ErrEmptyMatrix, matrix.ErrDimensionMismatch, ErrDegenerateColumn
// (named by criterion code).
func NormalizeAndWeight(raw *DecisionMatrix, w ahp.WeightVector, reg *criteria.Registry, opts ...Option) (*WeightedMatrix, error) {
	o := options{policy: Vector}
	for _, set := range opts {
		set(&o)
	}
	if raw == nil || raw.Rows() == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := raw.Cols()
	if cols != reg.Len() || cols != w.Len() {
		return nil, fmt.Errorf("decision: %d columns, %d criteria, %d weights: %w",
			cols, reg.Len(), w.Len(), matrix.ErrDimensionMismatch)
	}
	codes := reg.Codes()

	n, err := normalize(raw, o.policy, func(j int) string { return fmt.Sprintf("criterion %q", codes[j]) })
	if err != nil {
		return nil, err
	}
	weights := w.Values()
	d, err := matrix.BroadcastMulCols(n.d, weights)
	if err != nil {
		return nil, fmt.Errorf("decision: %w", err)
	}

	return &WeightedMatrix{table: table{ids: raw.ids, d: d}, policy: o.policy, weights: weights}, nil
}
