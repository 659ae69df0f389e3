package decision

import (
	"fmt"
	"math"

	"github.com/yankputra/SPK-AlatMusikKesenian/matrix"
)

// Alternative is one row of raw scores, as read from a dataset.
type Alternative struct {
	ID     string    `json:"id" yaml:"id"`
	Scores []float64 `json:"scores" yaml:"scores"`
}

// table is the shape shared by the raw, normalized and weighted matrices.
type table struct {
	ids []string
	d   *matrix.Dense
}

// Rows returns the number of alternatives.
func (t *table) Rows() int {
	if t == nil || t.d == nil {
		return 0
	}
	return t.d.Rows()
}

// Cols returns the number of criteria.
func (t *table) Cols() int {
	if t == nil || t.d == nil {
		return 0
	}
	return t.d.Cols()
}

// Alternatives returns the alternative ids in row order.
func (t *table) Alternatives() []string { return append([]string(nil), t.ids...) }

// Alternative returns the id of row i.
func (t *table) Alternative(i int) string { return t.ids[i] }

// At returns entry (i,j).
func (t *table) At(i, j int) (float64, error) { return t.d.At(i, j) }

// Row returns a copy of row i.
func (t *table) Row(i int) ([]float64, error) { return t.d.Row(i) }

// Col returns a copy of column j.
func (t *table) Col(j int) ([]float64, error) { return t.d.Col(j) }

// ToRows exports the values as a fresh [][]float64.
func (t *table) ToRows() [][]float64 { return t.d.ToRows() }

// Matrix returns a copy of the values.
func (t *table) Matrix() *matrix.Dense { return t.d.Clone().(*matrix.Dense) }

// DecisionMatrix is the raw M×N score table: one row per alternative, one
// column per criterion in registry order. Scores are finite and non-negative.
type DecisionMatrix struct {
	table
}

// NewDecisionMatrix validates ids and scores and copies them.
//
// Errors:
//   - ErrEmptyMatrix when there are no rows or no columns.
//   - matrix.ErrDimensionMismatch when len(ids) != len(scores) or rows are ragged.
//   - ErrDuplicateAlternative for an empty or repeated id.
//   - ErrNegativeScore for negative, NaN or infinite scores.
func NewDecisionMatrix(ids []string, scores [][]float64) (*DecisionMatrix, error) {
	if len(ids) == 0 || len(scores) == 0 || len(scores[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(ids) != len(scores) {
		return nil, fmt.Errorf("decision: %d ids for %d rows: %w", len(ids), len(scores), matrix.ErrDimensionMismatch)
	}

	seen := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%w: row %d has an empty id", ErrDuplicateAlternative, i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAlternative, id)
		}
		seen[id] = struct{}{}
		for j, v := range scores[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, fmt.Errorf("%w: %q column %d = %g", ErrNegativeScore, id, j, v)
			}
		}
	}

	d, err := matrix.NewDenseFromRows(scores)
	if err != nil {
		return nil, fmt.Errorf("decision: %w", err)
	}

	return &DecisionMatrix{table{ids: append([]string(nil), ids...), d: d}}, nil
}

// FromAlternatives builds a DecisionMatrix from rows in the given order.
func FromAlternatives(alts []Alternative) (*DecisionMatrix, error) {
	ids := make([]string, len(alts))
	scores := make([][]float64, len(alts))
	for i, a := range alts {
		ids[i] = a.ID
		scores[i] = a.Scores
	}
	return NewDecisionMatrix(ids, scores)
}

// NormalizedMatrix is a DecisionMatrix with every column rescaled by Policy.
type NormalizedMatrix struct {
	table
	policy Policy
}

// Policy returns the rule the matrix was normalized with.
func (n *NormalizedMatrix) Policy() Policy { return n.policy }

// WeightedMatrix is a NormalizedMatrix with column j multiplied by weight j.
type WeightedMatrix struct {
	table
	policy  Policy
	weights []float64
}

// Policy returns the normalization rule used before weighting.
func (w *WeightedMatrix) Policy() Policy { return w.policy }

// Weights returns a copy of the column weights applied.
func (w *WeightedMatrix) Weights() []float64 { return append([]float64(nil), w.weights...) }

// NewWeightedMatrix wraps an already weighted table, such as a precomputed
// spreadsheet, so it can be ranked directly. Values must be finite and
// non-negative; the ids follow the NewDecisionMatrix rules.
//
// The result reports Policy() == Precomputed and Weights() == nil: the
// normalization and weights behind the values are unknown here.
func NewWeightedMatrix(ids []string, rows [][]float64) (*WeightedMatrix, error) {
	dm, err := NewDecisionMatrix(ids, rows)
	if err != nil {
		return nil, err
	}
	return &WeightedMatrix{table: dm.table, policy: Precomputed}, nil
}
