package topsis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yankputra/SPK-AlatMusikKesenian/criteria"
	"github.com/yankputra/SPK-AlatMusikKesenian/decision"
	"github.com/yankputra/SPK-AlatMusikKesenian/matrix"
)

// ErrEmptyInput indicates a nil weighted matrix or one without rows.
var ErrEmptyInput = errors.New("topsis: empty weighted matrix")

// RankingRow is the outcome for one alternative.
type RankingRow struct {
	Alternative string  `json:"alternative"`
	Index       int     `json:"index"` // row in the input matrix
	DPlus       float64 `json:"d_plus"`
	DMinus      float64 `json:"d_minus"`
	Closeness   float64 `json:"closeness"`
	Rank        int     `json:"rank"`
	Verdict     Verdict `json:"verdict"`
}

// Result holds the reference vectors and the rows sorted best first.
type Result struct {
	Ideal         []float64    `json:"ideal"`
	NegativeIdeal []float64    `json:"negative_ideal"`
	Rows          []RankingRow `json:"rows"`
}

// Top returns the rank-1 row; ok is false for an empty result.
func (r *Result) Top() (row RankingRow, ok bool) {
	if r == nil || len(r.Rows) == 0 {
		return RankingRow{}, false
	}
	return r.Rows[0], true
}

// Rank computes the TOPSIS ranking of w.
//
// Implementation:
//   - Stage 1: w must be finite and w.Cols() must equal reg.Len().
//   - Stage 2: Ideal/NegativeIdeal per column from ColumnMax/ColumnMin, swapped for Cost.
//   - Stage 3: D+_i, D−_i as Euclidean distances of row i; C_i = D−/(D+ + D−).
//   - Stage 4: stable sort by descending C, ranks 1..M in sorted order.
//
// A column whose values are all equal has Ideal = NegativeIdeal and adds
// nothing to either distance; it is not an error.
//
// Errors: ErrEmptyInput, matrix.ErrNaNInf, matrix.ErrDimensionMismatch,
// criteria.ErrInvalidPolarity.
//
// Complexity: O(M·N + M log M).
func Rank(w *decision.WeightedMatrix, reg *criteria.Registry) (*Result, error) {
	if w == nil || w.Rows() == 0 {
		return nil, ErrEmptyInput
	}
	d := w.Matrix()
	if err := matrix.ValidateFinite(d); err != nil {
		return nil, fmt.Errorf("topsis: %w", err)
	}
	m, n := d.Shape()
	if n != reg.Len() {
		return nil, fmt.Errorf("topsis: %d columns for %d criteria: %w", n, reg.Len(), matrix.ErrDimensionMismatch)
	}

	ideal, neg, err := references(d, reg.Polarities())
	if err != nil {
		return nil, err
	}

	rows := make([]RankingRow, m)
	var row []float64
	for i := 0; i < m; i++ {
		if row, err = d.Row(i); err != nil {
			return nil, fmt.Errorf("topsis: %w", err)
		}
		dp, err := matrix.EuclideanDistance(row, ideal)
		if err != nil {
			return nil, fmt.Errorf("topsis: %w", err)
		}
		dm, err := matrix.EuclideanDistance(row, neg)
		if err != nil {
			return nil, fmt.Errorf("topsis: %w", err)
		}
		c := closeness(dp, dm)
		rows[i] = RankingRow{
			Alternative: w.Alternative(i),
			Index:       i,
			DPlus:       dp,
			DMinus:      dm,
			Closeness:   c,
			Verdict:     Classify(c),
		}
	}

	sort.SliceStable(rows, func(a, b int) bool { return rows[a].Closeness > rows[b].Closeness })
	for k := range rows {
		rows[k].Rank = k + 1
	}

	return &Result{Ideal: ideal, NegativeIdeal: neg, Rows: rows}, nil
}

func references(d *matrix.Dense, pols []criteria.Polarity) (ideal, neg []float64, err error) {
	hi, err := matrix.ColumnMax(d)
	if err != nil {
		return nil, nil, fmt.Errorf("topsis: %w", err)
	}
	lo, err := matrix.ColumnMin(d)
	if err != nil {
		return nil, nil, fmt.Errorf("topsis: %w", err)
	}

	ideal = make([]float64, len(pols))
	neg = make([]float64, len(pols))
	for j, p := range pols {
		switch p {
		case criteria.Benefit:
			ideal[j], neg[j] = hi[j], lo[j]
		case criteria.Cost:
			ideal[j], neg[j] = lo[j], hi[j]
		default:
			return nil, nil, fmt.Errorf("%w: column %d", criteria.ErrInvalidPolarity, j)
		}
	}
	return ideal, neg, nil
}

func closeness(dPlus, dMinus float64) float64 {
	s := dPlus + dMinus
	if s == 0 {
		return 0
	}
	return dMinus / s
}
