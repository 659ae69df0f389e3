package ahp

import (
	"fmt"
	"math"

	"github.com/yankputra/SPK-AlatMusikKesenian/matrix"
)

// PairwiseMatrix is a validated reciprocal comparison matrix over N criteria.
// Entry (i,j) is the importance of criterion i relative to criterion j.
// It is never mutated after construction.
type PairwiseMatrix struct {
	m *matrix.Dense
}

// NewPairwiseMatrix validates rows and copies them into a PairwiseMatrix.
//
// Checks, in order: non-empty and square, finite, strictly positive, unit
// diagonal (|a_ii − 1| ≤ ε), reciprocal (|a_ji − 1/a_ij| ≤ ε), within the
// comparison scale. Every failure wraps ErrInvalidComparisonMatrix; shape and
// positivity failures also wrap the matrix sentinel that triggered them.
//
// Options: WithTolerance, WithScaleMax.
func NewPairwiseMatrix(rows [][]float64, opts ...Option) (*PairwiseMatrix, error) {
	o := gatherOptions(opts...)

	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidComparisonMatrix, err)
	}
	if err = matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("%w: %d×%d: %w", ErrInvalidComparisonMatrix, d.Rows(), d.Cols(), err)
	}
	if err = matrix.ValidateStrictlyPositive(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidComparisonMatrix, err)
	}
	if err = validateReciprocal(d, o); err != nil {
		return nil, err
	}

	return &PairwiseMatrix{m: d}, nil
}

// FromUpperTriangle builds a reciprocal n×n matrix from the n(n−1)/2
// judgments above the diagonal, listed row by row:
// a01, a02, …, a0(n−1), a12, …, a(n−2)(n−1).
// The diagonal is 1 and a_ji = 1/a_ij by construction.
func FromUpperTriangle(n int, judgments []float64, opts ...Option) (*PairwiseMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidComparisonMatrix, n)
	}
	if want := n * (n - 1) / 2; len(judgments) != want {
		return nil, fmt.Errorf("%w: %d judgments for n=%d, want %d: %w",
			ErrInvalidComparisonMatrix, len(judgments), n, want, matrix.ErrDimensionMismatch)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := judgments[k]
			k++
			if !(v > 0) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: judgment (%d,%d)=%g: %w",
					ErrInvalidComparisonMatrix, i, j, v, matrix.ErrNonPositiveEntry)
			}
			rows[i][j] = v
			rows[j][i] = 1 / v
		}
	}

	return NewPairwiseMatrix(rows, opts...)
}

// validateReciprocal checks the diagonal and scale entry by entry, then the
// reciprocity of every pair through P = A ⊙ Aᵀ, where p_ij = a_ij·a_ji must
// be 1. |p_ij − 1| ≤ ε·a_ij is the same test as |a_ji − 1/a_ij| ≤ ε.
func validateReciprocal(d *matrix.Dense, o options) error {
	lo := 0.0
	if o.scaleMax > 0 {
		lo = 1 / o.scaleMax
	}
	var bad error
	d.Do(func(i, j int, aij float64) bool {
		switch {
		case i == j && math.Abs(aij-1) > o.tol:
			bad = fmt.Errorf("%w: diagonal (%d,%d)=%g, want 1", ErrInvalidComparisonMatrix, i, i, aij)
		case o.scaleMax > 0 && (aij < lo-o.tol || aij > o.scaleMax+o.tol):
			bad = fmt.Errorf("%w: (%d,%d)=%g outside [1/%g, %g]",
				ErrInvalidComparisonMatrix, i, j, aij, o.scaleMax, o.scaleMax)
		}
		return bad == nil
	})
	if bad != nil {
		return bad
	}

	at, err := matrix.Transpose(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidComparisonMatrix, err)
	}
	p, err := matrix.Hadamard(d, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidComparisonMatrix, err)
	}
	p.Do(func(i, j int, pij float64) bool {
		if j <= i {
			return true
		}
		aij, _ := d.At(i, j) // bounds already validated
		if math.Abs(pij-1) > o.tol*aij {
			aji, _ := d.At(j, i)
			bad = fmt.Errorf("%w: (%d,%d)=%g is not the reciprocal of (%d,%d)=%g",
				ErrInvalidComparisonMatrix, j, i, aji, i, j, aij)
		}
		return bad == nil
	})
	return bad
}

// N returns the number of criteria compared.
func (p *PairwiseMatrix) N() int {
	if p == nil || p.m == nil {
		return 0
	}
	return p.m.Rows()
}

// At returns entry (i,j).
func (p *PairwiseMatrix) At(i, j int) (float64, error) { return p.m.At(i, j) }

// Rows exports the matrix as a fresh [][]float64.
func (p *PairwiseMatrix) Rows() [][]float64 { return p.m.ToRows() }

// Matrix returns a copy of the underlying dense matrix.
func (p *PairwiseMatrix) Matrix() *matrix.Dense { return p.m.Clone().(*matrix.Dense) }
