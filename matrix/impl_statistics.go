// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row/column reductions the decision engines are built on
//     (column sums, Euclidean column norms, column extrema, row geometric means).
//   - Keep tight loops centralized here so every engine reduces in the same order.
//
// Exposed API:
//   - ColumnSums(X)        -> []float64 // Σ_i X[i,j]
//   - ColumnNorms(X)       -> []float64 // √Σ_i X[i,j]²
//   - ColumnMax(X)         -> []float64 // max_i X[i,j]
//   - ColumnMin(X)         -> []float64 // min_i X[i,j]
//   - RowSums(X)           -> []float64 // Σ_j X[i,j]
//   - RowGeometricMeans(X) -> []float64 // (Π_j X[i,j])^(1/c), strictly positive X only
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At and operate on row-major flat buffers.
//
// AI-Hints:
//   - Geometric means are computed in log space to avoid overflow on wide rows.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnSums        = "ColumnSums"
	opColumnNorms       = "ColumnNorms"
	opColumnMax         = "ColumnMax"
	opColumnMin         = "ColumnMin"
	opRowSums           = "RowSums"
	opRowGeometricMeans = "RowGeometricMeans"
)

// reduceColumns folds every column with step, starting from init.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Seed acc[j]=init, then acc[j]=step(acc[j], X[i,j]) in i→j order.
//
// Complexity: Time O(r*c), Space O(c).
func reduceColumns(tag string, X Matrix, init float64, step func(acc, v float64) float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	acc := make([]float64, c)
	var i, j int
	for j = 0; j < c; j++ {
		acc[j] = init
	}

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				acc[j] = step(acc[j], d.data[base+j])
			}
		}
		return acc, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(tag, err)
			}
			acc[j] = step(acc[j], v)
		}
	}

	return acc, nil
}

// ColumnSums returns Σ_i X[i,j] for each column j.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ColumnSums(X Matrix) ([]float64, error) {
	return reduceColumns(opColumnSums, X, 0, func(acc, v float64) float64 { return acc + v })
}

// ColumnNorms returns the Euclidean norm √Σ_i X[i,j]² of each column j.
// MAIN DESCRIPTION:
//   - Denominator of TOPSIS vector normalization.
//
// Behavior highlights:
//   - A column of all zeros has norm exactly 0; callers decide whether that is degenerate.
//
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ColumnNorms(X Matrix) ([]float64, error) {
	sq, err := reduceColumns(opColumnNorms, X, 0, func(acc, v float64) float64 { return acc + v*v })
	if err != nil {
		return nil, err
	}
	for j := range sq {
		sq[j] = math.Sqrt(sq[j])
	}

	return sq, nil
}

// ColumnMax returns max_i X[i,j] for each column j.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ColumnMax(X Matrix) ([]float64, error) {
	return reduceColumns(opColumnMax, X, math.Inf(-1), math.Max)
}

// ColumnMin returns min_i X[i,j] for each column j.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ColumnMin(X Matrix) ([]float64, error) {
	return reduceColumns(opColumnMin, X, math.Inf(1), math.Min)
}

// RowSums returns Σ_j X[i,j] for each row i.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func RowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	out := make([]float64, r)
	var i, j int
	var s, v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			s += v
		}
		out[i] = s
	}

	return out, nil
}

// RowGeometricMeans returns (Π_j X[i,j])^(1/c) for each row i.
// MAIN DESCRIPTION:
//   - Closed-form approximation of the principal eigenvector of a positive
//     reciprocal matrix (once normalized to sum 1).
//
// Implementation:
//   - Stage 1: ValidateStrictlyPositive(X); logarithms are undefined for entries <= 0.
//   - Stage 2: For each row accumulate Σ_j ln X[i,j] in fixed j order.
//   - Stage 3: out[i] = exp(Σ/c).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrNonPositiveEntry.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowGeometricMeans(X Matrix) ([]float64, error) {
	if err := ValidateStrictlyPositive(X); err != nil {
		return nil, matrixErrorf(opRowGeometricMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	out := make([]float64, r)
	invC := 1.0 / float64(c)
	var i, j int
	var s, v float64
	var err error

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0
			base := i * c
			for j = 0; j < c; j++ {
				s += math.Log(d.data[base+j])
			}
			out[i] = math.Exp(s * invC)
		}
		return out, nil
	}

	for i = 0; i < r; i++ {
		s = 0
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowGeometricMeans, err)
			}
			s += math.Log(v)
		}
		out[i] = math.Exp(s * invC)
	}

	return out, nil
}
