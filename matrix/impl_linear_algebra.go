// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix-vector product and transpose. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.

package matrix

import "fmt"

const (
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
)

// matrixErrorf wraps an error with an op tag: "<tag>: <err>".
// Sentinels are preserved via %w so callers can match with errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = A·x.
// MAIN DESCRIPTION:
//   - Weighted-sum vector of AHP (A·w) and generic matrix-vector product.
//
// Implementation:
//   - Stage 1: ValidateNotNil(A), ValidateVecLen(x, Cols).
//   - Stage 2: accumulate y[i] = Σ_j A[i,j]*x[j] in fixed j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(A Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(A); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	r, c := A.Rows(), A.Cols()
	if err := ValidateVecLen(x, c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, r)
	var i, j int
	var s float64

	if d, ok := A.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0
			base := i * c
			for j = 0; j < c; j++ {
				s += d.data[base+j] * x[j]
			}
			y[i] = s
		}
		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0
		for j = 0; j < c; j++ {
			if v, err = A.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			s += v * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// Transpose returns Aᵀ as a fresh Dense.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(A Matrix) (*Dense, error) {
	if err := ValidateNotNil(A); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := A.Rows(), A.Cols()
	out, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = A.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			out.data[j*r+i] = v
		}
	}

	return out, nil
}
