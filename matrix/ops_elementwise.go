// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise and column-broadcast kernels used to normalize and
//     weight decision matrices (X ./ colNorms, X .* weights).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - ewBroadcastCols is the single private micro-kernel; public wrappers bind the op.
//   - Operands are never mutated; every call allocates exactly one output Dense.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - O(r*c) time and space.

package matrix

const (
	opBroadcastMulCols = "BroadcastMulCols"
	opBroadcastDivCols = "BroadcastDivCols"
	opHadamard         = "Hadamard"
	opScale            = "Scale"
)

// ewBroadcastCols computes out[i,j] = op(X[i,j], v[j]).
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != Cols), wrapped Set errors.
func ewBroadcastCols(tag string, X Matrix, v []float64, op func(x, s float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(v, c); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = op(d.data[base+j], v[j])
			}
		}
		return out, nil
	}

	// Generic fallback via At/Set (still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, e)
			}
			if e = out.Set(i, j, op(x, v[j])); e != nil {
				return nil, matrixErrorf(tag, e)
			}
		}
	}

	return out, nil
}

// BroadcastMulCols returns out[i,j] = X[i,j] * scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func BroadcastMulCols(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcastCols(opBroadcastMulCols, X, scale, func(x, s float64) float64 { return x * s })
}

// BroadcastDivCols returns out[i,j] = X[i,j] / div[j].
// MAIN DESCRIPTION:
//   - Column normalization by a precomputed per-column divisor (norm, max, sum).
//
// Implementation:
//   - Stage 1: validate len(div) == Cols and every div[j] != 0 (ErrDivisionByZero).
//   - Stage 2: broadcast-divide into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrDivisionByZero.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func BroadcastDivCols(X Matrix, div []float64) (*Dense, error) {
	for j, d := range div {
		if d == 0 {
			return nil, denseErrorf(opBroadcastDivCols, 0, j, ErrDivisionByZero)
		}
	}

	return ewBroadcastCols(opBroadcastDivCols, X, div, func(x, s float64) float64 { return x / s })
}

// Hadamard returns the element-wise product a ⊙ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	r, c := a.Rows(), a.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range out.data {
			out.data[k] = da.data[k] * db.data[k]
		}
		return out, nil
	}

	var x, y float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if x, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if y, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			out.data[i*c+j] = x * y
		}
	}

	return out, nil
}

// Scale returns alpha*X as a fresh Dense.
// Errors: ErrNilMatrix, ErrNaNInf for a non-finite alpha. Complexity: O(r*c).
func Scale(X Matrix, alpha float64) (*Dense, error) {
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	ones := make([]float64, X.Cols())
	for j := range ones {
		ones[j] = alpha
	}

	return ewBroadcastCols(opScale, X, ones, func(x, s float64) float64 { return x * s })
}
