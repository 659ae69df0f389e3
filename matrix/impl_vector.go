// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small vector kernels shared by the weight and ranking engines:
//     sum, L1 normalization to a distribution, Euclidean distance.

package matrix

import "math"

const (
	opNormalizeSum       = "NormalizeSum"
	opEuclideanDistance  = "EuclideanDistance"
	opNormalizeSumZeroed = "NormalizeSum: zero sum"
)

// SumVec returns Σ_k x[k] in index order.
func SumVec(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}

	return s
}

// NormalizeSum returns x / Σx as a fresh slice whose entries sum to 1.
// Errors:
//   - ErrDimensionMismatch for an empty vector.
//   - ErrNaNInf for a non-finite entry.
//   - ErrDivisionByZero when Σx == 0.
//
// Complexity: O(n).
func NormalizeSum(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, matrixErrorf(opNormalizeSum, ErrDimensionMismatch)
	}
	for _, v := range x {
		if isNonFinite(v) {
			return nil, matrixErrorf(opNormalizeSum, ErrNaNInf)
		}
	}
	s := SumVec(x)
	if s == 0 {
		return nil, matrixErrorf(opNormalizeSumZeroed, ErrDivisionByZero)
	}
	out := make([]float64, len(x))
	inv := 1.0 / s
	for k, v := range x {
		out[k] = v * inv
	}

	return out, nil
}

// EuclideanDistance returns √Σ_k (a[k]-b[k])².
// Errors: ErrDimensionMismatch when len(a) != len(b).
// Complexity: O(n).
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, matrixErrorf(opEuclideanDistance, ErrDimensionMismatch)
	}
	var s, d float64
	for k := range a {
		d = a[k] - b[k]
		s += d * d
	}

	return math.Sqrt(s), nil
}
