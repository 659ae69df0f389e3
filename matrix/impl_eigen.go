// SPDX-License-Identifier: MIT
// Package: matrix
//
// PrincipalEigenvector approximates the dominant eigenpair of a strictly
// positive square matrix by power iteration.
//
// Algorithm Outline:
//  1. x₀ = normalized row geometric means (closed-form start, already close
//     to the fixed point for near-consistent reciprocal matrices).
//  2. Repeat up to maxIter: y = A·x; x' = y/Σy; stop when ‖x'−x‖₁ ≤ eps.
//  3. λ = mean_i (A·x)_i / x_i.
//  4. If the cap is hit first, fall back to x₀ (geometric-mean closed form)
//     and report converged=false.
//
// Perron–Frobenius guarantees a unique positive dominant eigenvector for
// strictly positive matrices, so the iterate stays positive and Σy > 0.
//
// Complexity:
//   - Time O(maxIter·n²), Space O(n).

package matrix

import "math"

const opPrincipalEigenvector = "PrincipalEigenvector"

// EigenResult bundles the outcome of PrincipalEigenvector.
type EigenResult struct {
	Vector     []float64 // dominant eigenvector, Σ = 1, all entries > 0
	Value      float64   // λ estimate, mean of (A·x)_i / x_i
	Iterations int       // power steps performed
	Converged  bool      // false ⇒ Vector is the geometric-mean fallback
}

// PrincipalEigenvector runs a capped power iteration on a strictly positive square matrix.
//
// Options:
//   - WithMaxIterations (default DefaultMaxIterations = 100).
//   - WithEpsilon       (default DefaultEpsilon).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf, ErrNonPositiveEntry.
//
// AI-Hints:
//   - Non-convergence is not an error; inspect EigenResult.Converged.
func PrincipalEigenvector(A Matrix, opts ...Option) (EigenResult, error) {
	o := gatherOptions(opts...)

	// Stage 1 (Validate): square, finite, strictly positive.
	if err := ValidateSquare(A); err != nil {
		return EigenResult{}, matrixErrorf(opPrincipalEigenvector, err)
	}
	gm, err := RowGeometricMeans(A)
	if err != nil {
		return EigenResult{}, matrixErrorf(opPrincipalEigenvector, err)
	}
	x0, err := NormalizeSum(gm)
	if err != nil {
		return EigenResult{}, matrixErrorf(opPrincipalEigenvector, err)
	}

	// Stage 2 (Iterate): y = A·x, renormalize, measure L1 change.
	x := append([]float64(nil), x0...)
	var y []float64
	converged := false
	iter := 0
	for iter < o.maxIter {
		if y, err = MatVec(A, x); err != nil {
			return EigenResult{}, matrixErrorf(opPrincipalEigenvector, err)
		}
		if y, err = NormalizeSum(y); err != nil {
			return EigenResult{}, matrixErrorf(opPrincipalEigenvector, err)
		}
		iter++
		delta := 0.0
		for k := range x {
			delta += math.Abs(y[k] - x[k])
		}
		x = y
		if delta <= o.eps {
			converged = true
			break
		}
	}

	// Stage 3 (Fallback): closed form when the cap was reached.
	if !converged {
		x = x0
	}

	// Stage 4 (Eigenvalue): λ = mean((A·x)_i / x_i).
	ax, err := MatVec(A, x)
	if err != nil {
		return EigenResult{}, matrixErrorf(opPrincipalEigenvector, err)
	}
	lambda := 0.0
	for k := range ax {
		lambda += ax[k] / x[k]
	}
	lambda /= float64(len(ax))

	return EigenResult{Vector: x, Value: lambda, Iterations: iter, Converged: converged}, nil
}
