// Package matrix offers the dense numeric kernels shared by the AHP weight
// engine and the TOPSIS ranking engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - Column reductions (ColumnSums, ColumnNorms, ColumnMax, ColumnMin) and
//     RowGeometricMeans for reciprocal comparison matrices.
//   - Column broadcasts (BroadcastDivCols, BroadcastMulCols), Hadamard, Scale,
//     MatVec and Transpose.
//   - PrincipalEigenvector, a capped power iteration that falls back to the
//     normalized geometric-mean closed form when it does not converge.
//
// Every failure is one of the sentinels in errors.go, wrapped with the
// operation name; match them with errors.Is. Shape violations always surface
// as ErrDimensionMismatch and positivity violations as ErrNonPositiveEntry.
//
// All kernels are pure: operands are never mutated and results are freshly
// allocated, so independent calls may run concurrently without coordination.
package matrix
