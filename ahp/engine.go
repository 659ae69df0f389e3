package ahp

import (
	"fmt"

	"github.com/yankputra/SPK-AlatMusikKesenian/matrix"
)

// DeriveWeights computes the criterion weights of pm and its consistency report.
//
// Implementation:
//   - Stage 1: reject a nil or empty matrix; look up RI(N) so unsupported sizes
//     fail before any arithmetic.
//   - Stage 2: extract w with the selected Method (GeometricMean by default).
//   - Stage 3: λmax = mean_i (A·w)_i / w_i; CI = (λmax − N)/(N − 1); CR = CI/RI.
//   - Stage 4: Acceptable = N ≤ 2 or CR ≤ threshold.
//
// An inconsistent matrix is not an error; callers inspect report.Acceptable.
//
// Options: WithMethod, WithThreshold, WithRandomIndex, WithMaxIterations.
//
// Errors: ErrInvalidComparisonMatrix, ErrUnsupportedMatrixSize.
//
// Complexity: O(N²) for GeometricMean and ColumnNormalization,
// O(maxIter·N²) for Eigenvector.
func DeriveWeights(pm *PairwiseMatrix, opts ...Option) (WeightVector, ConsistencyReport, error) {
	if pm.N() == 0 {
		return WeightVector{}, ConsistencyReport{}, fmt.Errorf("%w: nil or empty", ErrInvalidComparisonMatrix)
	}
	o := gatherOptions(opts...)
	n := pm.N()
	if _, ok := o.ri[n]; !ok {
		return WeightVector{}, ConsistencyReport{}, fmt.Errorf("%w: n=%d", ErrUnsupportedMatrixSize, n)
	}

	w, lambda, err := extract(pm.m, o)
	if err != nil {
		return WeightVector{}, ConsistencyReport{}, fmt.Errorf("%w: %w", ErrInvalidComparisonMatrix, err)
	}
	rep, err := consistency(n, lambda, o)
	if err != nil {
		return WeightVector{}, ConsistencyReport{}, err
	}

	return WeightVector{v: w}, rep, nil
}

// extract returns the normalized weights and λmax for the chosen method.
func extract(a *matrix.Dense, o options) ([]float64, float64, error) {
	var w []float64
	var err error

	switch o.method {
	case GeometricMean:
		var gm []float64
		if gm, err = matrix.RowGeometricMeans(a); err != nil {
			return nil, 0, err
		}
		w, err = matrix.NormalizeSum(gm)
	case ColumnNormalization:
		w, err = columnNormalization(a)
	case Eigenvector:
		var res matrix.EigenResult
		res, err = matrix.PrincipalEigenvector(a, matrix.WithMaxIterations(o.maxIter))
		if err != nil {
			return nil, 0, err
		}
		return res.Vector, res.Value, nil
	default:
		return nil, 0, fmt.Errorf("unknown method %s", o.method)
	}
	if err != nil {
		return nil, 0, err
	}

	lambda, err := lambdaMax(a, w)
	if err != nil {
		return nil, 0, err
	}
	return w, lambda, nil
}

// columnNormalization divides every column by its sum and averages each row.
func columnNormalization(a *matrix.Dense) ([]float64, error) {
	sums, err := matrix.ColumnSums(a)
	if err != nil {
		return nil, err
	}
	norm, err := matrix.BroadcastDivCols(a, sums)
	if err != nil {
		return nil, err
	}
	rs, err := matrix.RowSums(norm)
	if err != nil {
		return nil, err
	}
	inv := 1 / float64(a.Cols())
	for i := range rs {
		rs[i] *= inv
	}

	return rs, nil
}

// lambdaMax = mean_i (A·w)_i / w_i.
func lambdaMax(a *matrix.Dense, w []float64) (float64, error) {
	aw, err := matrix.MatVec(a, w)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for i := range aw {
		sum += aw[i] / w[i]
	}
	return sum / float64(len(aw)), nil
}
