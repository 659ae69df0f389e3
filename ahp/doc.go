// Package ahp derives criteria weights from a pairwise comparison matrix
// with the Analytic Hierarchy Process and reports how consistent the
// judgments were.
//
// 🚀 What is AHP?
//
//	A decision maker compares every pair of criteria on the Saaty scale
//	(1 = equal importance … 9 = extreme importance, reciprocals for the
//	reverse). The principal eigenvector of that reciprocal matrix is the
//	weight vector; its eigenvalue λmax measures how far the judgments are
//	from perfectly transitive.
//
// ✨ Key features:
//   - strict construction: square, unit diagonal, reciprocal within ε=1e-6,
//     strictly positive, bounded to [1/9, 9]
//   - FromUpperTriangle for n(n−1)/2 judgments entered row by row
//   - three weight methods: GeometricMean (default), ColumnNormalization,
//     Eigenvector (capped power iteration)
//   - ConsistencyReport with λmax, CI, RI, CR and the Acceptable verdict
//     (CR ≤ 0.10, always acceptable for N ≤ 2)
//   - N > 10 fails with ErrUnsupportedMatrixSize unless an explicit random
//     index is supplied with WithRandomIndex
//
// ⚙️ Usage:
//
//	pm, err := ahp.FromUpperTriangle(3, []float64{3, 5, 2})
//	w, report, err := ahp.DeriveWeights(pm)
//	if !report.Acceptable {
//	  // ask the decision maker to revisit the judgments
//	}
//
// The engine never rejects an inconsistent matrix: it reports the verdict and
// lets the caller decide.
package ahp
