// Package criteria holds the ordered criteria set of a decision problem.
//
// A Criterion pairs a unique code ("C1") with a display label and a
// polarity: Benefit (higher raw values are better) or Cost (lower raw values
// are better). Registry order is significant: it defines the column order of
// every comparison matrix, weight vector and decision matrix built over it.
//
// Criteria are immutable once registered; a Registry only grows.
//
//	reg, err := criteria.NewRegistry(
//	  criteria.Criterion{Code: "C1", Label: "Sound quality", Polarity: criteria.Benefit},
//	  criteria.Criterion{Code: "C5", Label: "Price", Polarity: criteria.Cost},
//	)
package criteria
