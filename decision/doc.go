// Package decision holds the alternatives × criteria score table and turns it
// into the normalized and weighted matrices TOPSIS ranks.
//
// A DecisionMatrix keeps alternative ids in insertion order; row i of every
// derived matrix belongs to the same alternative. Cost polarity is not applied
// here: normalization only rescales columns, topsis decides which end of each
// column is ideal.
//
// Two normalization policies are available:
//
//	Vector (default): r_ij = x_ij / √Σ_k x_kj²
//	Linear:           r_ij = x_ij / max_k x_kj
//
// A column whose denominator is 0 (every score 0) cannot be normalized and
// fails with ErrDegenerateColumn.
package decision
