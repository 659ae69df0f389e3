// Package topsis ranks alternatives by their relative closeness to the ideal
// solution of a weighted decision matrix.
//
// For every criterion the ideal value is the column maximum when the
// criterion is a benefit and the column minimum when it is a cost; the
// negative ideal takes the other end. Each alternative gets its Euclidean
// distance to both references (D+, D−) and the closeness coefficient
//
//	C = D− / (D+ + D−)   (0 when both distances are 0)
//
// Rows are sorted by descending C with a stable sort, so ties keep input
// order, and receive ordinal ranks 1..M without gaps.
//
// Classify maps a coefficient to the informational bands used in reports:
// above 0.70 is VeryGood, 0.40 to 0.70 is Good, below 0.40 is Poor.
package topsis
