package ahp

import "errors"

var (
	// ErrInvalidComparisonMatrix indicates a matrix that is empty, not square,
	// has a diagonal other than 1, violates reciprocity, or holds entries that
	// are non-positive or outside the comparison scale.
	ErrInvalidComparisonMatrix = errors.New("ahp: invalid pairwise comparison matrix")

	// ErrUnsupportedMatrixSize indicates that no random index is known for N
	// criteria (N > 10 without WithRandomIndex).
	ErrUnsupportedMatrixSize = errors.New("ahp: no random index for matrix size")

	// ErrInvalidWeights indicates a weight vector that is empty, has negative
	// or non-finite entries, or does not sum to 1.
	ErrInvalidWeights = errors.New("ahp: invalid weight vector")
)
