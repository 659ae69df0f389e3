package decision

import "errors"

var (
	// ErrEmptyMatrix indicates a decision matrix with no alternatives or no criteria.
	ErrEmptyMatrix = errors.New("decision: empty decision matrix")

	// ErrNegativeScore indicates a negative or non-finite score.
	ErrNegativeScore = errors.New("decision: score must be a finite non-negative number")

	// ErrDuplicateAlternative indicates a repeated or empty alternative id.
	ErrDuplicateAlternative = errors.New("decision: duplicate alternative")

	// ErrDegenerateColumn indicates a column that normalizes to 0/0.
	ErrDegenerateColumn = errors.New("decision: degenerate column")
)
