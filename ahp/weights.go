package ahp

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/yankputra/SPK-AlatMusikKesenian/matrix"
)

// weightSumTol bounds |Σw − 1| for directly supplied weights.
const weightSumTol = 1e-6

// WeightVector is a non-negative vector of criterion weights summing to 1.
// The zero value is an empty vector; use NewWeightVector or DeriveWeights.
type WeightVector struct {
	v []float64
}

// NewWeightVector validates values as ready-made weights: non-empty, finite,
// non-negative and summing to 1 within 1e-6. The slice is copied.
func NewWeightVector(values []float64) (WeightVector, error) {
	if len(values) == 0 {
		return WeightVector{}, fmt.Errorf("%w: empty", ErrInvalidWeights)
	}
	sum := 0.0
	for i, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return WeightVector{}, fmt.Errorf("%w: w[%d]=%g: %w", ErrInvalidWeights, i, x, matrix.ErrNaNInf)
		}
		if x < 0 {
			return WeightVector{}, fmt.Errorf("%w: w[%d]=%g is negative", ErrInvalidWeights, i, x)
		}
		sum += x
	}
	if math.Abs(sum-1) > weightSumTol {
		return WeightVector{}, fmt.Errorf("%w: sum %g, want 1", ErrInvalidWeights, sum)
	}

	return WeightVector{v: append([]float64(nil), values...)}, nil
}

// NormalizeWeights rescales non-negative values so they sum to 1.
// Useful for raw priorities such as points or percentages.
func NormalizeWeights(values []float64) (WeightVector, error) {
	for i, x := range values {
		if x < 0 {
			return WeightVector{}, fmt.Errorf("%w: w[%d]=%g is negative", ErrInvalidWeights, i, x)
		}
	}
	n, err := matrix.NormalizeSum(values)
	if err != nil {
		return WeightVector{}, fmt.Errorf("%w: %w", ErrInvalidWeights, err)
	}

	return WeightVector{v: n}, nil
}

// Len returns the number of weights.
func (w WeightVector) Len() int { return len(w.v) }

// At returns weight i; it panics when i is out of range like a slice index.
func (w WeightVector) At(i int) float64 { return w.v[i] }

// Values returns a copy of the weights.
func (w WeightVector) Values() []float64 { return append([]float64(nil), w.v...) }

// MarshalJSON encodes the vector as a plain JSON array.
func (w WeightVector) MarshalJSON() ([]byte, error) {
	if w.v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(w.v)
}

// UnmarshalJSON decodes a JSON array and validates it with NewWeightVector.
func (w *WeightVector) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewWeightVector(raw)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
