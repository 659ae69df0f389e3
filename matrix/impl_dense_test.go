// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yankputra/SPK-AlatMusikKesenian/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the finite-only numeric policy on Set.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 0, 7.89))
	assert.Equal(t, 7.89, MustAt(t, m, 0, 0))
}

func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	d, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
	assert.Equal(t, 6.0, MustAt(t, d, 1, 2))

	// The source is copied, not retained.
	src[0][0] = 100
	assert.Equal(t, 1.0, MustAt(t, d, 0, 0))
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, d.ToRows())
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"nil", nil, matrix.ErrInvalidDimensions},
		{"empty row", [][]float64{{}}, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrDimensionMismatch},
		{"nan", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{math.Inf(-1)}}, matrix.ErrNaNInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := matrix.NewDenseFromRows(tt.rows)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestCloneIndependence verifies deep copy semantics.
func TestCloneIndependence(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := a.Clone()
	require.NoError(t, b.Set(0, 0, 9))

	assert.Equal(t, 1.0, MustAt(t, a, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, b, 0, 0))
}

func TestRowColCopies(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	row, err := a.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	col, err := a.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, col)

	row[0] = -1
	assert.Equal(t, 4.0, MustAt(t, a, 1, 0))
}

func TestDenseStringAndDo(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2.5, 3, 4})
	assert.Equal(t, "[1, 2.5]\n[3, 4]\n", a.String())

	var seen []float64
	a.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	assert.Equal(t, []float64{1, 2.5, 3}, seen)
}
