package validate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/optmodel/model"
	"github.com/katalvlaran/optmodel/validate"
	"github.com/stretchr/testify/assert"
)

// TestCheckValues_AlignmentAndDomain verifies the dense-column check:
// misalignment, per-value infinity policy, and the offending index in the
// diagnostic.
func TestCheckValues_AlignmentAndDomain(t *testing.T) {
	ids := []int64{0, 1, 2}

	// Misaligned column.
	err := validate.CheckValues(ids, []float64{1, 2}, true, true, "LowerBounds")
	assert.ErrorIs(t, err, validate.ErrLengthMismatch)

	// Aligned, all finite.
	assert.NoError(t, validate.CheckValues(ids, []float64{1, 2, 3}, false, false, "LowerBounds"))

	// Forbidden infinity in the middle; message carries index and id.
	err = validate.CheckValues(ids, []float64{1, math.Inf(+1), 3}, false, true, "LowerBounds")
	assert.ErrorIs(t, err, validate.ErrInfinity)
	assert.Contains(t, err.Error(), "LowerBounds[1]")

	// NaN beats every policy.
	err = validate.CheckValues(ids, []float64{1, 2, math.NaN()}, true, true, "UpperBounds")
	assert.ErrorIs(t, err, validate.ErrInvalidValue)
}

// TestCheckBools_Alignment verifies that a boolean column must align with
// its id sequence exactly like the bound columns — an absent column is a
// length mismatch, not a default.
func TestCheckBools_Alignment(t *testing.T) {
	ids := []int64{0, 1}

	assert.NoError(t, validate.CheckBools(ids, []bool{true, false}, "Integers"))
	assert.NoError(t, validate.CheckBools(nil, nil, "Integers"), "empty collection, empty column")
	assert.ErrorIs(t, validate.CheckBools(ids, nil, "Integers"), validate.ErrLengthMismatch)
	assert.ErrorIs(t, validate.CheckBools(ids, []bool{true}, "Integers"), validate.ErrLengthMismatch)
}

// TestCheckIDsAndValues verifies the sparse-vector composite: alignment,
// id order, then value domain, failing at the first offender.
func TestCheckIDsAndValues(t *testing.T) {
	// Well-formed finite vector.
	good := model.SparseVector{IDs: []int64{0, 3, 9}, Values: []float64{1, -2, 0.5}}
	assert.NoError(t, validate.CheckIDsAndValues(good, false, false))

	// Alignment first.
	short := model.SparseVector{IDs: []int64{0, 3}, Values: []float64{1}}
	assert.ErrorIs(t, validate.CheckIDsAndValues(short, false, false), validate.ErrLengthMismatch)

	// Then id order.
	unsorted := model.SparseVector{IDs: []int64{3, 0}, Values: []float64{1, 2}}
	assert.ErrorIs(t, validate.CheckIDsAndValues(unsorted, false, false), validate.ErrIDOrder)

	negative := model.SparseVector{IDs: []int64{-1, 0}, Values: []float64{1, 2}}
	assert.ErrorIs(t, validate.CheckIDsAndValues(negative, false, false), validate.ErrIDOrder)

	// Then value domain, with position in the message.
	inf := model.SparseVector{IDs: []int64{0, 3}, Values: []float64{1, math.Inf(-1)}}
	err := validate.CheckIDsAndValues(inf, true, false)
	assert.ErrorIs(t, err, validate.ErrInfinity)
	assert.Contains(t, err.Error(), "id 3")
}

// TestCheckIDsAndBools verifies the sparse boolean-vector composite.
func TestCheckIDsAndBools(t *testing.T) {
	good := model.SparseBoolVector{IDs: []int64{1, 4}, Values: []bool{true, false}}
	assert.NoError(t, validate.CheckIDsAndBools(good))

	short := model.SparseBoolVector{IDs: []int64{1, 4}, Values: []bool{true}}
	assert.ErrorIs(t, validate.CheckIDsAndBools(short), validate.ErrLengthMismatch)

	unsorted := model.SparseBoolVector{IDs: []int64{4, 1}, Values: []bool{true, false}}
	assert.ErrorIs(t, validate.CheckIDsAndBools(unsorted), validate.ErrIDOrder)
}

// TestCheckMatrix_Structure verifies triple alignment, id range and value
// finiteness in general mode.
func TestCheckMatrix_Structure(t *testing.T) {
	good := model.SparseMatrix{
		RowIDs:    []int64{1, 0, 1},
		ColumnIDs: []int64{0, 2, 2},
		Values:    []float64{1, 2, 3},
	}
	assert.NoError(t, validate.CheckMatrix(good, false), "general mode imposes no entry order")

	short := model.SparseMatrix{RowIDs: []int64{0, 1}, ColumnIDs: []int64{0}, Values: []float64{1, 2}}
	assert.ErrorIs(t, validate.CheckMatrix(short, false), validate.ErrLengthMismatch)

	negRow := model.SparseMatrix{RowIDs: []int64{-1}, ColumnIDs: []int64{0}, Values: []float64{1}}
	assert.ErrorIs(t, validate.CheckMatrix(negRow, false), validate.ErrIDOrder)

	negCol := model.SparseMatrix{RowIDs: []int64{0}, ColumnIDs: []int64{-2}, Values: []float64{1}}
	assert.ErrorIs(t, validate.CheckMatrix(negCol, false), validate.ErrIDOrder)

	nan := model.SparseMatrix{RowIDs: []int64{0}, ColumnIDs: []int64{0}, Values: []float64{math.NaN()}}
	assert.ErrorIs(t, validate.CheckMatrix(nan, false), validate.ErrInvalidValue)

	inf := model.SparseMatrix{RowIDs: []int64{0}, ColumnIDs: []int64{0}, Values: []float64{math.Inf(+1)}}
	assert.ErrorIs(t, validate.CheckMatrix(inf, false), validate.ErrInfinity)
}

// TestCheckMatrix_UpperTriangular verifies the symmetric-storage rule:
// an entry below the diagonal fails with ErrLowerTriangle, and swapping
// its axes (so row <= column) makes the same entry valid.
func TestCheckMatrix_UpperTriangular(t *testing.T) {
	lower := model.SparseMatrix{RowIDs: []int64{2}, ColumnIDs: []int64{1}, Values: []float64{4}}
	assert.ErrorIs(t, validate.CheckMatrix(lower, true), validate.ErrLowerTriangle)

	swapped := model.SparseMatrix{RowIDs: []int64{1}, ColumnIDs: []int64{2}, Values: []float64{4}}
	assert.NoError(t, validate.CheckMatrix(swapped, true))

	diagonal := model.SparseMatrix{RowIDs: []int64{3}, ColumnIDs: []int64{3}, Values: []float64{4}}
	assert.NoError(t, validate.CheckMatrix(diagonal, true), "the diagonal belongs to the upper triangle")

	// General mode tolerates the same lower-triangle entry.
	assert.NoError(t, validate.CheckMatrix(lower, false))
}

// TestCheckMatrixIDsKnown verifies membership per axis, with the failing
// axis named in the diagnostic.
func TestCheckMatrixIDsKnown(t *testing.T) {
	m := model.SparseMatrix{
		RowIDs:    []int64{0, 2},
		ColumnIDs: []int64{5, 1},
		Values:    []float64{1, 2},
	}

	assert.NoError(t, validate.CheckMatrixIDsKnown(m, []int64{0, 2}, []int64{1, 5}))

	err := validate.CheckMatrixIDsKnown(m, []int64{0}, []int64{1, 5})
	assert.ErrorIs(t, err, validate.ErrUnknownID)
	assert.Contains(t, err.Error(), "row id 2")

	err = validate.CheckMatrixIDsKnown(m, []int64{0, 2}, []int64{1})
	assert.ErrorIs(t, err, validate.ErrUnknownID)
	assert.Contains(t, err.Error(), "column id 5")
}
