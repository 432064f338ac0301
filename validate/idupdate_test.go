package validate_test

import (
	"testing"

	"github.com/katalvlaran/optmodel/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIDUpdateValidator_Accepts verifies a well-formed lifecycle delta:
// sorted deletions resolved in the snapshot, fresh sorted additions.
func TestIDUpdateValidator_Accepts(t *testing.T) {
	v := validate.NewIDUpdateValidator(
		[]int64{0, 1, 2, 5}, // snapshot
		[]int64{1, 5},       // deleted
		[]int64{3, 7},       // new
	)
	assert.NoError(t, v.IsValid())
}

// TestIDUpdateValidator_BadSequences verifies that unsorted or negative
// delta sequences fail with ErrIDOrder.
func TestIDUpdateValidator_BadSequences(t *testing.T) {
	unsortedDelete := validate.NewIDUpdateValidator([]int64{0, 1, 2}, []int64{2, 1}, nil)
	assert.ErrorIs(t, unsortedDelete.IsValid(), validate.ErrIDOrder)

	negativeNew := validate.NewIDUpdateValidator([]int64{0}, nil, []int64{-4})
	assert.ErrorIs(t, negativeNew.IsValid(), validate.ErrIDOrder)
}

// TestIDUpdateValidator_DeleteUnknown verifies that deleting an id absent
// from the snapshot fails with ErrUnknownID.
func TestIDUpdateValidator_DeleteUnknown(t *testing.T) {
	v := validate.NewIDUpdateValidator([]int64{1, 3}, []int64{2}, nil)
	assert.ErrorIs(t, v.IsValid(), validate.ErrUnknownID)
}

// TestIDUpdateValidator_AddExisting verifies that adding an id already in
// the snapshot fails with ErrDuplicateID.
func TestIDUpdateValidator_AddExisting(t *testing.T) {
	v := validate.NewIDUpdateValidator([]int64{1, 3}, nil, []int64{3})
	assert.ErrorIs(t, v.IsValid(), validate.ErrDuplicateID)
}

// TestIDUpdateValidator_DeleteAndReAdd verifies that deleting and
// recreating the same id within one update fails with ErrDuplicateID —
// the recreate must wait for the next update.
func TestIDUpdateValidator_DeleteAndReAdd(t *testing.T) {
	v := validate.NewIDUpdateValidator([]int64{1, 3}, []int64{1}, []int64{1})
	assert.ErrorIs(t, v.IsValid(), validate.ErrDuplicateID)
}

// TestIDUpdateValidator_Views verifies the two derived views: field
// updates resolve against not-deleted, references against final.
func TestIDUpdateValidator_Views(t *testing.T) {
	v := validate.NewIDUpdateValidator(
		[]int64{0, 1, 2}, // snapshot
		[]int64{1},       // deleted
		[]int64{5},       // new
	)
	require.NoError(t, v.IsValid())

	// not-deleted = {0, 2}: survivors yes, deleted no, new no.
	assert.NoError(t, v.CheckSortedIDsSubsetOfNotDeleted([]int64{0, 2}))
	assert.ErrorIs(t, v.CheckSortedIDsSubsetOfNotDeleted([]int64{1}), validate.ErrUnknownID, "deleted id left the view")
	assert.ErrorIs(t, v.CheckSortedIDsSubsetOfNotDeleted([]int64{5}), validate.ErrUnknownID, "new id is not an update target")

	// final = {0, 2, 5}: survivors and new yes, deleted no.
	assert.NoError(t, v.CheckSortedIDsSubsetOfFinal([]int64{0, 2, 5}))
	assert.ErrorIs(t, v.CheckSortedIDsSubsetOfFinal([]int64{1}), validate.ErrUnknownID)

	// Order-free membership against final.
	assert.NoError(t, v.CheckIDsSubsetOfFinal([]int64{5, 0, 2}))
	assert.ErrorIs(t, v.CheckIDsSubsetOfFinal([]int64{0, 3}), validate.ErrUnknownID)
}

// TestIDUpdateValidator_EmptySnapshot verifies the first-update case: an
// empty snapshot accepts any fresh additions and no deletions.
func TestIDUpdateValidator_EmptySnapshot(t *testing.T) {
	v := validate.NewIDUpdateValidator(nil, nil, []int64{0, 1, 2})
	require.NoError(t, v.IsValid())

	assert.NoError(t, v.CheckSortedIDsSubsetOfFinal([]int64{0, 2}))
	assert.ErrorIs(t, v.CheckSortedIDsSubsetOfNotDeleted([]int64{0}), validate.ErrUnknownID)
}
