// SPDX-License-Identifier: MIT
// Package validate: sparse-container structural checks.
//
// Centralized shape/domain validators for the parallel-slice containers of
// the model package: dense value columns aligned to a member sequence,
// (ids, values) sparse vectors, and (row, column, value) sparse matrices.
// Each composite check follows a fixed sequence: alignment → identifier
// well-formedness → numeric domain.

package validate

import (
	"fmt"

	"github.com/katalvlaran/optmodel/model"
)

// CheckValues validates a dense value column aligned to a member id
// sequence: len(values) must equal len(ids) (ErrLengthMismatch), and every
// value must satisfy the given infinity policy. The field name prefixes the
// diagnostic. The ids themselves are validated by the caller beforehand.
// Time: O(n). Space: O(1).
func CheckValues(ids []int64, values []float64, allowPosInf, allowNegInf bool, field string) error {
	if len(values) != len(ids) {
		return fmt.Errorf("%s: %w: %d ids vs %d values", field, ErrLengthMismatch, len(ids), len(values))
	}
	for i, v := range values {
		if err := CheckScalar(v, allowPosInf, allowNegInf); err != nil {
			return fmt.Errorf("invalid %s[%d] (id %d): %w", field, i, ids[i], err)
		}
	}

	return nil
}

// CheckBools validates a dense boolean column aligned to a member id
// sequence: len(values) must equal len(ids), exactly like the bound
// columns. Booleans carry no numeric domain, so alignment is the whole
// check. Time: O(1). Space: O(1).
func CheckBools(ids []int64, values []bool, field string) error {
	if len(values) != len(ids) {
		return fmt.Errorf("%s: %w: %d ids vs %d values", field, ErrLengthMismatch, len(ids), len(values))
	}

	return nil
}

// CheckIDsAndValues validates a sparse vector end to end: id/value
// alignment (ErrLengthMismatch), id well-formedness (ErrIDOrder), then the
// infinity policy on every value, aborting at the first offender.
// Time: O(n). Space: O(1).
func CheckIDsAndValues(v model.SparseVector, allowPosInf, allowNegInf bool) error {
	// 1) Alignment before anything else — indexes below rely on it.
	if len(v.IDs) != len(v.Values) {
		return fmt.Errorf("%w: %d ids vs %d values", ErrLengthMismatch, len(v.IDs), len(v.Values))
	}

	// 2) Identifier sequence must be a well-formed member sequence.
	if err := CheckIDsRangeAndStrictlyIncreasing(v.IDs); err != nil {
		return err
	}

	// 3) Per-value domain check, reporting the offending position.
	for i, val := range v.Values {
		if err := CheckScalar(val, allowPosInf, allowNegInf); err != nil {
			return fmt.Errorf("invalid value at index %d (id %d): %w", i, v.IDs[i], err)
		}
	}

	return nil
}

// CheckIDsAndBools validates a sparse boolean vector: alignment and id
// well-formedness (flags have no numeric domain).
// Time: O(n). Space: O(1).
func CheckIDsAndBools(v model.SparseBoolVector) error {
	if len(v.IDs) != len(v.Values) {
		return fmt.Errorf("%w: %d ids vs %d values", ErrLengthMismatch, len(v.IDs), len(v.Values))
	}

	return CheckIDsRangeAndStrictlyIncreasing(v.IDs)
}

// CheckMatrix validates a sparse matrix structurally: the three parallel
// arrays share one length (ErrLengthMismatch), every identifier on both
// axes is non-negative (ErrIDOrder), and every coefficient is finite. In
// upper-triangular mode (symmetric quadratic storage) an entry with
// row id > column id fails with ErrLowerTriangle. General mode imposes no
// ordering between entries.
// Time: O(n). Space: O(1).
func CheckMatrix(m model.SparseMatrix, upperTriangular bool) error {
	// 1) Triple alignment.
	if len(m.RowIDs) != len(m.ColumnIDs) || len(m.RowIDs) != len(m.Values) {
		return fmt.Errorf("%w: %d row ids, %d column ids, %d values",
			ErrLengthMismatch, len(m.RowIDs), len(m.ColumnIDs), len(m.Values))
	}

	// 2) Per-entry checks: id range, triangle, value domain.
	for i := range m.RowIDs {
		if m.RowIDs[i] < 0 {
			return fmt.Errorf("%w: negative row id %d at entry %d", ErrIDOrder, m.RowIDs[i], i)
		}
		if m.ColumnIDs[i] < 0 {
			return fmt.Errorf("%w: negative column id %d at entry %d", ErrIDOrder, m.ColumnIDs[i], i)
		}
		if upperTriangular && m.RowIDs[i] > m.ColumnIDs[i] {
			return fmt.Errorf("%w: entry %d has row id %d > column id %d",
				ErrLowerTriangle, i, m.RowIDs[i], m.ColumnIDs[i])
		}
		if err := CheckFiniteScalar(m.Values[i]); err != nil {
			return fmt.Errorf("invalid value at entry %d: %w", i, err)
		}
	}

	return nil
}

// CheckMatrixIDsKnown validates that every row identifier of m is a member
// of rowUniverse and every column identifier a member of colUniverse (both
// strictly increasing). Entry order is not assumed on either axis, so
// membership is tested by binary search; the first violation fails with
// ErrUnknownID naming the axis.
// Time: O(n log u). Space: O(1).
func CheckMatrixIDsKnown(m model.SparseMatrix, rowUniverse, colUniverse []int64) error {
	// Axes must align even here: this check is callable on its own.
	if len(m.RowIDs) != len(m.ColumnIDs) {
		return fmt.Errorf("%w: %d row ids vs %d column ids", ErrLengthMismatch, len(m.RowIDs), len(m.ColumnIDs))
	}
	for i := range m.RowIDs {
		if !sortedContains(rowUniverse, m.RowIDs[i]) {
			return fmt.Errorf("%w: row id %d at entry %d", ErrUnknownID, m.RowIDs[i], i)
		}
		if !sortedContains(colUniverse, m.ColumnIDs[i]) {
			return fmt.Errorf("%w: column id %d at entry %d", ErrUnknownID, m.ColumnIDs[i], i)
		}
	}

	return nil
}
