// SPDX-License-Identifier: MIT
// Package validate: identifier-sequence checks.
//
// Identifier sequences representing a collection's members are required to
// be non-negative and strictly increasing — enforced at ingestion, never
// assumed — which lets every cross-reference check in this package run as
// a linear merge-join instead of a hash probe.

package validate

import (
	"fmt"
	"slices"
)

// CheckIDsRangeAndStrictlyIncreasing validates that ids is a well-formed
// member sequence: every identifier non-negative, each strictly greater
// than its predecessor. Violations fail with ErrIDOrder; the input is
// rejected, never sorted for the caller.
// Time: O(n). Space: O(1).
func CheckIDsRangeAndStrictlyIncreasing(ids []int64) error {
	for i, id := range ids {
		if id < 0 {
			return fmt.Errorf("%w: negative id %d at index %d", ErrIDOrder, id, i)
		}
		if i > 0 && ids[i-1] >= id {
			return fmt.Errorf("%w: id %d at index %d does not exceed %d", ErrIDOrder, id, i, ids[i-1])
		}
	}

	return nil
}

// CheckSortedIDsSubset validates that every id in ids is a member of
// universe, by linear merge-join. Both inputs must already be sorted
// ascending (ids has been through CheckIDsRangeAndStrictlyIncreasing or is
// the row axis of a row-sorted matrix; universe is a member sequence).
// The first unmatched id fails with ErrUnknownID.
// Time: O(len(ids) + len(universe)). Space: O(1).
func CheckSortedIDsSubset(ids, universe []int64) error {
	var j int
	for _, id := range ids {
		// Advance the universe cursor up to the candidate; never rewind.
		for j < len(universe) && universe[j] < id {
			j++
		}
		if j == len(universe) || universe[j] != id {
			return fmt.Errorf("%w: id %d", ErrUnknownID, id)
		}
	}

	return nil
}

// sortedContains reports whether the strictly increasing slice sorted
// contains id. Used where input order is not guaranteed and a merge-join
// would not apply. Time: O(log n).
func sortedContains(sorted []int64, id int64) bool {
	_, found := slices.BinarySearch(sorted, id)

	return found
}
