// SPDX-License-Identifier: MIT
// Package validate: name uniqueness checks.
//
// Names are optional: a collection's names slice may be empty (everything
// unnamed) or aligned with its ids; the empty string means "unnamed" and is
// exempt from uniqueness. Name checking as a whole is switchable — callers
// that never name elements skip the cost entirely.

package validate

import "fmt"

// CheckNameVector validates name uniqueness within one collection batch.
// No-op when checkNames is false or the batch is unnamed. Otherwise the
// names slice must align with ids (ErrLengthMismatch) and no non-empty name
// may repeat (ErrDuplicateName).
// Time: O(n). Space: O(n).
func CheckNameVector(ids []int64, names []string, checkNames bool) error {
	if !checkNames || len(names) == 0 {
		return nil
	}
	if len(names) != len(ids) {
		return fmt.Errorf("names: %w: %d ids vs %d names", ErrLengthMismatch, len(ids), len(names))
	}

	seen := make(map[string]int64, len(names))
	for i, name := range names {
		if name == "" {
			continue // unnamed elements never collide
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q used by ids %d and %d", ErrDuplicateName, name, prev, ids[i])
		}
		seen[name] = ids[i]
	}

	return nil
}

// CheckNewNames validates a batch of NEW names against accepted history:
// the snapshot's name set for the collection is the comparison baseline,
// not just the batch itself. A non-empty name colliding with an accepted
// name, or repeated within the batch, fails with ErrDuplicateName.
// Time: O(e + n) where e is the snapshot collection size. Space: O(e + n).
func CheckNewNames(existing map[int64]string, ids []int64, names []string) error {
	if len(names) == 0 {
		return nil
	}
	if len(names) != len(ids) {
		return fmt.Errorf("names: %w: %d ids vs %d names", ErrLengthMismatch, len(ids), len(names))
	}

	// Seed the taken-set with every accepted name, then feed the batch
	// through it so intra-batch duplicates are caught by the same probe.
	taken := make(map[string]struct{}, len(existing)+len(names))
	for _, name := range existing {
		taken[name] = struct{}{}
	}
	for i, name := range names {
		if name == "" {
			continue
		}
		if _, ok := taken[name]; ok {
			return fmt.Errorf("%w: %q (id %d)", ErrDuplicateName, name, ids[i])
		}
		taken[name] = struct{}{}
	}

	return nil
}
