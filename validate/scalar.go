// SPDX-License-Identifier: MIT
// Package validate: scalar domain checks.
//
// The smallest primitive: one numeric value against one infinity policy.
// Bounds admit one infinity direction each (a lower bound may be -Inf, an
// upper bound may be +Inf); coefficients and offsets admit none; NaN is
// never legal anywhere.

package validate

import (
	"fmt"
	"math"
)

// CheckScalar validates a single numeric value against an allowed-infinity
// policy. NaN fails with ErrInvalidValue unconditionally; +Inf fails with
// ErrInfinity unless allowPosInf, -Inf unless allowNegInf.
// Time: O(1). Space: O(1).
func CheckScalar(v float64, allowPosInf, allowNegInf bool) error {
	// NaN first: it is invalid under every policy.
	if math.IsNaN(v) {
		return ErrInvalidValue
	}
	if math.IsInf(v, +1) && !allowPosInf {
		return fmt.Errorf("%w: +Inf", ErrInfinity)
	}
	if math.IsInf(v, -1) && !allowNegInf {
		return fmt.Errorf("%w: -Inf", ErrInfinity)
	}

	return nil
}

// CheckFiniteScalar validates a value that must be finite (objective
// offsets and all coefficients): no NaN, no infinity of either sign.
// Time: O(1). Space: O(1).
func CheckFiniteScalar(v float64) error {
	return CheckScalar(v, false, false)
}
