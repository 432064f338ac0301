// SPDX-License-Identifier: MIT
// Package validate: full-model orchestrator.
//
// Model accepts or rejects a complete, self-contained model.Model. It
// composes the primitive validators in a fixed sequence and fails fast at
// the first violation, decorating the sub-failure with the field path.

package validate

import (
	"fmt"

	"github.com/katalvlaran/optmodel/model"
)

// Model validates a complete model: variable and constraint collections
// are well-formed with legal bound domains, the objective references only
// existing variables with finite coefficients and upper-triangular
// quadratic storage, and the constraint matrix links only existing
// constraints to existing variables. checkNames additionally enforces name
// uniqueness per collection; leaving it off never affects any non-name
// check.
//
// The returned error is nil on acceptance, or the first violation wrapped
// with the failing field's path ("Model.Variables are invalid: ..."),
// matchable with errors.Is against the sentinels in errors.go.
// Time: near-linear in ids + nonzero entries.
func Model(m *model.Model, checkNames bool) error {
	if m == nil {
		return fmt.Errorf("%w: Model", ErrNilRecord)
	}

	// 1) Variables stand alone: ids, bounds, integrality, names.
	if err := variablesValid(m.Variables, checkNames); err != nil {
		return fmt.Errorf("Model.Variables are invalid: %w", err)
	}

	// 2) Objective references the variable id space.
	if err := objectiveValid(m.Objective, m.Variables.IDs); err != nil {
		return fmt.Errorf("Model.Objective is invalid: %w", err)
	}

	// 3) Linear constraints stand alone, same shape as variables.
	if err := linearConstraintsValid(m.LinearConstraints, checkNames); err != nil {
		return fmt.Errorf("Model.LinearConstraints are invalid: %w", err)
	}

	// 4) Constraint matrix: structure first, then both reference axes.
	if err := CheckMatrix(m.ConstraintMatrix, false); err != nil {
		return fmt.Errorf("Model.ConstraintMatrix invalid: %w", err)
	}
	if err := CheckMatrixIDsKnown(m.ConstraintMatrix, m.LinearConstraints.IDs, m.Variables.IDs); err != nil {
		return fmt.Errorf("Model.ConstraintMatrix ids are inconsistent: %w", err)
	}

	return nil
}

// variablesValid validates one Variables collection standalone: a
// well-formed id sequence, aligned bound columns under the bound infinity
// policy (lower bounds never +Inf, upper bounds never -Inf), integrality
// alignment, and name uniqueness when active.
func variablesValid(vars model.Variables, checkNames bool) error {
	if err := CheckIDsRangeAndStrictlyIncreasing(vars.IDs); err != nil {
		return fmt.Errorf("bad variable ids: %w", err)
	}
	if err := CheckValues(vars.IDs, vars.LowerBounds, false, true, "LowerBounds"); err != nil {
		return err
	}
	if err := CheckValues(vars.IDs, vars.UpperBounds, true, false, "UpperBounds"); err != nil {
		return err
	}
	if err := CheckBools(vars.IDs, vars.Integers, "Integers"); err != nil {
		return err
	}

	return CheckNameVector(vars.IDs, vars.Names, checkNames)
}

// linearConstraintsValid validates one LinearConstraints collection
// standalone; identical to variablesValid minus integrality.
func linearConstraintsValid(cons model.LinearConstraints, checkNames bool) error {
	if err := CheckIDsRangeAndStrictlyIncreasing(cons.IDs); err != nil {
		return fmt.Errorf("bad linear constraint ids: %w", err)
	}
	if err := CheckValues(cons.IDs, cons.LowerBounds, false, true, "LowerBounds"); err != nil {
		return err
	}
	if err := CheckValues(cons.IDs, cons.UpperBounds, true, false, "UpperBounds"); err != nil {
		return err
	}

	return CheckNameVector(cons.IDs, cons.Names, checkNames)
}

// objectiveValid validates the objective against the variable id space:
// finite offset, finite linear coefficients over known variable ids, and a
// structurally valid upper-triangular quadratic matrix over known variable
// ids on both axes.
func objectiveValid(obj model.Objective, variableIDs []int64) error {
	// 1) Offset.
	if err := CheckFiniteScalar(obj.Offset); err != nil {
		return fmt.Errorf("objective offset invalid: %w", err)
	}

	// 2) Linear terms: finite sparse vector, ids resolved by merge-join.
	if err := CheckIDsAndValues(obj.LinearCoefficients, false, false); err != nil {
		return fmt.Errorf("linear objective coefficients bad: %w", err)
	}
	if err := CheckSortedIDsSubset(obj.LinearCoefficients.IDs, variableIDs); err != nil {
		return fmt.Errorf("Objective.LinearCoefficients ids not found in Variables: %w", err)
	}

	// 3) Quadratic terms: upper-triangular structure, then both axes known.
	if err := CheckMatrix(obj.QuadraticCoefficients, true); err != nil {
		return fmt.Errorf("Objective.QuadraticCoefficients invalid: %w", err)
	}
	if err := CheckMatrixIDsKnown(obj.QuadraticCoefficients, variableIDs, variableIDs); err != nil {
		return fmt.Errorf("Objective.QuadraticCoefficients invalid: %w", err)
	}

	return nil
}
