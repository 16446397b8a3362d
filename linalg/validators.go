// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Single source of truth for nil/shape checks used by every kernel.
//   - Return plain sentinels (tagged with the validator name) so call sites
//     can wrap uniformly with their operation tag.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → Shape.

package linalg

import "fmt"

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every matrix reference is non-nil.
// Complexity: O(len(ms)).
func ValidateNotNil(ms ...*Matrix) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilOperand)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
// Errors: ErrNilOperand, ErrNonSquare.
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameDim ensures two vectors are non-nil and of equal dimension.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func ValidateSameDim(a, b *Vector) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameDim", ErrNilOperand)
	}
	if len(a.comps) != len(b.comps) {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}
