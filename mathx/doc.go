// SPDX-License-Identifier: MIT

// Package mathx collects the scalar helpers shared by the lvnum packages:
// tolerance comparison, decimal rounding, angle conversion, NaN-skipping
// sums, piecewise-linear interpolation and factorials.
//
// Every tolerance is an explicit argument. DefaultEpsilon is provided as a
// conventional value, never read implicitly.
package mathx
