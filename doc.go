// Package decimal provides exact arbitrary precision fixed point base
// 10 numbers.
//
// The equation for a decimal number is:
//
//  number = coefficient * 10 ^ -scale
//
// Where coefficient is an unscaled arbitrary precision integer and
// scale is the count of implied fractional digits. For example:
//
//  1.23 = 123 * 10^-2
//
// Scale may be negative, in which case the value is the coefficient
// shifted left:
//
//  100 = 1 * 10^2
//
// A value is not kept in lowest terms. Trailing zeros remain until
// Reduce is called and two values with different (coefficient, scale)
// pairs may compare equal:
//
//  coefficient  scale  String()
//  ----------------------------
//            0      0  "0"
//            0      2  "0.00"
//            1      0  "1"
//          100      2  "1.00"
//           10      0  "10"
//            1     -1  "10"
//
// Methods come in two families. The plain form clones the receiver and
// returns a new value:
//
//  c := a.Add(b) // a unchanged
//
// The Mut form mutates the receiver in place and returns it for
// chaining:
//
//  a.AddMut(b).MulMut(c) // a overwritten
//
// Both families produce identical numeric results. A failing Mut call
// leaves the receiver untouched. Plain calls on a shared value are safe
// to make concurrently; Mut calls on a shared value are not.
//
// Add, Sub and Mul are always exact. Div rounds to a requested number
// of fractional digits (18 by default) using one of four rounding
// modes; the default mode rounds half away from zero. Pow, Root, and
// Log are iterative and carry internal guard digits so that only the
// final rounding to the requested digits is observable.
package decimal
