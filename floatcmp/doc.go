// Package floatcmp decides whether two floating-point values should be
// treated as equal for assertion purposes, despite the inherent imprecision
// of binary floating-point arithmetic.
//
// Three independent tolerance strategies are provided, each an immutable
// value implementing [Matcher]: an absolute margin ([WithinAbs]), a maximum
// distance in representable steps ([WithinULP], [WithinULP32]), and a margin
// relative to the larger operand's magnitude ([WithinRel]).
//
// Matchers are constructed once per assertion call site and are read-only
// thereafter, so concurrent use across test goroutines is safe. A
// nonsensical tolerance is reported as an error at construction time,
// wrapping [ErrConfig]; matching itself never fails, and mathematically
// special inputs (NaN, signed zero, infinity) resolve to documented
// verdicts rather than errors.
package floatcmp
