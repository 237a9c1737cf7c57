package floatcmp

import "math"

// infiniteDistance is the sentinel returned when a ULP distance is not
// meaningful because an operand is NaN or infinite. It exceeds any ULP
// budget a caller could reasonably configure.
const infiniteDistance = int64(math.MaxInt64)

// posDistance64 returns the number of representable steps from the smallest
// positive subnormal up to x. Requires x > 0 and finite.
func posDistance64(x float64) int64 {
	return convertFloat64(x) - convertFloat64(math.SmallestNonzeroFloat64)
}

// posDistance32 is the 32-bit counterpart of posDistance64.
func posDistance32(x float32) int64 {
	return int64(convertFloat32(x)) - int64(convertFloat32(math.SmallestNonzeroFloat32))
}

// UlpDistance returns the signed number of valid IEEE-754 float64
// representations between a and b. In the general case:
//
//	if math.Nextafter(a, math.Inf(1)) == b, then UlpDistance(a, b) == 1
//	if a == math.Nextafter(b, math.Inf(1)), then UlpDistance(a, b) == -1
//
// As an exception, the distance between positive and negative zero is
// always zero, even though Nextafter steps between them. The exception
// ensures that a == b implies UlpDistance(a, b) == 0, and that
// UlpDistance(-x, x) == 2*UlpDistance(0, x). Subnormals are counted
// normally. NaN or infinite operands yield math.MaxInt64.
func UlpDistance(a, b float64) int64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return infiniteDistance
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return infiniteDistance
	}
	if a == b { // also covers -0 vs +0
		return 0
	}
	sign := int64(1)
	if a > b { // ensure a < b; the distance is antisymmetric
		a, b = b, a
		sign = -1
	}
	switch {
	case a == 0: // b > 0: bridge through the smallest subnormal
		return sign * (1 + posDistance64(b))
	case b == 0: // a < 0: bridge on the negative side
		return sign * (1 + posDistance64(-a))
	case a < 0 && b > 0: // bridge each operand toward zero
		return sign * (2 + posDistance64(-a) + posDistance64(b))
	case b < 0: // both negative: mirror into the positive domain
		return sign * (convertFloat64(-a) - convertFloat64(-b))
	default: // 0 < a < b: monotonic bit ordering of positive values
		return sign * (convertFloat64(b) - convertFloat64(a))
	}
}

// UlpDistance32 is the float32 counterpart of UlpDistance. The result is
// still an int64; a float32 distance always fits.
func UlpDistance32(a, b float32) int64 {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return infiniteDistance
	}
	if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		return infiniteDistance
	}
	if a == b {
		return 0
	}
	sign := int64(1)
	if a > b {
		a, b = b, a
		sign = -1
	}
	switch {
	case a == 0:
		return sign * (1 + posDistance32(b))
	case b == 0:
		return sign * (1 + posDistance32(-a))
	case a < 0 && b > 0:
		return sign * (2 + posDistance32(-a) + posDistance32(b))
	case b < 0:
		return sign * (int64(convertFloat32(-a)) - int64(convertFloat32(-b)))
	default:
		return sign * (int64(convertFloat32(b)) - int64(convertFloat32(a)))
	}
}

// AlmostEqualUlps reports whether lhs and rhs are no more than maxUlpDiff
// representable steps apart. NaN operands are never approximately equal to
// anything, including each other. Infinite operands compare equal only when
// exactly equal.
func AlmostEqualUlps(lhs, rhs float64, maxUlpDiff uint64) bool {
	// Rule NaN out up front so the distance sentinel is never consulted.
	if math.IsNaN(lhs) || math.IsNaN(rhs) {
		return false
	}
	if math.IsInf(lhs, 0) || math.IsInf(rhs, 0) {
		return lhs == rhs
	}

	ulpDiff := UlpDistance(lhs, rhs)
	if ulpDiff < 0 {
		ulpDiff = -ulpDiff
	}
	return uint64(ulpDiff) <= maxUlpDiff
}

// AlmostEqualUlps32 is the float32 counterpart of AlmostEqualUlps.
func AlmostEqualUlps32(lhs, rhs float32, maxUlpDiff uint64) bool {
	if math.IsNaN(float64(lhs)) || math.IsNaN(float64(rhs)) {
		return false
	}
	if math.IsInf(float64(lhs), 0) || math.IsInf(float64(rhs), 0) {
		return lhs == rhs
	}

	ulpDiff := UlpDistance32(lhs, rhs)
	if ulpDiff < 0 {
		ulpDiff = -ulpDiff
	}
	return uint64(ulpDiff) <= maxUlpDiff
}
