package floatcmp

import "math"

// convertFloat64 reinterprets the storage bits of d as a signed 64-bit
// integer. This is a lossless reinterpretation, not a numeric conversion:
// for positive finite values the integer ordering of the results matches
// the numeric ordering of the inputs, which is the IEEE-754 property the
// ULP distance base case relies on.
func convertFloat64(d float64) int64 {
	return int64(math.Float64bits(d))
}

// convertFloat32 is the 32-bit counterpart of convertFloat64.
func convertFloat32(f float32) int32 {
	return int32(math.Float32bits(f))
}
