package floatcmp

import (
	"math"
	"strconv"
)

// stepToward64 advances start by count representable float64 values toward
// direction. Only description rendering uses it, so the direct loop is
// acceptable off the hot path.
func stepToward64(start, direction float64, count uint64) float64 {
	for i := uint64(0); i < count; i++ {
		start = math.Nextafter(start, direction)
	}
	return start
}

// stepToward32 is the float32 counterpart of stepToward64.
func stepToward32(start, direction float32, count uint64) float32 {
	for i := uint64(0); i < count; i++ {
		start = math.Nextafter32(start, direction)
	}
	return start
}

// formatFloat64 renders num in scientific notation with one less than the
// maximum number of significant digits float64 can round-trip.
func formatFloat64(num float64) string {
	return strconv.FormatFloat(num, 'e', 16, 64)
}

// formatFloat32 is the float32 counterpart of formatFloat64.
func formatFloat32(num float32) string {
	return strconv.FormatFloat(float64(num), 'e', 8, 32)
}
