package floatcmp

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestUlpDistanceSelfIsZero(t *testing.T) {
	for _, x := range []float64{
		0, 1, -1, 0.5, math.Pi, -math.Pi, 1e300, -1e300,
		math.SmallestNonzeroFloat64, math.MaxFloat64,
	} {
		qt.Assert(t, qt.Equals(UlpDistance(x, x), int64(0)), qt.Commentf("x = %v", x))
	}
}

func TestUlpDistanceSignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	qt.Assert(t, qt.Equals(UlpDistance(negZero, 0), int64(0)))
	qt.Assert(t, qt.Equals(UlpDistance(0, negZero), int64(0)))
	qt.Assert(t, qt.Equals(UlpDistance32(float32(math.Copysign(0, -1)), 0), int64(0)))
}

func TestUlpDistanceAdjacentValues(t *testing.T) {
	qt.Assert(t, qt.Equals(UlpDistance(1, math.Nextafter(1, 2)), int64(1)))
	qt.Assert(t, qt.Equals(UlpDistance(math.Nextafter(1, 2), 1), int64(-1)))

	// Zero bridges through the smallest subnormal.
	qt.Assert(t, qt.Equals(UlpDistance(0, math.SmallestNonzeroFloat64), int64(1)))
	qt.Assert(t, qt.Equals(UlpDistance(0, -math.SmallestNonzeroFloat64), int64(-1)))
	qt.Assert(t, qt.Equals(UlpDistance(-math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat64), int64(2)))
}

func TestUlpDistanceAntisymmetry(t *testing.T) {
	pairs := [][2]float64{
		{0, 1},
		{-1, 1},
		{1.5, 2.25},
		{-4, -2},
		{0, -math.SmallestNonzeroFloat64},
		{-1e-300, 1e300},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		qt.Assert(t, qt.Equals(UlpDistance(a, b), -UlpDistance(b, a)), qt.Commentf("a = %v, b = %v", a, b))
	}
}

func TestUlpDistanceMirrorThroughZero(t *testing.T) {
	for _, x := range []float64{math.SmallestNonzeroFloat64, 1e-300, 0.25, 1, 2.5, 1e10} {
		qt.Assert(t, qt.Equals(UlpDistance(-x, x), 2*UlpDistance(0, x)), qt.Commentf("x = %v", x))
	}
	for _, x := range []float32{math.SmallestNonzeroFloat32, 0.25, 1, 2.5, 1e10} {
		qt.Assert(t, qt.Equals(UlpDistance32(-x, x), 2*UlpDistance32(0, x)), qt.Commentf("x = %v", x))
	}
}

func TestUlpDistanceNonFinite(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	for _, p := range [][2]float64{
		{nan, nan},
		{nan, 1},
		{1, nan},
		{inf, inf},
		{inf, -inf},
		{inf, 1},
		{1, -inf},
	} {
		qt.Assert(t, qt.Equals(UlpDistance(p[0], p[1]), int64(math.MaxInt64)), qt.Commentf("a = %v, b = %v", p[0], p[1]))
	}
}

func TestUlpDistance32AdjacentValues(t *testing.T) {
	inf := float32(math.Inf(1))
	qt.Assert(t, qt.Equals(UlpDistance32(1, math.Nextafter32(1, inf)), int64(1)))
	qt.Assert(t, qt.Equals(UlpDistance32(math.Nextafter32(1, inf), 1), int64(-1)))
	qt.Assert(t, qt.Equals(UlpDistance32(0, math.SmallestNonzeroFloat32), int64(1)))
}

func TestAlmostEqualUlpsNaN(t *testing.T) {
	nan := math.NaN()
	qt.Assert(t, qt.IsFalse(AlmostEqualUlps(nan, nan, math.MaxUint64)))
	qt.Assert(t, qt.IsFalse(AlmostEqualUlps(nan, 1, math.MaxUint64)))
	qt.Assert(t, qt.IsFalse(AlmostEqualUlps(1, nan, math.MaxUint64)))
	qt.Assert(t, qt.IsFalse(AlmostEqualUlps32(float32(nan), float32(nan), math.MaxUint64)))
}

func TestAlmostEqualUlpsInfinity(t *testing.T) {
	inf := math.Inf(1)
	qt.Assert(t, qt.IsTrue(AlmostEqualUlps(inf, inf, 0)))
	qt.Assert(t, qt.IsFalse(AlmostEqualUlps(inf, -inf, math.MaxUint64)))
	qt.Assert(t, qt.IsFalse(AlmostEqualUlps(inf, math.MaxFloat64, math.MaxUint64)))
	qt.Assert(t, qt.IsTrue(AlmostEqualUlps32(float32(inf), float32(inf), 0)))
}

func TestAlmostEqualUlpsFinite(t *testing.T) {
	next := math.Nextafter(1, 2)
	qt.Assert(t, qt.IsTrue(AlmostEqualUlps(1, next, 1)))
	qt.Assert(t, qt.IsFalse(AlmostEqualUlps(1, next, 0)))
	qt.Assert(t, qt.IsTrue(AlmostEqualUlps(math.Copysign(0, -1), 0, 0)))
}

// Walking n steps up and n steps back lands within one ULP of the start.
// The boundary rounding at the walk direction itself is the documented
// imprecision, not an exact round trip.
func TestStepRoundTrip(t *testing.T) {
	up := math.Inf(1)
	down := math.Inf(-1)
	for _, x := range []float64{0, 1, -1, math.Pi, 1e-300} {
		for _, n := range []uint64{0, 1, 10, 1000} {
			there := stepToward64(x, up, n)
			back := stepToward64(there, down, n)
			qt.Assert(t, qt.IsTrue(AlmostEqualUlps(x, back, 1)), qt.Commentf("x = %v, n = %d", x, n))
		}
	}
	for _, x := range []float32{0, 1, -1, 2.5} {
		for _, n := range []uint64{0, 1, 10, 1000} {
			there := stepToward32(x, float32(up), n)
			back := stepToward32(there, float32(down), n)
			qt.Assert(t, qt.IsTrue(AlmostEqualUlps32(x, back, 1)), qt.Commentf("x = %v, n = %d", x, n))
		}
	}
}

func TestFormatScientific(t *testing.T) {
	qt.Assert(t, qt.Equals(formatFloat64(1), "1.0000000000000000e+00"))
	qt.Assert(t, qt.Equals(formatFloat64(-0.5), "-5.0000000000000000e-01"))
	qt.Assert(t, qt.Equals(formatFloat32(1), "1.00000000e+00"))
}

func BenchmarkUlpDistance(b *testing.B) {
	var sink int64
	for i := 0; i < b.N; i++ {
		sink = UlpDistance(1.0, 1.5)
	}
	_ = sink
}
