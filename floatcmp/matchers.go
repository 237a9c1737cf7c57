package floatcmp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrConfig reports a matcher constructed with a nonsensical tolerance.
// Construction errors always wrap it, so callers can test with errors.Is.
var ErrConfig = errors.New("invalid matcher configuration")

// FloatKind selects which IEEE-754 binary format a ULP comparison operates
// on.
type FloatKind uint8

const (
	Float32 FloatKind = iota
	Float64
)

// Matcher decides whether a candidate value is approximately equal to a
// target under one tolerance strategy. Implementations are immutable
// values. Describe renders the tolerance window for failure messages and
// is only expected to be called when Match returned false.
type Matcher interface {
	Match(candidate float64) bool
	Describe() string
}

var (
	_ Matcher = WithinAbsMatcher{}
	_ Matcher = WithinUlpsMatcher{}
	_ Matcher = WithinRelMatcher{}
)

// Must returns m, panicking if err is non-nil. It is intended for
// assertion call sites, where a bad tolerance is a programming error that
// must not be clamped or defaulted away.
func Must[M Matcher](m M, err error) M {
	if err != nil {
		panic(err)
	}
	return m
}

// marginComparison performs the equivalent check of
// math.Abs(lhs-rhs) <= margin, but without the subtraction, so that the
// comparison stays correct when an operand is infinite.
func marginComparison(lhs, rhs, margin float64) bool {
	return lhs+margin >= rhs && rhs+margin >= lhs
}

// WithinAbsMatcher accepts candidates within an absolute margin of the
// target.
type WithinAbsMatcher struct {
	target float64
	margin float64
}

// WithinAbs constructs a matcher accepting values no further than margin
// from target. The margin must be non-negative.
func WithinAbs(target, margin float64) (WithinAbsMatcher, error) {
	if margin < 0 {
		return WithinAbsMatcher{}, fmt.Errorf("%w: invalid margin %v, margin has to be non-negative", ErrConfig, margin)
	}
	return WithinAbsMatcher{target: target, margin: margin}, nil
}

func (m WithinAbsMatcher) Match(candidate float64) bool {
	return marginComparison(candidate, m.target, m.margin)
}

func (m WithinAbsMatcher) Describe() string {
	return fmt.Sprintf("is within %v of %v", m.margin, m.target)
}

// WithinUlpsMatcher accepts candidates within a maximum number of
// representable steps from the target, at the configured precision.
type WithinUlpsMatcher struct {
	target float64
	ulps   uint64
	kind   FloatKind
}

// WithinULP constructs a matcher accepting float64 values no further than
// maxUlpDiff representable steps from target.
func WithinULP(target float64, maxUlpDiff uint64) (WithinUlpsMatcher, error) {
	return WithinUlpsMatcher{target: target, ulps: maxUlpDiff, kind: Float64}, nil
}

// WithinULP32 constructs a matcher that narrows both the target and each
// candidate to float32 before comparing. A ULP count beyond what float32
// can represent is rejected.
func WithinULP32(target float32, maxUlpDiff uint64) (WithinUlpsMatcher, error) {
	if maxUlpDiff > math.MaxUint32 {
		return WithinUlpsMatcher{}, fmt.Errorf("%w: provided ULP %d is impossibly large for a float32 comparison", ErrConfig, maxUlpDiff)
	}
	return WithinUlpsMatcher{target: float64(target), ulps: maxUlpDiff, kind: Float32}, nil
}

func (m WithinUlpsMatcher) Match(candidate float64) bool {
	switch m.kind {
	case Float32:
		return AlmostEqualUlps32(float32(candidate), float32(m.target), m.ulps)
	default:
		return AlmostEqualUlps(candidate, m.target, m.ulps)
	}
}

// Describe renders the target and the concrete acceptance window, computed
// by walking the ULP budget from the target toward each infinity.
func (m WithinUlpsMatcher) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "is within %d ULPs of ", m.ulps)
	if m.kind == Float32 {
		target := float32(m.target)
		sb.WriteString(formatFloat32(target))
		sb.WriteByte('f')
		lower := stepToward32(target, float32(math.Inf(-1)), m.ulps)
		upper := stepToward32(target, float32(math.Inf(1)), m.ulps)
		fmt.Fprintf(&sb, " ([%s, %s])", formatFloat32(lower), formatFloat32(upper))
		return sb.String()
	}
	sb.WriteString(formatFloat64(m.target))
	lower := stepToward64(m.target, math.Inf(-1), m.ulps)
	upper := stepToward64(m.target, math.Inf(1), m.ulps)
	fmt.Fprintf(&sb, " ([%s, %s])", formatFloat64(lower), formatFloat64(upper))
	return sb.String()
}

// Machine epsilons of the two supported formats.
const (
	epsilon64 = 0x1p-52
	epsilon32 = 0x1p-23
)

// WithinRelMatcher accepts candidates whose distance from the target is
// within a fraction of the larger operand's magnitude.
type WithinRelMatcher struct {
	target  float64
	epsilon float64
}

// WithinRel constructs a matcher accepting values within
// epsilon*max(|candidate|, |target|) of target. Epsilon must be in [0, 1).
func WithinRel(target, epsilon float64) (WithinRelMatcher, error) {
	if epsilon < 0 {
		return WithinRelMatcher{}, fmt.Errorf("%w: relative comparison with epsilon < 0 does not make sense", ErrConfig)
	}
	if epsilon >= 1 {
		return WithinRelMatcher{}, fmt.Errorf("%w: relative comparison with epsilon >= 1 does not make sense", ErrConfig)
	}
	return WithinRelMatcher{target: target, epsilon: epsilon}, nil
}

// WithinRelDefault constructs a relative matcher with an epsilon of 100
// times the float64 machine epsilon.
func WithinRelDefault(target float64) WithinRelMatcher {
	m, _ := WithinRel(target, epsilon64*100)
	return m
}

// WithinRelDefault32 constructs a relative matcher with an epsilon of 100
// times the float32 machine epsilon.
func WithinRelDefault32(target float32) WithinRelMatcher {
	m, _ := WithinRel(float64(target), epsilon32*100)
	return m
}

func (m WithinRelMatcher) Match(candidate float64) bool {
	relMargin := m.epsilon * math.Max(math.Abs(candidate), math.Abs(m.target))
	if math.IsInf(relMargin, 0) {
		// An overflowed margin is treated as zero, forcing effective
		// exact equality through the overflow-safe comparison instead of
		// propagating the infinity into the tolerance check.
		relMargin = 0
	}
	return marginComparison(candidate, m.target, relMargin)
}

func (m WithinRelMatcher) Describe() string {
	return fmt.Sprintf("and %v are within %v%% of each other", m.target, m.epsilon*100)
}
