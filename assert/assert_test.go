package assert

import (
	"testing"

	"github.com/floatcheck/floatcheck-go/floatcmp"
)

func TestMakeKeyDistinguishesCallSites(t *testing.T) {
	a := &locationInfo{Filename: "a.go", Line: 10}
	b := &locationInfo{Filename: "a.go", Line: 11}
	c := &locationInfo{Filename: "b.go", Line: 10}

	if makeKey(a) == makeKey(b) || makeKey(a) == makeKey(c) {
		t.Errorf("Call sites must map to distinct keys: %q %q %q", makeKey(a), makeKey(b), makeKey(c))
	}
	if makeKey(a) != makeKey(&locationInfo{Filename: "a.go", Line: 10}) {
		t.Error("Identical call sites must map to the same key")
	}
}

func TestTrackerCountsOutcomes(t *testing.T) {
	entry := assertTracker.getTrackerEntry("tracker-counts-test")
	if entry == nil {
		t.Fatal("No tracker entry")
	}

	pass := &assertInfo{Condition: true}
	fail := &assertInfo{Condition: false}
	entry.emit(pass)
	entry.emit(pass)
	entry.emit(fail)

	if entry.PassCount != 2 {
		t.Errorf("PassCount = %d, want 2", entry.PassCount)
	}
	if entry.FailCount != 1 {
		t.Errorf("FailCount = %d, want 1", entry.FailCount)
	}

	if again := assertTracker.getTrackerEntry("tracker-counts-test"); again != entry {
		t.Error("Same key must resolve to the same tracker entry")
	}
}

func TestNewLocationInfoCapturesThisFile(t *testing.T) {
	loc := newLocationInfo(offsetHere)
	if loc.Line == 0 {
		t.Error("Line was not captured")
	}
	if loc.Funcname != "TestNewLocationInfoCapturesThisFile" {
		t.Errorf("Funcname = %q", loc.Funcname)
	}
}

func BenchmarkAlways(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Always(true, "benchmark statement", nil)
	}
}

func BenchmarkAlwaysNear(b *testing.B) {
	m := floatcmp.Must(floatcmp.WithinAbs(10.0, 0.5))
	for i := 0; i < b.N; i++ {
		AlwaysNear(10.25, m, "benchmark near statement", nil)
	}
}
