package assert

import (
	"github.com/floatcheck/floatcheck-go/floatcmp"
)

// AlwaysNear asserts that candidate is approximately equal to the
// matcher's target every time this function is called, AND that it is
// called at least once. The candidate is added to the details under the
// key "candidate"; when the match fails, the matcher's description of the
// acceptance window is added under the key "expected".
func AlwaysNear(candidate float64, matcher floatcmp.Matcher, message string, values map[string]any) {
	locationInfo := newLocationInfo(offsetAPICaller)
	condition := matcher.Match(candidate)
	allDetails := addNearDetails(values, candidate, matcher, condition)
	assertImpl(condition, message, allDetails, locationInfo, wasHit, mustBeHit, expectingTrue, universalTest)
}

// SometimesNear asserts that candidate is approximately equal to the
// matcher's target at least one time this function is called. Details are
// enriched the same way as in AlwaysNear.
func SometimesNear(candidate float64, matcher floatcmp.Matcher, message string, values map[string]any) {
	locationInfo := newLocationInfo(offsetAPICaller)
	condition := matcher.Match(candidate)
	allDetails := addNearDetails(values, candidate, matcher, condition)
	assertImpl(condition, message, allDetails, locationInfo, wasHit, mustBeHit, expectingTrue, existentialTest)
}

func addNearDetails(details map[string]any, candidate float64, matcher floatcmp.Matcher, matched bool) map[string]any {
	enhancedDetails := map[string]any{}
	for k, v := range details {
		enhancedDetails[k] = v
	}
	enhancedDetails["candidate"] = candidate
	if !matched {
		// The tolerance window is only rendered for counterexamples.
		enhancedDetails["expected"] = matcher.Describe()
	}
	return enhancedDetails
}
