// The assert package allows you to define approximate floating-point test
// properties for your program or workload, built on the tolerance matchers
// of the floatcmp package.
//
// These functions are no-ops with minimal performance overhead unless the
// environment variable FLOATCHECK_SDK_LOCAL_OUTPUT is set, in which case
// they log to the file pointed to by that variable using a structured JSON
// format. Code that should be checked even when it never runs can be
// indexed ahead of time with the floatcheck-go-generator utility.
//
// Each function takes a parameter called message. Assertions in different
// parts of your code with the same message value are grouped into the same
// test property, but each records its own file and line number, so a
// failure can always be traced back to its call site.
//
// Each function also takes a parameter called values: an optional
// key-value map of context information recorded alongside any example or
// counterexample of the associated property. The Near variants add the
// candidate value automatically, and on failure add the matcher's own
// description of the acceptance window.
package assert

import (
	"fmt"
)

type assertInfo struct {
	Hit        bool           `json:"hit"`
	MustHit    bool           `json:"must_hit"`
	AssertType string         `json:"assert_type"`
	Expecting  bool           `json:"expecting"`
	Category   string         `json:"category"`
	Message    string         `json:"message"`
	Condition  bool           `json:"condition"`
	Id         string         `json:"id"`
	Location   *locationInfo  `json:"location"`
	Details    map[string]any `json:"details"`
}

type wrappedAssertInfo struct {
	A *assertInfo `json:"floatcheck_assert"`
}

// --------------------------------------------------------------------------------
// Assertions
// --------------------------------------------------------------------------------
const wasHit = true
const mustBeHit = true
const optionallyHit = false
const expectingTrue = true

const universalTest = "every"
const existentialTest = "some"
const reachabilityTest = "none"

// Assert that condition is true every time this function is called, AND
// that it is called at least once.
func Always(condition bool, message string, values map[string]any) {
	locationInfo := newLocationInfo(offsetAPICaller)
	assertImpl(condition, message, values, locationInfo, wasHit, mustBeHit, expectingTrue, universalTest)
}

// Assert that condition is true every time this function is called. Unlike
// the Always function, the test property spawned by AlwaysOrUnreachable
// will not be marked as failing if the function is never invoked.
func AlwaysOrUnreachable(condition bool, message string, values map[string]any) {
	locationInfo := newLocationInfo(offsetAPICaller)
	assertImpl(condition, message, values, locationInfo, wasHit, optionallyHit, expectingTrue, universalTest)
}

// Assert that condition is true at least one time that this function was
// called. The test property spawned by Sometimes will be marked as failing
// if this function is never called, or if condition is false every time
// that it is called.
func Sometimes(condition bool, message string, values map[string]any) {
	locationInfo := newLocationInfo(offsetAPICaller)
	assertImpl(condition, message, values, locationInfo, wasHit, mustBeHit, expectingTrue, existentialTest)
}

// Assert that a line of code is never reached. The test property spawned
// by Unreachable will be marked as failing if this function is ever
// called.
func Unreachable(message string, values map[string]any) {
	locationInfo := newLocationInfo(offsetAPICaller)
	assertImpl(true, message, values, locationInfo, wasHit, optionallyHit, expectingTrue, reachabilityTest)
}

// Assert that a line of code is reached at least once. The test property
// spawned by Reachable will be marked as failing if this function is never
// called.
func Reachable(message string, values map[string]any) {
	locationInfo := newLocationInfo(offsetAPICaller)
	assertImpl(true, message, values, locationInfo, wasHit, mustBeHit, expectingTrue, reachabilityTest)
}

// This is a low-level method designed to be used by third-party frameworks
// and the registration generator. Regular users of the assert package
// should not call it.
func AssertRaw(cond bool, message string, values map[string]any, classname, funcname, filename string, line int, hit bool, mustHit bool, expecting bool, assertType string) {
	assertImpl(cond, message, values, &locationInfo{classname, funcname, filename, line, columnUnknown}, hit, mustHit, expecting, assertType)
}

func assertImpl(cond bool, message string, values map[string]any, loc *locationInfo, hit bool, mustHit bool, expecting bool, assertType string) {
	messageKey := makeKey(loc)
	trackerEntry := assertTracker.getTrackerEntry(messageKey)

	aI := &assertInfo{
		Hit:        hit,
		MustHit:    mustHit,
		AssertType: assertType,
		Expecting:  expecting,
		Category:   "",
		Message:    message,
		Condition:  cond,
		Id:         messageKey,
		Location:   loc,
		Details:    values,
	}

	trackerEntry.emit(aI)
}

func makeKey(loc *locationInfo) string {
	return fmt.Sprintf("%s|%d|%d", loc.Filename, loc.Line, loc.Column)
}
