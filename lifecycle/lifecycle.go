// The lifecycle package informs consumers of the structured output about
// major milestones of a test run. Events are emitted through the same JSON
// channel as assertions, so a reader of the local output file sees
// assertions interleaved with the run lifecycle that produced them.
package lifecycle

import (
	"github.com/floatcheck/floatcheck-go/internal"
)

type eventInfo struct {
	Name    string         `json:"event"`
	Details map[string]any `json:"details,omitempty"`
}

type wrappedEventInfo struct {
	E *eventInfo `json:"floatcheck_event"`
}

// SendEvent emits an arbitrary named event with optional details.
func SendEvent(eventName string, details map[string]any) {
	internal.Json_data(wrappedEventInfo{&eventInfo{Name: eventName, Details: details}})
}

// SetupComplete signals that the workload finished setting up and is about
// to start evaluating test properties. Call it at most once.
func SetupComplete(details map[string]any) {
	SendEvent("setup_complete", details)
}

// RunComplete signals the end of a test run; details typically carry the
// pass/fail summary.
func RunComplete(details map[string]any) {
	SendEvent("run_complete", details)
}
