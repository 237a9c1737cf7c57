package assert

import (
	"sync"

	"github.com/floatcheck/floatcheck-go/internal"
)

type trackerInfo struct {
	PassCount int
	FailCount int
}

type emitTracker map[string]*trackerInfo

// assertTracker (global) keeps track of the unique asserts evaluated.
// Assertions may fire concurrently from parallel tests, so access goes
// through assertTrackerMutex.
var (
	assertTracker      emitTracker = make(emitTracker)
	assertTrackerMutex sync.Mutex
)

func (tracker emitTracker) getTrackerEntry(messageKey string) *trackerInfo {
	var trackerEntry *trackerInfo
	var ok bool

	if tracker == nil {
		return nil
	}

	assertTrackerMutex.Lock()
	defer assertTrackerMutex.Unlock()
	if trackerEntry, ok = tracker[messageKey]; !ok {
		trackerEntry = &trackerInfo{}
		tracker[messageKey] = trackerEntry
	}
	return trackerEntry
}

// emit forwards the assertion the first time its call site passes and the
// first time it fails; repeats are only counted.
func (ti *trackerInfo) emit(ai *assertInfo) {
	if ti == nil || ai == nil {
		return
	}

	assertTrackerMutex.Lock()
	defer assertTrackerMutex.Unlock()

	var err error

	if ai.Condition {
		if ti.PassCount == 0 {
			err = emitAssert(ai)
		}
		if err == nil {
			ti.PassCount++
		}
		return
	}
	if ti.FailCount == 0 {
		err = emitAssert(ai)
	}
	if err == nil {
		ti.FailCount++
	}
}

func emitAssert(ai *assertInfo) error {
	return internal.Json_data(wrappedAssertInfo{ai})
}
