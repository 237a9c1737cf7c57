package assert

import (
	"path"
	"runtime"
	"strings"
)

// stackFrameOffset indicates how many frames to go up in the call stack to
// find the filename/location/line info. As this work is always done in
// newLocationInfo(), the offset is specified from the perspective of
// newLocationInfo.
type stackFrameOffset int

// Order is important here since iota is being used
const (
	offsetNewLocationInfo stackFrameOffset = iota
	offsetHere
	offsetAPICaller
	offsetAPICallersCaller
)

// locationInfo represents the attributes of an assertion call site known
// at the time the assertion was evaluated (or indexed by the generator).
type locationInfo struct {
	Classname string `json:"classname"`
	Funcname  string `json:"function"`
	Filename  string `json:"filename"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
}

// columnUnknown is used when the column associated with
// a locationInfo is not available
const columnUnknown = 0

// newLocationInfo creates a locationInfo directly from
// the current execution context
func newLocationInfo(nframes stackFrameOffset) *locationInfo {
	funcname := "*function*"
	classname := "*classname*"
	pc, filename, line, ok := runtime.Caller(int(nframes))
	if !ok {
		filename = "*filename*"
		line = 0
	} else {
		if thisFunc := runtime.FuncForPC(pc); thisFunc != nil {
			fullname := thisFunc.Name()
			funcname = path.Ext(fullname)
			classname, _ = strings.CutSuffix(fullname, funcname)
			funcname = funcname[1:]
		}
	}
	return &locationInfo{classname, funcname, filename, line, columnUnknown}
}
