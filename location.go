// location.go — call-site capture for contextual wrappers.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - One frame, not a trace: wrappers record where context was attached;
//     full stack capture is out of scope for this package.
//   - Pragmatic performance: a single fixed-size PC buffer, no allocations
//     beyond the resolved strings the runtime hands back.
package bizerror

import (
	"fmt"
	"runtime"
)

// Location is a single resolved call site: where a contextual wrapper was
// created or last amended.
type Location struct {
	File     string // absolute file path (as provided by runtime)
	Line     int    // line number
	Function string // fully-qualified function name (pkg.Func or method)
}

// String renders the location as "file:line". The zero Location renders as
// "unknown".
func (l Location) String() string {
	if l.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// captureLocation resolves the call site 'skip' frames above the caller of
// captureLocation. skip 0 records the caller itself.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureLocation
//
// We resolve through CallersFrames rather than FuncForPC so an inlined call
// still reports the user-visible site.
func captureLocation(skip int) Location {
	var pc [1]uintptr
	n := runtime.Callers(skip+2, pc[:])
	if n == 0 {
		return Location{}
	}
	fr, _ := runtime.CallersFrames(pc[:n]).Next()
	return Location{File: fr.File, Line: fr.Line, Function: fr.Function}
}
