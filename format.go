// format.go — fmt.Formatter implementations for the bizerror types.
//
// Behavior:
//
//   %s, %v   → concise string (Error()).
//   %q       → quoted concise string.
//   %+v      → verbose, structured multi-line format:
//                name=<variant> code=<code> msg="<message>"
//                context: <context>              (wrappers, when present)
//                at: <file>:<line> (<function>)  (wrappers)
//                cause: <recursively formatted with %+v>
//
// Notes:
//   - Core stays free of logging/HTTP/JSON policy; only fmt formatting.
//   - A wrapper and its inner error render as ONE verbose block: the
//     wrapper contributes context and call site, the inner contributes
//     classification, and the cause recursion continues at the inner
//     error's own cause. Without the collapse every wrapped error would
//     print its classification twice.
//   - Aggregates render each element's verbose block in insertion order.
package bizerror

import (
	"errors"
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// writeHeader writes the classification line shared by all verbose forms.
func writeHeader[C Code](w io.Writer, name string, code C, msg string) {
	_, _ = fmt.Fprintf(w, "name=%s code=%v msg=%q", name, code, msg)
}

// writeCause recurses into cause with %+v so nested details render.
func writeCause(w io.Writer, cause error) {
	if cause == nil {
		return
	}
	_, _ = io.WriteString(w, "\ncause: ")
	_, _ = fmt.Fprintf(w, "%+v", cause)
}

func (e *Classified[C]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			writeHeader(s, e.name, e.code, e.msg)
			writeCause(s, e.cause)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

func (w *Contextual[C]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			writeHeader(s, w.inner.Name(), w.inner.Code(), w.inner.Error())
			if w.context != "" {
				_, _ = io.WriteString(s, "\ncontext: "+w.context)
			}
			_, _ = io.WriteString(s, "\nat: "+w.loc.String())
			if w.loc.Function != "" {
				_, _ = fmt.Fprintf(s, " (%s)", w.loc.Function)
			}
			writeCause(s, errors.Unwrap(w.inner))
			return
		}
		formatConcise(s, w)
	case 's':
		formatConcise(s, w)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", w.Error())
	default:
		formatConcise(s, w)
	}
}

func (a *Errors[C]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && len(a.errs) > 0 {
			for i, w := range a.errs {
				if i > 0 {
					_, _ = io.WriteString(s, "\n")
				}
				_, _ = fmt.Fprintf(s, "%+v", w)
			}
			return
		}
		formatConcise(s, a)
	case 's':
		formatConcise(s, a)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", a.Error())
	default:
		formatConcise(s, a)
	}
}
