// context.go — the contextual wrapper: classified error + context + call site.
//
// Design:
//   - A wrapper holds exactly one inner BizError, a human-readable context
//     string, and the Location where the context was attached.
//   - Builders are non-mutating: AddContext returns a NEW wrapper and never
//     alters the receiver, so shared error values stay safe without locks.
//   - Classification delegates: Code and Name always report the inner
//     error's values. Wrapping adds narrative, never reclassifies.
//
// Amendment model:
//   - AddContext merges contexts as "old -> new" and records a fresh call
//     site; the previous Location is discarded. One wrapper, one frame.
package bizerror

// Contextual decorates a classified error with an operation description and
// the call site that attached it. It implements BizError[C] by delegation
// and Unwrap() error for stdlib traversal.
type Contextual[C Code] struct {
	inner   BizError[C]
	context string
	loc     Location
}

// Compile-time conformance checks.
var (
	_ BizError[uint32]            = (*Contextual[uint32])(nil)
	_ interface{ Unwrap() error } = (*Contextual[uint32])(nil)
)

// NewContextual wraps inner with a context string, recording the caller's
// call site. inner must be non-nil. The context may be empty.
func NewContextual[C Code](inner BizError[C], context string) *Contextual[C] {
	return newContextualAt[C](inner, context, 1)
}

// newContextualAt is NewContextual with explicit frame skipping, so helper
// layers (result adapters, aggregates) can charge the location to their own
// caller. skip 0 records the caller of newContextualAt.
func newContextualAt[C Code](inner BizError[C], context string, skip int) *Contextual[C] {
	return &Contextual[C]{
		inner:   inner,
		context: context,
		loc:     captureLocation(skip + 1),
	}
}

// AddContext returns a NEW wrapper whose context is "old -> new" and whose
// Location is the caller of AddContext. The receiver is not modified. The
// merge is unconditional: an empty prior context still contributes its
// side of the arrow, so amendment history stays visible.
func (w *Contextual[C]) AddContext(context string) *Contextual[C] {
	return &Contextual[C]{
		inner:   w.inner,
		context: w.context + " -> " + context,
		loc:     captureLocation(1),
	}
}

// Code reports the inner error's classification code.
func (w *Contextual[C]) Code() C { return w.inner.Code() }

// Name reports the inner error's variant name.
func (w *Contextual[C]) Name() string { return w.inner.Name() }

// Context returns the context string attached to this wrapper.
func (w *Contextual[C]) Context() string { return w.context }

// Location returns the call site recorded when this wrapper was created or
// last amended via AddContext.
func (w *Contextual[C]) Location() Location { return w.loc }

// Inner returns the wrapped classified error.
func (w *Contextual[C]) Inner() BizError[C] { return w.inner }

// IntoInner returns the wrapped error, discarding context and location.
// This is the deliberate "back to the business error" escape hatch for
// call sites that no longer need the narrative.
func (w *Contextual[C]) IntoInner() BizError[C] { return w.inner }

// Error renders the inner message, then the context on its own line:
//
//	inner message
//	Context: fetching profile -> building response
//
// The context line is always present, even when the context is empty.
func (w *Contextual[C]) Error() string {
	return w.inner.Error() + "\nContext: " + w.context
}

// Unwrap returns the inner error. The cause of a contextual wrapper is
// always the error it decorates, never a sibling wrapper.
func (w *Contextual[C]) Unwrap() error { return w.inner }
