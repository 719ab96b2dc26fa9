// result.go — adapters that move (value, error) pairs into a taxonomy.
//
// Purpose
//   - Apply taxonomy conversion and contextual wrapping to ANY fallible
//     outcome, in one call at the boundary where the outcome is produced.
//   - Preserve perfect interop with the Go standard library: inputs are
//     plain (T, error) pairs, outputs unwrap into the original causes.
//   - Stay policy-free: no logging/HTTP/JSON opinions here.
//
// Conversion model
//   - Every helper takes a conv func(error) BizError[C]: the taxonomy's
//     total conversion. Taxonomies declare how they subsume foreign errors
//     by providing such a function (generated taxonomies emit one when a
//     variant carries a "from" marker). Totality is the function type's
//     contract — possession of a conv IS the proof the conversion exists,
//     so a missing conversion is a compile failure, never a runtime one.
//   - conv is only invoked on failure; the success path never allocates.
//
// Background
//   - Go's error traversal hinges on Unwrap forms: Unwrap() error and,
//     since Go 1.20, Unwrap() []error. Wrappers built here keep both forms
//     reachable so errors.Is/As observe full causal chains.
package bizerror

// NoContext is the context stored by WithContextIf when the condition is
// false. It is a stable, documented value — deliberately not the empty
// string — so callers may match on it to distinguish "context was not
// requested" from "context was attached empty".
const NoContext = "no context"

// WithContext converts a failed outcome into taxonomy C and wraps it with
// context, recording the caller's call site. On success (err == nil) the
// value passes through and the returned wrapper is nil.
//
//	cfg, err := loadConfig()
//	cfg, werr := bizerror.WithContext(cfg, err, AppFrom, "loading app config")
//	if werr != nil {
//		return nil, werr
//	}
func WithContext[T any, C Code](v T, err error, conv func(error) BizError[C], context string) (T, *Contextual[C]) {
	if err == nil {
		return v, nil
	}
	return v, newContextualAt[C](conv(err), context, 1)
}

// MapBiz converts a failed outcome into taxonomy C without wrapping — the
// cheap path for the common case where no diagnostic context is needed.
// On success the returned classifier is nil.
func MapBiz[T any, C Code](v T, err error, conv func(error) BizError[C]) (T, BizError[C]) {
	if err == nil {
		var none BizError[C]
		return v, none
	}
	return v, conv(err)
}

// WithContextIf behaves like WithContext when condition is true. When
// condition is false the error is still converted and wrapped, but the
// stored context is the NoContext sentinel, never the given string.
func WithContextIf[T any, C Code](v T, err error, conv func(error) BizError[C], condition bool, context string) (T, *Contextual[C]) {
	if err == nil {
		return v, nil
	}
	if !condition {
		context = NoContext
	}
	return v, newContextualAt[C](conv(err), context, 1)
}

// AndThenBiz chains a dependent computation onto a fallible outcome. On
// success it invokes f; on failure it converts the original error into
// taxonomy C directly, bypassing f.
func AndThenBiz[T, U any, C Code](v T, err error, conv func(error) BizError[C], f func(T) (U, BizError[C])) (U, BizError[C]) {
	if err != nil {
		var zero U
		return zero, conv(err)
	}
	return f(v)
}

// WrapBiz wraps an already-classified error with context, recording the
// caller's call site. Use it when the error is born in the right taxonomy
// and only the narrative is missing. e must be non-nil.
func WrapBiz[C Code](e BizError[C], context string) *Contextual[C] {
	return newContextualAt[C](e, context, 1)
}
