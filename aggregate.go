// aggregate.go — ordered multi-error collection for batch work.
//
// Scope:
//   • Errors[C] gathers contextual wrappers when a batch must run to
//     completion instead of short-circuiting on the first failure
//     (validation passes, bulk imports, fan-out calls).
//   • The collection is itself a classifier: Code/Name/Error let an
//     aggregate travel anywhere a single business error can.
//
// Design:
//   • Insertion order is preserved and is the reporting order.
//   • Elements are always *Contextual[C]: bare classifiers are wrapped on
//     the way in (PushSimple), so every element carries a call site.
//   • Unwrap() []error exposes every element to errors.Is/As. The step
//     rule in chain.go follows the FIRST element, which is also the
//     element whose code the aggregate reports as its own.
//
// Notes:
//   • Code() on an empty aggregate panics. "Which classification does no
//     failure have" is a programming error, not a recoverable state;
//     check Empty() first.
package bizerror

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Errors is an ordered collection of contextual wrappers sharing one code
// type. The zero value is an empty, ready-to-use aggregate.
//
// An aggregate only grows. There is no removal; start a fresh one instead.
type Errors[C Code] struct {
	errs []*Contextual[C]
}

// Compile-time conformance checks.
var (
	_ BizError[uint32]              = (*Errors[uint32])(nil)
	_ interface{ Unwrap() []error } = (*Errors[uint32])(nil)
)

// NewErrors returns an empty aggregate.
func NewErrors[C Code]() *Errors[C] { return &Errors[C]{} }

// ErrorsWithCapacity returns an empty aggregate with room for n elements
// before reallocating. Use it when the batch size is known up front.
func ErrorsWithCapacity[C Code](n int) *Errors[C] {
	return &Errors[C]{errs: make([]*Contextual[C], 0, n)}
}

// Push appends an already-wrapped error. A nil wrapper is ignored.
func (a *Errors[C]) Push(w *Contextual[C]) {
	if w == nil {
		return
	}
	a.errs = append(a.errs, w)
}

// PushSimple wraps a bare classified error with empty context and appends
// it. The recorded call site is PushSimple's caller. A nil error is
// ignored.
func (a *Errors[C]) PushSimple(e BizError[C]) {
	if e == nil {
		return
	}
	a.errs = append(a.errs, newContextualAt(e, "", 1))
}

// PushWithContext wraps a bare classified error with the given context and
// appends it. The recorded call site is PushWithContext's caller. A nil
// error is ignored.
func (a *Errors[C]) PushWithContext(e BizError[C], context string) {
	if e == nil {
		return
	}
	a.errs = append(a.errs, newContextualAt(e, context, 1))
}

// Len reports the number of collected errors.
func (a *Errors[C]) Len() int { return len(a.errs) }

// Empty reports whether the aggregate holds no errors.
func (a *Errors[C]) Empty() bool { return len(a.errs) == 0 }

// First returns the earliest collected wrapper, or nil when empty.
func (a *Errors[C]) First() *Contextual[C] {
	if len(a.errs) == 0 {
		return nil
	}
	return a.errs[0]
}

// Last returns the most recently collected wrapper, or nil when empty.
func (a *Errors[C]) Last() *Contextual[C] {
	if len(a.errs) == 0 {
		return nil
	}
	return a.errs[len(a.errs)-1]
}

// Slice returns the collected wrappers in insertion order. The slice is a
// copy; mutating it does not affect the aggregate.
func (a *Errors[C]) Slice() []*Contextual[C] { return slices.Clone(a.errs) }

// All returns an iterator over (index, wrapper) pairs in insertion order.
func (a *Errors[C]) All() iter.Seq2[int, *Contextual[C]] {
	return func(yield func(int, *Contextual[C]) bool) {
		for i, w := range a.errs {
			if !yield(i, w) {
				return
			}
		}
	}
}

// Filter returns a lazy iterator over the wrappers satisfying pred, in
// insertion order. The aggregate must not be grown while iterating.
func (a *Errors[C]) Filter(pred func(*Contextual[C]) bool) iter.Seq[*Contextual[C]] {
	return func(yield func(*Contextual[C]) bool) {
		for _, w := range a.errs {
			if pred(w) && !yield(w) {
				return
			}
		}
	}
}

// ContainsCode reports whether any collected error classifies under code.
// Only the elements themselves are consulted, not their deeper causes; use
// ChainContainsCode on an element for deep queries.
func (a *Errors[C]) ContainsCode(code C) bool {
	for _, w := range a.errs {
		if w.Code() == code {
			return true
		}
	}
	return false
}

// Codes returns the distinct codes present in the aggregate. The order is
// not meaningful; codes are sorted by their textual rendering purely so
// the output is deterministic.
func (a *Errors[C]) Codes() []C {
	codes := make([]C, 0, len(a.errs))
	for _, w := range a.errs {
		codes = append(codes, w.Code())
	}
	slices.SortStableFunc(codes, func(x, y C) int {
		return strings.Compare(fmt.Sprint(x), fmt.Sprint(y))
	})
	return slices.Compact(codes)
}

// Error renders the aggregate:
//
//	empty    → "No errors"
//	single   → that element's message
//	multiple → a numbered report, one element per line:
//
//	    Multiple errors occurred (2 total):
//	      1. first message
//	      2. second message
func (a *Errors[C]) Error() string {
	switch len(a.errs) {
	case 0:
		return "No errors"
	case 1:
		return a.errs[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Multiple errors occurred (%d total):\n", len(a.errs))
	for i, w := range a.errs {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, w.Error())
	}
	return sb.String()
}

// Code reports the FIRST element's code. It panics on an empty aggregate:
// asking which classification no failure has is a programming error.
func (a *Errors[C]) Code() C {
	if len(a.errs) == 0 {
		panic("bizerror: Code on empty Errors")
	}
	return a.errs[0].Code()
}

// Name identifies the aggregate type, not any element.
func (a *Errors[C]) Name() string { return "Errors" }

// Unwrap exposes every element to stdlib traversal. errors.Is and
// errors.As walk all of them; the forward chain helpers follow only the
// first.
func (a *Errors[C]) Unwrap() []error {
	out := make([]error, len(a.errs))
	for i, w := range a.errs {
		out[i] = w
	}
	return out
}

// Collect drains a sequence of (value, wrapper) outcomes, partitioning it
// into the successful values and an aggregate of the failures. A nil
// wrapper marks success. When every outcome succeeds the aggregate is nil,
// distinguishing "no failures" from an aggregate that happens to be empty.
func Collect[T any, C Code](seq iter.Seq2[T, *Contextual[C]]) ([]T, *Errors[C]) {
	var (
		values []T
		agg    *Errors[C]
	)
	for v, w := range seq {
		if w != nil {
			if agg == nil {
				agg = NewErrors[C]()
			}
			agg.Push(w)
			continue
		}
		values = append(values, v)
	}
	return values, agg
}

// CollectErrors drains a sequence of (value, wrapper) outcomes, keeping
// only the failures. It returns nil when every outcome succeeds.
func CollectErrors[T any, C Code](seq iter.Seq2[T, *Contextual[C]]) *Errors[C] {
	var agg *Errors[C]
	for _, w := range seq {
		if w == nil {
			continue
		}
		if agg == nil {
			agg = NewErrors[C]()
		}
		agg.Push(w)
	}
	return agg
}
