// doc.go — package documentation for bizerror
//
// Package bizerror provides a small, policy-free core for structured
// business errors: stable codes assigned from ordered declarations,
// contextual wrapping with call-site capture, forward chain navigation,
// and multi-error aggregation. It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # Declaring A Taxonomy
//
// A taxonomy is an ordered list of variant declarations plus a code type.
// Assign (or MustAssign, for package-level tables) turns the list into an
// immutable name → code table:
//
//	var Users = MustAssign[uint32](
//		Config{AutoStart: 1000, AutoIncrement: 10},
//		Auto("NotFound"),          // 1000
//		Explicit("Conflict", 4090), // 4090, does not advance the sequence
//		Auto("QuotaExceeded"),     // 1010
//	)
//
// Auto-numbered variants receive start + k×increment where k counts only
// the auto variants before them; explicit codes are kept verbatim after a
// lossless coercion into the table's code type. Duplicate CODES are legal
// (several variants may share a wire code); duplicate NAMES are not.
// String-typed tables render auto values in decimal ("0", "1", …).
//
// Definition mistakes (empty or duplicate names, unrepresentable codes,
// forbidden zero, sequence overflow) fail when the table is built, not
// when an error is first constructed.
//
// # Classified Errors
//
// Table.New mints an error for a declared variant; Table.Wrap attaches a
// cause. The message renders from a format string: empty format falls back
// to the variant name, a format with no args is used verbatim.
//
//	err := Users.New("NotFound", "user %d missing", 42)
//	err.Code() // 1000
//	err.Name() // "NotFound"
//
// Any type with Code() C and Name() string alongside error satisfies
// BizError[C]; the navigation helpers discover classifiers structurally
// and never depend on this package's concrete types.
//
// # Adding Context
//
// NewContextual decorates a classified error with an operation description
// and the call site that attached it. AddContext amends the narrative,
// merging contexts as "old -> new" and recording a fresh call site:
//
//	w := NewContextual(err, "loading profile")
//	w = w.AddContext("rendering response")
//	w.Context() // "loading profile -> rendering response"
//
// Wrappers delegate Code and Name to the inner error — wrapping adds
// narrative, never reclassifies. IntoInner discards the narrative and
// returns the bare business error. All builders return new values; a
// wrapper already shared with another goroutine never mutates.
//
// # Result Adapters
//
// The result adapters apply taxonomy conversion and wrapping to a plain
// (value, error) pair in one call:
//
//	cfg, err := loadConfig()
//	cfg, werr := WithContext(cfg, err, AppFrom, "loading app config")
//	if werr != nil {
//		return nil, werr
//	}
//
//   - WithContext: convert + wrap with context.
//   - MapBiz: convert only — the cheap path when no narrative is needed.
//   - WithContextIf: convert + wrap; a false condition stores the
//     NoContext sentinel ("no context"), never the empty string.
//   - AndThenBiz: chain a dependent computation, converting on failure.
//   - WrapBiz: wrap an error already in the right taxonomy.
//
// Each adapter takes the taxonomy's total conversion func(error)
// BizError[C]; holding such a function is the compile-time proof the
// conversion exists.
//
// # Navigating Chains
//
// The chain helpers walk strictly forward (error → cause → cause's cause)
// and treat a multi-child node as contributing its first child:
//
//   - ChainDepth(err): node count including err itself.
//   - RootCause / RootCauseMessage: the terminal node / its message.
//   - ChainMessages: every node's message, err first.
//   - FindRoot[T]: first node of type T, starting at the first CAUSE —
//     the value in hand never matches itself.
//   - HasType[T]: FindRoot succeeds.
//   - ChainContainsCode / CodeOf / NameOf: classification queries that do
//     start at err itself, since wrappers delegate classification.
//
// # Aggregating Failures
//
// Errors[C] collects contextual wrappers when a batch must run to
// completion instead of stopping at the first failure:
//
//	agg := NewErrors[uint32]()
//	agg.PushSimple(Users.New("NotFound", ""))
//	agg.PushWithContext(Users.New("Conflict", ""), "row 7")
//
// Collect partitions an iterator of (value, wrapper) outcomes into the
// successes and an aggregate of the failures; when nothing failed the
// aggregate is nil, which keeps "no failures" distinct from "an empty
// aggregate". An aggregate is itself a classifier reporting its FIRST
// element's code — asking an EMPTY aggregate for its code panics, so check
// Empty() first.
//
// # Formatting
//
// The concrete types implement fmt.Formatter for rich diagnostics:
//   - %v, %s → concise, single-line Error()
//   - %+v    → verbose, multi-line (name, code, msg, context, call site, cause)
//   - %q     → quoted Error()
//
// errors.Is/As traverse via Unwrap() (including the aggregate's
// multi-error unwrap).
//
// # Performance Notes
//
//   - Wrapping captures ONE resolved call site, not a stack trace.
//   - All amendment methods return new values (immutability); nothing in
//     the package locks.
//   - Success paths in the result adapters never allocate; conversion
//     runs only on failure.
//   - Verbose %+v work is deferred until a formatter asks for it.
//
// See example_test.go for runnable demonstrations.
package bizerror
