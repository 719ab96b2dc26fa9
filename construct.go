// construct.go — concrete classified errors and table-backed constructors.
//
// Scope (tiny core):
//   - Provide one concrete BizError implementation: Classified[C].
//   - Offer table-backed constructors (Table.New / Table.Wrap) that look up
//     the code by variant name, and standalone constructors for callers
//     that carry codes directly.
//   - Keep policy out (no logging/HTTP/JSON/retry policy here).
//
// Interop:
//   - errors.Is/As work via Unwrap chains; Classified exposes its cause
//     through Unwrap() error.
//
// Message semantics:
//   - An empty format renders the variant name, so a bare variant is still
//     presentable. With no args the format is used verbatim, mirroring the
//     errors.New / fmt.Errorf split.
//   - The cause does not leak into Error(); chains and verbose formatting
//     surface causes explicitly.
package bizerror

import "fmt"

// Classified is the concrete classified error: a code, the variant name it
// was minted under, a rendered message, and an optional cause.
type Classified[C Code] struct {
	code  C
	name  string
	msg   string
	cause error
}

// Compile-time conformance checks.
var (
	_ BizError[uint32]            = (*Classified[uint32])(nil)
	_ interface{ Unwrap() error } = (*Classified[uint32])(nil)
)

// NewClassified builds a classified error from an explicit code and name.
// format/args render the message; an empty format falls back to name.
func NewClassified[C Code](code C, name, format string, args ...any) *Classified[C] {
	return &Classified[C]{code: code, name: name, msg: renderMsg(name, format, args)}
}

// WrapClassified is NewClassified with a cause attached. The cause is
// reachable through Unwrap and the chain helpers; it is not concatenated
// into the message.
func WrapClassified[C Code](code C, name string, cause error, format string, args ...any) *Classified[C] {
	return &Classified[C]{code: code, name: name, msg: renderMsg(name, format, args), cause: cause}
}

// New mints a classified error for a declared variant, rendering the
// message from format/args. Referencing an undeclared variant is a
// programming error and panics.
func (t *Table[C]) New(name, format string, args ...any) *Classified[C] {
	return &Classified[C]{code: t.mustCode(name), name: name, msg: renderMsg(name, format, args)}
}

// Wrap mints a classified error for a declared variant with cause attached.
// Referencing an undeclared variant is a programming error and panics.
func (t *Table[C]) Wrap(name string, cause error, format string, args ...any) *Classified[C] {
	return &Classified[C]{code: t.mustCode(name), name: name, msg: renderMsg(name, format, args), cause: cause}
}

func (t *Table[C]) mustCode(name string) C {
	c, ok := t.codes[name]
	if !ok {
		panic(fmt.Sprintf("bizerror: variant %q not declared in table", name))
	}
	return c
}

func renderMsg(name, format string, args []any) string {
	switch {
	case format == "":
		return name
	case len(args) == 0:
		return format
	default:
		return fmt.Sprintf(format, args...)
	}
}

// Error returns the rendered message.
func (e *Classified[C]) Error() string { return e.msg }

// Code reports the classification code assigned at construction.
func (e *Classified[C]) Code() C { return e.code }

// Name reports the variant name this error was minted under.
func (e *Classified[C]) Name() string { return e.name }

// Unwrap returns the wrapped cause, or nil when this error is a root.
func (e *Classified[C]) Unwrap() error { return e.cause }
