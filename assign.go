// assign.go — code assignment for taxonomy definitions.
//
// Intent:
//   - Turn an ordered list of variant declarations into a name -> code table.
//   - Auto-number the variants that do not declare a code; keep declared
//     codes verbatim (after coercion into the taxonomy's code type).
//   - Catch definition mistakes (empty or duplicate names, unrepresentable
//     codes, forbidden values, auto-sequence overflow) when the table is
//     built, not when an error is first constructed.
//
// Conventions (documented, not enforced here):
//   - One code type per taxonomy. Mixed-width declarations coerce into the
//     table's type or fail; they never silently truncate.
//   - Duplicate codes across variants are permitted. Several variants may
//     deliberately share one wire code while keeping distinct names.
package bizerror

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Definition-time failures. Assign wraps each with the offending variant
// name, so errors.Is still matches the sentinel.
var (
	// ErrEmptyName reports a variant declared with an empty name.
	ErrEmptyName = errors.New("empty variant name")

	// ErrDuplicateName reports two variants declared under one name.
	// Codes may repeat; names may not.
	ErrDuplicateName = errors.New("duplicate variant name")

	// ErrForbiddenCode reports an explicit code whose value is reserved.
	// Only explicit codes are checked; the auto sequence may pass through
	// zero legitimately.
	ErrForbiddenCode = errors.New("forbidden explicit code value")

	// ErrCodeNotRepresentable reports an explicit code that does not fit
	// the taxonomy's code type (wrong kind, overflow, or sign mismatch).
	ErrCodeNotRepresentable = errors.New("code not representable in code type")

	// ErrAutoOverflow reports an auto-assigned value that left the range
	// of int64 or of the taxonomy's code type.
	ErrAutoOverflow = errors.New("auto code sequence overflow")
)

// Config controls how Assign numbers the variants of one taxonomy.
//
// The zero value is usable: the auto sequence starts at 0 and advances by 1,
// and no explicit value is forbidden.
type Config struct {
	// AutoStart is the value assigned to the first auto variant.
	AutoStart int64

	// AutoIncrement is the distance between consecutive auto variants.
	// Zero is normalized to 1. Negative increments produce a descending
	// sequence.
	AutoIncrement int64

	// ForbidZero rejects explicit declarations whose coerced value is the
	// zero code (numeric 0, or "" / "0" for string code types). Tables
	// that reserve zero for "no error" set this to make the reservation a
	// definition-time failure instead of a convention.
	ForbidZero bool
}

// Decl is one variant declaration: a name, and either an explicit code or
// a slot in the auto sequence. Build values with Auto and Explicit.
type Decl struct {
	name string
	code any // nil means auto-assigned
}

// Auto declares a variant whose code comes from the auto sequence.
func Auto(name string) Decl {
	return Decl{name: name}
}

// Explicit declares a variant with a fixed code. The value may be any
// integer kind or a string, as long as it coerces losslessly into the
// taxonomy's code type; int literals work for a uint32 table, and string
// tables accept integers (rendered in decimal) as well as strings.
func Explicit(name string, code any) Decl {
	return Decl{name: name, code: code}
}

// Table is the immutable result of assigning codes to one taxonomy.
// It maps variant names to codes and remembers declaration order.
type Table[C Code] struct {
	names []string
	codes map[string]C
}

// Assign builds a code table from declarations, in declaration order.
//
// Auto variants receive AutoStart + k*AutoIncrement, where k counts only
// the auto variants before them; explicit declarations do not advance the
// sequence. Explicit values are kept verbatim after coercion into C.
func Assign[C Code](cfg Config, decls ...Decl) (*Table[C], error) {
	inc := cfg.AutoIncrement
	if inc == 0 {
		inc = 1
	}

	t := &Table[C]{
		names: make([]string, 0, len(decls)),
		codes: make(map[string]C, len(decls)),
	}
	auto := 0
	for _, d := range decls {
		if d.name == "" {
			return nil, fmt.Errorf("bizerror: assign: %w", ErrEmptyName)
		}
		if _, dup := t.codes[d.name]; dup {
			return nil, fmt.Errorf("bizerror: assign: variant %q: %w", d.name, ErrDuplicateName)
		}

		var (
			c   C
			err error
		)
		if d.code == nil {
			var raw int64
			raw, err = autoValue(cfg.AutoStart, inc, auto)
			auto++
			if err == nil {
				c, err = coerceCode[C](raw)
				if err != nil {
					err = fmt.Errorf("%w: %v", ErrAutoOverflow, err)
				}
			}
		} else {
			c, err = coerceCode[C](d.code)
			if err == nil && cfg.ForbidZero && isZeroCode(c) {
				err = fmt.Errorf("%w: %v", ErrForbiddenCode, c)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("bizerror: assign: variant %q: %w", d.name, err)
		}

		t.names = append(t.names, d.name)
		t.codes[d.name] = c
	}
	return t, nil
}

// MustAssign is Assign that panics on definition errors. Intended for
// package-level var initialization, where a bad table is a programming
// error that should stop the process.
func MustAssign[C Code](cfg Config, decls ...Decl) *Table[C] {
	t, err := Assign[C](cfg, decls...)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// Names returns a defensive copy of the variant names in declaration order.
func (t *Table[C]) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Codes returns a defensive copy of the name -> code mapping.
func (t *Table[C]) Codes() map[string]C {
	out := make(map[string]C, len(t.codes))
	for k, v := range t.codes {
		out[k] = v
	}
	return out
}

// Code returns the code assigned to name, and whether name was declared.
func (t *Table[C]) Code(name string) (C, bool) {
	c, ok := t.codes[name]
	return c, ok
}

// Has reports whether name was declared in this table.
func (t *Table[C]) Has(name string) bool {
	_, ok := t.codes[name]
	return ok
}

// Len returns the number of declared variants.
func (t *Table[C]) Len() int {
	return len(t.names)
}

// autoValue computes start + inc*k with overflow checks on both the
// multiplication and the addition. inc is already normalized to non-zero.
func autoValue(start, inc int64, k int) (int64, error) {
	step := inc * int64(k)
	if k != 0 && step/int64(k) != inc {
		return 0, fmt.Errorf("%w: step %d*%d exceeds int64", ErrAutoOverflow, inc, k)
	}
	v := start + step
	if (step > 0 && v < start) || (step < 0 && v > start) {
		return 0, fmt.Errorf("%w: %d+%d exceeds int64", ErrAutoOverflow, start, step)
	}
	return v, nil
}

// coerceCode converts a declared value into the code type C without loss.
//
// String code types accept strings directly and integers in decimal form.
// Integer code types accept any integer kind whose value fits C exactly;
// a plain Go conversion would wrap (for example -1 -> uint32), and a
// round-trip check would miss wrap-arounds that happen to land back on
// the source value, so range checks are explicit.
func coerceCode[C Code](v any) (C, error) {
	var zero C
	ct := reflect.TypeOf(zero)
	rv := reflect.ValueOf(v)

	if ct.Kind() == reflect.String {
		switch {
		case rv.Kind() == reflect.String:
			return rv.Convert(ct).Interface().(C), nil
		case rv.CanInt():
			s := strconv.FormatInt(rv.Int(), 10)
			return reflect.ValueOf(s).Convert(ct).Interface().(C), nil
		case rv.CanUint():
			s := strconv.FormatUint(rv.Uint(), 10)
			return reflect.ValueOf(s).Convert(ct).Interface().(C), nil
		default:
			return zero, fmt.Errorf("%w: %T into %v", ErrCodeNotRepresentable, v, ct)
		}
	}

	bits := ct.Bits()
	signed := isSignedKind(ct.Kind())
	switch {
	case rv.CanInt():
		i := rv.Int()
		if signed {
			if !intFits(i, bits) {
				return zero, fmt.Errorf("%w: %d into %v", ErrCodeNotRepresentable, i, ct)
			}
		} else {
			if i < 0 || !uintFits(uint64(i), bits) {
				return zero, fmt.Errorf("%w: %d into %v", ErrCodeNotRepresentable, i, ct)
			}
		}
	case rv.CanUint():
		u := rv.Uint()
		if signed {
			if u > math.MaxInt64 || !intFits(int64(u), bits) {
				return zero, fmt.Errorf("%w: %d into %v", ErrCodeNotRepresentable, u, ct)
			}
		} else {
			if !uintFits(u, bits) {
				return zero, fmt.Errorf("%w: %d into %v", ErrCodeNotRepresentable, u, ct)
			}
		}
	default:
		return zero, fmt.Errorf("%w: %T into %v", ErrCodeNotRepresentable, v, ct)
	}
	return rv.Convert(ct).Interface().(C), nil
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// intFits reports whether v fits a signed integer of the given width.
func intFits(v int64, bits int) bool {
	if bits == 64 {
		return true
	}
	min := -(int64(1) << (bits - 1))
	max := int64(1)<<(bits-1) - 1
	return v >= min && v <= max
}

// uintFits reports whether v fits an unsigned integer of the given width.
func uintFits(v uint64, bits int) bool {
	if bits == 64 {
		return true
	}
	return v <= uint64(1)<<bits-1
}

// isZeroCode reports whether c is the reserved zero value: numeric 0, or
// the empty string or "0" for string code types.
func isZeroCode[C Code](c C) bool {
	rv := reflect.ValueOf(c)
	if rv.Kind() == reflect.String {
		s := rv.String()
		return s == "" || s == "0"
	}
	if rv.CanInt() {
		return rv.Int() == 0
	}
	return rv.Uint() == 0
}
