// assign_test.go — verification of definition-time code assignment.
package bizerror

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

// userTable is the shared fixture taxonomy for the package tests: a uint32
// table with one explicit code interleaved between two autos.
var userTable = MustAssign[uint32](
	Config{AutoStart: 1000, AutoIncrement: 10},
	Auto("NotFound"),           // 1000
	Explicit("Conflict", 4090), // 4090, does not advance the sequence
	Auto("QuotaExceeded"),      // 1010
)

func TestAssign_DefaultConfigCountsFromZero(t *testing.T) {
	t.Parallel()

	tbl, err := Assign[uint32](Config{}, Auto("First"), Auto("Second"), Auto("Third"))
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	want := map[string]uint32{"First": 0, "Second": 1, "Third": 2}
	for name, wc := range want {
		got, ok := tbl.Code(name)
		if !ok || got != wc {
			t.Fatalf("code(%s): want=%d got=%d ok=%v", name, wc, got, ok)
		}
	}
}

func TestAssign_ExplicitDoesNotAdvanceSequence(t *testing.T) {
	t.Parallel()

	tbl, err := Assign[uint32](
		Config{AutoStart: 100, AutoIncrement: 10},
		Auto("Auto1"),
		Explicit("Pinned", 999),
		Auto("Auto2"),
	)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	for name, wc := range map[string]uint32{"Auto1": 100, "Pinned": 999, "Auto2": 110} {
		if got, _ := tbl.Code(name); got != wc {
			t.Fatalf("code(%s): want=%d got=%d", name, wc, got)
		}
	}
}

func TestAssign_StringCodesRenderDecimal(t *testing.T) {
	t.Parallel()

	tbl, err := Assign[string](Config{},
		Auto("AutoFirst"),            // "0"
		Explicit("Custom", "CUSTOM"), // verbatim
		Auto("AutoSecond"),           // "1"
	)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	for name, wc := range map[string]string{"AutoFirst": "0", "Custom": "CUSTOM", "AutoSecond": "1"} {
		if got, _ := tbl.Code(name); got != wc {
			t.Fatalf("code(%s): want=%q got=%q", name, wc, got)
		}
	}
}

func TestAssign_StringTableAcceptsIntegerLiterals(t *testing.T) {
	t.Parallel()

	tbl, err := Assign[string](Config{},
		Explicit("Legacy", 42),
		Explicit("Negative", -7),
		Auto("Fresh"),
	)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	for name, wc := range map[string]string{"Legacy": "42", "Negative": "-7", "Fresh": "0"} {
		if got, _ := tbl.Code(name); got != wc {
			t.Fatalf("code(%s): want=%q got=%q", name, wc, got)
		}
	}
}

func TestAssign_DuplicateCodesAllowed(t *testing.T) {
	t.Parallel()

	t.Run("explicit_with_explicit", func(t *testing.T) {
		tbl, err := Assign[uint32](Config{},
			Explicit("First500", 500),
			Explicit("Second500", 500),
			Auto("Zeroth"),
		)
		if err != nil {
			t.Fatalf("duplicate explicit codes must be accepted: %v", err)
		}
		a, _ := tbl.Code("First500")
		b, _ := tbl.Code("Second500")
		if a != 500 || b != 500 {
			t.Fatalf("both variants keep their value: got %d and %d", a, b)
		}
		if z, _ := tbl.Code("Zeroth"); z != 0 {
			t.Fatalf("auto sequence unaffected by duplicates: want=0 got=%d", z)
		}
	})

	t.Run("auto_colliding_with_explicit", func(t *testing.T) {
		tbl, err := Assign[uint32](Config{AutoStart: 500},
			Auto("AutoFive"),          // 500
			Explicit("AlsoFive", 500), // same value, legal
		)
		if err != nil {
			t.Fatalf("auto/explicit collision must be accepted: %v", err)
		}
		a, _ := tbl.Code("AutoFive")
		b, _ := tbl.Code("AlsoFive")
		if a != b {
			t.Fatalf("expected equal codes, got %d and %d", a, b)
		}
	})
}

func TestAssign_SignedDescendingSequence(t *testing.T) {
	t.Parallel()

	tbl, err := Assign[int32](Config{AutoStart: -100, AutoIncrement: -5},
		Auto("A"),
		Auto("B"),
		Explicit("C", -1),
		Auto("D"),
	)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	for name, wc := range map[string]int32{"A": -100, "B": -105, "C": -1, "D": -110} {
		if got, _ := tbl.Code(name); got != wc {
			t.Fatalf("code(%s): want=%d got=%d", name, wc, got)
		}
	}
}

func TestAssign_NamedCodeType(t *testing.T) {
	t.Parallel()

	type orderCode uint16
	tbl, err := Assign[orderCode](Config{AutoStart: 7}, Auto("A"), Explicit("B", 9))
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if a, _ := tbl.Code("A"); a != orderCode(7) {
		t.Fatalf("code(A): want=7 got=%d", a)
	}
	if b, _ := tbl.Code("B"); b != orderCode(9) {
		t.Fatalf("code(B): want=9 got=%d", b)
	}
}

func TestAssign_EmptyNameRejected(t *testing.T) {
	t.Parallel()

	_, err := Assign[uint32](Config{}, Auto(""))
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("want ErrEmptyName, got %v", err)
	}
}

func TestAssign_DuplicateNameRejected(t *testing.T) {
	t.Parallel()

	_, err := Assign[uint32](Config{}, Auto("Dup"), Explicit("Dup", 9))
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("want ErrDuplicateName, got %v", err)
	}
	if !strings.Contains(err.Error(), `"Dup"`) {
		t.Fatalf("error should name the offending variant: %v", err)
	}
}

func TestAssign_ForbidZeroRejectsExplicitZeroOnly(t *testing.T) {
	t.Parallel()

	t.Run("explicit_zero_rejected", func(t *testing.T) {
		_, err := Assign[uint32](Config{ForbidZero: true}, Explicit("Zero", 0))
		if !errors.Is(err, ErrForbiddenCode) {
			t.Fatalf("want ErrForbiddenCode, got %v", err)
		}
	})

	t.Run("auto_sequence_may_pass_through_zero", func(t *testing.T) {
		tbl, err := Assign[uint32](Config{ForbidZero: true}, Auto("First"))
		if err != nil {
			t.Fatalf("auto zero must be allowed: %v", err)
		}
		if c, _ := tbl.Code("First"); c != 0 {
			t.Fatalf("want auto code 0, got %d", c)
		}
	})

	t.Run("string_zero_forms_rejected", func(t *testing.T) {
		if _, err := Assign[string](Config{ForbidZero: true}, Explicit("Empty", "")); !errors.Is(err, ErrForbiddenCode) {
			t.Fatalf(`explicit "" should be forbidden: %v`, err)
		}
		if _, err := Assign[string](Config{ForbidZero: true}, Explicit("Zero", "0")); !errors.Is(err, ErrForbiddenCode) {
			t.Fatalf(`explicit "0" should be forbidden: %v`, err)
		}
	})
}

func TestAssign_ExplicitCodeMustFitCodeType(t *testing.T) {
	t.Parallel()

	if _, err := Assign[uint32](Config{}, Explicit("Neg", -1)); !errors.Is(err, ErrCodeNotRepresentable) {
		t.Fatalf("-1 into uint32: want ErrCodeNotRepresentable, got %v", err)
	}
	if _, err := Assign[uint8](Config{}, Explicit("Big", 256)); !errors.Is(err, ErrCodeNotRepresentable) {
		t.Fatalf("256 into uint8: want ErrCodeNotRepresentable, got %v", err)
	}
	if _, err := Assign[int64](Config{}, Explicit("Huge", uint64(math.MaxUint64))); !errors.Is(err, ErrCodeNotRepresentable) {
		t.Fatalf("MaxUint64 into int64: want ErrCodeNotRepresentable, got %v", err)
	}
	if _, err := Assign[int16](Config{}, Explicit("Wide", 70000)); !errors.Is(err, ErrCodeNotRepresentable) {
		t.Fatalf("70000 into int16: want ErrCodeNotRepresentable, got %v", err)
	}
	if _, err := Assign[uint32](Config{}, Explicit("Str", "nope")); !errors.Is(err, ErrCodeNotRepresentable) {
		t.Fatalf("string into uint32: want ErrCodeNotRepresentable, got %v", err)
	}
	if _, err := Assign[uint32](Config{}, Explicit("Bool", true)); !errors.Is(err, ErrCodeNotRepresentable) {
		t.Fatalf("bool into uint32: want ErrCodeNotRepresentable, got %v", err)
	}
	if _, err := Assign[string](Config{}, Explicit("Float", 1.5)); !errors.Is(err, ErrCodeNotRepresentable) {
		t.Fatalf("float into string: want ErrCodeNotRepresentable, got %v", err)
	}

	// Narrow kinds widen losslessly.
	tbl, err := Assign[int64](Config{}, Explicit("Small", uint8(7)))
	if err != nil {
		t.Fatalf("uint8 into int64 must coerce: %v", err)
	}
	if c, _ := tbl.Code("Small"); c != 7 {
		t.Fatalf("want=7 got=%d", c)
	}
}

func TestAssign_AutoSequenceOverflow(t *testing.T) {
	t.Parallel()

	t.Run("int64_arithmetic", func(t *testing.T) {
		_, err := Assign[int64](Config{AutoStart: math.MaxInt64, AutoIncrement: 1}, Auto("A"), Auto("B"))
		if !errors.Is(err, ErrAutoOverflow) {
			t.Fatalf("want ErrAutoOverflow, got %v", err)
		}
	})

	t.Run("narrow_code_type", func(t *testing.T) {
		_, err := Assign[uint8](Config{AutoStart: 255, AutoIncrement: 1}, Auto("A"), Auto("B"))
		if !errors.Is(err, ErrAutoOverflow) {
			t.Fatalf("want ErrAutoOverflow, got %v", err)
		}
	})

	t.Run("descending_below_signed_range", func(t *testing.T) {
		_, err := Assign[int8](Config{AutoStart: -128, AutoIncrement: -1}, Auto("A"), Auto("B"))
		if !errors.Is(err, ErrAutoOverflow) {
			t.Fatalf("want ErrAutoOverflow, got %v", err)
		}
	})
}

func TestMustAssign_PanicsOnDefinitionError(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected MustAssign to panic on duplicate names")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "duplicate variant name") {
			t.Fatalf("panic should carry the definition error; got %v", r)
		}
	}()
	MustAssign[uint32](Config{}, Auto("Dup"), Auto("Dup"))
}

func TestTable_NamesPreserveDeclarationOrder(t *testing.T) {
	t.Parallel()

	want := []string{"NotFound", "Conflict", "QuotaExceeded"}
	if got := userTable.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("declaration order lost.\nwant=%v\ngot =%v", want, got)
	}
}

func TestTable_NamesDefensiveCopy(t *testing.T) {
	t.Parallel()

	orig := userTable.Names()
	mut := userTable.Names()
	mut[0] = "Mutated"

	after := userTable.Names()
	if reflect.DeepEqual(after, mut) {
		t.Fatalf("Names() appears to expose internal slice; mutation leaked")
	}
	if !reflect.DeepEqual(after, orig) {
		t.Fatalf("Names() changed unexpectedly.\nwant=%v\ngot=%v", orig, after)
	}
}

func TestTable_CodesDefensiveCopy(t *testing.T) {
	t.Parallel()

	m := userTable.Codes()
	m["NotFound"] = 424242
	delete(m, "Conflict")

	if got, _ := userTable.Code("NotFound"); got != 1000 {
		t.Fatalf("mutating Codes() copy leaked into the table: got %d", got)
	}
	if !userTable.Has("Conflict") {
		t.Fatalf("deleting from Codes() copy leaked into the table")
	}
}

func TestTable_LookupAndLen(t *testing.T) {
	t.Parallel()

	if userTable.Len() != 3 {
		t.Fatalf("Len: want=3 got=%d", userTable.Len())
	}
	if c, ok := userTable.Code("QuotaExceeded"); !ok || c != 1010 {
		t.Fatalf("Code(QuotaExceeded): want=(1010,true) got=(%d,%v)", c, ok)
	}
	if c, ok := userTable.Code("Ghost"); ok || c != 0 {
		t.Fatalf("Code(Ghost): want=(0,false) got=(%d,%v)", c, ok)
	}
	if userTable.Has("Ghost") {
		t.Fatalf("Has(Ghost) should be false")
	}
}
