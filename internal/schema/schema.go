// schema.go — taxonomy definition files for the bizerrgen generator.
//
// Scope:
//   - Load a declarative taxonomy description from YAML or TOML, selected
//     by file extension.
//   - Validate everything that can be decided without resolving codes:
//     identifier shapes, duplicate names, field/verb arity, from-variant
//     rules. Code resolution itself (ranges, forbidden zero reached via
//     the auto sequence, overflow) happens in emit, which builds the real
//     code table.
//
// Notes:
//   - Every validation failure carries its file coordinates ("taxonomy X,
//     variant Y") and wraps a package sentinel, so callers can match with
//     errors.Is while humans read the position.
package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Definition-time failures.
var (
	// ErrUnknownFormat reports a schema path whose extension is neither
	// YAML nor TOML. The generator never guesses a format.
	ErrUnknownFormat = errors.New("unrecognized schema file extension")

	// ErrBadPackage reports a missing or non-identifier package name.
	ErrBadPackage = errors.New("missing or invalid package name")

	// ErrNoTaxonomies reports a schema without a single taxonomy.
	ErrNoTaxonomies = errors.New("schema declares no taxonomies")

	// ErrUnknownCodeType reports a code_type outside the supported set.
	ErrUnknownCodeType = errors.New("unknown code_type")

	// ErrNoVariants reports a taxonomy without a single variant.
	ErrNoVariants = errors.New("taxonomy declares no variants")

	// ErrDuplicateName reports a taxonomy or variant name used twice.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrBadName reports a name that is not a valid Go identifier seed.
	ErrBadName = errors.New("invalid name")

	// ErrBadCodeLiteral reports an explicit code of an unusable kind
	// (only integers and strings can be coerced into a code type).
	ErrBadCodeLiteral = errors.New("invalid code literal")

	// ErrForbiddenZero reports an explicit zero code in a taxonomy that
	// forbids it.
	ErrForbiddenZero = errors.New("explicit zero code forbidden")

	// ErrArityMismatch reports a message template consuming a number of
	// fmt operands different from the variant's field count.
	ErrArityMismatch = errors.New("message verbs do not match fields")

	// ErrBadField reports a field with a missing name or type, or a name
	// reused within one variant.
	ErrBadField = errors.New("invalid field")

	// ErrBadFrom reports a from variant that breaks the catch-all rules:
	// it must carry no fields, at most one message verb, and a taxonomy
	// may declare at most one.
	ErrBadFrom = errors.New("invalid from variant")
)

// codeTypes is the closed set of code types a taxonomy may pick.
var codeTypes = map[string]bool{
	"uint8": true, "uint16": true, "uint32": true, "uint64": true, "uint": true,
	"int8": true, "int16": true, "int32": true, "int64": true, "int": true,
	"string": true,
}

// DefaultCodeType is assumed when a taxonomy omits code_type.
const DefaultCodeType = "uint32"

// File is one parsed schema file: a target package plus its taxonomies.
type File struct {
	Package    string     `yaml:"package" toml:"package"`
	Taxonomies []Taxonomy `yaml:"taxonomies" toml:"taxonomies"`
}

// Taxonomy describes one generated error type and its code assignment.
type Taxonomy struct {
	Name          string    `yaml:"name" toml:"name"`
	CodeType      string    `yaml:"code_type" toml:"code_type"`
	AutoStart     int64     `yaml:"auto_start" toml:"auto_start"`
	AutoIncrement int64     `yaml:"auto_increment" toml:"auto_increment"`
	ForbidZero    bool      `yaml:"forbid_zero" toml:"forbid_zero"`
	Variants      []Variant `yaml:"variants" toml:"variants"`
}

// Variant describes one error variant. Code nil means auto-assigned.
// Message uses fmt verbs, one per field, in field order. From marks the
// taxonomy's catch-all conversion target for foreign errors.
type Variant struct {
	Name    string  `yaml:"name" toml:"name"`
	Code    any     `yaml:"code" toml:"code"`
	Message string  `yaml:"message" toml:"message"`
	Fields  []Field `yaml:"fields" toml:"fields"`
	From    bool    `yaml:"from" toml:"from"`
}

// Field is one constructor parameter: a name and a Go type expression.
type Field struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
}

// FromVariant returns the taxonomy's catch-all variant, or nil.
func (t *Taxonomy) FromVariant() *Variant {
	for i := range t.Variants {
		if t.Variants[i].From {
			return &t.Variants[i]
		}
	}
	return nil
}

// Load reads, parses, and validates the schema at path. The format comes
// from the extension: .yaml/.yml or .toml; anything else is rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// Validate checks the schema and normalizes defaults (empty code_type
// becomes DefaultCodeType). It reports the first problem found.
func (f *File) Validate() error {
	if !isIdentifier(f.Package) || f.Package != strings.ToLower(f.Package) {
		return fmt.Errorf("%w: %q", ErrBadPackage, f.Package)
	}
	if len(f.Taxonomies) == 0 {
		return ErrNoTaxonomies
	}

	seenTax := make(map[string]bool, len(f.Taxonomies))
	for i := range f.Taxonomies {
		t := &f.Taxonomies[i]
		if !isIdentifier(t.Name) {
			return fmt.Errorf("taxonomy %q: %w", t.Name, ErrBadName)
		}
		if seenTax[t.Name] {
			return fmt.Errorf("taxonomy %q: %w", t.Name, ErrDuplicateName)
		}
		seenTax[t.Name] = true

		if t.CodeType == "" {
			t.CodeType = DefaultCodeType
		}
		if !codeTypes[t.CodeType] {
			return fmt.Errorf("taxonomy %q: %w: %q", t.Name, ErrUnknownCodeType, t.CodeType)
		}
		if err := t.validateVariants(); err != nil {
			return fmt.Errorf("taxonomy %q: %w", t.Name, err)
		}
	}
	return nil
}

func (t *Taxonomy) validateVariants() error {
	if len(t.Variants) == 0 {
		return ErrNoVariants
	}

	seen := make(map[string]bool, len(t.Variants))
	fromSeen := false
	for i := range t.Variants {
		v := &t.Variants[i]
		if !isIdentifier(v.Name) {
			return fmt.Errorf("variant %q: %w", v.Name, ErrBadName)
		}
		if seen[v.Name] {
			return fmt.Errorf("variant %q: %w", v.Name, ErrDuplicateName)
		}
		seen[v.Name] = true

		if err := t.validateCode(v); err != nil {
			return fmt.Errorf("variant %q: %w", v.Name, err)
		}
		if err := v.validateShape(); err != nil {
			return fmt.Errorf("variant %q: %w", v.Name, err)
		}
		if v.From {
			if fromSeen {
				return fmt.Errorf("variant %q: %w: second catch-all", v.Name, ErrBadFrom)
			}
			fromSeen = true
		}
	}
	return nil
}

// validateCode checks the KIND of an explicit code and the explicit-zero
// rule. Range and representability are left to code assignment in emit.
func (t *Taxonomy) validateCode(v *Variant) error {
	if v.Code == nil {
		return nil
	}
	switch c := v.Code.(type) {
	case int, int64, uint64:
		if t.ForbidZero && fmt.Sprint(c) == "0" {
			return ErrForbiddenZero
		}
	case string:
		if t.CodeType != "string" {
			return fmt.Errorf("%w: string code in %s taxonomy", ErrBadCodeLiteral, t.CodeType)
		}
		if t.ForbidZero && (c == "" || c == "0") {
			return ErrForbiddenZero
		}
	default:
		return fmt.Errorf("%w: %T", ErrBadCodeLiteral, v.Code)
	}
	return nil
}

// validateShape checks fields and the message/field arity contract.
func (v *Variant) validateShape() error {
	names := make(map[string]bool, len(v.Fields))
	for _, fd := range v.Fields {
		if !isIdentifier(fd.Name) {
			return fmt.Errorf("%w: name %q", ErrBadField, fd.Name)
		}
		if strings.TrimSpace(fd.Type) == "" {
			return fmt.Errorf("%w: field %q has no type", ErrBadField, fd.Name)
		}
		if names[fd.Name] {
			return fmt.Errorf("%w: field %q repeated", ErrBadField, fd.Name)
		}
		names[fd.Name] = true
	}

	verbs := CountVerbs(v.Message)
	if v.From {
		if len(v.Fields) != 0 {
			return fmt.Errorf("%w: catch-all carries fields", ErrBadFrom)
		}
		if verbs > 1 {
			return fmt.Errorf("%w: catch-all message consumes %d operands, at most 1", ErrBadFrom, verbs)
		}
		return nil
	}
	if verbs != len(v.Fields) {
		return fmt.Errorf("%w: message consumes %d operands, %d fields", ErrArityMismatch, verbs, len(v.Fields))
	}
	return nil
}

// CountVerbs counts the operands a message template consumes when rendered
// through fmt. "%%" escapes consume none; flags, width, and precision
// belong to the verb that follows them, except that a '*' width or
// precision consumes an operand of its own — "%*d" needs two, "%*.*f"
// three.
func CountVerbs(msg string) int {
	n := 0
	for i := 0; i < len(msg); i++ {
		if msg[i] != '%' {
			continue
		}
		if i+1 < len(msg) && msg[i+1] == '%' {
			i++
			continue
		}
		j := i + 1
		for j < len(msg) && strings.ContainsRune("+-# 0", rune(msg[j])) {
			j++
		}
		var star int
		j, star = skipWidth(msg, j)
		n += star
		if j < len(msg) && msg[j] == '.' {
			j, star = skipWidth(msg, j+1)
			n += star
		}
		n++
		i = j
	}
	return n
}

// skipWidth advances past a width or precision field: a run of digits, or
// a single '*'. The second result is 1 when the field was a '*', since
// that consumes an operand.
func skipWidth(msg string, j int) (int, int) {
	if j < len(msg) && msg[j] == '*' {
		return j + 1, 1
	}
	for j < len(msg) && msg[j] >= '0' && msg[j] <= '9' {
		j++
	}
	return j, 0
}

// isIdentifier reports whether s can seed a Go identifier: a letter or
// underscore first, letters, digits, and underscores after.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
