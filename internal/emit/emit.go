// emit.go — Go source emission for bizerrgen.
//
// Pipeline (template → buffer → goimports):
//  1. Resolve every taxonomy's codes through bizerror.Assign, so a bad
//     schema fails generation with the same errors the runtime would
//     raise, and the resolved values can be emitted as constants.
//  2. Precompute name shapes (strcase) and Go literals into a flat render
//     model; the template only assembles fragments, never computes.
//  3. Execute the template into a buffer and run the result through
//     x/tools imports.Process, which both formats the code and prunes
//     the import block.
//
// Determinism: the model iterates schema slices in declaration order and
// never ranges over maps; identical schema input yields byte-identical
// output.
package emit

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"golang.org/x/tools/imports"

	"github.com/VainJoker/bizerror"
	"github.com/VainJoker/bizerror/internal/schema"
)

// bizerrorImport is the module path the generated code depends on.
const bizerrorImport = "github.com/VainJoker/bizerror"

type fileModel struct {
	Package    string
	Import     string
	Taxonomies []taxModel
}

type taxModel struct {
	TypeName      string
	TableVar      string
	CodeType      string
	AutoStart     int64
	AutoIncrement int64
	ForbidZero    bool
	Decls         []string
	Constants     []constModel
	Ctors         []ctorModel
	From          *fromModel
}

type constModel struct {
	Name  string
	Type  string
	Value string // Go literal, already quoted for string code types
}

type ctorModel struct {
	FuncName   string
	Variant    string // raw variant name, for doc comments
	VariantLit string // quoted variant name
	Params     string // "id int64, key string", possibly empty
	MessageLit string // quoted message template
	Args       string // ", id, key", possibly empty
}

type fromModel struct {
	WrapFunc   string
	FromFunc   string
	Variant    string
	VariantLit string
	MessageLit string
	HasVerb    bool
}

// Generate renders f into formatted Go source. The schema must already be
// validated; Generate still fails cleanly on anything Assign rejects.
func Generate(f *schema.File) ([]byte, error) {
	m, err := buildModel(f)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("executing taxonomy template: %w", err)
	}
	src, err := imports.Process(f.Package+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

func buildModel(f *schema.File) (*fileModel, error) {
	m := &fileModel{
		Package:    f.Package,
		Import:     bizerrorImport,
		Taxonomies: make([]taxModel, 0, len(f.Taxonomies)),
	}
	for i := range f.Taxonomies {
		tm, err := buildTaxonomy(&f.Taxonomies[i])
		if err != nil {
			return nil, fmt.Errorf("taxonomy %q: %w", f.Taxonomies[i].Name, err)
		}
		m.Taxonomies = append(m.Taxonomies, tm)
	}
	return m, nil
}

func buildTaxonomy(t *schema.Taxonomy) (taxModel, error) {
	literals, err := resolveLiterals(t)
	if err != nil {
		return taxModel{}, err
	}

	typeName := strcase.ToCamel(t.Name)
	tm := taxModel{
		TypeName:      typeName,
		TableVar:      strcase.ToLowerCamel(t.Name) + "Table",
		CodeType:      t.CodeType,
		AutoStart:     t.AutoStart,
		AutoIncrement: t.AutoIncrement,
		ForbidZero:    t.ForbidZero,
	}

	for i := range t.Variants {
		v := &t.Variants[i]
		camel := strcase.ToCamel(v.Name)

		if v.Code == nil {
			tm.Decls = append(tm.Decls, fmt.Sprintf("bizerror.Auto(%q)", v.Name))
		} else {
			tm.Decls = append(tm.Decls, fmt.Sprintf("bizerror.Explicit(%q, %s)", v.Name, codeLiteral(v.Code)))
		}

		tm.Constants = append(tm.Constants, constModel{
			Name:  "Code" + typeName + camel,
			Type:  t.CodeType,
			Value: literals[v.Name],
		})

		if v.From {
			tm.From = &fromModel{
				WrapFunc:   "Wrap" + typeName + camel,
				FromFunc:   typeName + "From",
				Variant:    v.Name,
				VariantLit: strconv.Quote(v.Name),
				MessageLit: strconv.Quote(v.Message),
				HasVerb:    schema.CountVerbs(v.Message) == 1,
			}
			continue
		}

		params := make([]string, 0, len(v.Fields))
		args := make([]string, 0, len(v.Fields))
		for _, fd := range v.Fields {
			p := strcase.ToLowerCamel(fd.Name)
			params = append(params, p+" "+fd.Type)
			args = append(args, p)
		}
		ctor := ctorModel{
			FuncName:   "New" + typeName + camel,
			Variant:    v.Name,
			VariantLit: strconv.Quote(v.Name),
			Params:     strings.Join(params, ", "),
			MessageLit: strconv.Quote(v.Message),
		}
		if len(args) > 0 {
			ctor.Args = ", " + strings.Join(args, ", ")
		}
		tm.Ctors = append(tm.Ctors, ctor)
	}
	return tm, nil
}

// resolveLiterals runs the real code assignment for t and renders each
// variant's resolved code as a Go literal. The switch pins the generic
// instantiation to the taxonomy's declared code type.
func resolveLiterals(t *schema.Taxonomy) (map[string]string, error) {
	switch t.CodeType {
	case "uint8":
		return assignLiterals[uint8](t, false)
	case "uint16":
		return assignLiterals[uint16](t, false)
	case "uint32":
		return assignLiterals[uint32](t, false)
	case "uint64":
		return assignLiterals[uint64](t, false)
	case "uint":
		return assignLiterals[uint](t, false)
	case "int8":
		return assignLiterals[int8](t, false)
	case "int16":
		return assignLiterals[int16](t, false)
	case "int32":
		return assignLiterals[int32](t, false)
	case "int64":
		return assignLiterals[int64](t, false)
	case "int":
		return assignLiterals[int](t, false)
	case "string":
		return assignLiterals[string](t, true)
	default:
		// Validate normalizes and rejects code types before emission.
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownCodeType, t.CodeType)
	}
}

func assignLiterals[C bizerror.Code](t *schema.Taxonomy, quote bool) (map[string]string, error) {
	cfg := bizerror.Config{
		AutoStart:     t.AutoStart,
		AutoIncrement: t.AutoIncrement,
		ForbidZero:    t.ForbidZero,
	}
	decls := make([]bizerror.Decl, 0, len(t.Variants))
	for _, v := range t.Variants {
		if v.Code == nil {
			decls = append(decls, bizerror.Auto(v.Name))
		} else {
			decls = append(decls, bizerror.Explicit(v.Name, v.Code))
		}
	}
	tbl, err := bizerror.Assign[C](cfg, decls...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, tbl.Len())
	for name, c := range tbl.Codes() {
		lit := fmt.Sprint(c)
		if quote {
			lit = strconv.Quote(lit)
		}
		out[name] = lit
	}
	return out, nil
}

// codeLiteral renders an explicit schema code as Go source. Integers keep
// their decimal form; strings are quoted.
func codeLiteral(c any) string {
	if s, ok := c.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(c)
}

var tmpl = template.Must(template.New("taxonomy").Parse(fileTemplate))

const fileTemplate = `// Code generated by bizerrgen. DO NOT EDIT.

package {{.Package}}

import (
	"{{.Import}}"
)
{{range $t := .Taxonomies}}
// {{$t.TypeName}} is a classified business error in the {{$t.TypeName}} taxonomy.
type {{$t.TypeName}} struct {
	*bizerror.Classified[{{$t.CodeType}}]
}

var _ bizerror.BizError[{{$t.CodeType}}] = (*{{$t.TypeName}})(nil)

// {{$t.TableVar}} assigns the {{$t.TypeName}} codes in declaration order.
var {{$t.TableVar}} = bizerror.MustAssign[{{$t.CodeType}}](
	bizerror.Config{AutoStart: {{$t.AutoStart}}, AutoIncrement: {{$t.AutoIncrement}}, ForbidZero: {{$t.ForbidZero}}},
{{- range $t.Decls}}
	{{.}},
{{- end}}
)

// Codes assigned to the {{$t.TypeName}} variants.
const (
{{- range $t.Constants}}
	{{.Name}} {{.Type}} = {{.Value}}
{{- end}}
)
{{range $c := $t.Ctors}}
// {{$c.FuncName}} mints the {{$c.Variant}} variant of {{$t.TypeName}}.
func {{$c.FuncName}}({{$c.Params}}) *{{$t.TypeName}} {
	return &{{$t.TypeName}}{ {{$t.TableVar}}.New({{$c.VariantLit}}, {{$c.MessageLit}}{{$c.Args}}) }
}
{{end}}
{{- if $t.From}}
// {{$t.From.WrapFunc}} classifies an arbitrary error as the {{$t.From.Variant}} variant of {{$t.TypeName}}.
func {{$t.From.WrapFunc}}(cause error) *{{$t.TypeName}} {
	return &{{$t.TypeName}}{ {{$t.TableVar}}.Wrap({{$t.From.VariantLit}}, cause, {{$t.From.MessageLit}}{{if $t.From.HasVerb}}, cause{{end}}) }
}

// {{$t.From.FromFunc}} is the total conversion into the {{$t.TypeName}}
// taxonomy: errors already classified under {{$t.CodeType}} pass through
// unchanged, anything else becomes the {{$t.From.Variant}} variant.
func {{$t.From.FromFunc}}(err error) bizerror.BizError[{{$t.CodeType}}] {
	if be, ok := err.(bizerror.BizError[{{$t.CodeType}}]); ok {
		return be
	}
	return {{$t.From.WrapFunc}}(err)
}
{{- end}}
{{- end}}
`
