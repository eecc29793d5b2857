// Package emitter renders a guard registry as a self-contained Go source file.
package emitter

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"guardgen/internal/registry"
	"guardgen/pkg/guardast"
)

// Options configure the generated file. All fields are required.
type Options struct {
	Package   string // package clause of the generated file
	ASTImport string // import path of the guardast package
	Source    string // guard module name, quoted in the banner
}

// Emitter renders registries. Output depends only on Options and the registry, so
// identical input produces identical bytes.
type Emitter struct {
	opts Options
}

func New(opts Options) *Emitter {
	return &Emitter{opts: opts}
}

// shape is the registry-independent part of every generated file.
const shape = `// GeneratedTypeGuard describes a type guard which can be used for code
// generation purposes.
type GeneratedTypeGuard struct {
	// Name of the type guard function.
	Name string

	// AST is the syntax tree of the type guard function.
	AST *guardast.Node

	// Kind is the TypeScript primitive type which the function ensures.
	Kind guardast.Kind
}

// Source returns the TypeScript source of the guard.
func (g GeneratedTypeGuard) Source() string {
	return guardast.Render(g.AST)
}

// ForKind returns the first guard, in declaration order, that ensures kind.
func ForKind(kind guardast.Kind) (GeneratedTypeGuard, bool) {
	for _, name := range GuardNames {
		if g := Guards[name]; g.Kind == kind {
			return g, true
		}
	}
	return GeneratedTypeGuard{}, false
}
`

// Emit renders reg as gofmt-formatted Go source.
func (e *Emitter) Emit(reg *registry.Registry) ([]byte, error) {
	var b strings.Builder

	// 1. Banner
	fmt.Fprintf(&b, "// Code generated by guardgen from %s. DO NOT EDIT.\n", e.opts.Source)
	fmt.Fprintf(&b, "// Any changes made here will not be kept; modify %s instead.\n\n", e.opts.Source)

	// 2. Package and imports
	fmt.Fprintf(&b, "package %s\n\n", e.opts.Package)
	fmt.Fprintf(&b, "import guardast %s\n\n", strconv.Quote(e.opts.ASTImport))

	// 3. Fixed shape
	b.WriteString(shape)

	// 4. Registry literal
	records := reg.Records()
	b.WriteString("\n// GuardNames lists the guards in declaration order.\n")
	b.WriteString("var GuardNames = []string{")
	if len(records) > 0 {
		b.WriteString("\n")
		for _, rec := range records {
			fmt.Fprintf(&b, "\t%s,\n", strconv.Quote(rec.Name))
		}
	}
	b.WriteString("}\n")

	b.WriteString("\n// Guards maps guard names to their reified declarations.\n")
	b.WriteString("var Guards = map[string]GeneratedTypeGuard{")
	if len(records) > 0 {
		b.WriteString("\n")
		for _, rec := range records {
			writeRecord(&b, rec)
		}
	}
	b.WriteString("}\n")

	out, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return out, nil
}

func writeRecord(b *strings.Builder, rec guardast.GeneratedTypeGuard) {
	fmt.Fprintf(b, "\t%s: {\n", strconv.Quote(rec.Name))
	fmt.Fprintf(b, "\t\tName: %s,\n", strconv.Quote(rec.Name))
	b.WriteString("\t\tAST: &guardast.Node")
	writeNodeBody(b, rec.AST, 2)
	b.WriteString(",\n")
	fmt.Fprintf(b, "\t\tKind: %s,\n", strconv.Quote(string(rec.Kind)))
	b.WriteString("\t},\n")
}

// writeNodeBody writes the braces of a guardast.Node composite literal. Zero-valued
// fields are omitted.
func writeNodeBody(b *strings.Builder, n *guardast.Node, depth int) {
	if n == nil {
		b.WriteString("{}")
		return
	}

	fields := []string{"Type: " + strconv.Quote(n.Type)}
	if n.Field != "" {
		fields = append(fields, "Field: "+strconv.Quote(n.Field))
	}
	if n.Named {
		fields = append(fields, "Named: true")
	}
	if n.Prefix != "" {
		fields = append(fields, "Prefix: "+strconv.Quote(n.Prefix))
	}
	if n.Text != "" {
		fields = append(fields, "Text: "+strconv.Quote(n.Text))
	}

	b.WriteString("{")
	b.WriteString(strings.Join(fields, ", "))
	if len(n.Children) > 0 {
		indent := strings.Repeat("\t", depth+1)
		b.WriteString(", Children: []*guardast.Node{\n")
		for _, c := range n.Children {
			b.WriteString(indent)
			writeNodeBody(b, c, depth+1)
			b.WriteString(",\n")
		}
		b.WriteString(strings.Repeat("\t", depth))
		b.WriteString("}")
	}
	b.WriteString("}")
}
