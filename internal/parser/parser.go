package parser

import (
	"context"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"guardgen/internal/guarderr"
	"guardgen/pkg/guardast"
)

// Dialect selects the grammar a module is parsed with.
type Dialect string

const (
	DialectTypeScript Dialect = "typescript"
	DialectTSX        Dialect = "tsx"
)

// Program is the ordered list of top-level nodes of a parsed module.
type Program struct {
	Dialect Dialect          `json:"dialect"`
	Body    []*guardast.Node `json:"body"`
}

// Parser turns TypeScript source text into a Program using Tree-sitter.
type Parser struct {
	dialect Dialect
	lang    *sitter.Language
}

// NewParser creates a parser for the given dialect.
func NewParser(dialect Dialect) (*Parser, error) {
	var lang *sitter.Language
	switch dialect {
	case DialectTypeScript:
		lang = typescript.GetLanguage()
	case DialectTSX:
		lang = tsx.GetLanguage()
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}
	return &Parser{dialect: dialect, lang: lang}, nil
}

// Dialect returns the dialect the parser was created for.
func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Parse parses text. Any syntax error fails the whole parse with a
// *guarderr.ParseError pointing at the first offending node.
func (p *Parser) Parse(ctx context.Context, text []byte) (*Program, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.lang)

	tree, err := parser.ParseCtx(ctx, nil, text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if bad := firstError(root); bad != nil {
		return nil, newParseError(bad, text)
	}

	prog := &Program{Dialect: p.dialect, Body: []*guardast.Node{}}
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		c := &converter{src: text, offset: child.StartByte()}
		prog.Body = append(prog.Body, c.convert(child, ""))
	}
	return prog, nil
}

// firstError returns the first ERROR or MISSING node in source order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

func newParseError(n *sitter.Node, src []byte) *guarderr.ParseError {
	pos := n.StartPoint()
	msg := "syntax error"
	if n.IsMissing() {
		msg = fmt.Sprintf("missing %q", n.Type())
	} else if snippet := n.Content(src); snippet != "" {
		msg = fmt.Sprintf("unexpected %q", truncate(snippet, snippetLen))
	}
	return &guarderr.ParseError{
		Line:    int(pos.Row) + 1,
		Column:  int(pos.Column) + 1,
		Message: msg,
	}
}

const snippetLen = 24

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// converter copies a Tree-sitter subtree into guardast nodes. offset tracks the end
// of the previous token so each leaf can record the text in front of it.
type converter struct {
	src    []byte
	offset uint32
}

func (c *converter) convert(n *sitter.Node, field string) *guardast.Node {
	out := &guardast.Node{
		Type:  n.Type(),
		Field: field,
		Named: n.IsNamed(),
	}

	count := int(n.ChildCount())
	if count == 0 {
		start, end := n.StartByte(), n.EndByte()
		if start > c.offset {
			out.Prefix = string(c.src[c.offset:start])
		}
		out.Text = string(c.src[start:end])
		if end > c.offset {
			c.offset = end
		}
		return out
	}

	fallback := knownFieldChildren(n)
	out.Children = make([]*guardast.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.Child(i)
		name := n.FieldNameForChild(i)
		if name == "" {
			name = fallback[span{child.StartByte(), child.EndByte(), child.Type()}]
		}
		out.Children = append(out.Children, c.convert(child, name))
	}
	return out
}

// knownFields are the field labels the guard classifier and normalizer read.
var knownFields = []string{"name", "parameters", "return_type", "body", "declaration", "pattern", "type"}

type span struct {
	start, end uint32
	typ        string
}

// knownFieldChildren resolves knownFields through ChildByFieldName. Older grammars
// do not report fields inherited from hidden rules through FieldNameForChild.
func knownFieldChildren(n *sitter.Node) map[span]string {
	out := make(map[span]string)
	for _, f := range knownFields {
		if child := n.ChildByFieldName(f); child != nil {
			key := span{child.StartByte(), child.EndByte(), child.Type()}
			if _, taken := out[key]; !taken {
				out[key] = f
			}
		}
	}
	return out
}
