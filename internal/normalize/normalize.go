// Package normalize strips visibility qualifiers from top-level declarations so the
// rest of the pipeline never depends on whether a guard was exported.
package normalize

import (
	"guardgen/internal/parser"
	"guardgen/pkg/guardast"
)

// Normalize returns a new program in which every export statement that wraps a
// declaration is replaced by that declaration. The result has the same length and
// order as the input; the input is not modified.
func Normalize(prog *parser.Program) *parser.Program {
	out := &parser.Program{
		Dialect: prog.Dialect,
		Body:    make([]*guardast.Node, 0, len(prog.Body)),
	}
	for _, node := range prog.Body {
		out.Body = append(out.Body, Unwrap(node))
	}
	return out
}

// Unwrap returns the declaration inside an export statement, detached from its
// parent, or node itself for anything else.
func Unwrap(node *guardast.Node) *guardast.Node {
	if node.Type != "export_statement" {
		return node
	}
	inner := node.ChildByField("declaration")
	if inner == nil {
		// export { a, b }, export default <expr>, export = ...
		return node
	}

	decl := inner.Clone()
	decl.Field = ""
	if first := decl.FirstLeaf(); first != nil {
		first.Prefix = ""
	}
	return decl
}
