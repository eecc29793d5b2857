// Package guardast holds the syntax tree and record types that generated guard
// registries are built from. Generated artifacts import it, so it must stay free of
// parser dependencies.
package guardast

import "strings"

// Node is a concrete syntax tree node captured from a TypeScript source module.
// Leaves carry the token text and the source text that precedes the token inside the
// enclosing top-level declaration, so Render reproduces the declaration verbatim.
type Node struct {
	Type     string  `json:"type"`
	Field    string  `json:"field,omitempty"` // field name in the parent, e.g. "return_type"
	Named    bool    `json:"named,omitempty"`
	Prefix   string  `json:"prefix,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// IsLeaf reports whether n is a token.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// ChildByField returns the first child labelled with the given field name.
func (n *Node) ChildByField(field string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Field == field {
			return c
		}
	}
	return nil
}

// NamedChildren returns the named children of n, skipping comments.
func (n *Node) NamedChildren() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Named && c.Type != "comment" {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	if n.Children != nil {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.Clone()
		}
	}
	return &cp
}

// FirstLeaf returns the first token under n.
func (n *Node) FirstLeaf() *Node {
	for n != nil && !n.IsLeaf() {
		n = n.Children[0]
	}
	return n
}

// Walk visits n and its descendants depth-first in source order. Returning false
// from fn skips the children of the visited node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Find returns the first node under n (n included) with the given type.
func Find(n *Node, typ string) *Node {
	var found *Node
	Walk(n, func(x *Node) bool {
		if found != nil {
			return false
		}
		if x.Type == typ {
			found = x
			return false
		}
		return true
	})
	return found
}

// Render reassembles the source text of n from its tokens.
func Render(n *Node) string {
	var b strings.Builder
	Walk(n, func(x *Node) bool {
		if x.IsLeaf() {
			b.WriteString(x.Prefix)
			b.WriteString(x.Text)
		}
		return true
	})
	return b.String()
}

// Content returns the source text of n without the whitespace that precedes its
// first token.
func Content(n *Node) string {
	s := Render(n)
	if first := n.FirstLeaf(); first != nil {
		s = strings.TrimPrefix(s, first.Prefix)
	}
	return s
}
