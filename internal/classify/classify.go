// Package classify decides which top-level declarations are type guards and which
// primitive kind each guard narrows to.
package classify

import (
	"strings"

	"guardgen/internal/guarderr"
	"guardgen/pkg/guardast"
)

// Verdict is the outcome of classifying one declaration.
type Verdict string

const (
	// Skipped declarations are not functions.
	Skipped Verdict = "skipped"
	// NonGuard declarations are functions that do not narrow their single parameter.
	NonGuard Verdict = "non_guard"
	// Guard declarations are reified into the registry.
	Guard Verdict = "guard"
)

// Result describes a classified declaration. Name and Kind are set for functions
// and guards respectively; Reason explains a NonGuard verdict.
type Result struct {
	Decl    *guardast.Node
	Verdict Verdict
	Name    string
	Kind    guardast.Kind
	Reason  string
}

// Classifier checks declarations against a closed set of primitive kinds.
type Classifier struct {
	kinds map[guardast.Kind]bool
}

// NewClassifier creates a classifier accepting the given kinds.
func NewClassifier(kinds []guardast.Kind) *Classifier {
	set := make(map[guardast.Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return &Classifier{kinds: set}
}

// Classify classifies normalized declarations in order. It fails on the first guard
// whose narrowed type is not a supported kind.
func (c *Classifier) Classify(decls []*guardast.Node) ([]Result, error) {
	results := make([]Result, 0, len(decls))
	for _, decl := range decls {
		res, err := c.ClassifyDecl(decl)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// ClassifyDecl classifies a single declaration.
func (c *Classifier) ClassifyDecl(decl *guardast.Node) (Result, error) {
	res := Result{Decl: decl, Verdict: Skipped}
	if decl == nil || decl.Type != "function_declaration" {
		return res, nil
	}

	if name := decl.ChildByField("name"); name != nil {
		res.Name = name.Text
	}
	res.Verdict = NonGuard

	params := parameterNames(decl.ChildByField("parameters"))
	if len(params) != 1 {
		res.Reason = "takes more than one parameter"
		if len(params) == 0 {
			res.Reason = "takes no parameters"
		}
		return res, nil
	}

	subject, narrowed, ok := typePredicate(decl.ChildByField("return_type"))
	if !ok {
		res.Reason = "return type is not a type predicate"
		return res, nil
	}
	if subject != params[0] {
		res.Reason = "predicate does not narrow the first parameter"
		return res, nil
	}

	kind := guardast.Kind(narrowed)
	if !c.kinds[kind] {
		return res, &guarderr.ClassificationError{Name: res.Name, Kind: narrowed}
	}

	res.Verdict = Guard
	res.Kind = kind
	return res, nil
}

// parameterNames lists the binding names of a formal_parameters node. Destructured
// parameters are reported by their source text.
func parameterNames(params *guardast.Node) []string {
	var names []string
	for _, p := range params.NamedChildren() {
		switch p.Type {
		case "required_parameter", "optional_parameter":
		default:
			continue
		}
		pattern := p.ChildByField("pattern")
		if pattern == nil {
			if named := p.NamedChildren(); len(named) > 0 {
				pattern = named[0]
			}
		}
		names = append(names, strings.TrimSpace(guardast.Content(pattern)))
	}
	return names
}

// typePredicate extracts "subject is T" from a return type annotation. Assertion
// signatures ("asserts v is T") are not predicates.
func typePredicate(ret *guardast.Node) (subject, narrowed string, ok bool) {
	if ret == nil {
		return "", "", false
	}
	if guardast.Find(ret, "asserts") != nil || guardast.Find(ret, "asserts_annotation") != nil {
		return "", "", false
	}
	pred := guardast.Find(ret, "type_predicate")
	if pred == nil {
		return "", "", false
	}

	name := pred.ChildByField("name")
	typ := pred.ChildByField("type")
	if name == nil || typ == nil {
		named := pred.NamedChildren()
		if len(named) < 2 {
			return "", "", false
		}
		name, typ = named[0], named[len(named)-1]
	}
	return strings.TrimSpace(guardast.Content(name)), strings.TrimSpace(guardast.Content(typ)), true
}
