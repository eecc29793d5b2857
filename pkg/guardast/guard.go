package guardast

// Kind is the primitive type a guard narrows its parameter to, spelled as in
// TypeScript (e.g. "number").
type Kind string

const (
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindString    Kind = "string"
	KindBigInt    Kind = "bigint"
	KindSymbol    Kind = "symbol"
	KindUndefined Kind = "undefined"
	KindNull      Kind = "null"
)

// DefaultKinds is the primitive set used when a build does not configure its own.
var DefaultKinds = []Kind{
	KindNumber,
	KindBoolean,
	KindString,
	KindBigInt,
	KindSymbol,
	KindUndefined,
	KindNull,
}

// GeneratedTypeGuard describes a type guard captured at build time.
type GeneratedTypeGuard struct {
	// Name of the guard function.
	Name string `json:"name"`
	// AST is the guard's function declaration, without any export qualifier.
	AST *Node `json:"ast"`
	// Kind is the primitive type the guard ensures.
	Kind Kind `json:"kind"`
}

// Source returns the TypeScript source of the guard.
func (g GeneratedTypeGuard) Source() string {
	return Render(g.AST)
}
