package normalize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardgen/internal/parser"
	"guardgen/pkg/guardast"
)

func parse(t *testing.T, src string) *parser.Program {
	t.Helper()
	p, err := parser.NewParser(parser.DialectTypeScript)
	require.NoError(t, err)
	prog, err := p.Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	return prog
}

func TestNormalize(t *testing.T) {
	prog := parse(t, `export function isNumber(v: unknown): v is number {
    return typeof(v) === 'number';
}

// helper
function isBoolean(v: unknown): v is boolean {
    return typeof(v) === 'boolean';
}

export { isBoolean as isBool };
`)
	require.Len(t, prog.Body, 4)

	norm := Normalize(prog)
	require.Len(t, norm.Body, 4, "normalization never drops nodes")
	assert.Equal(t, prog.Dialect, norm.Dialect)

	t.Run("Export unwrapped", func(t *testing.T) {
		decl := norm.Body[0]
		assert.Equal(t, "function_declaration", decl.Type)
		assert.Empty(t, decl.Field)
		assert.Equal(t, "function isNumber(v: unknown): v is number {\n    return typeof(v) === 'number';\n}",
			guardast.Render(decl))
	})

	t.Run("Other nodes untouched", func(t *testing.T) {
		assert.Same(t, prog.Body[1], norm.Body[1])
		assert.Same(t, prog.Body[2], norm.Body[2])
		assert.Same(t, prog.Body[3], norm.Body[3], "export clause without declaration passes through")
		assert.Equal(t, "export_statement", norm.Body[3].Type)
	})

	t.Run("Input not mutated", func(t *testing.T) {
		assert.Equal(t, "export_statement", prog.Body[0].Type)
		assert.Equal(t, "declaration", prog.Body[0].ChildByField("declaration").Field)
	})
}

func TestNormalize_VisibilityIrrelevant(t *testing.T) {
	const guard = "function isString(v: unknown): v is string {\n    return typeof(v) === 'string';\n}\n"

	exported := Normalize(parse(t, "export "+guard))
	plain := Normalize(parse(t, guard))

	require.Len(t, exported.Body, 1)
	require.Len(t, plain.Body, 1)
	assert.Equal(t, plain.Body[0], exported.Body[0])
}

func TestNormalize_Empty(t *testing.T) {
	norm := Normalize(parse(t, ""))
	assert.Empty(t, norm.Body)
}
