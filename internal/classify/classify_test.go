package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardgen/internal/guarderr"
	"guardgen/internal/normalize"
	"guardgen/internal/parser"
	"guardgen/pkg/guardast"
)

func decls(t *testing.T, src string) []*guardast.Node {
	t.Helper()
	p, err := parser.NewParser(parser.DialectTypeScript)
	require.NoError(t, err)
	prog, err := p.Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	return normalize.Normalize(prog).Body
}

func TestClassifier_Classify(t *testing.T) {
	src := `export function isNumber(v: unknown): v is number {
    return typeof(v) === 'number';
}

export function isBoolean(v: unknown): v is boolean {
    return typeof(v) === 'boolean';
}

export function isStringMatch(v: string, w: string) {
    return v === w;
}
`
	c := NewClassifier(guardast.DefaultKinds)
	results, err := c.Classify(decls(t, src))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, Result{Decl: results[0].Decl, Verdict: Guard, Name: "isNumber", Kind: guardast.KindNumber}, results[0])
	assert.Equal(t, Result{Decl: results[1].Decl, Verdict: Guard, Name: "isBoolean", Kind: guardast.KindBoolean}, results[1])

	assert.Equal(t, "isStringMatch", results[2].Name)
	assert.Equal(t, NonGuard, results[2].Verdict)
	assert.Empty(t, results[2].Kind)
}

func TestClassifier_KindRoundTrip(t *testing.T) {
	c := NewClassifier(guardast.DefaultKinds)
	for _, kind := range guardast.DefaultKinds {
		t.Run(string(kind), func(t *testing.T) {
			src := "function isIt(v: unknown): v is " + string(kind) + " {\n  return true;\n}\n"
			results, err := c.Classify(decls(t, src))
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, Guard, results[0].Verdict)
			assert.Equal(t, kind, results[0].Kind)
		})
	}
}

func TestClassifier_NonGuards(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		reason string
	}{
		{
			name:   "plain boolean return",
			src:    "function isTruthy(v: unknown): boolean {\n  return !!v;\n}\n",
			reason: "return type is not a type predicate",
		},
		{
			name:   "no return annotation",
			src:    "function check(v: unknown) {\n  return true;\n}\n",
			reason: "return type is not a type predicate",
		},
		{
			name:   "two parameters",
			src:    "function isSame(v: unknown, w: unknown): v is string {\n  return v === w;\n}\n",
			reason: "takes more than one parameter",
		},
		{
			name:   "no parameters",
			src:    "function never(): boolean {\n  return false;\n}\n",
			reason: "takes no parameters",
		},
		{
			name:   "assertion signature",
			src:    "function assertNumber(v: unknown): asserts v is number {\n  if (typeof v !== 'number') throw new Error();\n}\n",
			reason: "return type is not a type predicate",
		},
	}

	c := NewClassifier(guardast.DefaultKinds)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := c.Classify(decls(t, tt.src))
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, NonGuard, results[0].Verdict)
			assert.Equal(t, tt.reason, results[0].Reason)
		})
	}
}

func TestClassifier_SkipsNonFunctions(t *testing.T) {
	src := `// leading comment
const limit = 3;
export { limit };
`
	results, err := NewClassifier(guardast.DefaultKinds).Classify(decls(t, src))
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, Skipped, r.Verdict)
		assert.Empty(t, r.Name)
	}
}

func TestClassifier_UnsupportedKind(t *testing.T) {
	src := `export function isNumber(v: unknown): v is number {
    return typeof(v) === 'number';
}

export function isDate(v: unknown): v is Date {
    return v instanceof Date;
}
`
	_, err := NewClassifier(guardast.DefaultKinds).Classify(decls(t, src))
	require.Error(t, err)

	var classErr *guarderr.ClassificationError
	require.True(t, errors.As(err, &classErr))
	assert.Equal(t, "isDate", classErr.Name)
	assert.Equal(t, "Date", classErr.Kind)
}

func TestClassifier_ClosedKindSet(t *testing.T) {
	src := "function isString(v: unknown): v is string {\n  return typeof v === 'string';\n}\n"

	_, err := NewClassifier([]guardast.Kind{guardast.KindNumber}).Classify(decls(t, src))
	var classErr *guarderr.ClassificationError
	require.True(t, errors.As(err, &classErr))
	assert.Equal(t, "string", classErr.Kind)
}
