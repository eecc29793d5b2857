package guards

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardgen/pkg/guardast"
)

func TestGuards_MatchModule(t *testing.T) {
	module, err := os.ReadFile("guards.ts")
	require.NoError(t, err)

	assert.Equal(t, []string{"isNumber", "isBoolean", "isString"}, GuardNames)
	require.Len(t, Guards, len(GuardNames))

	for _, name := range GuardNames {
		t.Run(name, func(t *testing.T) {
			g, ok := Guards[name]
			require.True(t, ok)
			assert.Equal(t, name, g.Name)

			src := g.Source()
			assert.True(t, strings.HasPrefix(src, "function "+name+"(v: unknown): v is "+string(g.Kind)+" {"))
			assert.Contains(t, string(module), "export "+src+"\n", "regenerate generated_guards.go after editing guards.ts")
		})
	}

	_, ok := Guards["isStringMatch"]
	assert.False(t, ok)
}

func TestForKind(t *testing.T) {
	g, ok := ForKind(guardast.KindString)
	require.True(t, ok)
	assert.Equal(t, "isString", g.Name)

	_, ok = ForKind(guardast.KindSymbol)
	assert.False(t, ok)
}
