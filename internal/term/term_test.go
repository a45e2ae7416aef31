package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturn-prover/saturn/internal/lexer"
)

func parseTerm(t *testing.T, input string) Term {
	t.Helper()
	s, err := lexer.New("test", input)
	require.NoError(t, err)
	tm, err := Parse(s)
	require.NoError(t, err)
	return tm
}

func TestParse_RoundTrip(t *testing.T) {
	for _, input := range []string{
		"X",
		"a",
		"f(X,a)",
		"g(f(X,a),Y,b)",
		"f(g(g(a)))",
	} {
		tm := parseTerm(t, input)
		assert.Equal(t, input, tm.String())
	}
}

func TestParse_Shapes(t *testing.T) {
	assert.Equal(t, Variable("X"), parseTerm(t, "X"))

	c, ok := parseTerm(t, "a").(*Compound)
	require.True(t, ok)
	assert.Equal(t, "a", c.Functor)
	assert.Empty(t, c.Args)

	f, ok := parseTerm(t, "f(X,a)").(*Compound)
	require.True(t, ok)
	assert.Equal(t, "f", f.Functor)
	require.Len(t, f.Args, 2)
	assert.Equal(t, Variable("X"), f.Args[0])
}

func TestParse_Errors(t *testing.T) {
	for _, input := range []string{
		"f(",
		"f(a,)",
		"f(a",
		",",
	} {
		s, err := lexer.New("test", input)
		require.NoError(t, err)
		_, err = Parse(s)
		assert.Error(t, err, "input %q", input)
		assert.True(t, lexer.IsSyntaxError(err))
	}
}

func TestEqual_IsStructural(t *testing.T) {
	assert.True(t, Equal(parseTerm(t, "f(X,a)"), parseTerm(t, "f(X,a)")))
	assert.True(t, Equal(Variable("X"), Variable("X")))

	// Argument order matters.
	assert.False(t, Equal(parseTerm(t, "f(X,a)"), parseTerm(t, "f(a,X)")))
	// Variable names matter: no alpha-renaming.
	assert.False(t, Equal(parseTerm(t, "f(X)"), parseTerm(t, "f(Y)")))
	assert.False(t, Equal(Variable("X"), parseTerm(t, "a")))
	assert.False(t, Equal(parseTerm(t, "f(a)"), parseTerm(t, "f(a,a)")))
}

func TestCollectVars_Deduplicates(t *testing.T) {
	vars := CollectVars(parseTerm(t, "f(X,g(Y,X),a)"), nil)
	assert.Len(t, vars, 2)
	assert.True(t, vars.Contains("X"))
	assert.True(t, vars.Contains("Y"))

	// Accumulating into an existing set.
	vars = CollectVars(parseTerm(t, "h(Z)"), vars)
	assert.Len(t, vars, 3)
}

func TestWeight(t *testing.T) {
	// One function symbol, one variable.
	assert.Equal(t, 3, Weight(parseTerm(t, "p(X)"), 2, 1))
	// f, a and two variable occurrences of X.
	assert.Equal(t, 6, Weight(parseTerm(t, "f(X,a,X)"), 2, 1))
	assert.Equal(t, 1, Weight(Variable("X"), 2, 1))
}
