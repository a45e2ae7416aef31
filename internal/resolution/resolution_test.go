package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturn-prover/saturn/internal/clause"
	"github.com/saturn-prover/saturn/internal/lexer"
)

func parseClause(t *testing.T, input string) *clause.Clause {
	t.Helper()
	s, err := lexer.New("test", input)
	require.NoError(t, err)
	c, err := clause.Parse(s)
	require.NoError(t, err)
	return c
}

func TestResolve_Ground(t *testing.T) {
	c1 := parseClause(t, "cnf(c1, axiom, a|b).")
	c2 := parseClause(t, "cnf(c2, axiom, ~a|c).")

	r := Resolve(c1, 0, c2, 0)
	require.NotNil(t, r)
	assert.Equal(t, "b|c", literalString(r))
}

func TestResolve_ProducesEmptyClause(t *testing.T) {
	c1 := parseClause(t, "cnf(c1, axiom, p(a)).")
	c2 := parseClause(t, "cnf(c2, axiom, ~p(X)).")

	r := Resolve(c1, 0, c2, 0)
	require.NotNil(t, r)
	assert.True(t, r.IsEmpty())
}

func TestResolve_AppliesUnifier(t *testing.T) {
	c1 := parseClause(t, "cnf(c1, axiom, p(X)|q(X)).")
	c2 := parseClause(t, "cnf(c2, axiom, ~p(f(Y))|r(Y)).")

	r := Resolve(c1, 0, c2, 0)
	require.NotNil(t, r)
	assert.Equal(t, "q(f(Y))|r(Y)", literalString(r))
}

func TestResolve_SameSignIsMiss(t *testing.T) {
	c1 := parseClause(t, "cnf(c1, axiom, a|b).")
	c2 := parseClause(t, "cnf(c2, axiom, a|c).")
	assert.Nil(t, Resolve(c1, 0, c2, 0))

	n1 := parseClause(t, "cnf(c3, axiom, ~a).")
	n2 := parseClause(t, "cnf(c4, axiom, ~a).")
	assert.Nil(t, Resolve(n1, 0, n2, 0))
}

func TestResolve_NonUnifiableIsMiss(t *testing.T) {
	c1 := parseClause(t, "cnf(c1, axiom, p(a)).")
	c2 := parseClause(t, "cnf(c2, axiom, ~p(b)).")
	assert.Nil(t, Resolve(c1, 0, c2, 0))
}

func TestResolve_MergesDuplicates(t *testing.T) {
	c1 := parseClause(t, "cnf(c1, axiom, a|c).")
	c2 := parseClause(t, "cnf(c2, axiom, ~a|c).")

	r := Resolve(c1, 0, c2, 0)
	require.NotNil(t, r)
	assert.Equal(t, "c", literalString(r))
}

func TestResolve_DoesNotMutateParents(t *testing.T) {
	c1 := parseClause(t, "cnf(c1, axiom, p(X)|q(X)).")
	c2 := parseClause(t, "cnf(c2, axiom, ~p(a)|r).")

	require.NotNil(t, Resolve(c1, 0, c2, 0))
	assert.Equal(t, "cnf(c1,axiom,p(X)|q(X)).", c1.String())
	assert.Equal(t, "cnf(c2,axiom,~p(a)|r).", c2.String())
}

func TestFactor_MergesUnifiableLiterals(t *testing.T) {
	c := parseClause(t, "cnf(c1, axiom, p(X)|p(a)).")

	f := Factor(c, 0, 1)
	require.NotNil(t, f)
	assert.Equal(t, "p(a)", literalString(f))
}

func TestFactor_KeepsUnrelatedLiterals(t *testing.T) {
	c := parseClause(t, "cnf(c1, axiom, p(X)|~q|p(a)).")

	f := Factor(c, 0, 2)
	require.NotNil(t, f)
	assert.Equal(t, "p(a)|~q", literalString(f))
}

func TestFactor_DifferentSignIsMiss(t *testing.T) {
	c := parseClause(t, "cnf(c1, axiom, p(X)|~p(a)).")
	assert.Nil(t, Factor(c, 0, 1))
}

func TestFactor_NonUnifiableIsMiss(t *testing.T) {
	c := parseClause(t, "cnf(c1, axiom, p(a)|p(b)).")
	assert.Nil(t, Factor(c, 0, 1))
}

func literalString(c *clause.Clause) string {
	s := ""
	for i := 0; i < c.Len(); i++ {
		if i > 0 {
			s += "|"
		}
		s += c.Literal(i).String()
	}
	return s
}
