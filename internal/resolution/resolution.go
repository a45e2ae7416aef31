// Package resolution implements the binary resolution and factoring
// inference rules.
//
// Both rules return nil when no inference exists for the given literal pair
// (wrong signs, atoms do not unify). That is the normal high-frequency
// outcome in a saturation loop, not an error.
package resolution

import (
	"github.com/saturn-prover/saturn/internal/clause"
	"github.com/saturn-prover/saturn/internal/literal"
	"github.com/saturn-prover/saturn/internal/subst"
)

// Resolve computes the binary resolvent of c1 and c2 on the literals at i1
// and i2, or nil if they do not resolve. The parents must be
// variable-disjoint; callers fresh-copy one side.
//
// The resolvent is the union of both remainders under the unifier, with
// duplicate literals merged. The inputs are never mutated.
func Resolve(c1 *clause.Clause, i1 int, c2 *clause.Clause, i2 int) *clause.Clause {
	l1 := c1.Literal(i1)
	l2 := c2.Literal(i2)
	if l1.IsNegative() == l2.IsNegative() {
		return nil
	}
	sigma, ok := subst.MGU(l1.Atom(), l2.Atom())
	if !ok {
		return nil
	}
	var lits []*literal.Literal
	lits = appendRest(lits, c1, i1, sigma)
	lits = appendRest(lits, c2, i2, sigma)
	return clause.New(lits)
}

// Factor merges the literals at positions i and j of c, or returns nil if
// they do not factor. Both literals must carry the same sign and their atoms
// must unify; the factor keeps every literal except the one at j,
// instantiated with the unifier and deduplicated.
func Factor(c *clause.Clause, i, j int) *clause.Clause {
	li := c.Literal(i)
	lj := c.Literal(j)
	if li.IsNegative() != lj.IsNegative() {
		return nil
	}
	sigma, ok := subst.MGU(li.Atom(), lj.Atom())
	if !ok {
		return nil
	}
	lits := appendRest(nil, c, j, sigma)
	return clause.New(lits)
}

// appendRest appends every literal of c except the one at skip, instantiated
// with sigma, dropping literals already present.
func appendRest(lits []*literal.Literal, c *clause.Clause, skip int, sigma subst.Subst) []*literal.Literal {
	for i := 0; i < c.Len(); i++ {
		if i == skip {
			continue
		}
		inst := c.Literal(i).Instantiate(sigma)
		if !literal.InList(inst, lits) {
			lits = append(lits, inst)
		}
	}
	return lits
}
