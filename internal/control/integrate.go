package control

import (
	"github.com/saturn-prover/saturn/internal/clause"
	"github.com/saturn-prover/saturn/internal/resolution"
)

// AllResolvents computes every binary resolvent between c and the clauses in
// set: for each literal position of c, the set supplies candidate partner
// occurrences (opposite-sign filtering is its job), the resolution rule is
// applied to each, and nil results are skipped. The result is not
// deduplicated and nothing is inserted anywhere.
func AllResolvents(c *clause.Clause, set *clause.Set) []*clause.Clause {
	var res []*clause.Clause
	for i := 0; i < c.Len(); i++ {
		for _, occ := range set.ResolutionPartners(c.Literal(i)) {
			if r := resolution.Resolve(c, i, occ.Clause, occ.Lit); r != nil {
				res = append(res, r)
			}
		}
	}
	return res
}

// AllFactors computes every direct factor of c, trying each unordered
// literal pair (i, j), i < j, once. Quadratic in the literal count, which is
// fine: factoring runs once per selected clause, not per clause/clause-set
// comparison, and clauses are small.
func AllFactors(c *clause.Clause) []*clause.Clause {
	var res []*clause.Clause
	for i := 0; i < c.Len(); i++ {
		for j := i + 1; j < c.Len(); j++ {
			if f := resolution.Factor(c, i, j); f != nil {
				res = append(res, f)
			}
		}
	}
	return res
}
