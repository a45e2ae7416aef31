package subst

import (
	"github.com/saturn-prover/saturn/internal/term"
)

// MGU computes a most-general unifier of a and b. The second result is false
// when the terms do not unify; that is the expected inference-miss outcome,
// not an error.
//
// The unifier carries an occurs check: X never unifies with f(X).
func MGU(a, b term.Term) (Subst, bool) {
	type pair struct {
		a, b term.Term
	}
	sigma := Subst{}
	work := []pair{{a, b}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		x := sigma.Apply(p.a)
		y := sigma.Apply(p.b)
		switch {
		case term.Equal(x, y):
			// Nothing to do.
		case isVar(x):
			v := x.(term.Variable)
			if occurs(v, y) {
				return nil, false
			}
			sigma.bind(v, y)
		case isVar(y):
			v := y.(term.Variable)
			if occurs(v, x) {
				return nil, false
			}
			sigma.bind(v, x)
		default:
			cx := x.(*term.Compound)
			cy := y.(*term.Compound)
			if cx.Functor != cy.Functor || len(cx.Args) != len(cy.Args) {
				return nil, false
			}
			for i := range cx.Args {
				work = append(work, pair{cx.Args[i], cy.Args[i]})
			}
		}
	}
	return sigma, true
}

func isVar(t term.Term) bool {
	_, ok := t.(term.Variable)
	return ok
}

func occurs(v term.Variable, t term.Term) bool {
	return term.CollectVars(t, nil).Contains(v)
}
