// Package literal implements signed first-order atoms and literal lists.
//
// An atom is a term: either a conventional predicate application, or an
// equation encoded as the 2-ary pseudo-functor "=" applied to both sides.
// The surface operator "!=" exists only during parsing and printing: a
// literal built from a "!="-headed atom is rewritten to a "="-headed atom
// with the sign flipped, so t1!=t2 and ~(t1=t2) are the same literal
// internally. Every consumer of literal equality and printing relies on this
// invariant.
package literal

import (
	"github.com/saturn-prover/saturn/internal/subst"
	"github.com/saturn-prover/saturn/internal/term"
)

const (
	eqFunctor  = "="
	neqFunctor = "!="
)

// Literal is a signed atom. Immutable after construction; instantiation
// returns a new literal.
type Literal struct {
	atom     term.Term
	negative bool
}

// New builds a literal, applying the "!=" normalization invariant: a
// "!="-headed atom becomes a "="-headed atom with the opposite sign. No
// literal ever stores a "!="-headed atom.
func New(atom term.Term, negative bool) *Literal {
	if term.Func(atom) == neqFunctor {
		return &Literal{
			atom:     &term.Compound{Functor: eqFunctor, Args: term.Args(atom)},
			negative: !negative,
		}
	}
	return &Literal{atom: atom, negative: negative}
}

// Atom returns the literal's atom. Callers must not mutate it.
func (l *Literal) Atom() term.Term { return l.atom }

// IsEquational reports whether the atom is an equation.
func (l *Literal) IsEquational() bool {
	return term.Func(l.atom) == eqFunctor
}

// IsNegative reports whether the literal is negative.
func (l *Literal) IsNegative() bool { return l.negative }

// IsPositive reports whether the literal is positive.
func (l *Literal) IsPositive() bool { return !l.negative }

// IsEqual reports whether l and other have the same sign and structurally
// equal atoms. Equation sides are not canonicalized: a=b and b=a are
// different literals.
func (l *Literal) IsEqual(other *Literal) bool {
	return l.negative == other.negative && term.Equal(l.atom, other.atom)
}

// IsOpposite reports whether l and other have structurally equal atoms but
// opposite signs.
func (l *Literal) IsOpposite(other *Literal) bool {
	return l.negative != other.negative && term.Equal(l.atom, other.atom)
}

// CollectVars inserts every variable occurring in the atom into vars and
// returns the set. A nil vars allocates a fresh set.
func (l *Literal) CollectVars(vars term.VarSet) term.VarSet {
	return term.CollectVars(l.atom, vars)
}

// Instantiate returns a new literal with the substitution applied to the
// atom and the sign unchanged.
func (l *Literal) Instantiate(s subst.Subst) *Literal {
	return New(s.Apply(l.atom), l.negative)
}

// Weight returns the symbol-count weight of the atom. The equality
// pseudo-functor counts as one function symbol.
func (l *Literal) Weight(fweight, vweight int) int {
	return term.Weight(l.atom, fweight, vweight)
}

// String renders the literal in parseable surface syntax. Negative equations
// reintroduce the "!=" form that was normalized away on construction.
func (l *Literal) String() string {
	if l.IsEquational() {
		op := eqFunctor
		if l.negative {
			op = neqFunctor
		}
		args := term.Args(l.atom)
		return args[0].String() + op + args[1].String()
	}
	if l.negative {
		return "~" + l.atom.String()
	}
	return l.atom.String()
}
