// Package subst implements substitutions over first-order terms: application,
// fresh-variable renaming, and most-general unification.
package subst

import (
	"fmt"

	"github.com/saturn-prover/saturn/internal/term"
)

// Subst maps variables to terms. The zero value (nil) is the identity
// substitution.
type Subst map[term.Variable]term.Term

// Apply returns t with every bound variable replaced. Unbound sub-terms are
// shared with the input; t itself is never mutated.
func (s Subst) Apply(t term.Term) term.Term {
	switch tt := t.(type) {
	case term.Variable:
		if bound, ok := s[tt]; ok {
			return bound
		}
		return t
	case *term.Compound:
		if len(tt.Args) == 0 {
			return t
		}
		args := make([]term.Term, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = s.Apply(a)
		}
		return &term.Compound{Functor: tt.Functor, Args: args}
	}
	return t
}

// bind adds x -> t and keeps the substitution idempotent by rewriting x in
// every existing binding.
func (s Subst) bind(x term.Variable, t term.Term) {
	single := Subst{x: t}
	for v, bound := range s {
		s[v] = single.Apply(bound)
	}
	s[x] = t
}

// Renamer hands out globally fresh variables. The caller that owns the
// search (the saturation loop) owns the renamer; there is no process-wide
// counter.
type Renamer struct {
	n int
}

// Fresh returns a variable never returned before by this renamer.
func (r *Renamer) Fresh() term.Variable {
	r.n++
	return term.Variable(fmt.Sprintf("X%d", r.n))
}

// FreshSubst builds a substitution renaming every variable in vars to a
// fresh one. Iteration order does not matter: each variable maps to a
// distinct fresh variable regardless.
func (r *Renamer) FreshSubst(vars term.VarSet) Subst {
	s := make(Subst, len(vars))
	for v := range vars {
		s[v] = r.Fresh()
	}
	return s
}
