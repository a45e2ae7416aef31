// Package term implements first-order terms over function symbols and
// variables.
//
// A term is either a variable or a function application (a "compound");
// constants are zero-argument compounds. Terms are immutable once built and
// sub-terms may be shared freely between literals and clauses; substitution
// application always allocates new spines and never rewrites shared
// structure.
package term

import (
	"fmt"
	"strings"
)

// Term is a sealed interface: only Variable and *Compound implement it.
type Term interface {
	fmt.Stringer
	term()
}

// Variable is a first-order variable. Identity is the name; there is no
// alpha-renaming anywhere in term comparison.
type Variable string

func (Variable) term() {}

func (v Variable) String() string { return string(v) }

// Compound is a function or predicate application. A constant is a Compound
// with no arguments. The equality pseudo-functors "=" and "!=" are ordinary
// compounds at this level.
type Compound struct {
	Functor string
	Args    []Term
}

func (*Compound) term() {}

func (c *Compound) String() string {
	if len(c.Args) == 0 {
		return c.Functor
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Functor + "(" + strings.Join(args, ",") + ")"
}

// NewCompound builds a function application.
func NewCompound(functor string, args ...Term) *Compound {
	return &Compound{Functor: functor, Args: args}
}

// Func returns the head functor of t, or the empty string for a variable.
func Func(t Term) string {
	if c, ok := t.(*Compound); ok {
		return c.Functor
	}
	return ""
}

// Args returns the argument list of t, or nil for a variable. The returned
// slice is owned by t and must not be mutated.
func Args(t Term) []Term {
	if c, ok := t.(*Compound); ok {
		return c.Args
	}
	return nil
}

// Equal reports structural equality. Argument order and variable names are
// significant: f(X,Y) and f(Y,X) are different terms.
func Equal(a, b Term) bool {
	switch ta := a.(type) {
	case Variable:
		tb, ok := b.(Variable)
		return ok && ta == tb
	case *Compound:
		tb, ok := b.(*Compound)
		if !ok || ta.Functor != tb.Functor || len(ta.Args) != len(tb.Args) {
			return false
		}
		for i := range ta.Args {
			if !Equal(ta.Args[i], tb.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// VarSet is a set of variables.
type VarSet map[Variable]struct{}

// Insert adds v to the set.
func (s VarSet) Insert(v Variable) { s[v] = struct{}{} }

// Contains reports whether v is in the set.
func (s VarSet) Contains(v Variable) bool {
	_, ok := s[v]
	return ok
}

// CollectVars inserts every variable occurring in t into vars and returns
// the set. A nil vars allocates a fresh set.
func CollectVars(t Term, vars VarSet) VarSet {
	if vars == nil {
		vars = VarSet{}
	}
	switch tt := t.(type) {
	case Variable:
		vars.Insert(tt)
	case *Compound:
		for _, a := range tt.Args {
			CollectVars(a, vars)
		}
	}
	return vars
}

// Weight returns the symbol-count weight of t: fweight per function-symbol
// occurrence plus vweight per variable occurrence.
func Weight(t Term, fweight, vweight int) int {
	switch tt := t.(type) {
	case Variable:
		return vweight
	case *Compound:
		w := fweight
		for _, a := range tt.Args {
			w += Weight(a, fweight, vweight)
		}
		return w
	}
	return 0
}
