// Package clause implements clauses (ordered disjunctions of literals) and
// the in-memory clause set that indexes resolution candidates.
package clause

import (
	"github.com/saturn-prover/saturn/internal/lexer"
	"github.com/saturn-prover/saturn/internal/literal"
	"github.com/saturn-prover/saturn/internal/subst"
	"github.com/saturn-prover/saturn/internal/term"
)

// DefaultRole is the role assigned to derived clauses.
const DefaultRole = "plain"

// Clause is a disjunction of literals. Literal order is insertion order from
// parsing or derivation; it carries no logical meaning but is stable for
// printing and indexing. A clause owns its literals exclusively.
type Clause struct {
	Name     string
	Role     string
	Literals []*literal.Literal
}

// New builds a derived (unnamed) clause.
func New(lits []*literal.Literal) *Clause {
	return &Clause{Role: DefaultRole, Literals: lits}
}

// Len returns the number of literals.
func (c *Clause) Len() int { return len(c.Literals) }

// Literal returns the literal at index i.
func (c *Clause) Literal(i int) *literal.Literal { return c.Literals[i] }

// IsEmpty reports whether the clause has no literals, i.e. is the
// unsatisfiable empty clause.
func (c *Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// Weight returns the total symbol-count weight of the clause.
func (c *Clause) Weight(fweight, vweight int) int {
	w := 0
	for _, lit := range c.Literals {
		w += lit.Weight(fweight, vweight)
	}
	return w
}

// CollectVars inserts every variable occurring in the clause into vars and
// returns the set. A nil vars allocates a fresh set.
func (c *Clause) CollectVars(vars term.VarSet) term.VarSet {
	for _, lit := range c.Literals {
		vars = lit.CollectVars(vars)
	}
	if vars == nil {
		vars = term.VarSet{}
	}
	return vars
}

// FreshVarCopy returns a copy of the clause with all variables renamed to
// fresh ones, keeping name and role. Resolution requires variable-disjoint
// parents; the saturation loop fresh-copies each given clause.
func (c *Clause) FreshVarCopy(r *subst.Renamer) *Clause {
	renaming := r.FreshSubst(c.CollectVars(nil))
	lits := make([]*literal.Literal, len(c.Literals))
	for i, lit := range c.Literals {
		lits[i] = lit.Instantiate(renaming)
	}
	return &Clause{Name: c.Name, Role: c.Role, Literals: lits}
}

// String renders the clause as a parseable cnf(...) line.
func (c *Clause) String() string {
	return "cnf(" + c.Name + "," + c.Role + "," + literal.ListString(c.Literals) + ")."
}

// Parse reads one clause of the form cnf(name, role, literal-list).
func Parse(s *lexer.Stream) (*Clause, error) {
	if s.LookLit() != "cnf" {
		got := s.Look()
		return nil, lexer.Errf(got.Pos, lexer.ErrCodeUnexpectedToken,
			"expected 'cnf', found %q", got.Value)
	}
	s.Next()
	if _, err := s.AcceptTok(lexer.OpenParen); err != nil {
		return nil, err
	}
	name, err := s.AcceptTok(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := s.AcceptTok(lexer.Comma); err != nil {
		return nil, err
	}
	role, err := s.AcceptTok(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := s.AcceptTok(lexer.Comma); err != nil {
		return nil, err
	}
	lits, err := literal.ParseList(s)
	if err != nil {
		return nil, err
	}
	if _, err := s.AcceptTok(lexer.CloseParen); err != nil {
		return nil, err
	}
	if _, err := s.AcceptTok(lexer.FullStop); err != nil {
		return nil, err
	}
	return &Clause{Name: name.Value, Role: role.Value, Literals: lits}, nil
}
