package clause

import (
	"strings"

	"github.com/saturn-prover/saturn/internal/lexer"
	"github.com/saturn-prover/saturn/internal/literal"
)

// Occurrence identifies one literal position within a clause.
type Occurrence struct {
	Clause *Clause
	Lit    int
}

// Set is an insertion-ordered collection of clauses. It is append-only from
// the inference core's point of view: resolution reads it, never mutates it.
// Not safe for concurrent mutation; the saturation loop is the single writer.
type Set struct {
	clauses []*Clause
}

// NewSet returns an empty clause set.
func NewSet() *Set {
	return &Set{}
}

// Add appends a clause to the set.
func (s *Set) Add(c *Clause) {
	s.clauses = append(s.clauses, c)
}

// Len returns the number of clauses.
func (s *Set) Len() int { return len(s.clauses) }

// Clauses returns the clauses in insertion order. Callers must not mutate
// the returned slice.
func (s *Set) Clauses() []*Clause { return s.clauses }

// ResolutionPartners returns every (clause, literal index) in the set whose
// literal has the opposite sign of lit, the candidate filter for binary
// resolution. Unifiability is not checked here; the resolution rule decides.
func (s *Set) ResolutionPartners(lit *literal.Literal) []Occurrence {
	var partners []Occurrence
	for _, c := range s.clauses {
		for i := 0; i < c.Len(); i++ {
			if c.Literal(i).IsNegative() != lit.IsNegative() {
				partners = append(partners, Occurrence{Clause: c, Lit: i})
			}
		}
	}
	return partners
}

// ParseSet reads cnf(...) clauses until end of input and returns them as a
// set.
func ParseSet(s *lexer.Stream) (*Set, error) {
	set := NewSet()
	for !s.AtEOF() {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		set.Add(c)
	}
	return set, nil
}

// String renders the set as one cnf(...) line per clause.
func (s *Set) String() string {
	var b strings.Builder
	for _, c := range s.clauses {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
