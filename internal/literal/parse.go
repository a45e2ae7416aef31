package literal

import (
	"github.com/saturn-prover/saturn/internal/lexer"
	"github.com/saturn-prover/saturn/internal/term"
)

// ParseAtom parses an atom: a term, optionally followed by an infix = or !=
// and a second term. Equations come back as a compound headed by the
// operator with both sides as arguments.
func ParseAtom(s *lexer.Stream) (term.Term, error) {
	atom, err := term.Parse(s)
	if err != nil {
		return nil, err
	}
	if s.TestTok(lexer.Equal, lexer.NotEqual) {
		op := s.Next().Value
		rhs, err := term.Parse(s)
		if err != nil {
			return nil, err
		}
		return &term.Compound{Functor: op, Args: []term.Term{atom, rhs}}, nil
	}
	return atom, nil
}

// Parse parses a literal: an optional negation sign ~ followed by an atom.
func Parse(s *lexer.Stream) (*Literal, error) {
	negative := false
	if s.TestTok(lexer.Tilde) {
		s.Next()
		negative = true
	}
	atom, err := ParseAtom(s)
	if err != nil {
		return nil, err
	}
	return New(atom, negative), nil
}
