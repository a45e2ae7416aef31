package term

import (
	"github.com/saturn-prover/saturn/internal/lexer"
)

// Parse reads a single term from the stream: a variable, or a functor with
// an optional parenthesized argument list. Defined functors ($-prefixed) are
// accepted as functors.
func Parse(s *lexer.Stream) (Term, error) {
	switch {
	case s.TestTok(lexer.Variable):
		return Variable(s.Next().Value), nil
	case s.TestTok(lexer.Ident, lexer.DefFunctor):
		functor := s.Next().Value
		if !s.TestTok(lexer.OpenParen) {
			return &Compound{Functor: functor}, nil
		}
		s.Next()
		args, err := parseArgs(s)
		if err != nil {
			return nil, err
		}
		return &Compound{Functor: functor, Args: args}, nil
	default:
		got := s.Look()
		return nil, lexer.Errf(got.Pos, lexer.ErrCodeUnexpectedToken,
			"expected term, found %s %q", got.Kind, got.Value)
	}
}

func parseArgs(s *lexer.Stream) ([]Term, error) {
	first, err := Parse(s)
	if err != nil {
		return nil, err
	}
	args := []Term{first}
	for s.TestTok(lexer.Comma) {
		s.Next()
		arg, err := Parse(s)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := s.AcceptTok(lexer.CloseParen); err != nil {
		return nil, err
	}
	return args, nil
}
