package literal

import (
	"strings"

	"github.com/saturn-prover/saturn/internal/lexer"
)

// falseLit is the surface keyword for the empty disjunct. It is absorbed
// during list parsing, never stored as a literal.
const falseLit = "$false"

// ParseList parses literals separated by | into an ordered list. Each
// occurrence of $false contributes no literal, so parsing "$false" alone
// yields the empty list, the always-false clause body.
func ParseList(s *lexer.Stream) ([]*Literal, error) {
	var list []*Literal
	appendNext := func() error {
		if s.LookLit() == falseLit {
			s.Next()
			return nil
		}
		lit, err := Parse(s)
		if err != nil {
			return err
		}
		list = append(list, lit)
		return nil
	}
	if err := appendNext(); err != nil {
		return nil, err
	}
	for s.TestTok(lexer.Or) {
		s.Next()
		if err := appendNext(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// ListString renders a literal list in parseable form: $false for the empty
// list, otherwise the literals joined by |. This is the inverse of ParseList
// up to IsEqual on the elements.
func ListString(list []*Literal) string {
	if len(list) == 0 {
		return falseLit
	}
	parts := make([]string, len(list))
	for i, lit := range list {
		parts[i] = lit.String()
	}
	return strings.Join(parts, "|")
}

// InList reports whether some member of list is IsEqual to lit.
func InList(lit *Literal, list []*Literal) bool {
	for _, l := range list {
		if l.IsEqual(lit) {
			return true
		}
	}
	return false
}

// OppositeInList reports whether some member of list is IsOpposite to lit.
func OppositeInList(lit *Literal, list []*Literal) bool {
	for _, l := range list {
		if l.IsOpposite(lit) {
			return true
		}
	}
	return false
}
