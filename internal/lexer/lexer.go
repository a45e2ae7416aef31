package lexer

import (
	plex "github.com/alecthomas/participle/v2/lexer"
)

// Kind identifies a token class in the clause surface syntax.
type Kind int

const (
	// EOF marks the end of the input.
	EOF Kind = iota
	// Ident is a lower-case identifier or an integer (functors, predicates,
	// clause names and roles).
	Ident
	// Variable is an upper-case or underscore-leading identifier.
	Variable
	// DefFunctor is a defined functor such as $false.
	DefFunctor
	// Equal is the infix = operator.
	Equal
	// NotEqual is the infix != operator. It only exists at the token level;
	// literals normalize it away on construction.
	NotEqual
	// Tilde is the negation sign ~.
	Tilde
	// Or is the disjunction separator |.
	Or
	// OpenParen, CloseParen, Comma and FullStop are the remaining punctuation.
	OpenParen
	CloseParen
	Comma
	FullStop
)

var kindNames = map[Kind]string{
	EOF:        "end of input",
	Ident:      "identifier",
	Variable:   "variable",
	DefFunctor: "defined functor",
	Equal:      "'='",
	NotEqual:   "'!='",
	Tilde:      "'~'",
	Or:         "'|'",
	OpenParen:  "'('",
	CloseParen: "')'",
	Comma:      "','",
	FullStop:   "'.'",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown token"
}

// Rule order matters: longer operators before their prefixes, defined
// functors and variables before plain identifiers.
var definition = plex.MustSimple([]plex.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Comment", Pattern: `[%#][^\n]*`},
	{Name: "DefFunctor", Pattern: `\$[a-z0-9_]+`},
	{Name: "Variable", Pattern: `[_A-Z][A-Za-z0-9_]*`},
	{Name: "Ident", Pattern: `[a-z0-9][A-Za-z0-9_]*`},
	{Name: "NotEqual", Pattern: `!=`},
	{Name: "Equal", Pattern: `=`},
	{Name: "Tilde", Pattern: `~`},
	{Name: "Or", Pattern: `\|`},
	{Name: "OpenParen", Pattern: `\(`},
	{Name: "CloseParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
	{Name: "FullStop", Pattern: `\.`},
})

// Token is a single lexed token.
type Token struct {
	Kind  Kind
	Value string
	Pos   Position
}

// Stream is a token stream with single-token look-ahead, the parsing
// interface shared by the term, literal and clause parsers.
//
// The whole input is lexed up front in New; Stream methods never fail.
type Stream struct {
	lex   *plex.PeekingLexer
	kinds map[plex.TokenType]Kind
}

// New lexes input and returns a stream positioned at its first token.
// name is used in error positions (typically the file name).
func New(name, input string) (*Stream, error) {
	lx, err := definition.LexString(name, input)
	if err != nil {
		return nil, wrapLexError(err)
	}
	symbols := definition.Symbols()
	peeking, err := plex.Upgrade(lx, symbols["Whitespace"], symbols["Comment"])
	if err != nil {
		return nil, wrapLexError(err)
	}
	kinds := make(map[plex.TokenType]Kind, len(symbols))
	for sym, typ := range symbols {
		switch sym {
		case "DefFunctor":
			kinds[typ] = DefFunctor
		case "Variable":
			kinds[typ] = Variable
		case "Ident":
			kinds[typ] = Ident
		case "NotEqual":
			kinds[typ] = NotEqual
		case "Equal":
			kinds[typ] = Equal
		case "Tilde":
			kinds[typ] = Tilde
		case "Or":
			kinds[typ] = Or
		case "OpenParen":
			kinds[typ] = OpenParen
		case "CloseParen":
			kinds[typ] = CloseParen
		case "Comma":
			kinds[typ] = Comma
		case "FullStop":
			kinds[typ] = FullStop
		}
	}
	return &Stream{lex: peeking, kinds: kinds}, nil
}

func (s *Stream) convert(t *plex.Token) Token {
	if t.EOF() {
		return Token{Kind: EOF, Pos: t.Pos}
	}
	return Token{Kind: s.kinds[t.Type], Value: t.Value, Pos: t.Pos}
}

// Look returns the current token without consuming it.
func (s *Stream) Look() Token {
	return s.convert(s.lex.Peek())
}

// LookLit returns the literal text of the current token.
func (s *Stream) LookLit() string {
	return s.lex.Peek().Value
}

// TestTok reports whether the current token is one of the given kinds.
func (s *Stream) TestTok(kinds ...Kind) bool {
	current := s.Look().Kind
	for _, k := range kinds {
		if current == k {
			return true
		}
	}
	return false
}

// Next consumes and returns the current token. At end of input it keeps
// returning the EOF token.
func (s *Stream) Next() Token {
	return s.convert(s.lex.Next())
}

// AcceptTok consumes and returns the current token if it is of the given
// kind, and returns a SyntaxError otherwise.
func (s *Stream) AcceptTok(kind Kind) (Token, error) {
	if !s.TestTok(kind) {
		got := s.Look()
		return Token{}, Errf(got.Pos, ErrCodeUnexpectedToken,
			"expected %s, found %s %q", kind, got.Kind, got.Value)
	}
	return s.Next(), nil
}

// AtEOF reports whether the stream is exhausted.
func (s *Stream) AtEOF() bool {
	return s.Look().Kind == EOF
}
