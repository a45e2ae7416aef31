package lexer

import (
	"errors"
	"fmt"

	plex "github.com/alecthomas/participle/v2/lexer"
)

// Position locates a token in the input.
type Position = plex.Position

// ErrorCode categorizes syntax errors.
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates input the tokenizer could not lex.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeUnexpectedToken indicates a token that does not fit the grammar.
	ErrCodeUnexpectedToken ErrorCode = "UNEXPECTED_TOKEN"
)

// SyntaxError represents a malformed term, literal or clause in the input.
// Parsing stops at the first syntax error; there is no recovery.
type SyntaxError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Pos is the input position, if known.
	Pos Position
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errf creates a SyntaxError at the given position.
func Errf(pos Position, code ErrorCode, format string, args ...any) *SyntaxError {
	return &SyntaxError{Code: code, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// IsSyntaxError reports whether err is (or wraps) a SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// wrapLexError converts a tokenizer error into a SyntaxError. The underlying
// lexer already renders its position into the message.
func wrapLexError(err error) error {
	return &SyntaxError{Code: ErrCodeInvalidInput, Message: err.Error()}
}
