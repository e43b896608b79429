package parser

import (
	"fmt"

	"github.com/go-stack/stack"

	"github.com/WilkinsonK/vixen/internal/token"
)

// Every hard error the parser can raise carries {line, column, file,
// symbol_bytes} per spec.md section 7. The three named categories below
// are idiomatic Go error types rather than the packed integer error
// codes yapl-1/error.go uses (ERR_LEX/ERR_PARSE/ERR_SYM/ERR_INT) — that
// scheme made sense for a self-hosting compiler with no struct support
// yet; Go has no such constraint, so each category gets its own type.

// UnknownNameError reports a NameGeneric token in a position where a
// recognized construct was required. No production of the current
// grammar returns it: parsePrimary accepts every NameGeneric token.
type UnknownNameError struct {
	Token token.Token
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("%s:%d:%d: unknown name %q", e.Token.File, e.Token.Line, e.Token.Column, e.Token.Symbol)
}

// UnsupportedError reports a token whose type cannot start or continue
// the production currently being parsed.
type UnsupportedError struct {
	Token token.Token
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s:%d:%d: unexpected token %q (%s)", e.Token.File, e.Token.Line, e.Token.Column, e.Token.Symbol, e.Token.Type)
}

// UnexpectedTypeError reports an expect(T) call that received a
// different token type.
type UnexpectedTypeError struct {
	Token    token.Token
	Expected token.Type
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("%s:%d:%d: expected %s, got %s %q",
		e.Token.File, e.Token.Line, e.Token.Column, e.Expected, e.Token.Type, e.Token.Symbol)
}

// InternalError wraps a parser invariant violation (never an ordinary
// syntax error) with the call stack at the point of detection, grounded
// on yapl-1/error.go's ERR_INT category — reimplemented here as a real
// Go error carrying a real stack trace instead of a reserved integer
// range.
type InternalError struct {
	Token token.Token
	Cause error
	Stack stack.CallStack
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s:%d:%d: internal parser error: %v\n%+v",
		e.Token.File, e.Token.Line, e.Token.Column, e.Cause, e.Stack)
}

func (e *InternalError) Unwrap() error { return e.Cause }

func newInternalError(tok token.Token, cause error) *InternalError {
	return &InternalError{Token: tok, Cause: cause, Stack: stack.Trace().TrimRuntime()}
}
