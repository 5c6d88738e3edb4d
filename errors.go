package arith

import "strconv"

// SyntaxError is an error indicating a token sequence that does not match
// the expression grammar: a missing operand, unbalanced brackets, trailing
// tokens after a complete expression, or empty input. It implements
// InputError.
type SyntaxError struct {
	// Col is the 0-based byte offset of the token that caused the error.
	Col int
	// Expected describes the kind of token the parser wanted.
	Expected string
	// Found describes the token actually scanned.
	Found string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "expected "+err.Expected+", found "+err.Found)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division whose right
// operand evaluated to zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the 0-based byte offset of the offending / operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 0-based byte offset of
	// the character or token that caused it.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
