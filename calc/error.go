package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrTrailingInput    = errors.New("trailing input")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrMissingValue     = errors.New("integer token without value")
)

// Positional is implemented by all evaluation errors.
type Positional interface {
	error
	Position() int
}

type InvalidCharacterError struct {
	Char rune
	Pos  int
}

var _ Positional = new(InvalidCharacterError)

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q at %d", ErrInvalidCharacter, e.Char, e.Pos)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

func (e *InvalidCharacterError) Position() int {
	return e.Pos
}

type UnexpectedTokenError struct {
	Expected []TokenKind
	Found    Token
}

var _ Positional = new(UnexpectedTokenError)

func (e *UnexpectedTokenError) Error() string {
	expected := lo.Map(e.Expected, func(kind TokenKind, _ int) string {
		return kind.String()
	})
	return fmt.Sprintf("%s: expected %s, found %s at %d",
		ErrUnexpectedToken,
		strings.Join(expected, " or "),
		e.Found.Kind,
		e.Found.Pos,
	)
}

func (e *UnexpectedTokenError) Is(target error) bool {
	return target == ErrUnexpectedToken
}

func (e *UnexpectedTokenError) Position() int {
	return e.Found.Pos
}

type TrailingInputError struct {
	Found Token
}

var _ Positional = new(TrailingInputError)

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("%s: %s at %d", ErrTrailingInput, e.Found.Kind, e.Found.Pos)
}

func (e *TrailingInputError) Is(target error) bool {
	return target == ErrTrailingInput
}

func (e *TrailingInputError) Position() int {
	return e.Found.Pos
}

type DivisionByZeroError struct {
	// Pos is the position of the / operator
	Pos int
}

var _ Positional = new(DivisionByZeroError)

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s at %d", ErrDivisionByZero, e.Pos)
}

func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

func (e *DivisionByZeroError) Position() int {
	return e.Pos
}

// PosError renders a positional error with the offending source line and a caret.
type PosError struct {
	Err    Positional
	Source string
}

func (p PosError) Error() string {
	var sb strings.Builder
	sb.WriteString(p.Err.Error())
	sb.WriteString("\n")

	// the source is a single line; newlines are only whitespace to the scanner
	line := strings.ReplaceAll(p.Source, "\n", " ")
	sb.WriteString(line)
	sb.WriteString("\n")

	// caret
	col := p.Err.Position()
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
	}
	sb.WriteString("^")

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

// WithSource attaches the source text to a positional error. Other errors are returned as is.
func WithSource(err error, source string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	var positional Positional
	if !errors.As(err, &positional) {
		return err
	}
	return PosError{
		Err:    positional,
		Source: source,
	}
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
