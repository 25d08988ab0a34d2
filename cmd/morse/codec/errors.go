package codec

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedChar = errors.New("unsupported character")
	ErrUnknownSymbol   = errors.New("unknown symbol")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnknownMorse    = errors.New("unknown morse")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrLetterOverflow  = errors.New("too many symbols in letter")
)

// UnsupportedCharError reports a byte of the input that has no Morse representation.
type UnsupportedCharError struct {
	Char byte
	Pos  int
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("%v %q at position %d", ErrUnsupportedChar, e.Char, e.Pos)
}

func (e *UnsupportedCharError) Unwrap() error {
	return ErrUnsupportedChar
}

// DecodeError wraps a decoding failure with the offending token and its byte offset
// in the input.
type DecodeError struct {
	Offset int
	Token  string
	Err    error
}

func (e *DecodeError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnexpectedEOF):
		return e.Err.Error()
	case e.Token == "":
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	default:
		return fmt.Sprintf("%v %q at offset %d", e.Err, e.Token, e.Offset)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnknownMorseError reports a complete letter that is not part of the alphabet.
type UnknownMorseError struct {
	Letter Letter
}

func (e *UnknownMorseError) Error() string {
	return fmt.Sprintf("%v %s", ErrUnknownMorse, e.Letter)
}

func (e *UnknownMorseError) Unwrap() error {
	return ErrUnknownMorse
}
