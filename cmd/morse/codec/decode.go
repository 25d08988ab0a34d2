package codec

import (
	"strings"
	"unicode/utf8"
)

// maxTokenLen is the longest legal run of one character, the word separator.
const maxTokenLen = wordGapLen

type token struct {
	text   string
	offset int
}

// tokenizer splits its input into runs of a repeated rune.
type tokenizer struct {
	input string
	pos   int
}

func (t *tokenizer) done() bool {
	return t.pos >= len(t.input)
}

// next returns the next run, capped at maxTokenLen runes. ok is false at end of input.
func (t *tokenizer) next() (tok token, ok bool, err error) {
	if t.done() {
		return token{offset: t.pos}, false, nil
	}

	start := t.pos
	first, size := utf8.DecodeRuneInString(t.input[start:])
	end := start + size
	for n := 1; n < maxTokenLen && end < len(t.input); n++ {
		r, size := utf8.DecodeRuneInString(t.input[end:])
		if r != first {
			break
		}
		end += size
	}
	t.pos = end
	tok = token{text: t.input[start:end], offset: start}

	if r, _ := utf8.DecodeRuneInString(t.input[end:]); end < len(t.input) && r == first {
		return tok, true, &DecodeError{Offset: start, Token: tok.text, Err: ErrUnknownSymbol}
	}
	return tok, true, nil
}

type decodeState int

const (
	readingSymbol decodeState = iota
	readingGap
	decodeDone
)

// Decode converts a spaced glyph stream back into text. ASCII and Unicode glyphs may be
// mixed. An empty input decodes to the empty string.
func Decode(input string) (string, error) {
	tz := &tokenizer{input: input}
	if tz.done() {
		return "", nil
	}

	var out strings.Builder
	current := Empty()
	letterStart := 0

	emit := func() error {
		b, ok := LookupLetter(current)
		if !ok {
			return &DecodeError{Offset: letterStart, Err: &UnknownMorseError{Letter: current}}
		}
		out.WriteByte(b)
		current = Empty()
		return nil
	}

	state := readingSymbol
	for state != decodeDone {
		tok, ok, err := tz.next()
		if err != nil {
			return "", err
		}

		switch state {
		case readingSymbol:
			if !ok {
				return "", &DecodeError{Offset: tok.offset, Err: ErrUnexpectedEOF}
			}
			var s Symbol
			switch tok.text {
			case ASCIIDot, UnicodeDot:
				s = Dot
			case ASCIIDash, UnicodeDash:
				s = Dash
			default:
				return "", &DecodeError{Offset: tok.offset, Token: tok.text, Err: ErrUnexpectedToken}
			}
			if current.Len() == 0 {
				letterStart = tok.offset
			}
			if current, err = current.TryWith(s); err != nil {
				return "", &DecodeError{Offset: tok.offset, Token: tok.text, Err: err}
			}
			state = readingGap

		case readingGap:
			if !ok {
				if err := emit(); err != nil {
					return "", err
				}
				out.WriteByte(Separator)
				state = decodeDone
				continue
			}
			switch tok.text {
			case " ":
			case "   ":
				if err := emit(); err != nil {
					return "", err
				}
			case "       ":
				if err := emit(); err != nil {
					return "", err
				}
				out.WriteByte(Separator)
			default:
				return "", &DecodeError{Offset: tok.offset, Token: tok.text, Err: ErrUnexpectedToken}
			}
			state = readingSymbol
		}
	}

	return strings.TrimSuffix(out.String(), string(Separator)), nil
}
