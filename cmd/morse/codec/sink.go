package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	ASCIIDot     = "."
	ASCIIDash    = "---"
	UnicodeDot   = "●"
	UnicodeDash  = "▆▆▆"
	Separator    = ' '
	letterGapLen = 3
	wordGapLen   = 7
)

// Sink receives the elements of an encoded stream.
type Sink interface {
	Dash()
	Dot()
	Space()
	// Pop removes the most recently emitted unit.
	Pop()
}

// Encoding selects the glyphs a TextSink writes.
type Encoding int

const (
	ASCII Encoding = iota
	Unicode
)

func (e Encoding) String() string {
	switch e {
	case ASCII:
		return "ascii"
	case Unicode:
		return "unicode"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding accepts "ascii", "unicode" and their one-letter forms.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "a", "ascii":
		return ASCII, nil
	case "u", "unicode":
		return Unicode, nil
	default:
		return ASCII, fmt.Errorf("unrecognized encoding %q", s)
	}
}

func (e Encoding) glyphs() (dot, dash string) {
	if e == Unicode {
		return UnicodeDot, UnicodeDash
	}
	return ASCIIDot, ASCIIDash
}

// TextSink renders an encoded stream as text.
type TextSink struct {
	dot  string
	dash string
	buf  []byte
}

func NewTextSink(enc Encoding) *TextSink {
	dot, dash := enc.glyphs()
	return &TextSink{dot: dot, dash: dash}
}

func (t *TextSink) Dash()  { t.buf = append(t.buf, t.dash...) }
func (t *TextSink) Dot()   { t.buf = append(t.buf, t.dot...) }
func (t *TextSink) Space() { t.buf = append(t.buf, Separator) }

// Pop removes the last character written. Multi-byte glyphs are removed whole.
func (t *TextSink) Pop() {
	if len(t.buf) == 0 {
		return
	}
	_, size := utf8.DecodeLastRune(t.buf)
	t.buf = t.buf[:len(t.buf)-size]
}

func (t *TextSink) String() string {
	return string(t.buf)
}

func (t *TextSink) Reset() {
	t.buf = t.buf[:0]
}
