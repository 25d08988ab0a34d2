package codec

import (
	"iter"
	"strings"
)

// MaxLetterLen is the number of symbols a Letter can hold.
const MaxLetterLen = 8

// Symbol is a single Morse element.
type Symbol uint8

const (
	Dot Symbol = iota
	Dash
)

func (s Symbol) String() string {
	if s == Dash {
		return "-"
	}
	return "."
}

// Letter is a bit-packed sequence of up to MaxLetterLen symbols.
// Bit i holds symbol i in transmission order, 0 for a dot and 1 for a dash.
// The zero value is the empty letter. Letters are comparable and can be used as map keys.
type Letter struct {
	bits uint8
	len  uint8
}

// Empty returns a letter with no symbols.
func Empty() Letter {
	return Letter{}
}

// With returns a copy of l with s appended. It panics if l is already full.
func (l Letter) With(s Symbol) Letter {
	next, err := l.TryWith(s)
	if err != nil {
		panic(err)
	}
	return next
}

// TryWith is like With but reports overflow as ErrLetterOverflow.
func (l Letter) TryWith(s Symbol) (Letter, error) {
	if l.len >= MaxLetterLen {
		return l, ErrLetterOverflow
	}
	return Letter{
		bits: l.bits | uint8(s)<<l.len,
		len:  l.len + 1,
	}, nil
}

func (l Letter) Dot() Letter  { return l.With(Dot) }
func (l Letter) Dash() Letter { return l.With(Dash) }

func (l Letter) Len() int {
	return int(l.len)
}

// Symbols yields the symbols of l in transmission order. The sequence can be ranged over
// any number of times.
func (l Letter) Symbols() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		bits := l.bits
		for range l.len {
			if !yield(Symbol(bits & 1)) {
				return
			}
			bits >>= 1
		}
	}
}

// String renders l with '.' and '-', e.g. ".-" for A.
func (l Letter) String() string {
	var sb strings.Builder
	for s := range l.Symbols() {
		sb.WriteString(s.String())
	}
	return sb.String()
}
