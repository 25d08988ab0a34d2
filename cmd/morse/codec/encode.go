package codec

import (
	"strings"
	"unicode"
)

// Encode writes text to sink as Morse elements.
//
// Within a letter every symbol is followed by one space unit. Letters are separated by
// three units and words by seven. There is no leading or trailing separator.
// If any character of text cannot be encoded nothing is written and an
// *UnsupportedCharError is returned.
func Encode(sink Sink, text string) error {
	words, err := lookupWords(text)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}

	for _, word := range words {
		for _, letter := range word {
			for s := range letter.Symbols() {
				if s == Dash {
					sink.Dash()
				} else {
					sink.Dot()
				}
				sink.Space()
			}
			// one unit of the letter gap came with the last symbol
			for range letterGapLen - 1 {
				sink.Space()
			}
		}
		for range wordGapLen - letterGapLen {
			sink.Space()
		}
	}

	for range wordGapLen {
		sink.Pop()
	}
	return nil
}

// EncodeString encodes text with the glyphs of enc.
func EncodeString(text string, enc Encoding) (string, error) {
	sink := NewTextSink(enc)
	if err := Encode(sink, text); err != nil {
		return "", err
	}
	return sink.String(), nil
}

func lookupWords(text string) ([][]Letter, error) {
	var words [][]Letter
	pos := 0
	for len(text) > 0 {
		start := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
		if start < 0 {
			break
		}
		end := strings.IndexFunc(text[start:], unicode.IsSpace)
		if end < 0 {
			end = len(text) - start
		}
		word := text[start : start+end]

		letters := make([]Letter, 0, len(word))
		for i := 0; i < len(word); i++ {
			l, ok := LookupChar(toUpper(word[i]))
			if !ok {
				return nil, &UnsupportedCharError{Char: word[i], Pos: pos + start + i}
			}
			letters = append(letters, l)
		}
		words = append(words, letters)

		pos += start + end
		text = text[start+end:]
	}
	return words, nil
}

func toUpper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
