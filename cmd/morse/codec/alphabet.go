package codec

import (
	"fmt"

	"github.com/samber/lo"
)

// Entry pairs a character with its Morse letter.
type Entry struct {
	Char   byte
	Letter Letter
}

var alphabet = []Entry{
	// letters
	{'A', Empty().Dot().Dash()},
	{'B', Empty().Dash().Dot().Dot().Dot()},
	{'C', Empty().Dash().Dot().Dash().Dot()},
	{'D', Empty().Dash().Dot().Dot()},
	{'E', Empty().Dot()},
	{'F', Empty().Dot().Dot().Dash().Dot()},
	{'G', Empty().Dash().Dash().Dot()},
	{'H', Empty().Dot().Dot().Dot().Dot()},
	{'I', Empty().Dot().Dot()},
	{'J', Empty().Dot().Dash().Dash().Dash()},
	{'K', Empty().Dash().Dot().Dash()},
	{'L', Empty().Dot().Dash().Dot().Dot()},
	{'M', Empty().Dash().Dash()},
	{'N', Empty().Dash().Dot()},
	{'O', Empty().Dash().Dash().Dash()},
	{'P', Empty().Dot().Dash().Dash().Dot()},
	{'Q', Empty().Dash().Dash().Dot().Dash()},
	{'R', Empty().Dot().Dash().Dot()},
	{'S', Empty().Dot().Dot().Dot()},
	{'T', Empty().Dash()},
	{'U', Empty().Dot().Dot().Dash()},
	{'V', Empty().Dot().Dot().Dot().Dash()},
	{'W', Empty().Dot().Dash().Dash()},
	{'X', Empty().Dash().Dot().Dot().Dash()},
	{'Y', Empty().Dash().Dot().Dash().Dash()},
	{'Z', Empty().Dash().Dash().Dot().Dot()},

	// digits
	{'1', Empty().Dot().Dash().Dash().Dash().Dash()},
	{'2', Empty().Dot().Dot().Dash().Dash().Dash()},
	{'3', Empty().Dot().Dot().Dot().Dash().Dash()},
	{'4', Empty().Dot().Dot().Dot().Dot().Dash()},
	{'5', Empty().Dot().Dot().Dot().Dot().Dot()},
	{'6', Empty().Dash().Dot().Dot().Dot().Dot()},
	{'7', Empty().Dash().Dash().Dot().Dot().Dot()},
	{'8', Empty().Dash().Dash().Dash().Dot().Dot()},
	{'9', Empty().Dash().Dash().Dash().Dash().Dot()},
	{'0', Empty().Dash().Dash().Dash().Dash().Dash()},
}

var (
	byChar   map[byte]Letter
	byLetter map[Letter]byte
)

func init() {
	byChar = lo.SliceToMap(alphabet, func(e Entry) (byte, Letter) {
		return e.Char, e.Letter
	})
	byLetter = lo.Invert(byChar)

	if len(byChar) != len(alphabet) || len(byLetter) != len(alphabet) {
		panic(fmt.Sprintf("morse alphabet is not a bijection: %d entries, %d chars, %d letters",
			len(alphabet), len(byChar), len(byLetter)))
	}
}

// Alphabet returns a copy of the alphabet in table order.
func Alphabet() []Entry {
	return append([]Entry(nil), alphabet...)
}

// LookupChar returns the letter for an uppercase ASCII letter or digit.
func LookupChar(b byte) (Letter, bool) {
	l, ok := byChar[b]
	return l, ok
}

// LookupLetter returns the character a letter encodes.
func LookupLetter(l Letter) (byte, bool) {
	b, ok := byLetter[l]
	return b, ok
}
