package codec

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestDecode_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{". . .   --- --- ---   . . .", "SOS"},
		{"● ● ●   ▆▆▆ ▆▆▆ ▆▆▆   ● ● ●", "SOS"},
		{". . .   ▆▆▆ --- ▆▆▆   ● . ●", "SOS"},
		{".       .", "E E"},
		{".", "E"},
		{"---", "T"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := Decode(tt.input)
		if err != nil {
			t.Errorf("Decode(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"two space gap", ".  .", ErrUnexpectedToken},
		{"four space gap", ".    .", ErrUnexpectedToken},
		{"five space gap", ".     .", ErrUnexpectedToken},
		{"six space gap", ".      .", ErrUnexpectedToken},
		{"eight space gap", ".        .", ErrUnknownSymbol},
		{"two dashes", "--", ErrUnexpectedToken},
		{"two dots", "..", ErrUnexpectedToken},
		{"leading space", " .", ErrUnexpectedToken},
		{"foreign character", "x", ErrUnexpectedToken},
		{"symbol where gap expected", ".x", ErrUnexpectedToken},
		{"long run", "........", ErrUnknownSymbol},
		{"trailing letter gap", ".   ", ErrUnexpectedEOF},
		{"trailing word gap", ".       ", ErrUnexpectedEOF},
		{"unknown pattern", ". --- . ---", ErrUnknownMorse},
		{"too many symbols", ". . . . . . . . .", ErrLetterOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("Expected no output on error, got %q", got)
			}
		})
	}
}

func TestDecode_ErrorDetails(t *testing.T) {
	_, err := Decode(". . .  .")
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("Expected *DecodeError, got %T", err)
	}
	if decErr.Token != "  " || decErr.Offset != 5 {
		t.Errorf("Expected token %q at 5, got %q at %d", "  ", decErr.Token, decErr.Offset)
	}

	_, err = Decode(".   . --- . ---")
	var morseErr *UnknownMorseError
	if !errors.As(err, &morseErr) {
		t.Fatalf("Expected *UnknownMorseError, got %T", err)
	}
	if morseErr.Letter.String() != ".-.-" {
		t.Errorf("Expected .-.-, got %s", morseErr.Letter)
	}
	if !strings.Contains(err.Error(), "unknown morse .-.-") {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	tests := []string{
		"SOS",
		"HELLO WORLD",
		"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
		"0123456789",
		"A B C",
		"E",
	}

	for _, enc := range []Encoding{ASCII, Unicode} {
		for _, input := range tests {
			encoded, err := EncodeString(input, enc)
			if err != nil {
				t.Errorf("EncodeString(%q, %v) returned error: %v", input, enc, err)
				continue
			}
			decoded, err := Decode(encoded)
			if err != nil {
				t.Errorf("Decode(%q) returned error: %v", encoded, err)
				continue
			}
			if decoded != input {
				t.Errorf("Round trip of %q via %v gave %q", input, enc, decoded)
			}
		}
	}
}

func TestDecode_RoundTripRandom(t *testing.T) {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		words := make([]string, 1+rng.IntN(5))
		for w := range words {
			b := make([]byte, 1+rng.IntN(8))
			for j := range b {
				b[j] = chars[rng.IntN(len(chars))]
			}
			words[w] = string(b)
		}
		input := strings.Join(words, " ")

		encoded, err := EncodeString(input, ASCII)
		if err != nil {
			t.Fatalf("EncodeString(%q) returned error: %v", input, err)
		}
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q) returned error: %v", encoded, err)
		}
		if decoded != input {
			t.Fatalf("Round trip of %q gave %q", input, decoded)
		}
	}
}

func TestTokenizer_Runs(t *testing.T) {
	tz := &tokenizer{input: "●●   .---"}
	expected := []string{"●●", "   ", ".", "---"}

	for _, want := range expected {
		tok, ok, err := tz.next()
		if err != nil || !ok {
			t.Fatalf("next() = %q, %v, %v; want %q", tok.text, ok, err, want)
		}
		if tok.text != want {
			t.Errorf("Expected token %q, got %q", want, tok.text)
		}
	}
	if _, ok, _ := tz.next(); ok {
		t.Errorf("Expected end of input")
	}
}
