package codec

import (
	"errors"
	"slices"
	"testing"
)

func TestLetter_Empty(t *testing.T) {
	l := Empty()
	if l.Len() != 0 {
		t.Errorf("Expected empty letter, got length %d", l.Len())
	}
	if l != (Letter{}) {
		t.Errorf("Expected Empty() to equal the zero value")
	}
	if got := slices.Collect(l.Symbols()); len(got) != 0 {
		t.Errorf("Expected no symbols, got %v", got)
	}
}

func TestLetter_SymbolsInTransmissionOrder(t *testing.T) {
	l := Empty().Dash().Dot().Dash().Dash()
	expected := []Symbol{Dash, Dot, Dash, Dash}

	got := slices.Collect(l.Symbols())
	if !slices.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// the sequence is restartable
	again := slices.Collect(l.Symbols())
	if !slices.Equal(again, expected) {
		t.Errorf("Second iteration: expected %v, got %v", expected, again)
	}
}

func TestLetter_WithDoesNotMutate(t *testing.T) {
	base := Empty().Dot()
	a := base.Dash()
	b := base.Dot()

	if base.String() != "." {
		t.Errorf("Expected base to stay %q, got %q", ".", base.String())
	}
	if a.String() != ".-" || b.String() != ".." {
		t.Errorf("Expected .- and .., got %s and %s", a, b)
	}
}

func TestLetter_Equality(t *testing.T) {
	tests := []struct {
		a, b  Letter
		equal bool
	}{
		{Empty().Dot(), Empty().Dot(), true},
		{Empty().Dot(), Empty().Dash(), false},
		{Empty().Dot(), Empty().Dot().Dot(), false},
		// same bits, different length
		{Empty(), Empty().Dot(), false},
		{Empty().Dash().Dot(), Empty().Dash().Dot(), true},
	}

	for _, tt := range tests {
		if (tt.a == tt.b) != tt.equal {
			t.Errorf("%q == %q: expected %v", tt.a, tt.b, tt.equal)
		}
	}
}

func TestLetter_Overflow(t *testing.T) {
	l := Empty()
	for i := 0; i < MaxLetterLen; i++ {
		l = l.Dash()
	}
	if l.Len() != MaxLetterLen {
		t.Fatalf("Expected length %d, got %d", MaxLetterLen, l.Len())
	}

	if _, err := l.TryWith(Dot); !errors.Is(err, ErrLetterOverflow) {
		t.Errorf("Expected ErrLetterOverflow, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Expected With to panic on a full letter")
		}
	}()
	l.Dot()
}

func TestLetter_SymbolsStopsEarly(t *testing.T) {
	l := Empty().Dot().Dot().Dot()
	count := 0
	for range l.Symbols() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("Expected to stop after 2 symbols, got %d", count)
	}
}
