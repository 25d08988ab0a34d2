package common

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenInput_Stdin(t *testing.T) {
	stdin := strings.NewReader("hello")
	for _, path := range []string{"", "-"} {
		r, closeFn, err := OpenInput(path, stdin)
		if err != nil {
			t.Fatalf("OpenInput(%q) returned error: %v", path, err)
		}
		if r != stdin {
			t.Errorf("OpenInput(%q) did not return stdin", path)
		}
		if err := closeFn(); err != nil {
			t.Errorf("Unexpected close error: %v", err)
		}
	}
}

func TestOpenInput_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	r, closeFn, err := OpenInput(file, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer closeFn()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content" {
		t.Errorf("Expected %q, got %q", "content", data)
	}
}

func TestOpenInput_Missing(t *testing.T) {
	_, _, err := OpenInput(filepath.Join(t.TempDir(), "missing.txt"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestForEachLine(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"a\nb\nc\n", []string{"a", "b", "c"}},
		{"a\r\nb", []string{"a", "b"}},
		{"\n\n", []string{"", ""}},
		{"", nil},
	}

	for _, tt := range tests {
		var got []string
		err := ForEachLine(strings.NewReader(tt.input), func(line string) error {
			got = append(got, line)
			return nil
		})
		if err != nil {
			t.Errorf("ForEachLine(%q) returned error: %v", tt.input, err)
			continue
		}
		if strings.Join(got, "|") != strings.Join(tt.expected, "|") || len(got) != len(tt.expected) {
			t.Errorf("ForEachLine(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestForEachLine_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := ForEachLine(strings.NewReader("a\nb\nc\n"), func(line string) error {
		calls++
		if line == "b" {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Errorf("Expected the callback error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}
}

func TestErrorText_NotTerminal(t *testing.T) {
	var buf bytes.Buffer
	if got := ErrorText(&buf, "error: boom"); got != "error: boom" {
		t.Errorf("Expected plain text for a non-terminal writer, got %q", got)
	}
	if IsTerminal(&buf) {
		t.Errorf("Expected a buffer not to be a terminal")
	}
}
