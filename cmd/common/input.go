package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// OpenInput opens path for reading, or returns stdin for "" and "-".
// The returned close function is always safe to call.
func OpenInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open '%s' for reading: %w", path, err)
	}
	return f, f.Close, nil
}

// ForEachLine calls fn for every line of r without its line terminator. It stops at the
// first error returned by fn and returns it unchanged.
func ForEachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return nil
}
