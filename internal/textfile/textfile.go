// Package textfile reads and writes UTF-8 text documents.
package textfile

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Read returns the contents of path. Content that is not valid UTF-8 is
// rejected with ErrInvalidEncoding rather than being silently repaired.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}

// Write replaces the contents of path with text.
func Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
