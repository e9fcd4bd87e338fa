package dictionary

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"
)

var ErrInvalidEncoding = errors.New("word list is not valid UTF-8 text")

// FileReadError is returned when a word list cannot be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read word list %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// Load reads a word list file and builds a Dictionary from it.
func Load(path string, opts ...BuildOption) (*Dictionary, error) {
	contents, err := readFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	dictionary := Build(contents, opts...)
	slog.Default().Debug("loaded a word list",
		slog.String("path", path),
		slog.Int("entries", dictionary.Len()),
	)
	return dictionary, nil
}

func readFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("io.ReadAll > %w", err)
	}
	if !utf8.Valid(contents) {
		return "", ErrInvalidEncoding
	}
	return string(contents), nil
}
