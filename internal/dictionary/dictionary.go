// Package dictionary builds the word to Morse code mapping from a word list.
package dictionary

import (
	"sort"
	"strings"

	"github.com/at-ishikawa/smorse/internal/morse"
)

// Dictionary maps each word of a word list to its Morse code.
// It is never modified after Build returns.
type Dictionary struct {
	codes map[string]string
	// words is sorted so that every scan over the dictionary is reproducible
	words []string
}

type buildConfig struct {
	skipBlankLines bool
}

// BuildOption configures how a word list is turned into a Dictionary.
type BuildOption func(*buildConfig)

// WithSkipBlankLines drops empty lines instead of storing them as an empty word.
func WithSkipBlankLines(skip bool) BuildOption {
	return func(cfg *buildConfig) {
		cfg.skipBlankLines = skip
	}
}

// Build splits source on newlines and encodes every line.
// A trailing newline yields an entry for the empty word unless WithSkipBlankLines is set.
// If a word appears more than once, the last occurrence wins.
func Build(source string, opts ...BuildOption) *Dictionary {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	lines := strings.Split(source, "\n")
	codes := make(map[string]string, len(lines))
	for _, line := range lines {
		word := strings.TrimSuffix(line, "\r")
		if cfg.skipBlankLines && word == "" {
			continue
		}
		codes[word] = morse.Encode(word)
	}

	words := make([]string, 0, len(codes))
	for word := range codes {
		words = append(words, word)
	}
	sort.Strings(words)

	return &Dictionary{
		codes: codes,
		words: words,
	}
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Lookup returns the code of a word as it appeared in the word list.
func (d *Dictionary) Lookup(word string) (string, bool) {
	code, ok := d.codes[word]
	return code, ok
}

// Entries returns all entries ordered by word.
func (d *Dictionary) Entries() []Entry {
	entries := make([]Entry, 0, len(d.words))
	for _, word := range d.words {
		entries = append(entries, Entry{
			Word: word,
			Code: d.codes[word],
		})
	}
	return entries
}

// Codes returns the codes of all entries ordered by word.
func (d *Dictionary) Codes() []string {
	codes := make([]string, 0, len(d.words))
	for _, word := range d.words {
		codes = append(codes, d.codes[word])
	}
	return codes
}
