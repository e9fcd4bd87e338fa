// Package testutil provides shared test helpers for creating config files and word list fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ChallengeWords are words from the enable1 list that answer each analysis with the default lengths.
var ChallengeWords = []string{
	"needing",
	"nervate",
	"niding",
	"tiling",
	"autotomous",
	"bottommost",
	"counterdemonstrations",
	"overcommercialization",
	"protectorate",
	"intransigence",
	"sos",
}

// WriteWordList writes words as a newline terminated word list and returns its path.
func WriteWordList(t *testing.T, dir string, words ...string) string {
	t.Helper()

	path := filepath.Join(dir, "words.txt")
	contents := strings.Join(words, "\n")
	if len(words) > 0 {
		contents += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// SetupTestConfig creates a word list with ChallengeWords and a config file pointing to it.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "outputs"), 0755))
	wordListPath := WriteWordList(t, tmpDir, ChallengeWords...)

	configContent := fmt.Sprintf(`wordlist:
  path: %s
  skip_blank_lines: true
analysis:
  dash_run_length: 15
  balanced_word_length: 21
  palindrome_word_length: 13
outputs:
  report_directory: %s
`,
		wordListPath,
		filepath.Join(tmpDir, "outputs"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupBrokenConfig creates a config file that cannot be parsed.
func SetupBrokenConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("wordlist:\n  path: [[[\n"), 0644))
	return cfgPath
}
