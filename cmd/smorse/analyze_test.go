package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/smorse/internal/testutil"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalyzeCommand(t *testing.T) {
	cmd := newAnalyzeCommand()

	assert.Equal(t, "analyze", cmd.Use)
	assert.Equal(t, "Show statistics about the Morse codes of a word list", cmd.Short)
	assert.NotNil(t, cmd.RunE)

	flags := map[string]string{
		"wordlist":          "",
		"dash-run":          "15",
		"balanced-length":   "21",
		"palindrome-length": "13",
		"format":            "text",
		"output":            "",
	}
	for name, defValue := range flags {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, defValue, flag.DefValue, name)
	}
}

func TestNewAnalyzeCommand_RunE(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name           string
		args           func(tmpDir string) []string
		wantContains   []string
		wantErr        string
		wantOutputFile string
	}{
		{
			name: "uses the configured word list",
			args: func(tmpDir string) []string { return nil },
			wantContains: []string{
				" amount of '.': 136",
				" '-...-....-.--.' is the code for 4 words",
				" morse code of 'bottommost' contains 15 dashes",
				" perfectly balanced: 'counterdemonstrations'",
				" 13 letter word: 'intransigence' has a morse palindrome",
			},
		},
		{
			name: "flags override the config",
			args: func(tmpDir string) []string {
				return []string{"--dash-run", "14", "--palindrome-length", "12"}
			},
			wantContains: []string{
				" morse code of 'autotomous' contains 14 dashes",
				" 12 letter word: 'protectorate' has a morse palindrome",
			},
		},
		{
			name: "word list flag",
			args: func(tmpDir string) []string {
				dir := filepath.Join(tmpDir, "other")
				require.NoError(t, os.MkdirAll(dir, 0755))
				return []string{"--wordlist", testutil.WriteWordList(t, dir, "sos")}
			},
			wantContains: []string{
				" amount of '.': 6",
				" amount of '-': 3",
			},
		},
		{
			name: "yaml format",
			args: func(tmpDir string) []string { return []string{"--format", "yaml"} },
			wantContains: []string{
				"dash_run_length: 15",
				"word: bottommost",
			},
		},
		{
			name: "pdf format writes to the report directory",
			args: func(tmpDir string) []string { return []string{"--format", "pdf"} },
			wantContains: []string{
				"Report written to",
			},
			wantOutputFile: filepath.Join("outputs", "report.pdf"),
		},
		{
			name:    "invalid dash run",
			args:    func(tmpDir string) []string { return []string{"--dash-run", "0"} },
			wantErr: "dash_run_length must be 1 or greater",
		},
		{
			name:    "invalid balanced length",
			args:    func(tmpDir string) []string { return []string{"--balanced-length", "-1"} },
			wantErr: "balanced_word_length must be 1 or greater",
		},
		{
			name:    "invalid palindrome length",
			args:    func(tmpDir string) []string { return []string{"--palindrome-length", "0"} },
			wantErr: "palindrome_word_length must be 1 or greater",
		},
		{
			name:    "invalid format",
			args:    func(tmpDir string) []string { return []string{"--format", "json"} },
			wantErr: "invalid format",
		},
		{
			name: "missing word list",
			args: func(tmpDir string) []string {
				return []string{"--wordlist", filepath.Join(tmpDir, "missing.txt")}
			},
			wantErr: "failed to read word list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			useConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

			var buf bytes.Buffer
			cmd := newAnalyzeCommand()
			cmd.SetOut(&buf)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args(tmpDir))

			err := cmd.Execute()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
			if tt.wantOutputFile != "" {
				assert.FileExists(t, filepath.Join(tmpDir, tt.wantOutputFile))
			}
		})
	}
}

func TestNewAnalyzeCommand_RunE_InvalidConfig(t *testing.T) {
	useConfigFile(t, testutil.SetupBrokenConfig(t, t.TempDir()))

	cmd := newAnalyzeCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewAnalyzeCommand_RunE_FlagsApplyBeforeValidation(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tmpDir := t.TempDir()
	wordListPath := testutil.WriteWordList(t, tmpDir, testutil.ChallengeWords...)
	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(`wordlist:
  path: `+wordListPath+`
  skip_blank_lines: true
  timeout_seconds: 0
  retry_attempts: 20
analysis:
  dash_run_length: 0
`), 0644))
	useConfigFile(t, configPath)

	var buf bytes.Buffer
	cmd := newAnalyzeCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dash-run", "15"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), " morse code of 'bottommost' contains 15 dashes")
}
