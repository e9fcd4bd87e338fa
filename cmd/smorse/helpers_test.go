package main

import (
	"testing"

	"github.com/at-ishikawa/smorse/internal/config"
	"github.com/at-ishikawa/smorse/internal/testutil"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useConfigFile points the global config flag at path until the test ends.
func useConfigFile(t *testing.T, path string) {
	t.Helper()

	oldConfigFile := configFile
	configFile = path
	t.Cleanup(func() { configFile = oldConfigFile })
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	useConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	flags := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	flags.Int("dash-run", 15, "")
	require.NoError(t, flags.Parse([]string{"--dash-run", "9"}))

	cfg, err := loadConfig(flags, map[string]string{"dash-run": "analysis.dash_run_length"}, config.AnalyzeFields)
	require.NoError(t, err)
	assert.True(t, cfg.WordList.SkipBlankLines)
	assert.Equal(t, 9, cfg.Analysis.DashRunLength)
	assert.Equal(t, 21, cfg.Analysis.BalancedWordLength)
}

func TestLoadConfig_UnknownFlag(t *testing.T) {
	useConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))

	flags := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	cfg, err := loadConfig(flags, map[string]string{"dash-run": "analysis.dash_run_length"}, config.AnalyzeFields)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to bind --dash-run")
}

func TestLoadConfig_Broken(t *testing.T) {
	useConfigFile(t, testutil.SetupBrokenConfig(t, t.TempDir()))

	cfg, err := loadConfig(pflag.NewFlagSet("analyze", pflag.ContinueOnError), nil, config.AnalyzeFields)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
