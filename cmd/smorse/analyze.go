package main

import (
	"fmt"
	"path/filepath"

	"github.com/at-ishikawa/smorse/internal/cli"
	"github.com/at-ishikawa/smorse/internal/config"
	"github.com/at-ishikawa/smorse/internal/statistics"
	"github.com/spf13/cobra"
)

var analyzeFlagKeys = map[string]string{
	"wordlist":          "wordlist.path",
	"dash-run":          "analysis.dash_run_length",
	"balanced-length":   "analysis.balanced_word_length",
	"palindrome-length": "analysis.palindrome_word_length",
}

func newAnalyzeCommand() *cobra.Command {
	var outputPath string
	format := cli.ReportFormatText

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show statistics about the Morse codes of a word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), analyzeFlagKeys, config.AnalyzeFields)
			if err != nil {
				return err
			}
			if format == cli.ReportFormatPDF && outputPath == "" {
				outputPath = filepath.Join(cfg.Outputs.ReportDirectory, "report.pdf")
			}

			return cli.RunAnalyzeReport(cmd.OutOrStdout(), cli.AnalyzeOptions{
				WordListPath:   cfg.WordList.Path,
				SkipBlankLines: cfg.WordList.SkipBlankLines,
				Params: statistics.Params{
					DashRunLength:        cfg.Analysis.DashRunLength,
					BalancedWordLength:   cfg.Analysis.BalancedWordLength,
					PalindromeWordLength: cfg.Analysis.PalindromeWordLength,
				},
				Format:       format,
				TemplatePath: cfg.Templates.ReportTemplate,
				OutputPath:   outputPath,
			})
		},
	}

	flags := cmd.Flags()
	flags.String("wordlist", "", "Path to a newline-delimited word list (overrides wordlist.path)")
	flags.Int("dash-run", 15, "Number of consecutive dashes to look for (overrides analysis.dash_run_length)")
	flags.Int("balanced-length", 21, "Word length of perfectly balanced words (overrides analysis.balanced_word_length)")
	flags.Int("palindrome-length", 13, "Word length of words with a palindrome code (overrides analysis.palindrome_word_length)")
	flags.Var(&format, "format", fmt.Sprintf("Report format. Possible values are %v", cli.AllReportFormats))
	flags.StringVarP(&outputPath, "output", "o", "", "Write the report to this file instead of stdout")

	return cmd
}
