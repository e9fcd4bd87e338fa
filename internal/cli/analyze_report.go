package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/at-ishikawa/smorse/internal/assets"
	"github.com/at-ishikawa/smorse/internal/dictionary"
	"github.com/at-ishikawa/smorse/internal/pdf"
	"github.com/at-ishikawa/smorse/internal/statistics"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type ReportFormat string

func (f *ReportFormat) Set(val string) error {
	for _, format := range AllReportFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f ReportFormat) String() string {
	return string(f)
}

func (f *ReportFormat) Type() string {
	return "format"
}

const (
	ReportFormatText     ReportFormat = "text"
	ReportFormatYAML     ReportFormat = "yaml"
	ReportFormatMarkdown ReportFormat = "markdown"
	ReportFormatPDF      ReportFormat = "pdf"
)

var (
	_                pflag.Value = (*ReportFormat)(nil)
	AllReportFormats             = []ReportFormat{ReportFormatText, ReportFormatYAML, ReportFormatMarkdown, ReportFormatPDF}
)

// AnalyzeOptions configures RunAnalyzeReport
type AnalyzeOptions struct {
	WordListPath   string
	SkipBlankLines bool
	Params         statistics.Params
	Format         ReportFormat
	// TemplatePath overrides the embedded markdown template
	TemplatePath string
	// OutputPath is where the report is written. Empty means the given writer, except for PDF reports.
	OutputPath string
}

// yamlReport is the document written by the yaml format
type yamlReport struct {
	WordList             string            `yaml:"word_list"`
	DashRunLength        int               `yaml:"dash_run_length"`
	BalancedWordLength   int               `yaml:"balanced_word_length"`
	PalindromeWordLength int               `yaml:"palindrome_word_length"`
	Result               statistics.Result `yaml:"result"`
}

// RunAnalyzeReport loads the word list and reports the result of all analyses
func RunAnalyzeReport(output io.Writer, opts AnalyzeOptions) error {
	d, err := dictionary.Load(opts.WordListPath, dictionary.WithSkipBlankLines(opts.SkipBlankLines))
	if err != nil {
		return fmt.Errorf("failed to load the word list: %w", err)
	}

	result := statistics.CalculateStatistics(d, opts.Params)

	if opts.Format == ReportFormatPDF {
		var markdown bytes.Buffer
		if err := writeMarkdownReport(&markdown, opts, result); err != nil {
			return err
		}
		pdfPath, err := pdf.RenderMarkdown(markdown.Bytes(), opts.OutputPath)
		if err != nil {
			return fmt.Errorf("pdf.RenderMarkdown > %w", err)
		}
		fmt.Fprintf(output, "Report written to %s\n", pdfPath)
		return nil
	}

	if opts.OutputPath == "" {
		return writeReport(output, opts, result, isTerminalOutput(output))
	}
	return writeReportFile(opts, result)
}

func writeReportFile(opts AnalyzeOptions, result statistics.Result) (err error) {
	if err := os.MkdirAll(filepath.Dir(opts.OutputPath), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(opts.OutputPath)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", opts.OutputPath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("file.Close(%s) > %w", opts.OutputPath, closeErr)
		}
	}()

	return writeReport(file, opts, result, false)
}

func writeReport(output io.Writer, opts AnalyzeOptions, result statistics.Result, colored bool) error {
	switch opts.Format {
	case ReportFormatYAML:
		return writeYAMLReport(output, opts, result)
	case ReportFormatMarkdown:
		return writeMarkdownReport(output, opts, result)
	case ReportFormatText:
		fallthrough
	default:
		if err := newTextReporter(output, colored).write(result); err != nil {
			return fmt.Errorf("failed to write the text report: %w", err)
		}
		return nil
	}
}

// isTerminalOutput reports whether color may be used for output.
// color decides by looking at stdout, so anything else is written plain.
func isTerminalOutput(output io.Writer) bool {
	return output == os.Stdout
}

func writeYAMLReport(output io.Writer, opts AnalyzeOptions, result statistics.Result) error {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	if err := encoder.Encode(yamlReport{
		WordList:             opts.WordListPath,
		DashRunLength:        result.Params.DashRunLength,
		BalancedWordLength:   result.Params.BalancedWordLength,
		PalindromeWordLength: result.Params.PalindromeWordLength,
		Result:               result,
	}); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close > %w", err)
	}
	return nil
}

func writeMarkdownReport(output io.Writer, opts AnalyzeOptions, result statistics.Result) error {
	data := assets.ReportTemplate{
		WordList: opts.WordListPath,
		Words:    result.Words,
		Dots:     result.Symbols.Dots,
		Dashes:   result.Symbols.Dashes,
		MostFrequent: assets.CodeCount{
			Code:  result.MostFrequent.Code,
			Count: result.MostFrequent.Count,
		},
		DashRunLength:        result.Params.DashRunLength,
		DashRuns:             toMatches(result.DashRuns),
		BalancedWordLength:   result.Params.BalancedWordLength,
		Balanced:             toMatches(result.Balanced),
		PalindromeWordLength: result.Params.PalindromeWordLength,
		Palindromes:          toMatches(result.Palindromes),
	}
	if err := assets.WriteReport(output, opts.TemplatePath, data); err != nil {
		return fmt.Errorf("assets.WriteReport > %w", err)
	}
	return nil
}

func toMatches(entries []dictionary.Entry) []assets.Match {
	matches := make([]assets.Match, 0, len(entries))
	for _, entry := range entries {
		matches = append(matches, assets.Match{
			Word: entry.Word,
			Code: entry.Code,
		})
	}
	return matches
}

type textReporter struct {
	output io.Writer
	bold   *color.Color
	green  *color.Color
	err    error
}

func newTextReporter(output io.Writer, colored bool) *textReporter {
	r := &textReporter{
		output: output,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
	}
	if !colored {
		r.bold.DisableColor()
		r.green.DisableColor()
	}
	return r
}

// printf keeps the first write error and skips the remaining writes.
func (r *textReporter) printf(c *color.Color, format string, args ...any) {
	if r.err != nil {
		return
	}
	if c != nil {
		_, r.err = c.Fprintf(r.output, format, args...)
		return
	}
	_, r.err = fmt.Fprintf(r.output, format, args...)
}

func (r *textReporter) write(result statistics.Result) error {
	r.printf(r.bold, "Dots and dashes:\n")
	r.printf(nil, " amount of '.': %d\n", result.Symbols.Dots)
	r.printf(nil, " amount of '-': %d\n", result.Symbols.Dashes)
	r.printf(nil, "\n")

	r.printf(r.bold, "Most frequent code:\n")
	r.printf(nil, " '%s' is the code for %s words\n",
		result.MostFrequent.Code,
		r.green.Sprint(result.MostFrequent.Count),
	)
	r.printf(nil, "\n")

	r.printf(r.bold, "Codes with %d dashes in a row:\n", result.Params.DashRunLength)
	for _, entry := range result.DashRuns {
		r.printf(nil, " morse code of '%s' contains %d dashes: '%s'\n",
			r.green.Sprint(entry.Word), result.Params.DashRunLength, entry.Code)
	}
	r.printf(nil, "\n")

	r.printf(r.bold, "Perfectly balanced %d letter words:\n", result.Params.BalancedWordLength)
	for _, entry := range result.Balanced {
		r.printf(nil, " perfectly balanced: '%s' ('%s')\n", r.green.Sprint(entry.Word), entry.Code)
	}
	r.printf(nil, "\n")

	r.printf(r.bold, "%d letter words with a palindrome code:\n", result.Params.PalindromeWordLength)
	for _, entry := range result.Palindromes {
		r.printf(nil, " %d letter word: '%s' has a morse palindrome: %s\n",
			result.Params.PalindromeWordLength, r.green.Sprint(entry.Word), entry.Code)
	}
	r.printf(nil, "\n")

	return r.err
}
