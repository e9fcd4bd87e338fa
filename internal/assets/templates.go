package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
)

const reportTemplateName = "report.md.go.tmpl"

//go:embed templates/report.md.go.tmpl
var fallbackReportTemplate string

// ReportTemplate is the data passed to the report template
type ReportTemplate struct {
	WordList             string
	Words                int
	Dots                 int
	Dashes               int
	MostFrequent         CodeCount
	DashRunLength        int
	DashRuns             []Match
	BalancedWordLength   int
	Balanced             []Match
	PalindromeWordLength int
	Palindromes          []Match
}

// CodeCount is a Morse code and how many words share it
type CodeCount struct {
	Code  string
	Count int
}

// Match is a word reported by one of the finders
type Match struct {
	Word string
	Code string
}

func parseReportTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, fallbackReportTemplate)
}

// WriteReport renders the markdown report using templatePath, or the embedded template if it cannot be used.
func WriteReport(output io.Writer, templatePath string, data ReportTemplate) error {
	tmpl, err := parseReportTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("parseReportTemplate(%s) > %w", templatePath, err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute > %w", err)
	}
	return nil
}

func parseTemplateWithFallback(templatePath string, fallbackTemplate string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(reportTemplateName).Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}

	return tmpl, nil
}
