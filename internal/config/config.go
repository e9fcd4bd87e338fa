package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultWordListURL = "https://raw.githubusercontent.com/dolph/dictionary/master/enable1.txt"

// Fields each command depends on, in the namespaces accepted by LoadFields.
var (
	AnalyzeFields = []string{
		"WordList.Path",
		"Analysis.DashRunLength",
		"Analysis.BalancedWordLength",
		"Analysis.PalindromeWordLength",
		"Templates.ReportTemplate",
	}
	DownloadFields = []string{
		"WordList.Path",
		"WordList.URL",
		"WordList.RetryAttempts",
		"WordList.TimeoutSeconds",
	}
)

type Config struct {
	WordList  WordListConfig  `mapstructure:"wordlist"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type WordListConfig struct {
	Path           string `mapstructure:"path" validate:"required"`
	SkipBlankLines bool   `mapstructure:"skip_blank_lines"`
	URL            string `mapstructure:"url" validate:"omitempty,url"`
	RetryAttempts  uint   `mapstructure:"retry_attempts" validate:"max=10"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
}

type AnalysisConfig struct {
	DashRunLength        int `mapstructure:"dash_run_length" validate:"min=1"`
	BalancedWordLength   int `mapstructure:"balanced_word_length" validate:"min=1"`
	PalindromeWordLength int `mapstructure:"palindrome_word_length" validate:"min=1"`
}

type TemplatesConfig struct {
	ReportTemplate string `mapstructure:"report_template" validate:"omitempty,template_file"`
}

type OutputsConfig struct {
	ReportDirectory string `mapstructure:"report_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/smorse")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// BindFlag makes a changed command line flag take precedence over key.
func (loader *ConfigLoader) BindFlag(key string, flag *pflag.Flag) error {
	if err := loader.viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("viper.BindPFlag(%s) > %w", key, err)
	}
	return nil
}

// Load reads and validates the whole configuration.
func (loader *ConfigLoader) Load() (*Config, error) {
	return loader.load(nil)
}

// LoadFields reads the configuration but only validates the given fields, e.g. "Analysis.DashRunLength".
func (loader *ConfigLoader) LoadFields(fields ...string) (*Config, error) {
	return loader.load(fields)
}

func (loader *ConfigLoader) load(fields []string) (*Config, error) {
	v := loader.viper

	v.SetDefault("wordlist.path", filepath.Join("data", "enable1.txt"))
	v.SetDefault("wordlist.skip_blank_lines", false)
	v.SetDefault("wordlist.url", DefaultWordListURL)
	v.SetDefault("wordlist.retry_attempts", 3)
	v.SetDefault("wordlist.timeout_seconds", 30)
	v.SetDefault("analysis.dash_run_length", 15)
	v.SetDefault("analysis.balanced_word_length", 21)
	v.SetDefault("analysis.palindrome_word_length", 13)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.report_template", "")
	v.SetDefault("outputs.report_directory", "outputs")

	if err := v.BindEnv("wordlist.path", "SMORSE_WORDLIST"); err != nil {
		return nil, fmt.Errorf("failed to bind SMORSE_WORDLIST environment variable: %w", err)
	}
	if err := v.BindEnv("wordlist.url", "SMORSE_WORDLIST_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind SMORSE_WORDLIST_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	var err error
	if fields == nil {
		err = loader.validator.Struct(cfg)
	} else {
		err = loader.validator.StructPartial(cfg, fields...)
	}
	if err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
