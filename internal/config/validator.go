package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// templateFileTag marks settings that must name a template file on disk.
const templateFileTag = "template_file"

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()
	validate.RegisterTagNameFunc(configKeyName)

	trans, err := newEnglishTranslator(validate)
	if err != nil {
		return nil, nil, err
	}
	if err := registerTemplateFileRule(validate, trans); err != nil {
		return nil, nil, err
	}
	return validate, trans, nil
}

func newEnglishTranslator(validate *validator.Validate) (ut.Translator, error) {
	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator(locale.Locale())
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations > %w", err)
	}
	return trans, nil
}

// configKeyName reports fields by their YAML key so messages match what users write.
func configKeyName(field reflect.StructField) string {
	key, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
	if key == "-" {
		return ""
	}
	return key
}

func registerTemplateFileRule(validate *validator.Validate, trans ut.Translator) error {
	if err := validate.RegisterValidation(templateFileTag, isTemplateFile); err != nil {
		return fmt.Errorf("validate.RegisterValidation(%s) > %w", templateFileTag, err)
	}

	register := func(trans ut.Translator) error {
		return trans.Add(templateFileTag, "{0} must point to a readable template file", true)
	}
	translate := func(trans ut.Translator, fe validator.FieldError) string {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		message, err := trans.T(templateFileTag, key)
		if err != nil {
			return fe.Error()
		}
		return message
	}
	if err := validate.RegisterTranslation(templateFileTag, trans, register, translate); err != nil {
		return fmt.Errorf("validate.RegisterTranslation(%s) > %w", templateFileTag, err)
	}
	return nil
}

// isTemplateFile accepts regular files the owner can read.
func isTemplateFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0400 != 0
}
