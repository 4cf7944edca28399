package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Validator is a wrapper around go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the miner's cross-field rules.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterStructValidation(generationLevel, GenerationConfig{})
	return &Validator{validate: v}
}

// generationLevel rejects distributions that are not a valid probability split.
func generationLevel(sl validator.StructLevel) {
	g := sl.Current().Interface().(GenerationConfig)
	if g.TreasureChance+g.CopperChance > 1 {
		sl.ReportError(g.CopperChance, "CopperChance", "copper_chance", "chancesum", "")
	}
}

// Validate validates a struct using validation tags.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			e.Namespace(),
			e.Tag(),
			e.Value(),
		))
	}
	return fmt.Errorf("%w:\n  %s", ErrInvalidConfig, strings.Join(messages, "\n  "))
}

// ValidateMiner validates a miner configuration.
func ValidateMiner(cfg *MinerConfig) error {
	return NewValidator().Validate(cfg)
}
