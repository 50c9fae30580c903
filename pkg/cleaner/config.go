package cleaner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultColabKeys are the metadata.colab keys removed by default.
// toc_visible makes VS Code and Cursor reject otherwise valid notebooks.
var DefaultColabKeys = []string{"toc_visible"}

// Config selects which rules a Cleaner runs.
type Config struct {
	// StripWidgetMetadata removes metadata.widgets.
	StripWidgetMetadata bool `json:"strip_widget_metadata" yaml:"strip_widget_metadata"`

	// StripWidgetOutputs removes widget-view representations from cell outputs.
	StripWidgetOutputs bool `json:"strip_widget_outputs" yaml:"strip_widget_outputs"`

	// StripColabKeys removes ColabKeys from metadata.colab.
	StripColabKeys bool `json:"strip_colab_keys" yaml:"strip_colab_keys"`

	// ColabKeys lists the metadata.colab keys to remove, in report order.
	ColabKeys []string `json:"colab_keys" yaml:"colab_keys" validate:"required_if=StripColabKeys true,dive,required"`
}

// DefaultConfig enables every rule.
func DefaultConfig() *Config {
	return &Config{
		StripWidgetMetadata: true,
		StripWidgetOutputs:  true,
		StripColabKeys:      true,
		ColabKeys:           append([]string(nil), DefaultColabKeys...),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration and returns a readable error listing
// every invalid field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", e.Namespace(), formatValidationError(e)))
	}
	return fmt.Errorf("invalid cleaner config: %s", strings.Join(msgs, "; "))
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must not be empty"
	case "required_if":
		return fmt.Sprintf("is required when %s", e.Param())
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}

// rules builds the rule list in the fixed application order.
func (c *Config) rules() []Rule {
	var rules []Rule
	if c.StripWidgetMetadata {
		rules = append(rules, WidgetMetadataRule{})
	}
	if c.StripWidgetOutputs {
		rules = append(rules, WidgetOutputsRule{})
	}
	if c.StripColabKeys && len(c.ColabKeys) > 0 {
		rules = append(rules, ColabMetadataRule{Keys: append([]string(nil), c.ColabKeys...)})
	}
	return rules
}
