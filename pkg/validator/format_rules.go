package validator

import (
	"regexp"
	"strings"
)

var numericStringRegex = regexp.MustCompile(`^[0-9]+$`)

// ValidNumericString validates that a string contains only ASCII digits.
func ValidNumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return numericStringRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: "validation.numeric_string",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
