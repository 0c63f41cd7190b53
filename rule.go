package kontonummer

import "github.com/dmitrymomot/kontonummer/pkg/validator"

// Rule adapts account number validation to validator.Apply using the
// built-in registry.
//
//	err := validator.Apply(
//	    validator.RequiredString("name", req.Name),
//	    kontonummer.Rule("account", req.Account),
//	)
func Rule(field, value string) validator.Rule {
	return defaultValidator.Rule(field, value)
}

// Rule adapts account number validation to validator.Apply.
func (v *Validator) Rule(field, value string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return v.Validate(value).IsValid
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "must be a valid Swedish bank account number",
			TranslationKey: "validation.swedish_account_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
