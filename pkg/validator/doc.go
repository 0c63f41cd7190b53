// Package validator provides small declarative validation rules that are
// evaluated together and reported as one error.
//
// A Rule pairs a Check function with a ValidationError carrying the field
// name, a human readable message and a translation key. Apply runs rules and
// collects every failure into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.RequiredString("name", bank.Name),
//	    validator.NumRange("lengths.clearing", bank.Lengths.Clearing, 1, 5),
//	    validator.ValidNumericString("clearing.from", r.From),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// ExtractValidationErrors and IsValidationError look through wrapped errors,
// so callers may add context with fmt.Errorf("%w") before returning.
//
// The package holds no state and rules are safe to build and apply from
// multiple goroutines.
package validator
