package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors with errors.Is.
var ErrValidationFailed = errors.New("validation failed")
