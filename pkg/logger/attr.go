package logger

import (
	"log/slog"

	"github.com/dmitrymomot/kontonummer/pkg/sanitizer"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Service records the service name under the key "service".
func Service(name string) slog.Attr {
	return slog.String("service", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Bank records the bank name under the key "bank".
func Bank(name string) slog.Attr {
	return slog.String("bank", name)
}

// Clearing records a clearing number under the key "clearing_number".
func Clearing(number string) slog.Attr {
	return slog.String("clearing_number", number)
}

// MaskedAccount records an account number under the key "account_number"
// with everything but the clearing prefix and the last two digits hidden.
func MaskedAccount(number string, clearingLen int) slog.Attr {
	return slog.String("account_number", sanitizer.MaskAccountNumber(number, clearingLen))
}

// ErrorKinds records error codes under the key "errors".
// If kinds is empty, it returns an empty Attr.
func ErrorKinds[T ~string](kinds []T) slog.Attr {
	if len(kinds) == 0 {
		return slog.Attr{}
	}
	codes := make([]string, len(kinds))
	for i, k := range kinds {
		codes[i] = string(k)
	}
	return slog.Any("errors", codes)
}
