package kontonummer

import "errors"

// Sentinel errors for each error kind. Result.Err joins them so callers can
// match with errors.Is.
var (
	ErrInvalidAccountNumber  = errors.New("invalid account number")
	ErrUnknownClearingNumber = errors.New("unknown clearing number")
	ErrTooShort              = errors.New("account number is too short")
	ErrTooLong               = errors.New("account number is too long")
	ErrBadChecksum           = errors.New("bad checksum")

	// ErrInvalidRegistry is returned when a bank registry definition cannot be used.
	ErrInvalidRegistry = errors.New("invalid bank registry")
)
