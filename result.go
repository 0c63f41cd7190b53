package kontonummer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/kontonummer/pkg/sanitizer"
)

// ErrorKind identifies why an account number was rejected.
type ErrorKind string

const (
	ErrorInvalidAccountNumber  ErrorKind = "invalid_account_number"
	ErrorUnknownClearingNumber ErrorKind = "unknown_clearing_number"
	ErrorTooShort              ErrorKind = "too_short"
	ErrorTooLong               ErrorKind = "too_long"
	ErrorBadChecksum           ErrorKind = "bad_checksum"
)

// Err returns the sentinel error for the kind.
func (k ErrorKind) Err() error {
	switch k {
	case ErrorInvalidAccountNumber:
		return ErrInvalidAccountNumber
	case ErrorUnknownClearingNumber:
		return ErrUnknownClearingNumber
	case ErrorTooShort:
		return ErrTooShort
	case ErrorTooLong:
		return ErrTooLong
	case ErrorBadChecksum:
		return ErrBadChecksum
	default:
		return fmt.Errorf("kontonummer: %s", string(k))
	}
}

// WarningKind identifies a problem that does not make an account number invalid.
type WarningKind string

// WarningBadChecksum is reported instead of ErrorBadChecksum for clearing
// ranges where legitimate accounts are known to fail the checksum.
const WarningBadChecksum WarningKind = "bad_checksum"

// BankMatch is the outcome of checking a number against one bank rule.
type BankMatch struct {
	BankName       string        `json:"bank_name"`
	ClearingNumber string        `json:"clearing_number"`
	AccountNumber  string        `json:"account_number"`
	Errors         []ErrorKind   `json:"errors"`
	Warnings       []WarningKind `json:"warnings"`
}

// Formatted renders the number as "clearing-account", e.g. "9180-0123456782".
func (m BankMatch) Formatted() string {
	return sanitizer.FormatAccountNumber(m.ClearingNumber+m.AccountNumber, len(m.ClearingNumber))
}

// Matched reports whether the bank's clearing range matched the number.
func (m BankMatch) Matched() bool {
	return m.BankName != ""
}

// Valid reports whether the number passed every check of this bank.
func (m BankMatch) Valid() bool {
	return m.Matched() && len(m.Errors) == 0
}

func (m *BankMatch) addError(kind ErrorKind) {
	if !slices.Contains(m.Errors, kind) {
		m.Errors = append(m.Errors, kind)
	}
}

func (m *BankMatch) addWarning(kind WarningKind) {
	if !slices.Contains(m.Warnings, kind) {
		m.Warnings = append(m.Warnings, kind)
	}
}

// Result is the aggregated outcome of a validation call.
type Result struct {
	IsValid      bool        `json:"is_valid"`
	Errors       []ErrorKind `json:"errors"`
	MatchedBanks []BankMatch `json:"matched_banks"`
	HasWarnings  bool        `json:"has_warnings"`
}

func invalidInputResult() Result {
	return Result{
		IsValid:      false,
		Errors:       []ErrorKind{ErrorInvalidAccountNumber},
		MatchedBanks: []BankMatch{},
		HasWarnings:  false,
	}
}

// Bank returns the first matched bank without errors.
func (r Result) Bank() (BankMatch, bool) {
	for _, m := range r.MatchedBanks {
		if m.Valid() {
			return m, true
		}
	}
	return BankMatch{}, false
}

// HasError reports whether kind is present at the top level or in any matched bank.
func (r Result) HasError(kind ErrorKind) bool {
	if slices.Contains(r.Errors, kind) {
		return true
	}
	for _, m := range r.MatchedBanks {
		if slices.Contains(m.Errors, kind) {
			return true
		}
	}
	return false
}

// Err returns nil for a valid result. Otherwise it joins the sentinel errors of
// all top-level and per-bank error kinds; per-bank ones are prefixed with the
// bank name.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}

	errs := make([]error, 0, len(r.Errors)+len(r.MatchedBanks))
	for _, kind := range r.Errors {
		errs = append(errs, kind.Err())
	}
	for _, m := range r.MatchedBanks {
		for _, kind := range m.Errors {
			errs = append(errs, fmt.Errorf("%s %s: %w", m.BankName, m.ClearingNumber, kind.Err()))
		}
	}
	if len(errs) == 0 {
		return ErrInvalidAccountNumber
	}
	return errors.Join(errs...)
}
