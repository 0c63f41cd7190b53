package kontonummer

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/kontonummer/pkg/logger"
)

const component = "kontonummer"

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry replaces the built-in bank registry. Empty registries are ignored.
func WithRegistry(r Registry) Option {
	return func(v *Validator) {
		if len(r) > 0 {
			v.registry = r.Clone()
		}
	}
}

// WithLogger sets the logger used to trace validations at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// WithStrictChecksum reports every failed checksum as an error, including
// clearing ranges that would otherwise only produce a warning.
func WithStrictChecksum() Option {
	return func(v *Validator) {
		v.strict = true
	}
}

// Validator checks account numbers against a bank registry.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	registry Registry
	log      *slog.Logger
	strict   bool
}

// New creates a Validator using the built-in registry unless WithRegistry is given.
func New(opts ...Option) *Validator {
	v := &Validator{
		registry: DefaultRegistry(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Registry returns a copy of the rules the validator evaluates.
func (v *Validator) Registry() Registry {
	return v.registry.Clone()
}

var defaultValidator = New()

// Validate checks number with the built-in registry.
// See Validator.Validate.
func Validate(number any) Result {
	return defaultValidator.Validate(number)
}

// Validate checks number against every bank in the registry.
//
// Anything other than a non-empty string yields a result with the single error
// ErrorInvalidAccountNumber and no bank evaluation. Otherwise non-digits are
// stripped and every bank whose clearing range matches is reported in
// MatchedBanks. The number is valid when at least one matched bank has no errors.
func (v *Validator) Validate(number any) Result {
	s, ok := number.(string)
	if !ok || s == "" {
		v.log.Debug("account number rejected",
			logger.Component(component),
			slog.String("input_type", fmt.Sprintf("%T", number)),
		)
		return invalidInputResult()
	}

	return v.validate(Sanitize(s))
}

func (v *Validator) validate(digits string) Result {
	res := Result{
		Errors:       []ErrorKind{},
		MatchedBanks: []BankMatch{},
	}

	for _, bank := range v.registry {
		number := digits
		if bank.ZeroFill {
			number = FillZeros(digits, bank)
		}

		m := validateChecksum(bank, number, v.strict)
		for _, kind := range ValidateLength(bank, number) {
			m.addError(kind)
		}
		if len(m.Warnings) > 0 {
			res.HasWarnings = true
		}
		if !m.Matched() {
			continue
		}

		res.MatchedBanks = append(res.MatchedBanks, m)
		if len(m.Errors) == 0 {
			res.IsValid = true
		}
	}

	if len(res.MatchedBanks) == 0 {
		res.Errors = append(res.Errors, ErrorUnknownClearingNumber)
	}
	if res.IsValid {
		res.Errors = []ErrorKind{}
	}

	v.log.Debug("account number validated",
		logger.Component(component),
		logger.MaskedAccount(digits, type1Comment1.Clearing),
		slog.Bool("is_valid", res.IsValid),
		slog.Bool("has_warnings", res.HasWarnings),
		slog.Int("matched_banks", len(res.MatchedBanks)),
		logger.ErrorKinds(res.Errors),
	)
	for _, m := range res.MatchedBanks {
		v.log.Debug("bank matched",
			logger.Component(component),
			logger.Bank(m.BankName),
			logger.Clearing(m.ClearingNumber),
			logger.ErrorKinds(m.Errors),
		)
	}

	return res
}
