package kontonummer

import (
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/kontonummer/pkg/validator"
)

// Registry is an ordered list of bank rules. Order decides the order of
// Result.MatchedBanks.
type Registry []Bank

// DefaultRegistry returns a copy of the built-in Swedish bank registry.
func DefaultRegistry() Registry {
	return Registry(banks).Clone()
}

// Clone returns a deep copy of the registry.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for i, b := range r {
		b.Clearing = slices.Clone(b.Clearing)
		out[i] = b
	}
	return out
}

// Match returns every rule whose clearing ranges match number, in registry
// order. Rules with ZeroFill are matched against the zero-filled number, the
// same way Validator.Validate evaluates them.
func (r Registry) Match(number string) []Bank {
	var matched []Bank
	for _, b := range r {
		n := number
		if b.ZeroFill {
			n = FillZeros(number, b)
		}
		if b.Matches(n) {
			matched = append(matched, b)
		}
	}
	return matched
}

// BankNames returns the distinct bank names sorted the Swedish way, so names
// starting with Å, Ä or Ö come after Z.
func (r Registry) BankNames() []string {
	names := make([]string, 0, len(r))
	for _, b := range r {
		if !slices.Contains(names, b.Name) {
			names = append(names, b.Name)
		}
	}
	collate.New(language.Swedish).SortStrings(names)
	return names
}

// Validate checks every rule definition and returns validator.ValidationErrors
// wrapped in ErrInvalidRegistry when any of them is unusable.
func (r Registry) Validate() error {
	rules := []validator.Rule{
		validator.MinNum("banks", len(r), 1),
	}
	for i, b := range r {
		rules = append(rules, bankRules(fmt.Sprintf("banks[%d]", i), b)...)
	}

	if err := validator.Apply(rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}
	return nil
}

func bankRules(field string, b Bank) []validator.Rule {
	rules := []validator.Rule{
		validator.RequiredString(field+".name", b.Name),
		validator.MinNum(field+".clearing", len(b.Clearing), 1),
		validator.InList(field+".algorithm", b.Algorithm, []Algorithm{Mod10, Mod11}),
		validator.NumRange(field+".lengths.clearing", b.Lengths.Clearing, 1, 5),
		validator.MinNum(field+".lengths.account", b.Lengths.Account, 1),
		validator.NumRange(field+".lengths.control", b.Lengths.Control, 1, b.Lengths.Total()),
		validator.NumRange(field+".lengths.min_account", b.Lengths.MinAccount, 0, b.Lengths.Account),
	}

	for i, cr := range b.Clearing {
		rf := fmt.Sprintf("%s.clearing[%d]", field, i)
		rules = append(rules,
			validator.ValidNumericString(rf+".from", cr.From),
			validator.ValidNumericString(rf+".to", cr.To),
			validator.LenString(rf+".to", cr.To, cr.Width()),
			validator.MaxNum(rf+".width", cr.Width(), b.Lengths.Clearing),
			validator.Rule{
				Check: func() bool { return cr.From <= cr.To },
				Error: validator.ValidationError{
					Field:          rf,
					Message:        "range start must not exceed range end",
					TranslationKey: "validation.range_order",
					TranslationValues: map[string]any{
						"field": rf,
						"from":  cr.From,
						"to":    cr.To,
					},
				},
			},
		)
	}
	return rules
}
