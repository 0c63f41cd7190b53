package kontonummer

import (
	"context"
	"embed"
	"sync"

	"github.com/dmitrymomot/kontonummer/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

var translator = sync.OnceValue(func() *i18n.Translator {
	tr, err := i18n.NewTranslator(context.Background(),
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
		i18n.WithDefaultLanguage("en"),
	)
	if err != nil {
		panic(err)
	}
	return tr
})

// Languages returns the language codes messages are available in.
func Languages() []string {
	return translator().SupportedLanguages()
}

// Message describes the error kind in the language closest to lang, which may
// be a language code or an Accept-Language value. English is the fallback.
func (k ErrorKind) Message(lang string) string {
	tr := translator()
	return tr.T(tr.Match(lang), "errors."+string(k))
}

// Message describes the warning kind. See ErrorKind.Message.
func (k WarningKind) Message(lang string) string {
	tr := translator()
	return tr.T(tr.Match(lang), "warnings."+string(k))
}

// Messages lists human readable descriptions of every error and warning in
// the result: top-level errors first, then per matched bank.
func (r Result) Messages(lang string) []string {
	tr := translator()
	lang = tr.Match(lang)

	msgs := make([]string, 0, len(r.Errors))
	for _, kind := range r.Errors {
		msgs = append(msgs, tr.T(lang, "errors."+string(kind)))
	}
	for _, m := range r.MatchedBanks {
		for _, kind := range m.Errors {
			msgs = append(msgs, tr.T(lang, "bank_message",
				"bank", m.BankName,
				"clearing", m.ClearingNumber,
				"message", tr.T(lang, "errors."+string(kind)),
			))
		}
		for _, kind := range m.Warnings {
			msgs = append(msgs, tr.T(lang, "bank_message",
				"bank", m.BankName,
				"clearing", m.ClearingNumber,
				"message", tr.T(lang, "warnings."+string(kind)),
			))
		}
	}
	return msgs
}
