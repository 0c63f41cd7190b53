// Package i18n translates short user facing messages.
//
// Translations are nested maps keyed by language code and loaded through a
// TranslationAdapter: MapAdapter for in-memory data, FSAdapter for YAML files
// in any fs.FS (including embed.FS). Keys use dot notation and templates use
// named placeholders:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//
//	lang := tr.Match(r.Header.Get("Accept-Language")) // "sv-SE,sv;q=0.9" -> "sv"
//	msg := tr.T(lang, "errors.too_short", "bank", "Nordea")
//
// Language negotiation uses golang.org/x/text/language, so regional variants
// and Accept-Language quality values resolve to the closest supported language.
// A Translator is read-only after creation and safe for concurrent use.
package i18n
