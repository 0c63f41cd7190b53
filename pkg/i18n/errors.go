package i18n

import "errors"

var (
	ErrNilAdapter       = errors.New("translation adapter is nil")
	ErrNoTranslations   = errors.New("no translations loaded")
	ErrInvalidLanguage  = errors.New("invalid language code")
	ErrDefaultNotLoaded = errors.New("default language has no translations")

	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
)
