// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors with consistent key names.
//
// New applies the options on top of production-safe defaults (JSON output at
// INFO level on stdout):
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(logger.Service("kontonummer")),
//	)
//
// ParseLevel and ParseFormat turn configuration strings into option values.
//
// Attribute helpers such as Bank, Clearing and MaskedAccount keep key names
// stable across log records. MaskedAccount never writes the full account
// number. Error and ErrorKinds return an empty slog.Attr for nil or empty
// input, so they can be passed unconditionally:
//
//	log.Debug("validated", logger.ErrorKinds(kinds), logger.Error(err))
package logger
