// Package logger builds *slog.Logger values from functional options and adds
// attribute helpers for field validation logs.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithTextFormatter(),
//		logger.WithContextExtractors(environment.LogExtractor()),
//	)
//	log.Info("value rejected", logger.Field("phone"), logger.Value(phone.Masked()))
//
// ParseLevel and ParseFormat turn configuration strings into options.
// ContextExtractor callbacks run on every record, so values placed in the
// context after the logger was built are still picked up.
//
// Raw phone numbers and email addresses must not be logged; pass their
// Masked form to Value instead.
package logger
