// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers so every package logs the same keys.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record. WithEnvironment applies per-environment presets
// (text/DEBUG for development, JSON/INFO otherwise).
//
// Logs go to stderr unless WithOutput says otherwise.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "marketbridge"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.WarnContext(ctx, "observer failed",
//	    logger.NotificationID(n.ID()),
//	    logger.Observer("email", 0),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty attribute for nil errors, so callers do not
// need a nil check before logging.
package logger
