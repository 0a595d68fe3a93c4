// Package logger builds *slog.Logger instances from functional options and
// provides helper constructors for commonly used attributes.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("billing")),
//	)
//	log.Info("settings loaded", logger.Field("settings", field))
//
// Field records a container's name and whether it is set, leaving the value
// out. Containers also implement slog.LogValuer, so passing one directly as an
// attribute value logs its value too.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no nil check. WithFormat panics on an unknown format.
package logger
