// Package logger provides structured logging utilities built on Go's
// standard slog package: a factory with environment-specific
// configurations and a set of pre-built attribute helpers.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/htmlkit/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("htmlclean"))
//
//	// Production: JSON format, info level
//	log = logger.New(logger.WithProduction("htmlclean"))
//
//	log.Info("pass completed",
//		logger.Component("sanitizer"),
//		logger.Count("nodes_removed", removed),
//		logger.Elapsed(start),
//	)
//
// Attribute helpers use the empty Attr pattern for nil safety, so
// log.Error("msg", logger.Error(err)) needs no explicit nil check.
package logger
