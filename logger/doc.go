// Package logger provides structured logging for turbokit applications
// using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.Get("scanner")
//	log.Info("scan complete", logger.Fields("count", 12))
package logger
