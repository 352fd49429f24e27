// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance supporting console output for
// interactive CLI runs and JSON output for machine consumption, plus a
// helper that attaches the per-request ID when the report server logs
// inside a Fiber handler.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("comparison finished")
package logger
