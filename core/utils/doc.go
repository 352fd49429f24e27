// Package utils provides common utility functions for the drift detector.
// Its main export is the canonical value-to-string conversion used by the
// comparison engine to tolerate driver-level type differences between the
// two database endpoints.
package utils
