// Package util provides common utilities including logging helpers,
// file system paths, code hashing and small numeric helpers.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogEvent logs a non-error event line with context.
func LogEvent(context, format string, args ...any) {
	log.Printf(context+": "+format, args...)
}
