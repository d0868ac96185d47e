package utils

import (
	"context"
	"log"
	"runtime/debug"

	"presscraft/pkg/logger"
)

// GoSafe runs fn in a goroutine and recovers from panics so one task cannot kill the process.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// ShouldContinue reports whether ctx is still alive, logging when it is not.
func ShouldContinue(ctx context.Context, log *logger.Logger) bool {
	select {
	case <-ctx.Done():
		log.Warn("Context done, stopping work", logger.ErrorField(ctx.Err()))
		return false
	default:
		return true
	}
}
