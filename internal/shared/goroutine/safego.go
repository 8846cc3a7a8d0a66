// Package goroutine launches goroutines that log panics instead of crashing.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"classicmodels/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic in fn is recovered and logged
// with its stack trace under the given name.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
