// Package goroutine starts background goroutines that log panics instead of
// crashing the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

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
