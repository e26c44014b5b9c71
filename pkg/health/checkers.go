package health

import (
	"context"
	"runtime"

	"github.com/go-faster/errors"
)

// GoroutineCountCheck fails when the process runs more than threshold
// goroutines, a cheap proxy for leaks.
func GoroutineCountCheck(threshold int) CheckFunc {
	return func(_ context.Context) error {
		if count := runtime.NumGoroutine(); count > threshold {
			return errors.Errorf("too many goroutines: %d > %d", count, threshold)
		}
		return nil
	}
}
