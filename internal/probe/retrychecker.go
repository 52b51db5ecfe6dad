// internal/probe/retrychecker.go
package probe

import (
	"context"
	"time"
)

// RetryChecker repeats transient failures of Inner up to Attempts times in
// total. Definitive failures are returned immediately.
type RetryChecker struct {
	Inner    Checker
	Attempts int
	Backoff  time.Duration
}

func (r *RetryChecker) Check(ctx context.Context) CheckResult {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var last CheckResult
	for i := 0; i < attempts; i++ {
		last = r.Inner.Check(ctx)
		if last.Success || !last.Transient {
			return last
		}
		if i == attempts-1 {
			break
		}
		if r.Backoff > 0 {
			select {
			case <-ctx.Done():
				return last
			case <-time.After(r.Backoff):
			}
		} else if ctx.Err() != nil {
			return last
		}
	}
	// annotate message so you can see it was a retry series
	if attempts > 1 {
		last.Message = last.Message + " (after retries)"
	}
	return last
}
