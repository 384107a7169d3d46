package testutil

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	dErrors "iban-gateway/pkg/domain-errors"
	"iban-gateway/pkg/iban"
)

// ConcurrentResult tracks outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes int32
	Invalid   int32
	NotFounds int32
	Errors    int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Invalid + r.NotFounds + r.Errors
}

// RunConcurrent executes fn in parallel goroutines and collects results.
// IBAN validation failures count as Invalid, not-found domain errors as
// NotFounds and anything else as Errors.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, invalid, notFounds, errs atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			err := fn(idx)
			var ve *iban.ValidationError
			switch {
			case err == nil:
				successes.Add(1)
			case errors.As(err, &ve):
				invalid.Add(1)
			case dErrors.HasCode(err, dErrors.CodeNotFound):
				notFounds.Add(1)
			default:
				errs.Add(1)
			}
		}(i)
	}

	wg.Wait()

	return &ConcurrentResult{
		Successes: successes.Load(),
		Invalid:   invalid.Load(),
		NotFounds: notFounds.Load(),
		Errors:    errs.Load(),
	}
}

// RunConcurrentCtx executes fn in parallel goroutines with context support.
func RunConcurrentCtx(ctx context.Context, goroutines int, fn func(ctx context.Context, idx int) error) *ConcurrentResult {
	return RunConcurrent(goroutines, func(idx int) error {
		return fn(ctx, idx)
	})
}
