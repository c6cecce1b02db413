// Package parallel contains a bounded parallel ForEach.
package parallel

import "context"
import "runtime"
import "sync"

import "github.com/klauspost/cpuid/v2"

// DefaultLimit reports the number of goroutines ForEach callers should use
// on this machine: the logical core count detected by cpuid, falling back
// to runtime.NumCPU when detection fails.
func DefaultLimit() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length.
func ForEach(length, limit int, body func(i int)) {
	_ = ForEachContext(context.Background(), length, limit, body)
}

// ForEachContext is ForEach that stops starting new iterations once ctx is
// done. Iterations already running are waited for. It returns ctx.Err() if
// any iteration was skipped.
func ForEachContext(ctx context.Context, length, limit int, body func(i int)) error {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return nil
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i := 0; i < length; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
	return nil
}
