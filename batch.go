package tabwrap

import (
	"context"
	"runtime"
	"sync"
)

// Worker pool sizing. Half the logical CPUs leaves headroom for the
// engine's own subprocesses; the ceiling keeps memory bounded when many
// units compile at once.
const (
	minWorkers = 1
	maxWorkers = 8
	cpuDivisor = 2
)

// resolveWorkers returns the effective pool size: the explicit request
// when positive, otherwise GOMAXPROCS/2 clamped to [minWorkers, maxWorkers].
func resolveWorkers(requested int) int {
	if requested > 0 {
		return requested
	}
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

// RunBatch compiles every unit and partitions the outcomes. Units never
// abort each other: a failed unit is recorded and the rest proceed. Both
// partitions preserve original input order regardless of scheduling.
func (s *Service) RunBatch(ctx context.Context, units []Unit, opts BatchOptions) BatchResult {
	outcomes := make([]Outcome, len(units))

	if !opts.Parallel || len(units) == 1 {
		for i, unit := range units {
			outcomes[i] = s.Compile(ctx, unit)
		}
		return partition(outcomes)
	}

	workers := resolveWorkers(opts.MaxWorkers)
	if workers > len(units) {
		workers = len(units)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = s.Compile(ctx, units[i])
			}
		}()
	}
	for i := range units {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return partition(outcomes)
}

// partition splits ordered outcomes into successes and failures, keeping
// input order within each slice.
func partition(outcomes []Outcome) BatchResult {
	var result BatchResult
	for _, o := range outcomes {
		if o.Success() {
			result.Successes = append(result.Successes, o)
		} else {
			result.Failures = append(result.Failures, o)
		}
	}
	return result
}
