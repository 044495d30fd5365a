package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Config controls a batch run.
type Config struct {
	Workers  int           // <= 0 means runtime.NumCPU()
	Progress time.Duration // progress log interval, 0 disables
	Logger   *slog.Logger  // nil discards
}

func (c Config) workers(jobs int) int {
	n := c.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > jobs {
		n = jobs
	}
	return max(n, 1)
}

// Run calls fn once for every job index in [0, jobs) using a worker pool.
// Jobs must not share mutable state; they may run in any order.
// Cancelling ctx stops handing out new jobs, and Run returns ctx.Err().
func Run(ctx context.Context, cfg Config, jobs int, fn func(job int)) error {
	if jobs <= 0 {
		return ctx.Err()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					log.Debug("batch progress",
						"done", p,
						"total", jobs,
						"rate", float64(p)/time.Since(start).Seconds())
				}
			}
		}()
	}

	workers := cfg.workers(jobs)
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				fn(job)
				processed.Add(1)
			}
		}()
	}

	// Send work
	var err error
send:
	for i := 0; i < jobs; i++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break send
		case jobChan <- i:
		}
	}
	close(jobChan)

	wg.Wait()
	close(done)

	log.Debug("batch finished",
		"workers", workers,
		"jobs", processed.Load(),
		"elapsed", time.Since(start))
	return err
}
