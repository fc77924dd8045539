// Package tasks runs small periodic maintenance jobs inside the web
// process. Jobs are best effort: a failed run is logged and retried on
// the next tick, never escalated.
package tasks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is one recurring unit of maintenance work.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner owns the goroutines behind a set of jobs.
type Runner struct {
	log    *zap.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Start launches one goroutine per job, each ticking at the job's
// interval. The first run happens after one interval, not immediately.
func Start(logger *zap.Logger, jobs ...Job) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{log: logger, cancel: cancel}

	for _, job := range jobs {
		r.wg.Add(1)
		go func(j Job) {
			defer r.wg.Done()
			ticker := time.NewTicker(j.Interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := j.Run(ctx); err != nil {
						logger.Warn("background job failed",
							zap.String("job", j.Name), zap.Error(err))
					}
				}
			}
		}(job)
	}

	return r
}

// Stop cancels all jobs and waits for their goroutines to exit.
func (r *Runner) Stop() {
	r.cancel()
	r.wg.Wait()
}
