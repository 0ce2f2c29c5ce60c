// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"sync"
	"time"
)

// RefreshJob periodically refreshes the registry in the background so the
// gallery stays close to the ledger without user interaction. The job is
// idle until Start is called.
type RefreshJob struct {
	registry *Registry

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob over the given registry.
func NewRefreshJob(registry *Registry) *RefreshJob {
	return &RefreshJob{registry: registry}
}

// Start stops any previously running job, then launches a background
// goroutine that calls Refresh every interval. If interval is zero or
// negative it defaults to one minute. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// Refresh logs its own failures; a missed tick is
				// recovered by the next one.
				_ = j.registry.Refresh(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
