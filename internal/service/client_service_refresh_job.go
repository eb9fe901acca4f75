package service

import (
	"context"
	"sync"
	"time"

	"github.com/jasonyi-dev/ganttrack/models"
)

type clientRefreshJob struct {
	boardService ClientBoardService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that re-fetches a project's
// tasks on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(boardService ClientBoardService) ClientRefreshJob {
	return &clientRefreshJob{boardService: boardService}
}

// Start implements ClientRefreshJob. It stops any previously running job,
// then launches a background goroutine that fetches projectUUID's tasks
// every interval and delivers fresh snapshots through onUpdate. If interval
// is zero or negative it defaults to 10 seconds. Polls served from the
// offline cache are not delivered; the cache holds what the caller already
// saw. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, projectUUID string, interval time.Duration, onUpdate func(map[string]models.Task)) {
	if interval <= 0 {
		interval = 10 * time.Second
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
				tasks, offline, err := j.boardService.Tasks(jobCtx, projectUUID)
				if err != nil || offline {
					continue
				}
				if onUpdate != nil {
					onUpdate(tasks)
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
