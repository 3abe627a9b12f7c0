package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-kudos-board/internal/logger"
)

const defaultPollInterval = 10 * time.Second

type printJob struct {
	printService PrintService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewPrintJob creates a printJob that calls printService.PrintNew on a
// ticker. The job is idle until Start is called.
func NewPrintJob(printService PrintService, logger *logger.Logger) PrintJob {
	return &printJob{printService: printService, logger: logger}
}

// Start implements PrintJob. The goroutine exits when ctx is cancelled or
// Stop is called. Failed passes are logged and retried on the next tick.
func (j *printJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
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
				if _, err := j.printService.PrintNew(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Err(err).Str("func", "printJob.Start").Msg("print pass failed")
				}
			}
		}
	}()
}

// Stop implements PrintJob. Safe to call when the job is not running.
func (j *printJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
