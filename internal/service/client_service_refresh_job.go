package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/mindcraft-client/models"
)

type documentRefreshJob struct {
	documentService ClientDocumentService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDocumentRefreshJob creates a documentRefreshJob that calls
// documentService.List on a ticker. The job is idle until Start is called.
func NewDocumentRefreshJob(documentService ClientDocumentService) DocumentRefreshJob {
	return &documentRefreshJob{documentService: documentService}
}

// Start implements DocumentRefreshJob. It stops any previously running job,
// then, if interval is positive, launches a background goroutine that lists
// documents every interval and hands the result to onRefresh. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *documentRefreshJob) Start(ctx context.Context, interval time.Duration, onRefresh func([]models.Document)) {
	j.Stop()

	if interval <= 0 || onRefresh == nil {
		return
	}

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
				docs := j.documentService.List(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				onRefresh(docs)
			}
		}
	}()
}

// Stop implements DocumentRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *documentRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
