package setting

import (
	"context"
	"sync"
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
)

// SaveFunc persists one coalesced section save.
type SaveFunc func(ctx context.Context, req setting.SaveSectionRequest) setting.SaveConfigResponse

// SaveQueue coalesces rapid edits to the same section into one save after a
// quiet period. Distinct sections flush in the order their first pending
// edit arrived. Saving is last-write-wins per section; two concurrent admins
// editing the same section overwrite each other, which is a documented
// limitation of the configuration model rather than something the queue
// tries to lock around.
type SaveQueue struct {
	mu       sync.Mutex
	pending  map[setting.Section]setting.SaveSectionRequest
	order    []setting.Section
	timer    *time.Timer
	quiet    time.Duration
	save     SaveFunc
	closed   bool
	draining sync.WaitGroup
}

func NewSaveQueue(quiet time.Duration, save SaveFunc) *SaveQueue {
	return &SaveQueue{
		pending: make(map[setting.Section]setting.SaveSectionRequest),
		quiet:   quiet,
		save:    save,
	}
}

// Enqueue records an edit and (re)starts the quiet-period timer. A later
// edit to the same section replaces the pending one.
func (q *SaveQueue) Enqueue(req setting.SaveSectionRequest) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	if _, exists := q.pending[req.Section]; !exists {
		q.order = append(q.order, req.Section)
	}
	q.pending[req.Section] = req

	if q.timer != nil {
		q.timer.Stop()
	}
	q.timer = time.AfterFunc(q.quiet, func() { q.Flush(context.Background()) })
}

// Flush saves every pending section immediately, in first-edit order.
// Deterministic entry point for tests and for shutdown.
func (q *SaveQueue) Flush(ctx context.Context) []setting.SaveConfigResponse {
	q.mu.Lock()
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	batch := make([]setting.SaveSectionRequest, 0, len(q.order))
	for _, section := range q.order {
		batch = append(batch, q.pending[section])
	}
	q.pending = make(map[setting.Section]setting.SaveSectionRequest)
	q.order = nil
	q.draining.Add(1)
	q.mu.Unlock()
	defer q.draining.Done()

	results := make([]setting.SaveConfigResponse, 0, len(batch))
	for _, req := range batch {
		results = append(results, q.save(ctx, req))
	}
	return results
}

// Close drains pending saves and rejects further edits.
func (q *SaveQueue) Close(ctx context.Context) {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.Flush(ctx)
	q.draining.Wait()
}
