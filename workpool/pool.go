// Package workpool implements spec.md §5's concurrency model: a single
// shared queue of index-range chunks, worker goroutines popping chunks
// under a mutex, and errgroup-supervised cancellation on the first
// worker error or panic. Grounded on original_source/src/main.rs's
// thread::spawn + mpsc::channel dispatch, rendered as a pull-based
// shared queue (rather than gnark-crypto's static Parallelize(start,
// end) range split, seen throughout its PLONK backends) because chunk
// cost here varies with how far a representative survives the
// smoothness pass.
package workpool

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Chunk is a half-open range [Start, End) of indices into an orbit
// list, the unit of work a worker pops from the shared queue.
type Chunk struct {
	Start, End int
}

// Queue is the mutex-guarded chunk queue; Pop is its only contended
// operation, per spec.md §5.
type Queue struct {
	mu     sync.Mutex
	chunks []Chunk
	next   int
}

// NewQueue partitions [0, total) into chunks of at most chunkSize
// indices each.
func NewQueue(total, chunkSize int) *Queue {
	if chunkSize < 1 {
		chunkSize = 1
	}
	var chunks []Chunk
	for start := 0; start < total; start += chunkSize {
		end := start + chunkSize
		if end > total {
			end = total
		}
		chunks = append(chunks, Chunk{Start: start, End: end})
	}
	return &Queue{chunks: chunks}
}

// Pop returns the next unclaimed chunk and true, or a zero Chunk and
// false once the queue is empty.
func (q *Queue) Pop() (Chunk, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.next >= len(q.chunks) {
		return Chunk{}, false
	}
	c := q.chunks[q.next]
	q.next++
	return c, true
}

// Work processes one chunk. A returned error or a panic both cancel
// the remaining work, per spec.md §7's "Worker panic: Fatal; propagate
// to collector."
type Work func(ctx context.Context, chunk Chunk) error

// Run starts numWorkers goroutines, each popping chunks from queue and
// calling work until the queue is empty, the context is cancelled, or
// any worker errors or panics. It blocks until every worker has
// returned.
func Run(ctx context.Context, numWorkers int, queue *Queue, work Work) error {
	if numWorkers < 1 {
		numWorkers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < numWorkers; i++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("workpool: worker panic: %v", r)
				}
			}()
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				chunk, ok := queue.Pop()
				if !ok {
					return nil
				}
				if err := work(gctx, chunk); err != nil {
					return fmt.Errorf("workpool: chunk [%d,%d): %w", chunk.Start, chunk.End, err)
				}
			}
		})
	}
	return g.Wait()
}
