package workpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryChunkClaimedExactlyOnce(t *testing.T) {
	total := 997
	queue := NewQueue(total, 17)

	var mu sync.Mutex
	seen := make([]int, 0, total)

	err := Run(context.Background(), 8, queue, func(_ context.Context, c Chunk) error {
		mu.Lock()
		for i := c.Start; i < c.End; i++ {
			seen = append(seen, i)
		}
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, seen, total)
	counts := make([]int, total)
	for _, i := range seen {
		counts[i]++
	}
	for i, c := range counts {
		assert.Equal(t, 1, c, "index %d claimed %d times", i, c)
	}
}

func TestWorkerErrorCancelsRemainingWork(t *testing.T) {
	queue := NewQueue(1000, 1)
	var processed int64
	boom := errors.New("boom")

	err := Run(context.Background(), 4, queue, func(_ context.Context, c Chunk) error {
		n := atomic.AddInt64(&processed, 1)
		if n == 5 {
			return boom
		}
		return nil
	})

	require.Error(t, err)
	assert.Less(t, int(atomic.LoadInt64(&processed)), 1000)
}

func TestWorkerPanicIsConvertedToError(t *testing.T) {
	queue := NewQueue(10, 1)
	err := Run(context.Background(), 2, queue, func(_ context.Context, c Chunk) error {
		if c.Start == 3 {
			panic("kaboom")
		}
		return nil
	})
	require.Error(t, err)
}
