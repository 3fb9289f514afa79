package watcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolRunsTasks(t *testing.T) {
	wp := NewWorkerPool(4)
	defer wp.Close()

	var (
		mu    sync.Mutex
		count int
		wg    sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		err := wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			mu.Lock()
			count++
			mu.Unlock()
			return nil
		})
		assert.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, 20, count)
}

func TestWorkerPoolAbsorbsTaskErrors(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	var wg sync.WaitGroup
	wg.Add(2)

	assert.NoError(t, wp.AddTask(context.Background(), func() error {
		defer wg.Done()
		return errors.New("task failed")
	}))
	assert.NoError(t, wp.AddTask(context.Background(), func() error {
		defer wg.Done()
		return nil
	}))

	wg.Wait()
}

func TestWorkerPoolCancelledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	// Occupy the single worker and fill the queue.
	block := make(chan struct{})
	defer close(block)
	assert.NoError(t, wp.AddTask(context.Background(), func() error {
		<-block
		return nil
	}))
	// The queue has capacity 1; give the worker time to pick up the first task
	// and then saturate the channel.
	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
