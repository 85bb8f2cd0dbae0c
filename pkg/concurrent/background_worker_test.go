package concurrent

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapKeepsOrder(t *testing.T) {
	inputs := make([]int, 200)
	for i := range inputs {
		inputs[i] = i
	}

	outputs := Map(context.Background(), 8, inputs, func(_ context.Context, x int) int {
		return x * x
	})

	assert.Len(t, outputs, len(inputs))
	for i, out := range outputs {
		assert.Equal(t, i*i, out)
	}
}

func TestMapEmpty(t *testing.T) {
	outputs := Map(context.Background(), 4, []string{}, func(_ context.Context, s string) int {
		return len(s)
	})
	assert.Empty(t, outputs)
}

func TestBackgroundWorkerBoundsConcurrency(t *testing.T) {
	var running, peak int32
	bw := NewBackgroundWorker[int, int](3, 50, func(_ context.Context, x int) int {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
		return x
	})
	bw.Start(context.Background())
	for i := 0; i < 50; i++ {
		bw.TriggerProcessing(Job[int]{ID: i, Input: i})
	}
	bw.Close()

	count := 0
	for range bw.Results() {
		count++
	}
	assert.Equal(t, 50, count)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}
