package concurrent

import (
	"context"
	"runtime"
	"sync"
)

type Job[T any] struct {
	ID    int
	Input T
}

type JobResult[G any] struct {
	ID     int
	Output G
}

type JobFunc[T, G any] func(ctx context.Context, input T) G

// BackgroundWorker runs jobFunc on a fixed number of goroutines.
type BackgroundWorker[T, G any] struct {
	workers   int
	msgC      chan Job[T]
	resC      chan JobResult[G]
	waitGroup sync.WaitGroup
	jobFunc   JobFunc[T, G]
}

func NewBackgroundWorker[T, G any](workers, buffer int, jobFunc JobFunc[T, G]) *BackgroundWorker[T, G] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &BackgroundWorker[T, G]{
		workers: workers,
		msgC:    make(chan Job[T], buffer),
		resC:    make(chan JobResult[G], buffer),
		jobFunc: jobFunc,
	}
}

func (bw *BackgroundWorker[T, G]) TriggerProcessing(job Job[T]) {
	bw.msgC <- job
}

func (bw *BackgroundWorker[T, G]) Results() <-chan JobResult[G] {
	return bw.resC
}

func (bw *BackgroundWorker[T, G]) Start(ctx context.Context) {
	bw.waitGroup.Add(bw.workers)
	for i := 0; i < bw.workers; i++ {
		go func() {
			defer bw.waitGroup.Done()
			for job := range bw.msgC {
				bw.resC <- JobResult[G]{ID: job.ID, Output: bw.jobFunc(ctx, job.Input)}
			}
		}()
	}
}

// Close stops accepting jobs, waits for in-flight ones and closes Results.
func (bw *BackgroundWorker[T, G]) Close() {
	close(bw.msgC)
	bw.waitGroup.Wait()
	close(bw.resC)
}

// Map applies fn to every input on at most workers goroutines. outputs keep input order.
func Map[T, G any](ctx context.Context, workers int, inputs []T, fn JobFunc[T, G]) []G {
	outputs := make([]G, len(inputs))
	if len(inputs) == 0 {
		return outputs
	}
	if workers <= 0 || workers > len(inputs) {
		workers = min(len(inputs), runtime.GOMAXPROCS(0))
	}

	bw := NewBackgroundWorker[T, G](workers, len(inputs), fn)
	bw.Start(ctx)
	for i, in := range inputs {
		bw.TriggerProcessing(Job[T]{ID: i, Input: in})
	}
	bw.Close()

	for res := range bw.Results() {
		outputs[res.ID] = res.Output
	}
	return outputs
}
