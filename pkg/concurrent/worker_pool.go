package concurrent

import (
	"errors"
	"time"
)

var ErrScheduleTimeout = errors.New("schedule error: timed out")

// WorkerPool is a bounded goroutine pool for websocket request handling,
// after https://sergey.kamardin.org/articles/million-websocket-and-go/.
// workers are spawned lazily up to the semaphore size, queued work beyond
// that waits.
type WorkerPool struct {
	sem  chan struct{}
	work chan func()
}

func NewWorkerPool(size, queue int) *WorkerPool {
	return &WorkerPool{
		sem:  make(chan struct{}, size),
		work: make(chan func(), queue),
	}
}

// Spawn starts n workers up front so the first connections don't pay the
// goroutine startup cost.
func (wp *WorkerPool) Spawn(n int) {
	for i := 0; i < n && i < cap(wp.sem); i++ {
		wp.sem <- struct{}{}
		go wp.worker(func() {})
	}
}

func (wp *WorkerPool) Schedule(task func()) {
	wp.schedule(task, nil)
}

func (wp *WorkerPool) ScheduleTimeout(timeout time.Duration, task func()) error {
	return wp.schedule(task, time.After(timeout))
}

func (wp *WorkerPool) schedule(task func(), timeout <-chan time.Time) error {
	select {
	case <-timeout:
		return ErrScheduleTimeout
	case wp.work <- task:
		return nil
	case wp.sem <- struct{}{}:
		go wp.worker(task)
		return nil
	}
}

func (wp *WorkerPool) worker(task func()) {
	defer func() { <-wp.sem }()

	task()
	for task := range wp.work {
		task()
	}
}

func (wp *WorkerPool) Close() {
	close(wp.work)
}
