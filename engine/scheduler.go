package engine

import (
	"sync"
	"time"
)

// DefaultInterval is the default delay of a scheduled repaint.
const DefaultInterval = time.Second / 60

// Scheduler schedules a function for later execution. Schedule returns a
// function to cancel the task; calling it after the task ran is a no-op.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) (cancel func())
}

// TimerScheduler schedules tasks with timers of package time. Timers fire
// on goroutines of their own; Post forwards a task to the host's event loop.
// Without Post, tasks are run on the timer's goroutine. Engines fill in the
// Post function of their root (see WithScheduler).
type TimerScheduler struct {
	Post func(task func())
}

// Schedule schedules a task after a delay.
func (ts TimerScheduler) Schedule(delay time.Duration, task func()) func() {
	var once sync.Once
	cancelled := make(chan struct{})
	run := func() {
		select {
		case <-cancelled:
		default:
			task()
		}
	}
	timer := time.AfterFunc(delay, func() {
		if ts.Post != nil {
			ts.Post(run)
		} else {
			run()
		}
	})
	return func() {
		once.Do(func() {
			timer.Stop()
			close(cancelled)
		})
	}
}

// ManualScheduler collects tasks until a client calls Flush. It is intended
// for tests and for hosts driving repaints themselves.
type ManualScheduler struct {
	tasks  map[uint64]func()
	order  []uint64
	serial uint64
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{tasks: make(map[uint64]func())}
}

// Schedule records a task. The delay is ignored.
func (ms *ManualScheduler) Schedule(_ time.Duration, task func()) func() {
	ms.serial++
	key := ms.serial
	ms.tasks[key] = task
	ms.order = append(ms.order, key)
	return func() {
		delete(ms.tasks, key)
	}
}

// Pending returns the number of tasks waiting to be run.
func (ms *ManualScheduler) Pending() int {
	return len(ms.tasks)
}

// Flush runs all pending tasks in the order they have been scheduled and
// returns the number of tasks run. Tasks scheduled by tasks are left for
// the next call to Flush.
func (ms *ManualScheduler) Flush() int {
	order := ms.order
	ms.order = nil
	n := 0
	for _, key := range order {
		task, ok := ms.tasks[key]
		if !ok {
			continue
		}
		delete(ms.tasks, key)
		task()
		n++
	}
	return n
}

var _ Scheduler = TimerScheduler{}
var _ Scheduler = &ManualScheduler{}
