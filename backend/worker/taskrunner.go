package worker

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/viewmark/viewmark/api"
	"github.com/viewmark/viewmark/common/logger"
)

// Handle lets the caller request a cooperative abort and the task poll
// for it. Safe for concurrent use.
type Handle struct {
	aborted int32
}

func (s *Handle) Abort() {
	atomic.StoreInt32(&s.aborted, 1)
}

func (s *Handle) Aborted() bool {
	return atomic.LoadInt32(&s.aborted) != 0
}

// Runner offloads single long-running tasks to a background goroutine
// and publishes a TaskCompletedCommand when one finishes. Errors go to
// the error topic instead.
type Runner struct {
	sender api.Sender

	api.TaskRunner
}

func NewRunner(sender api.Sender) *Runner {
	return &Runner{sender: sender}
}

func (s *Runner) Run(name string, task api.Task) api.TaskHandle {
	handle := &Handle{}
	go func() {
		startTime := time.Now()
		logger.Debug.Printf("Task '%s' started", name)

		result, err := task(handle)
		if err != nil {
			s.sender.SendError(fmt.Sprintf("Task '%s' failed", name), err)
			return
		}

		logger.Debug.Printf("Task '%s' finished in %s", name, time.Since(startTime))
		s.sender.SendCommandToTopic(api.TaskCompleted, &api.TaskCompletedCommand{
			Name:    name,
			Result:  result,
			Aborted: handle.Aborted(),
		})
	}()
	return handle
}
