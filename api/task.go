package api

// Task is a long-running function offloaded to a background goroutine.
// It should poll the handle and bail out early once aborted.
type Task func(handle TaskHandle) (interface{}, error)

type TaskHandle interface {
	Abort()
	Aborted() bool
}

type TaskRunner interface {
	Run(name string, task Task) TaskHandle
}
