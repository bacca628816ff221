package task

import (
	"time"

	"github.com/kbukum/turbokit/component"
)

// Option tunes a task marker.
type Option func(*options)

type options struct {
	name        string
	description string
	retries     int
	timeout     time.Duration
}

// WithName overrides the task name. Without it the name defaults to the
// declared component or method name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDescription sets a human-readable task description.
func WithDescription(description string) Option {
	return func(o *options) { o.description = description }
}

// WithRetries sets how many times a failed run may be retried.
func WithRetries(n int) Option {
	return func(o *options) { o.retries = n }
}

// WithTimeout bounds a single run of the task.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Task marks a function or method as a background task. The scanner
// surfaces marked declarations through FindTasks; executing them belongs
// to whatever queue the application wires in.
func Task(opts ...Option) component.TagOption {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return func(t *component.Tags) {
		t.IsTask = true
		t.TaskName = o.name
		t.TaskDescription = o.description
		t.RetryCount = o.retries
		t.Timeout = o.timeout
		t.DecoratorName = "task"
	}
}
