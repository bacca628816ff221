package scan

import "github.com/kbukum/turbokit/component"

// Endpoint is one HTTP handler method discovered on a controller. Path is
// the endpoint's own path without the controller prefix.
type Endpoint struct {
	Method string
	Path   string
	Name   string
	Func   any
	Tags   *component.Tags
}

// Task is one background task marker, either a function component or a
// method on a class component.
type Task struct {
	Name string
	Func any
	Tags *component.Tags
}
