package web

import (
	"net/http"

	"github.com/kbukum/turbokit/component"
)

// Option tunes a controller or endpoint marker. Options that do not apply
// to the marker being built are ignored: WithSummary on a Controller does
// nothing, WithDependencies on an endpoint does nothing.
type Option func(*options)

type options struct {
	status       int
	statusSet    bool
	tags         []string
	summary      string
	description  string
	dependencies []any
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithStatus overrides the default success status code of an endpoint.
func WithStatus(code int) Option {
	return func(o *options) {
		o.status = code
		o.statusSet = true
	}
}

// WithTags attaches documentation tags to a controller or endpoint.
func WithTags(tags ...string) Option {
	return func(o *options) { o.tags = append(o.tags, tags...) }
}

// WithSummary sets the short endpoint summary.
func WithSummary(summary string) Option {
	return func(o *options) { o.summary = summary }
}

// WithDescription sets the long endpoint description.
func WithDescription(description string) Option {
	return func(o *options) { o.description = description }
}

// WithDependencies attaches controller-level dependencies that the router
// hands to every endpoint of the controller.
func WithDependencies(deps ...any) Option {
	return func(o *options) { o.dependencies = append(o.dependencies, deps...) }
}

// Controller marks a class as an HTTP controller. The prefix is prepended
// verbatim to every endpoint path when the router mounts the controller.
func Controller(prefix string, opts ...Option) component.TagOption {
	o := resolveOptions(opts)
	return func(t *component.Tags) {
		t.IsController = true
		t.ControllerPrefix = prefix
		t.ControllerTags = o.tags
		t.ControllerDependencies = o.dependencies
		t.DecoratorName = "controller"
	}
}

// Get marks a method as a GET endpoint. Success responses default to 200.
func Get(path string, opts ...Option) component.TagOption {
	return endpoint(http.MethodGet, path, http.StatusOK, opts)
}

// Post marks a method as a POST endpoint. Success responses default to 201.
func Post(path string, opts ...Option) component.TagOption {
	return endpoint(http.MethodPost, path, http.StatusCreated, opts)
}

// Put marks a method as a PUT endpoint. Success responses default to 200.
func Put(path string, opts ...Option) component.TagOption {
	return endpoint(http.MethodPut, path, http.StatusOK, opts)
}

// Delete marks a method as a DELETE endpoint. Success responses default
// to 204.
func Delete(path string, opts ...Option) component.TagOption {
	return endpoint(http.MethodDelete, path, http.StatusNoContent, opts)
}

// Patch marks a method as a PATCH endpoint. Success responses default to 200.
func Patch(path string, opts ...Option) component.TagOption {
	return endpoint(http.MethodPatch, path, http.StatusOK, opts)
}

func endpoint(method, path string, defaultStatus int, opts []Option) component.TagOption {
	o := resolveOptions(opts)
	status := defaultStatus
	if o.statusSet {
		status = o.status
	}
	return func(t *component.Tags) {
		t.IsEndpoint = true
		t.HTTPMethod = method
		t.EndpointPath = path
		t.StatusCode = status
		t.EndpointTags = o.tags
		t.EndpointSummary = o.summary
		t.EndpointDescription = o.description
		t.DecoratorName = "endpoint"
	}
}
