package component

import "time"

// Tags is the flat metadata marker set attached to a class, function, or
// method at declaration time. Tags are immutable once the declaration is
// built; the scanner reads them and never writes them.
type Tags struct {
	// Task markers
	IsTask          bool
	TaskName        string
	TaskDescription string
	RetryCount      int
	Timeout         time.Duration

	// Cacheable function markers
	IsCached     bool
	CacheTTL     time.Duration
	CacheKeyFunc func(args ...any) string

	// Controller markers (classes)
	IsController           bool
	ControllerPrefix       string
	ControllerTags         []string
	ControllerDependencies []any

	// Endpoint markers (methods)
	IsEndpoint          bool
	HTTPMethod          string
	EndpointPath        string
	StatusCode          int
	EndpointTags        []string
	EndpointSummary     string
	EndpointDescription string

	// DecoratorName is a free-form classification label. Marker builders
	// set it to their own kind ("task", "cached", "controller", "endpoint");
	// a later WithDecoratorName wins.
	DecoratorName string
}

// TagOption applies one marker group to a Tags record during declaration.
type TagOption func(*Tags)

// apply makes TagOption usable directly inside Class declarations.
func (o TagOption) apply(c *Component) { o(c.Tags) }

// WithDecoratorName sets the free-form classification label.
func WithDecoratorName(name string) TagOption {
	return func(t *Tags) { t.DecoratorName = name }
}

// HasDecorator reports whether the tags carry the given classification label.
func (t *Tags) HasDecorator(name string) bool {
	return t != nil && t.DecoratorName == name
}
