package cache

import (
	"time"

	"github.com/kbukum/turbokit/component"
)

// Option tunes a cache marker.
type Option func(*options)

type options struct {
	ttl     time.Duration
	keyFunc func(args ...any) string
}

// WithTTL bounds how long a cached result stays valid. Zero means the
// backing store's default.
func WithTTL(d time.Duration) Option {
	return func(o *options) { o.ttl = d }
}

// WithKeyFunc derives the cache key from the call arguments instead of the
// store's default keying.
func WithKeyFunc(fn func(args ...any) string) Option {
	return func(o *options) { o.keyFunc = fn }
}

// Cached marks a function component as cacheable. Only standalone
// functions qualify; the scanner ignores the marker on methods. The
// backing store and the memoization wrapper are supplied by the
// application.
func Cached(opts ...Option) component.TagOption {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return func(t *component.Tags) {
		t.IsCached = true
		t.CacheTTL = o.ttl
		t.CacheKeyFunc = o.keyFunc
		t.DecoratorName = "cached"
	}
}
