package di

import (
	"fmt"
	"sync"
)

// Factory is a zero-argument constructor producing one component instance.
// Factories that need other components close over container.Resolve calls;
// the container never inspects factory parameters.
type Factory func() (any, error)

// Lifetime determines whether a provider caches the instance it produces.
type Lifetime int

const (
	// Singleton providers invoke their factory once and cache the result.
	Singleton Lifetime = iota
	// Transient providers invoke their factory on every resolution.
	Transient
)

func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return fmt.Sprintf("lifetime(%d)", int(l))
	}
}

// Provider pairs a factory with its lifecycle policy. For singletons the
// first successful resolution caches the instance; a failed factory call
// leaves the provider unresolved so a later resolution can retry.
type Provider struct {
	factory  Factory
	lifetime Lifetime

	mu       sync.RWMutex
	instance any
	resolved bool
}

// NewProvider builds a provider from a factory and a lifetime.
// It panics when factory is nil since that is a wiring error, not a
// runtime condition.
func NewProvider(factory Factory, lifetime Lifetime) *Provider {
	if factory == nil {
		panic("di: NewProvider requires a factory")
	}
	return &Provider{factory: factory, lifetime: lifetime}
}

// NewSingleton builds a provider that caches the first successful instance.
func NewSingleton(factory Factory) *Provider {
	return NewProvider(factory, Singleton)
}

// NewTransient builds a provider that constructs a fresh instance per call.
func NewTransient(factory Factory) *Provider {
	return NewProvider(factory, Transient)
}

// NewValue wraps a pre-created instance as an already resolved singleton.
func NewValue(instance any) *Provider {
	return &Provider{
		factory:  func() (any, error) { return instance, nil },
		lifetime: Singleton,
		instance: instance,
		resolved: true,
	}
}

// Lifetime reports the provider's lifecycle policy.
func (p *Provider) Lifetime() Lifetime { return p.lifetime }

// Resolved reports whether a singleton provider holds a cached instance.
// Transient providers are never resolved.
func (p *Provider) Resolved() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.resolved
}

// Resolve produces the component instance. Singletons return the cached
// instance when present; otherwise the factory runs under the provider's
// lock so concurrent first resolutions invoke it at most once and observe
// the same instance. Factory errors propagate unchanged.
func (p *Provider) Resolve() (any, error) {
	if p.lifetime == Transient {
		return p.factory()
	}

	p.mu.RLock()
	if p.resolved {
		instance := p.instance
		p.mu.RUnlock()
		return instance, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another caller may have resolved while we waited for the lock.
	if p.resolved {
		return p.instance, nil
	}

	instance, err := p.factory()
	if err != nil {
		return nil, err
	}

	p.instance = instance
	p.resolved = true
	return instance, nil
}
