package di

import (
	"reflect"
	"sort"
	"sync"

	"github.com/kbukum/turbokit/errors"
)

// Container is a process-scoped registry of named providers. A name maps to
// exactly one provider for the container's lifetime; re-registration is an
// error rather than an overwrite, and resolving an absent name is an error
// rather than a nil result.
type Container struct {
	mu        sync.RWMutex
	providers map[string]*Provider
}

// Registration describes one registered provider for introspection.
type Registration struct {
	Name     string
	Lifetime Lifetime
	Resolved bool
}

// New creates an empty container.
func New() *Container {
	return &Container{providers: make(map[string]*Provider)}
}

// Register binds a provider to a name. It fails when the name is already
// taken so that wiring mistakes surface at bootstrap instead of silently
// shadowing an earlier component.
func (c *Container) Register(name string, provider *Provider) error {
	if name == "" {
		return errors.Validation("component name is empty")
	}
	if provider == nil {
		return errors.Validation("provider is nil for component " + name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.providers[name]; exists {
		return errors.DuplicateComponent(name)
	}
	c.providers[name] = provider
	return nil
}

// RegisterSingleton binds a factory whose first successful result is cached.
func (c *Container) RegisterSingleton(name string, factory Factory) error {
	return c.Register(name, NewSingleton(factory))
}

// RegisterTransient binds a factory invoked on every resolution.
func (c *Container) RegisterTransient(name string, factory Factory) error {
	return c.Register(name, NewTransient(factory))
}

// RegisterValue binds a pre-created instance.
func (c *Container) RegisterValue(name string, instance any) error {
	return c.Register(name, NewValue(instance))
}

// IsRegistered reports whether a provider is bound to the name.
func (c *Container) IsRegistered(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.providers[name]
	return exists
}

// Resolve returns the instance for the named component. An unknown name
// yields a ComponentNotFound error; a failing factory yields a
// ConstructionFailed error wrapping the cause.
func (c *Container) Resolve(name string) (any, error) {
	c.mu.RLock()
	provider, exists := c.providers[name]
	c.mu.RUnlock()

	if !exists {
		return nil, errors.ComponentNotFound(name)
	}

	instance, err := provider.Resolve()
	if err != nil {
		return nil, errors.Construction(name, err)
	}
	return instance, nil
}

// ResolveTyped resolves the named component and verifies the instance is
// assignable to the expected type, either the identical type or an
// interface it implements.
func (c *Container) ResolveTyped(name string, expected reflect.Type) (any, error) {
	instance, err := c.Resolve(name)
	if err != nil {
		return nil, err
	}
	if expected == nil {
		return instance, nil
	}

	actual := reflect.TypeOf(instance)
	if actual == nil || !actual.AssignableTo(expected) {
		return nil, errors.TypeMismatch(name, expected.String(), typeName(actual))
	}
	return instance, nil
}

// Registrations returns a name-sorted snapshot of every binding, for
// startup summaries and diagnostics.
func (c *Container) Registrations() []Registration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Registration, 0, len(c.providers))
	for name, provider := range c.providers {
		result = append(result, Registration{
			Name:     name,
			Lifetime: provider.Lifetime(),
			Resolved: provider.Resolved(),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Names returns the registered component names in sorted order.
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.providers))
	for name := range c.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
