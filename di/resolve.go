package di

import (
	"fmt"
	"reflect"

	"github.com/kbukum/turbokit/errors"
)

// Resolve resolves a component with type safety, returning an error when the
// name is unknown or the instance does not satisfy T.
//
// Example:
//
//	store, err := di.Resolve[UserStore](c, "UserStore")
//	if err != nil {
//	    return err
//	}
func Resolve[T any](c *Container, name string) (T, error) {
	var zero T
	instance, err := c.Resolve(name)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, errors.TypeMismatch(name, typeOf[T]().String(), typeName(reflect.TypeOf(instance)))
	}
	return result, nil
}

// MustResolve resolves a component with type safety and panics on failure.
// Use it during bootstrap where a missing dependency is unrecoverable.
//
// Example:
//
//	cfg := di.MustResolve[*config.Config](c, di.Core.Config)
func MustResolve[T any](c *Container, name string) T {
	result, err := Resolve[T](c, name)
	if err != nil {
		panic(fmt.Sprintf("di: resolve %s: %v", name, err))
	}
	return result
}

// TryResolve resolves a component, returning false when it is absent or has
// the wrong type. Use it for optional dependencies.
//
// Example:
//
//	if tracer, ok := di.TryResolve[trace.Tracer](c, di.Core.Tracer); ok {
//	    ctx, span := tracer.Start(ctx, "scan")
//	    defer span.End()
//	}
func TryResolve[T any](c *Container, name string) (T, bool) {
	result, err := Resolve[T](c, name)
	if err != nil {
		var zero T
		return zero, false
	}
	return result, true
}

// typeOf reports the reflect type of T itself, including interface types,
// which reflect.TypeOf on a zero value cannot name.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
