// Package di provides the dependency injection container for turbokit
// applications.
//
// Components are registered under unique names with a provider that pairs a
// factory with a lifetime. Singleton providers cache the first successful
// instance and survive concurrent first resolutions with the factory invoked
// at most once; transient providers construct per call. Dependency wiring is
// explicit: a factory closes over Resolve calls for what it needs, the
// container never builds an implicit dependency graph.
//
// # Registration
//
//	c := di.New()
//	c.RegisterSingleton("UserStore", func() (any, error) {
//	    return NewUserStore(), nil
//	})
//
// # Resolution
//
//	store := di.MustResolve[*UserStore](c, "UserStore")
package di
