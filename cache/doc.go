// Package cache marks function components as cacheable.
//
//	component.Register(component.NewModule("apps.pricing",
//	    component.Func("lookup_price", LookupPrice,
//	        cache.Cached(cache.WithTTL(5*time.Minute)),
//	    ),
//	))
//
// The scanner lists marked functions via FindCachedFunctions. This package
// carries only the markers; the store that honors them is the
// application's choice.
package cache
