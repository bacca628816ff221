// Package component defines the declaration model for discoverable
// components in turbokit.
//
// A component is a class (a struct type with a constructor) or a function,
// carrying a flat set of metadata tags. Components are grouped into modules
// identified by dotted identifiers ("apps.home"), and modules are pushed
// into an Index at package load time via Register. The scan package walks
// an Index against the configured installed apps and classifies components
// by their tags.
//
// # Declaring a module
//
//	func init() {
//	    component.Register(component.NewModule("apps.home",
//	        component.Class("HomeController", NewHomeController,
//	            web.Controller("/home"),
//	            component.Method("Index", (*HomeController).Index, web.Get("/")),
//	        ),
//	        component.Func("simple_task", SimpleTask, task.Task()),
//	    ))
//	}
package component
