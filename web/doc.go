// Package web marks classes as HTTP controllers and mounts them on gin.
//
// A controller is a class component declared with the Controller marker;
// its endpoints are methods declared with Get, Post, Put, Delete, or Patch:
//
//	component.Register(component.NewModule("apps.home",
//	    component.Class("HomeController", NewHomeController,
//	        web.Controller("/home", web.WithTags("home")),
//	        component.Method("List", (*HomeController).List, web.Get("/list")),
//	        component.Method("Create", (*HomeController).Create, web.Post("", web.WithStatus(202))),
//	    ),
//	))
//
// The Router resolves each controller instance from the application
// container and registers its endpoints on a gin engine:
//
//	app, err := bootstrap.New(cfg)
//	engine, err := web.NewRouter(app).Build()
//	engine.Run(":8080")
//
// Endpoint methods take a *gin.Context and may additionally return a
// result, an error, or both; returned results are serialized as JSON with
// the endpoint's status code.
package web
