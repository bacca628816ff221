package component

import (
	"fmt"
	"reflect"
)

// Kind distinguishes class components (struct types built by a constructor)
// from function components.
type Kind int

const (
	// KindClass marks a component built by a constructor function.
	KindClass Kind = iota
	// KindFunc marks a plain function component.
	KindFunc
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFunc:
		return "func"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Component is one discoverable class or function declaration.
type Component struct {
	// Name is the declared name, unique within its module.
	Name string
	// Kind is KindClass or KindFunc.
	Kind Kind
	// Value holds the constructor for classes and the function value for
	// function components.
	Value any
	// Type is the instance type produced by the constructor for classes,
	// and the function's own type for function components.
	Type reflect.Type
	// Tags is the metadata marker set attached at declaration time.
	Tags *Tags
	// Methods lists the declared methods of a class component in
	// declaration order. Always empty for function components.
	Methods []MethodDecl

	// module is the owning module id, set when the component is placed
	// into a module declaration.
	module string
}

// ModuleID returns the id of the module that declared the component, or ""
// for a component never placed in a module.
func (c *Component) ModuleID() string { return c.module }

// MethodDecl describes one declared method of a class component.
type MethodDecl struct {
	// Name is the method name.
	Name string
	// Func is the method expression, e.g. (*HomeController).Index.
	Func any
	// Tags is the method's metadata marker set.
	Tags *Tags
}

// Decl is one element of a class declaration: either a TagOption or a
// method declaration produced by Method.
type Decl interface {
	apply(c *Component)
}

type methodDecl struct {
	m MethodDecl
}

func (d methodDecl) apply(c *Component) {
	c.Methods = append(c.Methods, d.m)
}

// Method declares a method on a class component. fn is the method
// expression, so the declared signature keeps its receiver:
//
//	component.Method("Index", (*HomeController).Index, web.Get("/"))
//
// Method panics on invalid input since declarations run at package load
// time, before any error could be handled.
func Method(name string, fn any, opts ...TagOption) Decl {
	if name == "" {
		panic("component: Method name is empty")
	}
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		panic(fmt.Sprintf("component: Method %s requires a function, got %T", name, fn))
	}

	tags := &Tags{}
	for _, opt := range opts {
		opt(tags)
	}
	normalizeTags(tags, name)

	return methodDecl{m: MethodDecl{Name: name, Func: fn, Tags: tags}}
}

// Class declares a class component: a constructor plus tag options and
// method declarations. The constructor must be a function returning the
// instance, optionally with a trailing error:
//
//	component.Class("HomeController", NewHomeController,
//	    web.Controller("/home"),
//	    component.Method("Index", (*HomeController).Index, web.Get("/")),
//	)
//
// Class panics on invalid input since declarations run at package load time.
func Class(name string, constructor any, decls ...Decl) *Component {
	if name == "" {
		panic("component: Class name is empty")
	}
	t := reflect.TypeOf(constructor)
	if t == nil || t.Kind() != reflect.Func {
		panic(fmt.Sprintf("component: Class %s requires a constructor function, got %T", name, constructor))
	}
	if t.NumOut() == 0 || t.NumOut() > 2 {
		panic(fmt.Sprintf("component: Class %s constructor must return the instance, optionally with an error", name))
	}
	if t.NumOut() == 2 && t.Out(1) != errorType {
		panic(fmt.Sprintf("component: Class %s constructor's second return value must be error", name))
	}

	c := &Component{
		Name:  name,
		Kind:  KindClass,
		Value: constructor,
		Type:  t.Out(0),
		Tags:  &Tags{},
	}
	for _, d := range decls {
		d.apply(c)
	}
	normalizeTags(c.Tags, name)

	seen := make(map[string]struct{}, len(c.Methods))
	for _, m := range c.Methods {
		if _, dup := seen[m.Name]; dup {
			panic(fmt.Sprintf("component: Class %s declares method %s twice", name, m.Name))
		}
		seen[m.Name] = struct{}{}
	}
	return c
}

// Func declares a function component:
//
//	component.Func("simple_task", SimpleTask, task.Task())
//
// Func panics on invalid input since declarations run at package load time.
func Func(name string, fn any, opts ...TagOption) *Component {
	if name == "" {
		panic("component: Func name is empty")
	}
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		panic(fmt.Sprintf("component: Func %s requires a function, got %T", name, fn))
	}

	c := &Component{
		Name:  name,
		Kind:  KindFunc,
		Value: fn,
		Type:  t,
		Tags:  &Tags{},
	}
	for _, opt := range opts {
		opt(c.Tags)
	}
	normalizeTags(c.Tags, name)
	return c
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// normalizeTags fills in markers that default to the declared name.
func normalizeTags(tags *Tags, name string) {
	if tags.IsTask && tags.TaskName == "" {
		tags.TaskName = name
	}
}
