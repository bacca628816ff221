package web

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/turbokit/bootstrap"
	"github.com/kbukum/turbokit/component"
	apperrors "github.com/kbukum/turbokit/errors"
	"github.com/kbukum/turbokit/logger"
	"github.com/kbukum/turbokit/scan"
)

// Route describes one mounted endpoint.
type Route struct {
	Method      string
	Path        string
	Controller  string
	Handler     string
	StatusCode  int
	Tags        []string
	Summary     string
	Description string
}

// Router mounts the controllers discovered in an application's installed
// apps onto a gin engine. Each controller instance is resolved from the
// application container under its registration name, so controllers share
// state with everything else the container holds.
type Router struct {
	app    *bootstrap.App
	log    *logger.Logger
	routes []Route
}

// NewRouter creates a router over an application.
func NewRouter(app *bootstrap.App) *Router {
	return &Router{app: app, log: logger.Get("web")}
}

// Build creates a bare gin engine and mounts every controller on it.
// Callers that need middleware should build their own engine and use Mount.
func (r *Router) Build() (*gin.Engine, error) {
	engine := gin.New()
	if err := r.Mount(engine); err != nil {
		return nil, err
	}
	return engine, nil
}

// Mount initializes the application if needed, then registers every
// endpoint of every discovered controller on the engine. The route path is
// the controller prefix joined with the endpoint path verbatim; an empty
// composition mounts at "/".
func (r *Router) Mount(engine *gin.Engine) error {
	if engine == nil {
		return apperrors.Validation("engine is nil")
	}
	if err := r.app.Initialize(); err != nil {
		return err
	}

	controllers := r.app.Scanner.FindControllers()
	for _, ctrl := range controllers {
		if err := r.mountController(engine, ctrl); err != nil {
			return err
		}
	}

	r.log.Info("Mounted controllers", logger.Fields(
		logger.FieldCount, len(controllers),
		"routes", len(r.routes),
	))
	return nil
}

// Routes returns the mounted routes in registration order.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

func (r *Router) mountController(engine *gin.Engine, ctrl *component.Component) error {
	name := bootstrap.ComponentName(ctrl)
	instance, err := r.app.Container.Resolve(name)
	if err != nil {
		return err
	}

	var prefix string
	var controllerTags []string
	if ctrl.Tags != nil {
		prefix = ctrl.Tags.ControllerPrefix
		controllerTags = ctrl.Tags.ControllerTags
	}

	for _, ep := range r.app.Scanner.FindEndpointsInController(ctrl.Type) {
		status := statusFor(ep)
		handler, err := bindHandler(instance, ep, status)
		if err != nil {
			return err
		}

		path := prefix + ep.Path
		if path == "" {
			path = "/"
		}
		if !strings.HasPrefix(path, "/") {
			return apperrors.Validation(fmt.Sprintf(
				"route path %q for endpoint %s.%s must begin with /", path, ctrl.Name, ep.Name))
		}

		engine.Handle(ep.Method, path, handler)

		route := Route{
			Method:      ep.Method,
			Path:        path,
			Controller:  name,
			Handler:     ctrl.Name + "." + ep.Name,
			StatusCode:  status,
			Tags:        mergeTags(controllerTags, ep.Tags.EndpointTags),
			Summary:     ep.Tags.EndpointSummary,
			Description: ep.Tags.EndpointDescription,
		}
		r.routes = append(r.routes, route)
		r.app.Summary.TrackRoute(route.Method, route.Path, route.Handler)

		r.log.Debug("Registered route", logger.Fields(
			"method", route.Method,
			"path", route.Path,
			"handler", route.Handler,
		))
	}
	return nil
}

// statusFor picks the endpoint's success status. Markers built by this
// package always carry one; hand-built tags fall back to the per-method
// defaults.
func statusFor(ep scan.Endpoint) int {
	if ep.Tags != nil && ep.Tags.StatusCode != 0 {
		return ep.Tags.StatusCode
	}
	switch ep.Method {
	case http.MethodPost:
		return http.StatusCreated
	case http.MethodDelete:
		return http.StatusNoContent
	default:
		return http.StatusOK
	}
}

func mergeTags(controller, endpoint []string) []string {
	if len(controller) == 0 && len(endpoint) == 0 {
		return nil
	}
	merged := make([]string, 0, len(controller)+len(endpoint))
	merged = append(merged, controller...)
	merged = append(merged, endpoint...)
	return merged
}

var (
	ginContextType = reflect.TypeOf((*gin.Context)(nil))
	errorType      = reflect.TypeOf((*error)(nil)).Elem()
)

// bindHandler adapts an endpoint method to a gin handler bound to the
// resolved controller instance. Four shapes are supported:
//
//	func (c *Ctrl) List(ctx *gin.Context)
//	func (c *Ctrl) List(ctx *gin.Context) Result
//	func (c *Ctrl) Remove(ctx *gin.Context) error
//	func (c *Ctrl) Create(ctx *gin.Context) (Result, error)
//
// A result is serialized as JSON with the endpoint's status code, an error
// is written through RespondWithError, and the bare shape leaves the
// response entirely to the handler.
func bindHandler(instance any, ep scan.Endpoint, status int) (gin.HandlerFunc, error) {
	fn := reflect.ValueOf(ep.Func)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, apperrors.Validation(fmt.Sprintf("endpoint %s is not a function", ep.Name))
	}

	t := fn.Type()
	recv := reflect.ValueOf(instance)
	if t.NumIn() != 2 || !recv.IsValid() || !recv.Type().AssignableTo(t.In(0)) || t.In(1) != ginContextType {
		return nil, apperrors.Validation(fmt.Sprintf(
			"endpoint %s must be a controller method taking a *gin.Context, got %v", ep.Name, t))
	}

	call := func(c *gin.Context) []reflect.Value {
		return fn.Call([]reflect.Value{recv, reflect.ValueOf(c)})
	}

	switch t.NumOut() {
	case 0:
		return func(c *gin.Context) { call(c) }, nil
	case 1:
		if t.Out(0) == errorType {
			return func(c *gin.Context) {
				if out := call(c); !out[0].IsNil() {
					RespondWithError(c, out[0].Interface().(error))
					return
				}
				c.Status(status)
			}, nil
		}
		return func(c *gin.Context) {
			c.JSON(status, call(c)[0].Interface())
		}, nil
	case 2:
		if t.Out(1) != errorType {
			return nil, apperrors.Validation(fmt.Sprintf(
				"endpoint %s second return value must be error, got %v", ep.Name, t.Out(1)))
		}
		return func(c *gin.Context) {
			out := call(c)
			if !out[1].IsNil() {
				RespondWithError(c, out[1].Interface().(error))
				return
			}
			c.JSON(status, out[0].Interface())
		}, nil
	default:
		return nil, apperrors.Validation(fmt.Sprintf(
			"endpoint %s returns %d values, want at most a result and an error", ep.Name, t.NumOut()))
	}
}
