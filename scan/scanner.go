package scan

import (
	"reflect"
	"strings"

	"github.com/kbukum/turbokit/component"
	"github.com/kbukum/turbokit/config"
	"github.com/kbukum/turbokit/logger"
)

// Scanner walks the installed app modules of a project and classifies the
// components they declare. A module is scanned once per Scanner; repeat
// scans of the same module contribute nothing, so calling ScanInstalledApps
// twice returns the full set first and an empty slice after.
//
// The scanner runs during the single-threaded bootstrap phase and is not
// safe for concurrent use; callers must serialize scans and queries.
type Scanner struct {
	apps    []string
	index   *component.Index
	log     *logger.Logger
	scanned map[string]struct{}
}

// New creates a scanner over the project's installed apps. A nil index
// falls back to the process-wide default that Register feeds.
func New(cfg *config.Config, index *component.Index) *Scanner {
	if index == nil {
		index = component.Default()
	}
	var apps []string
	if cfg != nil {
		apps = cfg.Apps()
	}
	return &Scanner{
		apps:    apps,
		index:   index,
		log:     logger.Get("scanner"),
		scanned: make(map[string]struct{}),
	}
}

// Apps returns the installed app identifiers the scanner covers.
func (s *Scanner) Apps() []string {
	out := make([]string, len(s.apps))
	copy(out, s.apps)
	return out
}

// ScanInstalledApps discovers the components declared by every installed
// app and its direct child modules. An app whose module was never
// registered is logged and skipped; one misconfigured app must not stop
// the rest from loading. Modules already seen by this scanner are skipped,
// which makes the scan idempotent per module.
func (s *Scanner) ScanInstalledApps() []*component.Component {
	components := make([]*component.Component, 0)

	for _, app := range s.apps {
		module, ok := s.index.Lookup(app)
		if !ok {
			s.log.Warn("Could not load app module", logger.Fields(
				logger.FieldModule, app,
			))
			continue
		}

		components = append(components, s.scanModule(module)...)
		for _, child := range s.index.Children(app) {
			components = append(components, s.scanModule(child)...)
		}
	}

	return components
}

// scanModule enumerates a module's components, skipping names marked
// private by a leading underscore. The module is recorded as scanned
// before enumeration so it never contributes twice.
func (s *Scanner) scanModule(m *component.Module) []*component.Component {
	if _, done := s.scanned[m.ID()]; done {
		return nil
	}
	s.scanned[m.ID()] = struct{}{}

	var components []*component.Component
	for _, c := range m.Components() {
		if strings.HasPrefix(c.Name, "_") {
			continue
		}
		components = append(components, c)
	}

	s.log.Debug("Scanned module", logger.Fields(
		logger.FieldModule, m.ID(),
		logger.FieldCount, len(components),
	))
	return components
}

// AllComponents returns every component of every installed app regardless
// of what previous scans consumed. The scan memo is left untouched.
func (s *Scanner) AllComponents() []*component.Component {
	return s.snapshotScan()
}

// snapshotScan runs a full scan with the memo set aside so queries always
// see every component, no matter what earlier scans consumed. The memo is
// restored untouched afterwards.
func (s *Scanner) snapshotScan() []*component.Component {
	saved := s.scanned
	s.scanned = make(map[string]struct{}, len(saved))
	defer func() { s.scanned = saved }()
	return s.ScanInstalledApps()
}

// FindComponentsByType returns the components whose instance type is
// assignable to t, either t itself or an interface it implements.
func (s *Scanner) FindComponentsByType(t reflect.Type) []*component.Component {
	if t == nil {
		return nil
	}
	var matches []*component.Component
	for _, c := range s.snapshotScan() {
		if c.Type != nil && c.Type.AssignableTo(t) {
			matches = append(matches, c)
		}
	}
	return matches
}

// FindComponentsWithDecorator returns the components whose classification
// label equals name.
func (s *Scanner) FindComponentsWithDecorator(name string) []*component.Component {
	var matches []*component.Component
	for _, c := range s.snapshotScan() {
		if c.Tags.HasDecorator(name) {
			matches = append(matches, c)
		}
	}
	return matches
}

// FindControllers returns the class components marked as controllers.
func (s *Scanner) FindControllers() []*component.Component {
	var controllers []*component.Component
	for _, c := range s.snapshotScan() {
		if c.Kind == component.KindClass && c.Tags != nil && c.Tags.IsController {
			controllers = append(controllers, c)
		}
	}
	return controllers
}

// FindEndpointsInController returns the endpoint methods of the controller
// whose instance type is controller, in declaration order. Paths are the
// endpoints' own paths; composing the controller prefix is the router's
// job. The HTTP method falls back to GET when a marker omits it.
func (s *Scanner) FindEndpointsInController(controller reflect.Type) []Endpoint {
	if controller == nil {
		return nil
	}
	for _, c := range s.snapshotScan() {
		if c.Kind != component.KindClass || c.Type != controller {
			continue
		}
		return endpointsOf(c)
	}
	return nil
}

func endpointsOf(c *component.Component) []Endpoint {
	var endpoints []Endpoint
	for _, m := range c.Methods {
		if strings.HasPrefix(m.Name, "_") {
			continue
		}
		if m.Tags == nil || !m.Tags.IsEndpoint {
			continue
		}
		method := m.Tags.HTTPMethod
		if method == "" {
			method = "GET"
		}
		endpoints = append(endpoints, Endpoint{
			Method: method,
			Path:   m.Tags.EndpointPath,
			Name:   m.Name,
			Func:   m.Func,
			Tags:   m.Tags,
		})
	}
	return endpoints
}

// FindTasks returns every task marker in the installed apps: function
// components and class methods alike.
func (s *Scanner) FindTasks() []Task {
	var tasks []Task
	for _, c := range s.snapshotScan() {
		if c.Kind == component.KindFunc && c.Tags != nil && c.Tags.IsTask {
			tasks = append(tasks, Task{Name: c.Tags.TaskName, Func: c.Value, Tags: c.Tags})
			continue
		}
		for _, m := range c.Methods {
			if m.Tags != nil && m.Tags.IsTask {
				tasks = append(tasks, Task{Name: m.Tags.TaskName, Func: m.Func, Tags: m.Tags})
			}
		}
	}
	return tasks
}

// FindCachedFunctions returns the function components marked as cached.
// Only standalone functions qualify; methods are not cacheable.
func (s *Scanner) FindCachedFunctions() []*component.Component {
	var cached []*component.Component
	for _, c := range s.snapshotScan() {
		if c.Kind == component.KindFunc && c.Tags != nil && c.Tags.IsCached {
			cached = append(cached, c)
		}
	}
	return cached
}
