package component

import (
	"strings"
	"sync"
)

// Index is a registry of module declarations keyed by module identifier.
// It stands in for the import system of a dynamic language: app packages
// push their modules into an index at load time, and the scanner walks the
// index instead of importing files.
type Index struct {
	mu      sync.RWMutex
	modules map[string]*Module
	order   []string
}

// NewIndex creates an empty module index.
func NewIndex() *Index {
	return &Index{modules: make(map[string]*Module)}
}

// Register adds a module to the index. Like database/sql driver
// registration it panics on nil modules and duplicate identifiers: both are
// programmer errors surfaced at package load time.
func (ix *Index) Register(m *Module) {
	if m == nil {
		panic("component: Register module is nil")
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if _, dup := ix.modules[m.id]; dup {
		panic("component: Register called twice for module " + m.id)
	}
	ix.modules[m.id] = m
	ix.order = append(ix.order, m.id)
}

// Lookup returns the module registered under id.
func (ix *Index) Lookup(id string) (*Module, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	m, ok := ix.modules[id]
	return m, ok
}

// Children returns the modules registered directly below id, one dotted
// level deep, in registration order. For id "apps.home" it returns
// "apps.home.tasks" but not "apps.home.tasks.helpers".
func (ix *Index) Children(id string) []*Module {
	prefix := id + "."
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var out []*Module
	for _, mid := range ix.order {
		if !strings.HasPrefix(mid, prefix) {
			continue
		}
		if strings.Contains(mid[len(prefix):], ".") {
			continue
		}
		out = append(out, ix.modules[mid])
	}
	return out
}

// IDs returns all registered module identifiers in registration order.
func (ix *Index) IDs() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]string, len(ix.order))
	copy(out, ix.order)
	return out
}

var defaultIndex = NewIndex()

// Register adds a module to the default index. App packages call this from
// an init function:
//
//	func init() {
//	    component.Register(component.NewModule("apps.home",
//	        component.Func("simple_task", SimpleTask, task.Task()),
//	    ))
//	}
func Register(m *Module) { defaultIndex.Register(m) }

// Default returns the default module index used by Register.
func Default() *Index { return defaultIndex }
