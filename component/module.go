package component

import "fmt"

// Module is a named, ordered set of component declarations. A module's
// identifier is dotted, mirroring a package path relative to the project,
// e.g. "apps.home" or "apps.home.tasks".
type Module struct {
	id         string
	components []*Component
}

// NewModule builds a module declaration. It panics on invalid input since
// module declarations run at package load time.
func NewModule(id string, components ...*Component) *Module {
	if id == "" {
		panic("component: NewModule id is empty")
	}
	seen := make(map[string]struct{}, len(components))
	for _, c := range components {
		if c == nil {
			panic(fmt.Sprintf("component: NewModule %s contains a nil component", id))
		}
		if _, dup := seen[c.Name]; dup {
			panic(fmt.Sprintf("component: NewModule %s declares %s twice", id, c.Name))
		}
		seen[c.Name] = struct{}{}
		c.module = id
	}
	return &Module{id: id, components: components}
}

// ID returns the module identifier.
func (m *Module) ID() string { return m.id }

// Components returns the module's declarations in declaration order.
func (m *Module) Components() []*Component {
	out := make([]*Component, len(m.components))
	copy(out, m.components)
	return out
}
