package engine

import (
	"fmt"
	"slices"
)

// registry maps names from scene files to constructors. Registration happens
// from init functions, so it is not guarded.
type registry[E any] struct {
	kind    string
	entries map[string]E
}

func newRegistry[E any](kind string) *registry[E] {
	return &registry[E]{kind: kind, entries: map[string]E{}}
}

// register panics on a duplicate name; two packages claiming the same scene
// name is a build mistake.
func (r *registry[E]) register(name string, entry E) {
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("%s %q already registered", r.kind, name))
	}
	r.entries[name] = entry
}

func (r *registry[E]) lookup(name string) (E, bool) {
	e, ok := r.entries[name]
	return e, ok
}

func (r *registry[E]) names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Serializable is a built-in component that can round-trip through scene files.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// ComponentFactory returns a component with default values.
type ComponentFactory func() Serializable

var componentRegistry = newRegistry[ComponentFactory]("component")

// RegisterComponent makes a built-in component type loadable by name.
func RegisterComponent(name string, factory ComponentFactory) {
	componentRegistry.register(name, factory)
}

// CreateComponent builds a registered component and applies data on top of
// its defaults. Returns nil for unknown names.
func CreateComponent(name string, data map[string]any) Serializable {
	factory, ok := componentRegistry.lookup(name)
	if !ok {
		return nil
	}
	c := factory()
	if data != nil {
		c.Deserialize(data)
	}
	return c
}

// GetRegisteredComponents returns the registered component names, sorted.
func GetRegisteredComponents() []string {
	return componentRegistry.names()
}
