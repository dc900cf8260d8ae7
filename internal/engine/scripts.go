package engine

// ScriptFactory creates a Component from JSON props.
type ScriptFactory func(props map[string]any) Component

// ScriptSerializer converts a Component back to props for JSON saving.
// It returns nil for components it does not own.
type ScriptSerializer func(c Component) map[string]any

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
}

var scriptRegistry = newRegistry[scriptEntry]("script")

// RegisterScript registers a named script with a factory and optional serializer.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer) {
	scriptRegistry.register(name, scriptEntry{factory: factory, serializer: serializer})
}

// HasScript reports whether name is taken.
func HasScript(name string) bool {
	_, ok := scriptRegistry.lookup(name)
	return ok
}

// CreateScript builds the named script. Nil props are treated as empty;
// unknown names return nil.
func CreateScript(name string, props map[string]any) Component {
	entry, ok := scriptRegistry.lookup(name)
	if !ok {
		return nil
	}
	if props == nil {
		props = map[string]any{}
	}
	return entry.factory(props)
}

// SerializeScript asks each serializer in name order to claim c.
func SerializeScript(c Component) (string, map[string]any, bool) {
	for _, name := range scriptRegistry.names() {
		entry, _ := scriptRegistry.lookup(name)
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// GetRegisteredScripts returns the registered script names, sorted.
func GetRegisteredScripts() []string {
	return scriptRegistry.names()
}
