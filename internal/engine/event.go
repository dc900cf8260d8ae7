package engine

// ListenerID identifies a registered listener so it can be removed later.
// The zero value never refers to a listener.
type ListenerID uint32

type listener[F any] struct {
	id ListenerID
	fn F
}

// listenerList keeps callbacks in registration order.
type listenerList[F any] struct {
	entries []listener[F]
	nextID  ListenerID
}

func (l *listenerList[F]) add(fn F) ListenerID {
	l.nextID++
	l.entries = append(l.entries, listener[F]{id: l.nextID, fn: fn})
	return l.nextID
}

func (l *listenerList[F]) remove(id ListenerID) bool {
	for i, e := range l.entries {
		if e.id == id {
			// Copy instead of slicing in place so a snapshot held by an
			// in-flight Invoke is never mutated.
			next := make([]listener[F], 0, len(l.entries)-1)
			next = append(next, l.entries[:i]...)
			l.entries = append(next, l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Event is a Unity-style multi-cast event system.
// Allows multiple listeners to subscribe to a single event.
type Event struct {
	list listenerList[func()]
}

// AddListener adds a callback to be invoked when the event fires.
// Returns 0 for a nil callback.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	return e.list.add(callback)
}

// RemoveListener unregisters the listener with the given id.
// Reports whether a listener was removed.
func (e *Event) RemoveListener(id ListenerID) bool {
	return e.list.remove(id)
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.list.entries = nil
}

// Invoke calls all registered listeners in registration order.
// Listeners added or removed during Invoke take effect on the next call.
func (e *Event) Invoke() {
	for _, l := range e.list.entries {
		l.fn()
	}
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return len(e.list.entries)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	list listenerList[func(T)]
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	return e.list.add(callback)
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	return e.list.remove(id)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.list.entries = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.list.entries {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.list.entries)
}
