package emit

import (
	"reflect"
	"sync"
	"sync/atomic"
)

type (
	// Key identifies a group of handlers. Any comparable value works: string
	// keys and Token keys may live side by side in the same registry and
	// never collide with each other.
	Key = any

	// Handler is a callback invoked with the payload of an emission.
	Handler[V any] func(payload V)

	// WildcardHandler is invoked on every emission, whatever the key, and
	// receives the key alongside the payload.
	WildcardHandler[V any] func(key Key, payload V)

	// RemoveFunc undoes exactly the registration that returned it. Calling
	// it more than once is safe; later calls find nothing to remove.
	RemoveFunc func()

	entry[V any] struct {
		id   uint64
		ptr  uintptr
		call Handler[V]
	}

	wildcardEntry[V any] struct {
		id   uint64
		ptr  uintptr
		call WildcardHandler[V]
	}

	// Registry holds handlers grouped by key, plus the wildcard handlers
	// that fire on every emission. An Emitter operates over exactly one
	// Registry; callers may also build one themselves, pre-populate it and
	// hand it over with WithRegistry, or mutate it directly at any point.
	// Wildcard handlers are kept out of the keyed map so no caller-supplied
	// key can ever shadow them.
	Registry[V any] struct {
		mu        sync.RWMutex
		ids       atomic.Uint64
		handlers  map[Key][]entry[V]
		wildcards []wildcardEntry[V]
	}
)

// funcPtr yields the code pointer of a handler func. Go funcs cannot be
// compared with ==, so removal-by-value matches on this pointer instead.
// Two registrations of the same func share a pointer; each keeps its own id.
func funcPtr(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// NewRegistry creates an empty Registry.
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{
		handlers: make(map[Key][]entry[V]),
	}
}

func (r *Registry[V]) insert(key Key, ent entry[V]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[key] = append(r.handlers[key], ent)
}

func (r *Registry[V]) insertWildcard(ent wildcardEntry[V]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wildcards = append(r.wildcards, ent)
}

// Add appends handler to the list for key, creating the list if absent, and
// returns the registration id. Duplicate registrations of the same func are
// permitted; each one is independently dispatchable and removable.
func (r *Registry[V]) Add(key Key, handler Handler[V]) uint64 {
	id := r.ids.Add(1)
	r.insert(key, entry[V]{id: id, ptr: funcPtr(handler), call: handler})
	return id
}

// AddWildcard appends handler to the wildcard list and returns the
// registration id.
func (r *Registry[V]) AddWildcard(handler WildcardHandler[V]) uint64 {
	id := r.ids.Add(1)
	r.insertWildcard(wildcardEntry[V]{id: id, ptr: funcPtr(handler), call: handler})
	return id
}

// Remove drops the first handler registered under key whose func value
// matches handler, scanning from the front. Nothing happens when no match
// exists. A list emptied by removal stays present as an empty list.
func (r *Registry[V]) Remove(key Key, handler Handler[V]) {
	ptr := funcPtr(handler)

	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.handlers[key]
	for i, ent := range list {
		if ent.ptr == ptr {
			r.handlers[key] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// RemoveWildcard drops the first wildcard handler matching handler.
func (r *Registry[V]) RemoveWildcard(handler WildcardHandler[V]) {
	ptr := funcPtr(handler)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ent := range r.wildcards {
		if ent.ptr == ptr {
			r.wildcards = append(r.wildcards[:i], r.wildcards[i+1:]...)
			return
		}
	}
}

func (r *Registry[V]) removeID(key Key, id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.handlers[key]
	for i, ent := range list {
		if ent.id == id {
			r.handlers[key] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (r *Registry[V]) removeWildcardID(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ent := range r.wildcards {
		if ent.id == id {
			r.wildcards = append(r.wildcards[:i], r.wildcards[i+1:]...)
			return
		}
	}
}

// Clear replaces the list for key with a new empty one. The key keeps an
// explicit empty entry afterwards, even when it had none before.
func (r *Registry[V]) Clear(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[key] = make([]entry[V], 0)
}

// ClearWildcards empties the wildcard list.
func (r *Registry[V]) ClearWildcards() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wildcards = make([]wildcardEntry[V], 0)
}

// Reset restores the registry to its freshly constructed state, dropping
// every key and every wildcard handler.
func (r *Registry[V]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = make(map[Key][]entry[V])
	r.wildcards = nil
}

// Handlers returns the handlers registered under key, in registration order.
func (r *Registry[V]) Handlers(key Key) []Handler[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.handlers[key]
	out := make([]Handler[V], 0, len(list))
	for _, ent := range list {
		out = append(out, ent.call)
	}
	return out
}

// Wildcards returns the registered wildcard handlers, in registration order.
func (r *Registry[V]) Wildcards() []WildcardHandler[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]WildcardHandler[V], 0, len(r.wildcards))
	for _, ent := range r.wildcards {
		out = append(out, ent.call)
	}
	return out
}

// Has reports whether key holds a list, empty or not. A key cleared with
// Clear still has one.
func (r *Registry[V]) Has(key Key) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.handlers[key]
	return ok
}

// Len returns the number of handlers registered under key.
func (r *Registry[V]) Len(key Key) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers[key])
}

// WildcardLen returns the number of registered wildcard handlers.
func (r *Registry[V]) WildcardLen() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.wildcards)
}

// Keys returns every key holding a list, cleared-empty ones included. Order
// is unspecified.
func (r *Registry[V]) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]Key, 0, len(r.handlers))
	for key := range r.handlers {
		keys = append(keys, key)
	}
	return keys
}

// snapshot copies the current list for key so an in-flight dispatch is not
// affected by registrations or removals performed by the handlers it runs.
func (r *Registry[V]) snapshot(key Key) []entry[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entry[V](nil), r.handlers[key]...)
}

func (r *Registry[V]) snapshotWildcards() []wildcardEntry[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]wildcardEntry[V](nil), r.wildcards...)
}
