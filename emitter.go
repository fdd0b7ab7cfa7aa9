package emit

// Emitter is a synchronous in-process event emitter. Handlers registered
// under a key run inline, in registration order, whenever that key is
// emitted; wildcard handlers run after them on every emission. Payloads are
// generic per emitter (V), keys are dynamic: strings, Tokens or any other
// comparable value.
//
// Dispatch works against a snapshot, so handlers may register or remove
// handlers (including themselves) mid-emission without disturbing the
// emission already in flight. A handler that panics is not recovered; the
// panic unwinds through Emit to its caller and the rest of that emission is
// skipped.
type Emitter[V any] struct {
	registry *Registry[V]
	logger   Logger
}

// New creates an Emitter over a fresh empty Registry unless WithRegistry
// supplies one.
func New[V any](opts ...Option[V]) *Emitter[V] {
	e := &Emitter[V]{
		registry: NewRegistry[V](),
		logger:   noopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry exposes the underlying registry. Mutating it directly is
// equivalent to going through the emitter; changes are picked up by the
// next emission.
func (e *Emitter[V]) Registry() *Registry[V] {
	return e.registry
}

// On registers handler under key, appending it after any handlers already
// there. Any key and any handler are accepted as-is; nothing is validated.
func (e *Emitter[V]) On(key Key, handler Handler[V]) RemoveFunc {
	id := e.registry.Add(key, handler)
	e.logger.WithField("key", key).Debugf("handler %d registered", id)

	return func() {
		e.registry.removeID(key, id)
	}
}

// OnWildcard registers handler to run on every emission, after the keyed
// handlers of that emission.
func (e *Emitter[V]) OnWildcard(handler WildcardHandler[V]) RemoveFunc {
	id := e.registry.AddWildcard(handler)
	e.logger.Debugf("wildcard handler %d registered", id)

	return func() {
		e.registry.removeWildcardID(id)
	}
}

// Once registers handler to run on the next emission for key only. The
// registration is withdrawn before handler runs, so an emission performed
// by handler itself cannot trigger it again. A pending once can be
// cancelled either through the returned RemoveFunc or with
// Off(key, handler).
func (e *Emitter[V]) Once(key Key, handler Handler[V]) RemoveFunc {
	r := e.registry
	id := r.ids.Add(1)

	wrapper := func(payload V) {
		r.removeID(key, id)
		handler(payload)
	}
	// The entry keeps the original handler's pointer so Off can match it.
	r.insert(key, entry[V]{id: id, ptr: funcPtr(handler), call: wrapper})
	e.logger.WithField("key", key).Debugf("handler %d registered once", id)

	return func() {
		r.removeID(key, id)
	}
}

// OnceWildcard registers handler to run on the next emission only, whatever
// its key.
func (e *Emitter[V]) OnceWildcard(handler WildcardHandler[V]) RemoveFunc {
	r := e.registry
	id := r.ids.Add(1)

	wrapper := func(key Key, payload V) {
		r.removeWildcardID(id)
		handler(key, payload)
	}
	r.insertWildcard(wildcardEntry[V]{id: id, ptr: funcPtr(handler), call: wrapper})
	e.logger.Debugf("wildcard handler %d registered once", id)

	return func() {
		r.removeWildcardID(id)
	}
}

// Off removes the first registration of handler under key, front to back.
// Removing a handler that was never registered is a no-op. When the same
// func is registered more than once, each Off call peels off one copy.
func (e *Emitter[V]) Off(key Key, handler Handler[V]) {
	e.registry.Remove(key, handler)
}

// OffWildcard removes the first wildcard registration of handler.
func (e *Emitter[V]) OffWildcard(handler WildcardHandler[V]) {
	e.registry.RemoveWildcard(handler)
}

// Clear drops every handler under key, leaving the key with an explicit
// empty list. Wildcard handlers are untouched and keep firing for key.
func (e *Emitter[V]) Clear(key Key) {
	e.registry.Clear(key)
}

// ClearWildcards drops every wildcard handler.
func (e *Emitter[V]) ClearWildcards() {
	e.registry.ClearWildcards()
}

// Emit runs all handlers for key with payload, in registration order, then
// all wildcard handlers with (key, payload). Each phase dispatches against
// a snapshot taken when the phase starts; the wildcard snapshot is taken
// only after the keyed phase finished. Emitting a key nobody listens to
// does nothing.
func (e *Emitter[V]) Emit(key Key, payload V) {
	keyed := e.registry.snapshot(key)
	e.logger.WithField("key", key).Debugf("emitting to %d handlers", len(keyed))

	for _, ent := range keyed {
		ent.call(payload)
	}
	for _, ent := range e.registry.snapshotWildcards() {
		ent.call(key, payload)
	}
}

// Close resets the registry, dropping every handler for every key along
// with all wildcard handlers. The emitter remains usable afterwards.
func (e *Emitter[V]) Close() {
	e.registry.Reset()
	e.logger.Debugf("emitter closed")
}
