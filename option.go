package emit

// Option configures an Emitter at construction time.
type Option[V any] func(*Emitter[V])

// WithRegistry runs the emitter over reg instead of a fresh registry.
// Handlers already present in reg dispatch on the very first emission. A
// nil reg is ignored.
func WithRegistry[V any](reg *Registry[V]) Option[V] {
	return func(e *Emitter[V]) {
		if reg != nil {
			e.registry = reg
		}
	}
}

// WithLogger makes the emitter trace registrations, removals and emissions
// at debug level. The default is no logging at all.
func WithLogger[V any](l Logger) Option[V] {
	return func(e *Emitter[V]) {
		if l != nil {
			e.logger = l
		}
	}
}
