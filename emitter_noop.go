package emit

type emitter[V any] interface {
	// On registers a handler for the given key and returns its remover.
	On(key Key, handler Handler[V]) RemoveFunc

	// OnWildcard registers a handler invoked on every emission.
	OnWildcard(handler WildcardHandler[V]) RemoveFunc

	// Once registers a handler that fires on the next emission for key only.
	Once(key Key, handler Handler[V]) RemoveFunc

	// OnceWildcard registers a wildcard handler that fires once.
	OnceWildcard(handler WildcardHandler[V]) RemoveFunc

	// Off removes the first registration of handler under key.
	Off(key Key, handler Handler[V])

	// OffWildcard removes the first wildcard registration of handler.
	OffWildcard(handler WildcardHandler[V])

	// Clear removes all handlers registered under key.
	Clear(key Key)

	// ClearWildcards removes all wildcard handlers.
	ClearWildcards()

	// Emit runs the handlers for key, then the wildcard handlers.
	Emit(key Key, payload V)

	// WaitFor returns a channel receiving the next payload emitted for key.
	WaitFor(key Key) <-chan V

	// Close drops every registered handler.
	Close()
}

// NoopEmitter discards registrations and emissions. Useful to disable
// eventing without touching call sites.
type NoopEmitter[V any] struct{}

func (NoopEmitter[V]) On(Key, Handler[V]) RemoveFunc { return func() {} }

func (NoopEmitter[V]) OnWildcard(WildcardHandler[V]) RemoveFunc { return func() {} }

func (NoopEmitter[V]) Once(Key, Handler[V]) RemoveFunc { return func() {} }

func (NoopEmitter[V]) OnceWildcard(WildcardHandler[V]) RemoveFunc { return func() {} }

func (NoopEmitter[V]) Off(Key, Handler[V]) {}

func (NoopEmitter[V]) OffWildcard(WildcardHandler[V]) {}

func (NoopEmitter[V]) Clear(Key) {}

func (NoopEmitter[V]) ClearWildcards() {}

func (NoopEmitter[V]) Emit(Key, V) {}

func (NoopEmitter[V]) Close() {}

// WaitFor returns a channel that never receives.
func (NoopEmitter[V]) WaitFor(Key) <-chan V { return nil }

var (
	_ emitter[any] = (*Emitter[any])(nil)
	_ emitter[any] = NoopEmitter[any]{}
)
