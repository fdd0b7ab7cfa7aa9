package emit

import "sync"

// recorder captures the payloads a handler receives, in call order.
type recorder[V any] struct {
	mu    sync.Mutex
	calls []V
}

func (r *recorder[V]) Handle(payload V) {
	r.mu.Lock()
	r.calls = append(r.calls, payload)
	r.mu.Unlock()
}

func (r *recorder[V]) Calls() []V {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]V(nil), r.calls...)
}

// wildcardRecorder captures the (key, payload) pairs a wildcard handler
// receives, in call order.
type wildcardRecorder[V any] struct {
	mu    sync.Mutex
	keys  []Key
	calls []V
}

func (r *wildcardRecorder[V]) Handle(key Key, payload V) {
	r.mu.Lock()
	r.keys = append(r.keys, key)
	r.calls = append(r.calls, payload)
	r.mu.Unlock()
}

func (r *wildcardRecorder[V]) Keys() []Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Key(nil), r.keys...)
}

func (r *wildcardRecorder[V]) Calls() []V {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]V(nil), r.calls...)
}
