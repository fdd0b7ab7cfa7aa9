package emit

import (
	"context"

	"github.com/pkg/errors"
)

// WaitFor returns a channel that receives the payload of the next emission
// for key, and nothing else. Emissions that happened before the call are
// not observed. If key is never emitted the channel never receives; callers
// needing a deadline should use Wait, or select against their own signal.
func (e *Emitter[V]) WaitFor(key Key) <-chan V {
	ch := make(chan V, 1)
	e.Once(key, func(payload V) {
		ch <- payload
	})
	return ch
}

// Wait blocks until the next emission for key, returning its payload, or
// until ctx is done, returning the zero payload and the context's error.
// On cancellation the underlying registration is withdrawn.
func (e *Emitter[V]) Wait(ctx context.Context, key Key) (V, error) {
	ch := make(chan V, 1)
	remove := e.Once(key, func(payload V) {
		ch <- payload
	})

	select {
	case payload := <-ch:
		return payload, nil
	case <-ctx.Done():
		remove()
		var zero V
		return zero, errors.Wrap(ctx.Err(), "waiting for event")
	}
}
