package iocoro

import (
	"context"
)

// coroutineContextKey is a unique type used as a key for storing the
// running Coroutine in a context.
type coroutineContextKey struct{}

// withCoroutineContext creates a new context carrying c.
func withCoroutineContext(ctx context.Context, c Coroutine) context.Context {
	return context.WithValue(ctx, coroutineContextKey{}, c)
}

// CoroutineFromContext retrieves the coroutine Run is driving. Drivers
// can use it from Handle to tell which coroutine issued a request.
func CoroutineFromContext(ctx context.Context) (Coroutine, bool) {
	val, ok := ctx.Value(coroutineContextKey{}).(Coroutine)
	return val, ok
}

// MustCoroutineFromContext is like CoroutineFromContext but panics when
// ctx does not carry a coroutine.
func MustCoroutineFromContext(ctx context.Context) Coroutine {
	val, ok := CoroutineFromContext(ctx)
	if !ok {
		panic("iocoro: coroutine not found in context")
	}
	return val
}
