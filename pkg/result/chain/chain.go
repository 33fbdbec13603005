package chain

import (
	"github.com/toolsfactory/go-result/pkg/result"
	"github.com/toolsfactory/go-result/pkg/result/pipe"
	"github.com/toolsfactory/go-result/pkg/result/valued"
)

// Chain wraps a valued.Result to enable fluent pipelines.
type Chain[T any] struct {
	res *valued.Result[T]
}

// Start creates a new chain from an existing result.
func Start[T any](r *valued.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Start(valued.Success(v))
}

// Result returns the underlying valued.Result.
func (c Chain[T]) Result() *valued.Result[T] {
	return c.res
}

// Then chains a function that returns the next Result[T], short-circuiting
// on failure.
func (c Chain[T]) Then(onSuccess func(v T) *valued.Result[T]) Chain[T] {
	return Chain[T]{res: pipe.Bind(c.res, onSuccess)}
}

// ThenTry chains a fallible call; a returned error faults the chain with
// fallback (see pipe.BindTry).
func (c Chain[T]) ThenTry(tryOnSuccess func(v T) (T, error), fallback *result.Error) Chain[T] {
	return Chain[T]{res: pipe.BindTry(c.res, tryOnSuccess, fallback)}
}

// Ensure performs a side effect on success without changing the result.
func (c Chain[T]) Ensure(onSuccess func(v T)) Chain[T] {
	return Chain[T]{res: pipe.Tap(c.res, onSuccess)}
}

// Via chains a function that moves the chain to a new value type.
func Via[T, U any](c Chain[T], onSuccess func(v T) *valued.Result[U]) Chain[U] {
	return Chain[U]{res: pipe.Bind(c.res, onSuccess)}
}

// MapTo transforms the successful value into a new type, keeping failures
// flowing through unchanged.
func MapTo[T, U any](c Chain[T], onSuccess func(v T) U) Chain[U] {
	return Chain[U]{res: pipe.Bind(c.res, func(v T) *valued.Result[U] {
		return valued.Success(onSuccess(v))
	})}
}

// Finally collapses the chain into a final value via the matching handler.
func Finally[T, U any](c Chain[T], onSuccess func(v T) U, onFailure func(errs []*result.Error) U) U {
	return pipe.MapValue(c.res, onSuccess, onFailure)
}
