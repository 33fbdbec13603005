package pipe

import (
	"errors"
	"fmt"

	"github.com/toolsfactory/go-result/pkg/result"
	"github.com/toolsfactory/go-result/pkg/result/valued"
)

// MetadataCaughtKey is the metadata key under which the bridge combinators
// record the failure they caught on behalf of the pipeline.
const MetadataCaughtKey = "caught"

// BindTry chains a fallible call onto a successful input. A non-nil error
// from f faults the pipeline with fallback, the caught error attached under
// MetadataCaughtKey and recorded as the fallback's cause. A faulted input
// short-circuits without invoking f.
//
// The fallback is mutated in place and is single-use: passing the same
// instance to a second failing bridge panics on the duplicate metadata key.
// Construct a fresh fallback per call site.
func BindTry[In, Out any](r *valued.Result[In], f func(v In) (Out, error), fallback *result.Error) *valued.Result[Out] {
	if r.IsFaulted() {
		return valued.FailureFrom[Out](r.Errors())
	}

	out, err := f(r.Value())
	if err != nil {
		return valued.FailureWith[Out](fallback.WithCause(err).AddMetadata(MetadataCaughtKey, err))
	}
	return valued.Success(out)
}

// BindRecover chains f onto a successful input inside a protected region:
// any panic out of f is recovered and converted into a faulted Result built
// from fallback, with the recovered value attached under MetadataCaughtKey
// and recorded as the fallback's cause (non-error panic values are wrapped).
// A faulted input short-circuits without invoking f.
//
// The fallback is single-use, as with BindTry.
func BindRecover[In, Out any](r *valued.Result[In], f func(v In) Out, fallback *result.Error) (out *valued.Result[Out]) {
	if r.IsFaulted() {
		return valued.FailureFrom[Out](r.Errors())
	}

	defer func() {
		if caught := recover(); caught != nil {
			fallback.WithCause(recoveredCause(caught)).AddMetadata(MetadataCaughtKey, caught)
			out = valued.FailureWith[Out](fallback)
		}
	}()

	return valued.Success(f(r.Value()))
}

// BindRecoverAs is the typed variant of BindRecover: it converts only panic
// values that are, or wrap, an error of type E. Any other panic propagates
// to the caller unchanged.
//
// The fallback is single-use, as with BindTry.
func BindRecoverAs[E error, In, Out any](r *valued.Result[In], f func(v In) Out, fallback *result.Error) (out *valued.Result[Out]) {
	if r.IsFaulted() {
		return valued.FailureFrom[Out](r.Errors())
	}

	defer func() {
		caught := recover()
		if caught == nil {
			return
		}
		var target E
		if err, ok := caught.(error); ok && errors.As(err, &target) {
			fallback.WithCause(target).AddMetadata(MetadataCaughtKey, target)
			out = valued.FailureWith[Out](fallback)
			return
		}
		panic(caught)
	}()

	return valued.Success(f(r.Value()))
}

// Try lifts a plain (value, error) call into a valued Result, wrapping the
// error via result.FromCause with a message naming the operation.
func Try[T any](op string, v T, err error) *valued.Result[T] {
	if err != nil {
		return valued.FailureWith[T](result.FromCauseMessage(err, fmt.Sprintf("%s failed", op)))
	}
	return valued.Success(v)
}

func recoveredCause(caught any) error {
	if err, ok := caught.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", caught)
}
