package pipe

import (
	"github.com/toolsfactory/go-result/pkg/result"
	"github.com/toolsfactory/go-result/pkg/result/valued"
)

// Switch invokes exactly one branch based on the outcome state.
func Switch(r *result.Result, onSuccess func(), onFailure func(errs []*result.Error)) {
	if r.IsSuccess() {
		onSuccess()
	} else {
		onFailure(r.Errors())
	}
}

// SwitchValue invokes exactly one branch, passing the value on success.
func SwitchValue[T any](r *valued.Result[T], onSuccess func(v T), onFailure func(errs []*result.Error)) {
	if r.IsSuccess() {
		onSuccess(r.Value())
	} else {
		onFailure(r.Errors())
	}
}

// Map collapses the outcome into a value of type Out via whichever branch
// matches the state.
func Map[Out any](r *result.Result, onSuccess func() Out, onFailure func(errs []*result.Error) Out) Out {
	if r.IsSuccess() {
		return onSuccess()
	}
	return onFailure(r.Errors())
}

// MapValue collapses a valued outcome into a value of type Out.
func MapValue[In, Out any](r *valued.Result[In], onSuccess func(v In) Out, onFailure func(errs []*result.Error) Out) Out {
	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return onFailure(r.Errors())
}

// Bind chains f onto a successful input and returns f's result unchanged. A
// faulted input short-circuits: f is not invoked and the input's errors are
// carried into a new faulted Result of the output type.
func Bind[In, Out any](r *valued.Result[In], f func(v In) *valued.Result[Out]) *valued.Result[Out] {
	if r.IsSuccess() {
		return f(r.Value())
	}
	return valued.FailureFrom[Out](r.Errors())
}

// Tap invokes action with the value for its side effect when the input is
// successful, then returns the original Result unchanged in either case.
func Tap[T any](r *valued.Result[T], action func(v T)) *valued.Result[T] {
	if r.IsSuccess() {
		action(r.Value())
	}
	return r
}
