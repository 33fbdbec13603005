package valued

import (
	"github.com/toolsfactory/go-result/pkg/result"
)

// Result is the value-carrying outcome of an operation. It mirrors the
// value-less result.Result contract with one addition: a stored value that
// is only meaningful while the Result is successful. Mutators work in place,
// return the receiver for chaining, and are not safe for concurrent use on a
// shared instance.
type Result[T any] struct {
	value   T
	success bool
	errs    []*result.Error
}

func Success[T any](v T) *Result[T] {
	return &Result[T]{value: v, success: true}
}

// Failure returns a faulted Result carrying result.ErrDefault.
func Failure[T any]() *Result[T] {
	return FailureWith[T](result.ErrDefault)
}

// FailureText returns a faulted Result with a single message-only error.
func FailureText[T any](message string) *Result[T] {
	return FailureWith[T](result.NewError(message))
}

func FailureWith[T any](e *result.Error) *Result[T] {
	return &Result[T]{errs: []*result.Error{e}}
}

// FailureFrom returns a faulted Result carrying the given errors in order.
// The slice is copied; it may legally be empty.
func FailureFrom[T any](errs []*result.Error) *Result[T] {
	r := &Result[T]{errs: make([]*result.Error, len(errs))}
	copy(r.errs, errs)
	return r
}

func (r *Result[T]) IsSuccess() bool {
	return r.success
}

func (r *Result[T]) IsFaulted() bool {
	return !r.success
}

// Value returns the stored value. It panics when the Result is faulted;
// branch on IsSuccess or use Get when the state is not known.
func (r *Result[T]) Value() T {
	if !r.success {
		panic("result: cannot access the value of a faulted result")
	}
	return r.value
}

// Get returns the stored value and whether it is present.
func (r *Result[T]) Get() (T, bool) {
	return r.value, r.success
}

// Errors returns a copy of the error list. Safe to call in any state; empty
// when successful.
func (r *Result[T]) Errors() []*result.Error {
	errs := make([]*result.Error, len(r.errs))
	copy(errs, r.errs)
	return errs
}

// RootError returns the first error, or result.ErrDefault when the faulted
// Result carries none. It panics when the Result is successful.
func (r *Result[T]) RootError() *result.Error {
	if r.success {
		panic("result: root error requested on a successful result")
	}
	if len(r.errs) == 0 {
		return result.ErrDefault
	}
	return r.errs[0]
}

// AddError marks the Result faulted, clears the stored value and appends the
// error. A faulted Result never becomes successful again.
func (r *Result[T]) AddError(e *result.Error) *Result[T] {
	r.fault()
	r.errs = append(r.errs, e)
	return r
}

// AddErrors marks the Result faulted, clears the stored value and appends
// all errors in order.
func (r *Result[T]) AddErrors(errs []*result.Error) *Result[T] {
	r.fault()
	r.errs = append(r.errs, errs...)
	return r
}

// Combine folds other outcomes in: for each faulted argument, in argument
// order, the Result becomes faulted and absorbs that argument's errors in
// their original order. Successful arguments are ignored.
func (r *Result[T]) Combine(others ...result.Fallible) *Result[T] {
	for _, o := range others {
		if o.IsFaulted() {
			r.fault()
			r.errs = append(r.errs, o.Errors()...)
		}
	}
	return r
}

// fault flips the state and resets the value slot so a faulted Result never
// holds stale data.
func (r *Result[T]) fault() {
	var zero T
	r.success = false
	r.value = zero
}
