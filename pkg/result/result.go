package result

// Result is the value-less outcome of an operation: either successful with no
// errors, or faulted with an ordered list of them. Mutators work in place and
// return the receiver for chaining; they are not safe for concurrent use on a
// shared instance.
type Result struct {
	success bool
	errs    []*Error
}

func Success() *Result {
	return &Result{success: true}
}

// Failure returns a faulted Result carrying ErrDefault.
func Failure() *Result {
	return FailureWith(ErrDefault)
}

// FailureText returns a faulted Result with a single message-only error.
func FailureText(message string) *Result {
	return FailureWith(NewError(message))
}

func FailureWith(e *Error) *Result {
	return &Result{errs: []*Error{e}}
}

// FailureFrom returns a faulted Result carrying the given errors in order.
// The slice is copied; it may legally be empty.
func FailureFrom(errs []*Error) *Result {
	r := &Result{errs: make([]*Error, len(errs))}
	copy(r.errs, errs)
	return r
}

func (r *Result) IsSuccess() bool {
	return r.success
}

func (r *Result) IsFaulted() bool {
	return !r.success
}

// Errors returns a copy of the error list. Safe to call in any state; empty
// when successful.
func (r *Result) Errors() []*Error {
	errs := make([]*Error, len(r.errs))
	copy(errs, r.errs)
	return errs
}

// RootError returns the first error, or ErrDefault when the faulted Result
// carries none. It panics when the Result is successful; check IsFaulted
// first.
func (r *Result) RootError() *Error {
	if r.success {
		panic("result: root error requested on a successful result")
	}
	if len(r.errs) == 0 {
		return ErrDefault
	}
	return r.errs[0]
}

// AddError marks the Result faulted and appends the error. Prior errors are
// never removed; a faulted Result never becomes successful again.
func (r *Result) AddError(e *Error) *Result {
	r.success = false
	r.errs = append(r.errs, e)
	return r
}

// AddErrors marks the Result faulted and appends all errors in order.
func (r *Result) AddErrors(errs []*Error) *Result {
	r.success = false
	r.errs = append(r.errs, errs...)
	return r
}

// Combine folds other outcomes in: for each faulted argument, in argument
// order, the Result becomes faulted and absorbs that argument's errors in
// their original order. Successful arguments are ignored.
func (r *Result) Combine(others ...Fallible) *Result {
	for _, o := range others {
		if o.IsFaulted() {
			r.success = false
			r.errs = append(r.errs, o.Errors()...)
		}
	}
	return r
}
