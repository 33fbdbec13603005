package result

// FromBool converts a boolean outcome: true becomes Success, false becomes
// Failure with ErrDefault.
func FromBool(ok bool) *Result {
	if ok {
		return Success()
	}
	return Failure()
}

// FromError converts a native Go error into a Result. A nil error is
// success. A joined error (Unwrap() []error) is exploded into one Error per
// leaf, in join order; anything else becomes a single cause-wrapping Error.
func FromError(err error) *Result {
	if err == nil {
		return Success()
	}

	leaves := splitErrors(err)
	errs := make([]*Error, len(leaves))
	for i, leaf := range leaves {
		errs[i] = FromCause(leaf)
	}
	return FailureFrom(errs)
}

func splitErrors(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
