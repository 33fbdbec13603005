package result

// Fallible is the read-only failure view shared by both outcome kinds, so
// Combine can absorb errors from a value-less Result and a valued.Result
// alike.
type Fallible interface {
	// IsFaulted returns true if the outcome failed.
	IsFaulted() bool
	// Errors returns a copy of the accumulated errors.
	Errors() []*Error
}
