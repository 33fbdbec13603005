// Package valued provides Result[T], the value-carrying outcome: a
// successful Result[T] holds a value of type T, a faulted one holds an
// ordered list of errors and no value.
//
// The value slot is cleared on every transition to the faulted state, so a
// faulted Result never exposes stale data. Reading Value on a faulted Result
// panics; use Get or IsSuccess to branch safely.
package valued
