// Package result models the outcome of an operation without using panics or
// sentinel values for control flow. It provides two outcome kinds: the
// value-less Result in this package and the value-carrying Result[T] in the
// valued subpackage. Both track an ordered list of structured Errors when
// faulted.
//
// Key operations:
// - Success/Failure/FailureText/FailureWith/FailureFrom: construct a Result
// - FromBool/FromError: convert native values into a Result
// - AddError/AddErrors/Combine: accumulate failures in place
// - RootError/Errors: inspect a faulted Result
//
// State moves in one direction only: a successful Result can become faulted
// by accumulating errors, but a faulted Result never becomes successful
// again. Mutation is in place and not safe for concurrent use on a shared
// instance; construct, mutate within a single owner, then treat as read-only.
package result
