// Package chain provides a fluent wrapper around valued.Result[T] for
// building pipelines without branching on the outcome at every step. It
// composes the pipe combinators behind a small Chain[T] type.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a value
// - Then: chain a function returning the next Result[T]
// - ThenTry: chain a fallible (T, error) call
// - Ensure: run a side effect on success without changing the result
// - Via/MapTo: cross-type variants of Then and Map (free functions,
//   because methods cannot introduce a new type parameter)
// - Finally: collapse the chain into a final value via handlers
package chain
