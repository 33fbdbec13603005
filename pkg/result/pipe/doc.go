// Package pipe contains the stateless combinators that compose Result values
// into railway-oriented pipelines: once a stage fails, every later stage is
// skipped and the original errors flow through untouched.
//
// Highlights:
// - Switch/SwitchValue: invoke exactly one of two branches for a side effect
// - Map/MapValue: collapse an outcome into a plain value via two branches
// - Bind: chain a function returning the next Result, short-circuiting on failure
// - BindTry/BindRecover/BindRecoverAs: bridge fallible or panicking calls
//   into the pipeline, converting the caught failure into a typed error
// - Tap: run a side effect on success without altering the pipeline value
//
// No combinator mutates the Result it is given.
package pipe
