// Package step defines the Step capability and the combinators that compose
// steps into larger steps.
//
// A Step[In, Out] is anything with an Apply(In) rop.Result[Out] method: a
// struct carrying its own parameters, a closure wrapped with Of, or a named
// function wrapped the same way. Compositions are Steps too, so they can be
// composed further.
//
// Key operations:
// - Compose: run first, then second on its value; stop on the first failure
// - Composition.Compose / Func.Compose: the same, written left to right
// - Composed2 … Composed6: typed chains of a fixed length
// - Composed: a chain of any length over a single type
// - ComposeT / ComposeT3: compose steps returning (value, payload) pairs,
//   nesting the payloads in application order
// - Accumulate: a chain of (value, payload) steps collecting payloads in a slice
//
// Failures are never wrapped: the caller receives the error, id and creation
// time of the step that failed.
package step
