// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions are the building blocks the step combinators
// use to move between results of different types.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side-effect helper
// - Finally: reduce to a concrete value via success/error handlers
package solo
