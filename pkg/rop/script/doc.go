// Package script provides steps whose body is JavaScript, evaluated with goja.
//
// The source is the body of a function receiving the step input as input:
//
//	s, err := script.New[float64, float64]("return input * input")
//
// Syntax errors surface when the step is built. A thrown exception or a
// return value that cannot be converted to Out is a failed result.
package script
