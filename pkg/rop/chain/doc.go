// Package chain provides a fluent builder around step.Compose for writing
// compositions left to right.
//
// Go methods cannot introduce type parameters, so links that keep the output
// type are methods and links that change it are package functions:
//
//	c := chain.Then(chain.From(parse).Then(validate), render)
//
// Key operations:
// - From: begin a chain from any step
// - Then (method): append a step that keeps the output type
// - Then/ThenTry/Map (functions): append a step that changes the output type
// - Ensure: run a side effect on success without changing the result
// - Finally: apply the chain and collapse the result into a final value
package chain
