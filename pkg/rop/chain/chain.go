package chain

import (
	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/solo"
	"github.com/ib-77/composable/pkg/rop/step"
)

// Chain wraps a step to enable fluent composition. A Chain is itself a step.
type Chain[In, Out any] struct {
	step step.Step[In, Out]
}

// From starts a chain with s as its first step
func From[In, Out any](s step.Step[In, Out]) *Chain[In, Out] {
	return &Chain[In, Out]{step: s}
}

// Of starts a chain from a function
func Of[In, Out any](fn func(In) rop.Result[Out]) *Chain[In, Out] {
	return From[In, Out](step.Of(fn))
}

// Step returns the composed step
func (c *Chain[In, Out]) Step() step.Step[In, Out] {
	return c.step
}

func (c *Chain[In, Out]) Apply(in In) rop.Result[Out] {
	if c == nil || c.step == nil {
		return rop.Fail[Out](step.ErrNilStep)
	}
	return c.step.Apply(in)
}

// Then appends a step that keeps the output type
func (c *Chain[In, Out]) Then(next step.Step[Out, Out]) *Chain[In, Out] {
	return Then(c, next)
}

// Then appends a step that may change the output type
func Then[In, M, Out any](c *Chain[In, M], next step.Step[M, Out]) *Chain[In, Out] {
	return &Chain[In, Out]{step: step.Compose[In, M, Out](c, next)}
}

// ThenTry appends a function that returns (Out, error)
func ThenTry[In, M, Out any](c *Chain[In, M], tryOnSuccess func(M) (Out, error)) *Chain[In, Out] {
	return Then[In, M, Out](c, step.Try(tryOnSuccess))
}

// Map appends a pure transformation
func Map[In, M, Out any](c *Chain[In, M], onSuccess func(M) Out) *Chain[In, Out] {
	return Then[In, M, Out](c, step.Lift(onSuccess))
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[In, Out]) Ensure(onSuccess func(Out)) *Chain[In, Out] {
	return c.Then(step.Of(func(out Out) rop.Result[Out] {
		return solo.Tee(rop.Success(out), onSuccess)
	}))
}

// Finally applies the chain to in and collapses the outcome using solo.Finally
func Finally[In, Out, R any](c *Chain[In, Out], in In, onSuccess func(Out) R, onFailure func(error) R) R {
	return solo.Finally(c.Apply(in), onSuccess, onFailure)
}
