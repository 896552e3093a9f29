package step

import (
	"errors"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/solo"
)

var (
	// ErrNilStep is reported when a composition is built from a nil step.
	ErrNilStep = errors.New("step: nil step")
	// ErrTooFewSteps is returned when a chain is built from fewer than two steps.
	ErrTooFewSteps = errors.New("step: chain needs at least two steps")
)

// Step is a fallible transformation from In to Out.
type Step[In, Out any] interface {
	Apply(in In) rop.Result[Out]
}

// Func lets an ordinary function act as a Step.
type Func[In, Out any] func(in In) rop.Result[Out]

// Of converts a closure or named function into a Step.
func Of[In, Out any](fn func(in In) rop.Result[Out]) Func[In, Out] {
	return fn
}

func (f Func[In, Out]) Apply(in In) rop.Result[Out] {
	if f == nil {
		return rop.Fail[Out](ErrNilStep)
	}
	return f(in)
}

// Compose appends next to f.
func (f Func[In, Out]) Compose(next Step[Out, Out]) Composition[In, Out] {
	return Compose[In, Out, Out](f, next)
}

// TryFunc adapts the (value, error) shape. A non-nil error becomes a failure.
type TryFunc[In, Out any] func(in In) (Out, error)

func (f TryFunc[In, Out]) Apply(in In) rop.Result[Out] {
	if f == nil {
		return rop.Fail[Out](ErrNilStep)
	}
	return solo.Try[In, Out](rop.Success(in), f)
}

// Try converts a (value, error) function into a Step.
func Try[In, Out any](fn func(in In) (Out, error)) TryFunc[In, Out] {
	return fn
}

// Lift turns a function that cannot fail into a Step.
func Lift[In, Out any](fn func(in In) Out) Func[In, Out] {
	return func(in In) rop.Result[Out] {
		return rop.Success(fn(in))
	}
}

// Identity returns its input unchanged.
func Identity[T any]() Func[T, T] {
	return func(in T) rop.Result[T] {
		return rop.Success(in)
	}
}

func isNil[In, Out any](s Step[In, Out]) bool {
	return s == nil || rop.IsNil(s)
}
