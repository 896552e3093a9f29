package step

import (
	"errors"

	"github.com/ib-77/composable/pkg/rop"
)

type AddTo struct {
	addend uint
}

func (a AddTo) Apply(in uint) rop.Result[uint] {
	return rop.Success(in + a.addend)
}

type MultiplyBy struct {
	factor uint
}

func (m MultiplyBy) Apply(in uint) rop.Result[uint] {
	return rop.Success(in * m.factor)
}

type DivideBy struct {
	divisor float64
}

func (d DivideBy) Apply(in uint) rop.Result[float64] {
	if d.divisor == 0.0 {
		return rop.FailMsg[float64]("division by zero")
	}
	return rop.Success(float64(in) / d.divisor)
}

type AddToMsg struct {
	addend uint
}

func (a AddToMsg) Apply(in uint) rop.Result[Pair[uint, string]] {
	return rop.Success(MakePair(in+a.addend, "hello"))
}

func squared(x uint) rop.Result[uint] {
	return rop.Success(x * x)
}

var errOdd = errors.New("odd input")

// evenOnly fails for odd input.
func evenOnly(x uint) rop.Result[uint] {
	if x%2 != 0 {
		return rop.Fail[uint](errOdd)
	}
	return rop.Success(x)
}

// counting records how many times it was applied.
type counting[T any] struct {
	calls *int
	last  *rop.Result[T]
	next  func(T) rop.Result[T]
}

func newCounting[T any](next func(T) rop.Result[T]) counting[T] {
	return counting[T]{calls: new(int), last: new(rop.Result[T]), next: next}
}

func (c counting[T]) Apply(in T) rop.Result[T] {
	*c.calls++
	*c.last = c.next(in)
	return *c.last
}
