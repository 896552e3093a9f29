package step

import (
	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// Composition is a Step built from other steps.
type Composition[In, Out any] struct {
	apply func(in In) rop.Result[Out]
}

func (c Composition[In, Out]) Apply(in In) rop.Result[Out] {
	if c.apply == nil {
		return rop.Fail[Out](ErrNilStep)
	}
	return c.apply(in)
}

// Compose appends next to c.
func (c Composition[In, Out]) Compose(next Step[Out, Out]) Composition[In, Out] {
	return Compose[In, Out, Out](c, next)
}

// Compose builds a step that applies first and, only when it succeeds,
// applies second to its value. The failure of first is returned as is and
// second is never invoked.
func Compose[I, M, O any](first Step[I, M], second Step[M, O]) Composition[I, O] {
	if isNil(first) || isNil(second) {
		return Composition[I, O]{apply: func(I) rop.Result[O] {
			return rop.Fail[O](ErrNilStep)
		}}
	}

	return Composition[I, O]{apply: func(in I) rop.Result[O] {
		return solo.Switch(first.Apply(in), second.Apply)
	}}
}
