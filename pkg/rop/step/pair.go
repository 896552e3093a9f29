package step

import (
	"fmt"

	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/solo"
)

// Pair is a primary value with an auxiliary payload travelling beside it.
type Pair[V, A any] struct {
	First  V
	Second A
}

func MakePair[V, A any](v V, a A) Pair[V, A] {
	return Pair[V, A]{First: v, Second: a}
}

// Unpack returns both halves of the pair.
func (p Pair[V, A]) Unpack() (V, A) {
	return p.First, p.Second
}

// ComposeT composes two steps that return (value, payload) pairs. On success
// the result holds the value of second and both payloads, first's then
// second's. Payloads are never inspected.
func ComposeT[I, M, A, O, B any](first Step[I, Pair[M, A]],
	second Step[M, Pair[O, B]]) Composition[I, Pair[O, Pair[A, B]]] {

	if isNil(first) || isNil(second) {
		return Composition[I, Pair[O, Pair[A, B]]]{apply: func(I) rop.Result[Pair[O, Pair[A, B]]] {
			return rop.Fail[Pair[O, Pair[A, B]]](ErrNilStep)
		}}
	}

	return Composition[I, Pair[O, Pair[A, B]]]{apply: func(in I) rop.Result[Pair[O, Pair[A, B]]] {
		return solo.Switch(first.Apply(in), func(ma Pair[M, A]) rop.Result[Pair[O, Pair[A, B]]] {
			return solo.Map(second.Apply(ma.First), func(ob Pair[O, B]) Pair[O, Pair[A, B]] {
				return MakePair(ob.First, MakePair(ma.Second, ob.Second))
			})
		})
	}}
}

// ComposeT3 is ComposeT folded over three steps. Payloads nest to the left.
func ComposeT3[I, M, A, N, B, O, C any](s1 Step[I, Pair[M, A]], s2 Step[M, Pair[N, B]],
	s3 Step[N, Pair[O, C]]) Composition[I, Pair[O, Pair[Pair[A, B], C]]] {
	return ComposeT[I, N, Pair[A, B], O, C](ComposeT(s1, s2), s3)
}

// Accumulate chains steps of a single type that each emit a payload and
// collects the payloads in application order.
func Accumulate[T, A any](steps ...Step[T, Pair[T, A]]) (Composition[T, Pair[T, []A]], error) {
	if len(steps) < 2 {
		return Composition[T, Pair[T, []A]]{}, fmt.Errorf("%w: got %d", ErrTooFewSteps, len(steps))
	}
	for i, s := range steps {
		if isNil(s) {
			return Composition[T, Pair[T, []A]]{}, fmt.Errorf("%w at position %d", ErrNilStep, i)
		}
	}

	chain := append([]Step[T, Pair[T, A]](nil), steps...)
	return Composition[T, Pair[T, []A]]{apply: func(in T) rop.Result[Pair[T, []A]] {
		payloads := make([]A, 0, len(chain))
		current := in
		for _, s := range chain {
			res := s.Apply(current)
			if !res.IsSuccess() {
				return rop.FailFrom[Pair[T, A], Pair[T, []A]](res)
			}
			current = res.Result().First
			payloads = append(payloads, res.Result().Second)
		}
		return rop.Success(MakePair(current, payloads))
	}}, nil
}
