package step

import (
	"fmt"
)

func Composed2[A, B, C any](s1 Step[A, B], s2 Step[B, C]) Composition[A, C] {
	return Compose(s1, s2)
}

func Composed3[A, B, C, D any](s1 Step[A, B], s2 Step[B, C], s3 Step[C, D]) Composition[A, D] {
	return Compose[A, C, D](Composed2(s1, s2), s3)
}

func Composed4[A, B, C, D, E any](s1 Step[A, B], s2 Step[B, C], s3 Step[C, D],
	s4 Step[D, E]) Composition[A, E] {
	return Compose[A, D, E](Composed3(s1, s2, s3), s4)
}

func Composed5[A, B, C, D, E, F any](s1 Step[A, B], s2 Step[B, C], s3 Step[C, D],
	s4 Step[D, E], s5 Step[E, F]) Composition[A, F] {
	return Compose[A, E, F](Composed4(s1, s2, s3, s4), s5)
}

func Composed6[A, B, C, D, E, F, G any](s1 Step[A, B], s2 Step[B, C], s3 Step[C, D],
	s4 Step[D, E], s5 Step[E, F], s6 Step[F, G]) Composition[A, G] {
	return Compose[A, F, G](Composed5(s1, s2, s3, s4, s5), s6)
}

// Composed folds steps of a single type left to right into one step.
// It fails with ErrTooFewSteps for fewer than two steps and with ErrNilStep
// when any step is nil.
func Composed[T any](steps ...Step[T, T]) (Composition[T, T], error) {
	if len(steps) < 2 {
		return Composition[T, T]{}, fmt.Errorf("%w: got %d", ErrTooFewSteps, len(steps))
	}
	for i, s := range steps {
		if isNil(s) {
			return Composition[T, T]{}, fmt.Errorf("%w at position %d", ErrNilStep, i)
		}
	}

	c := Compose(steps[0], steps[1])
	for _, s := range steps[2:] {
		c = c.Compose(s)
	}
	return c, nil
}
