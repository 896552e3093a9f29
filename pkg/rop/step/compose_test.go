package step

import (
	"errors"
	"testing"

	"github.com/ib-77/composable/pkg/rop"
)

func TestCompose_ShortCircuitOnFirstFailure(t *testing.T) {
	t.Parallel()

	second := newCounting(func(x uint) rop.Result[uint] { return rop.Success(x + 1) })
	c := Compose(Of(evenOnly), second)

	res := c.Apply(3)
	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res.Result())
	}
	if !errors.Is(res.Err(), errOdd) {
		t.Fatalf("expected %v, got %v", errOdd, res.Err())
	}
	if *second.calls != 0 {
		t.Fatalf("second step must not run after a failure, ran %d times", *second.calls)
	}
}

func TestCompose_EachStepRunsOnce(t *testing.T) {
	t.Parallel()

	first := newCounting(func(x uint) rop.Result[uint] { return rop.Success(x * 3) })
	second := newCounting(func(x uint) rop.Result[uint] { return rop.Success(x + 1) })

	res := Compose(first, second).Apply(2)
	if !res.IsSuccess() || res.Result() != 7 {
		t.Fatalf("expected success 7, got success=%v val=%v err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
	if *first.calls != 1 || *second.calls != 1 {
		t.Fatalf("expected one call each, got first=%d second=%d", *first.calls, *second.calls)
	}
}

func TestCompose_FailurePropagatedUnchanged(t *testing.T) {
	t.Parallel()

	first := newCounting(func(x uint) rop.Result[uint] { return rop.FailMsg[uint]("boom") })
	c := Compose[uint, uint, float64](first, DivideBy{divisor: 2})

	res := c.Apply(1)
	if res.IsSuccess() {
		t.Fatalf("expected failure")
	}
	failed := *first.last
	if res.Err() != failed.Err() {
		t.Fatalf("expected the same error value, got %v", res.Err())
	}
	if res.Id() != failed.Id() {
		t.Fatalf("expected failure id %s, got %s", failed.Id(), res.Id())
	}
	if !res.CreatedAt().Equal(failed.CreatedAt()) {
		t.Fatalf("expected creation time to be kept")
	}
}

func TestCompose_SecondFailureReturned(t *testing.T) {
	t.Parallel()

	res := Compose(AddTo{addend: 1}, Of(evenOnly)).Apply(2)
	if !errors.Is(res.Err(), errOdd) {
		t.Fatalf("expected %v, got %v", errOdd, res.Err())
	}
}

func TestCompose_Associative(t *testing.T) {
	t.Parallel()

	a := AddTo{addend: 3}
	b := Of(evenOnly)
	c := MultiplyBy{factor: 5}

	left := Compose[uint, uint, uint](Compose(a, b), c)
	right := Compose[uint, uint, uint](a, Compose(b, c))

	for x := uint(0); x < 20; x++ {
		l, r := left.Apply(x), right.Apply(x)
		if l.IsSuccess() != r.IsSuccess() {
			t.Fatalf("input %d: success mismatch left=%v right=%v", x, l.IsSuccess(), r.IsSuccess())
		}
		if l.Result() != r.Result() {
			t.Fatalf("input %d: value mismatch left=%d right=%d", x, l.Result(), r.Result())
		}
		if !errors.Is(l.Err(), r.Err()) {
			t.Fatalf("input %d: error mismatch left=%v right=%v", x, l.Err(), r.Err())
		}
	}
}

func TestCompose_CompositionIsAStep(t *testing.T) {
	t.Parallel()

	inner := Compose(AddTo{addend: 1}, MultiplyBy{factor: 2})
	outer := Compose[uint, uint, float64](inner, DivideBy{divisor: 4})

	res := outer.Apply(3)
	if !res.IsSuccess() || res.Result() != 2.0 {
		t.Fatalf("expected 2.0, got success=%v val=%v err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestCompose_NilSteps(t *testing.T) {
	t.Parallel()

	var missing Func[uint, uint]
	res := Compose[uint, uint, uint](AddTo{addend: 1}, missing).Apply(1)
	if !errors.Is(res.Err(), ErrNilStep) {
		t.Fatalf("expected ErrNilStep, got %v", res.Err())
	}

	res = Compose[uint, uint, uint](nil, AddTo{addend: 1}).Apply(1)
	if !errors.Is(res.Err(), ErrNilStep) {
		t.Fatalf("expected ErrNilStep, got %v", res.Err())
	}

	var zero Composition[uint, uint]
	if !errors.Is(zero.Apply(1).Err(), ErrNilStep) {
		t.Fatalf("expected zero Composition to fail with ErrNilStep")
	}
}

func TestComposition_MethodChain(t *testing.T) {
	t.Parallel()

	c := Compose(AddTo{addend: 1}, MultiplyBy{factor: 2}).
		Compose(AddTo{addend: 3}).
		Compose(Of(squared))

	res := c.Apply(1)
	if !res.IsSuccess() || res.Result() != 49 {
		t.Fatalf("expected 49, got success=%v val=%v err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestTry_ConvertsError(t *testing.T) {
	t.Parallel()

	parse := Try(func(s string) (int, error) {
		if s == "" {
			return 0, errors.New("empty")
		}
		return len(s), nil
	})

	if res := parse.Apply("abc"); !res.IsSuccess() || res.Result() != 3 {
		t.Fatalf("expected 3, got success=%v val=%v err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
	if res := parse.Apply(""); res.IsSuccess() || res.Err().Error() != "empty" {
		t.Fatalf("expected failure 'empty', got success=%v err=%v", res.IsSuccess(), res.Err())
	}
}

func TestLiftAndIdentity(t *testing.T) {
	t.Parallel()

	double := Lift(func(x int) int { return x * 2 })
	c := Compose[int, int, int](Identity[int](), double)

	if res := c.Apply(21); !res.IsSuccess() || res.Result() != 42 {
		t.Fatalf("expected 42, got success=%v val=%v err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

type zeroResult struct{}

func (zeroResult) Apply(int) rop.Result[int] {
	return rop.Result[int]{}
}

func TestCompose_EmptyResultBecomesFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	after := Of(func(x int) rop.Result[string] {
		calls++
		return rop.Success("reached")
	})

	res := Compose[int, int, string](zeroResult{}, after).Apply(1)
	if res.IsSuccess() || !res.IsFailure() || res.IsEmpty() {
		t.Fatalf("expected failure, got success=%v failure=%v empty=%v", res.IsSuccess(), res.IsFailure(), res.IsEmpty())
	}
	if !errors.Is(res.Err(), rop.ErrNilFailure) {
		t.Fatalf("expected ErrNilFailure, got %v", res.Err())
	}
	if calls != 0 {
		t.Fatalf("second step must not run after an empty result, ran %d times", calls)
	}
}
