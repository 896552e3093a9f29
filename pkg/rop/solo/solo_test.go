package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/composable/pkg/rop"
)

func TestSwitch(t *testing.T) {
	t.Parallel()

	res := Switch(Succeed(2), func(n int) rop.Result[string] { return rop.Success(strconv.Itoa(n * 2)) })
	if !res.IsSuccess() || res.Result() != "4" {
		t.Fatalf("expected '4', got success=%v val=%v err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestSwitch_ShortCircuit(t *testing.T) {
	t.Parallel()

	in := Fail[int](errors.New("boom"))
	called := false
	res := Switch(in, func(n int) rop.Result[string] {
		called = true
		return rop.Success("x")
	})
	if called {
		t.Fatalf("onSuccess must not be called on failure input")
	}
	if res.Err() != in.Err() || res.Id() != in.Id() {
		t.Fatalf("expected the failure to be passed through unchanged")
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	res := Map(Succeed(3), func(n int) int { return n + 1 })
	if !res.IsSuccess() || res.Result() != 4 {
		t.Fatalf("expected 4, got success=%v val=%v", res.IsSuccess(), res.Result())
	}

	failed := Map(Fail[int](errors.New("oops")), func(n int) int { return n + 1 })
	if failed.IsSuccess() || failed.Err().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got %v", failed.Err())
	}
}

func TestTry(t *testing.T) {
	t.Parallel()

	ok := Try(Succeed("12"), strconv.Atoi)
	if !ok.IsSuccess() || ok.Result() != 12 {
		t.Fatalf("expected 12, got success=%v val=%v err=%v", ok.IsSuccess(), ok.Result(), ok.Err())
	}

	bad := Try(Succeed("x"), strconv.Atoi)
	if bad.IsSuccess() || bad.Err() == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	positive := func(n int) (bool, string) { return n > 0, "must be positive" }

	if res := Validate(1, positive); !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Err())
	}
	if res := Validate(-1, positive); res.IsSuccess() || res.Err().Error() != "must be positive" {
		t.Fatalf("expected 'must be positive', got %v", res.Err())
	}
	in := Fail[int](errors.New("earlier"))
	if res := AndValidate(in, positive); res.Err() != in.Err() {
		t.Fatalf("expected earlier failure to pass through, got %v", res.Err())
	}
}

func TestTeeAndFinally(t *testing.T) {
	t.Parallel()

	seen := 0
	res := Tee(Succeed(7), func(n int) { seen = n })
	if seen != 7 || res.Result() != 7 {
		t.Fatalf("expected side effect with 7, got %d", seen)
	}

	seen = 0
	Tee(Fail[int](errors.New("x")), func(n int) { seen = n })
	if seen != 0 {
		t.Fatalf("side effect must not run on failure")
	}

	onErr := func(err error) string { return "err: " + err.Error() }
	if out := Finally(Succeed(1), strconv.Itoa, onErr); out != "1" {
		t.Fatalf("expected '1', got %q", out)
	}
	if out := Finally(Fail[int](errors.New("x")), strconv.Itoa, onErr); out != "err: x" {
		t.Fatalf("expected 'err: x', got %q", out)
	}
}
