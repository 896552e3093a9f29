package solo

import (
	"errors"

	"github.com/ib-77/composable/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input rop.Result[T], validate func(in T) (valid bool, errMsg string)) rop.Result[T] {
	if input.IsSuccess() {
		if isValid, errMsg := validate(input.Result()); isValid {
			return input
		} else {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// Switch calls onSuccess with the value of a successful input. A failed input
// is re-typed and returned without calling onSuccess.
func Switch[In any, Out any](input rop.Result[In], onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](input rop.Result[In], onSuccess func(r In) Out) rop.Result[Out] {
	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](input rop.Result[In], onTryExecute func(r In) (Out, error)) rop.Result[Out] {
	if input.IsSuccess() {
		out, err := onTryExecute(input.Result())
		if err != nil {
			return rop.Fail[Out](err)
		}
		return rop.Success(out)
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](input rop.Result[T], onSuccess func(r T)) rop.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}
