package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNilFailure replaces a nil error passed to Fail, so a failed Result
// always carries a non-nil error.
var ErrNilFailure = errors.New("rop: failure without error")

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMsg creates a failure from a plain text description.
func FailMsg[T any](msg string) Result[T] {
	return Fail[T](errors.New(msg))
}

// FailFrom re-types a failed result, keeping its error, id and creation time.
// A successful input yields a failure with ErrNilFailure, and so does an
// empty one, whose id and time are kept.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		return Fail[Out](nil)
	}
	err := from.err
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Result[Out]{
		err:       err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// Get returns the value and error in the usual Go shape.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports a zero Result that was never produced by Success or Fail.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
