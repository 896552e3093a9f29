// Package rop defines Result[T], the outcome of applying a step: either a
// success value or a failure error. Results carry a uuid and a UTC creation
// time so a failure can be traced back to the step that produced it after it
// has been propagated through a composition.
package rop
