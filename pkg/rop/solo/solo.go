package solo

import (
	"github.com/ib-77/perhaps/pkg/rop"
)

func Identity[T any](v T) T {
	return v
}

// Pure lifts v into a success.
func Pure[F, S any](v S) rop.Result[S, F] {
	return rop.Success[F](v)
}

// Map applies onSuccess to the payload of a success. Failures pass through
// and onSuccess is not called.
func Map[S, T, F any](input rop.Result[S, F],
	onSuccess func(r S) T) rop.Result[T, F] {

	if input.IsSuccess() {
		return rop.Success[F](onSuccess(input.Result()))
	}
	return rop.Failure[T](input.Err())
}

// Bind hands the payload of a success to onSuccess and returns its result
// as is. Failures pass through and onSuccess is not called.
func Bind[S, T, F any](input rop.Result[S, F],
	onSuccess func(r S) rop.Result[T, F]) rop.Result[T, F] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.Failure[T](input.Err())
}

// Flatten removes exactly one level of nesting.
func Flatten[S, F any](input rop.Result[rop.Result[S, F], F]) rop.Result[S, F] {
	return Bind(input, Identity[rop.Result[S, F]])
}

// MapError applies onFailure to the payload of a failure. Successes pass
// through untouched.
func MapError[S, F, G any](input rop.Result[S, F],
	onFailure func(e F) G) rop.Result[S, G] {

	if input.IsFailure() {
		return rop.Failure[S](onFailure(input.Err()))
	}
	return rop.Success[G](input.Result())
}

func Bimap[S, T, F, G any](input rop.Result[S, F],
	onFailure func(e F) G,
	onSuccess func(r S) T) rop.Result[T, G] {

	if input.IsSuccess() {
		return rop.Success[G](onSuccess(input.Result()))
	}
	return rop.Failure[T](onFailure(input.Err()))
}

// Apply calls the function held by fn with the payload of input.
// The first failure wins.
func Apply[S, T, F any](fn rop.Result[func(S) T, F], input rop.Result[S, F]) rop.Result[T, F] {
	if fn.IsFailure() {
		return rop.Failure[T](fn.Err())
	}
	return Map(input, fn.Result())
}

// Lift2 turns a plain binary function into one over results.
func Lift2[A, B, C, F any](f func(a A, b B) C) func(rop.Result[A, F], rop.Result[B, F]) rop.Result[C, F] {
	return func(ra rop.Result[A, F], rb rop.Result[B, F]) rop.Result[C, F] {
		return Bind(ra, func(a A) rop.Result[C, F] {
			return Map(rb, func(b B) C { return f(a, b) })
		})
	}
}

// Combine returns first if it is a success, otherwise second.
func Combine[S, F any](first, second rop.Result[S, F]) rop.Result[S, F] {
	if first.IsSuccess() {
		return first
	}
	return second
}

// Fold collapses input into a plain value.
func Fold[S, F, T any](input rop.Result[S, F],
	onSuccess func(r S) T,
	onFailure func(e F) T) T {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}

func FoldR[S, F, B any](f func(r S, acc B) B, init B, input rop.Result[S, F]) B {
	if input.IsSuccess() {
		return f(input.Result(), init)
	}
	return init
}

func Length[S, F any](input rop.Result[S, F]) int {
	if input.IsSuccess() {
		return 1
	}
	return 0
}

// Null reports whether input holds no success payload.
func Null[S, F any](input rop.Result[S, F]) bool {
	return input.IsFailure()
}

// Tee runs onSuccess for its side effect and returns input unchanged.
func Tee[S, F any](input rop.Result[S, F], onSuccess func(r S)) rop.Result[S, F] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func DoubleTee[S, F any](input rop.Result[S, F],
	onSuccess func(r S),
	onFailure func(e F)) rop.Result[S, F] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Result())
		}
	} else if onFailure != nil {
		onFailure(input.Err())
	}
	return input
}
