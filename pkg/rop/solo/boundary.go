package solo

import (
	"github.com/pkg/errors"

	"github.com/ib-77/perhaps/pkg/rop"
)

// Attempt runs f and captures its outcome. A returned error and a panic both
// become a failure; a panic value that is not an error is wrapped in one.
// Recovered panics carry the stack of the panic site.
//
// Conditions the runtime treats as fatal are not panics and are never caught.
// runtime.Goexit keeps unwinding past Attempt.
func Attempt[S any](f func() (S, error)) (out rop.Result[S, error]) {
	completed := false

	defer func() {
		if completed {
			return
		}
		if r := recover(); r != nil {
			out = rop.Failure[S](panicError(r))
		}
	}()

	v, err := f()
	completed = true

	return FromPair(v, err)
}

// AttemptWith is Attempt for a one-argument function.
func AttemptWith[A, S any](f func(a A) (S, error), a A) rop.Result[S, error] {
	return Attempt(func() (S, error) {
		return f(a)
	})
}

// Try lifts f into a step usable with Bind.
func Try[A, S any](f func(a A) (S, error)) func(a A) rop.Result[S, error] {
	return func(a A) rop.Result[S, error] {
		return AttemptWith(f, a)
	}
}

// FromPair converts a (value, error) pair. Typed nil errors count as nil.
func FromPair[S any](v S, err error) rop.Result[S, error] {
	if !rop.IsNil(err) {
		return rop.Failure[S](err)
	}
	return rop.Success[error](v)
}

// Predicate adapts a boolean test: the returned function yields Success(v)
// when test(v) holds and Failure(errValue) otherwise.
func Predicate[T, F any](test func(v T) bool, errValue F) func(v T) rop.Result[T, F] {
	return func(v T) rop.Result[T, F] {
		return Should(test(v), v, errValue)
	}
}

func Should[S, F any](ok bool, ifTrue S, ifFalse F) rop.Result[S, F] {
	if ok {
		return rop.Success[F](ifTrue)
	}
	return rop.Failure[S](ifFalse)
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return errors.WithStack(err)
	}
	return errors.Errorf("panic: %v", r)
}
