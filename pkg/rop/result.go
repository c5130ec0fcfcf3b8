package rop

import "fmt"

// Unit is the empty failure payload of the minimal variant.
type Unit struct{}

// Result is either a success carrying S or a failure carrying F.
// The zero value is a failure holding the zero F.
type Result[S, F any] struct {
	result    S
	err       F
	isSuccess bool
}

// Success wraps v. The failure type comes first so that it is the only one
// that has to be spelled out: Success[error](42).
func Success[F, S any](v S) Result[S, F] {
	return Result[S, F]{
		result:    v,
		isSuccess: true,
	}
}

// Failure wraps e. Failure[int](err) infers F from err.
func Failure[S, F any](e F) Result[S, F] {
	return Result[S, F]{
		err:       e,
		isSuccess: false,
	}
}

// Result returns the success payload, or the zero S for a failure.
func (r Result[S, F]) Result() S {
	return r.result
}

// Err returns the failure payload, or the zero F for a success.
func (r Result[S, F]) Err() F {
	return r.err
}

func (r Result[S, F]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[S, F]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns both payloads and the tag.
func (r Result[S, F]) Get() (S, F, bool) {
	return r.result, r.err, r.isSuccess
}

// String renders Success(v)/Failure when F is Unit, Right(v)/Left(e) otherwise.
func (r Result[S, F]) String() string {
	if _, minimal := any(r.err).(Unit); minimal {
		if r.isSuccess {
			return fmt.Sprintf("Success(%v)", r.result)
		}
		return "Failure"
	}

	if r.isSuccess {
		return fmt.Sprintf("Right(%v)", r.result)
	}
	return fmt.Sprintf("Left(%v)", r.err)
}
