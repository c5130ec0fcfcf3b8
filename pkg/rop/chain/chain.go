package chain

import (
	"github.com/ib-77/perhaps/pkg/rop"
	"github.com/ib-77/perhaps/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[S, F any] struct {
	result rop.Result[S, F]
}

// Start creates a new chain from a rop.Result
func Start[S, F any](result rop.Result[S, F]) Chain[S, F] {
	return Chain[S, F]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[F, S any](value S) Chain[S, F] {
	return Start(rop.Success[F](value))
}

// Result returns the underlying rop.Result
func (c Chain[S, F]) Result() rop.Result[S, F] {
	return c.result
}

// Then binds a function that returns rop.Result[S, F]
func (c Chain[S, F]) Then(onSuccess func(S) rop.Result[S, F]) Chain[S, F] {
	return Then(c, onSuccess)
}

// Map applies a plain transformation to the successful value
func (c Chain[S, F]) Map(onSuccess func(S) S) Chain[S, F] {
	return Map(c, onSuccess)
}

// MapError transforms the failure payload
func (c Chain[S, F]) MapError(onFailure func(F) F) Chain[S, F] {
	return Start(solo.MapError(c.result, onFailure))
}

// Ensure triggers side effects without changing the result
func (c Chain[S, F]) Ensure(onSuccess func(S), onFailure func(F)) Chain[S, F] {
	return Start(solo.DoubleTee(c.result, onSuccess, onFailure))
}

// Or returns the first successful chain among c and alternatives, otherwise
// the first failure.
func (c Chain[S, F]) Or(alternatives ...Chain[S, F]) Chain[S, F] {
	res := c.result
	for _, alt := range alternatives {
		if res.IsSuccess() {
			break
		}
		if alt.result.IsSuccess() {
			res = alt.result
		}
	}
	return Start(res)
}

// Then chains a function that returns rop.Result[T, F]
func Then[S, T, F any](c Chain[S, F], onSuccess func(S) rop.Result[T, F]) Chain[T, F] {
	return Start(solo.Bind(c.result, onSuccess))
}

// ThenTry chains a function that returns (T, error)
func ThenTry[S, T any](c Chain[S, error], tryOnSuccess func(S) (T, error)) Chain[T, error] {
	return Then(c, solo.Try(tryOnSuccess))
}

// Map chains a pure transformation function
func Map[S, T, F any](c Chain[S, F], onSuccess func(S) T) Chain[T, F] {
	return Start(solo.Map(c.result, onSuccess))
}

// Finally collapses the chain into a final value using solo.Fold
func Finally[S, F, T any](c Chain[S, F], onSuccess func(S) T, onFailure func(F) T) T {
	return solo.Fold(c.result, onSuccess, onFailure)
}
