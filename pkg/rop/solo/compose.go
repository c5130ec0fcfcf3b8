package solo

import (
	"github.com/ib-77/perhaps/pkg/rop"
)

// Kleisli composes two result-returning functions: the returned function is
// x -> Bind(first(x), second).
func Kleisli[A, B, C, F any](first func(a A) rop.Result[B, F],
	second func(b B) rop.Result[C, F]) func(a A) rop.Result[C, F] {

	return func(a A) rop.Result[C, F] {
		return Bind(first(a), second)
	}
}

// Compose chains same-typed steps left to right, stopping at the first failure.
func Compose[T, F any](first func(in T) rop.Result[T, F],
	rest ...func(in T) rop.Result[T, F]) func(in T) rop.Result[T, F] {

	composed := first
	for _, next := range rest {
		composed = Kleisli(composed, next)
	}
	return composed
}

// Partition splits results into failure and success payloads, keeping order.
func Partition[S, F any](results []rop.Result[S, F]) ([]F, []S) {
	failures := make([]F, 0)
	successes := make([]S, 0, len(results))

	for _, r := range results {
		if r.IsSuccess() {
			successes = append(successes, r.Result())
		} else {
			failures = append(failures, r.Err())
		}
	}
	return failures, successes
}

// Sequence turns a slice of results into a result of a slice. The first
// failure is returned.
func Sequence[S, F any](results []rop.Result[S, F]) rop.Result[[]S, F] {
	values := make([]S, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return rop.Failure[[]S](r.Err())
		}
		values = append(values, r.Result())
	}
	return rop.Success[F](values)
}

// Traverse applies f to each item and collects the payloads. f is not called
// again after the first failure.
func Traverse[A, S, F any](items []A, f func(a A) rop.Result[S, F]) rop.Result[[]S, F] {
	values := make([]S, 0, len(items))
	for _, item := range items {
		r := f(item)
		if r.IsFailure() {
			return rop.Failure[[]S](r.Err())
		}
		values = append(values, r.Result())
	}
	return rop.Success[F](values)
}
