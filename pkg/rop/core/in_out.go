package core

import (
	"context"

	"github.com/ib-77/perhaps/pkg/rop"
)

// ToChanMany sends values until they run out or ctx is done, then closes.
func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanManyResults is ToChanMany with every value lifted into a success.
func ToChanManyResults[F, T any](ctx context.Context, values []T) <-chan rop.Result[T, F] {
	in := make(chan rop.Result[T, F])

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- rop.Success[F](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChanMany collects out until it is closed or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// Drain collects out until it is closed, ignoring cancellation. Use it when
// the producers themselves honour the context.
func Drain[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
