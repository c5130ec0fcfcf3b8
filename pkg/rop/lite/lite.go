package lite

import (
	"context"
	"sync"

	"github.com/ib-77/perhaps/pkg/rop"
	"github.com/ib-77/perhaps/pkg/rop/core"
	"github.com/ib-77/perhaps/pkg/rop/solo"
)

// Step turns one result into another. Failures must pass through untouched;
// the constructors in this package guarantee that.
type Step[In, Out, F any] func(ctx context.Context, input rop.Result[In, F]) rop.Result[Out, F]

func Run[T, F any](ctx context.Context, inputCh <-chan rop.Result[T, F],
	step Step[T, T, F], lines int) <-chan rop.Result[T, F] {
	return Turnout(ctx, inputCh, step, lines, core.CancellationHandlers[T, T, F]{})
}

func Turnout[In, Out, F any](ctx context.Context, inputCh <-chan rop.Result[In, F],
	step Step[In, Out, F], lines int, handlers core.CancellationHandlers[In, Out, F]) <-chan rop.Result[Out, F] {

	if lines <= 0 {
		lines = core.GetWorkerMaxCount(ctx, 1)
	}

	out := make(chan rop.Result[Out, F])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive[In, Out, F](ctx, inputCh, out, step, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Bind[In, Out, F any](onSuccess func(ctx context.Context, r In) rop.Result[Out, F]) Step[In, Out, F] {
	return func(ctx context.Context, input rop.Result[In, F]) rop.Result[Out, F] {
		return solo.Bind(input, func(r In) rop.Result[Out, F] {
			return onSuccess(ctx, r)
		})
	}
}

func Map[In, Out, F any](onSuccess func(ctx context.Context, r In) Out) Step[In, Out, F] {
	return func(ctx context.Context, input rop.Result[In, F]) rop.Result[Out, F] {
		return solo.Map(input, func(r In) Out {
			return onSuccess(ctx, r)
		})
	}
}

// Try runs onTryExecute through solo.Attempt, so a panic fails the item
// instead of the line.
func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Step[In, Out, error] {
	return func(ctx context.Context, input rop.Result[In, error]) rop.Result[Out, error] {
		return solo.Bind(input, func(r In) rop.Result[Out, error] {
			return solo.Attempt(func() (Out, error) {
				return onTryExecute(ctx, r)
			})
		})
	}
}

func Validate[T, F any](test func(ctx context.Context, in T) bool, errValue F) Step[T, T, F] {
	return func(ctx context.Context, input rop.Result[T, F]) rop.Result[T, F] {
		return solo.Bind(input, func(r T) rop.Result[T, F] {
			return solo.Should(test(ctx, r), r, errValue)
		})
	}
}

// Then runs first and, on success, second, as one step.
func Then[A, B, C, F any](first Step[A, B, F], second Step[B, C, F]) Step[A, C, F] {
	return func(ctx context.Context, input rop.Result[A, F]) rop.Result[C, F] {
		return second(ctx, first(ctx, input))
	}
}

// Finally reduces every result from input with onSuccess or onFailure.
func Finally[In, F, Out any](ctx context.Context, input <-chan rop.Result[In, F],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, e F) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for in := range input {
			v := solo.Fold(in,
				func(r In) Out { return onSuccess(ctx, r) },
				func(e F) Out { return onFailure(ctx, e) })

			select {
			case out <- v:
			case <-ctx.Done():
				// keep draining so upstream lines can finish
			}
		}
	}()

	return out
}
