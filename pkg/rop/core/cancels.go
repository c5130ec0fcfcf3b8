package core

import (
	"context"

	"github.com/ib-77/perhaps/pkg/rop"
)

// Remaining builds handlers that, once ctx is done, push every item the
// locomotive did not finish through broken instead of dropping it. They are
// no-ops when ProcessRemaining is switched off in ctx.
//
// The consumer of the output channel must keep reading until it is closed.
func Remaining[In, Out, F any](broken func(ctx context.Context, in rop.Result[In, F]) rop.Result[Out, F]) CancellationHandlers[In, Out, F] {
	return CancellationHandlers[In, Out, F]{
		OnCancel: func(ctx context.Context, inputCh <-chan rop.Result[In, F], outCh chan<- rop.Result[Out, F]) {
			CancelRemainingResults(ctx, inputCh, broken, outCh)
		},
		OnCancelUnprocessed: func(ctx context.Context, in rop.Result[In, F], outCh chan<- rop.Result[Out, F]) {
			CancelRemainingResult(ctx, in, broken, outCh)
		},
	}
}

func CancelRemainingResults[In, Out, F any](ctx context.Context, inputCh <-chan rop.Result[In, F],
	broken func(ctx context.Context, in rop.Result[In, F]) rop.Result[Out, F], outCh chan<- rop.Result[Out, F]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}
	for in := range inputCh {
		outCh <- broken(ctx, in)
	}
}

func CancelRemainingResult[In, Out, F any](ctx context.Context, in rop.Result[In, F],
	broken func(ctx context.Context, in rop.Result[In, F]) rop.Result[Out, F], outCh chan<- rop.Result[Out, F]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}
	outCh <- broken(ctx, in)
}

// CancelWithCause is a broken function for Result[_, error] pipelines: it
// fails the item with the context's cause.
func CancelWithCause[In, Out any](ctx context.Context, _ rop.Result[In, error]) rop.Result[Out, error] {
	return rop.Failure[Out](context.Cause(ctx))
}
