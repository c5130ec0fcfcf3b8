package core

import (
	"context"
	"sync"

	"github.com/ib-77/perhaps/pkg/rop"
)

type CancellationHandlers[In, Out, F any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan rop.Result[In, F], outCh chan<- rop.Result[Out, F])
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In, F], outCh chan<- rop.Result[Out, F])
}

func (h CancellationHandlers[In, Out, F]) cancel(ctx context.Context,
	inputCh <-chan rop.Result[In, F], outCh chan<- rop.Result[Out, F]) {
	if h.OnCancel != nil {
		h.OnCancel(ctx, inputCh, outCh)
	}
}

func (h CancellationHandlers[In, Out, F]) cancelWith(ctx context.Context, in rop.Result[In, F],
	inputCh <-chan rop.Result[In, F], outCh chan<- rop.Result[Out, F]) {
	if h.OnCancelUnprocessed != nil {
		h.OnCancelUnprocessed(ctx, in, outCh)
	}
	h.cancel(ctx, inputCh, outCh)
}

// Locomotive feeds every result from inputCh through engine into outCh until
// inputCh is closed or ctx is done. A rate limiter found in ctx is waited on
// before each item. An item whose output could not be delivered before ctx
// was done goes to OnCancelUnprocessed.
func Locomotive[In, Out, F any](ctx context.Context, inputCh <-chan rop.Result[In, F], outCh chan<- rop.Result[Out, F],
	engine func(ctx context.Context, input rop.Result[In, F]) rop.Result[Out, F],
	handlers CancellationHandlers[In, Out, F], wg *sync.WaitGroup) {
	defer wg.Done()

	limiter := GetLimiter(ctx)

	for {
		if ctx.Err() != nil {
			handlers.cancel(ctx, inputCh, outCh)
			return
		}

		select {
		case <-ctx.Done():
			handlers.cancel(ctx, inputCh, outCh)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					handlers.cancelWith(ctx, in, inputCh, outCh)
					return
				}
			}

			pr := engine(ctx, in)
			if ctx.Err() != nil {
				handlers.cancelWith(ctx, in, inputCh, outCh)
				return
			}

			select {
			case <-ctx.Done():
				handlers.cancelWith(ctx, in, inputCh, outCh)
				return
			case outCh <- pr:
			}
		}
	}
}
