package core

import (
	"context"

	"golang.org/x/time/rate"
)

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
	RateOptionKey    OptionKey = "rate_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type ProcessOptions struct {
	ProcessRemaining bool
}

type RateOptions struct {
	Limiter *rate.Limiter
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// WithRateLimit makes every locomotive started with ctx share one token
// bucket of the given limit (events per second) and burst. A non-positive
// limit means no limit; burst is at least 1.
func WithRateLimit(ctx context.Context, limit rate.Limit, burst int) context.Context {
	if limit <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return context.WithValue(ctx, RateOptionKey, RateOptions{Limiter: rate.NewLimiter(limit, burst)})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

// GetLimiter returns nil when no rate limit was configured.
func GetLimiter(ctx context.Context) *rate.Limiter {
	options, ok := ctx.Value(RateOptionKey).(RateOptions)
	if ok {
		return options.Limiter
	}
	return nil
}
