package lite

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ib-77/perhaps/pkg/rop"
	"github.com/ib-77/perhaps/pkg/rop/core"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sorted(values []int) []int {
	sort.Ints(values)
	return values
}

func successes[T any](results []rop.Result[T, error]) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsSuccess() {
			out = append(out, r.Result())
		}
	}
	return out
}

// Test Run function with single worker
func TestRun_SingleWorker(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	double := Map[int, int, error](func(_ context.Context, v int) int { return v * 2 })
	results := core.Drain(Run(ctx, core.ToChanManyResults[error](ctx, []int{1, 2, 3, 4, 5}), double, 1))

	assert.Equal(t, []int{2, 4, 6, 8, 10}, sorted(successes(results)))
}

// Test Run function with multiple workers
func TestRun_MultipleWorkers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	input := make([]int, 100)
	for i := range input {
		input[i] = i + 1
	}

	var active, peak atomic.Int32
	slow := Map[int, int, error](func(_ context.Context, v int) int {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		active.Add(-1)
		return v
	})

	results := core.Drain(Run(ctx, core.ToChanManyResults[error](ctx, input), slow, 4))

	assert.Len(t, results, 100)
	assert.LessOrEqual(t, peak.Load(), int32(4))
}

func TestRun_LinesFromContext(t *testing.T) {
	t.Parallel()

	ctx := core.WithWorkerOptions(context.Background(), 3)
	identity := Map[int, int, error](func(_ context.Context, v int) int { return v })

	results := core.Drain(Run(ctx, core.ToChanManyResults[error](ctx, []int{1, 2, 3}), identity, 0))
	assert.Equal(t, []int{1, 2, 3}, sorted(successes(results)))
}

func TestTurnout_TypeConversion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	toString := Map[int, string, error](func(_ context.Context, v int) string { return "n" + strconv.Itoa(v) })

	results := core.Drain(Turnout(ctx, core.ToChanManyResults[error](ctx, []int{1, 2}), toString, 2,
		core.CancellationHandlers[int, string, error]{}))

	got := successes(results)
	sort.Strings(got)
	assert.Equal(t, []string{"n1", "n2"}, got)
}

func TestTurnout_CancelledFailsRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan rop.Result[int, error], 4)
	for i := range 4 {
		in <- rop.Success[error](i)
	}
	close(in)

	called := atomic.Int32{}
	step := Map[int, int, error](func(_ context.Context, v int) int {
		called.Add(1)
		return v
	})

	results := core.Drain(Turnout(ctx, in, step, 2, core.Remaining[int, int, error](core.CancelWithCause[int, int])))

	require.Len(t, results, 4)
	for _, r := range results {
		assert.ErrorIs(t, r.Err(), context.Canceled)
	}
	assert.Equal(t, int32(0), called.Load())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errOne := errors.New("value should not be 1")
	notOne := Validate(func(_ context.Context, v int) bool { return v != 1 }, errOne)

	assert.Equal(t, rop.Success[error](2), notOne(ctx, rop.Success[error](2)))
	assert.Equal(t, rop.Failure[int](errOne), notOne(ctx, rop.Success[error](1)))
}

func TestBind_ShortCircuit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errTest := errors.New("boom")
	called := false
	step := Bind(func(_ context.Context, v int) rop.Result[int, error] {
		called = true
		return rop.Success[error](v)
	})

	assert.Equal(t, rop.Failure[int](errTest), step(ctx, rop.Failure[int](errTest)))
	assert.False(t, called)
}

func TestTry_ErrorAndPanic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	parse := Try(func(_ context.Context, s string) (int, error) {
		if s == "panic" {
			panic("unexpected input")
		}
		return strconv.Atoi(s)
	})

	assert.Equal(t, rop.Success[error](7), parse(ctx, rop.Success[error]("7")))
	assert.True(t, parse(ctx, rop.Success[error]("x")).IsFailure())

	panicked := parse(ctx, rop.Success[error]("panic"))
	require.True(t, panicked.IsFailure())
	assert.Contains(t, panicked.Err().Error(), "unexpected input")
}

func TestThen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	parse := Try(func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) })
	positive := Validate(func(_ context.Context, v int) bool { return v > 0 }, errors.New("not positive"))

	step := Then(parse, positive)
	assert.Equal(t, rop.Success[error](3), step(ctx, rop.Success[error]("3")))
	assert.EqualError(t, step(ctx, rop.Success[error]("-3")).Err(), "not positive")
}

func TestPipeline_Finally(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	inputs := []string{"1", "2", "bad", "", "5"}

	notEmpty := Validate(func(_ context.Context, s string) bool { return s != "" }, errors.New("empty"))
	parse := Try(func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) })
	plus := Map[int, int, error](func(_ context.Context, v int) int { return v + 1000 })

	out := core.Drain(
		Finally(ctx,
			Turnout(ctx,
				Run(ctx, core.ToChanManyResults[error](ctx, inputs), notEmpty, 2),
				Then(parse, plus), 2, core.CancellationHandlers[string, int, error]{}),
			func(_ context.Context, v int) string { return fmt.Sprintf("val:%d", v) },
			func(_ context.Context, err error) string { return "err" },
		))

	sort.Strings(out)
	assert.Equal(t, []string{"err", "err", "val:1001", "val:1002", "val:1005"}, out)
}
