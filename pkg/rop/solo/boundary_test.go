package solo

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/perhaps/pkg/rop"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAttempt_Success(t *testing.T) {
	t.Parallel()

	out := Attempt(func() (int, error) { return 5, nil })
	assert.Equal(t, rop.Success[error](5), out)
}

func TestAttempt_ReturnedError(t *testing.T) {
	t.Parallel()

	out := Attempt(func() (int, error) { return 0, errTest })
	require.True(t, out.IsFailure())
	assert.Same(t, errTest, out.Err())
}

func TestAttempt_PanicWithError(t *testing.T) {
	t.Parallel()

	out := Attempt(func() (int, error) { panic(errTest) })
	require.True(t, out.IsFailure())
	assert.ErrorIs(t, out.Err(), errTest)
	assert.Equal(t, "err", out.Err().Error())
}

func TestAttempt_PanicWithValue(t *testing.T) {
	t.Parallel()

	out := Attempt(func() (string, error) { panic("so angry") })
	require.True(t, out.IsFailure())
	assert.Equal(t, "panic: so angry", out.Err().Error())
}

func TestAttempt_RuntimePanic(t *testing.T) {
	t.Parallel()

	out := Attempt(func() (int, error) {
		var items []int
		return items[3], nil
	})
	require.True(t, out.IsFailure())

	var rtErr runtime.Error
	assert.True(t, errors.As(out.Err(), &rtErr))
}

func TestAttempt_TypedNilErrorIsSuccess(t *testing.T) {
	t.Parallel()

	out := Attempt(func() (int, error) {
		var err *codedError
		return 1, err
	})
	assert.True(t, out.IsSuccess())
	assert.Equal(t, 1, out.Result())
}

func TestAttempt_GoexitIsNotSwallowed(t *testing.T) {
	t.Parallel()

	reachedAfter := false
	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		Attempt(func() (int, error) {
			runtime.Goexit()
			return 0, nil
		})
		reachedAfter = true
	}()

	wg.Wait()
	assert.False(t, reachedAfter)
}

func TestAttemptWith(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Success[error](10), AttemptWith(strconv.Atoi, "10"))
	assert.True(t, AttemptWith(strconv.Atoi, "ten").IsFailure())
}

func TestTry(t *testing.T) {
	t.Parallel()

	parse := Try(strconv.Atoi)
	double := func(v int) rop.Result[int, error] { return rop.Success[error](v * 2) }

	assert.Equal(t, rop.Success[error](20), Bind(parse("10"), double))

	out := Bind(Pure[error]("x"), parse)
	require.True(t, out.IsFailure())

	var numErr *strconv.NumError
	assert.True(t, errors.As(out.Err(), &numErr))
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Success[error]("v"), FromPair("v", nil))
	assert.Equal(t, rop.Failure[string](errTest), FromPair("v", errTest))
}

func TestPredicate(t *testing.T) {
	t.Parallel()

	positive := Predicate(func(v int) bool { return v > 0 }, "not positive")
	assert.Equal(t, rop.Success[string](1), positive(1))
	assert.Equal(t, rop.Failure[int]("not positive"), positive(-1))

	always := Predicate(func(int) bool { return true }, "err")
	never := Predicate(func(int) bool { return false }, "err")
	assert.Equal(t, rop.Success[string](1), always(1))
	assert.Equal(t, rop.Failure[int]("err"), never(1))
}

func TestShould(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Success[string](1), Should(true, 1, "err"))
	assert.Equal(t, rop.Failure[int]("err"), Should(false, 1, "err"))
}
