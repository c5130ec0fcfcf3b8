package perhaps

import (
	"github.com/ib-77/perhaps/pkg/rop"
	"github.com/ib-77/perhaps/pkg/rop/solo"
)

type Perhaps[S any] = rop.Result[S, rop.Unit]

func Succeed[S any](v S) Perhaps[S] {
	return rop.Success[rop.Unit](v)
}

// Fail returns the shared failure, which is also the zero Perhaps.
func Fail[S any]() Perhaps[S] {
	return Perhaps[S]{}
}

// FromOk converts the Go comma-ok idiom.
func FromOk[S any](v S, ok bool) Perhaps[S] {
	if ok {
		return Succeed(v)
	}
	return Fail[S]()
}

func Predicate[T any](test func(v T) bool) func(v T) Perhaps[T] {
	return solo.Predicate(test, rop.Unit{})
}

// Forget drops the failure payload of r.
func Forget[S, F any](r rop.Result[S, F]) Perhaps[S] {
	return solo.MapError(r, func(F) rop.Unit { return rop.Unit{} })
}

// Recall attaches e to a failure.
func Recall[S, F any](p Perhaps[S], e F) rop.Result[S, F] {
	return solo.MapError(p, func(rop.Unit) F { return e })
}
