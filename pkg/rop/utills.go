package rop

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil or a typed nil pointer.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
