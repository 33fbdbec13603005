package result

import (
	"context"
	"errors"
	"hash/fnv"
	"reflect"
)

// Well-known error codes. Derived codes (see DeriveCode) never collide with
// these: they always have bit 16 set.
const (
	CodeDefault  = 0
	CodeCanceled = 1
	CodeDeadline = 2
)

// DeriveCode maps a cause to a numeric code based on its identity.
// Cancellation causes get fixed codes; everything else is hashed from the
// cause's dynamic type name, so two errors of the same type always share a
// code.
func DeriveCode(cause error) int {
	if cause == nil {
		return CodeDefault
	}
	if errors.Is(cause, context.Canceled) {
		return CodeCanceled
	}
	if errors.Is(cause, context.DeadlineExceeded) {
		return CodeDeadline
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(reflect.TypeOf(cause).String()))
	return int(h.Sum32()&0xffff) | 1<<16
}
