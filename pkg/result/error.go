package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Error describes a single failure: a message, a numeric code, an optional
// underlying cause and extensible key/value metadata. All fields except the
// metadata are fixed at construction; metadata can be appended to afterwards
// via AddMetadata.
type Error struct {
	id        uuid.UUID
	createdAt time.Time
	message   string
	code      int
	cause     error
	metadata  map[string]any
}

// ErrDefault is the well-known placeholder error used when a faulted result
// carries no explicit errors. Do not attach metadata to it.
var ErrDefault = NewError("Default")

func NewError(message string) *Error {
	return NewErrorCode(message, CodeDefault)
}

func NewErrorCode(message string, code int) *Error {
	return &Error{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		message:   message,
		code:      code,
		metadata:  map[string]any{},
	}
}

// FromCause wraps an underlying error, taking its message and deriving the
// code from its identity (see DeriveCode).
func FromCause(cause error) *Error {
	return FromCauseMessageCode(cause, cause.Error(), DeriveCode(cause))
}

// FromCauseCode wraps an underlying error with its own message but an
// explicit code.
func FromCauseCode(cause error, code int) *Error {
	return FromCauseMessageCode(cause, cause.Error(), code)
}

// FromCauseMessage wraps an underlying error with an explicit message; the
// code is derived from the cause.
func FromCauseMessage(cause error, message string) *Error {
	return FromCauseMessageCode(cause, message, DeriveCode(cause))
}

func FromCauseMessageCode(cause error, message string, code int) *Error {
	e := NewErrorCode(message, code)
	e.cause = cause
	return e
}

// WithCause records the underlying cause and returns the same Error for
// chaining. A cause that is already recorded is kept; the first one wins.
// The bridge combinators use this to attach the failure they caught, so
// errors.Is and errors.As can reach it through Unwrap.
func (e *Error) WithCause(cause error) *Error {
	if e.cause == nil {
		e.cause = cause
	}
	return e
}

// AddMetadata appends a key/value pair and returns the same Error for
// chaining. The key must not already be present; adding a duplicate key
// panics, matching dictionary-add semantics.
func (e *Error) AddMetadata(key string, value any) *Error {
	if _, exists := e.metadata[key]; exists {
		panic(fmt.Sprintf("result: duplicate metadata key %q", key))
	}
	e.metadata[key] = value
	return e
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Code() int {
	return e.code
}

func (e *Error) Cause() error {
	return e.cause
}

// Metadata returns a copy of the metadata map; mutating the returned map
// does not affect the Error.
func (e *Error) Metadata() map[string]any {
	m := make(map[string]any, len(e.metadata))
	for k, v := range e.metadata {
		m[k] = v
	}
	return m
}

func (e *Error) ID() uuid.UUID {
	return e.id
}

// CreatedAt is the construction time (UTC).
func (e *Error) CreatedAt() time.Time {
	return e.createdAt
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (code %d): %v", e.message, e.code, e.cause)
	}
	return fmt.Sprintf("%s (code %d)", e.message, e.code)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}
