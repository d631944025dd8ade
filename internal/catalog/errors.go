package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog API operations.
var (
	ErrNotFound     = errors.New("catalog: not found")
	ErrUnauthorized = errors.New("catalog: unauthorized, check the bearer token")
	ErrRateLimited  = errors.New("catalog: rate limited by server")
	ErrBadRequest   = errors.New("catalog: bad request")
	ErrServer       = errors.New("catalog: server error")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op  string // "search" or "recommendations"
	Key string // query or movie id
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("catalog %s [%s]: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(op string, key string, err error) error {
	return &Error{
		Op:  op,
		Key: key,
		Err: err,
	}
}
