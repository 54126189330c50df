package llmHandlers

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// KindUnreachable covers transport failures and timeouts talking to the
	// model server.
	KindUnreachable ErrorKind = "unreachable"
	// KindEmptyResponse covers a reachable server returning no usable text.
	KindEmptyResponse ErrorKind = "empty_response"
)

type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("llm: %s", e.Kind)
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the gateway error kind, if err carries one.
func KindOf(err error) (ErrorKind, bool) {
	var gwErr *Error
	if !errors.As(err, &gwErr) {
		return "", false
	}
	return gwErr.Kind, true
}
