package errs

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfBounds  = errors.New("index out of bounds")
	ErrKeyNotInitialized = errors.New("key not initialized")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrNoSuchElement     = errors.New("no such element")
)

const (
	MsgElementNotFound     = "Element not found"
	MsgListEmpty           = "The list is empty"
	MsgPredecessorNotFound = "Predecessor not found"
)

// NoSuchElementError reports a failed traversal of a linked structure.
// It matches ErrNoSuchElement under errors.Is regardless of the message.
type NoSuchElementError struct {
	Message string
}

func NoSuchElement(message string) *NoSuchElementError {
	return &NoSuchElementError{Message: message}
}

func (e *NoSuchElementError) Error() string {
	return fmt.Sprintf("no such element: %s", e.Message)
}

func (e *NoSuchElementError) Is(target error) bool {
	return target == ErrNoSuchElement
}
