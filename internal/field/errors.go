package field

import (
	"errors"
	"fmt"
)

// Reasons an edit is ignored. None of them change the buffer or caret.
var (
	ErrSpace       = errors.New("space is not accepted")
	ErrComposed    = errors.New("input is more than one character")
	ErrDisallowed  = errors.New("character is not alphanumeric")
	ErrEmpty       = errors.New("input is empty")
	ErrFull        = errors.New("buffer is full")
	ErrBufferEmpty = errors.New("buffer is empty")
)

// InputError describes one ignored edit.
type InputError struct {
	Op    string
	Input string
	Err   error
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Input != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

func wrapInsertErr(input string, err error) *InputError {
	if err == nil {
		return nil
	}
	return &InputError{Op: "insert", Input: input, Err: err}
}

func wrapDeleteErr(err error) *InputError {
	if err == nil {
		return nil
	}
	return &InputError{Op: "delete", Err: err}
}
