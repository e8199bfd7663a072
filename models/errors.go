package models

import "errors"

// ErrNotFound signals that the targeted record does not exist.
var ErrNotFound = errors.New("registro não encontrado")

// ValidationError signals malformed caller input (empty or oversized text).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ReferenceError signals that a referenced ancestor id does not exist, or
// that a city does not belong to the stated state.
type ReferenceError struct {
	Msg string
}

func (e *ReferenceError) Error() string { return e.Msg }
