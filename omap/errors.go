package omap

import (
	"errors"
)

var (
	// ErrKeyNotFound is returned by At when no equivalent key is stored.
	ErrKeyNotFound = errors.New("omap: key not found")
	// ErrInvalidIterator is returned when an iterator is used where it
	// denotes nothing: stepping past either end, dereferencing End,
	// or erasing through an iterator that is foreign, End, or stale.
	ErrInvalidIterator = errors.New("omap: invalid iterator")
)
