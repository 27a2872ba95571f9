package blobstore

import "errors"

var (
	// ErrNotFound is returned by Get for an id that was never pinned.
	ErrNotFound = errors.New("blob not found")

	// ErrIDMismatch is returned by Put when the bytes do not hash to the
	// given id.
	ErrIDMismatch = errors.New("content does not match its id")

	ErrOpeningStore = errors.New("failed to open blob store")
)
