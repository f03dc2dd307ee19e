package docconv

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a document failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrClosed indicates an operation on a closed collaborator.
	ErrClosed = errors.New("closed")

	// ErrEmptyInput indicates an importer or clipboard received no content.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoMatch indicates a selector matched nothing.
	ErrNoMatch = errors.New("no match")
)
