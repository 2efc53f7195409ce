package core

import (
	"errors"
	"fmt"
)

// ErrInvalidManifest is returned when the manifest has no usable name.
var ErrInvalidManifest = errors.New("invalid manifest")

// ErrFileNotFound is returned when no manifest file can be located.
var ErrFileNotFound = errors.New("manifest not found")

// ErrClipboardUnavailable is returned when the platform clipboard cannot be written.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// ErrUnknownMode is returned for a Mode the resolver does not understand.
var ErrUnknownMode = errors.New("unknown mode")

// ParseError reports a manifest file whose contents could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
