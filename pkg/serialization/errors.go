package serialization

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by every precondition failure.
	ErrInvalidArgument = errors.New("serialization: invalid argument")
	// ErrUnsupportedContentType reports a content type without a registered factory.
	ErrUnsupportedContentType = errors.New("serialization: unsupported content type")
	// ErrTypeMismatch reports a parsed value that is not of the requested type.
	ErrTypeMismatch = errors.New("serialization: type mismatch")
)

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("serialization: %s %s", e.Name, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// ContentTypeError carries the content type that could not be resolved.
type ContentTypeError struct {
	ContentType string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("serialization: no parse node factory registered for content type %q", e.ContentType)
}

func (e *ContentTypeError) Unwrap() error {
	return ErrUnsupportedContentType
}
