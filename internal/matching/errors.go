package matching

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a generation failure.
type ErrorKind string

// Failure kinds reported by Kind.
const (
	KindConfiguration ErrorKind = "configuration"
	KindUpstream      ErrorKind = "upstream"
	KindOutputShape   ErrorKind = "output_shape"
	KindUnknown       ErrorKind = "unknown"
)

// ConfigurationError means the generator cannot run at all; no model call was made.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamInvocationError wraps a failure of the model call itself.
type UpstreamInvocationError struct {
	Model string
	Cause error
}

func (e *UpstreamInvocationError) Error() string {
	if e.Cause == nil {
		return "model invocation failed"
	}
	return e.Cause.Error()
}

func (e *UpstreamInvocationError) Unwrap() error {
	return e.Cause
}

// OutputShapeError means the model answered but the text is not a valid job-match set.
type OutputShapeError struct {
	Message string
	Cause   error
}

func (e *OutputShapeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *OutputShapeError) Unwrap() error {
	return e.Cause
}

// Kind reports which failure class err belongs to.
func Kind(err error) ErrorKind {
	var configErr *ConfigurationError
	var upstreamErr *UpstreamInvocationError
	var shapeErr *OutputShapeError

	switch {
	case errors.As(err, &configErr):
		return KindConfiguration
	case errors.As(err, &upstreamErr):
		return KindUpstream
	case errors.As(err, &shapeErr):
		return KindOutputShape
	default:
		return KindUnknown
	}
}
