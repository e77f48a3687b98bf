package babel

import (
	"errors"
	"fmt"
)

// Configuration errors returned by NewClient.
var (
	ErrMissingHost = errors.New("missing babel config: host")
	ErrMissingPort = errors.New("missing babel config: port")
	ErrInvalidHost = errors.New("invalid babel config: host")
)

// Argument errors returned before any request is sent.
var (
	ErrMissingToken  = errors.New("missing token")
	ErrMissingTarget = errors.New("missing target")
	ErrMissingFeeds  = errors.New("missing feeds")
	ErrEmptyFeeds    = errors.New("feeds must be a non-empty list")

	ErrMissingHasBody             = errors.New("missing hasBody")
	ErrMissingHasBodyFormat       = errors.New("missing hasBody.format")
	ErrMissingHasBodyType         = errors.New("missing hasBody.type")
	ErrMissingAnnotatedBy         = errors.New("missing annotatedBy")
	ErrMissingHasTarget           = errors.New("missing hasTarget")
	ErrEmptyHasTarget             = errors.New("hasTarget cannot be an empty list")
	ErrMissingHasTargetURI        = errors.New("missing hasTarget.uri")
	ErrUnrecognisedTargetProperty = errors.New("hasTarget has unrecognised property")
)

// ConfigError is returned by NewClient when the configuration is unusable.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ArgumentError is returned when an operation is called with arguments that
// fail validation. No request has been sent when it is returned.
type ArgumentError struct {
	// Op is the client operation, e.g. "CreateAnnotation".
	Op string

	// Property is set for ErrUnrecognisedTargetProperty.
	Property string

	Err error
}

func (e *ArgumentError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("%s: %v '%s'", e.Op, e.Err, e.Property)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// ServiceError is an error reported by Babel, or a response body that could
// not be understood. HTTPCode is zero when no status code applies.
type ServiceError struct {
	Message  string
	HTTPCode int
}

func (e *ServiceError) Error() string {
	return e.Message
}

// TransportError wraps a failure of the HTTP transport itself, such as a
// refused connection or a cancelled context. No response was read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsPreconditionError reports whether err was raised by configuration or
// argument validation rather than by the service or the transport.
func IsPreconditionError(err error) bool {
	var cfgErr *ConfigError
	var argErr *ArgumentError
	return errors.As(err, &cfgErr) || errors.As(err, &argErr)
}
