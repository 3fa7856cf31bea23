// Package errors holds the sentinel errors shared by the command, the
// configuration model and the GitHub client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Configuration errors
	ErrMissingRequired = errors.New("missing required option")
	ErrUnknownOption   = errors.New("unknown option")
	ErrInvalidConfig   = errors.New("invalid configuration")

	// Credential errors
	ErrInvalidCredential = errors.New("invalid credential")

	// Remote call errors
	ErrRemoteCall        = errors.New("remote call failed")
	ErrInvalidPermission = errors.New("invalid permission level")
)

// ErrorKind groups errors by the stage of a run that produced them.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindConfiguration
	KindCredential
	KindRemote
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConfiguration:
		return "configuration"
	case KindCredential:
		return "credential"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Kind classifies err. Remote failures take precedence so that an API
// rejection of a request is never mistaken for bad local input.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrRemoteCall):
		return KindRemote
	case errors.Is(err, ErrInvalidCredential):
		return KindCredential
	case errors.Is(err, ErrMissingRequired),
		errors.Is(err, ErrUnknownOption),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrInvalidPermission):
		return KindConfiguration
	default:
		return KindUnknown
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
