package domain

import (
	"errors"
	"fmt"
	"strings"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// NetworkError reports a failed request to a remote endpoint: transport failure,
// rate limiter refusal or a non-2xx status.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e NetworkError) Error() string {
	msg := "network error"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.URL != "" {
		msg += " " + e.URL
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError reports a response body that is not JSON or does not
// match the expected schema.
type MalformedResponseError struct {
	Details []string
	Err     error
}

func (e MalformedResponseError) Error() string {
	switch {
	case len(e.Details) > 0:
		return "malformed response: " + strings.Join(e.Details, "; ")
	case e.Err != nil:
		return "malformed response: " + e.Err.Error()
	default:
		return "malformed response"
	}
}

func (e MalformedResponseError) Unwrap() error { return e.Err }

// ConfigurationError reports chart input that cannot produce a valid chart.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e ConfigurationError) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return fmt.Sprintf("invalid chart %s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return "invalid chart: " + e.Msg
	case e.Field != "":
		return "invalid chart " + e.Field
	default:
		return "invalid chart configuration"
	}
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsNetwork(err error) bool {
	var target NetworkError
	return errors.As(err, &target)
}

func IsMalformedResponse(err error) bool {
	var target MalformedResponseError
	return errors.As(err, &target)
}

func IsConfiguration(err error) bool {
	var target ConfigurationError
	return errors.As(err, &target)
}
