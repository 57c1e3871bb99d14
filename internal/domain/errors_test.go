package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NetworkError{Op: "search bookings", URL: "http://x/api/search_booking", Err: cause}

	assert.Equal(t, "search bookings: network error http://x/api/search_booking: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsNetwork(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsMalformedResponse(err))

	status := NetworkError{URL: "http://x", StatusCode: 503}
	assert.Equal(t, "network error http://x: status 503", status.Error())
}

func TestMalformedResponseError(t *testing.T) {
	err := MalformedResponseError{Details: []string{"0: id is required", "1: plane_id is required"}}
	assert.Equal(t, "malformed response: 0: id is required; 1: plane_id is required", err.Error())
	assert.True(t, IsMalformedResponse(err))

	cause := errors.New("invalid character '<'")
	wrapped := MalformedResponseError{Err: cause}
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "malformed response: invalid character '<'", wrapped.Error())
}

func TestConfigurationError(t *testing.T) {
	err := ConfigurationError{Field: "labels", Msg: "2 labels for 3 values"}
	assert.Equal(t, "invalid chart labels: 2 labels for 3 values", err.Error())
	assert.True(t, IsConfiguration(fmt.Errorf("render: %w", err)))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "invalid chart configuration", ConfigurationError{}.Error())
}

func TestNotFoundAndValidation(t *testing.T) {
	assert.Equal(t, "flight not found", NotFoundError{Resource: "flight"}.Error())
	assert.Equal(t, "month: must be YYYY-MM", ValidationError{Field: "month", Msg: "must be YYYY-MM"}.Error())
	assert.True(t, IsNotFound(NotFoundError{}))
	assert.True(t, IsInternal(InternalError{Msg: "db"}))
}
