package console

import (
	"errors"
	"net/http"
)

const (
	UnreachableError      = "UnreachableError"
	ResourceNotFoundError = "ResourceNotFoundError"
	ProcessRequestError   = "ProcessRequestError"
	ResponseDecodeError   = "ResponseDecodeError"
	APIError              = "APIError"
)

// Error is returned for every failed call to the backend API. Status is the
// HTTP status of the response, or zero when no response was received.
type Error struct {
	Type    string `json:"name"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`

	cause error
}

func NewError(errType string, message string) Error {
	return Error{
		Type:    errType,
		Message: message,
	}
}

func (err Error) Error() string {
	return err.Message
}

func (err Error) Unwrap() error {
	return err.cause
}

func IsNotFound(err error) bool {
	var apiErr Error
	return errors.As(err, &apiErr) && apiErr.Type == ResourceNotFoundError
}

func errorTypeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return ResourceNotFoundError
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ProcessRequestError
	default:
		return APIError
	}
}
