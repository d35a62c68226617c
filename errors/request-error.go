package errors

import (
	"fmt"
)

type RequestError struct {
	Message     string
	Description error
	Type        string
	Path        string
	StatusCode  int
}

func NewRequestError(reason string, path string, description error) *RequestError {
	return &RequestError{
		Message:     reason,
		Description: description,
		Type:        "RequestError",
		Path:        path,
	}
}

// A reply that arrived but was not 200 OK.
func NewStatusError(path string, statusCode int) *RequestError {
	return &RequestError{
		Message:    "unexpected response status",
		Type:       "StatusError",
		Path:       path,
		StatusCode: statusCode,
	}
}

func (e *RequestError) Err() error {
	return e
}

func (e *RequestError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Description != nil {
		msg += ": " + e.Description.Error()
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	return e.Description
}
