package client

import (
	"fmt"
	"net/http"
)

// ErrorType categorizes request failures
type ErrorType string

const (
	// ErrorTypeNetwork means the request never got a response
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeStatus means the server answered with a non-2xx status
	ErrorTypeStatus ErrorType = "status"
	// ErrorTypeDecode means a 2xx body could not be parsed
	ErrorTypeDecode ErrorType = "decode"
)

// Error is a structured error returned by every Client method that talks to the server
type Error struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	switch e.Type {
	case ErrorTypeStatus:
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
	case ErrorTypeDecode:
		return fmt.Sprintf("failed to parse response: %v", e.Cause)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns a short message suitable for the dashboard notice
func (e *Error) UserMessage() string {
	switch e.Type {
	case ErrorTypeNetwork:
		return "Could not reach the crawl service. Is it running?"
	case ErrorTypeStatus:
		switch e.StatusCode {
		case http.StatusNotFound:
			return "URL not found. It may have been deleted."
		case http.StatusConflict:
			return e.Message
		}
		if e.StatusCode >= 500 {
			return fmt.Sprintf("Server error (%d): %s", e.StatusCode, e.Message)
		}
		return e.Message
	case ErrorTypeDecode:
		return "Received an invalid response from the crawl service."
	}
	return e.Message
}

func newNetworkError(message string, cause error) *Error {
	return &Error{
		Type:    ErrorTypeNetwork,
		Message: message,
		Cause:   cause,
	}
}

func newStatusError(code int, message string) *Error {
	return &Error{
		Type:       ErrorTypeStatus,
		StatusCode: code,
		Message:    message,
	}
}

func newDecodeError(cause error) *Error {
	return &Error{
		Type:  ErrorTypeDecode,
		Cause: cause,
	}
}
