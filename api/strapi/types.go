package strapi

import (
	"encoding/json"
	"fmt"
)

// Envelope is the response convention of the backend: a data payload plus
// optional pagination metadata.
type Envelope[T any] struct {
	Data T     `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries collection-level metadata.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the server-side page window of a collection response.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// errorBody is the backend's error envelope: { "error": { "message": ... } }.
type errorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// NetworkError means the request never produced an HTTP response
// (connection refused, DNS failure, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx response, carrying the server-provided message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// decodeErrorBody extracts the server message from an error response body.
// Falls back to the raw body when it is not the expected envelope.
func decodeErrorBody(status int, body []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error.Message != "" {
		return &APIError{Status: status, Message: eb.Error.Message}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("unexpected status %d", status)}
}
