package content

import "fmt"

// APIError reports a failed transport call or a non-OK envelope from the
// content API. Message carries the server-provided text when available.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the server message, falling back to the status code.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("content api: %s", e.Message)
	}
	return fmt.Sprintf("content api: unexpected status %d", e.StatusCode)
}

// DataError reports a structurally incomplete response: a component the
// bundle needs could not be located in the payload.
type DataError struct {
	Component string
}

// Error names the missing component.
func (e *DataError) Error() string {
	return fmt.Sprintf("content response is missing %s", e.Component)
}
