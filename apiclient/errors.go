package apiclient

import "fmt"

// APIError is the single shape every transport or server failure collapses
// into. StatusCode is 0 when the request never reached the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}
