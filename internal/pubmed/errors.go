// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import "fmt"

// TransportError reports a network-level failure or a non-success HTTP
// status from an E-utilities call. The pipeline never retries; the error
// surfaces to the caller as-is.
type TransportError struct {
	// Endpoint names the failing call ("esearch" or "efetch").
	Endpoint string

	// StatusCode is the HTTP status when the server answered, 0 otherwise.
	StatusCode int

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed: HTTP %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Cause)
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *TransportError) Unwrap() error { return e.Cause }

// MalformedResponseError reports a response body that does not match the
// expected shape: a missing esearchresult container, an undecodable JSON
// body, or unparseable record XML.
type MalformedResponseError struct {
	// Endpoint names the call that produced the body.
	Endpoint string

	// Reason describes what was wrong with the body.
	Reason string

	// Cause is the underlying decode error, if any.
	Cause error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s returned a malformed response: %s: %v", e.Endpoint, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s returned a malformed response: %s", e.Endpoint, e.Reason)
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *MalformedResponseError) Unwrap() error { return e.Cause }
