package llm

import "fmt"

// AuthError means the backend rejected our credential. It is terminal:
// the retry controller never retries it and the orchestrator clears the
// stored key for the backend.
type AuthError struct {
	Backend string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: credential rejected: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("%s: credential missing or rejected", e.Backend)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError covers network failures, timeouts, and non-auth HTTP
// errors. Retryable.
type TransportError struct {
	Backend string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Backend, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// EmptyResponseError means the call succeeded but produced no usable
// text, typically a safety block. Retryable.
type EmptyResponseError struct {
	Backend string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s: model returned no text", e.Backend)
}
