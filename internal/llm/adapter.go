package llm

import "context"

// BackendKind orders adapters in the pipeline: the first Ready primary
// generates, a Ready secondary refines.
type BackendKind int

const (
	BackendPrimary BackendKind = iota
	BackendSecondary
)

// Adapter is one model backend. Implementations carry no mutable state
// and are safe for concurrent use.
type Adapter interface {
	Kind() BackendKind
	Name() string
	// Ready reports whether a credential is available for this backend.
	Ready(ctx context.Context) bool
	// Invoke sends one prompt and returns the raw model text. Errors are
	// always one of *AuthError, *TransportError, or *EmptyResponseError.
	Invoke(ctx context.Context, prompt string) (string, error)
}

// CredentialSource is the slice of the credential store adapters need.
type CredentialSource interface {
	Get(ctx context.Context, backend string) (string, bool, error)
}
