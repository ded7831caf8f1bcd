package credstore

import "context"

// Store holds one API key per backend. Keys are written by the
// credential endpoints and read by the adapters on every call, so a
// rotation takes effect without a restart.
type Store interface {
	Get(ctx context.Context, backend string) (string, bool, error)
	Put(ctx context.Context, backend, apiKey string) error
	Delete(ctx context.Context, backend string) error
	// List returns the backends that currently have a key, never the
	// keys themselves.
	List(ctx context.Context) ([]string, error)
	Close() error
}
