package clickhouse

import (
	"context"
	"sync"

	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/settings"
)

type (
	// Repository owns the session's connection. The connection is opened on
	// first use and reused by every later command.
	Repository struct {
		cfg      *config.Config
		settings *settings.Store
		dial     DialFunc

		mu     sync.Mutex
		client *Client
	}

	// RepositoryOption customizes a Repository.
	RepositoryOption func(*Repository)
)

// WithDialer replaces the function used to open connections.
func WithDialer(dial DialFunc) RepositoryOption {
	return func(r *Repository) {
		r.dial = dial
	}
}

// NewRepository creates a Repository. cfg is read when the first connection
// is opened, so it may still change until then.
func NewRepository(cfg *config.Config, store *settings.Store, opts ...RepositoryOption) *Repository {
	r := &Repository{cfg: cfg, settings: store, dial: Dial}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetCurrentConnection returns the session client, connecting first if
// needed. A failed attempt is not cached.
func (r *Repository) GetCurrentConnection(ctx context.Context) (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	conn, err := r.dial(ctx, r.cfg.ClickHouse)
	if err != nil {
		return nil, err
	}

	r.client = NewClient(conn, r.cfg.ClickHouse.Database, r.cfg.ClickHouse.Cluster)
	return r.client, nil
}

// GetCurrentDefaultSolution returns the solution stored with
// "settings set-default-solution", or "" when none is set.
func (r *Repository) GetCurrentDefaultSolution(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.settings.DefaultSolution()
}

// Close closes the session connection, if one was opened.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client == nil {
		return nil
	}

	err := r.client.Close()
	r.client = nil
	return err
}
