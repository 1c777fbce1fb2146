package clickhouse

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNoSolution is returned when no solution was given and no default
	// solution is stored in the settings.
	ErrNoSolution = errors.New("no solution name provided and no default solution set; " +
		"pass --solution or run 'settings set-default-solution'")

	// ErrManagedSolution is returned when changes target a managed solution.
	ErrManagedSolution = errors.New("the solution is managed, specify an unmanaged solution")
)

// ResolveSolution returns the unmanaged solution that new components are
// added to: the one named, or else the current default solution. The
// solution's publisher must carry a customization prefix.
func (r *Repository) ResolveSolution(ctx context.Context, client *Client, name string) (*Solution, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		def, err := r.GetCurrentDefaultSolution(ctx)
		if err != nil {
			return nil, err
		}
		if def == "" {
			return nil, ErrNoSolution
		}
		name = def
	}

	s, err := client.GetSolution(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, errors.Errorf("invalid solution name: %s", name)
		}
		return nil, err
	}

	if s.IsManaged {
		return nil, ErrManagedSolution
	}

	if strings.TrimSpace(s.PublisherPrefix) == "" {
		return nil, errors.Errorf("unable to retrieve the publisher prefix of solution %s", name)
	}

	return s, nil
}
