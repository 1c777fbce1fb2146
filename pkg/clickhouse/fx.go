package clickhouse

import (
	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/settings"
	"go.uber.org/fx"
)

// Module provides the session Repository and closes its connection when the
// application stops.
var Module = fx.Module("clickhouse", fx.Provide(newManagedRepository))

func newManagedRepository(lc fx.Lifecycle, cfg *config.Config, store *settings.Store) *Repository {
	r := NewRepository(cfg, store)
	lc.Append(fx.StopHook(r.Close))
	return r
}
