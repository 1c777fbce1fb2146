package shell

import (
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/output"
	"go.uber.org/fx"
)

var Module = fx.Module("shell", fx.Provide(newConfiguredShell))

// newConfiguredShell reads the history file location when Run starts, after
// the configuration file has been loaded.
func newConfiguredShell(
	registry *command.Registry,
	binder *command.Binder,
	dispatcher *command.Dispatcher,
	out *output.Output,
	cfg *config.Config,
) *Shell {
	return New(registry, binder, dispatcher, out, func(s *Shell) {
		s.openReader = func(c Completer) (LineReader, error) {
			return NewLineReader(cfg.HistoryFile, c)
		}
	})
}
