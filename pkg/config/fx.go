package config

import "go.uber.org/fx"

// Module provides the process configuration. It starts out as the defaults;
// the CLI loads the file named by --config into it before any command runs.
var Module = fx.Module("config", fx.Provide(Default))
