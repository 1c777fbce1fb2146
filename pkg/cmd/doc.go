// Package cmd provides the tablectl process entrypoint.
//
// The root command loads the configuration file, applies the global flags and
// then either starts the interactive shell (no arguments) or runs a single
// "<namespace> <verb> [options]" command and exits with status 1 when it
// fails. Every registered namespace is also listed as a subcommand so that
// "tablectl --help" shows what is available.
//
// # Global Options
//
//   - --config, -c: the config file (defaults to tablectl.yaml, TABLECTL_CONFIG)
//   - --dsn: the ClickHouse DSN (TABLECTL_DSN)
//   - --verbose, -v: debug logging to stderr
//   - --version: display version information
//
// Global options must precede the namespace; everything after it belongs to
// the command.
package cmd
