package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ModePrivateFile is used for files that may contain connection details,
	// such as the settings store and the input history.
	ModePrivateFile = os.FileMode(0o600)

	// DefaultConfigFile is the config file looked up when --config is not given.
	DefaultConfigFile = "tablectl.yaml"

	// DefaultDSN points at a local ClickHouse server.
	DefaultDSN = "clickhouse://localhost:9000/default"

	// DefaultMetadataDatabase holds the tables describing solutions, publishers,
	// app modules and relationships.
	DefaultMetadataDatabase = "tablectl"

	// DefaultSettingsFile stores per-user settings such as the default solution.
	DefaultSettingsFile = "~/.tablectl/settings.yaml"

	// DefaultHistoryFile stores interactive input history.
	DefaultHistoryFile = "~/.tablectl/history"

	// DefaultLogLevel keeps the interactive console free of log noise.
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the slog handler used when none is configured.
	DefaultLogFormat = "text"

	// DefaultColorMode enables colors only when writing to a terminal.
	DefaultColorMode = "auto"

	// Prompt is shown before every interactive input line.
	Prompt = "> "
)
