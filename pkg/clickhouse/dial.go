package clickhouse

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/config"
)

// DialFunc opens a connection described by cfg.
type DialFunc func(ctx context.Context, cfg config.ClickHouse) (Conn, error)

// Dial parses the DSN in cfg, applies the mTLS settings when present, opens
// the connection and pings the server.
//
// Example:
//
//	conn, err := clickhouse.Dial(ctx, config.ClickHouse{
//		DSN: "clickhouse://default:@localhost:9000/default",
//	})
//	if err != nil {
//		return err
//	}
//	defer conn.Close()
func Dial(ctx context.Context, cfg config.ClickHouse) (Conn, error) {
	opts, err := clickhouse.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "invalid clickhouse dsn")
	}

	if cfg.TLS != nil {
		tlsConfig, err := GetTLSConfig(*cfg.TLS)
		if err != nil {
			return nil, err
		}
		opts.TLS = tlsConfig
	}

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open connection")
	}

	addr := strings.Join(opts.Addr, ",")
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "failed to connect to %s", addr)
	}

	slog.Info("Connected to ClickHouse", "addr", addr, "database", opts.Auth.Database)
	return conn, nil
}
