package clickhouse

import (
	"context"
	"log/slog"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/utils"
)

type (
	// Conn is the part of driver.Conn the Client relies on.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		QueryRow(ctx context.Context, query string, args ...any) driver.Row
		Exec(ctx context.Context, query string, args ...any) error
		Ping(ctx context.Context) error
		Close() error
	}

	// Client runs metadata queries and DDL against a ClickHouse connection.
	Client struct {
		conn     Conn
		database string
		cluster  string
	}
)

// NewClient wraps conn. database holds the metadata tables and cluster, when
// not empty, is added to every DDL statement as ON CLUSTER.
func NewClient(conn Conn, database, cluster string) *Client {
	return &Client{conn: conn, database: database, cluster: cluster}
}

// Database returns the metadata database name.
func (c *Client) Database() string {
	return c.database
}

// Cluster returns the cluster used for ON CLUSTER operations.
func (c *Client) Cluster() string {
	return c.cluster
}

// Exec runs a single statement.
func (c *Client) Exec(ctx context.Context, stmt string, args ...any) error {
	slog.Debug("Executing statement", "sql", stmt)
	if err := c.conn.Exec(ctx, stmt, args...); err != nil {
		return errors.Wrap(err, "statement failed")
	}
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) table(name string) string {
	return utils.BacktickQualifiedName(&c.database, name)
}
