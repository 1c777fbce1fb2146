// Package commandstest wires command executors to an in-memory ClickHouse
// connection for tests.
package commandstest

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/clickhouse/clickhousetest"
	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/output"
	"github.com/pseudomuto/tablectl/pkg/settings"
)

// Env holds the collaborators of an executor under test.
type Env struct {
	Conn     *clickhousetest.Conn
	Config   *config.Config
	Settings *settings.Store
	Repo     *clickhouse.Repository
	Out      *output.Output
	Buf      *bytes.Buffer
}

// New returns an Env whose metadata database is "meta" and whose settings
// file lives in a temporary directory. Output is written without colors.
func New(t *testing.T) *Env {
	t.Helper()

	cfg := config.Default()
	cfg.ClickHouse.Database = "meta"
	cfg.SettingsFile = filepath.Join(t.TempDir(), "settings.yaml")

	conn := clickhousetest.NewConn()
	store := settings.NewStore(cfg)
	buf := new(bytes.Buffer)

	return &Env{
		Conn:     conn,
		Config:   cfg,
		Settings: store,
		Repo:     clickhouse.NewRepository(cfg, store, clickhouse.WithDialer(conn.Dialer())),
		Out:      output.New(buf, "never"),
		Buf:      buf,
	}
}

// Output returns everything written so far.
func (e *Env) Output() string {
	return e.Buf.String()
}
