// Package testutil starts the external services integration tests run
// against.
package testutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/go-connections/nat"
	"github.com/pseudomuto/tablectl/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

// ClickHouseImage is the server image used by integration tests.
const ClickHouseImage = "clickhouse/clickhouse-server:25.7-alpine"

const serverConfig = `<?xml version="1.0"?>
<clickhouse>
    <logger>
        <level>warning</level>
        <console>true</console>
    </logger>
</clickhouse>`

// SkipIfNoDocker skips the test when running with -short or when no Docker
// daemon is reachable.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test skipped with -short")
	}

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}

	if err := exec.Command("docker", "ps").Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}

// StartClickHouse runs a disposable ClickHouse server for the duration of the
// test and returns its DSN.
func StartClickHouse(t *testing.T) string {
	t.Helper()
	SkipIfNoDocker(t)

	configFile := filepath.Join(t.TempDir(), "logging.xml")
	require.NoError(t, os.WriteFile(configFile, []byte(serverConfig), consts.ModeFile))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ch, err := clickhouse.Run(ctx, ClickHouseImage,
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(""),
		testcontainers.WithEnv(map[string]string{"CLICKHOUSE_DEFAULT_ACCESS_MANAGEMENT": "1"}),
		testcontainers.WithWaitStrategyAndDeadline(
			5*time.Minute,
			wait.
				NewHTTPStrategy("/").
				WithPort(nat.Port("8123/tcp")).
				WithStatusCodeMatcher(func(status int) bool {
					return status == 200
				}),
		),
		testcontainers.WithHostConfigModifier(func(hostConfig *container.HostConfig) {
			hostConfig.Mounts = []mount.Mount{
				{
					Type:     mount.TypeBind,
					Source:   configFile,
					Target:   "/etc/clickhouse-server/config.d/tablectl-logging.xml",
					ReadOnly: true,
				},
			}
		}),
	)
	testcontainers.CleanupContainer(t, ch)
	require.NoError(t, err, "failed to start ClickHouse container")

	dsn, err := ch.ConnectionString(ctx)
	require.NoError(t, err)

	return dsn
}
