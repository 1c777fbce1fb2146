package clickhouse_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/config"
	"github.com/pseudomuto/tablectl/pkg/settings"
	"github.com/pseudomuto/tablectl/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func TestIntegration_Metadata(t *testing.T) {
	dsn := testutil.StartClickHouse(t)
	ctx := context.Background()

	cfg := config.Default()
	cfg.ClickHouse.DSN = dsn
	cfg.ClickHouse.Database = "tablectl_it"
	cfg.SettingsFile = t.TempDir() + "/settings.yaml"

	repo := NewRepository(cfg, settings.NewStore(cfg))
	t.Cleanup(func() { _ = repo.Close() })

	client, err := repo.GetCurrentConnection(ctx)
	require.NoError(t, err)

	version, err := client.GetVersion(ctx)
	require.NoError(t, err)
	require.True(t, version.SupportsBoolType())

	require.NoError(t, client.InitMetadata(ctx))
	// idempotent
	require.NoError(t, client.InitMetadata(ctx))

	publisherID := uuid.New()
	require.NoError(t, client.Exec(ctx,
		"INSERT INTO tablectl_it.publisher (id, uniquename, friendlyname, customizationprefix, customizationoptionvalueprefix) VALUES (?, ?, ?, ?, ?)",
		publisherID, "contoso", "Contoso", "core", int32(10000),
	))
	require.NoError(t, client.Exec(ctx,
		"INSERT INTO tablectl_it.publisher (id, uniquename, friendlyname, customizationprefix, customizationoptionvalueprefix) VALUES (?, ?, ?, ?, ?)",
		uuid.New(), "MicrosoftCorporation", "Microsoft", "msft", int32(0),
	))
	require.NoError(t, client.Exec(ctx,
		"INSERT INTO tablectl_it.solution (id, uniquename, friendlyname, publisherid) VALUES (?, ?, ?, ?)",
		uuid.New(), "core_platform", "Core Platform", publisherID,
	))

	publishers, err := client.ListPublishers(ctx)
	require.NoError(t, err)
	require.Len(t, publishers, 1)
	require.Equal(t, "contoso", publishers[0].UniqueName)

	solution, err := client.GetSolution(ctx, "core_platform")
	require.NoError(t, err)
	require.Equal(t, "core", solution.PublisherPrefix)
	require.Equal(t, publisherID, solution.PublisherID)

	presenceID := uuid.New()
	require.NoError(t, client.Exec(ctx,
		"INSERT INTO tablectl_it.presence VALUES (?, ?, ?)", presenceID, "Available", uint8(PresenceAvailable),
	))
	start := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	require.NoError(t, client.Exec(ctx,
		"INSERT INTO tablectl_it.agentstatushistory (agentemail, presenceid, starttime) VALUES (?, ?, ?)",
		"agent@contoso.com", presenceID, start,
	))

	status, err := client.GetAgentStatus(ctx, "Agent@Contoso.com", time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, PresenceAvailable, status.BaseStatus)
	require.True(t, start.Equal(status.StartTime))

	_, err = client.GetAgentStatus(ctx, "agent@contoso.com", start.Add(-time.Minute))
	require.ErrorIs(t, err, ErrNotFound)

	ok, err := client.TableExists(ctx, "tablectl_it.relationship")
	require.NoError(t, err)
	require.True(t, ok)
}
