package clickhouse

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/utils"
)

type metadataTable struct {
	name    string
	columns string
	orderBy string
}

// metadataTables describe the tables tablectl reads and writes in the
// metadata database.
var metadataTables = []metadataTable{
	{
		name: "publisher",
		columns: `id UUID, uniquename String, friendlyname String, customizationprefix String,
			customizationoptionvalueprefix Int32, isreadonly Bool DEFAULT false,
			description String DEFAULT '', createdon DateTime DEFAULT now(), createdby String DEFAULT ''`,
		orderBy: "uniquename",
	},
	{
		name: "solution",
		columns: `id UUID, uniquename String, friendlyname String, ismanaged Bool DEFAULT false,
			publisherid UUID, version String DEFAULT '1.0.0.0', createdon DateTime DEFAULT now()`,
		orderBy: "uniquename",
	},
	{
		name: "solutioncomponent",
		columns: `solutionid UUID, componenttype LowCardinality(String), objectname String,
			createdon DateTime DEFAULT now()`,
		orderBy: "(solutionid, componenttype, objectname)",
	},
	{
		name:    "appmodule",
		columns: `id UUID, name String, uniquename String, statecode UInt8 DEFAULT 0`,
		orderBy: "id",
	},
	{
		name:    "role",
		columns: `id UUID, name String`,
		orderBy: "id",
	},
	{
		name:    "appmoduleroles",
		columns: `appmoduleid UUID, roleid UUID`,
		orderBy: "(appmoduleid, roleid)",
	},
	{
		name: "attribute",
		columns: `tablename String, schemaname String, displayname String, description String,
			attributetype LowCardinality(String), requiredlevel LowCardinality(String),
			isaudited Bool, properties Map(String, String), solutionid UUID,
			createdon DateTime DEFAULT now()`,
		orderBy: "(tablename, schemaname)",
	},
	{
		name: "relationship",
		columns: `id UUID, schemaname String, referencingtable String, referencedtable String,
			lookupcolumn String, lookupname String, menubehavior LowCardinality(String),
			menugroup Nullable(String), menulabel Nullable(String), menuorder Nullable(Int32),
			cascadeassign LowCardinality(String), cascadearchive LowCardinality(String),
			cascadeshare LowCardinality(String), cascadeunshare LowCardinality(String),
			cascadedelete LowCardinality(String), cascademerge LowCardinality(String),
			cascadereparent LowCardinality(String), solutionid UUID, createdon DateTime DEFAULT now()`,
		orderBy: "schemaname",
	},
	{
		name:    "presence",
		columns: `id UUID, presencestatustext String, basepresencestatus UInt8`,
		orderBy: "id",
	},
	{
		name: "agentstatushistory",
		columns: `agentemail String, presenceid UUID, starttime DateTime64(3),
			endtime Nullable(DateTime64(3))`,
		orderBy: "(agentemail, starttime)",
	},
}

// MetadataStatements returns the DDL that creates the metadata database and
// its tables.
func (c *Client) MetadataStatements() []string {
	stmts := []string{
		utils.NewSQLBuilder().
			Create("DATABASE").
			IfNotExists().
			Name(c.database).
			OnCluster(c.cluster).
			StringWithoutSemicolon(),
	}

	for _, t := range metadataTables {
		stmts = append(stmts, utils.NewSQLBuilder().
			Create("TABLE").
			IfNotExists().
			QualifiedName(&c.database, t.name).
			OnCluster(c.cluster).
			Raw("("+t.columns+")").
			Engine("MergeTree").
			Raw("ORDER BY "+t.orderBy).
			StringWithoutSemicolon(),
		)
	}

	return stmts
}

// InitMetadata creates the metadata database and any missing tables.
func (c *Client) InitMetadata(ctx context.Context) error {
	for _, stmt := range c.MetadataStatements() {
		if err := c.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to initialize metadata")
		}
	}

	slog.Info("Metadata initialized", "database", c.database, "tables", len(metadataTables))
	return nil
}
