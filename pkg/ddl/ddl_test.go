package ddl_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/tablectl/pkg/ddl"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestParse_Golden(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{
			name: "add_column",
			sql:  "alter table account add column core_fullname String",
		},
		{
			name: "add_column_qualified_on_cluster",
			sql: "ALTER TABLE `crm`.account ON CLUSTER prod ADD COLUMN IF NOT EXISTS `core_fullname` String " +
				"COMMENT 'Customer\\'s full name';",
		},
		{
			name: "add_column_parametric",
			sql: `ALTER TABLE crm.account
				ADD COLUMN core_amount Decimal(18,2) DEFAULT 0,
				ADD COLUMN core_code Nullable(FixedString(10)),
				ADD COLUMN core_seen DateTime64(3, 'UTC') DEFAULT now()`,
		},
		{
			name: "add_column_enum",
			sql:  "ALTER TABLE account ADD COLUMN core_tier Enum8('Gold' = 1, 'Silver' = 2, 'Unknown' = -1) DEFAULT 'Gold'",
		},
		{
			name: "multiple_statements",
			sql: `-- generated
ALTER TABLE account ADD COLUMN core_active Bool DEFAULT true;
ALTER TABLE contact ADD COLUMN core_accountid Nullable(UUID) COMMENT 'Account';`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := ParseString(tt.sql)
			require.NoError(t, err)
			golden.Assert(t, script.String()+"\n", tt.name+".sql")
		})
	}
}

func TestParse_Accessors(t *testing.T) {
	script, err := Parse(strings.NewReader(
		"ALTER TABLE `crm`.`account` ADD COLUMN `core_name` String COMMENT 'It\\'s a \\\\ name'",
	))
	require.NoError(t, err)
	require.Len(t, script.Statements, 1)

	stmt := script.Statements[0]
	require.Equal(t, "crm.account", stmt.TableName())
	require.Nil(t, stmt.OnCluster)
	require.Len(t, stmt.Columns, 1)
	require.Equal(t, "core_name", stmt.Columns[0].ColumnName())
	require.Equal(t, `It's a \ name`, stmt.Columns[0].CommentText())
	require.Equal(t, "String", stmt.Columns[0].Type.String())
}

func TestParse_StringValues(t *testing.T) {
	script, err := ParseString("ALTER TABLE account ADD COLUMN core_seen DateTime64(3, 'UTC') DEFAULT 'n/a'")
	require.NoError(t, err)

	col := script.Statements[0].Columns[0]
	require.Len(t, col.Type.Params, 2)
	require.Equal(t, "3", *col.Type.Params[0].Number)
	require.Equal(t, "'UTC'", *col.Type.Params[1].Text)
	require.Equal(t, "'UTC'", col.Type.Params[1].String())
	require.Equal(t, "DateTime64(3, 'UTC')", col.Type.String())

	require.NotNil(t, col.Default)
	require.Equal(t, "'n/a'", *col.Default.Text)
	require.Equal(t, "'n/a'", col.Default.String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		wantErr string
	}{
		{name: "valid", sql: "ALTER TABLE account ADD COLUMN core_score Int32"},
		{name: "empty", sql: "", wantErr: "no statements"},
		{name: "missing type", sql: "ALTER TABLE account ADD COLUMN core_score", wantErr: "invalid DDL"},
		{name: "drop column", sql: "ALTER TABLE account DROP COLUMN core_score", wantErr: "invalid DDL"},
		{name: "unbalanced", sql: "ALTER TABLE account ADD COLUMN x Nullable(String", wantErr: "invalid DDL"},
		{name: "injection", sql: "ALTER TABLE account ADD COLUMN x String; DROP TABLE account", wantErr: "invalid DDL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sql)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
