package utils_test

import (
	"testing"

	"github.com/pseudomuto/tablectl/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestSQLBuilder(t *testing.T) {
	tests := []struct {
		name     string
		builder  func() *utils.SQLBuilder
		expected string
	}{
		{
			name:     "CREATE DATABASE IF NOT EXISTS",
			builder:  func() *utils.SQLBuilder { return utils.NewSQLBuilder().Create("DATABASE").IfNotExists().Name("tablectl") },
			expected: "CREATE DATABASE IF NOT EXISTS `tablectl`;",
		},
		{
			name: "CREATE TABLE with cluster and engine",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().
					Create("TABLE").
					IfNotExists().
					QualifiedName(utils.Ptr("tablectl"), "publisher").
					OnCluster("prod").
					Raw("(id UUID)").
					Engine("MergeTree").
					Raw("ORDER BY id")
			},
			expected: "CREATE TABLE IF NOT EXISTS `tablectl`.`publisher` ON CLUSTER `prod` (id UUID) ENGINE = MergeTree ORDER BY id;",
		},
		{
			name: "ALTER TABLE ADD COLUMN",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().
					Alter("TABLE").
					QualifiedName(utils.Ptr("crm"), "account").
					AddColumn("core_fullname", "String")
			},
			expected: "ALTER TABLE `crm`.`account` ADD COLUMN `core_fullname` String;",
		},
		{
			name: "ALTER TABLE ADD COLUMN with everything",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().
					Alter("TABLE").
					QualifiedName(utils.Ptr("crm"), "account").
					OnCluster("production").
					AddColumn("core_active", "Bool").
					Default("true").
					Comment("Customer's status")
			},
			expected: "ALTER TABLE `crm`.`account` ON CLUSTER `production` ADD COLUMN `core_active` Bool DEFAULT true COMMENT 'Customer\\'s status';",
		},
		{
			name: "empty optional clauses",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Alter("TABLE").Name("account").OnCluster("").Default("").Comment("").Raw("")
			},
			expected: "ALTER TABLE `account`;",
		},
		{
			name:     "empty builder",
			builder:  utils.NewSQLBuilder,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.builder().String())
		})
	}
}

func TestSQLBuilder_StringWithoutSemicolon(t *testing.T) {
	sql := utils.NewSQLBuilder().Alter("TABLE").Name("account").AddColumn("x", "String").StringWithoutSemicolon()
	require.Equal(t, "ALTER TABLE `account` ADD COLUMN `x` String", sql)
}

func TestQuote(t *testing.T) {
	require.Equal(t, "'plain'", utils.Quote("plain"))
	require.Equal(t, `'it\'s'`, utils.Quote("it's"))
	require.Equal(t, `'a\\b'`, utils.Quote(`a\b`))
}
