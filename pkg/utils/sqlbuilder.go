package utils

import (
	"fmt"
	"strings"
)

// SQLBuilder provides a fluent interface for building ClickHouse DDL statements.
// It handles cluster injection, identifier backticking and conditional clauses
// for the statements tablectl sends to the server.
//
// Example usage:
//
//	sql := NewSQLBuilder().
//		Alter("TABLE").
//		QualifiedName(utils.Ptr("crm"), "account").
//		OnCluster("production").
//		AddColumn("core_fullname", "String").
//		Comment("Full Name").
//		String()
//	// Output: ALTER TABLE `crm`.`account` ON CLUSTER `production` ADD COLUMN `core_fullname` String COMMENT 'Full Name';
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 10),
	}
}

// Create adds a CREATE clause with the specified object type.
//
// Example:
//
//	builder.Create("DATABASE")  // CREATE DATABASE
//	builder.Create("TABLE")     // CREATE TABLE
func (b *SQLBuilder) Create(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", objectType)
	return b
}

// Alter adds an ALTER clause with the specified object type.
//
// Example:
//
//	builder.Alter("TABLE")      // ALTER TABLE
func (b *SQLBuilder) Alter(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "ALTER", objectType)
	return b
}

// IfNotExists adds an IF NOT EXISTS clause. This should be called after CREATE
// or ADD COLUMN.
//
// Example:
//
//	builder.Create("DATABASE").IfNotExists()  // CREATE DATABASE IF NOT EXISTS
func (b *SQLBuilder) IfNotExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "NOT", "EXISTS")
	return b
}

// Name adds a backticked object name.
//
// Example:
//
//	builder.Name("analytics")           // `analytics`
//	builder.Name("db.table")            // `db`.`table`
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, BacktickIdentifier(name))
	}
	return b
}

// QualifiedName adds a qualified name with optional database prefix.
// If database is nil or empty, only the name is added with backticks.
//
// Example:
//
//	builder.QualifiedName(nil, "account")              // `account`
//	builder.QualifiedName(&"crm", "account")           // `crm`.`account`
func (b *SQLBuilder) QualifiedName(database *string, name string) *SQLBuilder {
	qualifiedName := BacktickQualifiedName(database, name)
	if qualifiedName != "" {
		b.parts = append(b.parts, qualifiedName)
	}
	return b
}

// OnCluster adds an ON CLUSTER clause if cluster is not empty.
//
// Example:
//
//	builder.OnCluster("production")  // ON CLUSTER `production`
//	builder.OnCluster("")            // (nothing added)
func (b *SQLBuilder) OnCluster(cluster string) *SQLBuilder {
	if cluster != "" {
		b.parts = append(b.parts, "ON", "CLUSTER", BacktickIdentifier(cluster))
	}
	return b
}

// Engine adds an ENGINE clause with the specified engine name.
//
// Example:
//
//	builder.Engine("MergeTree")      // ENGINE = MergeTree
func (b *SQLBuilder) Engine(engine string) *SQLBuilder {
	if engine != "" {
		b.parts = append(b.parts, "ENGINE", "=", engine)
	}
	return b
}

// AddColumn adds an ADD COLUMN clause for ALTER TABLE operations.
//
// Example:
//
//	builder.AddColumn("core_score", "Int32")  // ADD COLUMN `core_score` Int32
func (b *SQLBuilder) AddColumn(name, dataType string) *SQLBuilder {
	b.parts = append(b.parts, "ADD", "COLUMN", BacktickIdentifier(name), dataType)
	return b
}

// Default adds a DEFAULT expression to a column definition.
//
// Example:
//
//	builder.Default("false")  // DEFAULT false
func (b *SQLBuilder) Default(expression string) *SQLBuilder {
	if expression != "" {
		b.parts = append(b.parts, "DEFAULT", expression)
	}
	return b
}

// Comment adds a COMMENT clause with the specified comment text.
// The comment is automatically quoted and SQL-escaped.
//
// Example:
//
//	builder.Comment("Full name of the contact")  // COMMENT 'Full name of the contact'
//	builder.Comment("")                          // (nothing added)
func (b *SQLBuilder) Comment(comment string) *SQLBuilder {
	if comment != "" {
		b.parts = append(b.parts, "COMMENT", Quote(comment))
	}
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for complex constructs
// that don't fit the fluent pattern.
//
// Example:
//
//	builder.Raw("ORDER BY id")  // ORDER BY id
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// String builds and returns the final SQL statement with a semicolon.
//
// Example:
//
//	sql := builder.Create("DATABASE").Name("test").String()
//	// Returns: "CREATE DATABASE `test`;"
func (b *SQLBuilder) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	return strings.Join(b.parts, " ") + ";"
}

// StringWithoutSemicolon builds and returns the final SQL statement without a
// semicolon. clickhouse-go rejects multi-statement queries, so statements sent
// to the server use this form.
func (b *SQLBuilder) StringWithoutSemicolon() string {
	return strings.Join(b.parts, " ")
}

// Quote wraps value in single quotes, escaping backslashes and quotes.
//
// Example:
//
//	Quote("Owner's name")  // 'Owner\'s name'
func Quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", `\'`)
	return fmt.Sprintf("'%s'", escaped)
}
