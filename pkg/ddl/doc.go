// Package ddl parses the ALTER TABLE ... ADD COLUMN statements tablectl
// generates, so a malformed statement is rejected before it reaches the
// server.
//
// The grammar is deliberately narrow: a qualified table name, an optional
// ON CLUSTER clause and one or more ADD COLUMN operations with a type, an
// optional literal DEFAULT and an optional COMMENT. Parsed statements render
// back to canonical SQL with String.
package ddl
