// Package utils provides helpers shared by the command packages.
//
// # Identifiers (identifier.go)
//
// Every identifier written into generated DDL goes through BacktickIdentifier
// or BacktickQualifiedName so table and column names containing reserved
// words or odd characters stay valid:
//
//	utils.BacktickIdentifier("crm.account")
//	// Result: `crm`.`account`
//
//	utils.BacktickQualifiedName(utils.Ptr("crm"), "account")
//	// Result: `crm`.`account`
//
// # Statements (sqlbuilder.go)
//
// SQLBuilder assembles ALTER TABLE and CREATE statements with optional ON
// CLUSTER clauses:
//
//	utils.NewSQLBuilder().
//		Alter("TABLE").
//		QualifiedName(utils.Ptr("crm"), "account").
//		OnCluster("production").
//		AddColumn("core_score", "Int32").
//		StringWithoutSemicolon()
//
// # Names (names.go)
//
// Schema names are derived from display names by folding diacritics and
// keeping only letters, digits and underscores:
//
//	utils.SchemaName("core", "Città d'origine")
//	// Result: core_cittadorigine
package utils
