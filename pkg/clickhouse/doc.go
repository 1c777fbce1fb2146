// Package clickhouse connects tablectl to ClickHouse and runs the queries the
// commands need.
//
// A Repository owns the session's connection: it is opened lazily with the
// DSN and mTLS settings from tablectl.yaml, pinged, and then reused by every
// later command. Commands obtain a *Client from it and never dial on their
// own.
//
// The Client reads and writes the metadata database (clickhouse.database in
// the config), which holds the tables describing publishers, solutions, app
// modules, roles, relationships, column metadata and agent presence. Run
// "tablectl connection init" once to create them.
//
// Example usage:
//
//	repo := clickhouse.NewRepository(cfg, settings.NewStore(cfg))
//	defer repo.Close()
//
//	client, err := repo.GetCurrentConnection(ctx)
//	if err != nil {
//		return err
//	}
//
//	publishers, err := client.ListPublishers(ctx)
//	if err != nil {
//		return err
//	}
//
// Tests can replace the network dial with WithDialer and a fake Conn from
// the clickhousetest package.
package clickhouse
