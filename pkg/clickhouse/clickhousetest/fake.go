// Package clickhousetest provides an in-memory stand-in for a ClickHouse
// connection.
package clickhousetest

import (
	"context"
	"database/sql"
	"reflect"
	"strings"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/config"
)

type (
	// Call is a recorded statement and its arguments.
	Call struct {
		SQL  string
		Args []any
	}

	// Conn implements clickhouse.Conn. Queries are answered by the first
	// registered response whose fragment appears in the SQL text; a query
	// without a response yields no rows.
	Conn struct {
		mu        sync.Mutex
		responses []response
		execErrs  []response
		queries   []Call
		execs     []Call
		pingErr   error
		closed    bool
	}

	response struct {
		fragment string
		rows     [][]any
		err      error
	}
)

// NewConn returns an empty fake connection.
func NewConn() *Conn {
	return new(Conn)
}

// OnQuery answers queries containing fragment with rows.
func (c *Conn) OnQuery(fragment string, rows ...[]any) *Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses = append(c.responses, response{fragment: fragment, rows: rows})
	return c
}

// FailQuery makes queries containing fragment fail with err.
func (c *Conn) FailQuery(fragment string, err error) *Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses = append(c.responses, response{fragment: fragment, err: err})
	return c
}

// FailExec makes statements containing fragment fail with err.
func (c *Conn) FailExec(fragment string, err error) *Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.execErrs = append(c.execErrs, response{fragment: fragment, err: err})
	return c
}

// FailPing makes Ping fail with err.
func (c *Conn) FailPing(err error) *Conn {
	c.pingErr = err
	return c
}

// Dialer returns a clickhouse.DialFunc that pings and hands out c.
func (c *Conn) Dialer() clickhouse.DialFunc {
	return func(ctx context.Context, _ config.ClickHouse) (clickhouse.Conn, error) {
		if err := c.Ping(ctx); err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Queries returns the recorded queries.
func (c *Conn) Queries() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.queries...)
}

// Execs returns the recorded statements.
func (c *Conn) Execs() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.execs...)
}

// Closed reports whether Close was called.
func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Conn) Query(ctx context.Context, query string, args ...any) (driver.Rows, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := c.record(&c.queries, query, args)
	if r.err != nil {
		return nil, r.err
	}
	return &rows{values: r.rows, index: -1}, nil
}

func (c *Conn) QueryRow(ctx context.Context, query string, args ...any) driver.Row {
	if err := ctx.Err(); err != nil {
		return &row{err: err}
	}

	r := c.record(&c.queries, query, args)
	switch {
	case r.err != nil:
		return &row{err: r.err}
	case len(r.rows) == 0:
		return &row{err: sql.ErrNoRows}
	default:
		return &row{values: r.rows[0]}
	}
}

func (c *Conn) Exec(ctx context.Context, query string, args ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.execs = append(c.execs, Call{SQL: query, Args: args})
	for _, r := range c.execErrs {
		if strings.Contains(query, r.fragment) {
			return r.err
		}
	}
	return nil
}

func (c *Conn) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.pingErr
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *Conn) record(calls *[]Call, query string, args []any) response {
	c.mu.Lock()
	defer c.mu.Unlock()

	*calls = append(*calls, Call{SQL: query, Args: args})
	for _, r := range c.responses {
		if strings.Contains(query, r.fragment) {
			return r
		}
	}
	return response{}
}

type rows struct {
	values [][]any
	index  int
}

func (r *rows) Next() bool {
	r.index++
	return r.index < len(r.values)
}

func (r *rows) Scan(dest ...any) error {
	if r.index < 0 || r.index >= len(r.values) {
		return errors.New("scan called without a current row")
	}
	return assign(dest, r.values[r.index])
}

func (r *rows) ScanStruct(any) error { return errors.New("ScanStruct is not supported") }
func (r *rows) ColumnTypes() []driver.ColumnType { return nil }
func (r *rows) Totals(...any) error { return nil }
func (r *rows) Columns() []string { return nil }
func (r *rows) Close() error { return nil }
func (r *rows) Err() error { return nil }

type row struct {
	values []any
	err    error
}

func (r *row) Err() error { return r.err }

func (r *row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

func (r *row) ScanStruct(any) error { return errors.New("ScanStruct is not supported") }

// assign copies values into dest pointers, converting between compatible
// types. A nil value zeroes the destination.
func assign(dest, values []any) error {
	if len(dest) != len(values) {
		return errors.Errorf("scan: %d destinations for %d columns", len(dest), len(values))
	}

	for i, d := range dest {
		target := reflect.ValueOf(d)
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return errors.Errorf("scan: destination %d is not a pointer", i)
		}
		target = target.Elem()

		if values[i] == nil {
			target.SetZero()
			continue
		}

		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(target.Type()):
			target.Set(v)
		case v.Type().ConvertibleTo(target.Type()):
			target.Set(v.Convert(target.Type()))
		default:
			return errors.Errorf("scan: cannot assign %T to %s", values[i], target.Type())
		}
	}

	return nil
}
