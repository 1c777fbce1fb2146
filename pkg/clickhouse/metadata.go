package clickhouse

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// hiddenPublishers are platform publishers never shown to users.
var hiddenPublishers = []string{"MicrosoftCorporation", "microsoftfirstparty"}

// buildExclusion creates a parameterized NOT IN condition for column.
func buildExclusion(column string, values []string) (string, []any) {
	placeholders := make([]string, len(values))
	params := make([]any, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		params[i] = v
	}

	return column + " NOT IN (" + strings.Join(placeholders, ", ") + ")", params
}

// ListPublishers returns the writable publishers, excluding the platform's
// own, ordered by unique name.
func (c *Client) ListPublishers(ctx context.Context) ([]Publisher, error) {
	cond, args := buildExclusion("uniquename", hiddenPublishers)
	query := `
		SELECT id, uniquename, friendlyname, customizationprefix,
		       customizationoptionvalueprefix, description, createdon, createdby
		FROM ` + c.table("publisher") + `
		WHERE ` + cond + ` AND isreadonly = false
		ORDER BY uniquename`

	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query publishers")
	}
	defer rows.Close()

	var publishers []Publisher
	for rows.Next() {
		var p Publisher
		if err := rows.Scan(
			&p.ID,
			&p.UniqueName,
			&p.FriendlyName,
			&p.Prefix,
			&p.OptionValuePrefix,
			&p.Description,
			&p.CreatedOn,
			&p.CreatedBy,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan publisher")
		}
		publishers = append(publishers, p)
	}

	return publishers, errors.Wrap(rows.Err(), "failed to read publishers")
}

// GetSolution finds a solution and its publisher by unique name.
func (c *Client) GetSolution(ctx context.Context, uniqueName string) (*Solution, error) {
	query := `
		SELECT s.id, s.uniquename, s.friendlyname, s.ismanaged,
		       p.id, p.uniquename, p.customizationprefix
		FROM ` + c.table("solution") + ` AS s
		INNER JOIN ` + c.table("publisher") + ` AS p ON s.publisherid = p.id
		WHERE s.uniquename = ?
		LIMIT 1`

	var s Solution
	err := c.conn.QueryRow(ctx, query, uniqueName).Scan(
		&s.ID,
		&s.UniqueName,
		&s.FriendlyName,
		&s.IsManaged,
		&s.PublisherID,
		&s.PublisherName,
		&s.PublisherPrefix,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(ErrNotFound, "solution %q", uniqueName)
		}
		return nil, errors.Wrapf(err, "failed to query solution %q", uniqueName)
	}

	return &s, nil
}

// ListAppModules returns the active app modules ordered by name.
func (c *Client) ListAppModules(ctx context.Context) ([]AppModule, error) {
	query := `
		SELECT id, name, uniquename
		FROM ` + c.table("appmodule") + `
		WHERE statecode = 0
		ORDER BY name`

	rows, err := c.conn.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query app modules")
	}
	defer rows.Close()

	var modules []AppModule
	for rows.Next() {
		var m AppModule
		if err := rows.Scan(&m.ID, &m.Name, &m.UniqueName); err != nil {
			return nil, errors.Wrap(err, "failed to scan app module")
		}
		modules = append(modules, m)
	}

	return modules, errors.Wrap(rows.Err(), "failed to read app modules")
}

// ListAppModuleRoles returns role associations. A nil appModuleID returns
// the associations of every app module.
func (c *Client) ListAppModuleRoles(ctx context.Context, appModuleID *uuid.UUID) ([]AppModuleRole, error) {
	query := `
		SELECT a.id, a.name, r.id, r.name
		FROM ` + c.table("appmoduleroles") + ` AS ar
		INNER JOIN ` + c.table("appmodule") + ` AS a ON ar.appmoduleid = a.id
		INNER JOIN ` + c.table("role") + ` AS r ON ar.roleid = r.id`

	var args []any
	if appModuleID != nil {
		query += `
		WHERE a.id = ?`
		args = append(args, *appModuleID)
	}
	query += `
		ORDER BY a.name, r.name`

	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query app module roles")
	}
	defer rows.Close()

	var roles []AppModuleRole
	for rows.Next() {
		var r AppModuleRole
		if err := rows.Scan(&r.AppModuleID, &r.AppModuleName, &r.RoleID, &r.RoleName); err != nil {
			return nil, errors.Wrap(err, "failed to scan app module role")
		}
		roles = append(roles, r)
	}

	return roles, errors.Wrap(rows.Err(), "failed to read app module roles")
}

// GetAgentStatus returns the presence of the agent with the given primary
// email at time at.
func (c *Client) GetAgentStatus(ctx context.Context, email string, at time.Time) (*AgentStatus, error) {
	query := `
		SELECT h.agentemail, p.presencestatustext, p.basepresencestatus, h.starttime
		FROM ` + c.table("agentstatushistory") + ` AS h
		INNER JOIN ` + c.table("presence") + ` AS p ON h.presenceid = p.id
		WHERE lower(h.agentemail) = lower(?)
		  AND h.starttime <= ?
		  AND (h.endtime IS NULL OR h.endtime > ?)
		ORDER BY h.starttime DESC
		LIMIT 1`

	var (
		s    AgentStatus
		base uint8
	)
	err := c.conn.QueryRow(ctx, query, email, at, at).Scan(&s.AgentEmail, &s.StatusText, &base, &s.StartTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(ErrNotFound, "agent status for %s", email)
		}
		return nil, errors.Wrap(err, "failed to query agent status")
	}

	s.BaseStatus = PresenceStatus(base)
	return &s, nil
}

// ColumnExists reports whether table has column. table may be qualified with
// a database; otherwise the connection's current database is used.
func (c *Client) ColumnExists(ctx context.Context, table, column string) (bool, error) {
	database, name := splitTable(table)
	query := `
		SELECT count()
		FROM system.columns
		WHERE database = if(? = '', currentDatabase(), ?) AND table = ? AND name = ?`

	var count uint64
	if err := c.conn.QueryRow(ctx, query, database, database, name, column).Scan(&count); err != nil {
		return false, errors.Wrapf(err, "failed to inspect columns of %s", table)
	}

	return count > 0, nil
}

// TableExists reports whether table exists. table may be qualified with a
// database.
func (c *Client) TableExists(ctx context.Context, table string) (bool, error) {
	database, name := splitTable(table)
	query := `
		SELECT count()
		FROM system.tables
		WHERE database = if(? = '', currentDatabase(), ?) AND name = ?`

	var count uint64
	if err := c.conn.QueryRow(ctx, query, database, database, name).Scan(&count); err != nil {
		return false, errors.Wrapf(err, "failed to look up table %s", table)
	}

	return count > 0, nil
}

// TableComment returns the comment of table, which tablectl treats as the
// table's display name.
func (c *Client) TableComment(ctx context.Context, table string) (string, error) {
	database, name := splitTable(table)
	query := `
		SELECT comment
		FROM system.tables
		WHERE database = if(? = '', currentDatabase(), ?) AND name = ?`

	var comment string
	if err := c.conn.QueryRow(ctx, query, database, database, name).Scan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errors.Wrapf(ErrNotFound, "table %s", table)
		}
		return "", errors.Wrapf(err, "failed to look up table %s", table)
	}

	return comment, nil
}

// InsertAttribute records column metadata.
func (c *Client) InsertAttribute(ctx context.Context, a Attribute) error {
	query := `INSERT INTO ` + c.table("attribute") + `
		(tablename, schemaname, displayname, description, attributetype,
		 requiredlevel, isaudited, properties, solutionid, createdon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	props := a.Properties
	if props == nil {
		props = map[string]string{}
	}

	return errors.Wrap(c.conn.Exec(ctx, query,
		a.TableName,
		a.SchemaName,
		a.DisplayName,
		a.Description,
		a.AttributeType,
		a.RequiredLevel,
		a.IsAudited,
		props,
		a.SolutionID,
		orNow(a.CreatedOn),
	), "failed to record attribute")
}

// InsertRelationship records a relationship.
func (c *Client) InsertRelationship(ctx context.Context, r Relationship) error {
	query := `INSERT INTO ` + c.table("relationship") + `
		(id, schemaname, referencingtable, referencedtable, lookupcolumn, lookupname,
		 menubehavior, menugroup, menulabel, menuorder,
		 cascadeassign, cascadearchive, cascadeshare, cascadeunshare,
		 cascadedelete, cascademerge, cascadereparent, solutionid, createdon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return errors.Wrap(c.conn.Exec(ctx, query,
		r.ID,
		r.SchemaName,
		r.ReferencingTable,
		r.ReferencedTable,
		r.LookupColumn,
		r.LookupName,
		r.MenuBehavior,
		r.MenuGroup,
		r.MenuLabel,
		r.MenuOrder,
		r.Cascade.Assign,
		r.Cascade.Archive,
		r.Cascade.Share,
		r.Cascade.Unshare,
		r.Cascade.Delete,
		r.Cascade.Merge,
		r.Cascade.Reparent,
		r.SolutionID,
		orNow(r.CreatedOn),
	), "failed to record relationship")
}

// RelationshipExists reports whether a relationship named schemaName exists.
func (c *Client) RelationshipExists(ctx context.Context, schemaName string) (bool, error) {
	query := `SELECT count() FROM ` + c.table("relationship") + ` WHERE schemaname = ?`

	var count uint64
	if err := c.conn.QueryRow(ctx, query, schemaName).Scan(&count); err != nil {
		return false, errors.Wrap(err, "failed to look up relationship")
	}

	return count > 0, nil
}

// AddSolutionComponent links an object to a solution.
func (c *Client) AddSolutionComponent(ctx context.Context, sc SolutionComponent) error {
	query := `INSERT INTO ` + c.table("solutioncomponent") + `
		(solutionid, componenttype, objectname, createdon)
		VALUES (?, ?, ?, ?)`

	return errors.Wrap(
		c.conn.Exec(ctx, query, sc.SolutionID, sc.ComponentType, sc.ObjectName, orNow(sc.CreatedOn)),
		"failed to add solution component",
	)
}

func splitTable(table string) (database, name string) {
	if db, n, ok := strings.Cut(table, "."); ok {
		return db, n
	}
	return "", table
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
