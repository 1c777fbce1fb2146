package relationship

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/ddl"
	"github.com/pseudomuto/tablectl/pkg/output"
	"github.com/pseudomuto/tablectl/pkg/utils"
)

const failure = "Error while creating relationship"

// CreateN1Executor creates a many-to-one relationship by adding a lookup
// column to the child table.
type CreateN1Executor struct {
	repo *clickhouse.Repository
	out  *output.Output
}

func NewCreateN1Executor(repo *clickhouse.Repository, out *output.Output) *CreateN1Executor {
	return &CreateN1Executor{repo: repo, out: out}
}

func (e *CreateN1Executor) Execute(ctx context.Context, opts *CreateN1Options) command.Result {
	done := e.out.Progress("Connecting to ClickHouse")
	client, err := e.repo.GetCurrentConnection(ctx)
	done(err)
	if err != nil {
		return command.Fail(failure, err)
	}

	done = e.out.Progress("Checking solution and publisher prefix")
	solution, err := e.repo.ResolveSolution(ctx, client, deref(opts.Solution))
	done(err)
	if err != nil {
		return command.Fail(failure, err)
	}
	prefix := solution.PublisherPrefix

	rel, err := e.plan(ctx, client, opts, prefix)
	if err != nil {
		return command.Fail(failure, err)
	}

	if err := checkEligibility(ctx, client, opts, rel); err != nil {
		return command.Fail(failure, err)
	}

	lookupType := "Nullable(UUID)"
	if !opts.RequiredLevel.Nullable() {
		lookupType = "UUID"
	}

	stmt := utils.NewSQLBuilder().
		Alter("TABLE").
		Name(opts.ChildTable).
		OnCluster(client.Cluster()).
		AddColumn(rel.LookupColumn, lookupType).
		Comment(rel.LookupName).
		StringWithoutSemicolon()
	if err := ddl.Validate(stmt); err != nil {
		return command.Fail(failure, errors.Wrap(err, "generated an invalid statement"))
	}

	rel.ID = uuid.New()
	rel.SolutionID = solution.ID

	done = e.out.Progress("Creating relationship " + rel.SchemaName)
	err = create(ctx, client, opts, rel, stmt)
	done(err)
	if err != nil {
		return command.Fail(failure, err)
	}

	e.out.Write("  Relationship ID: ", output.Default).WriteLine(rel.ID.String(), output.Yellow)
	e.out.Write("  Lookup column  : ", output.Default).WriteLine(opts.ChildTable+"."+rel.LookupColumn, output.Yellow)

	slog.Info("Created relationship", "name", rel.SchemaName, "parent", opts.ParentTable, "child", opts.ChildTable)
	return command.Success()
}

// plan derives the names and menu configuration of the relationship.
func (e *CreateN1Executor) plan(
	ctx context.Context,
	client *clickhouse.Client,
	opts *CreateN1Options,
	prefix string,
) (*clickhouse.Relationship, error) {
	name, err := RelationshipName(opts, prefix)
	if err != nil {
		return nil, err
	}

	lookup, err := LookupSchemaName(opts, prefix)
	if err != nil {
		return nil, err
	}

	label, err := menuLabel(opts)
	if err != nil {
		return nil, err
	}

	display, err := e.lookupDisplayName(ctx, client, opts)
	if err != nil {
		return nil, err
	}

	rel := &clickhouse.Relationship{
		SchemaName:       name,
		ReferencingTable: opts.ChildTable,
		ReferencedTable:  opts.ParentTable,
		LookupColumn:     lookup,
		LookupName:       display,
		MenuBehavior:     opts.MenuBehavior.String(),
		MenuLabel:        label,
		Cascade: clickhouse.CascadeConfiguration{
			Assign:   opts.CascadeAssign.String(),
			Archive:  opts.CascadeArchive.String(),
			Share:    opts.CascadeShare.String(),
			Unshare:  opts.CascadeUnshare.String(),
			Delete:   opts.CascadeDelete.String(),
			Merge:    opts.CascadeMerge.String(),
			Reparent: opts.CascadeReparent.String(),
		},
	}

	if opts.MenuBehavior != MenuBehaviorDoNotDisplay {
		rel.MenuGroup = utils.Ptr(opts.MenuGroup.String())
	}

	if opts.MenuOrder != nil {
		rel.MenuOrder = utils.Ptr(int32(*opts.MenuOrder))
	}

	return rel, nil
}

// lookupDisplayName returns --lookupDisplayName, or else the display name
// (table comment) of the parent table, or else the parent table name.
func (e *CreateN1Executor) lookupDisplayName(ctx context.Context, client *clickhouse.Client, opts *CreateN1Options) (string, error) {
	if name := strings.TrimSpace(deref(opts.LookupDisplayName)); name != "" {
		return name, nil
	}

	done := e.out.Progress("Retrieving the display name of " + opts.ParentTable)
	comment, err := client.TableComment(ctx, opts.ParentTable)
	done(err)
	if err != nil {
		return "", err
	}

	if comment = strings.TrimSpace(comment); comment != "" {
		return comment, nil
	}

	return opts.ParentTable, nil
}

// RelationshipName returns --relName, which must carry the publisher prefix,
// or derives "<prefix>_<child>_<parent>[_<suffix>]" with the prefix removed
// from the table names.
//
// Example:
//
//	// --child core_invoice --parent account --relNameSuffix billing
//	// core_invoice_account_billing
func RelationshipName(opts *CreateN1Options, prefix string) (string, error) {
	if explicit := strings.TrimSpace(deref(opts.RelationshipName)); explicit != "" {
		if err := utils.CheckPrefix(explicit, prefix, "relationship name"); err != nil {
			return "", err
		}
		return explicit, nil
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte('_')
	sb.WriteString(strings.TrimPrefix(opts.ChildTable, prefix+"_"))
	sb.WriteByte('_')
	sb.WriteString(strings.TrimPrefix(opts.ParentTable, prefix+"_"))

	if suffix := strings.TrimSpace(deref(opts.RelationshipSuffix)); suffix != "" {
		sb.WriteByte('_')
		sb.WriteString(suffix)
	}

	return sb.String(), nil
}

// LookupSchemaName returns the name of the lookup column: --lookupSchemaName,
// which must carry the publisher prefix, or one derived from
// --lookupDisplayName, or else from the parent table name.
//
// Examples, with prefix "core":
//   - parent core_project -> core_projectid
//   - parent account -> core_accountid
//   - parent crm_contract -> core_contractid
func LookupSchemaName(opts *CreateN1Options, prefix string) (string, error) {
	if explicit := strings.TrimSpace(deref(opts.LookupSchemaName)); explicit != "" {
		if err := utils.CheckPrefix(explicit, prefix, "lookup schema name"); err != nil {
			return "", err
		}
		return explicit, nil
	}

	if display := strings.TrimSpace(deref(opts.LookupDisplayName)); display != "" {
		part := utils.OnlyLettersNumbersOrUnderscore(display)
		if part == "" {
			return "", errors.New("unable to derive the lookup schema name from the display name, pass --lookupSchemaName")
		}
		return prefix + "_" + part, nil
	}

	parent := opts.ParentTable
	if strings.HasPrefix(parent, prefix+"_") {
		return parent + "id", nil
	}

	if !strings.Contains(parent, "_") {
		return prefix + "_" + parent + "id", nil
	}

	parts := strings.Split(parent, "_")
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("unable to derive the lookup schema name from the parent table name, pass --lookupSchemaName")
	}

	return prefix + "_" + parts[1] + "id", nil
}

func menuLabel(opts *CreateN1Options) (*string, error) {
	if opts.MenuBehavior != MenuBehaviorUseLabel {
		return nil, nil
	}

	label := strings.TrimSpace(deref(opts.MenuLabel))
	if label == "" {
		return nil, errors.New("--menuLabel is required when --menuBehavior is UseLabel")
	}

	return &label, nil
}

func checkEligibility(ctx context.Context, client *clickhouse.Client, opts *CreateN1Options, rel *clickhouse.Relationship) error {
	for _, table := range []string{opts.ParentTable, opts.ChildTable} {
		exists, err := client.TableExists(ctx, table)
		if err != nil {
			return err
		}
		if !exists {
			return errors.Errorf("table %s does not exist", table)
		}
	}

	exists, err := client.ColumnExists(ctx, opts.ChildTable, rel.LookupColumn)
	if err != nil {
		return err
	}
	if exists {
		return errors.Errorf("column %s already exists on %s", rel.LookupColumn, opts.ChildTable)
	}

	exists, err = client.RelationshipExists(ctx, rel.SchemaName)
	if err != nil {
		return err
	}
	if exists {
		return errors.Errorf("relationship %s already exists", rel.SchemaName)
	}

	return nil
}

func create(ctx context.Context, client *clickhouse.Client, opts *CreateN1Options, rel *clickhouse.Relationship, stmt string) error {
	if err := client.Exec(ctx, stmt); err != nil {
		return err
	}

	if err := client.InsertRelationship(ctx, *rel); err != nil {
		return err
	}

	if err := client.InsertAttribute(ctx, clickhouse.Attribute{
		TableName:     opts.ChildTable,
		SchemaName:    rel.LookupColumn,
		DisplayName:   rel.LookupName,
		AttributeType: "Lookup",
		RequiredLevel: opts.RequiredLevel.String(),
		IsAudited:     true,
		Properties: map[string]string{
			"target":       opts.ParentTable,
			"relationship": rel.SchemaName,
		},
		SolutionID: rel.SolutionID,
	}); err != nil {
		return err
	}

	return client.AddSolutionComponent(ctx, clickhouse.SolutionComponent{
		SolutionID:    rel.SolutionID,
		ComponentType: "Relationship",
		ObjectName:    rel.SchemaName,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
