package ddl

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/utils"
)

var (
	ddlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "String", Pattern: `'([^'\\]|\\.)*'`},
		{Name: "BacktickIdent", Pattern: "`([^`\\\\]|\\\\.)*`"},
		{Name: "Number", Pattern: `\d+(\.\d*)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[(),.;=\-]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[Script](
		participle.Lexer(ddlLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(4),
	)
)

type (
	// Script is a sequence of ALTER TABLE statements.
	Script struct {
		Statements []*AlterTable `parser:"(@@ ';'?)*"`
	}

	// AlterTable is ALTER TABLE [db.]table [ON CLUSTER c] followed by one or
	// more ADD COLUMN operations.
	AlterTable struct {
		Database  *string      `parser:"'ALTER' 'TABLE' (@(Ident | BacktickIdent) '.')?"`
		Name      string       `parser:"@(Ident | BacktickIdent)"`
		OnCluster *string      `parser:"('ON' 'CLUSTER' @(Ident | BacktickIdent))?"`
		Columns   []*AddColumn `parser:"@@ (',' @@)*"`
	}

	// AddColumn is ADD COLUMN [IF NOT EXISTS] name type [DEFAULT expr]
	// [COMMENT 'text'].
	AddColumn struct {
		IfNotExists bool      `parser:"'ADD' 'COLUMN' @('IF' 'NOT' 'EXISTS')?"`
		Name        string    `parser:"@(Ident | BacktickIdent)"`
		Type        *DataType `parser:"@@"`
		Default     *Literal  `parser:"('DEFAULT' @@)?"`
		Comment     *string   `parser:"('COMMENT' @String)?"`
	}

	// DataType is a simple or parametric type such as String, Decimal(18, 2),
	// Nullable(Int32) or Enum8('a' = 1).
	DataType struct {
		Name   string       `parser:"@Ident"`
		Params []*TypeParam `parser:"('(' (@@ (',' @@)*)? ')')?"`
	}

	// TypeParam is one parameter of a parametric type.
	TypeParam struct {
		Enum   *EnumValue `parser:"@@"`
		Type   *DataType  `parser:"| @@"`
		Number *string    `parser:"| @Number"`
		Text   *string    `parser:"| @String"`
	}

	// EnumValue is a 'name' = value pair of an Enum type.
	EnumValue struct {
		Name  string `parser:"@String '='"`
		Value string `parser:"@('-'? Number)"`
	}

	// Literal is a column default.
	Literal struct {
		Number *string `parser:"@('-'? Number)"`
		Text   *string `parser:"| @String"`
		Call   *string `parser:"| @Ident '(' ')'"`
		Ident  *string `parser:"| @Ident"`
	}
)

// Parse reads ALTER TABLE statements from r.
func Parse(r io.Reader) (*Script, error) {
	s, err := parser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "invalid DDL")
	}
	return s, nil
}

// ParseString parses ALTER TABLE statements from sql.
//
// Example:
//
//	script, err := ddl.ParseString("ALTER TABLE crm.account ADD COLUMN core_score Int32")
//	if err != nil {
//		return err
//	}
//	fmt.Println(script.Statements[0].Columns[0].Type) // Int32
func ParseString(sql string) (*Script, error) {
	s, err := parser.ParseString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "invalid DDL")
	}
	return s, nil
}

// Validate reports whether sql is a well formed ADD COLUMN statement list.
func Validate(sql string) error {
	s, err := ParseString(sql)
	if err != nil {
		return err
	}
	if len(s.Statements) == 0 {
		return errors.New("invalid DDL: no statements")
	}
	return nil
}

// TableName returns the unquoted, possibly qualified, table name.
func (a *AlterTable) TableName() string {
	if a.Database != nil {
		return utils.StripBackticks(*a.Database) + "." + utils.StripBackticks(a.Name)
	}
	return utils.StripBackticks(a.Name)
}

// ColumnName returns the unquoted column name.
func (c *AddColumn) ColumnName() string {
	return utils.StripBackticks(c.Name)
}

// CommentText returns the unescaped comment, or "".
func (c *AddColumn) CommentText() string {
	if c.Comment == nil {
		return ""
	}
	return unquote(*c.Comment)
}

func (s *Script) String() string {
	stmts := make([]string, len(s.Statements))
	for i, stmt := range s.Statements {
		stmts[i] = stmt.String() + ";"
	}
	return strings.Join(stmts, "\n")
}

func (a *AlterTable) String() string {
	b := utils.NewSQLBuilder().Alter("TABLE")
	if a.Database != nil {
		b.QualifiedName(utils.Ptr(utils.StripBackticks(*a.Database)), utils.StripBackticks(a.Name))
	} else {
		b.Name(utils.StripBackticks(a.Name))
	}
	if a.OnCluster != nil {
		b.OnCluster(utils.StripBackticks(*a.OnCluster))
	}

	cols := make([]string, len(a.Columns))
	for i, c := range a.Columns {
		cols[i] = c.String()
	}

	return b.Raw(strings.Join(cols, ", ")).StringWithoutSemicolon()
}

func (c *AddColumn) String() string {
	b := utils.NewSQLBuilder().Raw("ADD COLUMN")
	if c.IfNotExists {
		b.IfNotExists()
	}
	b.Name(c.ColumnName()).Raw(c.Type.String())
	if c.Default != nil {
		b.Default(c.Default.String())
	}
	if c.Comment != nil {
		b.Raw("COMMENT").Raw(*c.Comment)
	}
	return b.StringWithoutSemicolon()
}

func (t *DataType) String() string {
	if t.Params == nil {
		return t.Name
	}

	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return t.Name + "(" + strings.Join(params, ", ") + ")"
}

func (p *TypeParam) String() string {
	switch {
	case p.Enum != nil:
		return p.Enum.Name + " = " + p.Enum.Value
	case p.Type != nil:
		return p.Type.String()
	case p.Number != nil:
		return *p.Number
	case p.Text != nil:
		return *p.Text
	default:
		return ""
	}
}

func (l *Literal) String() string {
	switch {
	case l.Number != nil:
		return *l.Number
	case l.Text != nil:
		return *l.Text
	case l.Call != nil:
		return *l.Call + "()"
	case l.Ident != nil:
		return *l.Ident
	default:
		return ""
	}
}

func unquote(s string) string {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "'"), "'")
	s = strings.ReplaceAll(s, `\'`, "'")
	return strings.ReplaceAll(s, `\\`, `\`)
}
