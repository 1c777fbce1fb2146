package relationship

import (
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/commands/column"
)

type (
	MenuBehavior string
	MenuGroup    string
	CascadeType  string
)

const (
	MenuBehaviorUseCollectionName MenuBehavior = "UseCollectionName"
	MenuBehaviorUseLabel          MenuBehavior = "UseLabel"
	MenuBehaviorDoNotDisplay      MenuBehavior = "DoNotDisplay"
)

const (
	MenuGroupDetails   MenuGroup = "Details"
	MenuGroupSales     MenuGroup = "Sales"
	MenuGroupService   MenuGroup = "Service"
	MenuGroupMarketing MenuGroup = "Marketing"
)

const (
	CascadeNone       CascadeType = "NoCascade"
	CascadeAll        CascadeType = "Cascade"
	CascadeActive     CascadeType = "Active"
	CascadeUserOwned  CascadeType = "UserOwned"
	CascadeRemoveLink CascadeType = "RemoveLink"
	CascadeRestrict   CascadeType = "Restrict"
)

var (
	MenuBehaviors = []MenuBehavior{MenuBehaviorUseCollectionName, MenuBehaviorUseLabel, MenuBehaviorDoNotDisplay}
	MenuGroups    = []MenuGroup{MenuGroupDetails, MenuGroupSales, MenuGroupService, MenuGroupMarketing}
	CascadeTypes  = []CascadeType{CascadeNone, CascadeAll, CascadeActive, CascadeUserOwned, CascadeRemoveLink, CascadeRestrict}
)

func (b MenuBehavior) String() string { return string(b) }
func (g MenuGroup) String() string    { return string(g) }
func (c CascadeType) String() string  { return string(c) }

// CreateN1Options are the options of "relationship create-n1". The child
// table gets a lookup column referencing the parent table.
type CreateN1Options struct {
	ParentTable        string
	ChildTable         string
	LookupDisplayName  *string
	LookupSchemaName   *string
	RelationshipName   *string
	RelationshipSuffix *string
	Solution           *string
	MenuBehavior       MenuBehavior
	MenuGroup          MenuGroup
	MenuLabel          *string
	MenuOrder          *int
	RequiredLevel      column.RequiredLevel
	CascadeAssign      CascadeType
	CascadeArchive     CascadeType
	CascadeShare       CascadeType
	CascadeUnshare     CascadeType
	CascadeDelete      CascadeType
	CascadeMerge       CascadeType
	CascadeReparent    CascadeType
}

func (o *CreateN1Options) Define(s *command.Schema) {
	s.String(&o.ParentTable, "parent", "p", command.Required(), command.Help("The referenced (parent) table."))
	s.String(&o.ChildTable, "child", "c", command.Required(), command.Help("The referencing (child) table."))
	s.NullableString(&o.LookupDisplayName, "lookupDisplayName", "ld", command.Help("The lookup display name. Defaults to the parent's."))
	s.NullableString(&o.LookupSchemaName, "lookupSchemaName", "lsn", command.Help("The lookup column name."))
	s.NullableString(&o.RelationshipName, "relName", "rn", command.Help("The relationship schema name."))
	s.NullableString(&o.RelationshipSuffix, "relNameSuffix", "rns", command.Help("A suffix for the derived relationship name."))
	s.NullableString(&o.Solution, "solution", "s", command.Help("The unmanaged solution to add the relationship to."))
	command.Enum(s, &o.MenuBehavior, MenuBehaviors, "menuBehavior", "mb",
		command.Default(MenuBehaviorUseCollectionName), command.Help("How the parent shows related rows."), command.SuppressValuesHelp())
	command.Enum(s, &o.MenuGroup, MenuGroups, "menuGroup", "mg",
		command.Default(MenuGroupDetails), command.Help("The menu group of related rows."))
	s.NullableString(&o.MenuLabel, "menuLabel", "ml", command.Help("The menu label, required with UseLabel."))
	s.NullableInt(&o.MenuOrder, "menuOrder", "mo", command.Help("The position in the menu."))
	command.Enum(s, &o.RequiredLevel, column.RequiredLevels, "requiredLevel", "r",
		command.Default(column.RequiredLevelNone), command.Help("The required level of the lookup."), command.SuppressValuesHelp())
	cascade(s, &o.CascadeAssign, "cascadeAssign", "cas", CascadeNone)
	cascade(s, &o.CascadeArchive, "cascadeArchive", "car", CascadeNone)
	cascade(s, &o.CascadeShare, "cascadeShare", "csh", CascadeNone)
	cascade(s, &o.CascadeUnshare, "cascadeUnshare", "cun", CascadeNone)
	cascade(s, &o.CascadeDelete, "cascadeDelete", "cde", CascadeRemoveLink)
	cascade(s, &o.CascadeMerge, "cascadeMerge", "cme", CascadeNone)
	cascade(s, &o.CascadeReparent, "cascadeReparent", "cre", CascadeNone)
}

func cascade(s *command.Schema, p *CascadeType, long, short string, def CascadeType) {
	command.Enum(s, p, CascadeTypes, long, short,
		command.Default(def), command.Help("Cascade behavior."), command.SuppressValuesHelp())
}
