package column

import "github.com/pseudomuto/tablectl/pkg/command"

type (
	AttributeType  string
	StringFormat   string
	IntegerFormat  string
	RequiredLevel  string
	ImeMode        string
	DateTimeFormat string
)

const (
	AttributeTypeString           AttributeType = "String"
	AttributeTypeMemo             AttributeType = "Memo"
	AttributeTypeInteger          AttributeType = "Integer"
	AttributeTypeBigInt           AttributeType = "BigInt"
	AttributeTypeDecimal          AttributeType = "Decimal"
	AttributeTypeDouble           AttributeType = "Double"
	AttributeTypeMoney            AttributeType = "Money"
	AttributeTypeBoolean          AttributeType = "Boolean"
	AttributeTypeDateTime         AttributeType = "DateTime"
	AttributeTypePicklist         AttributeType = "Picklist"
	AttributeTypeUniqueidentifier AttributeType = "Uniqueidentifier"
)

const (
	StringFormatText         StringFormat = "Text"
	StringFormatEmail        StringFormat = "Email"
	StringFormatTextArea     StringFormat = "TextArea"
	StringFormatURL          StringFormat = "Url"
	StringFormatTickerSymbol StringFormat = "TickerSymbol"
	StringFormatPhone        StringFormat = "Phone"
	StringFormatJSON         StringFormat = "Json"
	StringFormatRichText     StringFormat = "RichText"
)

const (
	IntegerFormatNone     IntegerFormat = "None"
	IntegerFormatDuration IntegerFormat = "Duration"
	IntegerFormatTimeZone IntegerFormat = "TimeZone"
	IntegerFormatLanguage IntegerFormat = "Language"
	IntegerFormatLocale   IntegerFormat = "Locale"
)

const (
	RequiredLevelNone                RequiredLevel = "None"
	RequiredLevelSystemRequired      RequiredLevel = "SystemRequired"
	RequiredLevelApplicationRequired RequiredLevel = "ApplicationRequired"
	RequiredLevelRecommended         RequiredLevel = "Recommended"
)

const (
	ImeModeAuto     ImeMode = "Auto"
	ImeModeInactive ImeMode = "Inactive"
	ImeModeActive   ImeMode = "Active"
	ImeModeDisabled ImeMode = "Disabled"
)

const (
	DateTimeFormatDateOnly    DateTimeFormat = "DateOnly"
	DateTimeFormatDateAndTime DateTimeFormat = "DateAndTime"
)

var (
	AttributeTypes = []AttributeType{
		AttributeTypeString,
		AttributeTypeMemo,
		AttributeTypeInteger,
		AttributeTypeBigInt,
		AttributeTypeDecimal,
		AttributeTypeDouble,
		AttributeTypeMoney,
		AttributeTypeBoolean,
		AttributeTypeDateTime,
		AttributeTypePicklist,
		AttributeTypeUniqueidentifier,
	}

	StringFormats = []StringFormat{
		StringFormatText,
		StringFormatEmail,
		StringFormatTextArea,
		StringFormatURL,
		StringFormatTickerSymbol,
		StringFormatPhone,
		StringFormatJSON,
		StringFormatRichText,
	}

	IntegerFormats = []IntegerFormat{
		IntegerFormatNone,
		IntegerFormatDuration,
		IntegerFormatTimeZone,
		IntegerFormatLanguage,
		IntegerFormatLocale,
	}

	RequiredLevels = []RequiredLevel{
		RequiredLevelNone,
		RequiredLevelSystemRequired,
		RequiredLevelApplicationRequired,
		RequiredLevelRecommended,
	}

	ImeModes = []ImeMode{ImeModeAuto, ImeModeInactive, ImeModeActive, ImeModeDisabled}

	DateTimeFormats = []DateTimeFormat{DateTimeFormatDateOnly, DateTimeFormatDateAndTime}
)

func (t AttributeType) String() string  { return string(t) }
func (f StringFormat) String() string   { return string(f) }
func (f IntegerFormat) String() string  { return string(f) }
func (l RequiredLevel) String() string  { return string(l) }
func (m ImeMode) String() string        { return string(m) }
func (f DateTimeFormat) String() string { return string(f) }

// Nullable reports whether columns at this level accept NULL.
func (l RequiredLevel) Nullable() bool {
	return l == RequiredLevelNone || l == RequiredLevelRecommended
}

// CreateOptions are the options of "column create".
type CreateOptions struct {
	Table               string
	Solution            *string
	DisplayName         string
	SchemaName          *string
	Description         *string
	Type                AttributeType
	StringFormat        StringFormat
	IntegerFormat       IntegerFormat
	RequiredLevel       RequiredLevel
	MaxLength           *int
	AutoNumber          *string
	Audit               bool
	Options             *string
	GlobalOptionSetName *string
	Multiselect         bool
	Min                 *float64
	Max                 *float64
	Precision           *int
	PrecisionSource     *int
	ImeMode             ImeMode
	DateTimeFormat      DateTimeFormat
	TrueLabel           string
	FalseLabel          string
}

func (o *CreateOptions) Define(s *command.Schema) {
	s.String(&o.Table, "table", "t", command.Required(), command.Help("The table the column is added to."))
	s.NullableString(&o.Solution, "solution", "s", command.Help("The unmanaged solution to add the column to."))
	s.String(&o.DisplayName, "name", "n", command.Required(), command.Help("The display name of the column."))
	s.NullableString(&o.SchemaName, "schemaName", "sn", command.Help("The column name. Derived from --name if unset."))
	s.NullableString(&o.Description, "description", "d", command.Help("The description of the column."))
	command.Enum(s, &o.Type, AttributeTypes, "type", "at",
		command.Default(AttributeTypeString), command.Help("The type of the column."), command.SuppressValuesHelp())
	command.Enum(s, &o.StringFormat, StringFormats, "stringFormat", "sf",
		command.Default(StringFormatText), command.Help("The format of String columns."), command.SuppressValuesHelp())
	command.Enum(s, &o.IntegerFormat, IntegerFormats, "intFormat", "if",
		command.Default(IntegerFormatNone), command.Help("The format of Integer columns."))
	command.Enum(s, &o.RequiredLevel, RequiredLevels, "requiredLevel", "r",
		command.Default(RequiredLevelNone), command.Help("The required level."), command.SuppressValuesHelp())
	s.NullableInt(&o.MaxLength, "len", "l", command.Help("The maximum length of String columns."))
	s.NullableString(&o.AutoNumber, "autoNumber", "an", command.Help("The autonumber format of String columns."))
	s.Bool(&o.Audit, "audit", "a", command.Default(true), command.Help("Whether the column is audited."))
	s.NullableString(&o.Options, "options", "o", command.Help("Picklist values, separated by comma or pipe."))
	s.NullableString(&o.GlobalOptionSetName, "globalOptionSetName", "gon", command.Help("The global option set of a Picklist."))
	s.Bool(&o.Multiselect, "multiselect", "m", command.Help("Whether a Picklist accepts many values."))
	s.NullableFloat(&o.Min, "min", "min", command.Help("The minimum value of number columns."))
	s.NullableFloat(&o.Max, "max", "max", command.Help("The maximum value of number columns."))
	s.NullableInt(&o.Precision, "precision", "p", command.Help("The scale of Decimal and Money columns (2)."))
	s.NullableInt(&o.PrecisionSource, "precisionSource", "ps", command.Help("The precision source of Money columns."))
	command.Enum(s, &o.ImeMode, ImeModes, "imeMode", "ime",
		command.Default(ImeModeDisabled), command.Help("The IME mode of number and date columns."))
	command.Enum(s, &o.DateTimeFormat, DateTimeFormats, "dtFormat", "dtf",
		command.Default(DateTimeFormatDateAndTime), command.Help("The format of DateTime columns."))
	s.String(&o.TrueLabel, "trueLabel", "tl", command.Default("true"), command.Help("The label of true in Boolean columns."))
	s.String(&o.FalseLabel, "falseLabel", "fl", command.Default("false"), command.Help("The label of false in Boolean columns."))
}
