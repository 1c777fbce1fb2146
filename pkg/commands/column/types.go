package column

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/utils"
)

const (
	defaultPrecision = 2
	maxPrecision     = 38
)

// Definition is the ClickHouse side of a new column.
type Definition struct {
	// Type is the column data type, e.g. Nullable(Int32).
	Type string

	// Default is the DEFAULT expression, or "".
	Default string

	// Properties holds the settings that have no ClickHouse counterpart. They
	// are recorded in the attribute metadata table.
	Properties map[string]string
}

// Define maps the options of a new column to its ClickHouse definition.
// supportsBool reports whether the server has the Bool type.
//
// Examples:
//   - String, required level None -> Nullable(String)
//   - Money with --precision 4 -> Nullable(Decimal(38, 4))
//   - Picklist with --options "Gold|Silver" --multiselect -> Array(Enum16('Gold' = 1, 'Silver' = 2))
func Define(o *CreateOptions, supportsBool bool) (*Definition, error) {
	if err := validate(o); err != nil {
		return nil, err
	}

	d := &Definition{Properties: make(map[string]string)}

	var (
		typ      string
		nullable = o.RequiredLevel.Nullable()
	)

	switch o.Type {
	case AttributeTypeString, AttributeTypeMemo:
		typ = "String"
		if o.Type == AttributeTypeString {
			d.Properties["stringFormat"] = o.StringFormat.String()
		}
		if o.MaxLength != nil {
			d.Properties["maxLength"] = strconv.Itoa(*o.MaxLength)
		}
		if o.AutoNumber != nil {
			d.Properties["autoNumberFormat"] = *o.AutoNumber
		}
	case AttributeTypeInteger:
		typ = "Int32"
		d.Properties["integerFormat"] = o.IntegerFormat.String()
		numberProperties(o, d)
	case AttributeTypeBigInt:
		typ = "Int64"
		numberProperties(o, d)
	case AttributeTypeDecimal, AttributeTypeMoney:
		precision := defaultPrecision
		if o.Precision != nil {
			precision = *o.Precision
		}
		typ = "Decimal(38, " + strconv.Itoa(precision) + ")"
		if o.PrecisionSource != nil {
			d.Properties["precisionSource"] = strconv.Itoa(*o.PrecisionSource)
		}
		numberProperties(o, d)
	case AttributeTypeDouble:
		typ = "Float64"
		numberProperties(o, d)
	case AttributeTypeBoolean:
		typ = "Bool"
		if !supportsBool {
			typ = "UInt8"
		}
		d.Default = "false"
		nullable = false
		d.Properties["trueLabel"] = o.TrueLabel
		d.Properties["falseLabel"] = o.FalseLabel
	case AttributeTypeDateTime:
		typ = "DateTime64(3)"
		if o.DateTimeFormat == DateTimeFormatDateOnly {
			typ = "Date32"
		}
		d.Properties["dateTimeFormat"] = o.DateTimeFormat.String()
		d.Properties["imeMode"] = o.ImeMode.String()
	case AttributeTypePicklist:
		var err error
		if typ, err = picklistType(o, d); err != nil {
			return nil, err
		}
	case AttributeTypeUniqueidentifier:
		typ = "UUID"
	default:
		return nil, errors.Errorf("unsupported column type %s", o.Type)
	}

	d.Type = wrapNullable(typ, nullable)
	return d, nil
}

func validate(o *CreateOptions) error {
	if o.AutoNumber != nil && o.Type != AttributeTypeString {
		return errors.New("--autoNumber is only valid for String columns")
	}

	if o.MaxLength != nil && *o.MaxLength <= 0 {
		return errors.Errorf("--len must be positive, got %d", *o.MaxLength)
	}

	if o.Min != nil && o.Max != nil && *o.Min > *o.Max {
		return errors.Errorf("--min (%v) is greater than --max (%v)", *o.Min, *o.Max)
	}

	if o.Precision != nil && (*o.Precision < 0 || *o.Precision > maxPrecision) {
		return errors.Errorf("--precision must be between 0 and %d, got %d", maxPrecision, *o.Precision)
	}

	return nil
}

func numberProperties(o *CreateOptions, d *Definition) {
	if o.Min != nil {
		d.Properties["minValue"] = strconv.FormatFloat(*o.Min, 'f', -1, 64)
	}
	if o.Max != nil {
		d.Properties["maxValue"] = strconv.FormatFloat(*o.Max, 'f', -1, 64)
	}
	d.Properties["imeMode"] = o.ImeMode.String()
}

// picklistType builds an Enum16 from --options, or a LowCardinality(String)
// holding the values of a global option set.
func picklistType(o *CreateOptions, d *Definition) (string, error) {
	hasOptions := o.Options != nil && strings.TrimSpace(*o.Options) != ""
	hasGlobal := o.GlobalOptionSetName != nil && strings.TrimSpace(*o.GlobalOptionSetName) != ""

	var typ string
	switch {
	case hasOptions && hasGlobal:
		return "", errors.New("specify either --options or --globalOptionSetName, not both")
	case hasGlobal:
		typ = "LowCardinality(String)"
		d.Properties["globalOptionSetName"] = strings.TrimSpace(*o.GlobalOptionSetName)
	case hasOptions:
		values, err := SplitOptions(*o.Options)
		if err != nil {
			return "", err
		}

		members := make([]string, len(values))
		for i, v := range values {
			members[i] = utils.Quote(v) + " = " + strconv.Itoa(i+1)
		}
		typ = "Enum16(" + strings.Join(members, ", ") + ")"
	default:
		return "", errors.New("a Picklist column needs --options or --globalOptionSetName")
	}

	if o.Multiselect {
		d.Properties["multiselect"] = "true"
		return "Array(" + typ + ")", nil
	}

	return typ, nil
}

// SplitOptions splits a comma or pipe separated list of option labels.
//
// Example:
//
//	SplitOptions("Gold, Silver|Bronze") // ["Gold", "Silver", "Bronze"]
func SplitOptions(raw string) ([]string, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '|' })

	seen := make(map[string]bool, len(fields))
	values := make([]string, 0, len(fields))
	for _, f := range fields {
		v := strings.TrimSpace(f)
		if v == "" {
			continue
		}

		key := strings.ToLower(v)
		if seen[key] {
			return nil, errors.Errorf("duplicate option %q", v)
		}
		seen[key] = true
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, errors.New("--options contains no values")
	}

	return values, nil
}

func wrapNullable(typ string, nullable bool) string {
	switch {
	case !nullable, strings.HasPrefix(typ, "Array("):
		return typ
	case typ == "LowCardinality(String)":
		return "LowCardinality(Nullable(String))"
	default:
		return "Nullable(" + typ + ")"
	}
}
