package utils

import "strings"

// BacktickIdentifier quotes an identifier with backticks. Dotted names are
// split and each part is quoted, and parts that are already quoted are kept.
//
// Examples:
//   - "account" -> "`account`"
//   - "crm.account" -> "`crm`.`account`"
//   - "`crm`.account" -> "`crm`.`account`"
//   - "`odd.name`" -> "`odd.name`"
//   - "" -> ""
func BacktickIdentifier(name string) string {
	if name == "" || IsBackticked(name) {
		return name
	}

	parts := strings.Split(name, ".")
	for i, part := range parts {
		if !IsBackticked(part) {
			parts[i] = "`" + part + "`"
		}
	}
	return strings.Join(parts, ".")
}

// BacktickQualifiedName formats database.name with backticks. A nil or empty
// database yields just the quoted name.
//
// Examples:
//   - ("crm", "account") -> "`crm`.`account`"
//   - (nil, "account") -> "`account`"
func BacktickQualifiedName(database *string, name string) string {
	if database != nil && *database != "" {
		return BacktickIdentifier(*database) + "." + BacktickIdentifier(name)
	}
	return BacktickIdentifier(name)
}

// IsBackticked reports whether s is a single identifier wrapped in backticks.
// "`crm`.`account`" is a qualified name and is not.
func IsBackticked(s string) bool {
	return len(s) >= 2 && s[0] == '`' && s[len(s)-1] == '`' && !strings.Contains(s[1:len(s)-1], "`")
}

// StripBackticks removes every backtick from s.
func StripBackticks(s string) string {
	return strings.ReplaceAll(s, "`", "")
}
