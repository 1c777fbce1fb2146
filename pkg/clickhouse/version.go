package clickhouse

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// versionRegex captures the leading year.month[.patch[.build]] of a server
// version. Suffixes such as "-lts" or " (official build)" are ignored.
var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// VersionInfo is the server version reported by SELECT version().
type VersionInfo struct {
	Major int
	Minor int
	Patch int
	Build int
	Raw   string
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsAtLeast reports whether the server is major.minor or newer.
func (v VersionInfo) IsAtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// SupportsBoolType reports whether the server has the Bool column type,
// introduced in ClickHouse 21.12. Older servers store booleans as UInt8.
func (v VersionInfo) SupportsBoolType() bool {
	return v.IsAtLeast(21, 12)
}

// GetVersion asks the server for its version. Column types that depend on the
// server release are chosen from the result.
func (c *Client) GetVersion(ctx context.Context) (*VersionInfo, error) {
	var raw string
	if err := c.conn.QueryRow(ctx, "SELECT version()").Scan(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to query ClickHouse version")
	}

	return parseVersion(raw)
}

func parseVersion(raw string) (*VersionInfo, error) {
	m := versionRegex.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, errors.Errorf("unrecognized ClickHouse version %q", raw)
	}

	var parts [4]int
	for i, s := range m[1:] {
		if s == "" {
			continue
		}

		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "unrecognized ClickHouse version %q", raw)
		}
		parts[i] = n
	}

	return &VersionInfo{
		Major: parts[0],
		Minor: parts[1],
		Patch: parts[2],
		Build: parts[3],
		Raw:   raw,
	}, nil
}
