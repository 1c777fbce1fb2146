package clickhouse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    VersionInfo
		wantErr bool
	}{
		{raw: "25.7.1.3997", want: VersionInfo{Major: 25, Minor: 7, Patch: 1, Build: 3997}},
		{raw: "23.8.16.40-lts", want: VersionInfo{Major: 23, Minor: 8, Patch: 16, Build: 40}},
		{raw: " 24.3.5.46 (official build)", want: VersionInfo{Major: 24, Minor: 3, Patch: 5, Build: 46}},
		{raw: "21.11", want: VersionInfo{Major: 21, Minor: 11}},
		{raw: "v24.3", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "99999999999999999999.1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := parseVersion(tt.raw)
			if tt.wantErr {
				require.ErrorContains(t, err, "unrecognized ClickHouse version")
				require.Nil(t, v)
				return
			}

			require.NoError(t, err)
			tt.want.Raw = tt.raw
			require.Equal(t, tt.want, *v)
		})
	}
}

func TestVersionInfo(t *testing.T) {
	tests := []struct {
		version  VersionInfo
		str      string
		boolType bool
	}{
		{version: VersionInfo{Major: 25, Minor: 7, Patch: 1, Build: 3997}, str: "25.7.1", boolType: true},
		{version: VersionInfo{Major: 22, Minor: 1}, str: "22.1.0", boolType: true},
		{version: VersionInfo{Major: 21, Minor: 12, Patch: 3}, str: "21.12.3", boolType: true},
		{version: VersionInfo{Major: 21, Minor: 11, Patch: 4}, str: "21.11.4", boolType: false},
		{version: VersionInfo{Major: 20, Minor: 12}, str: "20.12.0", boolType: false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			require.Equal(t, tt.str, tt.version.String())
			require.Equal(t, tt.boolType, tt.version.SupportsBoolType())
			require.Equal(t, tt.boolType, tt.version.IsAtLeast(21, 12))
		})
	}
}
